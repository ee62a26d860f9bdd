package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/monster-maker/internal/errors"
	"github.com/KirkDiggler/monster-maker/internal/orchestrators/editor"
	"github.com/KirkDiggler/monster-maker/internal/workspace"
)

// PickMonstersRequest names the two creatures of a session. Leave both empty
// for a random pair.
type PickMonstersRequest struct {
	Monster1 string `json:"monster1"`
	Monster2 string `json:"monster2"`
}

// AddPartRequest places a part; without x and y it lands at the click spot
type AddPartRequest struct {
	PartName string `json:"part_name"`
	Source   string `json:"source"`
	X        *int   `json:"x"`
	Y        *int   `json:"y"`
}

// EventRequest is one pointer, key or layer-list event
type EventRequest struct {
	Type  string  `json:"type"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Key   string  `json:"key"`
	Index int     `json:"index"`
}

// CommandRequest is a toolbar command for the selected part
type CommandRequest struct {
	Op    string  `json:"op"`
	Value float64 `json:"value"`
}

// SaveRequest names the composite being saved
type SaveRequest struct {
	Name   string `json:"name"`
	Author string `json:"author"`
}

// EventResponse reports whether the event changed the workspace
type EventResponse struct {
	Changed bool    `json:"changed"`
	Session Session `json:"session"`
}

// AddPartResponse reports whether the part was placed
type AddPartResponse struct {
	Inserted bool    `json:"inserted"`
	PartID   int64   `json:"part_id,omitempty"`
	Session  Session `json:"session"`
}

func (r PickMonstersRequest) ids() ([]string, error) {
	switch {
	case r.Monster1 == "" && r.Monster2 == "":
		return nil, nil
	case r.Monster1 == "" || r.Monster2 == "":
		return nil, errors.InvalidArgument("please select two monsters")
	}
	return []string{r.Monster1, r.Monster2}, nil
}

// StartSession opens an editor session
func (h *Handler) StartSession(c *gin.Context) {
	var req PickMonstersRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	ids, err := req.ids()
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := h.editor.StartSession(c.Request.Context(), &editor.StartSessionInput{CreatureIDs: ids})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSession(out.Session))
}

// GetSession returns the session state
func (h *Handler) GetSession(c *gin.Context) {
	out, err := h.editor.GetSession(c.Request.Context(), &editor.GetSessionInput{SessionID: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSession(out.Session))
}

// ChangeMonsters swaps the session's creatures. A non-empty workspace needs
// ?confirm=true, otherwise the call answers 409 and nothing changes.
func (h *Handler) ChangeMonsters(c *gin.Context) {
	var req PickMonstersRequest
	if !bindJSON(c, &req) {
		return
	}
	ids, err := req.ids()
	if err != nil {
		writeError(c, err)
		return
	}
	confirmed, _ := strconv.ParseBool(c.DefaultQuery("confirm", "false"))

	out, err := h.editor.ChangeCreatures(c.Request.Context(), &editor.ChangeCreaturesInput{
		SessionID:   c.Param("id"),
		CreatureIDs: ids,
		Confirmed:   confirmed,
	})
	if err != nil {
		if errors.IsAborted(err) {
			err = errors.WrapWithCode(err, errors.CodeAborted, workspace.ConfirmClearMessage)
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSession(out.Session))
}

// AddPart places a catalog part on the workspace
func (h *Handler) AddPart(c *gin.Context) {
	var req AddPartRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.editor.AddPart(c.Request.Context(), &editor.AddPartInput{
		SessionID: c.Param("id"),
		PartName:  req.PartName,
		Source:    req.Source,
		X:         req.X,
		Y:         req.Y,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, AddPartResponse{
		Inserted: out.Inserted,
		PartID:   out.PartID,
		Session:  toSession(out.Session),
	})
}

// HandleEvent feeds one input event into the session
func (h *Handler) HandleEvent(c *gin.Context) {
	var req EventRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.editor.HandleEvent(c.Request.Context(), &editor.HandleEventInput{
		SessionID: c.Param("id"),
		Event: workspace.InputEvent{
			Kind:  workspace.EventKind(req.Type),
			X:     req.X,
			Y:     req.Y,
			Key:   workspace.Key(req.Key),
			Index: req.Index,
		},
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, EventResponse{Changed: out.Changed, Session: toSession(out.Session)})
}

// ApplyCommand runs a toolbar command on the selected part
func (h *Handler) ApplyCommand(c *gin.Context) {
	var req CommandRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.editor.ApplyCommand(c.Request.Context(), &editor.ApplyCommandInput{
		SessionID: c.Param("id"),
		Command:   workspace.Command{Op: workspace.Op(req.Op), Value: req.Value},
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSession(out.Session))
}

// RenderFrame returns the live 640×640 frame
func (h *Handler) RenderFrame(c *gin.Context) {
	out, err := h.editor.RenderFrame(c.Request.Context(), &editor.RenderFrameInput{SessionID: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", out.PNG)
}

// Export downloads the composite at native size
func (h *Handler) Export(c *gin.Context) {
	out, err := h.editor.Export(c.Request.Context(), &editor.ExportInput{
		SessionID: c.Param("id"),
		Name:      c.Query("name"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	c.Data(http.StatusOK, "image/png", out.PNG)
}

// SaveComposite stores the workspace in the gallery and clears it
func (h *Handler) SaveComposite(c *gin.Context) {
	var req SaveRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.editor.SaveComposite(c.Request.Context(), &editor.SaveCompositeInput{
		SessionID: c.Param("id"),
		Name:      req.Name,
		Author:    req.Author,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCreation(out.Composite))
}

// EndSession discards the session
func (h *Handler) EndSession(c *gin.Context) {
	_, err := h.editor.EndSession(c.Request.Context(), &editor.EndSessionInput{SessionID: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
