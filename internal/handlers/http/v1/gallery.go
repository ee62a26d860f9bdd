package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/monster-maker/internal/orchestrators/gallery"
)

// CreateCreationRequest saves a composite from a ready sprite
type CreateCreationRequest struct {
	Name           string   `json:"name"`
	Author         string   `json:"author"`
	Sprite         string   `json:"sprite"`
	ParentMonsters []string `json:"parent_monsters"`
}

// ListCreations returns the gallery, newest first. Query parameters monster,
// author and family (repeatable) narrow it down.
func (h *Handler) ListCreations(c *gin.Context) {
	out, err := h.gallery.ListComposites(c.Request.Context(), &gallery.ListCompositesInput{
		Monster:  c.Query("monster"),
		Author:   c.Query("author"),
		Families: c.QueryArray("family"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	creations := make([]Creation, 0, len(out.Composites))
	for _, cmp := range out.Composites {
		creations = append(creations, toCreation(cmp))
	}
	c.JSON(http.StatusOK, creations)
}

// ListAuthors returns the distinct gallery authors
func (h *Handler) ListAuthors(c *gin.Context) {
	out, err := h.gallery.ListAuthors(c.Request.Context(), &gallery.ListAuthorsInput{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Authors)
}

// CreateCreation stores a composite
func (h *Handler) CreateCreation(c *gin.Context) {
	var req CreateCreationRequest
	if !bindJSON(c, &req) {
		return
	}

	sprite, err := fromDataURL("sprite", req.Sprite)
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := h.gallery.CreateComposite(c.Request.Context(), &gallery.CreateCompositeInput{
		Name:                req.Name,
		Author:              req.Author,
		Sprite:              sprite,
		ParentCreatureNames: req.ParentMonsters,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": out.Composite.ID})
}

// DeleteCreation removes one composite
func (h *Handler) DeleteCreation(c *gin.Context) {
	_, err := h.gallery.DeleteComposite(c.Request.Context(), &gallery.DeleteCompositeInput{ID: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
