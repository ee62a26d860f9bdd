package v1_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/monster-maker/internal/entities"
	"github.com/KirkDiggler/monster-maker/internal/errors"
	v1 "github.com/KirkDiggler/monster-maker/internal/handlers/http/v1"
	"github.com/KirkDiggler/monster-maker/internal/orchestrators/bestiary"
	bestiarymock "github.com/KirkDiggler/monster-maker/internal/orchestrators/bestiary/mock"
	"github.com/KirkDiggler/monster-maker/internal/orchestrators/editor"
	editormock "github.com/KirkDiggler/monster-maker/internal/orchestrators/editor/mock"
	"github.com/KirkDiggler/monster-maker/internal/orchestrators/gallery"
	gallerymock "github.com/KirkDiggler/monster-maker/internal/orchestrators/gallery/mock"
	"github.com/KirkDiggler/monster-maker/internal/sprite"
	"github.com/KirkDiggler/monster-maker/internal/testutils"
	"github.com/KirkDiggler/monster-maker/internal/workspace"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	bestiary  *bestiarymock.MockService
	gallery   *gallerymock.MockService
	editor    *editormock.MockService
	staticDir string
	engine    *gin.Engine
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.bestiary = bestiarymock.NewMockService(s.ctrl)
	s.gallery = gallerymock.NewMockService(s.ctrl)
	s.editor = editormock.NewMockService(s.ctrl)

	s.staticDir = s.T().TempDir()
	s.Require().NoError(os.WriteFile(filepath.Join(s.staticDir, "index.html"), []byte("<h1>monster maker</h1>"), 0o600))

	h, err := v1.NewHandler(&v1.HandlerConfig{
		BestiaryService: s.bestiary,
		GalleryService:  s.gallery,
		EditorService:   s.editor,
	})
	s.Require().NoError(err)
	s.engine = v1.NewEngine(&v1.EngineConfig{Handler: h, StaticDir: s.staticDir})
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

func (s *HandlerTestSuite) snapshot() workspace.Snapshot {
	return workspace.Snapshot{
		ID:      "ses_1",
		Sources: []string{"Goblin", "Slime"},
		State:   workspace.StateSelected,
		Policy:  workspace.PolicyGlobal,
		Catalog: []workspace.CatalogEntry{{
			PartName:       "head",
			SourceCreature: "Goblin",
			Image:          &sprite.Image{Data: []byte{1, 2}, Width: 4, Height: 3},
			Eligible:       true,
		}},
		Layers: []workspace.Layer{{Index: 0, PartID: 1, Label: "1. head", Selected: true}},
		Parts: []workspace.PlacedPart{{
			ID: 1, PartName: "head", SourceCreature: "Goblin",
			X: 300, Y: 300, BaseWidth: 40, BaseHeight: 30, Scale: 1,
		}},
		Selected: 0,
	}
}

func (s *HandlerTestSuite) TestNewHandlerRequiresServices() {
	_, err := v1.NewHandler(&v1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestListMonsters() {
	s.bestiary.EXPECT().
		ListCreatures(gomock.Any(), gomock.Any()).
		Return(&bestiary.ListCreaturesOutput{Creatures: []*entities.Creature{{
			ID:     "c1",
			Name:   "Goblin",
			Sprite: []byte{1, 2, 3},
			Parts:  map[string][]byte{"head": {4}},
		}}}, nil)

	rec := s.do(http.MethodGet, "/api/monsters", nil)

	s.Equal(http.StatusOK, rec.Code)
	var got []v1.Monster
	s.decode(rec, &got)
	s.Require().Len(got, 1)
	s.Equal("Goblin", got[0].Name)
	s.Equal("data:image/png;base64,AQID", got[0].Sprite)
	s.Equal("data:image/png;base64,BA==", got[0].Parts["head"])
}

func (s *HandlerTestSuite) TestCreateMonsterDecodesDataURLs() {
	img := testutils.SolidPNG(2, 2, testutils.Green)
	s.bestiary.EXPECT().
		CreateCreature(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *bestiary.CreateCreatureInput) (*bestiary.CreateCreatureOutput, error) {
			s.Equal("Goblin", input.Name)
			s.Equal(img, input.Sprite)
			s.Equal(img, input.Parts["head"])
			return &bestiary.CreateCreatureOutput{Creature: &entities.Creature{ID: "c9"}}, nil
		})

	url := "data:image/png;base64," + base64.StdEncoding.EncodeToString(img)
	rec := s.do(http.MethodPost, "/api/monsters", v1.CreateMonsterRequest{
		Name:   "Goblin",
		Sprite: url,
		Parts:  map[string]string{"head": base64.StdEncoding.EncodeToString(img)},
	})

	s.Equal(http.StatusCreated, rec.Code)
	s.JSONEq(`{"id":"c9"}`, rec.Body.String())
}

func (s *HandlerTestSuite) TestCreateMonsterRejectsBadImage() {
	rec := s.do(http.MethodPost, "/api/monsters", v1.CreateMonsterRequest{Name: "Goblin", Sprite: "data:image/png,notbase64"})

	s.Equal(http.StatusBadRequest, rec.Code)
	var got v1.ErrorResponse
	s.decode(rec, &got)
	s.Equal("INVALID_ARGUMENT", got.Code)
}

func (s *HandlerTestSuite) TestSeedAndWipe() {
	s.bestiary.EXPECT().Seed(gomock.Any(), gomock.Any()).
		Return(&bestiary.SeedOutput{Added: []string{"Bat"}, Skipped: []string{"Goblin"}}, nil)
	s.bestiary.EXPECT().Wipe(gomock.Any(), gomock.Any()).
		Return(&bestiary.WipeOutput{Creatures: 2, Composites: 5}, nil)

	rec := s.do(http.MethodPost, "/api/seed", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"message":"Database seeded","added":["Bat"],"skipped":["Goblin"]}`, rec.Body.String())

	rec = s.do(http.MethodDelete, "/api/wipe", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"message":"Database wiped","creatures":2,"composites":5}`, rec.Body.String())
}

func (s *HandlerTestSuite) TestListCreationsPassesFilters() {
	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s.gallery.EXPECT().
		ListComposites(gomock.Any(), &gallery.ListCompositesInput{
			Monster:  "Goblin",
			Author:   "Kai",
			Families: []string{"Ooze", "Beast"},
		}).
		Return(&gallery.ListCompositesOutput{Composites: []*entities.Composite{{
			ID: "cmp_1", Name: "Goblime", ParentCreatureNames: []string{"Goblin", "Slime"}, CreatedAt: created,
		}}}, nil)

	rec := s.do(http.MethodGet, "/api/creations?monster=Goblin&author=Kai&family=Ooze&family=Beast", nil)

	s.Equal(http.StatusOK, rec.Code)
	var got []v1.Creation
	s.decode(rec, &got)
	s.Require().Len(got, 1)
	s.Equal(entities.DefaultAuthor, got[0].Author)
	s.Equal([]string{"Goblin", "Slime"}, got[0].ParentMonsters)
	s.True(created.Equal(got[0].CreatedAt))
}

func (s *HandlerTestSuite) TestListAuthors() {
	s.gallery.EXPECT().ListAuthors(gomock.Any(), gomock.Any()).
		Return(&gallery.ListAuthorsOutput{Authors: []string{"Anonymous", "Kai"}}, nil)

	rec := s.do(http.MethodGet, "/api/creations/authors", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`["Anonymous","Kai"]`, rec.Body.String())
}

func (s *HandlerTestSuite) TestDeleteCreationNotFound() {
	s.gallery.EXPECT().
		DeleteComposite(gomock.Any(), &gallery.DeleteCompositeInput{ID: "nope"}).
		Return(nil, errors.NotFound("composite nope not found"))

	rec := s.do(http.MethodDelete, "/api/creations/nope", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	var got v1.ErrorResponse
	s.decode(rec, &got)
	s.Equal("NOT_FOUND", got.Code)
	s.Equal("composite nope not found", got.Message)
}

func (s *HandlerTestSuite) TestStartSessionRandom() {
	s.editor.EXPECT().
		StartSession(gomock.Any(), &editor.StartSessionInput{}).
		Return(&editor.StartSessionOutput{Session: s.snapshot()}, nil)

	rec := s.do(http.MethodPost, "/api/sessions", nil)

	s.Equal(http.StatusCreated, rec.Code)
	var got v1.Session
	s.decode(rec, &got)
	s.Equal("ses_1", got.ID)
	s.Equal([]string{"Goblin", "Slime"}, got.Monsters)
	s.Equal("selected", got.State)
	s.Require().Len(got.Catalog, 1)
	s.Equal("data:image/png;base64,AQI=", got.Catalog[0].Image)
	s.Equal("1. head", got.Layers[0].Label)
	s.Require().Len(got.Parts, 1)
	s.Equal(40.0, got.Parts[0].Width)
}

func (s *HandlerTestSuite) TestStartSessionWithPicks() {
	s.editor.EXPECT().
		StartSession(gomock.Any(), &editor.StartSessionInput{CreatureIDs: []string{"a", "b"}}).
		Return(&editor.StartSessionOutput{Session: s.snapshot()}, nil)

	rec := s.do(http.MethodPost, "/api/sessions", v1.PickMonstersRequest{Monster1: "a", Monster2: "b"})
	s.Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/api/sessions", v1.PickMonstersRequest{Monster1: "a"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestChangeMonstersNeedsConfirmation() {
	s.editor.EXPECT().
		ChangeCreatures(gomock.Any(), &editor.ChangeCreaturesInput{
			SessionID: "ses_1", CreatureIDs: []string{"a", "b"},
		}).
		Return(nil, errors.Aborted("workspace not cleared"))
	s.editor.EXPECT().
		ChangeCreatures(gomock.Any(), &editor.ChangeCreaturesInput{
			SessionID: "ses_1", CreatureIDs: []string{"a", "b"}, Confirmed: true,
		}).
		Return(&editor.ChangeCreaturesOutput{Session: s.snapshot()}, nil)

	body := v1.PickMonstersRequest{Monster1: "a", Monster2: "b"}
	rec := s.do(http.MethodPut, "/api/sessions/ses_1/monsters", body)
	s.Equal(http.StatusConflict, rec.Code)
	var got v1.ErrorResponse
	s.decode(rec, &got)
	s.Equal(workspace.ConfirmClearMessage, got.Message)

	rec = s.do(http.MethodPut, "/api/sessions/ses_1/monsters?confirm=true", body)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestAddPart() {
	x, y := 40, 80
	s.editor.EXPECT().
		AddPart(gomock.Any(), &editor.AddPartInput{
			SessionID: "ses_1", PartName: "head", Source: "Goblin", X: &x, Y: &y,
		}).
		Return(&editor.AddPartOutput{Inserted: true, PartID: 1, Session: s.snapshot()}, nil)

	rec := s.do(http.MethodPost, "/api/sessions/ses_1/parts", v1.AddPartRequest{
		PartName: "head", Source: "Goblin", X: &x, Y: &y,
	})

	s.Equal(http.StatusOK, rec.Code)
	var got v1.AddPartResponse
	s.decode(rec, &got)
	s.True(got.Inserted)
	s.Equal(int64(1), got.PartID)
}

func (s *HandlerTestSuite) TestHandleEvent() {
	s.editor.EXPECT().
		HandleEvent(gomock.Any(), &editor.HandleEventInput{
			SessionID: "ses_1",
			Event:     workspace.InputEvent{Kind: workspace.KeyPress, Key: workspace.KeyLeft},
		}).
		Return(&editor.HandleEventOutput{Changed: true, Session: s.snapshot()}, nil)

	rec := s.do(http.MethodPost, "/api/sessions/ses_1/events", v1.EventRequest{Type: "key", Key: "left"})

	s.Equal(http.StatusOK, rec.Code)
	var got v1.EventResponse
	s.decode(rec, &got)
	s.True(got.Changed)
}

func (s *HandlerTestSuite) TestApplyCommandWithoutSelection() {
	s.editor.EXPECT().
		ApplyCommand(gomock.Any(), &editor.ApplyCommandInput{
			SessionID: "ses_1",
			Command:   workspace.Command{Op: workspace.OpRotate, Value: 90},
		}).
		Return(nil, errors.FailedPrecondition("no part selected"))

	rec := s.do(http.MethodPost, "/api/sessions/ses_1/commands", v1.CommandRequest{Op: "rotate", Value: 90})

	s.Equal(http.StatusPreconditionFailed, rec.Code)
}

func (s *HandlerTestSuite) TestRenderFrame() {
	png := testutils.SolidPNG(640, 640, testutils.Green)
	s.editor.EXPECT().
		RenderFrame(gomock.Any(), &editor.RenderFrameInput{SessionID: "ses_1"}).
		Return(&editor.RenderFrameOutput{PNG: png}, nil)

	rec := s.do(http.MethodGet, "/api/sessions/ses_1/frame.png", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("image/png", rec.Header().Get("Content-Type"))
	s.Equal(png, rec.Body.Bytes())
}

func (s *HandlerTestSuite) TestExportSetsFilename() {
	png := testutils.SolidPNG(4, 3, testutils.Green)
	s.editor.EXPECT().
		Export(gomock.Any(), &editor.ExportInput{SessionID: "ses_1", Name: "gob"}).
		Return(&editor.ExportOutput{Filename: "gob.png", PNG: png}, nil)

	rec := s.do(http.MethodGet, "/api/sessions/ses_1/export.png?name=gob", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(`attachment; filename="gob.png"`, rec.Header().Get("Content-Disposition"))
	s.Equal(png, rec.Body.Bytes())
}

func (s *HandlerTestSuite) TestExportEmptyWorkspace() {
	s.editor.EXPECT().
		Export(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("no parts to export"))

	rec := s.do(http.MethodGet, "/api/sessions/ses_1/export.png", nil)

	s.Equal(http.StatusPreconditionFailed, rec.Code)
	s.Empty(rec.Header().Get("Content-Disposition"))
}

func (s *HandlerTestSuite) TestSaveComposite() {
	s.editor.EXPECT().
		SaveComposite(gomock.Any(), &editor.SaveCompositeInput{SessionID: "ses_1", Name: "Goblime", Author: "Kai"}).
		Return(&editor.SaveCompositeOutput{Composite: &entities.Composite{
			ID: "cmp_1", Name: "Goblime", Author: "Kai", ParentCreatureNames: []string{"Goblin", "Slime"},
		}}, nil)

	rec := s.do(http.MethodPost, "/api/sessions/ses_1/save", v1.SaveRequest{Name: "Goblime", Author: "Kai"})

	s.Equal(http.StatusCreated, rec.Code)
	var got v1.Creation
	s.decode(rec, &got)
	s.Equal("cmp_1", got.ID)
	s.Equal("Kai", got.Author)
}

func (s *HandlerTestSuite) TestEndSession() {
	s.editor.EXPECT().
		EndSession(gomock.Any(), &editor.EndSessionInput{SessionID: "ses_1"}).
		Return(&editor.EndSessionOutput{}, nil)

	rec := s.do(http.MethodDelete, "/api/sessions/ses_1", nil)

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerTestSuite) TestInvalidJSON() {
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/ses_1/save", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestStaticIndex() {
	rec := s.do(http.MethodGet, "/", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "monster maker")
}
