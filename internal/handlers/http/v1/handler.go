// Package v1 serves the monster-maker JSON API over gin
package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/monster-maker/internal/errors"
	"github.com/KirkDiggler/monster-maker/internal/orchestrators/bestiary"
	"github.com/KirkDiggler/monster-maker/internal/orchestrators/editor"
	"github.com/KirkDiggler/monster-maker/internal/orchestrators/gallery"
)

// HandlerConfig holds dependencies for the HTTP handler
type HandlerConfig struct {
	BestiaryService bestiary.Service
	GalleryService  gallery.Service
	EditorService   editor.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.BestiaryService == nil {
		vb.RequiredField("BestiaryService")
	}
	if c.GalleryService == nil {
		vb.RequiredField("GalleryService")
	}
	if c.EditorService == nil {
		vb.RequiredField("EditorService")
	}
	return vb.Build()
}

// Handler implements the /api routes
type Handler struct {
	bestiary bestiary.Service
	gallery  gallery.Service
	editor   editor.Service
}

// NewHandler creates a new HTTP handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		bestiary: cfg.BestiaryService,
		gallery:  cfg.GalleryService,
		editor:   cfg.EditorService,
	}, nil
}

// Routers mounts every route under e
func (h *Handler) Routers(e *gin.RouterGroup) {
	e.GET("/monsters", h.ListMonsters)
	e.POST("/monsters", h.CreateMonster)
	e.POST("/seed", h.Seed)
	e.DELETE("/wipe", h.Wipe)

	creations := e.Group("/creations")
	creations.GET("", h.ListCreations)
	creations.GET("/authors", h.ListAuthors)
	creations.POST("", h.CreateCreation)
	creations.DELETE("/:id", h.DeleteCreation)

	sessions := e.Group("/sessions")
	sessions.POST("", h.StartSession)
	sessions.GET("/:id", h.GetSession)
	sessions.PUT("/:id/monsters", h.ChangeMonsters)
	sessions.POST("/:id/parts", h.AddPart)
	sessions.POST("/:id/events", h.HandleEvent)
	sessions.POST("/:id/commands", h.ApplyCommand)
	sessions.GET("/:id/frame.png", h.RenderFrame)
	sessions.GET("/:id/export.png", h.Export)
	sessions.POST("/:id/save", h.SaveComposite)
	sessions.DELETE("/:id", h.EndSession)
}
