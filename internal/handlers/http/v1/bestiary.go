package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/monster-maker/internal/orchestrators/bestiary"
)

// CreateMonsterRequest adds a creature; images are data URLs
type CreateMonsterRequest struct {
	Name   string            `json:"name"`
	Family string            `json:"family"`
	Sprite string            `json:"sprite"`
	Parts  map[string]string `json:"parts"`
}

// ListMonsters returns every creature by name
func (h *Handler) ListMonsters(c *gin.Context) {
	out, err := h.bestiary.ListCreatures(c.Request.Context(), &bestiary.ListCreaturesInput{})
	if err != nil {
		writeError(c, err)
		return
	}

	monsters := make([]Monster, 0, len(out.Creatures))
	for _, cr := range out.Creatures {
		monsters = append(monsters, toMonster(cr))
	}
	c.JSON(http.StatusOK, monsters)
}

// CreateMonster stores a new creature
func (h *Handler) CreateMonster(c *gin.Context) {
	var req CreateMonsterRequest
	if !bindJSON(c, &req) {
		return
	}

	sprite, err := fromDataURL("sprite", req.Sprite)
	if err != nil {
		writeError(c, err)
		return
	}
	parts := make(map[string][]byte, len(req.Parts))
	for name, url := range req.Parts {
		data, err := fromDataURL("parts."+name, url)
		if err != nil {
			writeError(c, err)
			return
		}
		parts[name] = data
	}

	out, err := h.bestiary.CreateCreature(c.Request.Context(), &bestiary.CreateCreatureInput{
		Name:   req.Name,
		Family: req.Family,
		Sprite: sprite,
		Parts:  parts,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": out.Creature.ID})
}

// Seed loads creatures from the asset tree
func (h *Handler) Seed(c *gin.Context) {
	out, err := h.bestiary.Seed(c.Request.Context(), &bestiary.SeedInput{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Database seeded",
		"added":   out.Added,
		"skipped": out.Skipped,
	})
}

// Wipe removes every creature and composite
func (h *Handler) Wipe(c *gin.Context) {
	out, err := h.bestiary.Wipe(c.Request.Context(), &bestiary.WipeInput{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Database wiped",
		"creatures":  out.Creatures,
		"composites": out.Composites,
	})
}
