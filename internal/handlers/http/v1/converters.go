package v1

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/KirkDiggler/monster-maker/internal/entities"
	"github.com/KirkDiggler/monster-maker/internal/errors"
	"github.com/KirkDiggler/monster-maker/internal/workspace"
)

const dataURLPrefix = "data:image/png;base64,"

// Monster is the wire form of a creature; images are data URLs
type Monster struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Family string            `json:"family,omitempty"`
	Sprite string            `json:"sprite"`
	Parts  map[string]string `json:"parts"`
}

// Creation is the wire form of a composite
type Creation struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Author         string    `json:"author"`
	Sprite         string    `json:"sprite"`
	ParentMonsters []string  `json:"parent_monsters"`
	CreatedAt      time.Time `json:"created_at"`
}

// CatalogPart is one entry of the session's part catalog
type CatalogPart struct {
	PartName string `json:"part_name"`
	Source   string `json:"source"`
	Image    string `json:"image"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

// Layer is one row of the layer list, front-most first
type Layer struct {
	Index    int    `json:"index"`
	PartID   int64  `json:"part_id"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// Part is a placed part in workspace units
type Part struct {
	ID       int64   `json:"id"`
	PartName string  `json:"part_name"`
	Source   string  `json:"source"`
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Scale    float64 `json:"scale"`
	Rotation int     `json:"rotation"`
	FlipH    bool    `json:"flip_h"`
	FlipV    bool    `json:"flip_v"`
}

// Session is the full editor state returned after every session call
type Session struct {
	ID       string        `json:"id"`
	Monsters []string      `json:"monsters"`
	State    string        `json:"state"`
	Policy   string        `json:"policy"`
	Catalog  []CatalogPart `json:"catalog"`
	Layers   []Layer       `json:"layers"`
	Parts    []Part        `json:"parts"`
	Selected int           `json:"selected"`
}

func toDataURL(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(data)
}

// fromDataURL accepts a data URL of any image type or bare base64
func fromDataURL(field, s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		i := strings.Index(s, ",")
		if i < 0 || !strings.HasSuffix(s[:i], ";base64") {
			return nil, errors.InvalidArgumentf("%s must be a base64 data URL", field)
		}
		s = s[i+1:]
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, field+" is not valid base64")
	}
	return data, nil
}

func toMonster(c *entities.Creature) Monster {
	parts := make(map[string]string, len(c.Parts))
	for name, data := range c.Parts {
		parts[name] = toDataURL(data)
	}
	return Monster{
		ID:     c.ID,
		Name:   c.Name,
		Family: c.Family,
		Sprite: toDataURL(c.Sprite),
		Parts:  parts,
	}
}

func toCreation(c *entities.Composite) Creation {
	return Creation{
		ID:             c.ID,
		Name:           c.Name,
		Author:         c.AuthorOrDefault(),
		Sprite:         toDataURL(c.Sprite),
		ParentMonsters: c.ParentCreatureNames,
		CreatedAt:      c.CreatedAt,
	}
}

func toSession(s workspace.Snapshot) Session {
	out := Session{
		ID:       s.ID,
		Monsters: s.Sources,
		State:    string(s.State),
		Policy:   s.Policy,
		Catalog:  make([]CatalogPart, 0, len(s.Catalog)),
		Layers:   make([]Layer, 0, len(s.Layers)),
		Parts:    make([]Part, 0, len(s.Parts)),
		Selected: s.Selected,
	}
	for _, e := range s.Catalog {
		cp := CatalogPart{
			PartName: e.PartName,
			Source:   e.SourceCreature,
			Eligible: e.Eligible,
			Reason:   e.Reason,
		}
		if e.Image != nil {
			cp.Image = toDataURL(e.Image.Data)
			cp.Width = e.Image.Width
			cp.Height = e.Image.Height
		}
		out.Catalog = append(out.Catalog, cp)
	}
	for _, l := range s.Layers {
		out.Layers = append(out.Layers, Layer(l))
	}
	for i := range s.Parts {
		p := &s.Parts[i]
		out.Parts = append(out.Parts, Part{
			ID:       p.ID,
			PartName: p.PartName,
			Source:   p.SourceCreature,
			X:        p.X,
			Y:        p.Y,
			Width:    p.Width(),
			Height:   p.Height(),
			Scale:    p.Scale,
			Rotation: p.Rotation,
			FlipH:    p.FlipH,
			FlipV:    p.FlipV,
		})
	}
	return out
}
