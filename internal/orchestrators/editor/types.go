package editor

import (
	"github.com/KirkDiggler/monster-maker/internal/entities"
	"github.com/KirkDiggler/monster-maker/internal/workspace"
)

// DefaultExportName is used when an export is requested without a name
const DefaultExportName = "monster"

// StartSessionInput picks the two creatures to mash up. With no IDs two
// distinct creatures are drawn at random.
type StartSessionInput struct {
	CreatureIDs []string
}

// StartSessionOutput defines the response for starting a session
type StartSessionOutput struct {
	Session workspace.Snapshot
}

// GetSessionInput defines the request for reading a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the response for reading a session
type GetSessionOutput struct {
	Session workspace.Snapshot
}

// ChangeCreaturesInput swaps the session's creatures. Confirmed must be set
// when the workspace holds parts, since they will be cleared.
type ChangeCreaturesInput struct {
	SessionID   string
	CreatureIDs []string
	Confirmed   bool
}

// ChangeCreaturesOutput defines the response for changing creatures
type ChangeCreaturesOutput struct {
	Session workspace.Snapshot
}

// AddPartInput places a catalog part. Without a position the part lands at
// the click-to-add spot.
type AddPartInput struct {
	SessionID string
	PartName  string
	Source    string
	X, Y      *int
}

// AddPartOutput reports whether the part was placed; Inserted is false when
// the eligibility policy refused it.
type AddPartOutput struct {
	Inserted bool
	PartID   int64
	Session  workspace.Snapshot
}

// HandleEventInput feeds one input event to the session
type HandleEventInput struct {
	SessionID string
	Event     workspace.InputEvent
}

// HandleEventOutput defines the response for an input event
type HandleEventOutput struct {
	Changed bool
	Session workspace.Snapshot
}

// ApplyCommandInput runs a toolbar command on the selected part
type ApplyCommandInput struct {
	SessionID string
	Command   workspace.Command
}

// ApplyCommandOutput defines the response for a command
type ApplyCommandOutput struct {
	Session workspace.Snapshot
}

// RenderFrameInput defines the request for the live frame
type RenderFrameInput struct {
	SessionID string
}

// RenderFrameOutput holds the frame as PNG
type RenderFrameOutput struct {
	PNG []byte
}

// ExportInput defines the request for exporting the composite
type ExportInput struct {
	SessionID string
	Name      string
}

// ExportOutput holds the export image and its download name
type ExportOutput struct {
	Filename string
	PNG      []byte
}

// SaveCompositeInput defines the request for saving the workspace
type SaveCompositeInput struct {
	SessionID string
	Name      string
	Author    string
}

// SaveCompositeOutput defines the response for saving the workspace
type SaveCompositeOutput struct {
	Composite *entities.Composite
}

// EndSessionInput defines the request for closing a session
type EndSessionInput struct {
	SessionID string
}

// EndSessionOutput defines the response for closing a session
type EndSessionOutput struct{}
