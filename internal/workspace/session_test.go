package workspace_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/monster-maker/internal/errors"
	"github.com/KirkDiggler/monster-maker/internal/pkg/idgen"
	"github.com/KirkDiggler/monster-maker/internal/sprite"
	"github.com/KirkDiggler/monster-maker/internal/workspace"
)

type SessionTestSuite struct {
	suite.Suite
	cache   *workspace.ImageCache
	head    *sprite.Image
	torso   *sprite.Image
	session *workspace.Session
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.cache = workspace.NewImageCache()
	s.head = solid(2, 2, red)
	s.torso = solid(3, 4, blue)
	s.session = s.newSession(workspace.GlobalCapPolicy{Cap: 2})
}

func (s *SessionTestSuite) entries() []workspace.CatalogEntry {
	return []workspace.CatalogEntry{
		{PartName: "head", SourceCreature: "goblin", Image: s.head},
		{PartName: "torso", SourceCreature: "goblin", Image: s.torso},
		{PartName: "head", SourceCreature: "slime", Image: s.head},
	}
}

func (s *SessionTestSuite) newSession(policy workspace.EligibilityPolicy) *workspace.Session {
	return workspace.NewSession("sess_1", []string{"goblin", "slime"}, s.entries(), workspace.Options{
		Policy: policy,
		IDs:    &idgen.Counter{},
		Cache:  s.cache,
	})
}

func (s *SessionTestSuite) TestNewSessionOffersWholeCatalog() {
	snap := s.session.Snapshot()

	s.Equal("sess_1", snap.ID)
	s.Equal([]string{"goblin", "slime"}, snap.Sources)
	s.Equal(workspace.StateIdle, snap.State)
	s.Equal(workspace.PolicyGlobal, snap.Policy)
	s.Len(snap.Catalog, 3)
	s.Equal(-1, snap.Selected)
	for _, e := range snap.Catalog {
		s.True(e.Eligible)
	}
}

func (s *SessionTestSuite) TestAddPartUnknownIsNotFound() {
	_, _, err := s.session.AddPart("wing", "goblin", 0, 0)
	s.True(errors.IsNotFound(err))
}

func (s *SessionTestSuite) TestAddPartCentered() {
	p, ok, err := s.session.AddPartCentered("head", "goblin")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(300, p.X)
	s.Equal(300, p.Y)
	s.Equal(workspace.StateSelected, s.session.State())
}

func (s *SessionTestSuite) TestOverCapInsertIsSilent() {
	for i := 0; i < 2; i++ {
		_, ok, err := s.session.AddPart("head", "goblin", 0, 0)
		s.Require().NoError(err)
		s.Require().True(ok)
	}

	_, ok, err := s.session.AddPart("head", "slime", 0, 0)
	s.NoError(err)
	s.False(ok)
	s.Equal(2, s.session.Store().Len())

	entry, _ := s.session.Catalog().Lookup("head", "slime")
	s.False(entry.Eligible)
}

func (s *SessionTestSuite) TestPerSourcePolicyExample() {
	session := s.newSession(workspace.PerSourcePolicy{Exclusive: "torso"})

	_, ok, _ := session.AddPart("head", "goblin", 0, 0)
	s.True(ok)
	_, ok, _ = session.AddPart("head", "slime", 0, 0)
	s.True(ok)
	_, ok, _ = session.AddPart("head", "goblin", 0, 0)
	s.False(ok)
	_, ok, _ = session.AddPart("head", "slime", 0, 0)
	s.False(ok)
}

func (s *SessionTestSuite) TestApplyNeedsSelection() {
	err := s.session.Apply(workspace.Command{Op: workspace.OpRotate, Value: 90})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *SessionTestSuite) TestApplyCommands() {
	p, _, _ := s.session.AddPart("torso", "goblin", 0, 0)

	s.NoError(s.session.Apply(workspace.Command{Op: workspace.OpScale, Value: 5}))
	s.Equal(workspace.MaxScale, p.Scale)
	s.NoError(s.session.Apply(workspace.Command{Op: workspace.OpAdjustScale, Value: -0.5}))
	s.Equal(1.5, p.Scale)
	s.NoError(s.session.Apply(workspace.Command{Op: workspace.OpResetScale}))
	s.Equal(1.0, p.Scale)

	s.NoError(s.session.Apply(workspace.Command{Op: workspace.OpRotate, Value: -90}))
	s.Equal(270, p.Rotation)

	s.NoError(s.session.Apply(workspace.Command{Op: workspace.OpFlipHorizontal}))
	s.NoError(s.session.Apply(workspace.Command{Op: workspace.OpFlipVertical}))
	s.True(p.FlipH)
	s.True(p.FlipV)

	err := s.session.Apply(workspace.Command{Op: "explode"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SessionTestSuite) TestApplyLayerCommandsAndRemove() {
	first, _, _ := s.session.AddPart("head", "goblin", 0, 0)
	s.session.AddPart("torso", "goblin", 0, 0)
	s.session.Handle(workspace.InputEvent{Kind: workspace.SelectLayer, Index: 0})

	s.NoError(s.session.Apply(workspace.Command{Op: workspace.OpLayerFront}))
	s.Equal(1, s.session.Store().IndexOf(first.ID))
	s.NoError(s.session.Apply(workspace.Command{Op: workspace.OpLayerBack}))
	s.Equal(0, s.session.Store().IndexOf(first.ID))
	s.NoError(s.session.Apply(workspace.Command{Op: workspace.OpLayerUp}))
	s.Equal(1, s.session.Store().IndexOf(first.ID))
	s.NoError(s.session.Apply(workspace.Command{Op: workspace.OpLayerDown}))
	s.Equal(0, s.session.Store().IndexOf(first.ID))

	s.NoError(s.session.Apply(workspace.Command{Op: workspace.OpRemove}))
	s.Equal(1, s.session.Store().Len())
	s.Equal(workspace.StateIdle, s.session.State())
}

func (s *SessionTestSuite) TestChangeSourcesNeedsConfirmWhenNotEmpty() {
	s.session.AddPart("head", "goblin", 0, 0)
	next := []workspace.CatalogEntry{{PartName: "wing", SourceCreature: "bat", Image: s.head}}

	err := s.session.ChangeSources([]string{"bat", "slime"}, next, nil)
	s.True(errors.IsAborted(err))

	var asked string
	err = s.session.ChangeSources([]string{"bat", "slime"}, next, workspace.ConfirmFunc(func(msg string) bool {
		asked = msg
		return false
	}))
	s.True(errors.IsAborted(err))
	s.Equal(workspace.ConfirmClearMessage, asked)
	s.Equal(1, s.session.Store().Len())

	err = s.session.ChangeSources([]string{"bat", "slime"}, next, workspace.ConfirmFunc(func(string) bool { return true }))
	s.Require().NoError(err)
	s.Zero(s.session.Store().Len())
	s.Equal([]string{"bat", "slime"}, s.session.Sources())
	_, ok := s.session.Catalog().Lookup("wing", "bat")
	s.True(ok)
}

func (s *SessionTestSuite) TestChangeSourcesOnEmptyWorkspaceSkipsConfirm() {
	err := s.session.ChangeSources([]string{"bat", "slime"}, nil, nil)
	s.NoError(err)
}

func (s *SessionTestSuite) TestFrameRepaintsOnlyWhenPending() {
	s.cache.Await(s.head, s.torso)
	frame := s.session.Frame()
	s.NotNil(frame)

	s.session.AddPart("head", "goblin", 100, 100)
	frame = s.session.Frame()
	s.Equal(redPx, frame.RGBAAt(110, 110))
}

func (s *SessionTestSuite) TestFailedDecodeDoesNotRepaintForever() {
	broken := &sprite.Image{Ref: "broken", Data: []byte("not an image"), Width: 4, Height: 4}
	session := workspace.NewSession("sess_2", []string{"ghost"}, []workspace.CatalogEntry{
		{PartName: "body", SourceCreature: "ghost", Image: broken},
	}, workspace.Options{IDs: &idgen.Counter{}, Cache: s.cache})

	_, inserted, err := session.AddPart("body", "ghost", 0, 0)
	s.Require().NoError(err)
	s.Require().True(inserted)
	s.cache.Await(broken)

	session.Frame()
	s.False(session.RedrawPending())
	session.Frame()
	s.False(session.RedrawPending())
}

func (s *SessionTestSuite) TestExportWhileAnotherSessionPrefetches() {
	other := workspace.NewSession("sess_2", []string{"goblin"}, nil, workspace.Options{Cache: s.cache})
	s.session.AddPart("head", "goblin", 0, 0)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			other.ChangeSources([]string{"goblin"}, []workspace.CatalogEntry{
				{PartName: "head", SourceCreature: "goblin", Image: solid(1, 1+i, blue)},
			}, nil)
		}
	}()

	for i := 0; i < 10; i++ {
		out, err := s.session.Export()
		s.Require().NoError(err)
		s.Equal(2, out.Bounds().Dx())
	}
	<-done
}

func (s *SessionTestSuite) TestDragThroughSession() {
	p, _, _ := s.session.AddPart("head", "goblin", 0, 0)
	s.session.Handle(workspace.InputEvent{Kind: workspace.PointerDown, X: 5, Y: 5})
	s.Equal(workspace.StateDragging, s.session.State())

	s.session.Handle(workspace.InputEvent{Kind: workspace.PointerMove, X: 410, Y: 410})
	s.session.Handle(workspace.InputEvent{Kind: workspace.PointerUp})

	s.Equal(400, p.X)
	s.Equal(400, p.Y)
	s.Equal(workspace.StateSelected, s.session.State())
}

func (s *SessionTestSuite) TestExport() {
	_, err := s.session.Export()
	s.True(errors.IsFailedPrecondition(err))

	s.session.AddPart("head", "goblin", 0, 0)
	s.session.AddPart("torso", "goblin", 100, 0)

	out, err := s.session.Export()
	s.Require().NoError(err)
	s.Equal(13, out.Bounds().Dx())
	s.Equal(4, out.Bounds().Dy())
}

func (s *SessionTestSuite) TestSnapshotLayers() {
	s.session.AddPart("head", "goblin", 0, 0)
	s.session.AddPart("torso", "goblin", 0, 0)

	snap := s.session.Snapshot()
	s.Require().Len(snap.Layers, 2)
	s.Equal("1. torso", snap.Layers[0].Label)
	s.Equal(1, snap.Selected)
	s.Len(snap.Parts, 2)
}
