package gallery_test

import (
	"context"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/monster-maker/internal/entities"
	"github.com/KirkDiggler/monster-maker/internal/errors"
	"github.com/KirkDiggler/monster-maker/internal/orchestrators/gallery"
	"github.com/KirkDiggler/monster-maker/internal/pkg/clock"
	"github.com/KirkDiggler/monster-maker/internal/pkg/idgen"
	"github.com/KirkDiggler/monster-maker/internal/repositories/composite"
	compositemock "github.com/KirkDiggler/monster-maker/internal/repositories/composite/mock"
	"github.com/KirkDiggler/monster-maker/internal/repositories/creature"
	"github.com/KirkDiggler/monster-maker/internal/sprite"
)

var now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	compositeRepo *compositemock.MockRepository
	creatureRepo  *creature.InMemoryRepository
	svc           gallery.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.compositeRepo = compositemock.NewMockRepository(s.ctrl)
	s.creatureRepo = creature.NewInMemory()

	for i, c := range []struct{ name, family string }{
		{"Goblin", "Humanoid"},
		{"Slime", "Ooze"},
		{"Bat", "Beast"},
	} {
		_, err := s.creatureRepo.Create(s.ctx, &creature.CreateInput{Creature: &entities.Creature{
			ID:     string(rune('a' + i)),
			Name:   c.name,
			Family: c.family,
		}})
		s.Require().NoError(err)
	}

	svc, err := gallery.NewOrchestrator(&gallery.Config{
		CompositeRepo: s.compositeRepo,
		CreatureRepo:  s.creatureRepo,
		IDGenerator:   idgen.NewSequential("cmp"),
		Clock:         clock.Fixed{At: now},
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) stored() []*entities.Composite {
	return []*entities.Composite{
		{ID: "3", Name: "Batblob", Author: "Mia", ParentCreatureNames: []string{"Bat", "Slime"}},
		{ID: "2", Name: "Gobbat", Author: "", ParentCreatureNames: []string{"Goblin", "Bat"}},
		{ID: "1", Name: "Goblime", Author: "Kai", ParentCreatureNames: []string{"Goblin", "Slime"}},
	}
}

func (s *OrchestratorTestSuite) expectList() {
	s.compositeRepo.EXPECT().
		List(s.ctx, &composite.ListInput{}).
		Return(&composite.ListOutput{Composites: s.stored()}, nil)
}

func ids(composites []*entities.Composite) []string {
	out := []string{}
	for _, c := range composites {
		out = append(out, c.ID)
	}
	return out
}

func (s *OrchestratorTestSuite) TestListCompositesFilters() {
	testCases := []struct {
		name  string
		input *gallery.ListCompositesInput
		want  []string
	}{
		{"no filters", &gallery.ListCompositesInput{}, []string{"3", "2", "1"}},
		{"nil input", nil, []string{"3", "2", "1"}},
		{"by monster", &gallery.ListCompositesInput{Monster: "Slime"}, []string{"3", "1"}},
		{"by author", &gallery.ListCompositesInput{Author: "Kai"}, []string{"1"}},
		{"anonymous author", &gallery.ListCompositesInput{Author: entities.DefaultAuthor}, []string{"2"}},
		{"family ALL", &gallery.ListCompositesInput{Families: []string{"Ooze", gallery.FamilyAll}}, []string{"3", "2", "1"}},
		{"one family", &gallery.ListCompositesInput{Families: []string{"Humanoid"}}, []string{"2", "1"}},
		{"two families", &gallery.ListCompositesInput{Families: []string{"Ooze", "Beast"}}, []string{"3", "2", "1"}},
		{"combined", &gallery.ListCompositesInput{Monster: "Goblin", Families: []string{"Ooze"}}, []string{"1"}},
		{"unknown family", &gallery.ListCompositesInput{Families: []string{"Dragon"}}, []string{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectList()

			out, err := s.svc.ListComposites(s.ctx, tc.input)
			s.Require().NoError(err)
			s.Equal(tc.want, ids(out.Composites))
		})
	}
}

func (s *OrchestratorTestSuite) TestListCompositesRepoFailure() {
	s.compositeRepo.EXPECT().
		List(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.svc.ListComposites(s.ctx, &gallery.ListCompositesInput{})
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestListAuthors() {
	s.expectList()

	out, err := s.svc.ListAuthors(s.ctx, &gallery.ListAuthorsInput{})
	s.Require().NoError(err)
	s.Equal([]string{"Anonymous", "Kai", "Mia"}, out.Authors)
}

func (s *OrchestratorTestSuite) TestCreateComposite() {
	data, err := sprite.Encode(image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	s.Require().NoError(err)

	s.compositeRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *composite.CreateInput) (*composite.CreateOutput, error) {
			s.Equal("cmp_1", input.Composite.ID)
			s.Equal("Goblime", input.Composite.Name)
			s.Equal(entities.DefaultAuthor, input.Composite.Author)
			s.Equal(now, input.Composite.CreatedAt)
			return &composite.CreateOutput{Composite: input.Composite}, nil
		})

	out, err := s.svc.CreateComposite(s.ctx, &gallery.CreateCompositeInput{
		Name:                " Goblime ",
		Author:              "  ",
		Sprite:              data,
		ParentCreatureNames: []string{"Goblin", "Slime"},
	})
	s.Require().NoError(err)
	s.Equal("Goblime", out.Composite.Name)
}

func (s *OrchestratorTestSuite) TestCreateCompositeValidation() {
	_, err := s.svc.CreateComposite(s.ctx, &gallery.CreateCompositeInput{Name: "   ", Sprite: []byte{1}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.CreateComposite(s.ctx, &gallery.CreateCompositeInput{Name: "x", Sprite: []byte("garbage")})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDeleteComposite() {
	s.compositeRepo.EXPECT().
		Delete(s.ctx, &composite.DeleteInput{ID: "1"}).
		Return(&composite.DeleteOutput{}, nil)
	_, err := s.svc.DeleteComposite(s.ctx, &gallery.DeleteCompositeInput{ID: "1"})
	s.NoError(err)

	s.compositeRepo.EXPECT().
		Delete(s.ctx, &composite.DeleteInput{ID: "9"}).
		Return(nil, errors.NotFound("composite with ID 9 not found"))
	_, err = s.svc.DeleteComposite(s.ctx, &gallery.DeleteCompositeInput{ID: "9"})
	s.True(errors.IsNotFound(err))

	_, err = s.svc.DeleteComposite(s.ctx, &gallery.DeleteCompositeInput{})
	s.True(errors.IsInvalidArgument(err))
}
