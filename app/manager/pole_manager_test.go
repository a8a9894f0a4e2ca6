package manager_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"backend/gestion-platform/app/api/client/request"
	"backend/gestion-platform/app/database/entity"
	"backend/gestion-platform/app/database/repository"
	"backend/gestion-platform/app/internal/authz"
	"backend/gestion-platform/app/manager"
	"backend/gestion-platform/app/pkg/util/optional"
)

type PoleManagerSuite struct {
	ManagerSuite
	m manager.PoleManager
}

func TestPoleManagerSuite(t *testing.T) {
	suite.Run(t, new(PoleManagerSuite))
}

func (s *PoleManagerSuite) SetupTest() {
	s.ManagerSuite.SetupTest()
	s.m = manager.NewPoleManager(s.res, s.gate, s.repos)
}

func (s *PoleManagerSuite) TestCreate_DerivesSlug() {
	s.poles.EXPECT().
		Insert(mock.Anything, mock.MatchedBy(func(p *entity.Pole) bool {
			return p.Name == "Ressources Humaines & Formation" && p.Slug == "ressources-humaines-and-formation" && p.IsActive
		})).
		RunAndReturn(func(_ context.Context, p *entity.Pole) (*entity.Pole, error) {
			p.ID = 10
			return p, nil
		})

	p, err := s.m.Create(s.ctx, admin, request.CreatePoleRequest{Name: "  Ressources Humaines & Formation "})

	s.r.NoError(err)
	s.a.Equal(int64(10), p.ID)
}

func (s *PoleManagerSuite) TestCreate_Forbidden() {
	_, err := s.m.Create(s.ctx, responsable, request.CreatePoleRequest{Name: "Logistique"})

	s.r.ErrorIs(err, authz.ErrForbidden)
}

func (s *PoleManagerSuite) TestUpdate_RenameRegeneratesSlug() {
	s.poles.EXPECT().
		Update(mock.Anything, int64(3), map[string]any{"name": "Événementiel", "slug": "evenementiel"}).
		Return(&entity.Pole{ID: 3, Name: "Événementiel", Slug: "evenementiel"}, nil)

	p, err := s.m.Update(s.ctx, admin, 3, request.UpdatePoleRequest{Name: optional.Of("Événementiel")})

	s.r.NoError(err)
	s.a.Equal("evenementiel", p.Slug)
}

func (s *PoleManagerSuite) TestUpdate_NullName() {
	_, err := s.m.Update(s.ctx, admin, 3, request.UpdatePoleRequest{Name: optional.Null[string]()})

	s.r.ErrorIs(err, manager.ErrValidation)
}

func (s *PoleManagerSuite) TestList_AllIsAdminOnly() {
	_, _, err := s.m.List(s.ctx, responsable, request.ListPolesRequest{All: true})
	s.r.ErrorIs(err, authz.ErrForbidden)

	s.poles.EXPECT().
		List(mock.Anything, repository.PoleFilter{All: false}).
		Return([]entity.Pole{{ID: 1}, {ID: 2}}, 2, nil)
	poles, total, err := s.m.List(s.ctx, member, request.ListPolesRequest{})
	s.r.NoError(err)
	s.a.Len(poles, 2)
	s.a.Equal(2, total)
}

func (s *PoleManagerSuite) TestDelete() {
	s.poles.EXPECT().SoftDelete(mock.Anything, int64(3)).Return(&entity.Pole{ID: 3, IsActive: false}, nil)

	p, err := s.m.Delete(s.ctx, admin, 3)

	s.r.NoError(err)
	s.a.False(p.IsActive)
}

func (s *PoleManagerSuite) TestGet_NotFound() {
	s.poles.EXPECT().FindByID(mock.Anything, int64(404)).Return(nil, sql.ErrNoRows)

	_, err := s.m.Get(s.ctx, member, 404)

	s.r.ErrorIs(err, manager.ErrNotFound)
}
