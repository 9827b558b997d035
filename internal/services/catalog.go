package services

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/pawsteps/pawsteps-backend/internal/data/repos"
	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	apperrors "github.com/pawsteps/pawsteps-backend/internal/pkg/errors"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
)

// CatalogService is the read-only lookup over the advancement requirement
// table. Requirements are static, so positive lookups are cached in-process
// after the first load. A level with no catalog entry is a configuration
// error surfaced as ErrConfiguration; the evaluator treats that as
// "requirements unavailable" rather than crashing.
type CatalogService interface {
	RequirementFor(dbc dbctx.Context, level types.ProficiencyLevel) (*types.ProficiencyRequirement, error)
	ListRequirements(dbc dbctx.Context) ([]*types.ProficiencyRequirement, error)
}

type catalogService struct {
	db           *gorm.DB
	log          *logger.Logger
	requirements repos.ProficiencyRequirementRepo

	mu    sync.RWMutex
	cache map[types.ProficiencyLevel]*types.ProficiencyRequirement
}

func NewCatalogService(db *gorm.DB, baseLog *logger.Logger, requirements repos.ProficiencyRequirementRepo) CatalogService {
	return &catalogService{
		db:           db,
		log:          baseLog.With("service", "CatalogService"),
		requirements: requirements,
		cache:        map[types.ProficiencyLevel]*types.ProficiencyRequirement{},
	}
}

func (s *catalogService) RequirementFor(dbc dbctx.Context, level types.ProficiencyLevel) (*types.ProficiencyRequirement, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("%w: unknown proficiency level %q", apperrors.ErrValidation, level)
	}

	s.mu.RLock()
	cached, ok := s.cache[level]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	req, err := s.requirements.GetByLevel(dbc, level)
	if err != nil {
		return nil, err
	}
	if req == nil {
		s.log.Warn("no requirement catalog entry for level", "proficiency_level", level)
		return nil, fmt.Errorf("%w: no requirement for level %q", apperrors.ErrConfiguration, level)
	}

	// A corrupt or empty context list would silently erase the context gate,
	// so treat it the same as a missing catalog entry.
	contexts, err := req.ContextList()
	if err != nil {
		s.log.Error("undecodable requirement contexts", "proficiency_level", level, "error", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConfiguration, err)
	}
	if len(contexts) == 0 {
		s.log.Error("requirement entry has no required contexts", "proficiency_level", level)
		return nil, fmt.Errorf("%w: requirement for level %q lists no contexts", apperrors.ErrConfiguration, level)
	}

	s.mu.Lock()
	s.cache[level] = req
	s.mu.Unlock()
	return req, nil
}

func (s *catalogService) ListRequirements(dbc dbctx.Context) ([]*types.ProficiencyRequirement, error) {
	return s.requirements.List(dbc)
}
