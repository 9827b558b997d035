package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawsteps/pawsteps-backend/internal/data/repos"
	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	apperrors "github.com/pawsteps/pawsteps-backend/internal/pkg/errors"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
)

// TransitionService performs level-up mutations. Eligibility is always
// re-checked server-side against freshly loaded rows; a client asserting it
// is ready is never trusted.
type TransitionService interface {
	LevelUp(ctx context.Context, dogSkillID uuid.UUID, target types.ProficiencyLevel) (*types.DogSkill, error)
}

type transitionService struct {
	db          *gorm.DB
	log         *logger.Logger
	dogSkills   repos.DogSkillRepo
	progression ProgressionService
}

func NewTransitionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	dogSkills repos.DogSkillRepo,
	progression ProgressionService,
) TransitionService {
	return &transitionService{
		db:          db,
		log:         baseLog.With("service", "TransitionService"),
		dogSkills:   dogSkills,
		progression: progression,
	}
}

func (s *transitionService) LevelUp(ctx context.Context, dogSkillID uuid.UUID, target types.ProficiencyLevel) (*types.DogSkill, error) {
	if dogSkillID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing dog skill id", apperrors.ErrValidation)
	}
	if !target.Valid() {
		return nil, fmt.Errorf("%w: unknown proficiency level %q", apperrors.ErrValidation, target)
	}

	var out *types.DogSkill
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		ds, err := s.dogSkills.GetByID(dbc, dogSkillID)
		if err != nil {
			return err
		}
		if ds == nil {
			return fmt.Errorf("%w: dog skill %s", apperrors.ErrNotFound, dogSkillID)
		}

		// Single forward step only: no skipping, no regression, no
		// re-confirming the current level.
		next, ok := ds.ProficiencyLevel.Next()
		if !ok {
			return fmt.Errorf("%w: %s is the final level", apperrors.ErrIneligibleTransition, ds.ProficiencyLevel)
		}
		if next != target {
			return fmt.Errorf("%w: cannot move from %s to %s", apperrors.ErrIneligibleTransition, ds.ProficiencyLevel, target)
		}

		snap, err := s.progression.Evaluate(dbc, ds.ID)
		if err != nil {
			return err
		}
		if !snap.CanLevelUp {
			return fmt.Errorf("%w: requirements for %s not yet satisfied", apperrors.ErrIneligibleTransition, ds.ProficiencyLevel)
		}

		// Guarded write: if the stored level moved underneath us since the
		// read, surface the conflict instead of silently overwriting.
		applied, err := s.dogSkills.UpdateLevelFrom(dbc, ds.ID, ds.ProficiencyLevel, target)
		if err != nil {
			return err
		}
		if !applied {
			return fmt.Errorf("%w: proficiency level changed for dog skill %s", apperrors.ErrConcurrentModification, ds.ID)
		}

		out, err = s.dogSkills.GetByID(dbc, ds.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("proficiency level advanced",
		"dog_skill_id", out.ID,
		"proficiency_level", out.ProficiencyLevel,
	)
	return out, nil
}
