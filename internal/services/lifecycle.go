package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawsteps/pawsteps-backend/internal/data/repos"
	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	apperrors "github.com/pawsteps/pawsteps-backend/internal/pkg/errors"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
)

// LifecycleService owns the DogSkill record's lifecycle: creation when a dog
// first engages a skill, mastery confirmation at the end, and the soft reset
// back to practicing.
type LifecycleService interface {
	// Start is idempotent: an existing DogSkill for the pair is returned
	// unchanged.
	Start(ctx context.Context, dogID, skillID uuid.UUID) (*types.DogSkill, error)
	// MarkMastered confirms mastery once the proofed level's requirements are
	// satisfied. Reaching proofed never masters implicitly; this is the
	// explicit confirmation step.
	MarkMastered(ctx context.Context, dogSkillID uuid.UUID) (*types.DogSkill, error)
	// Reset returns a mastered skill to learning for continued practice. The
	// proficiency level and session counter are untouched; this is not a
	// progress wipe.
	Reset(ctx context.Context, dogSkillID uuid.UUID) (*types.DogSkill, error)
	// Demote is the administrative regression path, one step down. Normal
	// level-up flow never regresses a level.
	Demote(ctx context.Context, dogSkillID uuid.UUID, target types.ProficiencyLevel) (*types.DogSkill, error)
}

type lifecycleService struct {
	db          *gorm.DB
	log         *logger.Logger
	dogs        repos.DogRepo
	skills      repos.SkillRepo
	dogSkills   repos.DogSkillRepo
	progression ProgressionService
}

func NewLifecycleService(
	db *gorm.DB,
	baseLog *logger.Logger,
	dogs repos.DogRepo,
	skills repos.SkillRepo,
	dogSkills repos.DogSkillRepo,
	progression ProgressionService,
) LifecycleService {
	return &lifecycleService{
		db:          db,
		log:         baseLog.With("service", "LifecycleService"),
		dogs:        dogs,
		skills:      skills,
		dogSkills:   dogSkills,
		progression: progression,
	}
}

func (s *lifecycleService) Start(ctx context.Context, dogID, skillID uuid.UUID) (*types.DogSkill, error) {
	if dogID == uuid.Nil || skillID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing dog or skill id", apperrors.ErrValidation)
	}

	var out *types.DogSkill
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		existing, err := s.dogSkills.GetByDogAndSkill(dbc, dogID, skillID)
		if err != nil {
			return err
		}
		if existing != nil {
			out = existing
			return nil
		}

		dog, err := s.dogs.GetByID(dbc, dogID)
		if err != nil {
			return err
		}
		if dog == nil {
			return fmt.Errorf("%w: dog %s", apperrors.ErrNotFound, dogID)
		}
		skill, err := s.skills.GetByID(dbc, skillID)
		if err != nil {
			return err
		}
		if skill == nil {
			return fmt.Errorf("%w: skill %s", apperrors.ErrNotFound, skillID)
		}

		now := time.Now().UTC()
		row := &types.DogSkill{
			ID:               uuid.New(),
			DogID:            dogID,
			SkillID:          skillID,
			ProficiencyLevel: types.ProficiencyBasic,
			Status:           types.SkillStatusLearning,
			TotalSessions:    0,
			StartedAt:        now,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if _, err := s.dogSkills.Create(dbc, []*types.DogSkill{row}); err != nil {
			return err
		}
		s.log.Info("dog started skill", "dog_id", dogID, "skill_id", skillID, "dog_skill_id", row.ID)
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *lifecycleService) MarkMastered(ctx context.Context, dogSkillID uuid.UUID) (*types.DogSkill, error) {
	if dogSkillID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing dog skill id", apperrors.ErrValidation)
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
		if ds.ProficiencyLevel != types.ProficiencyProofed {
			return fmt.Errorf("%w: mastery requires the proofed level, currently %s", apperrors.ErrNotEligible, ds.ProficiencyLevel)
		}

		snap, err := s.progression.Evaluate(dbc, ds.ID)
		if err != nil {
			return err
		}
		if !snap.RequirementsMet {
			return fmt.Errorf("%w: proofed requirements not yet satisfied", apperrors.ErrNotEligible)
		}

		updates := map[string]interface{}{"status": types.SkillStatusMastered}
		if ds.MasteredAt == nil {
			updates["mastered_at"] = time.Now().UTC()
		}
		if err := s.dogSkills.UpdateFields(dbc, ds.ID, updates); err != nil {
			return err
		}
		out, err = s.dogSkills.GetByID(dbc, ds.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("skill mastered", "dog_skill_id", out.ID)
	return out, nil
}

func (s *lifecycleService) Reset(ctx context.Context, dogSkillID uuid.UUID) (*types.DogSkill, error) {
	if dogSkillID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing dog skill id", apperrors.ErrValidation)
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

		if err := s.dogSkills.UpdateFields(dbc, ds.ID, map[string]interface{}{
			"status": types.SkillStatusLearning,
		}); err != nil {
			return err
		}
		out, err = s.dogSkills.GetByID(dbc, ds.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *lifecycleService) Demote(ctx context.Context, dogSkillID uuid.UUID, target types.ProficiencyLevel) (*types.DogSkill, error) {
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
		if target.Index() != ds.ProficiencyLevel.Index()-1 {
			return fmt.Errorf("%w: demotion goes one step down from %s", apperrors.ErrIneligibleTransition, ds.ProficiencyLevel)
		}

		applied, err := s.dogSkills.UpdateLevelFrom(dbc, ds.ID, ds.ProficiencyLevel, target)
		if err != nil {
			return err
		}
		if !applied {
			return fmt.Errorf("%w: proficiency level changed for dog skill %s", apperrors.ErrConcurrentModification, ds.ID)
		}
		if err := s.dogSkills.UpdateFields(dbc, ds.ID, map[string]interface{}{
			"status": types.SkillStatusLearning,
		}); err != nil {
			return err
		}
		out, err = s.dogSkills.GetByID(dbc, ds.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Warn("proficiency level demoted",
		"dog_skill_id", out.ID,
		"proficiency_level", out.ProficiencyLevel,
	)
	return out, nil
}
