package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawsteps/pawsteps-backend/internal/data/repos"
	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	apperrors "github.com/pawsteps/pawsteps-backend/internal/pkg/errors"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
)

type RecordSessionInput struct {
	DogSkillID       uuid.UUID
	Context          string
	DistractionLevel types.DistractionLevel
	SuccessRate      int
	DurationMinutes  int
	Notes            string
}

// SessionService records practice sessions. The session insert and the
// owning DogSkill's total_sessions increment are one transaction: both land
// or neither does, so the counter never drifts from the session rows.
type SessionService interface {
	Record(ctx context.Context, in RecordSessionInput) (*types.PracticeSession, error)
	ListForDogSkill(ctx context.Context, dogSkillID uuid.UUID) ([]*types.PracticeSession, error)
}

type sessionService struct {
	db        *gorm.DB
	log       *logger.Logger
	dogSkills repos.DogSkillRepo
	sessions  repos.PracticeSessionRepo
}

func NewSessionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	dogSkills repos.DogSkillRepo,
	sessions repos.PracticeSessionRepo,
) SessionService {
	return &sessionService{
		db:        db,
		log:       baseLog.With("service", "SessionService"),
		dogSkills: dogSkills,
		sessions:  sessions,
	}
}

func (s *sessionService) Record(ctx context.Context, in RecordSessionInput) (*types.PracticeSession, error) {
	// All validation happens before any persistence attempt.
	if in.DogSkillID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing dog skill id", apperrors.ErrValidation)
	}
	if in.SuccessRate < 0 || in.SuccessRate > 100 {
		return nil, fmt.Errorf("%w: success rate must be between 0 and 100, got %d", apperrors.ErrValidation, in.SuccessRate)
	}
	practiceContext := strings.TrimSpace(in.Context)
	if !types.ValidSessionContext(practiceContext) {
		return nil, fmt.Errorf("%w: unknown practice context %q", apperrors.ErrValidation, in.Context)
	}
	if !in.DistractionLevel.Valid() {
		return nil, fmt.Errorf("%w: unknown distraction level %q", apperrors.ErrValidation, in.DistractionLevel)
	}
	if in.DurationMinutes < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", apperrors.ErrValidation)
	}

	var session *types.PracticeSession
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		// The caller must create the DogSkill first (lifecycle Start);
		// recording never creates one implicitly.
		ds, err := s.dogSkills.GetByID(dbc, in.DogSkillID)
		if err != nil {
			return err
		}
		if ds == nil {
			return fmt.Errorf("%w: dog skill %s", apperrors.ErrNotFound, in.DogSkillID)
		}

		row := &types.PracticeSession{
			ID:               uuid.New(),
			DogSkillID:       ds.ID,
			Context:          practiceContext,
			DistractionLevel: in.DistractionLevel,
			SuccessRate:      in.SuccessRate,
			DurationMinutes:  in.DurationMinutes,
			Notes:            in.Notes,
			CreatedAt:        time.Now().UTC(),
		}
		if _, err := s.sessions.Create(dbc, []*types.PracticeSession{row}); err != nil {
			return err
		}
		if err := s.dogSkills.IncrementTotalSessions(dbc, ds.ID); err != nil {
			return err
		}
		session = row
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("practice session recorded",
		"dog_skill_id", in.DogSkillID,
		"context", practiceContext,
		"success_rate", in.SuccessRate,
	)
	return session, nil
}

func (s *sessionService) ListForDogSkill(ctx context.Context, dogSkillID uuid.UUID) ([]*types.PracticeSession, error) {
	if dogSkillID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing dog skill id", apperrors.ErrValidation)
	}
	return s.sessions.ListByDogSkill(dbctx.Context{Ctx: ctx}, dogSkillID)
}
