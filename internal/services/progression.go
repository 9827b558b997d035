package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawsteps/pawsteps-backend/internal/data/repos"
	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	apperrors "github.com/pawsteps/pawsteps-backend/internal/pkg/errors"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
)

// ProgressSnapshot is derived on every read and never persisted. It reports
// progress toward the current proficiency level's requirements.
type ProgressSnapshot struct {
	DogSkillID       uuid.UUID              `json:"dog_skill_id"`
	ProficiencyLevel types.ProficiencyLevel `json:"proficiency_level"`
	Status           types.SkillStatus      `json:"status"`

	SessionsCompleted  int      `json:"sessions_completed"`
	SessionsRequired   int      `json:"sessions_required"`
	ContextsCompleted  []string `json:"contexts_completed"`
	ContextsRequired   []string `json:"contexts_required"`
	AverageSuccessRate float64  `json:"average_success_rate"`
	MinSuccessRate     int      `json:"min_success_rate"`

	// RequirementsMet is true when every threshold for the current level is
	// satisfied, including at the terminal level where no further level-up
	// exists. Mastery confirmation keys off this.
	RequirementsMet bool `json:"requirements_met"`
	// CanLevelUp additionally requires a successor level to exist.
	CanLevelUp bool `json:"can_level_up"`
	// RequirementsUnavailable flags a missing catalog entry for the current
	// level: the snapshot degrades to raw counts with level-up disabled.
	RequirementsUnavailable bool `json:"requirements_unavailable,omitempty"`
}

type ProgressionService interface {
	Evaluate(dbc dbctx.Context, dogSkillID uuid.UUID) (*ProgressSnapshot, error)
}

type progressionService struct {
	db        *gorm.DB
	log       *logger.Logger
	catalog   CatalogService
	dogSkills repos.DogSkillRepo
	sessions  repos.PracticeSessionRepo
}

func NewProgressionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	catalog CatalogService,
	dogSkills repos.DogSkillRepo,
	sessions repos.PracticeSessionRepo,
) ProgressionService {
	return &progressionService{
		db:        db,
		log:       baseLog.With("service", "ProgressionService"),
		catalog:   catalog,
		dogSkills: dogSkills,
		sessions:  sessions,
	}
}

// Evaluate computes the progress snapshot for the DogSkill's current level.
//
// Session scope: every session ever recorded for the DogSkill counts toward
// the current level, not just sessions since the last level-up. This mirrors
// the product's established behavior; sessions that carried a dog to
// generalized keep counting toward proofed.
func (s *progressionService) Evaluate(dbc dbctx.Context, dogSkillID uuid.UUID) (*ProgressSnapshot, error) {
	if dogSkillID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing dog skill id", apperrors.ErrValidation)
	}

	ds, err := s.dogSkills.GetByID(dbc, dogSkillID)
	if err != nil {
		return nil, err
	}
	if ds == nil {
		return nil, fmt.Errorf("%w: dog skill %s", apperrors.ErrNotFound, dogSkillID)
	}

	sessions, err := s.sessions.ListByDogSkill(dbc, dogSkillID)
	if err != nil {
		return nil, err
	}

	req, err := s.catalog.RequirementFor(dbc, ds.ProficiencyLevel)
	if err != nil {
		if errors.Is(err, apperrors.ErrConfiguration) {
			// Degrade to raw counts; never crash the read on a catalog gap.
			snap := computeSnapshot(ds, nil, sessions)
			return snap, nil
		}
		return nil, err
	}

	return computeSnapshot(ds, req, sessions), nil
}

// computeSnapshot is the pure aggregation over loaded rows. A nil requirement
// means the catalog had no entry for the current level.
func computeSnapshot(ds *types.DogSkill, req *types.ProficiencyRequirement, sessions []*types.PracticeSession) *ProgressSnapshot {
	snap := &ProgressSnapshot{
		DogSkillID:        ds.ID,
		ProficiencyLevel:  ds.ProficiencyLevel,
		Status:            ds.Status,
		SessionsCompleted: len(sessions),
		ContextsCompleted: []string{},
		ContextsRequired:  []string{},
	}

	if len(sessions) > 0 {
		total := 0
		for _, sess := range sessions {
			total += sess.SuccessRate
		}
		snap.AverageSuccessRate = float64(total) / float64(len(sessions))
	}

	if req == nil {
		snap.RequirementsUnavailable = true
		return snap
	}

	required, err := req.ContextList()
	if err != nil || len(required) == 0 {
		snap.RequirementsUnavailable = true
		return snap
	}
	requiredSet := make(map[string]bool, len(required))
	for _, c := range required {
		requiredSet[c] = true
	}
	snap.ContextsRequired = required
	snap.SessionsRequired = req.MinSessionsRequired
	snap.MinSuccessRate = req.MinSuccessRate

	// A session in an off-catalog context counts toward the session total and
	// the average, but not toward the required-context set.
	seen := map[string]bool{}
	for _, sess := range sessions {
		if requiredSet[sess.Context] && !seen[sess.Context] {
			seen[sess.Context] = true
			snap.ContextsCompleted = append(snap.ContextsCompleted, sess.Context)
		}
	}
	sort.Strings(snap.ContextsCompleted)

	// Zero sessions is never eligible, even against a degenerate requirement.
	snap.RequirementsMet = len(sessions) > 0 &&
		snap.SessionsCompleted >= req.MinSessionsRequired &&
		len(snap.ContextsCompleted) == len(required) &&
		snap.AverageSuccessRate >= float64(req.MinSuccessRate)
	snap.CanLevelUp = snap.RequirementsMet && !ds.ProficiencyLevel.Terminal()
	return snap
}
