package testutil

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/pawsteps/pawsteps-backend/internal/domain"
)

func SeedDog(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Dog {
	tb.Helper()
	now := time.Now().UTC()
	d := &types.Dog{
		ID:        uuid.New(),
		Name:      name,
		Breed:     "mixed",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed dog: %v", err)
	}
	return d
}

func SeedSkill(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Skill {
	tb.Helper()
	now := time.Now().UTC()
	s := &types.Skill{
		ID:             uuid.New(),
		Name:           name,
		Category:       "obedience",
		Difficulty:     3,
		EstimatedWeeks: 4,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed skill: %v", err)
	}
	return s
}

func SeedDogSkill(tb testing.TB, ctx context.Context, tx *gorm.DB, dogID, skillID uuid.UUID, level types.ProficiencyLevel) *types.DogSkill {
	tb.Helper()
	now := time.Now().UTC()
	ds := &types.DogSkill{
		ID:               uuid.New(),
		DogID:            dogID,
		SkillID:          skillID,
		ProficiencyLevel: level,
		Status:           types.SkillStatusLearning,
		StartedAt:        now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := tx.WithContext(ctx).Create(ds).Error; err != nil {
		tb.Fatalf("seed dog skill: %v", err)
	}
	return ds
}

func SeedRequirement(tb testing.TB, ctx context.Context, tx *gorm.DB, level types.ProficiencyLevel, minSessions int, contexts []string, minSuccessRate int) *types.ProficiencyRequirement {
	tb.Helper()
	raw, err := json.Marshal(contexts)
	if err != nil {
		tb.Fatalf("marshal contexts: %v", err)
	}
	now := time.Now().UTC()
	r := &types.ProficiencyRequirement{
		ID:                  uuid.New(),
		ProficiencyLevel:    level,
		MinSessionsRequired: minSessions,
		ContextsRequired:    datatypes.JSON(raw),
		MinSuccessRate:      minSuccessRate,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed requirement: %v", err)
	}
	return r
}

func SeedSession(tb testing.TB, ctx context.Context, tx *gorm.DB, dogSkillID uuid.UUID, context_ string, successRate int) *types.PracticeSession {
	tb.Helper()
	s := &types.PracticeSession{
		ID:               uuid.New(),
		DogSkillID:       dogSkillID,
		Context:          context_,
		DistractionLevel: types.DistractionMild,
		SuccessRate:      successRate,
		DurationMinutes:  10,
		CreatedAt:        time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed session: %v", err)
	}
	return s
}
