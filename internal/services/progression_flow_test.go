package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/pawsteps/pawsteps-backend/internal/data/repos/testutil"
	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	apperrors "github.com/pawsteps/pawsteps-backend/internal/pkg/errors"
)

// Walks one dog skill from first session to mastery and back: every lifecycle
// operation in the order a trainer would hit them.
func TestSkillJourneyEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dog := testutil.SeedDog(t, ctx, env.db, "Biscuit")
	skill := testutil.SeedSkill(t, ctx, env.db, "sit-stay")

	ds, err := env.lifecycle.Start(ctx, dog.ID, skill.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if ds.ProficiencyLevel != types.ProficiencyBasic || ds.Status != types.SkillStatusLearning || ds.TotalSessions != 0 {
		t.Fatalf("fresh dog skill: got %+v", ds)
	}

	// Starting again returns the same record untouched.
	again, err := env.lifecycle.Start(ctx, dog.ID, skill.ID)
	if err != nil {
		t.Fatalf("start again: %v", err)
	}
	if again.ID != ds.ID || again.TotalSessions != 0 {
		t.Fatalf("start is not idempotent: first=%s second=%s", ds.ID, again.ID)
	}

	// Basic requires 3 sessions across home and park averaging 70.
	env.record(t, ctx, ds.ID, "home", 80)
	env.record(t, ctx, ds.ID, "park", 75)
	env.record(t, ctx, ds.ID, "home", 90)

	reloaded, err := env.dogSkills.GetByID(dbctx.Context{Ctx: ctx}, ds.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.TotalSessions != 3 {
		t.Fatalf("total_sessions: want=3 got=%d", reloaded.TotalSessions)
	}

	snap, err := env.progression.Evaluate(dbctx.Context{Ctx: ctx}, ds.ID)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if snap.SessionsCompleted != 3 || len(snap.ContextsCompleted) != 2 {
		t.Fatalf("snapshot counts: got %+v", snap)
	}
	if snap.AverageSuccessRate < 81.6 || snap.AverageSuccessRate > 81.7 {
		t.Fatalf("average: want~81.67 got=%v", snap.AverageSuccessRate)
	}
	if !snap.CanLevelUp {
		t.Fatalf("expected level-up unlocked, got %+v", snap)
	}

	// Skipping a level is rejected no matter how much progress exists.
	if _, err := env.transitions.LevelUp(ctx, ds.ID, types.ProficiencyProofed); !errors.Is(err, apperrors.ErrIneligibleTransition) {
		t.Fatalf("skip to proofed: want ErrIneligibleTransition got %v", err)
	}
	// So is re-confirming the current level.
	if _, err := env.transitions.LevelUp(ctx, ds.ID, types.ProficiencyBasic); !errors.Is(err, apperrors.ErrIneligibleTransition) {
		t.Fatalf("level-up to current level: want ErrIneligibleTransition got %v", err)
	}

	ds, err = env.transitions.LevelUp(ctx, ds.ID, types.ProficiencyGeneralized)
	if err != nil {
		t.Fatalf("level up to generalized: %v", err)
	}
	if ds.ProficiencyLevel != types.ProficiencyGeneralized {
		t.Fatalf("level after advance: got %s", ds.ProficiencyLevel)
	}

	// Generalized requires 5 sessions; only 3 exist yet.
	if _, err := env.transitions.LevelUp(ctx, ds.ID, types.ProficiencyProofed); !errors.Is(err, apperrors.ErrIneligibleTransition) {
		t.Fatalf("premature level-up: want ErrIneligibleTransition got %v", err)
	}
	// Mastery is only confirmable at proofed.
	if _, err := env.lifecycle.MarkMastered(ctx, ds.ID); !errors.Is(err, apperrors.ErrNotEligible) {
		t.Fatalf("mastery before proofed: want ErrNotEligible got %v", err)
	}

	env.record(t, ctx, ds.ID, "park", 75)
	env.record(t, ctx, ds.ID, "street", 80)
	env.record(t, ctx, ds.ID, "friends-house", 85)

	ds, err = env.transitions.LevelUp(ctx, ds.ID, types.ProficiencyProofed)
	if err != nil {
		t.Fatalf("level up to proofed: %v", err)
	}

	// Proofed is terminal.
	if _, err := env.transitions.LevelUp(ctx, ds.ID, types.ProficiencyProofed); !errors.Is(err, apperrors.ErrIneligibleTransition) {
		t.Fatalf("level-up at terminal level: want ErrIneligibleTransition got %v", err)
	}

	// Proofed requires a training-class session; none recorded yet.
	if _, err := env.lifecycle.MarkMastered(ctx, ds.ID); !errors.Is(err, apperrors.ErrNotEligible) {
		t.Fatalf("mastery before proofed requirements: want ErrNotEligible got %v", err)
	}

	env.record(t, ctx, ds.ID, "training-class", 90)

	ds, err = env.lifecycle.MarkMastered(ctx, ds.ID)
	if err != nil {
		t.Fatalf("mark mastered: %v", err)
	}
	if ds.Status != types.SkillStatusMastered || ds.MasteredAt == nil {
		t.Fatalf("mastered record: got %+v", ds)
	}
	if ds.TotalSessions != 7 {
		t.Fatalf("total_sessions after journey: want=7 got=%d", ds.TotalSessions)
	}

	// Reset returns to learning without touching level or history.
	ds, err = env.lifecycle.Reset(ctx, ds.ID)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if ds.Status != types.SkillStatusLearning {
		t.Fatalf("status after reset: got %s", ds.Status)
	}
	if ds.ProficiencyLevel != types.ProficiencyProofed || ds.TotalSessions != 7 {
		t.Fatalf("reset must not wipe progress: got %+v", ds)
	}

	// Demotion is one step down only.
	if _, err := env.lifecycle.Demote(ctx, ds.ID, types.ProficiencyBasic); !errors.Is(err, apperrors.ErrIneligibleTransition) {
		t.Fatalf("two-step demotion: want ErrIneligibleTransition got %v", err)
	}
	ds, err = env.lifecycle.Demote(ctx, ds.ID, types.ProficiencyGeneralized)
	if err != nil {
		t.Fatalf("demote: %v", err)
	}
	if ds.ProficiencyLevel != types.ProficiencyGeneralized || ds.Status != types.SkillStatusLearning {
		t.Fatalf("demoted record: got %+v", ds)
	}
}

func TestEvaluateUnknownDogSkill(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.progression.Evaluate(dbctx.Context{Ctx: ctx}, uuid.New()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}

func TestStartUnknownDogOrSkill(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dog := testutil.SeedDog(t, ctx, env.db, "Maple")
	skill := testutil.SeedSkill(t, ctx, env.db, "roll-over")

	if _, err := env.lifecycle.Start(ctx, uuid.New(), skill.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("unknown dog: want ErrNotFound got %v", err)
	}
	if _, err := env.lifecycle.Start(ctx, dog.ID, uuid.New()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("unknown skill: want ErrNotFound got %v", err)
	}
}
