package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/datatypes"

	"github.com/pawsteps/pawsteps-backend/internal/data/repos/testutil"
	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
	apperrors "github.com/pawsteps/pawsteps-backend/internal/pkg/errors"
)

type countingRequirementRepo struct {
	rows     map[types.ProficiencyLevel]*types.ProficiencyRequirement
	getCalls int
}

func (r *countingRequirementRepo) GetByLevel(_ dbctx.Context, level types.ProficiencyLevel) (*types.ProficiencyRequirement, error) {
	r.getCalls++
	return r.rows[level], nil
}

func (r *countingRequirementRepo) List(dbctx.Context) ([]*types.ProficiencyRequirement, error) {
	out := make([]*types.ProficiencyRequirement, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, row)
	}
	return out, nil
}

func TestRequirementForCachesPositiveLookups(t *testing.T) {
	repo := &countingRequirementRepo{
		rows: map[types.ProficiencyLevel]*types.ProficiencyRequirement{
			types.ProficiencyBasic: snapshotRequirement(5, []string{"home"}, 70),
		},
	}
	catalog := NewCatalogService(nil, testutil.Logger(t), repo)
	dbc := dbctx.Context{Ctx: context.Background()}

	for i := 0; i < 3; i++ {
		req, err := catalog.RequirementFor(dbc, types.ProficiencyBasic)
		if err != nil {
			t.Fatalf("lookup %d: %v", i, err)
		}
		if req.MinSessionsRequired != 5 {
			t.Fatalf("lookup %d: got %+v", i, req)
		}
	}
	if repo.getCalls != 1 {
		t.Fatalf("storage hits: want=1 got=%d", repo.getCalls)
	}
}

func TestRequirementForMissingLevel(t *testing.T) {
	repo := &countingRequirementRepo{rows: map[types.ProficiencyLevel]*types.ProficiencyRequirement{}}
	catalog := NewCatalogService(nil, testutil.Logger(t), repo)
	dbc := dbctx.Context{Ctx: context.Background()}

	if _, err := catalog.RequirementFor(dbc, types.ProficiencyProofed); !errors.Is(err, apperrors.ErrConfiguration) {
		t.Fatalf("want ErrConfiguration got %v", err)
	}

	// Misses are never cached: the catalog retries storage on each lookup.
	if _, err := catalog.RequirementFor(dbc, types.ProficiencyProofed); !errors.Is(err, apperrors.ErrConfiguration) {
		t.Fatalf("want ErrConfiguration got %v", err)
	}
	if repo.getCalls != 2 {
		t.Fatalf("storage hits: want=2 got=%d", repo.getCalls)
	}
}

func TestRequirementForCorruptContexts(t *testing.T) {
	corrupt := snapshotRequirement(3, nil, 70)
	corrupt.ContextsRequired = datatypes.JSON(`{"park", "training-cl`)
	repo := &countingRequirementRepo{
		rows: map[types.ProficiencyLevel]*types.ProficiencyRequirement{
			types.ProficiencyBasic: corrupt,
		},
	}
	catalog := NewCatalogService(nil, testutil.Logger(t), repo)
	dbc := dbctx.Context{Ctx: context.Background()}

	if _, err := catalog.RequirementFor(dbc, types.ProficiencyBasic); !errors.Is(err, apperrors.ErrConfiguration) {
		t.Fatalf("want ErrConfiguration got %v", err)
	}

	// Bad rows are never cached.
	if _, err := catalog.RequirementFor(dbc, types.ProficiencyBasic); !errors.Is(err, apperrors.ErrConfiguration) {
		t.Fatalf("want ErrConfiguration got %v", err)
	}
	if repo.getCalls != 2 {
		t.Fatalf("storage hits: want=2 got=%d", repo.getCalls)
	}
}

func TestRequirementForEmptyContexts(t *testing.T) {
	repo := &countingRequirementRepo{
		rows: map[types.ProficiencyLevel]*types.ProficiencyRequirement{
			types.ProficiencyBasic: snapshotRequirement(3, []string{}, 70),
		},
	}
	catalog := NewCatalogService(nil, testutil.Logger(t), repo)

	if _, err := catalog.RequirementFor(dbctx.Context{Ctx: context.Background()}, types.ProficiencyBasic); !errors.Is(err, apperrors.ErrConfiguration) {
		t.Fatalf("want ErrConfiguration got %v", err)
	}
}

func TestEvaluateDegradesWithCorruptCatalogEntry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dog := testutil.SeedDog(t, ctx, env.db, "Hazel")
	skill := testutil.SeedSkill(t, ctx, env.db, "spin")
	ds := testutil.SeedDogSkill(t, ctx, env.db, dog.ID, skill.ID, types.ProficiencyBasic)
	testutil.SeedSession(t, ctx, env.db, ds.ID, "home", 85)
	testutil.SeedSession(t, ctx, env.db, ds.ID, "home", 90)
	testutil.SeedSession(t, ctx, env.db, ds.ID, "home", 95)

	corrupt := snapshotRequirement(3, nil, 70)
	corrupt.ContextsRequired = datatypes.JSON(`{"park", "training-cl`)
	badCatalog := NewCatalogService(nil, testutil.Logger(t), &countingRequirementRepo{
		rows: map[types.ProficiencyLevel]*types.ProficiencyRequirement{
			types.ProficiencyBasic: corrupt,
		},
	})
	progression := NewProgressionService(env.db, testutil.Logger(t), badCatalog, env.dogSkills, env.sessionRepo)

	snap, err := progression.Evaluate(dbctx.Context{Ctx: ctx}, ds.ID)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !snap.RequirementsUnavailable {
		t.Fatalf("corrupt catalog row must degrade the snapshot, got %+v", snap)
	}
	if snap.RequirementsMet || snap.CanLevelUp {
		t.Fatalf("corrupt catalog row must never report eligibility, got %+v", snap)
	}
	if len(snap.ContextsRequired) != 0 {
		t.Fatalf("contexts required: want empty got %v", snap.ContextsRequired)
	}
}

func TestEvaluateDegradesWithoutCatalogEntry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dog := testutil.SeedDog(t, ctx, env.db, "Clover")
	skill := testutil.SeedSkill(t, ctx, env.db, "fetch")
	ds := testutil.SeedDogSkill(t, ctx, env.db, dog.ID, skill.ID, types.ProficiencyBasic)
	testutil.SeedSession(t, ctx, env.db, ds.ID, "home", 80)

	emptyCatalog := NewCatalogService(nil, testutil.Logger(t), &countingRequirementRepo{rows: map[types.ProficiencyLevel]*types.ProficiencyRequirement{}})
	progression := NewProgressionService(env.db, testutil.Logger(t), emptyCatalog, env.dogSkills, env.sessionRepo)

	snap, err := progression.Evaluate(dbctx.Context{Ctx: ctx}, ds.ID)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !snap.RequirementsUnavailable || snap.CanLevelUp {
		t.Fatalf("degraded snapshot: got %+v", snap)
	}
	if snap.SessionsCompleted != 1 {
		t.Fatalf("sessions completed: want=1 got=%d", snap.SessionsCompleted)
	}
}

func TestRequirementForInvalidLevel(t *testing.T) {
	repo := &countingRequirementRepo{rows: map[types.ProficiencyLevel]*types.ProficiencyRequirement{}}
	catalog := NewCatalogService(nil, testutil.Logger(t), repo)

	if _, err := catalog.RequirementFor(dbctx.Context{Ctx: context.Background()}, "wizard"); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("want ErrValidation got %v", err)
	}
	if repo.getCalls != 0 {
		t.Fatalf("invalid level must not reach storage, got %d hits", repo.getCalls)
	}
}
