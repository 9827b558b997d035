package repos_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/pawsteps/pawsteps-backend/internal/data/repos"
	"github.com/pawsteps/pawsteps-backend/internal/data/repos/testutil"
	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
)

func TestDogSkillRepoRoundTrip(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := repos.NewDogSkillRepo(db, testutil.Logger(t))

	dog := testutil.SeedDog(t, ctx, tx, "Hazel")
	skill := testutil.SeedSkill(t, ctx, tx, "shake")
	ds := testutil.SeedDogSkill(t, ctx, tx, dog.ID, skill.ID, types.ProficiencyBasic)

	got, err := repo.GetByID(dbc, ds.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got == nil || got.ID != ds.ID {
		t.Fatalf("get by id: got %+v", got)
	}

	got, err = repo.GetByDogAndSkill(dbc, dog.ID, skill.ID)
	if err != nil {
		t.Fatalf("get by dog and skill: %v", err)
	}
	if got == nil || got.ID != ds.ID {
		t.Fatalf("get by dog and skill: got %+v", got)
	}

	got, err = repo.GetByDogAndSkill(dbc, dog.ID, uuid.New())
	if err != nil {
		t.Fatalf("get by dog and unknown skill: %v", err)
	}
	if got != nil {
		t.Fatalf("unknown pair should return nil, got %+v", got)
	}

	rows, err := repo.ListByDog(dbc, dog.ID)
	if err != nil {
		t.Fatalf("list by dog: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("list by dog: want=1 got=%d", len(rows))
	}
}

func TestDogSkillRepoIncrementTotalSessions(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := repos.NewDogSkillRepo(db, testutil.Logger(t))

	dog := testutil.SeedDog(t, ctx, tx, "Basil")
	skill := testutil.SeedSkill(t, ctx, tx, "wait")
	ds := testutil.SeedDogSkill(t, ctx, tx, dog.ID, skill.ID, types.ProficiencyBasic)

	for i := 0; i < 3; i++ {
		if err := repo.IncrementTotalSessions(dbc, ds.ID); err != nil {
			t.Fatalf("increment %d: %v", i, err)
		}
	}
	got, err := repo.GetByID(dbc, ds.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.TotalSessions != 3 {
		t.Fatalf("total_sessions: want=3 got=%d", got.TotalSessions)
	}
}

func TestDogSkillRepoUpdateLevelFromGuard(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := repos.NewDogSkillRepo(db, testutil.Logger(t))

	dog := testutil.SeedDog(t, ctx, tx, "Scout")
	skill := testutil.SeedSkill(t, ctx, tx, "place")
	ds := testutil.SeedDogSkill(t, ctx, tx, dog.ID, skill.ID, types.ProficiencyBasic)

	applied, err := repo.UpdateLevelFrom(dbc, ds.ID, types.ProficiencyBasic, types.ProficiencyGeneralized)
	if err != nil {
		t.Fatalf("guarded update: %v", err)
	}
	if !applied {
		t.Fatalf("expected guarded update to apply")
	}

	// A stale expectation matches no row.
	applied, err = repo.UpdateLevelFrom(dbc, ds.ID, types.ProficiencyBasic, types.ProficiencyProofed)
	if err != nil {
		t.Fatalf("stale guarded update: %v", err)
	}
	if applied {
		t.Fatalf("stale expectation must not apply")
	}

	got, err := repo.GetByID(dbc, ds.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.ProficiencyLevel != types.ProficiencyGeneralized {
		t.Fatalf("level: want=generalized got=%s", got.ProficiencyLevel)
	}
}
