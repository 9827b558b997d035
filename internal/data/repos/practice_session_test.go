package repos_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pawsteps/pawsteps-backend/internal/data/repos"
	"github.com/pawsteps/pawsteps-backend/internal/data/repos/testutil"
	types "github.com/pawsteps/pawsteps-backend/internal/domain"
	"github.com/pawsteps/pawsteps-backend/internal/pkg/dbctx"
)

func TestPracticeSessionRepoListOrdering(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := repos.NewPracticeSessionRepo(db, testutil.Logger(t))

	dog := testutil.SeedDog(t, ctx, tx, "Willow")
	skill := testutil.SeedSkill(t, ctx, tx, "leave-it")
	ds := testutil.SeedDogSkill(t, ctx, tx, dog.ID, skill.ID, types.ProficiencyBasic)

	base := time.Now().UTC().Add(-time.Hour)
	for i, c := range []string{"home", "park", "street"} {
		row := &types.PracticeSession{
			ID:               uuid.New(),
			DogSkillID:       ds.ID,
			Context:          c,
			DistractionLevel: types.DistractionNone,
			SuccessRate:      70 + i,
			CreatedAt:        base.Add(time.Duration(i) * time.Minute),
		}
		if _, err := repo.Create(dbc, []*types.PracticeSession{row}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	rows, err := repo.ListByDogSkill(dbc, ds.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("list: want=3 got=%d", len(rows))
	}
	for i, want := range []string{"home", "park", "street"} {
		if rows[i].Context != want {
			t.Fatalf("row %d: want context=%s got=%s", i, want, rows[i].Context)
		}
	}

	count, err := repo.CountByDogSkill(dbc, ds.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("count: want=3 got=%d", count)
	}

	got, err := repo.GetByID(dbc, rows[0].ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got == nil || got.Context != "home" {
		t.Fatalf("get by id: got %+v", got)
	}
}

func TestPracticeSessionRepoUnknownDogSkill(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := repos.NewPracticeSessionRepo(db, testutil.Logger(t))

	rows, err := repo.ListByDogSkill(dbc, uuid.New())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("list: want=0 got=%d", len(rows))
	}
}
