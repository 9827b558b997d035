package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawsteps/pawsteps-backend/internal/data/repos"
	"github.com/pawsteps/pawsteps-backend/internal/data/repos/testutil"
	types "github.com/pawsteps/pawsteps-backend/internal/domain"
)

var catalogOnce sync.Once

// seedCatalog installs the requirement rows every flow test in this package
// shares. The table is keyed by level, so the values are seeded once for the
// whole binary.
func seedCatalog(tb testing.TB, db *gorm.DB) {
	tb.Helper()
	catalogOnce.Do(func() {
		ctx := context.Background()
		testutil.SeedRequirement(tb, ctx, db, types.ProficiencyBasic, 3, []string{"home", "park"}, 70)
		testutil.SeedRequirement(tb, ctx, db, types.ProficiencyGeneralized, 5, []string{"park", "street", "friends-house"}, 70)
		testutil.SeedRequirement(tb, ctx, db, types.ProficiencyProofed, 4, []string{"training-class"}, 70)
	})
}

type testEnv struct {
	db *gorm.DB

	dogs         repos.DogRepo
	skills       repos.SkillRepo
	dogSkills    repos.DogSkillRepo
	sessionRepo  repos.PracticeSessionRepo
	requirements repos.ProficiencyRequirementRepo
	mediaAssets  repos.MediaAssetRepo

	catalog     CatalogService
	progression ProgressionService
	sessions    SessionService
	transitions TransitionService
	lifecycle   LifecycleService
}

func newTestEnv(tb testing.TB) *testEnv {
	tb.Helper()
	log := testutil.Logger(tb)
	db := testutil.DB(tb)
	seedCatalog(tb, db)

	env := &testEnv{
		db:           db,
		dogs:         repos.NewDogRepo(db, log),
		skills:       repos.NewSkillRepo(db, log),
		dogSkills:    repos.NewDogSkillRepo(db, log),
		sessionRepo:  repos.NewPracticeSessionRepo(db, log),
		requirements: repos.NewProficiencyRequirementRepo(db, log),
		mediaAssets:  repos.NewMediaAssetRepo(db, log),
	}
	env.catalog = NewCatalogService(db, log, env.requirements)
	env.progression = NewProgressionService(db, log, env.catalog, env.dogSkills, env.sessionRepo)
	env.sessions = NewSessionService(db, log, env.dogSkills, env.sessionRepo)
	env.transitions = NewTransitionService(db, log, env.dogSkills, env.progression)
	env.lifecycle = NewLifecycleService(db, log, env.dogs, env.skills, env.dogSkills, env.progression)
	return env
}

func (env *testEnv) record(tb testing.TB, ctx context.Context, dogSkillID uuid.UUID, practiceContext string, successRate int) {
	tb.Helper()
	_, err := env.sessions.Record(ctx, RecordSessionInput{
		DogSkillID:       dogSkillID,
		Context:          practiceContext,
		DistractionLevel: types.DistractionMild,
		SuccessRate:      successRate,
		DurationMinutes:  10,
	})
	if err != nil {
		tb.Fatalf("record session (%s, %d): %v", practiceContext, successRate, err)
	}
}
