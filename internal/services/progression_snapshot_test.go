package services

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	types "github.com/pawsteps/pawsteps-backend/internal/domain"
)

func snapshotDogSkill(level types.ProficiencyLevel) *types.DogSkill {
	return &types.DogSkill{
		ID:               uuid.New(),
		DogID:            uuid.New(),
		SkillID:          uuid.New(),
		ProficiencyLevel: level,
		Status:           types.SkillStatusLearning,
		StartedAt:        time.Now().UTC(),
	}
}

func snapshotRequirement(minSessions int, contexts []string, minSuccess int) *types.ProficiencyRequirement {
	raw, _ := json.Marshal(contexts)
	return &types.ProficiencyRequirement{
		ID:                  uuid.New(),
		ProficiencyLevel:    types.ProficiencyBasic,
		MinSessionsRequired: minSessions,
		ContextsRequired:    datatypes.JSON(raw),
		MinSuccessRate:      minSuccess,
	}
}

func snapshotSession(context string, successRate int) *types.PracticeSession {
	return &types.PracticeSession{
		ID:               uuid.New(),
		Context:          context,
		DistractionLevel: types.DistractionMild,
		SuccessRate:      successRate,
		CreatedAt:        time.Now().UTC(),
	}
}

func TestSnapshotZeroSessionsNeverEligible(t *testing.T) {
	ds := snapshotDogSkill(types.ProficiencyBasic)
	// Thresholds at zero so only the session-count guard can block.
	req := snapshotRequirement(0, []string{"home"}, 0)

	snap := computeSnapshot(ds, req, nil)
	if snap.CanLevelUp {
		t.Fatalf("zero sessions must never unlock a level-up")
	}
	if snap.RequirementsMet {
		t.Fatalf("zero sessions must never satisfy requirements")
	}
	if snap.SessionsCompleted != 0 || snap.AverageSuccessRate != 0 {
		t.Fatalf("zero-session counts: got sessions=%d avg=%v", snap.SessionsCompleted, snap.AverageSuccessRate)
	}
}

func TestSnapshotContextSupersetRequired(t *testing.T) {
	ds := snapshotDogSkill(types.ProficiencyBasic)
	req := snapshotRequirement(2, []string{"home", "park"}, 70)

	sessions := []*types.PracticeSession{
		snapshotSession("home", 90),
		snapshotSession("home", 85),
		snapshotSession("home", 95),
	}
	snap := computeSnapshot(ds, req, sessions)
	if snap.CanLevelUp {
		t.Fatalf("missing required context must block level-up")
	}
	if len(snap.ContextsCompleted) != 1 || snap.ContextsCompleted[0] != "home" {
		t.Fatalf("contexts completed: got %v", snap.ContextsCompleted)
	}

	sessions = append(sessions, snapshotSession("park", 75))
	snap = computeSnapshot(ds, req, sessions)
	if !snap.CanLevelUp {
		t.Fatalf("covering all required contexts should unlock level-up, got %+v", snap)
	}
}

func TestSnapshotOffCatalogContextCountsTowardTotals(t *testing.T) {
	ds := snapshotDogSkill(types.ProficiencyBasic)
	req := snapshotRequirement(3, []string{"home"}, 70)

	// backyard is a real context but not required at this level: it counts
	// toward the session total and average, not the required-context set.
	sessions := []*types.PracticeSession{
		snapshotSession("home", 80),
		snapshotSession("backyard", 80),
		snapshotSession("backyard", 80),
	}
	snap := computeSnapshot(ds, req, sessions)
	if snap.SessionsCompleted != 3 {
		t.Fatalf("sessions completed: want=3 got=%d", snap.SessionsCompleted)
	}
	if len(snap.ContextsCompleted) != 1 || snap.ContextsCompleted[0] != "home" {
		t.Fatalf("contexts completed: got %v", snap.ContextsCompleted)
	}
	if !snap.CanLevelUp {
		t.Fatalf("expected level-up unlocked, got %+v", snap)
	}
}

func TestSnapshotAverageBoundaryInclusive(t *testing.T) {
	ds := snapshotDogSkill(types.ProficiencyBasic)
	req := snapshotRequirement(2, []string{"home"}, 70)

	// 60 and 80 average exactly 70: the boundary is inclusive.
	sessions := []*types.PracticeSession{
		snapshotSession("home", 60),
		snapshotSession("home", 80),
	}
	snap := computeSnapshot(ds, req, sessions)
	if snap.AverageSuccessRate != 70 {
		t.Fatalf("average: want=70 got=%v", snap.AverageSuccessRate)
	}
	if !snap.CanLevelUp {
		t.Fatalf("average of exactly 70 must satisfy min_success_rate=70")
	}

	sessions = []*types.PracticeSession{
		snapshotSession("home", 60),
		snapshotSession("home", 78),
	}
	snap = computeSnapshot(ds, req, sessions)
	if snap.AverageSuccessRate != 69 {
		t.Fatalf("average: want=69 got=%v", snap.AverageSuccessRate)
	}
	if snap.CanLevelUp {
		t.Fatalf("average of 69 must not satisfy min_success_rate=70")
	}
}

func TestSnapshotTerminalLevelMetButNoLevelUp(t *testing.T) {
	ds := snapshotDogSkill(types.ProficiencyProofed)
	req := snapshotRequirement(1, []string{"home"}, 70)

	snap := computeSnapshot(ds, req, []*types.PracticeSession{snapshotSession("home", 90)})
	if !snap.RequirementsMet {
		t.Fatalf("requirements should be met at terminal level")
	}
	if snap.CanLevelUp {
		t.Fatalf("terminal level has no outbound transition")
	}
}

func TestSnapshotCorruptContextsDisablesLevelUp(t *testing.T) {
	ds := snapshotDogSkill(types.ProficiencyBasic)
	// Truncated JSON in contexts_required must not collapse the context gate
	// into an empty, trivially satisfied set.
	req := snapshotRequirement(3, nil, 70)
	req.ContextsRequired = datatypes.JSON(`{"park", "training-cl`)

	sessions := []*types.PracticeSession{
		snapshotSession("home", 90),
		snapshotSession("home", 85),
		snapshotSession("home", 95),
	}
	snap := computeSnapshot(ds, req, sessions)
	if !snap.RequirementsUnavailable {
		t.Fatalf("corrupt contexts must flag requirements_unavailable, got %+v", snap)
	}
	if snap.RequirementsMet || snap.CanLevelUp {
		t.Fatalf("corrupt contexts must never unlock a level-up, got %+v", snap)
	}
	if snap.SessionsCompleted != 3 {
		t.Fatalf("sessions completed: want=3 got=%d", snap.SessionsCompleted)
	}
}

func TestSnapshotEmptyContextsDisablesLevelUp(t *testing.T) {
	ds := snapshotDogSkill(types.ProficiencyBasic)
	req := snapshotRequirement(1, []string{}, 0)

	snap := computeSnapshot(ds, req, []*types.PracticeSession{snapshotSession("home", 90)})
	if !snap.RequirementsUnavailable || snap.CanLevelUp {
		t.Fatalf("empty context set must degrade, got %+v", snap)
	}
}

func TestSnapshotRequirementsUnavailable(t *testing.T) {
	ds := snapshotDogSkill(types.ProficiencyBasic)
	sessions := []*types.PracticeSession{
		snapshotSession("home", 80),
		snapshotSession("park", 70),
	}

	snap := computeSnapshot(ds, nil, sessions)
	if !snap.RequirementsUnavailable {
		t.Fatalf("missing requirement must flag requirements_unavailable")
	}
	if snap.CanLevelUp || snap.RequirementsMet {
		t.Fatalf("missing requirement must disable level-up")
	}
	// The read still degrades to raw counts.
	if snap.SessionsCompleted != 2 {
		t.Fatalf("sessions completed: want=2 got=%d", snap.SessionsCompleted)
	}
	if math.Abs(snap.AverageSuccessRate-75) > 1e-9 {
		t.Fatalf("average: want=75 got=%v", snap.AverageSuccessRate)
	}
}
