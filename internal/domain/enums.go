package domain

// ProficiencyLevel is how far a dog has taken a skill. Levels only ever
// advance forward, one step at a time.
type ProficiencyLevel string

const (
	ProficiencyBasic       ProficiencyLevel = "basic"
	ProficiencyGeneralized ProficiencyLevel = "generalized"
	ProficiencyProofed     ProficiencyLevel = "proofed"
)

// Next returns the immediate successor level. ok is false at the terminal
// level (proofed has no outbound transition).
func (l ProficiencyLevel) Next() (ProficiencyLevel, bool) {
	switch l {
	case ProficiencyBasic:
		return ProficiencyGeneralized, true
	case ProficiencyGeneralized:
		return ProficiencyProofed, true
	default:
		return "", false
	}
}

func (l ProficiencyLevel) Valid() bool {
	switch l {
	case ProficiencyBasic, ProficiencyGeneralized, ProficiencyProofed:
		return true
	}
	return false
}

// Terminal reports whether the level has no successor.
func (l ProficiencyLevel) Terminal() bool {
	_, ok := l.Next()
	return !ok
}

// Index is the level's position in the progression order, -1 for unknown
// levels. Used by the administrative demotion path to compare levels.
func (l ProficiencyLevel) Index() int {
	switch l {
	case ProficiencyBasic:
		return 0
	case ProficiencyGeneralized:
		return 1
	case ProficiencyProofed:
		return 2
	default:
		return -1
	}
}

type SkillStatus string

const (
	SkillStatusNotStarted SkillStatus = "not_started"
	SkillStatusLearning   SkillStatus = "learning"
	SkillStatusMastered   SkillStatus = "mastered"
)

type DistractionLevel string

const (
	DistractionNone     DistractionLevel = "none"
	DistractionMild     DistractionLevel = "mild"
	DistractionModerate DistractionLevel = "moderate"
	DistractionHigh     DistractionLevel = "high"
)

func (d DistractionLevel) Valid() bool {
	switch d {
	case DistractionNone, DistractionMild, DistractionModerate, DistractionHigh:
		return true
	}
	return false
}

// SessionContexts is the global vocabulary of practice contexts. The
// requirement catalog keys its contexts_required against these labels.
var SessionContexts = map[string]bool{
	"home":           true,
	"backyard":       true,
	"park":           true,
	"street":         true,
	"training-class": true,
	"friends-house":  true,
	"pet-store":      true,
}

func ValidSessionContext(context string) bool {
	return SessionContexts[context]
}
