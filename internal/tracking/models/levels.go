package models

import (
	"database/sql/driver"
	"fmt"
)

// LearningLevel is one of six ordered mastery stages, loosely after Bloom's
// taxonomy. Levels are persisted by name so reordering the constants in code
// never changes what is stored.
type LearningLevel string

const (
	LevelRemember   LearningLevel = "REMEMBER"
	LevelUnderstand LearningLevel = "UNDERSTAND"
	LevelApply      LearningLevel = "APPLY"
	LevelAnalyze    LearningLevel = "ANALYZE"
	LevelEvaluate   LearningLevel = "EVALUATE"
	LevelCreate     LearningLevel = "CREATE"
)

// AllLevels returns all levels in ascending order.
func AllLevels() []LearningLevel {
	return []LearningLevel{
		LevelRemember,
		LevelUnderstand,
		LevelApply,
		LevelAnalyze,
		LevelEvaluate,
		LevelCreate,
	}
}

// Order returns the level's ordinal, 1 through 6.
func (l LearningLevel) Order() int {
	switch l {
	case LevelRemember:
		return 1
	case LevelUnderstand:
		return 2
	case LevelApply:
		return 3
	case LevelAnalyze:
		return 4
	case LevelEvaluate:
		return 5
	case LevelCreate:
		return 6
	}
	return 0
}

// DisplayName returns the human-readable name for the level.
func (l LearningLevel) DisplayName() string {
	switch l {
	case LevelRemember:
		return "Remember"
	case LevelUnderstand:
		return "Understand"
	case LevelApply:
		return "Apply"
	case LevelAnalyze:
		return "Analyze"
	case LevelEvaluate:
		return "Evaluate"
	case LevelCreate:
		return "Create"
	}
	return string(l)
}

// Description returns a short explanation of what the level means.
func (l LearningLevel) Description() string {
	switch l {
	case LevelRemember:
		return "Recall facts and basic concepts"
	case LevelUnderstand:
		return "Explain ideas and concepts"
	case LevelApply:
		return "Use information in new situations"
	case LevelAnalyze:
		return "Draw connections among ideas"
	case LevelEvaluate:
		return "Justify decisions and actions"
	case LevelCreate:
		return "Produce new or original work"
	}
	return ""
}

// Valid reports whether the level is one of the defined stages.
func (l LearningLevel) Valid() bool {
	return l.Order() != 0
}

// LevelFromOrder maps an ordinal back to its level. The mapping is exact:
// ordinals outside 1..6 are an error, never a default.
func LevelFromOrder(order int) (LearningLevel, error) {
	for _, l := range AllLevels() {
		if l.Order() == order {
			return l, nil
		}
	}
	return "", fmt.Errorf("no learning level with order %d", order)
}

// ParseLearningLevel converts a stored name back to a level. Unknown names
// fail loudly; silently coercing would corrupt mastery semantics.
func ParseLearningLevel(value string) (LearningLevel, error) {
	l := LearningLevel(value)
	if !l.Valid() {
		return "", fmt.Errorf("unknown learning level %q", value)
	}
	return l, nil
}

// Value implements driver.Valuer.
func (l LearningLevel) Value() (driver.Value, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("unknown learning level %q", string(l))
	}
	return string(l), nil
}

// Scan implements sql.Scanner.
func (l *LearningLevel) Scan(src interface{}) error {
	s, err := scanEnumString(src)
	if err != nil {
		return fmt.Errorf("learning level: %w", err)
	}
	parsed, err := ParseLearningLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ActivityType classifies a recorded study interaction.
type ActivityType string

const (
	// ActivityFlashcardStudy records studying a single card.
	ActivityFlashcardStudy ActivityType = "FLASHCARD_STUDY"
	// ActivityPracticeSession records a completed timed practice.
	ActivityPracticeSession ActivityType = "PRACTICE_SESSION"
	// ActivityLevelAssessment records a level-up challenge.
	ActivityLevelAssessment ActivityType = "LEVEL_ASSESSMENT"
	// ActivityContentCreated records the learner authoring a card or project.
	ActivityContentCreated ActivityType = "CONTENT_CREATED"
)

// AllActivityTypes returns the defined activity types.
func AllActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityFlashcardStudy,
		ActivityPracticeSession,
		ActivityLevelAssessment,
		ActivityContentCreated,
	}
}

// Valid reports whether the type is one of the defined variants.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityFlashcardStudy, ActivityPracticeSession,
		ActivityLevelAssessment, ActivityContentCreated:
		return true
	}
	return false
}

// ParseActivityType converts a stored name back to a type, failing on
// unknown names.
func ParseActivityType(value string) (ActivityType, error) {
	t := ActivityType(value)
	if !t.Valid() {
		return "", fmt.Errorf("unknown activity type %q", value)
	}
	return t, nil
}

// Value implements driver.Valuer.
func (t ActivityType) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown activity type %q", string(t))
	}
	return string(t), nil
}

// Scan implements sql.Scanner.
func (t *ActivityType) Scan(src interface{}) error {
	s, err := scanEnumString(src)
	if err != nil {
		return fmt.Errorf("activity type: %w", err)
	}
	parsed, err := ParseActivityType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func scanEnumString(src interface{}) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("cannot scan %T into enum", src)
	}
}
