package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromOrder_RoundTripsEveryLevel(t *testing.T) {
	for _, level := range AllLevels() {
		got, err := LevelFromOrder(level.Order())
		require.NoError(t, err)
		assert.Equal(t, level, got)
	}
}

func TestLevelFromOrder_RejectsUndefinedOrdinals(t *testing.T) {
	for _, order := range []int{0, -1, 7, 100} {
		_, err := LevelFromOrder(order)
		assert.Error(t, err, "order %d", order)
	}
}

func TestLevelOrdering_IsTotalAndDense(t *testing.T) {
	levels := AllLevels()
	require.Len(t, levels, 6)
	for i, level := range levels {
		assert.Equal(t, i+1, level.Order())
	}
	assert.Equal(t, 1, LevelRemember.Order())
	assert.Equal(t, 6, LevelCreate.Order())
}

func TestLevelDisplayNamesAndDescriptions(t *testing.T) {
	assert.Equal(t, "Remember", LevelRemember.DisplayName())
	assert.Equal(t, "Recall facts and basic concepts", LevelRemember.Description())
	assert.Equal(t, "Create", LevelCreate.DisplayName())
	assert.Equal(t, "Produce new or original work", LevelCreate.Description())

	for _, level := range AllLevels() {
		assert.NotEmpty(t, level.DisplayName())
		assert.NotEmpty(t, level.Description())
	}
}

func TestParseLearningLevel(t *testing.T) {
	level, err := ParseLearningLevel("ANALYZE")
	require.NoError(t, err)
	assert.Equal(t, LevelAnalyze, level)

	// Unknown names fail loudly rather than defaulting.
	_, err = ParseLearningLevel("GUESSING")
	assert.Error(t, err)
	_, err = ParseLearningLevel("remember")
	assert.Error(t, err)
	_, err = ParseLearningLevel("")
	assert.Error(t, err)
}

func TestLearningLevelScan(t *testing.T) {
	var level LearningLevel
	require.NoError(t, level.Scan("EVALUATE"))
	assert.Equal(t, LevelEvaluate, level)

	require.NoError(t, level.Scan([]byte("APPLY")))
	assert.Equal(t, LevelApply, level)

	assert.Error(t, level.Scan("CORRUPTED"))
	assert.Error(t, level.Scan(42))
}

func TestLearningLevelValue(t *testing.T) {
	v, err := LevelUnderstand.Value()
	require.NoError(t, err)
	assert.Equal(t, "UNDERSTAND", v)

	_, err = LearningLevel("BOGUS").Value()
	assert.Error(t, err)
}

func TestParseActivityType(t *testing.T) {
	for _, at := range AllActivityTypes() {
		got, err := ParseActivityType(string(at))
		require.NoError(t, err)
		assert.Equal(t, at, got)
	}

	_, err := ParseActivityType("NAPPING")
	assert.Error(t, err)
}

func TestActivityTypeScanAndValue(t *testing.T) {
	var at ActivityType
	require.NoError(t, at.Scan("PRACTICE_SESSION"))
	assert.Equal(t, ActivityPracticeSession, at)

	assert.Error(t, at.Scan("UNKNOWN_TYPE"))

	v, err := ActivityContentCreated.Value()
	require.NoError(t, err)
	assert.Equal(t, "CONTENT_CREATED", v)

	_, err = ActivityType("").Value()
	assert.Error(t, err)
}
