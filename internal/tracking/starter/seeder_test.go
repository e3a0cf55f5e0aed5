package starter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/architect/skillforge/internal/common/database"
	"github.com/architect/skillforge/internal/tracking/models"
	"github.com/architect/skillforge/internal/tracking/repository"
	"github.com/architect/skillforge/internal/tracking/services"
)

func setupSeeder(t *testing.T) (*ContentSeeder, *services.Tracker) {
	t.Helper()

	db, err := database.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	tracker := services.NewTracker(repository.New(db))
	return NewContentSeeder(tracker, zap.NewNop()), tracker
}

func TestSeedIfEmpty_PopulatesStarterContent(t *testing.T) {
	seeder, tracker := setupSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.SeedIfEmpty(ctx))

	skills, err := tracker.GetActiveSkills(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, SkillName, skills[0].Name)
	require.NotNil(t, skills[0].IconURI)
	assert.Equal(t, SkillIcon, *skills[0].IconURI)

	cards, err := tracker.GetFlashcardsBySkill(ctx, skills[0].ID)
	require.NoError(t, err)
	assert.Len(t, cards, len(Cards()))
	for _, card := range cards {
		assert.False(t, card.IsUserCreated)
	}

	// Every level has at least one starter card.
	for _, level := range models.AllLevels() {
		count, err := tracker.CountFlashcardsForSkillAndLevel(ctx, skills[0].ID, level)
		require.NoError(t, err)
		assert.Greater(t, count, int64(0), "level %s", level)
	}

	progress, err := tracker.GetProgress(ctx, skills[0].ID)
	require.NoError(t, err)
	require.NotNil(t, progress)
	assert.Equal(t, models.LevelRemember, progress.CurrentLevel)
}

func TestSeedIfEmpty_SecondRunIsNoOp(t *testing.T) {
	seeder, tracker := setupSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.SeedIfEmpty(ctx))
	require.NoError(t, seeder.SeedIfEmpty(ctx))

	count, err := tracker.CountSkills(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSeedIfEmpty_SkipsWhenUserContentExists(t *testing.T) {
	seeder, tracker := setupSeeder(t)
	ctx := context.Background()

	_, err := tracker.InsertSkill(ctx, &models.Skill{Name: "User Skill"})
	require.NoError(t, err)

	require.NoError(t, seeder.SeedIfEmpty(ctx))

	skills, err := tracker.GetAllSkills(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "User Skill", skills[0].Name)
}
