package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/architect/skillforge/internal/common/errors"
	"github.com/architect/skillforge/internal/tracking/models"
)

func TestFlashcardInsertAndGetByID(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	skillID := createTestSkill(t, repos, "Spanish")
	audio := "asset:///audio/hola.mp3"
	image := "asset:///img/hola.png"

	id, err := repos.Flashcards.Insert(ctx, &models.Flashcard{
		SkillID:  skillID,
		Level:    models.LevelRemember,
		Front:    "Hello",
		Back:     "Hola",
		AudioURI: &audio,
		ImageURI: &image,
	})
	require.NoError(t, err)

	card, err := repos.Flashcards.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, skillID, card.SkillID)
	assert.Equal(t, models.LevelRemember, card.Level)
	assert.Equal(t, "Hello", card.Front)
	assert.Equal(t, "Hola", card.Back)
	require.NotNil(t, card.AudioURI)
	assert.Equal(t, audio, *card.AudioURI)
	require.NotNil(t, card.ImageURI)
	assert.Equal(t, image, *card.ImageURI)
}

func TestFlashcardGetByID_AbsentReturnsNil(t *testing.T) {
	repos := setupTestRepos(t)

	card, err := repos.Flashcards.GetByID(context.Background(), 777)
	require.NoError(t, err)
	assert.Nil(t, card)
}

func TestFlashcardInsert_MissingSkillRejected(t *testing.T) {
	repos := setupTestRepos(t)

	_, err := repos.Flashcards.Insert(context.Background(), &models.Flashcard{
		SkillID: 9999,
		Level:   models.LevelRemember,
		Front:   "Orphan",
		Back:    "No parent skill",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForeignKey))
}

func TestFlashcardGetBySkill_NewestFirst(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	skillID := createTestSkill(t, repos, "History")
	for i, ts := range []int64{1000, 3000, 2000} {
		_, err := repos.Flashcards.Insert(ctx, &models.Flashcard{
			SkillID:   skillID,
			Level:     models.LevelRemember,
			Front:     []string{"a", "b", "c"}[i],
			Back:      "back",
			CreatedAt: ts,
		})
		require.NoError(t, err)
	}

	cards, err := repos.Flashcards.GetBySkill(ctx, skillID)
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, "b", cards[0].Front) // created_at 3000
	assert.Equal(t, "c", cards[1].Front) // created_at 2000
	assert.Equal(t, "a", cards[2].Front) // created_at 1000
}

func TestFlashcardGetBySkill_ScopedToSkill(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	skillA := createTestSkill(t, repos, "A")
	skillB := createTestSkill(t, repos, "B")

	_, err := repos.Flashcards.Insert(ctx, &models.Flashcard{
		SkillID: skillA, Level: models.LevelRemember, Front: "a", Back: "a",
	})
	require.NoError(t, err)
	_, err = repos.Flashcards.Insert(ctx, &models.Flashcard{
		SkillID: skillB, Level: models.LevelRemember, Front: "b", Back: "b",
	})
	require.NoError(t, err)

	cards, err := repos.Flashcards.GetBySkill(ctx, skillA)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "a", cards[0].Front)
}

func TestFlashcardGetBySkillAndLevel_Filters(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	skillID := createTestSkill(t, repos, "Math")
	levels := []models.LearningLevel{
		models.LevelRemember, models.LevelRemember, models.LevelApply,
	}
	for i, level := range levels {
		_, err := repos.Flashcards.Insert(ctx, &models.Flashcard{
			SkillID: skillID, Level: level,
			Front: "q", Back: "a", CreatedAt: int64(i + 1),
		})
		require.NoError(t, err)
	}

	remember, err := repos.Flashcards.GetBySkillAndLevel(ctx, skillID, models.LevelRemember)
	require.NoError(t, err)
	assert.Len(t, remember, 2)

	apply, err := repos.Flashcards.GetBySkillAndLevel(ctx, skillID, models.LevelApply)
	require.NoError(t, err)
	assert.Len(t, apply, 1)

	counts := []struct {
		level models.LearningLevel
		want  int64
	}{
		{models.LevelRemember, 2},
		{models.LevelApply, 1},
		{models.LevelCreate, 0},
	}
	for _, tc := range counts {
		count, err := repos.Flashcards.CountForSkillAndLevel(ctx, skillID, tc.level)
		require.NoError(t, err)
		assert.Equal(t, tc.want, count)
	}

	total, err := repos.Flashcards.CountForSkill(ctx, skillID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestFlashcardInsertAll_Batch(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	skillID := createTestSkill(t, repos, "Batch")
	cards := []models.Flashcard{
		{SkillID: skillID, Level: models.LevelRemember, Front: "1", Back: "one"},
		{SkillID: skillID, Level: models.LevelUnderstand, Front: "2", Back: "two"},
		{SkillID: skillID, Level: models.LevelApply, Front: "3", Back: "three"},
	}
	require.NoError(t, repos.Flashcards.InsertAll(ctx, cards))

	count, err := repos.Flashcards.CountForSkill(ctx, skillID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestFlashcardUpdate_MissingIDFails(t *testing.T) {
	repos := setupTestRepos(t)
	skillID := createTestSkill(t, repos, "X")

	err := repos.Flashcards.Update(context.Background(), &models.Flashcard{
		ID: 404, SkillID: skillID, Level: models.LevelRemember, Front: "f", Back: "b",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestFlashcardDeleteAllForSkill(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	skillID := createTestSkill(t, repos, "Wipe")
	other := createTestSkill(t, repos, "Other")
	for _, sid := range []int64{skillID, skillID, other} {
		_, err := repos.Flashcards.Insert(ctx, &models.Flashcard{
			SkillID: sid, Level: models.LevelRemember, Front: "q", Back: "a",
		})
		require.NoError(t, err)
	}

	require.NoError(t, repos.Flashcards.DeleteAllForSkill(ctx, skillID))

	count, err := repos.Flashcards.CountForSkill(ctx, skillID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	otherCount, err := repos.Flashcards.CountForSkill(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, int64(1), otherCount)
}
