package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/architect/skillforge/internal/common/database"
	"github.com/architect/skillforge/internal/tracking/models"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()

	db, err := database.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	return New(db)
}

func createTestSkill(t *testing.T, repos *Repositories, name string) int64 {
	t.Helper()

	id, err := repos.Skills.Insert(context.Background(), &models.Skill{
		Name:        name,
		Description: "test skill",
	})
	require.NoError(t, err)
	return id
}

func scorePtr(v float64) *float64 {
	return &v
}
