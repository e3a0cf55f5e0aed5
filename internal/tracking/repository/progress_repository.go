package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/architect/skillforge/internal/common/errors"
	"github.com/architect/skillforge/internal/tracking/models"
)

// ProgressRepository stores the one-row-per-skill progress aggregate and
// applies the progress update protocol. Every multi-field transition is a
// single statement, so readers and subscriptions never observe a partially
// applied update.
type ProgressRepository struct {
	db  *gorm.DB
	hub *changeHub
}

// GetBySkill returns the skill's progress row or nil when none exists yet.
func (r *ProgressRepository) GetBySkill(ctx context.Context, skillID int64) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := r.db.WithContext(ctx).
		Where("skill_id = ?", skillID).
		First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Internal("failed to fetch progress", err.Error())
	}
	return &progress, nil
}

// WatchBySkill subscribes to the skill's progress row. Emissions carry nil
// while no row exists.
func (r *ProgressRepository) WatchBySkill(ctx context.Context, skillID int64) (<-chan *models.UserProgress, error) {
	return watchQuery(ctx, r.hub, []Table{TableProgress}, func() (*models.UserProgress, error) {
		return r.GetBySkill(ctx, skillID)
	})
}

// GetAll returns every progress row, most recently updated first.
func (r *ProgressRepository) GetAll(ctx context.Context) ([]models.UserProgress, error) {
	var rows []models.UserProgress
	err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&rows).Error
	if err != nil {
		return nil, apperrors.Internal("failed to fetch progress rows", err.Error())
	}
	return rows, nil
}

// WatchAll subscribes to the full progress listing.
func (r *ProgressRepository) WatchAll(ctx context.Context) (<-chan []models.UserProgress, error) {
	return watchQuery(ctx, r.hub, []Table{TableProgress}, func() ([]models.UserProgress, error) {
		return r.GetAll(ctx)
	})
}

// Upsert inserts the progress row, or fully replaces the existing row for
// the same skill id. Last write wins; fields are not merged.
func (r *ProgressRepository) Upsert(ctx context.Context, progress *models.UserProgress) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "skill_id"}},
		UpdateAll: true,
	}).Create(progress).Error
	if err != nil {
		return translateWriteError(err, "progress")
	}
	r.hub.notify(TableProgress)
	return nil
}

// Update replaces the row located by its id, failing observably when the id
// does not exist.
func (r *ProgressRepository) Update(ctx context.Context, progress *models.UserProgress) error {
	result := r.db.WithContext(ctx).Model(&models.UserProgress{}).
		Where("id = ?", progress.ID).
		Select("skill_id", "current_level", "streak_days", "longest_streak",
			"total_activities", "total_time_seconds", "last_activity_at",
			"level_started_at", "updated_at").
		Updates(progress)
	if result.Error != nil {
		return translateWriteError(result.Error, "progress")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("progress")
	}
	r.hub.notify(TableProgress)
	return nil
}

// UpdateLevel records a mastery level change, stamping level_started_at and
// updated_at with the same timestamp. Jumps are not validated; a level
// change is a recorded fact, not a gated progression.
func (r *ProgressRepository) UpdateLevel(ctx context.Context, skillID int64, level models.LearningLevel, timestamp int64) error {
	result := r.db.WithContext(ctx).Model(&models.UserProgress{}).
		Where("skill_id = ?", skillID).
		Updates(map[string]interface{}{
			"current_level":    string(level),
			"level_started_at": timestamp,
			"updated_at":       timestamp,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, "progress")
	}
	if result.RowsAffected == 0 {
		return r.missingRowError(ctx, skillID)
	}
	r.hub.notify(TableProgress)
	return nil
}

// UpdateStreak sets the streak and raises the longest-streak watermark in
// the same statement. The watermark never decreases, and concurrent streak
// writes cannot race a stale longest value because the comparison happens
// inside the UPDATE.
func (r *ProgressRepository) UpdateStreak(ctx context.Context, skillID int64, streak int, timestamp int64) error {
	result := r.db.WithContext(ctx).Model(&models.UserProgress{}).
		Where("skill_id = ?", skillID).
		Updates(map[string]interface{}{
			"streak_days":    streak,
			"longest_streak": gorm.Expr("CASE WHEN longest_streak > ? THEN longest_streak ELSE ? END", streak, streak),
			"updated_at":     timestamp,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, "progress")
	}
	if result.RowsAffected == 0 {
		return r.missingRowError(ctx, skillID)
	}
	r.hub.notify(TableProgress)
	return nil
}

// RecordActivity bumps the activity counter and stamps last_activity_at and
// updated_at, all in one statement.
func (r *ProgressRepository) RecordActivity(ctx context.Context, skillID int64, timestamp int64) error {
	result := r.db.WithContext(ctx).Model(&models.UserProgress{}).
		Where("skill_id = ?", skillID).
		Updates(map[string]interface{}{
			"total_activities": gorm.Expr("total_activities + 1"),
			"last_activity_at": timestamp,
			"updated_at":       timestamp,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, "progress")
	}
	if result.RowsAffected == 0 {
		return r.missingRowError(ctx, skillID)
	}
	r.hub.notify(TableProgress)
	return nil
}

// DeleteForSkill removes the skill's progress row.
func (r *ProgressRepository) DeleteForSkill(ctx context.Context, skillID int64) error {
	err := r.db.WithContext(ctx).
		Where("skill_id = ?", skillID).
		Delete(&models.UserProgress{}).Error
	if err != nil {
		return translateWriteError(err, "progress")
	}
	r.hub.notify(TableProgress)
	return nil
}

// missingRowError distinguishes a protocol write against a skill that does
// not exist (referential integrity) from one against a skill that simply
// has no progress row yet.
func (r *ProgressRepository) missingRowError(ctx context.Context, skillID int64) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Skill{}).
		Where("id = ?", skillID).
		Count(&count).Error; err != nil {
		return apperrors.Internal("failed to check skill existence", err.Error())
	}
	if count == 0 {
		return apperrors.ForeignKey("progress references a missing skill", "")
	}
	return apperrors.NotFound("progress")
}
