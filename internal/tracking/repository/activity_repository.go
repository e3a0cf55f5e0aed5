package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	apperrors "github.com/architect/skillforge/internal/common/errors"
	"github.com/architect/skillforge/internal/tracking/models"
)

// ActivityRepository stores the append-only activity history and answers
// the windowed statistics derived from it. Activities have no update path:
// insert and bulk delete-by-skill only.
type ActivityRepository struct {
	db  *gorm.DB
	hub *changeHub
}

// GetBySkill returns the skill's full activity history, newest first.
func (r *ActivityRepository) GetBySkill(ctx context.Context, skillID int64) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.WithContext(ctx).
		Where("skill_id = ?", skillID).
		Order("timestamp DESC").
		Find(&activities).Error
	if err != nil {
		return nil, apperrors.Internal("failed to fetch activities", err.Error())
	}
	return activities, nil
}

// WatchBySkill subscribes to the skill's activity history.
func (r *ActivityRepository) WatchBySkill(ctx context.Context, skillID int64) (<-chan []models.Activity, error) {
	return watchQuery(ctx, r.hub, []Table{TableActivities}, func() ([]models.Activity, error) {
		return r.GetBySkill(ctx, skillID)
	})
}

// GetRecentBySkill returns the limit most recent activities for the skill,
// newest first. Fewer rows come back when the history is shorter.
func (r *ActivityRepository) GetRecentBySkill(ctx context.Context, skillID int64, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.WithContext(ctx).
		Where("skill_id = ?", skillID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, apperrors.Internal("failed to fetch recent activities", err.Error())
	}
	return activities, nil
}

// GetBySkillSince returns activities with timestamp strictly after the
// cutoff, newest first.
func (r *ActivityRepository) GetBySkillSince(ctx context.Context, skillID int64, since int64) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.WithContext(ctx).
		Where("skill_id = ? AND timestamp > ?", skillID, since).
		Order("timestamp DESC").
		Find(&activities).Error
	if err != nil {
		return nil, apperrors.Internal("failed to fetch activities since cutoff", err.Error())
	}
	return activities, nil
}

// GetRecentBySkillAndLevel returns the limit most recent activities recorded
// at the given mastery level.
func (r *ActivityRepository) GetRecentBySkillAndLevel(ctx context.Context, skillID int64, level models.LearningLevel, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.WithContext(ctx).
		Where("skill_id = ? AND level = ?", skillID, string(level)).
		Order("timestamp DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, apperrors.Internal("failed to fetch recent activities", err.Error())
	}
	return activities, nil
}

// GetAverageScoreRecent computes the mean score over the most recent limit
// scored activities. Unscored activities neither occupy window slots nor
// drag the mean down. Returns nil when no scored activity is in the window.
func (r *ActivityRepository) GetAverageScoreRecent(ctx context.Context, skillID int64, limit int) (*float64, error) {
	window := r.db.Model(&models.Activity{}).
		Select("score").
		Where("skill_id = ? AND score IS NOT NULL", skillID).
		Order("timestamp DESC").
		Limit(limit)

	var avg sql.NullFloat64
	row := r.db.WithContext(ctx).
		Table("(?) AS recent", window).
		Select("AVG(score)").
		Row()
	if err := row.Scan(&avg); err != nil {
		return nil, apperrors.Internal("failed to compute average score", err.Error())
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// GetCountSince counts activities after the cutoff without materializing
// rows.
func (r *ActivityRepository) GetCountSince(ctx context.Context, skillID int64, since int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Activity{}).
		Where("skill_id = ? AND timestamp > ?", skillID, since).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Internal("failed to count activities", err.Error())
	}
	return count, nil
}

// Insert appends one activity to the history and returns its generated id.
// A zero Timestamp is stamped with the current wall clock by the storage
// layer; callers may supply any timestamp explicitly.
func (r *ActivityRepository) Insert(ctx context.Context, activity *models.Activity) (int64, error) {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return 0, translateWriteError(err, "activity")
	}
	r.hub.notify(TableActivities)
	return activity.ID, nil
}

// DeleteAllForSkill removes the skill's entire activity history.
func (r *ActivityRepository) DeleteAllForSkill(ctx context.Context, skillID int64) error {
	err := r.db.WithContext(ctx).
		Where("skill_id = ?", skillID).
		Delete(&models.Activity{}).Error
	if err != nil {
		return translateWriteError(err, "activities")
	}
	r.hub.notify(TableActivities)
	return nil
}
