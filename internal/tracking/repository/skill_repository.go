package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/architect/skillforge/internal/common/errors"
	"github.com/architect/skillforge/internal/tracking/models"
)

// SkillRepository stores and queries skills, the root entity everything
// else hangs off.
type SkillRepository struct {
	db  *gorm.DB
	hub *changeHub
}

// GetAllActive returns non-archived skills sorted by name ascending.
func (r *SkillRepository) GetAllActive(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.WithContext(ctx).
		Where("is_archived = ?", false).
		Order("name ASC").
		Find(&skills).Error
	if err != nil {
		return nil, apperrors.Internal("failed to fetch active skills", err.Error())
	}
	return skills, nil
}

// GetAll returns every skill, archived included, sorted by name ascending.
func (r *SkillRepository) GetAll(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.WithContext(ctx).Order("name ASC").Find(&skills).Error
	if err != nil {
		return nil, apperrors.Internal("failed to fetch skills", err.Error())
	}
	return skills, nil
}

// WatchActive subscribes to the active-skill listing. The channel yields the
// current listing immediately and again after any skill write.
func (r *SkillRepository) WatchActive(ctx context.Context) (<-chan []models.Skill, error) {
	return watchQuery(ctx, r.hub, []Table{TableSkills}, func() ([]models.Skill, error) {
		return r.GetAllActive(ctx)
	})
}

// WatchAll subscribes to the full listing, archived skills included.
func (r *SkillRepository) WatchAll(ctx context.Context) (<-chan []models.Skill, error) {
	return watchQuery(ctx, r.hub, []Table{TableSkills}, func() ([]models.Skill, error) {
		return r.GetAll(ctx)
	})
}

// GetByID returns the skill or nil when no skill has that id.
func (r *SkillRepository) GetByID(ctx context.Context, skillID int64) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.WithContext(ctx).First(&skill, skillID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Internal("failed to fetch skill", err.Error())
	}
	return &skill, nil
}

// Insert stores a new skill and returns its generated id.
func (r *SkillRepository) Insert(ctx context.Context, skill *models.Skill) (int64, error) {
	if err := r.db.WithContext(ctx).Create(skill).Error; err != nil {
		return 0, translateWriteError(err, "skill")
	}
	r.hub.notify(TableSkills)
	return skill.ID, nil
}

// Update replaces the skill row located by its id. Updating a skill that
// does not exist is an observable failure, not a silent no-op.
func (r *SkillRepository) Update(ctx context.Context, skill *models.Skill) error {
	result := r.db.WithContext(ctx).Model(&models.Skill{}).
		Where("id = ?", skill.ID).
		Select("name", "description", "icon_uri", "created_at", "is_archived").
		Updates(skill)
	if result.Error != nil {
		return translateWriteError(result.Error, "skill")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("skill")
	}
	r.hub.notify(TableSkills)
	return nil
}

// Delete hard-deletes the skill. The schema cascades the delete to its
// flashcards, activities and progress row.
func (r *SkillRepository) Delete(ctx context.Context, skillID int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Skill{}, skillID)
	if result.Error != nil {
		return translateWriteError(result.Error, "skill")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("skill")
	}
	r.hub.notify(TableSkills, TableFlashcards, TableActivities, TableProgress)
	return nil
}

// Archive soft-deletes: the skill leaves the active listing but keeps all
// its data and stays in the full listing.
func (r *SkillRepository) Archive(ctx context.Context, skillID int64) error {
	result := r.db.WithContext(ctx).Model(&models.Skill{}).
		Where("id = ?", skillID).
		Update("is_archived", true)
	if result.Error != nil {
		return translateWriteError(result.Error, "skill")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("skill")
	}
	r.hub.notify(TableSkills)
	return nil
}

// Count returns the total number of skills, archived included.
func (r *SkillRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Skill{}).Count(&count).Error
	if err != nil {
		return 0, apperrors.Internal("failed to count skills", err.Error())
	}
	return count, nil
}
