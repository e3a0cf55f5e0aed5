package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/architect/skillforge/internal/common/errors"
	"github.com/architect/skillforge/internal/tracking/models"
)

// FlashcardRepository stores and queries the study cards owned by a skill.
type FlashcardRepository struct {
	db  *gorm.DB
	hub *changeHub
}

// GetBySkill returns the skill's flashcards, newest first.
func (r *FlashcardRepository) GetBySkill(ctx context.Context, skillID int64) ([]models.Flashcard, error) {
	var cards []models.Flashcard
	err := r.db.WithContext(ctx).
		Where("skill_id = ?", skillID).
		Order("created_at DESC").
		Find(&cards).Error
	if err != nil {
		return nil, apperrors.Internal("failed to fetch flashcards", err.Error())
	}
	return cards, nil
}

// GetBySkillAndLevel returns the skill's flashcards tagged with the given
// mastery level, newest first.
func (r *FlashcardRepository) GetBySkillAndLevel(ctx context.Context, skillID int64, level models.LearningLevel) ([]models.Flashcard, error) {
	var cards []models.Flashcard
	err := r.db.WithContext(ctx).
		Where("skill_id = ? AND level = ?", skillID, string(level)).
		Order("created_at DESC").
		Find(&cards).Error
	if err != nil {
		return nil, apperrors.Internal("failed to fetch flashcards", err.Error())
	}
	return cards, nil
}

// WatchBySkill subscribes to the skill's flashcard listing.
func (r *FlashcardRepository) WatchBySkill(ctx context.Context, skillID int64) (<-chan []models.Flashcard, error) {
	return watchQuery(ctx, r.hub, []Table{TableFlashcards}, func() ([]models.Flashcard, error) {
		return r.GetBySkill(ctx, skillID)
	})
}

// WatchBySkillAndLevel subscribes to the level-filtered listing.
func (r *FlashcardRepository) WatchBySkillAndLevel(ctx context.Context, skillID int64, level models.LearningLevel) (<-chan []models.Flashcard, error) {
	return watchQuery(ctx, r.hub, []Table{TableFlashcards}, func() ([]models.Flashcard, error) {
		return r.GetBySkillAndLevel(ctx, skillID, level)
	})
}

// GetByID returns the flashcard or nil when no card has that id.
func (r *FlashcardRepository) GetByID(ctx context.Context, flashcardID int64) (*models.Flashcard, error) {
	var card models.Flashcard
	err := r.db.WithContext(ctx).First(&card, flashcardID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Internal("failed to fetch flashcard", err.Error())
	}
	return &card, nil
}

// CountForSkill returns how many flashcards the skill has.
func (r *FlashcardRepository) CountForSkill(ctx context.Context, skillID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Flashcard{}).
		Where("skill_id = ?", skillID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Internal("failed to count flashcards", err.Error())
	}
	return count, nil
}

// CountForSkillAndLevel returns how many of the skill's flashcards carry the
// given level.
func (r *FlashcardRepository) CountForSkillAndLevel(ctx context.Context, skillID int64, level models.LearningLevel) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Flashcard{}).
		Where("skill_id = ? AND level = ?", skillID, string(level)).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Internal("failed to count flashcards", err.Error())
	}
	return count, nil
}

// Insert stores a new flashcard and returns its generated id. The owning
// skill must exist; the foreign key rejects orphan cards.
func (r *FlashcardRepository) Insert(ctx context.Context, card *models.Flashcard) (int64, error) {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return 0, translateWriteError(err, "flashcard")
	}
	r.hub.notify(TableFlashcards)
	return card.ID, nil
}

// InsertAll stores a batch of flashcards in one transaction; used by the
// content seeder.
func (r *FlashcardRepository) InsertAll(ctx context.Context, cards []models.Flashcard) error {
	if len(cards) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&cards).Error; err != nil {
		return translateWriteError(err, "flashcards")
	}
	r.hub.notify(TableFlashcards)
	return nil
}

// Update replaces the flashcard row located by its id, failing observably
// when the id does not exist.
func (r *FlashcardRepository) Update(ctx context.Context, card *models.Flashcard) error {
	result := r.db.WithContext(ctx).Model(&models.Flashcard{}).
		Where("id = ?", card.ID).
		Select("skill_id", "level", "front", "back", "audio_uri", "image_uri", "created_at", "is_user_created").
		Updates(card)
	if result.Error != nil {
		return translateWriteError(result.Error, "flashcard")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("flashcard")
	}
	r.hub.notify(TableFlashcards)
	return nil
}

// Delete removes the flashcard by id.
func (r *FlashcardRepository) Delete(ctx context.Context, flashcardID int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Flashcard{}, flashcardID)
	if result.Error != nil {
		return translateWriteError(result.Error, "flashcard")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("flashcard")
	}
	r.hub.notify(TableFlashcards)
	return nil
}

// DeleteAllForSkill removes every flashcard owned by the skill.
func (r *FlashcardRepository) DeleteAllForSkill(ctx context.Context, skillID int64) error {
	err := r.db.WithContext(ctx).
		Where("skill_id = ?", skillID).
		Delete(&models.Flashcard{}).Error
	if err != nil {
		return translateWriteError(err, "flashcards")
	}
	r.hub.notify(TableFlashcards)
	return nil
}
