package starter

import (
	"context"

	"go.uber.org/zap"

	"github.com/architect/skillforge/internal/tracking/models"
	"github.com/architect/skillforge/internal/tracking/services"
)

// ContentSeeder populates a fresh database with the starter skill, its
// flashcard deck and an initial progress row. It is a one-time bulk writer
// that goes through the facade like any other caller.
type ContentSeeder struct {
	tracker *services.Tracker
	log     *zap.Logger
}

func NewContentSeeder(tracker *services.Tracker, log *zap.Logger) *ContentSeeder {
	return &ContentSeeder{tracker: tracker, log: log}
}

// SeedIfEmpty inserts the starter content unless any skill already exists.
func (s *ContentSeeder) SeedIfEmpty(ctx context.Context) error {
	count, err := s.tracker.CountSkills(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.log.Debug("skipping seed, skills already present", zap.Int64("count", count))
		return nil
	}

	icon := SkillIcon
	skillID, err := s.tracker.InsertSkill(ctx, &models.Skill{
		Name:        SkillName,
		Description: SkillDescription,
		IconURI:     &icon,
	})
	if err != nil {
		return err
	}

	deck := Cards()
	cards := make([]models.Flashcard, len(deck))
	for i, c := range deck {
		cards[i] = models.Flashcard{
			SkillID:       skillID,
			Level:         c.Level,
			Front:         c.Front,
			Back:          c.Back,
			IsUserCreated: false,
		}
	}
	if err := s.tracker.InsertFlashcards(ctx, cards); err != nil {
		return err
	}

	if err := s.tracker.UpsertProgress(ctx, models.NewUserProgress(skillID, services.NowMillis())); err != nil {
		return err
	}

	s.log.Info("seeded starter content",
		zap.Int64("skill_id", skillID),
		zap.Int("flashcards", len(cards)),
	)
	return nil
}
