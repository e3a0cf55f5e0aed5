package services

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/architect/skillforge/internal/common/errors"
	"github.com/architect/skillforge/internal/common/validation"
	"github.com/architect/skillforge/internal/tracking/models"
	"github.com/architect/skillforge/internal/tracking/repository"
)

// Tracker is the single entry point external collaborators use: the UI and
// the seeder talk to it, never to the repositories or the database directly.
// It validates incoming entities and forwards to the entity store, applying
// the progress update protocol for progress writes.
type Tracker struct {
	repos *repository.Repositories
}

func NewTracker(repos *repository.Repositories) *Tracker {
	return &Tracker{repos: repos}
}

// NowMillis returns the current wall clock in milliseconds, the timestamp
// unit used throughout the store.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// orNow resolves the optional-timestamp convention at the facade boundary:
// zero means now, anything else is taken as supplied so tests can order
// writes deterministically.
func orNow(timestamp int64) int64 {
	if timestamp == 0 {
		return NowMillis()
	}
	return timestamp
}

func validated(data interface{}) error {
	if errs := validation.Validate(data); len(errs) > 0 {
		return apperrors.Validation(
			fmt.Sprintf("invalid %T", data),
			fmt.Sprintf("%s: %s", errs[0].Field, errs[0].Message),
		)
	}
	return nil
}

// Skills

func (t *Tracker) InsertSkill(ctx context.Context, skill *models.Skill) (int64, error) {
	if err := validated(skill); err != nil {
		return 0, err
	}
	return t.repos.Skills.Insert(ctx, skill)
}

func (t *Tracker) UpdateSkill(ctx context.Context, skill *models.Skill) error {
	if err := validated(skill); err != nil {
		return err
	}
	return t.repos.Skills.Update(ctx, skill)
}

// DeleteSkill hard-deletes the skill and, through the schema's cascade,
// every flashcard, activity and progress row that references it.
func (t *Tracker) DeleteSkill(ctx context.Context, skillID int64) error {
	return t.repos.Skills.Delete(ctx, skillID)
}

func (t *Tracker) ArchiveSkill(ctx context.Context, skillID int64) error {
	return t.repos.Skills.Archive(ctx, skillID)
}

func (t *Tracker) GetSkillByID(ctx context.Context, skillID int64) (*models.Skill, error) {
	return t.repos.Skills.GetByID(ctx, skillID)
}

func (t *Tracker) CountSkills(ctx context.Context) (int64, error) {
	return t.repos.Skills.Count(ctx)
}

func (t *Tracker) GetActiveSkills(ctx context.Context) ([]models.Skill, error) {
	return t.repos.Skills.GetAllActive(ctx)
}

func (t *Tracker) GetAllSkills(ctx context.Context) ([]models.Skill, error) {
	return t.repos.Skills.GetAll(ctx)
}

func (t *Tracker) WatchActiveSkills(ctx context.Context) (<-chan []models.Skill, error) {
	return t.repos.Skills.WatchActive(ctx)
}

func (t *Tracker) WatchAllSkills(ctx context.Context) (<-chan []models.Skill, error) {
	return t.repos.Skills.WatchAll(ctx)
}

// Flashcards

func (t *Tracker) InsertFlashcard(ctx context.Context, card *models.Flashcard) (int64, error) {
	if err := validated(card); err != nil {
		return 0, err
	}
	if !card.Level.Valid() {
		return 0, apperrors.BadRequest(fmt.Sprintf("unknown learning level %q", string(card.Level)))
	}
	return t.repos.Flashcards.Insert(ctx, card)
}

func (t *Tracker) InsertFlashcards(ctx context.Context, cards []models.Flashcard) error {
	for i := range cards {
		if err := validated(&cards[i]); err != nil {
			return err
		}
		if !cards[i].Level.Valid() {
			return apperrors.BadRequest(fmt.Sprintf("unknown learning level %q", string(cards[i].Level)))
		}
	}
	return t.repos.Flashcards.InsertAll(ctx, cards)
}

func (t *Tracker) UpdateFlashcard(ctx context.Context, card *models.Flashcard) error {
	if err := validated(card); err != nil {
		return err
	}
	return t.repos.Flashcards.Update(ctx, card)
}

func (t *Tracker) DeleteFlashcard(ctx context.Context, flashcardID int64) error {
	return t.repos.Flashcards.Delete(ctx, flashcardID)
}

func (t *Tracker) GetFlashcardByID(ctx context.Context, flashcardID int64) (*models.Flashcard, error) {
	return t.repos.Flashcards.GetByID(ctx, flashcardID)
}

func (t *Tracker) GetFlashcardsBySkill(ctx context.Context, skillID int64) ([]models.Flashcard, error) {
	return t.repos.Flashcards.GetBySkill(ctx, skillID)
}

func (t *Tracker) GetFlashcardsBySkillAndLevel(ctx context.Context, skillID int64, level models.LearningLevel) ([]models.Flashcard, error) {
	return t.repos.Flashcards.GetBySkillAndLevel(ctx, skillID, level)
}

func (t *Tracker) WatchFlashcardsBySkill(ctx context.Context, skillID int64) (<-chan []models.Flashcard, error) {
	return t.repos.Flashcards.WatchBySkill(ctx, skillID)
}

func (t *Tracker) WatchFlashcardsBySkillAndLevel(ctx context.Context, skillID int64, level models.LearningLevel) (<-chan []models.Flashcard, error) {
	return t.repos.Flashcards.WatchBySkillAndLevel(ctx, skillID, level)
}

func (t *Tracker) CountFlashcardsForSkill(ctx context.Context, skillID int64) (int64, error) {
	return t.repos.Flashcards.CountForSkill(ctx, skillID)
}

func (t *Tracker) CountFlashcardsForSkillAndLevel(ctx context.Context, skillID int64, level models.LearningLevel) (int64, error) {
	return t.repos.Flashcards.CountForSkillAndLevel(ctx, skillID, level)
}

func (t *Tracker) DeleteFlashcardsForSkill(ctx context.Context, skillID int64) error {
	return t.repos.Flashcards.DeleteAllForSkill(ctx, skillID)
}

// Activities

// InsertActivity appends one activity. A zero Timestamp records the
// activity at the current wall clock.
func (t *Tracker) InsertActivity(ctx context.Context, activity *models.Activity) (int64, error) {
	if err := validated(activity); err != nil {
		return 0, err
	}
	if !activity.Type.Valid() {
		return 0, apperrors.BadRequest(fmt.Sprintf("unknown activity type %q", string(activity.Type)))
	}
	activity.Timestamp = orNow(activity.Timestamp)
	return t.repos.Activities.Insert(ctx, activity)
}

func (t *Tracker) DeleteActivitiesForSkill(ctx context.Context, skillID int64) error {
	return t.repos.Activities.DeleteAllForSkill(ctx, skillID)
}

func (t *Tracker) GetActivitiesBySkill(ctx context.Context, skillID int64) ([]models.Activity, error) {
	return t.repos.Activities.GetBySkill(ctx, skillID)
}

func (t *Tracker) WatchActivitiesBySkill(ctx context.Context, skillID int64) (<-chan []models.Activity, error) {
	return t.repos.Activities.WatchBySkill(ctx, skillID)
}

func (t *Tracker) GetRecentActivities(ctx context.Context, skillID int64, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		return nil, apperrors.BadRequest("limit must be positive")
	}
	return t.repos.Activities.GetRecentBySkill(ctx, skillID, limit)
}

func (t *Tracker) GetActivitiesSince(ctx context.Context, skillID int64, since int64) ([]models.Activity, error) {
	return t.repos.Activities.GetBySkillSince(ctx, skillID, since)
}

func (t *Tracker) GetRecentActivitiesByLevel(ctx context.Context, skillID int64, level models.LearningLevel, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		return nil, apperrors.BadRequest("limit must be positive")
	}
	return t.repos.Activities.GetRecentBySkillAndLevel(ctx, skillID, level, limit)
}

func (t *Tracker) GetAverageScoreRecent(ctx context.Context, skillID int64, limit int) (*float64, error) {
	if limit <= 0 {
		return nil, apperrors.BadRequest("limit must be positive")
	}
	return t.repos.Activities.GetAverageScoreRecent(ctx, skillID, limit)
}

func (t *Tracker) GetActivityCountSince(ctx context.Context, skillID int64, since int64) (int64, error) {
	return t.repos.Activities.GetCountSince(ctx, skillID, since)
}

// Progress

func (t *Tracker) GetProgress(ctx context.Context, skillID int64) (*models.UserProgress, error) {
	return t.repos.Progress.GetBySkill(ctx, skillID)
}

func (t *Tracker) WatchProgress(ctx context.Context, skillID int64) (<-chan *models.UserProgress, error) {
	return t.repos.Progress.WatchBySkill(ctx, skillID)
}

func (t *Tracker) GetAllProgress(ctx context.Context) ([]models.UserProgress, error) {
	return t.repos.Progress.GetAll(ctx)
}

func (t *Tracker) WatchAllProgress(ctx context.Context) (<-chan []models.UserProgress, error) {
	return t.repos.Progress.WatchAll(ctx)
}

func (t *Tracker) UpsertProgress(ctx context.Context, progress *models.UserProgress) error {
	if err := validated(progress); err != nil {
		return err
	}
	now := NowMillis()
	if progress.LevelStartedAt == 0 {
		progress.LevelStartedAt = now
	}
	if progress.UpdatedAt == 0 {
		progress.UpdatedAt = now
	}
	return t.repos.Progress.Upsert(ctx, progress)
}

func (t *Tracker) UpdateProgress(ctx context.Context, progress *models.UserProgress) error {
	if err := validated(progress); err != nil {
		return err
	}
	return t.repos.Progress.Update(ctx, progress)
}

// UpdateProgressLevel records a level change. Pass timestamp 0 for now.
func (t *Tracker) UpdateProgressLevel(ctx context.Context, skillID int64, level models.LearningLevel, timestamp int64) error {
	if !level.Valid() {
		return apperrors.BadRequest(fmt.Sprintf("unknown learning level %q", string(level)))
	}
	return t.repos.Progress.UpdateLevel(ctx, skillID, level, orNow(timestamp))
}

// UpdateProgressStreak sets the streak; the longest-streak watermark only
// ever rises. Pass timestamp 0 for now.
func (t *Tracker) UpdateProgressStreak(ctx context.Context, skillID int64, streak int, timestamp int64) error {
	if streak < 0 {
		return apperrors.BadRequest("streak cannot be negative")
	}
	return t.repos.Progress.UpdateStreak(ctx, skillID, streak, orNow(timestamp))
}

// RecordProgressActivity counts one more activity against the skill's
// progress. Pass timestamp 0 for now.
func (t *Tracker) RecordProgressActivity(ctx context.Context, skillID int64, timestamp int64) error {
	return t.repos.Progress.RecordActivity(ctx, skillID, orNow(timestamp))
}

func (t *Tracker) DeleteProgressForSkill(ctx context.Context, skillID int64) error {
	return t.repos.Progress.DeleteForSkill(ctx, skillID)
}

// Stats

// SkillStats is a read-only snapshot combining the progress aggregate with
// the windowed activity statistics.
type SkillStats struct {
	Progress           *models.UserProgress `json:"progress,omitempty"`
	AverageScoreRecent *float64             `json:"average_score_recent,omitempty"`
	ActivitiesSince    int64                `json:"activities_since"`
}

// GetSkillStats assembles the snapshot for one skill: its progress row (nil
// when none), the rolling average over the scoreWindow most recent scored
// activities, and the activity count after since.
func (t *Tracker) GetSkillStats(ctx context.Context, skillID int64, scoreWindow int, since int64) (*SkillStats, error) {
	if scoreWindow <= 0 {
		return nil, apperrors.BadRequest("score window must be positive")
	}
	progress, err := t.repos.Progress.GetBySkill(ctx, skillID)
	if err != nil {
		return nil, err
	}
	avg, err := t.repos.Activities.GetAverageScoreRecent(ctx, skillID, scoreWindow)
	if err != nil {
		return nil, err
	}
	count, err := t.repos.Activities.GetCountSince(ctx, skillID, since)
	if err != nil {
		return nil, err
	}
	return &SkillStats{
		Progress:           progress,
		AverageScoreRecent: avg,
		ActivitiesSince:    count,
	}, nil
}
