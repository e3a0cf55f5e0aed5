package models

// All timestamps in this package are wall-clock milliseconds. Callers supply
// them explicitly at the facade boundary; the zero value lets the storage
// layer stamp creation time.

// Skill is a user-defined topic the learner is tracking mastery of.
type Skill struct {
	ID          int64   `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name" validate:"required"`
	Description string  `json:"description"`
	IconURI     *string `json:"icon_uri,omitempty"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli" json:"created_at"`
	IsArchived  bool    `gorm:"not null;default:false" json:"is_archived"`
}

// Flashcard is a study artifact belonging to exactly one skill. Deleting the
// skill deletes its flashcards at the schema level.
type Flashcard struct {
	ID            int64         `gorm:"primaryKey" json:"id"`
	SkillID       int64         `gorm:"not null;index" json:"skill_id" validate:"required"`
	Level         LearningLevel `gorm:"type:text;not null" json:"level" validate:"required"`
	Front         string        `gorm:"not null" json:"front" validate:"required"`
	Back          string        `gorm:"not null" json:"back" validate:"required"`
	AudioURI      *string       `json:"audio_uri,omitempty"`
	ImageURI      *string       `json:"image_uri,omitempty"`
	CreatedAt     int64         `gorm:"autoCreateTime:milli" json:"created_at"`
	IsUserCreated bool          `gorm:"not null;default:false" json:"is_user_created"`

	Skill *Skill `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Activity is an immutable record of one study interaction. Activities are
// append-only; timestamp is the sole recency sort key.
type Activity struct {
	ID              int64         `gorm:"primaryKey" json:"id"`
	SkillID         int64         `gorm:"not null;index" json:"skill_id" validate:"required"`
	Type            ActivityType  `gorm:"type:text;not null" json:"type" validate:"required"`
	Level           LearningLevel `gorm:"type:text;not null" json:"level" validate:"required"`
	Score           *float64      `json:"score,omitempty" validate:"omitempty,gte=0,lte=1"` // 0.0 to 1.0, nil if not scored
	DurationSeconds *int          `json:"duration_seconds,omitempty"`
	FlashcardID     *int64        `json:"flashcard_id,omitempty"`
	Timestamp       int64         `gorm:"autoCreateTime:milli;index" json:"timestamp"`
	Metadata        *string       `json:"metadata,omitempty"` // JSON blob for extra data

	Skill *Skill `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// UserProgress is the single mutable aggregate summarizing a skill's mastery
// state. The unique index on skill_id guarantees at most one row per skill.
type UserProgress struct {
	ID               int64         `gorm:"primaryKey" json:"id"`
	SkillID          int64         `gorm:"uniqueIndex;not null" json:"skill_id" validate:"required"`
	CurrentLevel     LearningLevel `gorm:"type:text;not null" json:"current_level" validate:"required"`
	StreakDays       int           `gorm:"not null;default:0" json:"streak_days"`
	LongestStreak    int           `gorm:"not null;default:0" json:"longest_streak"`
	TotalActivities  int           `gorm:"not null;default:0" json:"total_activities"`
	TotalTimeSeconds int64         `gorm:"not null;default:0" json:"total_time_seconds"`
	LastActivityAt   *int64        `json:"last_activity_at,omitempty"`
	LevelStartedAt   int64         `gorm:"not null" json:"level_started_at"`
	UpdatedAt        int64         `gorm:"not null" json:"updated_at"`

	Skill *Skill `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// TableName keeps the original table name for progress rows.
func (UserProgress) TableName() string {
	return "user_progress"
}

// NewUserProgress returns a fresh progress row for a skill at the lowest
// level, stamped at the given time.
func NewUserProgress(skillID int64, now int64) *UserProgress {
	return &UserProgress{
		SkillID:        skillID,
		CurrentLevel:   LevelRemember,
		LevelStartedAt: now,
		UpdatedAt:      now,
	}
}
