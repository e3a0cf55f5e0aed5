package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/architect/skillforge/internal/common/errors"
)

// Repositories bundles the four entity repositories over one database and
// one change hub, so writes through any of them invalidate subscriptions
// held through the others. Construct once at process start and pass by
// reference; there is no package-level instance.
type Repositories struct {
	Skills     *SkillRepository
	Flashcards *FlashcardRepository
	Activities *ActivityRepository
	Progress   *ProgressRepository
}

func New(db *gorm.DB) *Repositories {
	hub := newChangeHub()
	return &Repositories{
		Skills:     &SkillRepository{db: db, hub: hub},
		Flashcards: &FlashcardRepository{db: db, hub: hub},
		Activities: &ActivityRepository{db: db, hub: hub},
		Progress:   &ProgressRepository{db: db, hub: hub},
	}
}

// translateWriteError maps driver-level constraint failures onto the error
// taxonomy callers branch on.
func translateWriteError(err error, resource string) error {
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.ForeignKey(fmt.Sprintf("%s references a missing skill", resource), err.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Conflict(fmt.Sprintf("%s already exists", resource))
	default:
		return apperrors.Internal(fmt.Sprintf("failed to write %s", resource), err.Error())
	}
}
