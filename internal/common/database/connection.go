package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/architect/skillforge/internal/tracking/models"
)

// SchemaVersion is the current version of the persisted schema.
const SchemaVersion = 1

// SchemaInfo records the schema version applied to a database file.
type SchemaInfo struct {
	ID        uint  `gorm:"primaryKey"`
	Version   int   `gorm:"not null"`
	AppliedAt int64 `gorm:"not null"`
}

func (SchemaInfo) TableName() string {
	return "schema_info"
}

// Open connects to the database for the given type. It returns the handle
// instead of installing a package global; callers own the instance and pass
// it to whatever needs it.
func Open(dbType string, dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Map driver errors to gorm.ErrForeignKeyViolated / ErrDuplicatedKey
		TranslateError: true,
	}

	if dbType == "postgres" {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		// Default to SQLite
		db, err = gorm.Open(sqlite.Open(dsn), cfg)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if dbType != "postgres" {
		// SQLite ships with foreign keys off; cascade delete and the
		// referential checks depend on them.
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	// Get underlying SQL database to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Set connection pool settings (conservative for SQLite)
	if dbType == "postgres" {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	} else {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates or updates the four tracking tables and stamps the schema
// version.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Skill{},
		&models.Flashcard{},
		&models.Activity{},
		&models.UserProgress{},
		&SchemaInfo{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	var info SchemaInfo
	result := db.Limit(1).Find(&info)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return db.Create(&SchemaInfo{
			Version:   SchemaVersion,
			AppliedAt: time.Now().UnixMilli(),
		}).Error
	}
	if info.Version != SchemaVersion {
		return fmt.Errorf("database schema version %d, expected %d", info.Version, SchemaVersion)
	}
	return nil
}

// Close closes the underlying connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
