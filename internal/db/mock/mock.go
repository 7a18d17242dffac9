// Package mock provides an in-memory database so the terminal can run and
// test without a configured postgres instance.
package mock

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "neuralrecon/internal/log"
	"neuralrecon/models"
)

// New returns an in-memory sqlite database seeded with a demo operator.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:neuralrecon-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Player{},
		&models.Preference{},
	); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	accessCode, err := bcrypt.GenerateFromPassword([]byte("ghostwire"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	player := &models.Player{
		Callsign:   "nyx",
		AccessHash: string(accessCode),
		Theme:      "terminal",
	}

	var existing models.Player
	err = db.WithContext(ctx).Where("callsign = ?", player.Callsign).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	return db.WithContext(ctx).Create(player).Error
}
