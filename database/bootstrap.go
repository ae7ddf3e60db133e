package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"harvesta/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := Open(path)
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	return db
}

// Open is OpenSQLite without the fatal exit, for callers (tests) that
// want the error back.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&entities.Harvest{},
		&entities.HarvestAttachment{},
		&entities.CutterConfig{},
		&entities.KoboConfig{},
		&entities.ActivityLog{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
