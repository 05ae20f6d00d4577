package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"newsnexus/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// Migrate runs AutoMigrate for every entity. Split out so tests can run it
// against their own in-memory databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Article{},
		&entities.ArticleApproved{},
		&entities.ArticleStateContract{},
		&entities.State{},
		&entities.Report{},
		&entities.ArticleReportContract{},
		&entities.ArticleDuplicateAnalysis{},
	)
}
