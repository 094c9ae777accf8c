package seeds

import (
	"log"
	"os"

	"gorm.io/gorm"
)

// RunAllSeeds loads the starter data set. Gated behind SEED_ON_START so
// production boots stay untouched. Every seeder is idempotent.
func RunAllSeeds(db *gorm.DB) {
	if os.Getenv("SEED_ON_START") != "true" {
		return
	}
	log.Println("[INFO] SEED_ON_START=true, running seeders")

	admin, err := SeedAdminUser(db)
	if err != nil {
		log.Printf("[ERROR] seed admin user: %v", err)
		return
	}
	if err := SeedClubs(db); err != nil {
		log.Printf("[ERROR] seed clubs: %v", err)
	}
	if err := SeedEvents(db, admin); err != nil {
		log.Printf("[ERROR] seed events: %v", err)
	}
	if err := SeedLostItems(db, admin); err != nil {
		log.Printf("[ERROR] seed lost items: %v", err)
	}

	log.Println("[INFO] seeding finished")
}
