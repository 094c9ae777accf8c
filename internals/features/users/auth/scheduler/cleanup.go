package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authRepo "campushub_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler purges expired blacklist rows in the
// background. Interval defaults to 24h, override with
// TOKEN_BLACKLIST_CLEANUP_HOURS.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		intervalHours := 24
		if val := os.Getenv("TOKEN_BLACKLIST_CLEANUP_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalHours = parsed
			}
		}

		for {
			log.Println("[INFO] running token_blacklist cleanup")
			if removed, err := authRepo.CleanupExpiredBlacklist(db); err != nil {
				log.Printf("[ERROR] token blacklist cleanup failed: %v", err)
			} else if removed > 0 {
				log.Printf("[INFO] removed %d expired blacklist tokens", removed)
			}
			time.Sleep(time.Duration(intervalHours) * time.Hour)
		}
	}()
}
