package seeds

import (
	"log"

	"gorm.io/gorm"

	clubModel "campushub_backend/internals/features/clubs/model"
)

// SeedClubs inserts the starter clubs, keyed by name.
func SeedClubs(db *gorm.DB) error {
	clubs := []clubModel.ClubModel{
		{
			ClubName:          "Robotics Club",
			ClubDescription:   "Build and compete with autonomous robots.",
			ClubCategory:      "Technology",
			ClubPresidentName: "Maya Chen",
		},
		{
			ClubName:          "Debate Society",
			ClubDescription:   "Weekly parliamentary debate practice and tournaments.",
			ClubCategory:      "Academic",
			ClubPresidentName: "Jordan Okafor",
		},
		{
			ClubName:          "Photography Circle",
			ClubDescription:   "Photo walks, darkroom sessions and an annual exhibition.",
			ClubCategory:      "Arts",
			ClubPresidentName: "Sara Lindqvist",
		},
	}

	for i := range clubs {
		var count int64
		if err := db.Model(&clubModel.ClubModel{}).
			Where("club_name = ?", clubs[i].ClubName).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&clubs[i]).Error; err != nil {
			return err
		}
		log.Printf("[INFO] seeded club %q", clubs[i].ClubName)
	}
	return nil
}
