package seeds

import (
	"log"

	"gorm.io/gorm"

	lostModel "campushub_backend/internals/features/lostfound/model"
	userModel "campushub_backend/internals/features/users/user/model"
)

// SeedLostItems inserts sample lost-and-found posts.
func SeedLostItems(db *gorm.DB, poster *userModel.UserModel) error {
	items := []lostModel.LostItemModel{
		{
			LostItemTitle:       "Blue Hydro Flask",
			LostItemDescription: "Navy blue bottle with a mountain sticker, last seen in the library.",
			LostItemCategory:    "Personal",
			LostItemLocation:    "Central Library, 2nd floor",
			LostItemStatus:      lostModel.LostItemStatusLost,
			LostItemContactInfo: "admin@campus.edu",
		},
		{
			LostItemTitle:       "Found: TI-84 Calculator",
			LostItemDescription: "Left behind in room 204 after the calculus midterm.",
			LostItemCategory:    "Electronics",
			LostItemLocation:    "Math Building, Room 204",
			LostItemStatus:      lostModel.LostItemStatusFound,
			LostItemContactInfo: "admin@campus.edu",
		},
	}

	for i := range items {
		var count int64
		if err := db.Model(&lostModel.LostItemModel{}).
			Where("lost_item_title = ? AND lost_item_poster_id = ?", items[i].LostItemTitle, poster.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		items[i].LostItemPosterID = poster.ID
		items[i].LostItemPosterName = poster.UserName

		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
		log.Printf("[INFO] seeded lost item %q", items[i].LostItemTitle)
	}
	return nil
}
