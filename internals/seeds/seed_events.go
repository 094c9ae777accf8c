package seeds

import (
	"log"
	"time"

	"gorm.io/gorm"

	eventModel "campushub_backend/internals/features/events/model"
	userModel "campushub_backend/internals/features/users/user/model"
)

// SeedEvents inserts a few approved events owned by the seed admin.
func SeedEvents(db *gorm.DB, organizer *userModel.UserModel) error {
	now := time.Now().UTC()
	techFest := 200
	careerFair := 150

	events := []eventModel.EventModel{
		{
			EventTitle:          "Tech Fest 2026",
			EventDescription:    "Annual technology festival with workshops, demos and a hackathon.",
			EventCategory:       "Technical",
			EventLocation:       "Main Auditorium",
			EventDate:           now.Add(14 * 24 * time.Hour),
			EventMaxAttendees:   &techFest,
			EventIsFeatured:     true,
		},
		{
			EventTitle:          "Career Fair",
			EventDescription:    "Meet recruiters from forty companies across engineering and design.",
			EventCategory:       "Career",
			EventLocation:       "Sports Complex",
			EventDate:           now.Add(30 * 24 * time.Hour),
			EventMaxAttendees:   &careerFair,
			EventIsFeatured:     true,
		},
		{
			EventTitle:          "Open Mic Night",
			EventDescription:    "Music, poetry and stand-up. All performers welcome.",
			EventCategory:       "Cultural",
			EventLocation:       "Student Center Lawn",
			EventDate:           now.Add(7 * 24 * time.Hour),
		},
	}

	for i := range events {
		var count int64
		if err := db.Model(&eventModel.EventModel{}).
			Where("event_title = ? AND event_organizer_id = ?", events[i].EventTitle, organizer.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		events[i].EventOrganizerID = organizer.ID
		events[i].EventOrganizerName = organizer.UserName
		events[i].EventStatus = eventModel.EventStatusUpcoming
		events[i].EventApprovalStatus = eventModel.ApprovalStatusApproved

		if err := db.Create(&events[i]).Error; err != nil {
			return err
		}
		log.Printf("[INFO] seeded event %q", events[i].EventTitle)
	}
	return nil
}
