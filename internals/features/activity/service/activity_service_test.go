package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	clubModel "campushub_backend/internals/features/clubs/model"
	eventModel "campushub_backend/internals/features/events/model"
	lostModel "campushub_backend/internals/features/lostfound/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&eventModel.EventModel{},
		&eventModel.EventRegistrationModel{},
		&clubModel.ClubModel{},
		&clubModel.ClubMemberModel{},
		&lostModel.LostItemModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSummarizeCountsAllBuckets(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(db)
	userID := uuid.New()

	// one event created by the user
	ev := eventModel.EventModel{
		EventTitle:          "Mine",
		EventCategory:       "Technical",
		EventDate:           time.Now().Add(24 * time.Hour),
		EventOrganizerID:    userID,
		EventStatus:         eventModel.EventStatusUpcoming,
		EventApprovalStatus: eventModel.ApprovalStatusApproved,
	}
	if err := db.Create(&ev).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}

	// two registrations, one attended, one with a certificate
	present := true
	regs := []eventModel.EventRegistrationModel{
		{
			RegistrationEventID: ev.EventID,
			RegistrationUserID:  userID,
			RegistrationType:    eventModel.RegistrationTypeIndividual,
			RegistrationStatus:  eventModel.RegistrationStatusRegistered,
			RegistrationPresent: &present,
		},
		{
			RegistrationEventID:           uuid.New(),
			RegistrationUserID:            userID,
			RegistrationType:              eventModel.RegistrationTypeIndividual,
			RegistrationStatus:            eventModel.RegistrationStatusRegistered,
			RegistrationCertificateIssued: true,
		},
	}
	for i := range regs {
		if err := db.Create(&regs[i]).Error; err != nil {
			t.Fatalf("create registration: %v", err)
		}
	}

	// one club membership
	club := clubModel.ClubModel{ClubName: "Chess", ClubCategory: "Games"}
	if err := db.Create(&club).Error; err != nil {
		t.Fatalf("create club: %v", err)
	}
	if err := db.Create(&clubModel.ClubMemberModel{
		ClubMemberClubID: club.ClubID,
		ClubMemberUserID: userID,
	}).Error; err != nil {
		t.Fatalf("create membership: %v", err)
	}

	// one lost item posted
	if err := db.Create(&lostModel.LostItemModel{
		LostItemTitle:    "Wallet",
		LostItemCategory: "Personal",
		LostItemStatus:   lostModel.LostItemStatusLost,
		LostItemPosterID: userID,
	}).Error; err != nil {
		t.Fatalf("create lost item: %v", err)
	}

	got, err := svc.Summarize(userID)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	want := Counters{
		EventsCreated:      1,
		EventsParticipated: 2,
		EventsAttended:     1,
		CertificatesEarned: 1,
		ClubsJoined:        1,
		LostItemsPosted:    1,
	}
	if got != want {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
}

func TestSummarizeEmptyUser(t *testing.T) {
	svc := NewActivityService(newTestDB(t))

	got, err := svc.Summarize(uuid.New())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got != (Counters{}) {
		t.Errorf("Summarize = %+v, want zeroes", got)
	}
}
