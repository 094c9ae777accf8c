package service

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campushub_backend/internals/features/clubs/model"
	userModel "campushub_backend/internals/features/users/user/model"
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

	if err := db.AutoMigrate(&model.ClubModel{}, &model.ClubMemberModel{}, &userModel.UserModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func makeClub(t *testing.T, svc *ClubService, name string) *model.ClubModel {
	t.Helper()
	club := &model.ClubModel{
		ClubName:     name,
		ClubCategory: "General",
	}
	if err := svc.Create(club); err != nil {
		t.Fatalf("create club %q: %v", name, err)
	}
	return club
}

func TestGetAllSortsByName(t *testing.T) {
	svc := NewClubService(newTestDB(t))
	makeClub(t, svc, "Zoology Society")
	makeClub(t, svc, "Astronomy Club")
	makeClub(t, svc, "Music Circle")

	clubs, err := svc.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	want := []string{"Astronomy Club", "Music Circle", "Zoology Society"}
	if len(clubs) != len(want) {
		t.Fatalf("GetAll = %d clubs, want %d", len(clubs), len(want))
	}
	for i := range want {
		if clubs[i].ClubName != want[i] {
			t.Errorf("clubs[%d] = %q, want %q", i, clubs[i].ClubName, want[i])
		}
	}
}

func TestJoinIsIdempotent(t *testing.T) {
	svc := NewClubService(newTestDB(t))
	club := makeClub(t, svc, "Chess Club")
	userID := uuid.New()

	if _, err := svc.Join(club.ClubID, userID); err != nil {
		t.Fatalf("first join: %v", err)
	}
	if _, err := svc.Join(club.ClubID, userID); err != nil {
		t.Fatalf("second join: %v", err)
	}

	count, err := svc.MemberCount(club.ClubID)
	if err != nil {
		t.Fatalf("MemberCount: %v", err)
	}
	if count != 1 {
		t.Errorf("member count = %d, want 1", count)
	}
}

func TestJoinMissingClubFails(t *testing.T) {
	svc := NewClubService(newTestDB(t))

	if _, err := svc.Join(uuid.New(), uuid.New()); err != gorm.ErrRecordNotFound {
		t.Fatalf("Join missing club: err = %v, want ErrRecordNotFound", err)
	}
}

func TestLeaveRemovesMembershipAndIsIdempotent(t *testing.T) {
	svc := NewClubService(newTestDB(t))
	club := makeClub(t, svc, "Film Society")
	userID := uuid.New()

	if _, err := svc.Join(club.ClubID, userID); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := svc.Leave(club.ClubID, userID); err != nil {
		t.Fatalf("leave: %v", err)
	}
	if err := svc.Leave(club.ClubID, userID); err != nil {
		t.Fatalf("second leave: %v", err)
	}

	isMember, err := svc.IsMember(club.ClubID, userID)
	if err != nil {
		t.Fatalf("IsMember: %v", err)
	}
	if isMember {
		t.Error("still a member after leaving")
	}
}

func TestMemberCountsAndMembershipSet(t *testing.T) {
	svc := NewClubService(newTestDB(t))
	a := makeClub(t, svc, "Club A")
	b := makeClub(t, svc, "Club B")
	userID := uuid.New()

	if _, err := svc.Join(a.ClubID, userID); err != nil {
		t.Fatalf("join a: %v", err)
	}
	if _, err := svc.Join(a.ClubID, uuid.New()); err != nil {
		t.Fatalf("join a 2: %v", err)
	}
	if _, err := svc.Join(b.ClubID, userID); err != nil {
		t.Fatalf("join b: %v", err)
	}

	counts, err := svc.MemberCounts()
	if err != nil {
		t.Fatalf("MemberCounts: %v", err)
	}
	if counts[a.ClubID] != 2 || counts[b.ClubID] != 1 {
		t.Errorf("counts = %v, want a:2 b:1", counts)
	}

	set, err := svc.MembershipSet(userID)
	if err != nil {
		t.Fatalf("MembershipSet: %v", err)
	}
	if _, ok := set[a.ClubID]; !ok {
		t.Error("membership set missing club a")
	}
	if _, ok := set[b.ClubID]; !ok {
		t.Error("membership set missing club b")
	}
}

func TestRemoveCascadesMemberships(t *testing.T) {
	svc := NewClubService(newTestDB(t))
	club := makeClub(t, svc, "Doomed Club")

	if _, err := svc.Join(club.ClubID, uuid.New()); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := svc.Remove(club.ClubID); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	count, err := svc.MemberCount(club.ClubID)
	if err != nil {
		t.Fatalf("MemberCount: %v", err)
	}
	if count != 0 {
		t.Errorf("memberships after remove = %d, want 0", count)
	}

	if _, err := svc.GetByID(club.ClubID); err != gorm.ErrRecordNotFound {
		t.Fatalf("GetByID after remove: err = %v, want ErrRecordNotFound", err)
	}
}

func TestMyClubsOrderedByName(t *testing.T) {
	svc := NewClubService(newTestDB(t))
	z := makeClub(t, svc, "Zeta Club")
	a := makeClub(t, svc, "Alpha Club")
	makeClub(t, svc, "Unjoined Club")
	userID := uuid.New()

	if _, err := svc.Join(z.ClubID, userID); err != nil {
		t.Fatalf("join z: %v", err)
	}
	if _, err := svc.Join(a.ClubID, userID); err != nil {
		t.Fatalf("join a: %v", err)
	}

	clubs, err := svc.MyClubs(userID)
	if err != nil {
		t.Fatalf("MyClubs: %v", err)
	}
	if len(clubs) != 2 || clubs[0].ClubName != "Alpha Club" || clubs[1].ClubName != "Zeta Club" {
		names := make([]string, 0, len(clubs))
		for _, c := range clubs {
			names = append(names, c.ClubName)
		}
		t.Fatalf("MyClubs = %v, want [Alpha Club Zeta Club]", names)
	}
}

func TestMembersListsRosterOldestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewClubService(db)
	club := makeClub(t, svc, "Chess Club")

	early := userModel.UserModel{UserName: "early", Email: "early@campus.edu", Password: "x"}
	late := userModel.UserModel{UserName: "late", Email: "late@campus.edu", Password: "x"}
	if err := db.Create(&early).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := db.Create(&late).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	now := time.Now()
	rows := []model.ClubMemberModel{
		{ClubMemberClubID: club.ClubID, ClubMemberUserID: late.ID, ClubMemberJoinedAt: now},
		{ClubMemberClubID: club.ClubID, ClubMemberUserID: early.ID, ClubMemberJoinedAt: now.Add(-48 * time.Hour)},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("create memberships: %v", err)
	}

	members, err := svc.Members(club.ClubID)
	if err != nil {
		t.Fatalf("Members: %v", err)
	}
	if len(members) != 2 || members[0].UserName != "early" || members[1].UserName != "late" {
		t.Fatalf("Members = %+v, want early then late", members)
	}
	if members[0].Email != "early@campus.edu" {
		t.Fatalf("Email = %q, want early@campus.edu", members[0].Email)
	}

	if _, err := svc.Members(uuid.New()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Members(missing) err = %v, want ErrRecordNotFound", err)
	}
}
