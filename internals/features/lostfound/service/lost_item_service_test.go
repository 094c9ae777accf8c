package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campushub_backend/internals/features/lostfound/model"
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

	if err := db.AutoMigrate(&model.LostItemModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func makeItem(t *testing.T, svc *LostItemService, title string, createdAt time.Time, mutate func(*model.LostItemModel)) *model.LostItemModel {
	t.Helper()
	item := &model.LostItemModel{
		LostItemTitle:    title,
		LostItemCategory: "Personal",
		LostItemStatus:   model.LostItemStatusLost,
		LostItemPosterID: uuid.New(),
	}
	if mutate != nil {
		mutate(item)
	}
	if err := svc.Create(item); err != nil {
		t.Fatalf("create item %q: %v", title, err)
	}
	// backdate explicitly, autoCreateTime stamps everything with now
	if err := svc.DB.Model(item).Update("created_at", createdAt).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}
	return item
}

func TestListNewestFirst(t *testing.T) {
	svc := NewLostItemService(newTestDB(t))
	now := time.Now().UTC()

	makeItem(t, svc, "Oldest", now.Add(-3*time.Hour), nil)
	makeItem(t, svc, "Newest", now, nil)
	makeItem(t, svc, "Middle", now.Add(-1*time.Hour), nil)

	items, total, err := svc.List(LostItemFilter{}, 0, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	want := []string{"Newest", "Middle", "Oldest"}
	for i := range want {
		if items[i].LostItemTitle != want[i] {
			t.Fatalf("items[%d] = %q, want %q", i, items[i].LostItemTitle, want[i])
		}
	}
}

func TestListPaginates(t *testing.T) {
	svc := NewLostItemService(newTestDB(t))
	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		makeItem(t, svc, "Item", now.Add(-time.Duration(i)*time.Minute), nil)
	}

	items, total, err := svc.List(LostItemFilter{}, 2, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if len(items) != 2 {
		t.Errorf("page size = %d, want 2", len(items))
	}
}

func TestListFiltersStatusAndSearch(t *testing.T) {
	svc := NewLostItemService(newTestDB(t))
	now := time.Now().UTC()

	makeItem(t, svc, "Lost Wallet", now, nil)
	makeItem(t, svc, "Found Keys", now, func(m *model.LostItemModel) {
		m.LostItemStatus = model.LostItemStatusFound
	})
	makeItem(t, svc, "Lost Umbrella", now, func(m *model.LostItemModel) {
		m.LostItemDescription = "black umbrella with wooden handle"
	})

	items, _, err := svc.List(LostItemFilter{Status: model.LostItemStatusFound}, 0, 10)
	if err != nil {
		t.Fatalf("List by status: %v", err)
	}
	if len(items) != 1 || items[0].LostItemTitle != "Found Keys" {
		t.Errorf("status filter returned %d items", len(items))
	}

	items, _, err = svc.List(LostItemFilter{Search: "umbrella"}, 0, 10)
	if err != nil {
		t.Fatalf("List by search: %v", err)
	}
	if len(items) != 1 || items[0].LostItemTitle != "Lost Umbrella" {
		t.Errorf("search filter returned %d items", len(items))
	}
}

func TestMarkClaimed(t *testing.T) {
	svc := NewLostItemService(newTestDB(t))
	item := makeItem(t, svc, "Claim Me", time.Now().UTC(), nil)

	affected, err := svc.MarkClaimed(item.LostItemID)
	if err != nil {
		t.Fatalf("MarkClaimed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("rows affected = %d, want 1", affected)
	}

	got, err := svc.GetByID(item.LostItemID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.LostItemStatus != model.LostItemStatusClaimed {
		t.Errorf("status = %q, want claimed", got.LostItemStatus)
	}

	// missing id is a zero-row report, not an error
	affected, err = svc.MarkClaimed(uuid.New())
	if err != nil {
		t.Fatalf("MarkClaimed missing: %v", err)
	}
	if affected != 0 {
		t.Errorf("rows affected = %d, want 0", affected)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	svc := NewLostItemService(newTestDB(t))
	item := makeItem(t, svc, "Delete Me", time.Now().UTC(), nil)

	if err := svc.Remove(item.LostItemID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := svc.Remove(item.LostItemID); err != nil {
		t.Fatalf("second Remove: %v", err)
	}

	if _, err := svc.GetByID(item.LostItemID); err != gorm.ErrRecordNotFound {
		t.Fatalf("GetByID after remove: err = %v, want ErrRecordNotFound", err)
	}
}
