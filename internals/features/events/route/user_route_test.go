package route

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/events/model"
	"campushub_backend/internals/features/events/service"
	notifModel "campushub_backend/internals/features/notifications/model"
)

func newTestApp(t *testing.T, userID uuid.UUID, role string) (*fiber.App, *gorm.DB) {
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
		&model.EventModel{},
		&model.EventRegistrationModel{},
		&notifModel.NotificationModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		c.Locals("user_role", role)
		c.Locals("user_name", "Route Tester")
		return c.Next()
	})
	EventUserRoutes(app, db)
	return app, db
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode %s: %v (body %s)", path, err, raw)
	}
	return resp.StatusCode, body
}

func TestRegistrationStatusRouteReachesHandler(t *testing.T) {
	userID := uuid.New()
	app, db := newTestApp(t, userID, constants.RoleStudent)
	svc := service.NewEventService(db)

	ev := &model.EventModel{
		EventTitle:       "Route Check",
		EventCategory:    "Technical",
		EventDate:        time.Now().Add(24 * time.Hour),
		EventOrganizerID: uuid.New(),
	}
	if err := svc.Create(ev); err != nil {
		t.Fatalf("create event: %v", err)
	}
	if _, err := svc.RegisterIndividual(ev.EventID, userID, nil); err != nil {
		t.Fatalf("register: %v", err)
	}

	code, body := getJSON(t, app, "/event-registrations/status/"+ev.EventID.String())
	if code != fiber.StatusOK {
		t.Fatalf("status route = %d (%v), want 200", code, body)
	}
	data, _ := body["data"].(map[string]any)
	if got, _ := data["status"].(string); got != model.RegistrationStatusRegistered {
		t.Fatalf("status = %q, want %q", got, model.RegistrationStatusRegistered)
	}
}

func TestRegistrantsByEventRouteReachesHandler(t *testing.T) {
	organizerID := uuid.New()
	app, db := newTestApp(t, organizerID, constants.RoleStudent)
	svc := service.NewEventService(db)

	ev := &model.EventModel{
		EventTitle:       "Roster Check",
		EventCategory:    "Technical",
		EventDate:        time.Now().Add(24 * time.Hour),
		EventOrganizerID: organizerID,
	}
	if err := svc.Create(ev); err != nil {
		t.Fatalf("create event: %v", err)
	}
	if _, err := svc.RegisterIndividual(ev.EventID, uuid.New(), nil); err != nil {
		t.Fatalf("register: %v", err)
	}

	code, body := getJSON(t, app, "/event-registrations/by-event/"+ev.EventID.String())
	if code != fiber.StatusOK {
		t.Fatalf("by-event route = %d (%v), want 200", code, body)
	}
	regs, _ := body["data"].([]any)
	if len(regs) != 1 {
		t.Fatalf("registrants = %d, want 1", len(regs))
	}
}

func TestDepartmentStatsRouteReachesHandler(t *testing.T) {
	organizerID := uuid.New()
	app, db := newTestApp(t, organizerID, constants.RoleStudent)
	svc := service.NewEventService(db)

	ev := &model.EventModel{
		EventTitle:       "Stats Check",
		EventCategory:    "Technical",
		EventDate:        time.Now().Add(24 * time.Hour),
		EventOrganizerID: organizerID,
	}
	if err := svc.Create(ev); err != nil {
		t.Fatalf("create event: %v", err)
	}
	dept := "Computer Science"
	if _, err := svc.RegisterIndividual(ev.EventID, uuid.New(), &dept); err != nil {
		t.Fatalf("register: %v", err)
	}

	code, body := getJSON(t, app, "/events/"+ev.EventID.String()+"/department-stats")
	if code != fiber.StatusOK {
		t.Fatalf("department-stats route = %d (%v), want 200", code, body)
	}
	stats, _ := body["data"].([]any)
	if len(stats) != 1 {
		t.Fatalf("stats buckets = %d, want 1", len(stats))
	}
}
