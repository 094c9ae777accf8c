package service

import (
	"testing"

	"github.com/google/uuid"

	"campushub_backend/internals/features/events/model"
)

func TestRegisterIndividualIsIdempotent(t *testing.T) {
	svc := NewEventService(newTestDB(t))
	ev := makeEvent(t, svc, "Workshop", nil)
	userID := uuid.New()

	first, err := svc.RegisterIndividual(ev.EventID, userID, nil)
	if err != nil {
		t.Fatalf("first register: %v", err)
	}
	second, err := svc.RegisterIndividual(ev.EventID, userID, nil)
	if err != nil {
		t.Fatalf("second register: %v", err)
	}
	if first.RegistrationID != second.RegistrationID {
		t.Errorf("re-registration created a new record: %s vs %s",
			first.RegistrationID, second.RegistrationID)
	}

	var count int64
	if err := svc.DB.Model(&model.EventRegistrationModel{}).
		Where("registration_event_id = ?", ev.EventID).
		Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("registrations = %d, want 1", count)
	}
}

func TestCapacityBoundary(t *testing.T) {
	svc := NewEventService(newTestDB(t))
	max := 3
	ev := makeEvent(t, svc, "Limited", func(ev *model.EventModel) {
		ev.EventMaxAttendees = &max
	})

	// the Nth registrant still gets in
	for i := 0; i < max; i++ {
		reg, err := svc.RegisterIndividual(ev.EventID, uuid.New(), nil)
		if err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
		if reg.RegistrationStatus != model.RegistrationStatusRegistered {
			t.Fatalf("registrant %d status = %q, want registered", i, reg.RegistrationStatus)
		}
	}

	// the N+1th is waitlisted
	reg, err := svc.RegisterIndividual(ev.EventID, uuid.New(), nil)
	if err != nil {
		t.Fatalf("overflow register: %v", err)
	}
	if reg.RegistrationStatus != model.RegistrationStatusWaitlisted {
		t.Errorf("overflow status = %q, want waitlisted", reg.RegistrationStatus)
	}
}

func TestUnlimitedCapacityNeverWaitlists(t *testing.T) {
	svc := NewEventService(newTestDB(t))
	ev := makeEvent(t, svc, "Open", nil)

	for i := 0; i < 20; i++ {
		reg, err := svc.RegisterIndividual(ev.EventID, uuid.New(), nil)
		if err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
		if reg.RegistrationStatus != model.RegistrationStatusRegistered {
			t.Fatalf("registrant %d status = %q, want registered", i, reg.RegistrationStatus)
		}
	}
}

func TestStatusFrozenAfterCapacityShrink(t *testing.T) {
	svc := NewEventService(newTestDB(t))
	max := 10
	ev := makeEvent(t, svc, "Shrinking", func(ev *model.EventModel) {
		ev.EventMaxAttendees = &max
	})

	reg, err := svc.RegisterIndividual(ev.EventID, uuid.New(), nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// shrink capacity below the current registrant count
	if err := svc.DB.Model(&model.EventModel{}).
		Where("event_id = ?", ev.EventID).
		Update("event_max_attendees", 0).Error; err != nil {
		t.Fatalf("shrink: %v", err)
	}

	got, err := svc.RegistrationByID(reg.RegistrationID)
	if err != nil {
		t.Fatalf("RegistrationByID: %v", err)
	}
	if got.RegistrationStatus != model.RegistrationStatusRegistered {
		t.Errorf("status after shrink = %q, want registered (frozen)", got.RegistrationStatus)
	}
}

func TestRegisterTeamAllowsMultipleTeamsPerUser(t *testing.T) {
	svc := NewEventService(newTestDB(t))
	ev := makeEvent(t, svc, "Hackathon", nil)
	userID := uuid.New()

	a, err := svc.RegisterTeam(ev.EventID, userID, "Alpha", 4, nil)
	if err != nil {
		t.Fatalf("team a: %v", err)
	}
	b, err := svc.RegisterTeam(ev.EventID, userID, "Beta", 3, nil)
	if err != nil {
		t.Fatalf("team b: %v", err)
	}
	if a.RegistrationID == b.RegistrationID {
		t.Fatal("second team registration reused the first record")
	}

	var count int64
	if err := svc.DB.Model(&model.EventRegistrationModel{}).
		Where("registration_event_id = ? AND registration_user_id = ?", ev.EventID, userID).
		Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("team registrations = %d, want 2", count)
	}
}

func TestIndividualAfterTeamReturnsTeamRecord(t *testing.T) {
	svc := NewEventService(newTestDB(t))
	ev := makeEvent(t, svc, "Mixed", nil)
	userID := uuid.New()

	team, err := svc.RegisterTeam(ev.EventID, userID, "Gamma", 2, nil)
	if err != nil {
		t.Fatalf("team: %v", err)
	}

	// an individual registration after a team one is satisfied by the
	// existing record rather than a second row
	got, err := svc.RegisterIndividual(ev.EventID, userID, nil)
	if err != nil {
		t.Fatalf("individual: %v", err)
	}
	if got.RegistrationID != team.RegistrationID {
		t.Errorf("expected existing team registration, got new record %s", got.RegistrationID)
	}
	if got.RegistrationType != model.RegistrationTypeTeam {
		t.Errorf("type = %q, want team", got.RegistrationType)
	}
}

func TestRegistrationStatusForUnregisteredUserIsEmpty(t *testing.T) {
	svc := NewEventService(newTestDB(t))
	ev := makeEvent(t, svc, "Quiet", nil)

	status, err := svc.RegistrationStatusForUser(ev.EventID, uuid.New())
	if err != nil {
		t.Fatalf("RegistrationStatusForUser: %v", err)
	}
	if status != "" {
		t.Errorf("status = %q, want empty", status)
	}
}

func TestQRPayloadRoundTripMarksAttendance(t *testing.T) {
	svc := NewEventService(newTestDB(t))
	ev := makeEvent(t, svc, "Checkin", nil)

	reg, err := svc.RegisterIndividual(ev.EventID, uuid.New(), nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	payload, err := RegistrationQRData(ev.EventID, reg.RegistrationID)
	if err != nil {
		t.Fatalf("RegistrationQRData: %v", err)
	}
	if err := svc.MarkAttendanceFromQRPayload(payload); err != nil {
		t.Fatalf("MarkAttendanceFromQRPayload: %v", err)
	}

	got, err := svc.RegistrationByID(reg.RegistrationID)
	if err != nil {
		t.Fatalf("RegistrationByID: %v", err)
	}
	if got.RegistrationPresent == nil || !*got.RegistrationPresent {
		t.Error("present flag not set after scan")
	}
}

func TestMalformedQRPayloadIsSwallowed(t *testing.T) {
	svc := NewEventService(newTestDB(t))

	for _, payload := range []string{"", "not json", `{"t":"attend","rid":"not-a-uuid"}`} {
		if err := svc.MarkAttendanceFromQRPayload(payload); err != nil {
			t.Errorf("payload %q: err = %v, want nil", payload, err)
		}
	}
}

func TestMarkAttendanceMissingRegReportsZeroRows(t *testing.T) {
	svc := NewEventService(newTestDB(t))

	n, err := svc.MarkAttendanceByRegID(uuid.New())
	if err != nil {
		t.Fatalf("MarkAttendanceByRegID: %v", err)
	}
	if n != 0 {
		t.Errorf("rows affected = %d, want 0", n)
	}
}

func TestDepartmentStatsBucketsUnknown(t *testing.T) {
	svc := NewEventService(newTestDB(t))
	ev := makeEvent(t, svc, "Stats", nil)

	cs := "Computer Science"
	empty := ""
	regCS1, err := svc.RegisterIndividual(ev.EventID, uuid.New(), &cs)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.RegisterIndividual(ev.EventID, uuid.New(), &cs); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.RegisterIndividual(ev.EventID, uuid.New(), nil); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.RegisterIndividual(ev.EventID, uuid.New(), &empty); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.MarkAttendanceByRegID(regCS1.RegistrationID); err != nil {
		t.Fatalf("mark present: %v", err)
	}

	stats, err := svc.DepartmentStats(ev.EventID)
	if err != nil {
		t.Fatalf("DepartmentStats: %v", err)
	}

	byDept := map[string][2]int{}
	for _, s := range stats {
		byDept[s.Department] = [2]int{s.Count, s.Present}
	}
	if got := byDept["Computer Science"]; got != [2]int{2, 1} {
		t.Errorf("CS bucket = %v, want {2 1}", got)
	}
	if got := byDept["Unknown"]; got != [2]int{2, 0} {
		t.Errorf("Unknown bucket = %v, want {2 0}", got)
	}
}

func TestCertificateFlagIsMonotonic(t *testing.T) {
	svc := NewEventService(newTestDB(t))
	ev := makeEvent(t, svc, "Cert", nil)

	reg, err := svc.RegisterIndividual(ev.EventID, uuid.New(), nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.MarkCertificateIssued(reg.RegistrationID); err != nil {
			t.Fatalf("MarkCertificateIssued: %v", err)
		}
	}

	got, err := svc.RegistrationByID(reg.RegistrationID)
	if err != nil {
		t.Fatalf("RegistrationByID: %v", err)
	}
	if !got.RegistrationCertificateIssued {
		t.Error("certificate flag not set")
	}
}
