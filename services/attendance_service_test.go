package services

import (
	"context"
	"testing"
	"time"

	"crm/constants"
	apperrors "crm/errors"
	"crm/models"
)

func newAttendanceService(t *testing.T, clock *fixedClock) *AttendanceService {
	t.Helper()
	return NewAttendanceService(AttendanceServiceOptions{
		DB:       newTestDB(t),
		Now:      clock.Now,
		Location: time.UTC,
	})
}

func TestCheckInCheckOut(t *testing.T) {
	clock := &fixedClock{now: time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC)}
	svc := newAttendanceService(t, clock)
	ctx := context.Background()
	dev := createUser(t, svc.db, "dev@example.com", constants.RoleDeveloper, constants.UserStatusActive)

	_, err := svc.CheckOut(ctx, dev.ID, constants.RoleDeveloper)
	assertCode(t, err, apperrors.ErrCodeValidation)

	rec, err := svc.CheckIn(ctx, dev.ID, constants.RoleDeveloper)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if rec.Date != "2025-03-10" || rec.CheckIn != "09:15:00" {
		t.Errorf("record = %s %s", rec.Date, rec.CheckIn)
	}

	_, err = svc.CheckIn(ctx, dev.ID, constants.RoleDeveloper)
	assertCode(t, err, apperrors.ErrCodeValidation)

	clock.now = clock.now.Add(8*time.Hour + 30*time.Minute + 5*time.Second)
	rec, err = svc.CheckOut(ctx, dev.ID, constants.RoleDeveloper)
	if err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if rec.CheckOut != "17:45:05" || rec.Duration != "08:30:05" {
		t.Errorf("check-out = %s duration = %s", rec.CheckOut, rec.Duration)
	}

	_, err = svc.CheckOut(ctx, dev.ID, constants.RoleDeveloper)
	assertCode(t, err, apperrors.ErrCodeValidation)

	// the next day starts a new record
	clock.now = time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	if _, err := svc.CheckIn(ctx, dev.ID, constants.RoleDeveloper); err != nil {
		t.Fatalf("CheckIn next day: %v", err)
	}

	mine, err := svc.Mine(ctx, dev.ID)
	if err != nil {
		t.Fatalf("Mine: %v", err)
	}
	if len(mine) != 2 || mine[0].Date != "2025-03-11" {
		t.Errorf("mine = %+v", mine)
	}
}

func TestCheckInUsesConfiguredZone(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	// 20:00 UTC is already the next day in Kolkata
	clock := &fixedClock{now: time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)}
	svc := NewAttendanceService(AttendanceServiceOptions{DB: newTestDB(t), Now: clock.Now, Location: kolkata})
	dev := createUser(t, svc.db, "dev@example.com", constants.RoleDeveloper, constants.UserStatusActive)

	rec, err := svc.CheckIn(context.Background(), dev.ID, constants.RoleDeveloper)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if rec.Date != "2025-03-11" || rec.CheckIn != "01:30:00" {
		t.Errorf("record = %s %s", rec.Date, rec.CheckIn)
	}
}

func TestOnlyDevelopersCheckIn(t *testing.T) {
	clock := &fixedClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := newAttendanceService(t, clock)
	ctx := context.Background()

	for _, role := range []string{constants.RoleHR, constants.RoleUser, constants.RoleSuperAdmin} {
		t.Run(role, func(t *testing.T) {
			_, err := svc.CheckIn(ctx, 1, role)
			assertCode(t, err, apperrors.ErrCodeForbidden)
			_, err = svc.CheckOut(ctx, 1, role)
			assertCode(t, err, apperrors.ErrCodeForbidden)
		})
	}
}

func TestAllAttendanceOnlyDevelopers(t *testing.T) {
	clock := &fixedClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := newAttendanceService(t, clock)
	ctx := context.Background()
	dev := createUser(t, svc.db, "dev@example.com", constants.RoleDeveloper, constants.UserStatusActive)
	hr := createUser(t, svc.db, "hr@example.com", constants.RoleHR, constants.UserStatusActive)

	if _, err := svc.CheckIn(ctx, dev.ID, constants.RoleDeveloper); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	// a row left behind by an account that is no longer a developer
	svc.db.Create(&models.Attendance{StaffID: hr.ID, Date: "2025-03-10", CheckIn: "09:00:00"})

	all, err := svc.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("records = %d, want 1", len(all))
	}
	if all[0].Staff.Email != "dev@example.com" {
		t.Errorf("staff = %+v", all[0].Staff)
	}
}

func TestWorkingHours(t *testing.T) {
	svc := newAttendanceService(t, &fixedClock{now: time.Now()})
	ctx := context.Background()
	dev := createUser(t, svc.db, "dev@example.com", constants.RoleDeveloper, constants.UserStatusActive)
	other := createUser(t, svc.db, "other@example.com", constants.RoleDeveloper, constants.UserStatusActive)

	for _, r := range []models.Attendance{
		{StaffID: dev.ID, Date: "2025-03-03", CheckIn: "09:00:00", CheckOut: "17:30:00", Duration: "08:30:00"},
		{StaffID: dev.ID, Date: "2025-03-04", CheckIn: "09:00:00", CheckOut: "10:30:00", Duration: "01:30:00"},
		{StaffID: dev.ID, Date: "2025-03-05", CheckIn: "09:00:00"},
		{StaffID: dev.ID, Date: "2025-04-01", CheckIn: "09:00:00", CheckOut: "18:00:00", Duration: "09:00:00"},
	} {
		if err := svc.db.Create(&r).Error; err != nil {
			t.Fatalf("seed attendance: %v", err)
		}
	}

	res, err := svc.WorkingHours(ctx, dev.ID, constants.RoleDeveloper, dev.ID, "2025-03")
	if err != nil {
		t.Fatalf("WorkingHours: %v", err)
	}
	// legacy reading: 8 + 1, exact: 8.5 + 1.5
	if res.TotalHours != 9 {
		t.Errorf("totalHours = %v, want 9", res.TotalHours)
	}
	if res.ExactHours != 10 {
		t.Errorf("exactHours = %v, want 10", res.ExactHours)
	}

	_, err = svc.WorkingHours(ctx, other.ID, constants.RoleDeveloper, dev.ID, "2025-03")
	assertCode(t, err, apperrors.ErrCodeForbidden)

	if _, err := svc.WorkingHours(ctx, 999, constants.RoleHR, dev.ID, "2025-03"); err != nil {
		t.Errorf("hr lookup: %v", err)
	}

	_, err = svc.WorkingHours(ctx, dev.ID, constants.RoleDeveloper, dev.ID, "2025-3")
	assertCode(t, err, apperrors.ErrCodeValidation)
}

func TestLegacyHours(t *testing.T) {
	tests := []struct {
		name      string
		durations []string
		want      float64
	}{
		{"none", nil, 0},
		{"leading hours", []string{"08:30:00", "01:59:59"}, 9},
		{"empty counts zero", []string{"", "02:00:00"}, 2},
		{"decimal", []string{"7.5", "0.25h"}, 7.75},
		{"unreadable poisons total", []string{"08:00:00", "abc"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := legacyHours(tt.durations); got != tt.want {
				t.Errorf("legacyHours(%v) = %v, want %v", tt.durations, got, tt.want)
			}
		})
	}
}

func TestClockHelpers(t *testing.T) {
	if s, ok := parseClock("01:02:03"); !ok || s != 3723 {
		t.Errorf("parseClock = %d, %v", s, ok)
	}
	for _, bad := range []string{"", "1:2", "aa:bb:cc", "10:61:00", "-1:00:00"} {
		if _, ok := parseClock(bad); ok {
			t.Errorf("parseClock(%q) accepted", bad)
		}
	}
	if got := formatClock(3723); got != "01:02:03" {
		t.Errorf("formatClock = %q", got)
	}
	if got := formatClock(-5); got != "00:00:00" {
		t.Errorf("formatClock negative = %q", got)
	}
}
