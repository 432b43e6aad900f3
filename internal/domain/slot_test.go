package domain

import (
	"testing"

	"github.com/dsmirn0v/AQS-BookingService/pkg/types"
)

func TestSlotContains_HalfOpenInterval(t *testing.T) {
	slot := &Slot{StartTime: "09:00", EndTime: "10:00"}

	cases := []struct {
		time types.TimeString
		want bool
	}{
		{"08:59", false},
		{"09:00", true}, // начало включено
		{"09:30", true},
		{"09:59", true},
		{"10:00", false}, // конец исключён
		{"10:01", false},
	}
	for _, c := range cases {
		if got := slot.Contains(c.time); got != c.want {
			t.Fatalf("Contains(%s) = %v, want %v", c.time, got, c.want)
		}
	}
}

func TestSlotOverlaps(t *testing.T) {
	slot := &Slot{StartTime: "09:00", EndTime: "10:00"}

	// Соседние интервалы с общей границей не пересекаются
	if slot.Overlaps("10:00", "11:00") {
		t.Fatal("[09:00,10:00) and [10:00,11:00) must not overlap")
	}
	if slot.Overlaps("08:00", "09:00") {
		t.Fatal("[09:00,10:00) and [08:00,09:00) must not overlap")
	}

	if !slot.Overlaps("09:30", "10:30") {
		t.Fatal("partial overlap on the right not detected")
	}
	if !slot.Overlaps("08:30", "09:30") {
		t.Fatal("partial overlap on the left not detected")
	}
	if !slot.Overlaps("08:00", "11:00") {
		t.Fatal("containing interval not detected as overlap")
	}
	if !slot.Overlaps("09:15", "09:45") {
		t.Fatal("contained interval not detected as overlap")
	}
}

func TestSlotAcceptsServiceType(t *testing.T) {
	// Пустой список = слот принимает все типы услуг
	open := &Slot{}
	if !open.AcceptsServiceType(ServiceRepair, "repair") {
		t.Fatal("slot with empty service types must accept any type")
	}

	restricted := &Slot{ServiceTypes: []string{"installation", "maintenance"}}
	if !restricted.AcceptsServiceType(ServiceInstallation, "installation") {
		t.Fatal("restricted slot must accept listed type")
	}
	if restricted.AcceptsServiceType(ServiceRepair, "repair") {
		t.Fatal("restricted slot must reject unlisted type")
	}
}

func TestSlotAcceptsServiceType_RawCasingFallback(t *testing.T) {
	// Слоты, созданные до нормализации ввода, могут хранить тип в
	// оригинальном регистре
	legacy := &Slot{ServiceTypes: []string{"Installation"}}
	if !legacy.AcceptsServiceType(ServiceInstallation, "Installation") {
		t.Fatal("raw value must match legacy stored casing")
	}
}

func TestSlotIsFull(t *testing.T) {
	s := &Slot{MaxBookings: 2, BookedCount: 1}
	if s.IsFull() {
		t.Fatal("slot with remaining capacity reported as full")
	}
	s.BookedCount = 2
	if !s.IsFull() {
		t.Fatal("slot at capacity not reported as full")
	}
}

func TestNormalizeServiceType(t *testing.T) {
	cases := []struct {
		in   string
		want ServiceType
		ok   bool
	}{
		{"installation", ServiceInstallation, true},
		{"Installation", ServiceInstallation, true},
		{"  WATER-TESTING  ", ServiceWaterTesting, true},
		{"grooming", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizeServiceType(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("NormalizeServiceType(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestAppointmentCanTransitionTo(t *testing.T) {
	cases := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}
	for _, c := range cases {
		a := &Appointment{Status: c.from}
		if got := a.CanTransitionTo(c.to); got != c.want {
			t.Fatalf("CanTransitionTo(%s -> %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestRolePermissions(t *testing.T) {
	if RoleCustomer.CanManageSlots() {
		t.Fatal("customer must not manage slots")
	}
	if !RoleStaff.CanManageSlots() || !RoleAdmin.CanManageSlots() {
		t.Fatal("staff and admin must manage slots")
	}
	if RoleCustomer.CanViewAllAppointments() {
		t.Fatal("customer must not view all appointments")
	}
	if !RoleStaff.CanUpdateAppointmentStatus() || !RoleAdmin.CanUpdateAppointmentStatus() {
		t.Fatal("staff and admin must update appointment status")
	}
}
