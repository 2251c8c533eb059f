package controllers_test

import (
	"net/http"
	"testing"

	"github.com/cldops/trainroom-server/config"
	"github.com/cldops/trainroom-server/models"
)

func TestRoomAdminCRUD(t *testing.T) {
	r := setupServer(t)
	admin := createUser(t, "root", true, true)
	staff := createUser(t, "alice", true, false)
	adminToken := tokenFor(t, admin)

	w := doJSON(t, r, http.MethodPost, "/api/admin/rooms", adminToken, map[string]interface{}{
		"name": "Alpha", "capacity": 12, "projector": "Yes", "price_per_hour": 50,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]interface{})
	if data["projector"].(string) != "Yes" || data["speaker"].(string) != "No" {
		t.Errorf("projector/speaker = %v/%v", data["projector"], data["speaker"])
	}
	if data["price_per_hour"].(float64) != 50 {
		t.Errorf("price_per_hour = %v, want 50", data["price_per_hour"])
	}

	// staff may read but not write
	if w := doJSON(t, r, http.MethodGet, "/api/rooms", tokenFor(t, staff), nil); w.Code != http.StatusOK {
		t.Errorf("staff list: status = %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/rooms/1", tokenFor(t, staff), nil); w.Code != http.StatusOK {
		t.Errorf("staff detail: status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/admin/rooms", tokenFor(t, staff), map[string]interface{}{
		"name": "Sneak", "price_per_hour": 1,
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("staff create: status = %d, want 403", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/api/admin/rooms/1", adminToken, map[string]interface{}{
		"name": "Alpha Prime", "capacity": 20, "price_per_hour": 75,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/api/admin/rooms/1", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", w.Code)
	}
	var count int64
	config.DB.Model(&models.Room{}).Count(&count)
	if count != 0 {
		t.Errorf("rooms after delete = %d, want 0", count)
	}
}

func TestRoomDuplicateNameRefused(t *testing.T) {
	r := setupServer(t)
	admin := createUser(t, "root", true, true)
	adminToken := tokenFor(t, admin)
	createRoom(t, "Alpha", "50")
	createRoom(t, "Beta", "80")

	w := doJSON(t, r, http.MethodPost, "/api/admin/rooms", adminToken, map[string]interface{}{
		"name": "Alpha", "price_per_hour": 10,
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate create: status = %d, want 409", w.Code)
	}

	// renaming Beta onto Alpha is refused too
	w = doJSON(t, r, http.MethodPut, "/api/admin/rooms/2", adminToken, map[string]interface{}{
		"name": "Alpha", "price_per_hour": 80,
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate rename: status = %d, want 409", w.Code)
	}

	// keeping its own name is fine
	w = doJSON(t, r, http.MethodPut, "/api/admin/rooms/2", adminToken, map[string]interface{}{
		"name": "Beta", "price_per_hour": 90,
	})
	if w.Code != http.StatusOK {
		t.Errorf("self rename: status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestRoomNegativeRateRefused(t *testing.T) {
	r := setupServer(t)
	admin := createUser(t, "root", true, true)

	w := doJSON(t, r, http.MethodPost, "/api/admin/rooms", tokenFor(t, admin), map[string]interface{}{
		"name": "Alpha", "price_per_hour": -5,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("negative rate: status = %d, want 400", w.Code)
	}
}

func TestRoomDeleteCascadesBookings(t *testing.T) {
	r := setupServer(t)
	admin := createUser(t, "root", true, true)
	staff := createUser(t, "alice", true, false)
	createRoom(t, "Alpha", "50")

	w := doJSON(t, r, http.MethodPost, "/api/bookings", tokenFor(t, staff), map[string]interface{}{
		"room_id": 1, "title": "x", "start": "2026-09-01T09:00:00Z", "end": "2026-09-01T10:00:00Z",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create booking: status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/admin/rooms/1", tokenFor(t, admin), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete room: status = %d", w.Code)
	}

	var count int64
	config.DB.Model(&models.Booking{}).Count(&count)
	if count != 0 {
		t.Errorf("bookings after room delete = %d, want 0", count)
	}
}

func TestRateChangeLeavesPastBookingsAlone(t *testing.T) {
	r := setupServer(t)
	admin := createUser(t, "root", true, true)
	staff := createUser(t, "alice", true, false)
	createRoom(t, "Alpha", "50")

	w := doJSON(t, r, http.MethodPost, "/api/bookings", tokenFor(t, staff), map[string]interface{}{
		"room_id": 1, "title": "x", "start": "2026-09-01T09:00:00Z", "end": "2026-09-01T11:00:00Z",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create booking: status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/api/admin/rooms/1", tokenFor(t, admin), map[string]interface{}{
		"name": "Alpha", "price_per_hour": 100,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update rate: status = %d", w.Code)
	}

	var booking models.Booking
	config.DB.First(&booking)
	if got := booking.TotalCost.String(); got != "100" {
		t.Errorf("existing booking cost = %s, want 100 (2h at the old 50 rate)", got)
	}

	// new bookings pick up the new rate
	w = doJSON(t, r, http.MethodPost, "/api/bookings", tokenFor(t, staff), map[string]interface{}{
		"room_id": 1, "title": "y", "start": "2026-09-01T11:00:00Z", "end": "2026-09-01T12:00:00Z",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("second booking: status = %d", w.Code)
	}
	data := decodeBody(t, w)["data"].(map[string]interface{})
	if got := data["total_cost"].(float64); got != 100 {
		t.Errorf("new booking cost = %v, want 100 (1h at the new rate)", got)
	}
}

func TestHolidayLifecycle(t *testing.T) {
	r := setupServer(t)
	admin := createUser(t, "root", true, true)
	adminToken := tokenFor(t, admin)

	w := doJSON(t, r, http.MethodPost, "/api/admin/holidays", adminToken, map[string]interface{}{
		"date": "2026-12-25", "name": "Christmas Day",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", w.Code, w.Body.String())
	}

	// one holiday per date
	w = doJSON(t, r, http.MethodPost, "/api/admin/holidays", adminToken, map[string]interface{}{
		"date": "2026-12-25", "name": "Duplicate",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate date: status = %d, want 409", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/admin/holidays", adminToken, map[string]interface{}{
		"date": "not-a-date", "name": "Broken",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date: status = %d, want 400", w.Code)
	}

	// the list is public, no token needed
	w = doJSON(t, r, http.MethodGet, "/api/holidays", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("public list: status = %d", w.Code)
	}
	rows := decodeList(t, w)
	if len(rows) != 1 || rows[0]["date"].(string) != "2026-12-25" || rows[0]["name"].(string) != "Christmas Day" {
		t.Errorf("rows = %v", rows)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/admin/holidays/1", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/holidays", "", nil)
	if rows := decodeList(t, w); len(rows) != 0 {
		t.Errorf("rows after delete = %d, want 0", len(rows))
	}
}
