package controllers_test

import (
	"net/http"
	"testing"

	"github.com/cldops/trainroom-server/config"
	"github.com/cldops/trainroom-server/models"
)

func TestDuplicatePendingPasswordRequestRefused(t *testing.T) {
	r := setupServer(t)
	createUser(t, "alice", true, false)

	w := doJSON(t, r, http.MethodPost, "/api/auth/reset-password", "", map[string]interface{}{
		"username": "alice", "new_password": "brand-new-pass",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("first request: status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/reset-password", "", map[string]interface{}{
		"username": "alice", "new_password": "another-pass",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("second request: status = %d, want 409", w.Code)
	}

	// the first request is untouched
	var count int64
	config.DB.Model(&models.PasswordChangeRequest{}).Count(&count)
	if count != 1 {
		t.Errorf("requests persisted = %d, want 1", count)
	}
}

func TestPasswordRequestUnknownUser(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/reset-password", "", map[string]interface{}{
		"username": "ghost", "new_password": "whatever123",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestApprovePasswordChangeSwapsCredential(t *testing.T) {
	r := setupServer(t)
	admin := createUser(t, "root", true, true)
	createUser(t, "alice", true, false)

	w := doJSON(t, r, http.MethodPost, "/api/auth/reset-password", "", map[string]interface{}{
		"username": "alice", "new_password": "brand-new-pass",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("request: status = %d", w.Code)
	}

	// plaintext must never hit storage
	var req models.PasswordChangeRequest
	config.DB.First(&req)
	if req.NewPassword == "brand-new-pass" {
		t.Fatal("proposed password stored in clear")
	}

	w = doJSON(t, r, http.MethodPost, "/api/admin/password-requests/1/approve", tokenFor(t, admin), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("approve: status = %d, body %s", w.Code, w.Body.String())
	}

	// old credential is gone, new one works
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"username": "alice", "password": testPassword,
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("old password login: status = %d, want 401", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"username": "alice", "password": "brand-new-pass",
	})
	if w.Code != http.StatusOK {
		t.Errorf("new password login: status = %d, want 200", w.Code)
	}

	// approved requests are terminal
	w = doJSON(t, r, http.MethodPost, "/api/admin/password-requests/1/approve", tokenFor(t, admin), nil)
	if w.Code != http.StatusConflict {
		t.Errorf("re-approve: status = %d, want 409", w.Code)
	}
}

func TestRejectedRequestAllowsResubmission(t *testing.T) {
	r := setupServer(t)
	admin := createUser(t, "root", true, true)
	createUser(t, "alice", true, false)

	w := doJSON(t, r, http.MethodPost, "/api/auth/reset-password", "", map[string]interface{}{
		"username": "alice", "new_password": "brand-new-pass",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("request: status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/admin/password-requests/1/reject", tokenFor(t, admin), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("reject: status = %d", w.Code)
	}

	var req models.PasswordChangeRequest
	config.DB.First(&req)
	if req.Status != models.RequestRejected {
		t.Errorf("status = %q, want Rejected", req.Status)
	}

	// a rejected request no longer blocks a fresh one
	w = doJSON(t, r, http.MethodPost, "/api/auth/reset-password", "", map[string]interface{}{
		"username": "alice", "new_password": "second-try-pass",
	})
	if w.Code != http.StatusCreated {
		t.Errorf("resubmission: status = %d, want 201", w.Code)
	}

	// rejection stays terminal
	w = doJSON(t, r, http.MethodPost, "/api/admin/password-requests/1/approve", tokenFor(t, admin), nil)
	if w.Code != http.StatusConflict {
		t.Errorf("approve rejected: status = %d, want 409", w.Code)
	}
}

func TestLoggedInPasswordRequest(t *testing.T) {
	r := setupServer(t)
	staff := createUser(t, "alice", true, false)
	token := tokenFor(t, staff)

	w := doJSON(t, r, http.MethodPost, "/api/password-requests", token, map[string]interface{}{
		"new_password": "brand-new-pass",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("request: status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/password-requests", token, map[string]interface{}{
		"new_password": "another-pass",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate: status = %d, want 409", w.Code)
	}
}

func TestPendingPasswordRequestPollIsOneShot(t *testing.T) {
	r := setupServer(t)
	admin := createUser(t, "root", true, true)
	createUser(t, "alice", true, false)
	adminToken := tokenFor(t, admin)

	w := doJSON(t, r, http.MethodPost, "/api/auth/reset-password", "", map[string]interface{}{
		"username": "alice", "new_password": "brand-new-pass",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("request: status = %d", w.Code)
	}

	// first poll delivers the row
	w = doJSON(t, r, http.MethodGet, "/api/admin/notifications/password-requests", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("poll: status = %d", w.Code)
	}
	rows := decodeList(t, w)
	if len(rows) != 1 || rows[0]["user"].(string) != "alice" {
		t.Fatalf("first poll rows = %v", rows)
	}

	// second poll is empty: the row was marked notified
	w = doJSON(t, r, http.MethodGet, "/api/admin/notifications/password-requests", adminToken, nil)
	if rows := decodeList(t, w); len(rows) != 0 {
		t.Errorf("second poll rows = %d, want 0", len(rows))
	}

	// the request itself is still pending and listed for action
	w = doJSON(t, r, http.MethodGet, "/api/admin/password-requests", adminToken, nil)
	body := decodeBody(t, w)
	if data := body["data"].([]interface{}); len(data) != 1 {
		t.Errorf("pending list = %d, want 1", len(data))
	}
}

func TestPendingRegistrationsFeed(t *testing.T) {
	r := setupServer(t)
	admin := createUser(t, "root", true, true)
	createUser(t, "newbie", false, false)

	w := doJSON(t, r, http.MethodGet, "/api/admin/notifications/registrations", tokenFor(t, admin), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	rows := decodeList(t, w)
	if len(rows) != 1 || rows[0]["username"].(string) != "newbie" {
		t.Errorf("rows = %v", rows)
	}
}
