package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cldops/trainroom-server/config"
	"github.com/cldops/trainroom-server/models"
	"github.com/cldops/trainroom-server/routes"
	"github.com/cldops/trainroom-server/utils"
)

// setupServer gives every test a fresh on-disk sqlite database (pure Go
// driver, foreign keys on so owner cascades behave like production) and a
// router with the full route table.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

const testPassword = "password123"

func createUser(t *testing.T, username string, active, superuser bool) models.User {
	t.Helper()
	hash, err := utils.HashPassword(testPassword)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Username:    username,
		Email:       username + "@example.com",
		Password:    hash,
		IsActive:    active,
		IsStaff:     true,
		IsSuperuser: superuser,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := config.DB.Create(&models.Profile{UserID: user.ID, Color: models.DefaultColor}).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	role := "staff"
	if user.IsSuperuser {
		role = "superuser"
	}
	token, err := utils.GenerateToken(fmt.Sprintf("%d", user.ID), role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// Every request gets its own client IP so the per-IP auth limiter (a
// package-level singleton) never throttles the suite.
var ipCounter uint32

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	n := atomic.AddUint32(&ipCounter, 1)
	req.RemoteAddr = fmt.Sprintf("10.%d.%d.%d:12345", n>>16&0xff, n>>8&0xff, n&0xff)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode list %q: %v", w.Body.String(), err)
	}
	return out
}

func createRoom(t *testing.T, name, rate string) models.Room {
	t.Helper()
	price, err := decimal.NewFromString(rate)
	if err != nil {
		t.Fatalf("parse rate: %v", err)
	}
	room := models.Room{Name: name, PricePerHour: price}
	if err := config.DB.Create(&room).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}
	return room
}
