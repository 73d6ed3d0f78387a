package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/garagehub/autoshop-api/internal/config"
	dbpkg "github.com/garagehub/autoshop-api/internal/db"
	"github.com/garagehub/autoshop-api/internal/routes"
)

type testServer struct {
	t  *testing.T
	r  *gin.Engine
	db *gorm.DB
}

// newTestServer wires the real router against an in-memory sqlite database,
// one database per test.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := dbpkg.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		SessionSecret: "test-session-secret",
		ServerPort:    "0",
	}

	r := gin.New()
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("autoshop_session", store))
	routes.RegisterRoutes(r, gdb, cfg)

	return &testServer{t: t, r: r, db: gdb}
}

func (s *testServer) do(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			s.t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	s.r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// --------- Seed helpers (go through the API, not the DB) ---------

func (s *testServer) createCustomer(email string) map[string]any {
	s.t.Helper()

	w := s.do(http.MethodPost, "/api/customers", map[string]any{
		"first_name": "Jamie",
		"last_name":  "Rivera",
		"phone":      "555-0101",
		"email":      email,
	})
	if w.Code != http.StatusCreated {
		s.t.Fatalf("create customer: got status %d, body %s", w.Code, w.Body.String())
	}

	var customer map[string]any
	decode(s.t, w, &customer)
	return customer
}

func (s *testServer) createVehicle(customerEmail string) map[string]any {
	s.t.Helper()

	w := s.do(http.MethodPost, "/api/vehicles", map[string]any{
		"make":           "Toyota",
		"model":          "Corolla",
		"year":           "2019",
		"color":          "blue",
		"customer_email": customerEmail,
	})
	if w.Code != http.StatusCreated {
		s.t.Fatalf("create vehicle: got status %d, body %s", w.Code, w.Body.String())
	}

	var vehicle map[string]any
	decode(s.t, w, &vehicle)
	return vehicle
}

func (s *testServer) createRepair(vehicleID, date, status string) map[string]any {
	s.t.Helper()

	body := map[string]any{
		"description": "brake pads",
		"date":        date,
		"vehicle_id":  vehicleID,
	}
	if status != "" {
		body["status"] = status
	}

	w := s.do(http.MethodPost, "/api/repairs", body)
	if w.Code != http.StatusCreated {
		s.t.Fatalf("create repair: got status %d, body %s", w.Code, w.Body.String())
	}

	var repair map[string]any
	decode(s.t, w, &repair)
	return repair
}
