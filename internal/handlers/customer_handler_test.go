package handlers_test

import (
	"net/http"
	"testing"

	"github.com/garagehub/autoshop-api/internal/models"
)

func TestCreateCustomer(t *testing.T) {
	s := newTestServer(t)

	customer := s.createCustomer("jamie@example.com")
	if customer["id"] == "" || customer["id"] == nil {
		t.Fatal("created customer has no id")
	}
	if customer["first_name"] != "Jamie" {
		t.Fatalf("got first_name %v", customer["first_name"])
	}

	// creation is audited
	var count int64
	s.db.Model(&models.AuditLog{}).
		Where("action = ? AND entity = ?", "customer_created", "customer").
		Count(&count)
	if count != 1 {
		t.Fatalf("got %d customer_created audit rows, want 1", count)
	}
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	s := newTestServer(t)
	s.createCustomer("jamie@example.com")

	w := s.do(http.MethodPost, "/api/customers", map[string]any{
		"first_name": "Other",
		"last_name":  "Person",
		"phone":      "555-0102",
		"email":      "jamie@example.com",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate customer email: got %d, want 400", w.Code)
	}
}

func TestCreateCustomerMissingFields(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/customers", map[string]any{
		"first_name": "Jamie",
		"last_name":  "Rivera",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing fields: got %d, want 400", w.Code)
	}
}

func TestListCustomers(t *testing.T) {
	s := newTestServer(t)
	s.createCustomer("a@example.com")
	s.createCustomer("b@example.com")

	w := s.do(http.MethodGet, "/api/customers", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list customers: got %d", w.Code)
	}

	var customers []map[string]any
	decode(t, w, &customers)
	if len(customers) != 2 {
		t.Fatalf("got %d customers, want 2", len(customers))
	}
}
