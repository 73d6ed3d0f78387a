package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
)

func TestCreateRepairInvalidDate(t *testing.T) {
	s := newTestServer(t)
	s.createCustomer("jamie@example.com")
	vehicle := s.createVehicle("jamie@example.com")

	w := s.do(http.MethodPost, "/api/repairs", map[string]any{
		"description": "engine check",
		"date":        "2024-13-40",
		"vehicle_id":  vehicle["id"],
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid date: got %d, want 400", w.Code)
	}

	var resp map[string]any
	decode(t, w, &resp)
	if resp["error"] != "invalid_date" {
		t.Fatalf("got error %v, want invalid_date", resp["error"])
	}
}

func TestCreateRepairUnknownVehicle(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/repairs", map[string]any{
		"description": "engine check",
		"date":        "2024-05-01",
		"vehicle_id":  "no-such-vehicle",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown vehicle: got %d, want 404", w.Code)
	}
}

func TestCreateRepairDefaultsAndRoundTrip(t *testing.T) {
	s := newTestServer(t)
	s.createCustomer("jamie@example.com")
	vehicle := s.createVehicle("jamie@example.com")

	repair := s.createRepair(vehicle["id"].(string), "2024-05-01", "")
	if repair["status"] != "scheduled" {
		t.Fatalf("got status %v, want scheduled", repair["status"])
	}
	if repair["date"] != "2024-05-01" {
		t.Fatalf("got date %v, want 2024-05-01", repair["date"])
	}

	nestedVehicle, ok := repair["vehicle"].(map[string]any)
	if !ok {
		t.Fatalf("repair has no nested vehicle: %v", repair)
	}
	if nestedVehicle["id"] != vehicle["id"] {
		t.Fatalf("nested vehicle id %v, want %v", nestedVehicle["id"], vehicle["id"])
	}

	// date survives a read back through the list endpoint
	w := s.do(http.MethodGet, "/api/repairs", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list repairs: got %d", w.Code)
	}
	var repairs []map[string]any
	decode(t, w, &repairs)
	if len(repairs) != 1 {
		t.Fatalf("got %d repairs, want 1", len(repairs))
	}
	if repairs[0]["date"] != "2024-05-01" {
		t.Fatalf("read-back date %v, want 2024-05-01", repairs[0]["date"])
	}
	nested := repairs[0]["vehicle"].(map[string]any)
	if nested["customer"].(map[string]any)["email"] != "jamie@example.com" {
		t.Fatal("listed repair does not nest vehicle customer")
	}
}

func TestUpdateRepairStatus(t *testing.T) {
	s := newTestServer(t)
	s.createCustomer("jamie@example.com")
	vehicle := s.createVehicle("jamie@example.com")
	repair := s.createRepair(vehicle["id"].(string), "2024-05-01", "")

	path := fmt.Sprintf("/api/repairs/%s/status", repair["id"])

	// missing status
	if w := s.do(http.MethodPatch, path, map[string]any{}); w.Code != http.StatusBadRequest {
		t.Fatalf("missing status: got %d, want 400", w.Code)
	}

	// unknown repair
	if w := s.do(http.MethodPatch, "/api/repairs/no-such-repair/status", map[string]any{"status": "in-shop"}); w.Code != http.StatusNotFound {
		t.Fatalf("unknown repair: got %d, want 404", w.Code)
	}

	// update, then repeat the identical update
	for i := 0; i < 2; i++ {
		w := s.do(http.MethodPatch, path, map[string]any{"status": "in-shop"})
		if w.Code != http.StatusOK {
			t.Fatalf("update %d: got %d, body %s", i, w.Code, w.Body.String())
		}
		var updated map[string]any
		decode(t, w, &updated)
		if updated["status"] != "in-shop" {
			t.Fatalf("update %d: got status %v", i, updated["status"])
		}
	}

	// read back reflects the new status
	w := s.do(http.MethodGet, "/api/repairs", nil)
	var repairs []map[string]any
	decode(t, w, &repairs)
	if repairs[0]["status"] != "in-shop" {
		t.Fatalf("read-back status %v, want in-shop", repairs[0]["status"])
	}
}

func TestListRepairsForVehicle(t *testing.T) {
	s := newTestServer(t)
	s.createCustomer("jamie@example.com")
	withRepairs := s.createVehicle("jamie@example.com")
	withoutRepairs := s.createVehicle("jamie@example.com")
	s.createRepair(withRepairs["id"].(string), "2024-05-01", "")

	w := s.do(http.MethodGet, "/api/repairs/vehicle/"+withRepairs["id"].(string), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("repairs for vehicle: got %d", w.Code)
	}
	var repairs []map[string]any
	decode(t, w, &repairs)
	if len(repairs) != 1 {
		t.Fatalf("got %d repairs, want 1", len(repairs))
	}

	// known vehicle without repairs: empty list, not 404
	w = s.do(http.MethodGet, "/api/repairs/vehicle/"+withoutRepairs["id"].(string), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("vehicle without repairs: got %d, want 200", w.Code)
	}
	decode(t, w, &repairs)
	if len(repairs) != 0 {
		t.Fatalf("got %d repairs, want 0", len(repairs))
	}

	// unknown vehicle id
	w = s.do(http.MethodGet, "/api/repairs/vehicle/no-such-vehicle", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown vehicle: got %d, want 404", w.Code)
	}
}

func TestCountInShopRepairs(t *testing.T) {
	s := newTestServer(t)
	s.createCustomer("jamie@example.com")
	vehicle := s.createVehicle("jamie@example.com")
	id := vehicle["id"].(string)

	s.createRepair(id, "2024-05-01", "in-shop")
	s.createRepair(id, "2024-05-02", "in-shop")
	s.createRepair(id, "2024-05-03", "")
	completed := s.createRepair(id, "2024-05-04", "in-shop")

	// moving one out of in-shop drops the count
	s.do(http.MethodPatch, fmt.Sprintf("/api/repairs/%s/status", completed["id"]), map[string]any{"status": "completed"})

	w := s.do(http.MethodGet, "/api/repairs/in-shop/count", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("count: got %d", w.Code)
	}
	var resp map[string]float64
	decode(t, w, &resp)
	if resp["count"] != 2 {
		t.Fatalf("got count %v, want 2", resp["count"])
	}

	// cross-check against the full listing
	lw := s.do(http.MethodGet, "/api/repairs", nil)
	var repairs []map[string]any
	decode(t, lw, &repairs)
	inShop := 0
	for _, r := range repairs {
		if r["status"] == "in-shop" {
			inShop++
		}
	}
	if float64(inShop) != resp["count"] {
		t.Fatalf("count %v disagrees with listing (%d in-shop)", resp["count"], inShop)
	}
}
