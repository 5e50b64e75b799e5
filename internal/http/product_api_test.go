package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/domain"
)

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	resp, raw := doJSON(t, app, "GET", "/api/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	body := decode[map[string]string](t, raw)
	if body["status"] != "OK" || body["timestamp"] == "" {
		t.Fatalf("bad health body: %v", body)
	}
}

func TestListProductsCategoryFilter(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, "GET", "/api/products?category=Infrastructure", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	products := decode[[]domain.Product](t, raw)
	if len(products) != 2 {
		t.Fatalf("want the 2 seeded Infrastructure products, got %d", len(products))
	}
	for _, p := range products {
		if p.Category != "Infrastructure" {
			t.Fatalf("category filter leaked %s", p.Category)
		}
	}

	// every product appears under its own category
	resp, raw = doJSON(t, app, "GET", "/api/products", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	for _, p := range decode[[]domain.Product](t, raw) {
		_, raw2 := doJSON(t, app, "GET", "/api/products?category="+p.Category, nil)
		found := false
		for _, q := range decode[[]domain.Product](t, raw2) {
			if q.ID == p.ID {
				found = true
			}
		}
		if !found {
			t.Fatalf("product %s missing from its own category listing", p.ID)
		}
	}
}

func TestListProductsSearch(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, "GET", "/api/products?search=REEFER", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	products := decode[[]domain.Product](t, raw)
	if len(products) != 1 || products[0].ID != "p5" {
		t.Fatalf("case-insensitive tag search failed: %+v", products)
	}

	// search and category AND together
	_, raw = doJSON(t, app, "GET", "/api/products?category=Transport&search=solar", nil)
	if got := decode[[]domain.Product](t, raw); len(got) != 0 {
		t.Fatalf("AND of filters violated: %+v", got)
	}
}

func TestGetProduct(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, "GET", "/api/products/p1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	p := decode[domain.Product](t, raw)
	if p.Title != "Cold Storage Unit - 2 Ton (Shared Hub)" || len(p.Tags) != 3 {
		t.Fatalf("bad product body: %+v", p)
	}

	resp, raw = doJSON(t, app, "GET", "/api/products/ghost", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
	if body := decode[map[string]string](t, raw); body["error"] != "Product not found" {
		t.Fatalf("bad 404 body: %v", body)
	}
}

func TestCreateProduct(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, "POST", "/api/products", map[string]any{
		"title":       "Borewell Pump Set",
		"category":    "Machinery",
		"price":       38000,
		"rentPerDay":  500,
		"img":         "https://example.com/pump.jpg",
		"rating":      4.1,
		"description": "Submersible pump set for shared irrigation",
		"tags":        []string{"irrigation", "pump"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d: %s", resp.StatusCode, raw)
	}
	p := decode[domain.Product](t, raw)
	if p.ID == "" || p.CreatedAt == "" {
		t.Fatalf("missing generated fields: %+v", p)
	}
	if !p.Availability || p.Stock != 1 {
		t.Fatalf("defaults not applied: %+v", p)
	}

	// round-trips through the store
	resp, raw = doJSON(t, app, "GET", "/api/products/"+p.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("created product not readable: %d", resp.StatusCode)
	}
	if got := decode[domain.Product](t, raw); got.Title != "Borewell Pump Set" {
		t.Fatalf("bad stored product: %+v", got)
	}
}

func TestCreateProductValidation(t *testing.T) {
	app, _ := newTestApp(t)

	cases := []map[string]any{
		{"category": "Inputs", "price": 1, "img": "x", "description": "no title"},
		{"title": "T", "category": "Gadgets", "price": 1, "img": "x", "description": "bad category"},
		{"title": "T", "category": "Inputs", "price": -5, "img": "x", "description": "negative price"},
		{"title": "T", "category": "Inputs", "price": 1, "description": "no img"},
		{"title": "T", "category": "Inputs", "price": 1, "img": "x", "rating": 9, "description": "rating too high"},
	}
	for i, body := range cases {
		resp, raw := doJSON(t, app, "POST", "/api/products", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("case %d: want 400, got %d: %s", i, resp.StatusCode, raw)
		}
		if msg := decode[map[string]string](t, raw)["error"]; msg == "" {
			t.Fatalf("case %d: validation message missing", i)
		}
	}

	// nothing was persisted
	_, raw := doJSON(t, app, "GET", "/api/products", nil)
	if got := decode[[]domain.Product](t, raw); len(got) != 6 {
		t.Fatalf("invalid create persisted something: %d products", len(got))
	}
}

func TestUpdateProduct(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, "PUT", "/api/products/p3", map[string]any{"price": 70000})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", resp.StatusCode, raw)
	}
	p := decode[domain.Product](t, raw)
	if p.Price != 70000 || p.Title != "Packaging & Grading Line (Basic)" {
		t.Fatalf("partial update wrong: %+v", p)
	}

	resp, _ = doJSON(t, app, "PUT", "/api/products/p3", map[string]any{"category": "Nonsense"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 for bad patch, got %d", resp.StatusCode)
	}

	resp, raw = doJSON(t, app, "PUT", "/api/products/ghost", map[string]any{"price": 1})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d: %s", resp.StatusCode, raw)
	}
}

func TestDeleteProduct(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, "DELETE", "/api/products/ghost", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
	if body := decode[map[string]string](t, raw); body["error"] != "Product not found" {
		t.Fatalf("bad 404 body: %v", body)
	}
	// collection unchanged
	_, raw = doJSON(t, app, "GET", "/api/products", nil)
	if got := decode[[]domain.Product](t, raw); len(got) != 6 {
		t.Fatalf("missing-id delete changed the collection: %d", len(got))
	}

	resp, raw = doJSON(t, app, "DELETE", "/api/products/p6", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	if body := decode[map[string]string](t, raw); !strings.Contains(body["message"], "deleted successfully") {
		t.Fatalf("bad delete confirmation: %v", body)
	}
	resp, _ = doJSON(t, app, "GET", "/api/products/p6", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("deleted product still readable: %d", resp.StatusCode)
	}
}
