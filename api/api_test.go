package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/mobicore/storefront/api"
	"github.com/mobicore/storefront/core/assistant"
	"github.com/mobicore/storefront/core/cart"
	"github.com/mobicore/storefront/core/catalog"
	"github.com/mobicore/storefront/core/order"
	"github.com/sirupsen/logrus"
)

type env struct {
	srv    *httptest.Server
	client *http.Client
}

func newEnv(t *testing.T) *env {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	cat := catalog.Default()

	assist, err := assistant.New(assistant.Config{Timeout: time.Second}, cat)
	if err != nil {
		t.Fatalf("building assistant client: %v", err)
	}

	mux := api.APIMux(api.APIConfig{
		Log:       log,
		Session:   scs.New(),
		Catalog:   cat,
		Carts:     cart.NewSessions(time.Hour),
		Orders:    order.NewCore(order.NewMemoryStore()),
		Assistant: assist,
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("building cookie jar: %v", err)
	}

	return &env{
		srv:    srv,
		client: &http.Client{Jar: jar},
	}
}

func (e *env) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, e.srv.URL+path, rd)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response body: %v", err)
	}
	return resp, b
}

func decode(t *testing.T, b []byte, val any) {
	t.Helper()
	if err := json.Unmarshal(b, val); err != nil {
		t.Fatalf("decoding response %s: %v", b, err)
	}
}

func TestHealth(t *testing.T) {
	e := newEnv(t)

	resp, b := e.do(t, http.MethodGet, "/api/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var status struct {
		Status string `json:"status"`
	}
	decode(t, b, &status)
	if status.Status != "ok" {
		t.Fatalf("expected status ok, got %q", status.Status)
	}
}

func TestProducts(t *testing.T) {
	e := newEnv(t)

	resp, b := e.do(t, http.MethodGet, "/api/products", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var products []catalog.Product
	decode(t, b, &products)
	if len(products) != 6 {
		t.Fatalf("expected 6 products, got %d", len(products))
	}

	resp, b = e.do(t, http.MethodGet, "/api/products?brand=Apple", nil)
	decode(t, b, &products)
	if len(products) != 1 || products[0].Brand != "Apple" {
		t.Fatalf("unexpected brand filtering result: %+v", products)
	}

	resp, _ = e.do(t, http.MethodGet, "/api/products/1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for known product, got %d", resp.StatusCode)
	}

	resp, _ = e.do(t, http.MethodGet, "/api/products/999", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", resp.StatusCode)
	}
}

func TestPlaceAndListOrders(t *testing.T) {
	e := newEnv(t)

	p, _ := catalog.Default().Find("1")
	payload := map[string]any{
		"customerName": "Guest User",
		"items":        []cart.Line{{Product: p, Quantity: 2}},
		"total":        1998.0,
	}

	resp, b := e.do(t, http.MethodPost, "/api/orders", payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, b)
	}

	var placed struct {
		ID      int64 `json:"id"`
		Success bool  `json:"success"`
	}
	decode(t, b, &placed)
	if placed.ID != 1 || !placed.Success {
		t.Fatalf("unexpected checkout response: %+v", placed)
	}

	payload["customerName"] = "Second Customer"
	e.do(t, http.MethodPost, "/api/orders", payload)

	resp, b = e.do(t, http.MethodGet, "/api/orders", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var orders []order.Order
	decode(t, b, &orders)
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].CustomerName != "Second Customer" {
		t.Fatalf("expected newest order first, got %q", orders[0].CustomerName)
	}

	var snapshot []cart.Line
	if err := json.Unmarshal([]byte(orders[1].Items), &snapshot); err != nil {
		t.Fatalf("decoding items snapshot: %v", err)
	}
	if len(snapshot) != 1 || snapshot[0].ID != "1" || snapshot[0].Quantity != 2 {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
}

func TestPlaceOrderRejectsMalformedPayloads(t *testing.T) {
	e := newEnv(t)

	// Missing customer name.
	resp, _ := e.do(t, http.MethodPost, "/api/orders", map[string]any{
		"items": []cart.Line{},
		"total": 0,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing customerName, got %d", resp.StatusCode)
	}

	// Unknown field.
	resp, _ = e.do(t, http.MethodPost, "/api/orders", map[string]any{
		"customerName": "Guest User",
		"items":        []cart.Line{},
		"total":        0,
		"surprise":     true,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", resp.StatusCode)
	}

	// Negative total.
	resp, _ = e.do(t, http.MethodPost, "/api/orders", map[string]any{
		"customerName": "Guest User",
		"items":        []cart.Line{},
		"total":        -1,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative total, got %d", resp.StatusCode)
	}

	// Nothing malformed may reach storage.
	_, b := e.do(t, http.MethodGet, "/api/orders", nil)
	var orders []order.Order
	decode(t, b, &orders)
	if len(orders) != 0 {
		t.Fatalf("expected no stored orders, got %d", len(orders))
	}
}

func TestSessionCartFlow(t *testing.T) {
	e := newEnv(t)

	addItem := map[string]any{"productId": "1"}

	resp, b := e.do(t, http.MethodPost, "/api/cart/items", addItem)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, b)
	}
	resp, b = e.do(t, http.MethodPost, "/api/cart/items", addItem)

	var v struct {
		Items []cart.Line `json:"items"`
		Total float64     `json:"total"`
		Count int         `json:"itemCount"`
	}
	decode(t, b, &v)
	if len(v.Items) != 1 || v.Items[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", v.Items)
	}
	if v.Total != 1998 || v.Count != 2 {
		t.Fatalf("expected total 1998 and count 2, got %v and %d", v.Total, v.Count)
	}

	// Decrement below zero clamps at one.
	resp, b = e.do(t, http.MethodPut, "/api/cart/items/1", map[string]any{"delta": -5})
	decode(t, b, &v)
	if v.Items[0].Quantity != 1 || v.Total != 999 {
		t.Fatalf("expected clamped quantity 1 and total 999, got %+v", v)
	}

	resp, b = e.do(t, http.MethodPost, "/api/cart/checkout", map[string]any{"customerName": "Guest User"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, b)
	}

	var placed struct {
		ID      int64 `json:"id"`
		Success bool  `json:"success"`
	}
	decode(t, b, &placed)
	if placed.ID != 1 || !placed.Success {
		t.Fatalf("unexpected checkout response: %+v", placed)
	}

	// Success must have cleared the cart.
	_, b = e.do(t, http.MethodGet, "/api/cart", nil)
	decode(t, b, &v)
	if len(v.Items) != 0 || v.Total != 0 {
		t.Fatalf("expected empty cart after checkout, got %+v", v)
	}

	_, b = e.do(t, http.MethodGet, "/api/orders", nil)
	var orders []order.Order
	decode(t, b, &orders)
	if len(orders) != 1 || orders[0].Total != 999 {
		t.Fatalf("expected one order with total 999, got %+v", orders)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	e := newEnv(t)

	resp, _ := e.do(t, http.MethodPost, "/api/cart/checkout", map[string]any{"customerName": "Guest User"})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for empty cart, got %d", resp.StatusCode)
	}
}

func TestCartRemoveUnknownProduct(t *testing.T) {
	e := newEnv(t)

	e.do(t, http.MethodPost, "/api/cart/items", map[string]any{"productId": "2"})

	resp, b := e.do(t, http.MethodDelete, "/api/cart/items/999", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var v struct {
		Items []cart.Line `json:"items"`
	}
	decode(t, b, &v)
	if len(v.Items) != 1 {
		t.Fatalf("cart changed by removing an unknown product: %+v", v.Items)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	e := newEnv(t)

	resp, _ := e.do(t, http.MethodPost, "/api/cart/items", map[string]any{"productId": "999"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestAssistantFallback(t *testing.T) {
	e := newEnv(t)

	// The test client has no API key, so the widget must get the
	// apology reply rather than an error.
	resp, b := e.do(t, http.MethodPost, "/api/assistant", map[string]any{"message": "which phone?"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var a struct {
		Reply string `json:"reply"`
	}
	decode(t, b, &a)
	if a.Reply != assistant.Fallback {
		t.Fatalf("expected the fallback reply, got %q", a.Reply)
	}
}

func TestAssistantRequiresMessage(t *testing.T) {
	e := newEnv(t)

	resp, _ := e.do(t, http.MethodPost, "/api/assistant", map[string]any{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
