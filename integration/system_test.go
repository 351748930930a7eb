//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"testing"
	"time"
)

var baseURL = getenv("E2E_BASE_URL", "http://127.0.0.1:3000")

type orderResp struct {
	ID       string   `json:"id"`
	Customer string   `json:"customer"`
	Items    []string `json:"items"`
	Status   string   `json:"status"`
}

type errorResp struct {
	Message string              `json:"message"`
	Details map[string][]string `json:"details"`
}

func TestSystem_E2E_OrderLifecycle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	customer := fmt.Sprintf("customer_%d_%d", time.Now().Unix(), rand.Intn(100000))

	var created orderResp
	doJSON(t, http.MethodPost, baseURL+"/orders", map[string]any{
		"customer": customer,
		"items":    []string{"A", "B"},
	}, &created, 200)
	if created.ID == "" || created.Status != "pending" {
		t.Fatalf("unexpected order: %#v", created)
	}

	var listed []orderResp
	doJSON(t, http.MethodGet, baseURL+"/orders", nil, &listed, 200)
	if !containsID(listed, created.ID) {
		t.Fatalf("created order %s missing from list", created.ID)
	}

	var verr errorResp
	doJSON(t, http.MethodPut, baseURL+"/orders/"+created.ID+"/status", map[string]any{
		"status": "queued",
	}, &verr, 400)
	if len(verr.Details["status"]) != 1 || verr.Details["status"][0] != "invalid status" {
		t.Fatalf("unexpected validation body: %#v", verr)
	}

	var updated orderResp
	doJSON(t, http.MethodPut, baseURL+"/orders/"+created.ID+"/status", map[string]any{
		"status": "delivered",
	}, &updated, 200)
	if updated.Status != "delivered" {
		t.Fatalf("status=%s", updated.Status)
	}

	doJSON(t, http.MethodDelete, baseURL+"/orders/"+created.ID, nil, nil, 200)
	doJSON(t, http.MethodGet, baseURL+"/orders/"+created.ID, nil, nil, 404)
}

func containsID(orders []orderResp, id string) bool {
	for _, o := range orders {
		if o.ID == id {
			return true
		}
	}
	return false
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil && resp != nil && resp.StatusCode == 200 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

func doJSON(t *testing.T, method, url string, body any, out any, want int) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		t.Fatalf("%s %s: status=%d want=%d", method, url, resp.StatusCode, want)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
