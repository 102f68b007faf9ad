package savedadvice

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"advisor-backend/internal/ideas"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(&Service{Repo: ideas.NewMemoryRepo()})
	handler.RegisterRoutes(router.Group("/api"))
	return router
}

func postSavedAdvice(t *testing.T, router *gin.Engine, question, advice string) SavedAdvice {
	t.Helper()
	body := fmt.Sprintf(`{"question":%q,"advice":%q}`, question, advice)
	req := httptest.NewRequest(http.MethodPost, "/api/saved-advice", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created SavedAdvice
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return created
}

func TestSavedAdviceLifecycle(t *testing.T) {
	router := newTestRouter()

	created := postSavedAdvice(t, router, "How do I focus better?", "1. Take breaks\n2. Silence notifications")
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if created.CreatedAt == "" {
		t.Fatalf("expected created_at in response")
	}

	// Fetch it back.
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/saved-advice/%d", created.ID), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var fetched SavedAdvice
	if err := json.NewDecoder(resp.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched.Question != created.Question || fetched.Advice != created.Advice {
		t.Fatalf("fetched record mismatch: %+v vs %+v", fetched, created)
	}

	// Delete it.
	reqDel := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/saved-advice/%d", created.ID), nil)
	respDel := httptest.NewRecorder()
	router.ServeHTTP(respDel, reqDel)
	if respDel.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", respDel.Code)
	}
	var confirmation DeleteResponse
	if err := json.NewDecoder(respDel.Body).Decode(&confirmation); err != nil {
		t.Fatalf("decode delete response: %v", err)
	}
	if confirmation.ID != created.ID {
		t.Fatalf("expected deleted id %d, got %d", created.ID, confirmation.ID)
	}

	// Subsequent fetch is a 404.
	reqGone := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/saved-advice/%d", created.ID), nil)
	respGone := httptest.NewRecorder()
	router.ServeHTTP(respGone, reqGone)
	if respGone.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", respGone.Code)
	}
}

func TestSavedAdviceListReturnsAllCreated(t *testing.T) {
	router := newTestRouter()

	for i := 0; i < 3; i++ {
		postSavedAdvice(t, router, fmt.Sprintf("question %d", i), fmt.Sprintf("advice %d", i))
	}

	req := httptest.NewRequest(http.MethodGet, "/api/saved-advice", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var all []SavedAdvice
	if err := json.NewDecoder(resp.Body).Decode(&all); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
}

func TestSavedAdviceMissingIDReturns404(t *testing.T) {
	router := newTestRouter()

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/saved-advice/9999", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", method, resp.Code)
		}
	}
}

func TestSavedAdviceRejectsInvalidInput(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "missing advice", method: http.MethodPost, path: "/api/saved-advice", body: `{"question":"q"}`},
		{name: "missing question", method: http.MethodPost, path: "/api/saved-advice", body: `{"advice":"a"}`},
		{name: "malformed json", method: http.MethodPost, path: "/api/saved-advice", body: `{"question"`},
		{name: "non-numeric id get", method: http.MethodGet, path: "/api/saved-advice/abc"},
		{name: "non-numeric id delete", method: http.MethodDelete, path: "/api/saved-advice/abc"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.Code)
			}
		})
	}
}
