package chat

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"legalease-backend/internal/llm"
)

func setupChatRouter(t *testing.T, client llm.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(&Service{LLM: client}).RegisterRoutes(r.Group("/api"))
	return r
}

func postChat(t *testing.T, router *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestChatEndpointSuccess(t *testing.T) {
	stub := &stubClient{response: "Pay within 60 days or contest online."}
	router := setupChatRouter(t, stub)

	resp := postChat(t, router, map[string]any{
		"messages": []map[string]string{
			{"role": "user", "content": "What is the deadline?"},
		},
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Response != "Pay within 60 days or contest online." {
		t.Fatalf("unexpected response: %q", body.Response)
	}
}

func TestChatEndpointEmptyMessages(t *testing.T) {
	stub := &stubClient{response: "hello"}
	router := setupChatRouter(t, stub)

	resp := postChat(t, router, map[string]any{"messages": []map[string]string{}})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error != "Messages array is required" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
	if stub.chatCalls != 0 {
		t.Fatalf("expected no provider call for empty messages, got %d", stub.chatCalls)
	}
}

func TestChatEndpointProviderFailureStillOK(t *testing.T) {
	stub := &stubClient{err: errors.New("unavailable")}
	router := setupChatRouter(t, stub)

	resp := postChat(t, router, map[string]any{
		"messages": []map[string]string{
			{"role": "user", "content": "Help me understand this notice."},
		},
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 with apology, got %d", resp.Code)
	}
	var body struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Response != apology {
		t.Fatalf("expected apology, got %q", body.Response)
	}
}
