package compare

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"legalease-backend/internal/llm"
)

func setupCompareRouter(t *testing.T, client llm.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(&Service{LLM: client}).RegisterRoutes(r.Group("/api"))
	return r
}

func postCompare(t *testing.T, router *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/compare", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCompareEndpointSuccessReturnsBareObject(t *testing.T) {
	stub := &stubClient{response: comparisonJSON}
	router := setupCompareRouter(t, stub)

	resp := postCompare(t, router, map[string]string{
		"section":      "mv-185",
		"sectionLabel": "Section 185 - Drunk Driving",
		"state1":       "Maharashtra",
		"state2":       "Delhi",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.State1.State != "Maharashtra" {
		t.Fatalf("expected state1 Maharashtra, got %q", result.State1.State)
	}
	if result.Recommendation == "" {
		t.Fatalf("expected recommendation to be present")
	}
}

func TestCompareEndpointMissingFields(t *testing.T) {
	stub := &stubClient{response: comparisonJSON}
	router := setupCompareRouter(t, stub)

	resp := postCompare(t, router, map[string]string{"section": "mv-185", "state1": "Maharashtra"})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error != "Missing required fields" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
}

func TestCompareEndpointParseFailureReturns500(t *testing.T) {
	stub := &stubClient{response: "not json at all"}
	router := setupCompareRouter(t, stub)

	resp := postCompare(t, router, map[string]string{
		"section": "mv-185",
		"state1":  "Maharashtra",
		"state2":  "Delhi",
	})

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error != "Failed to compare states. Please try again." {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
}
