package reasoning

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/slotwise/putaway/internal/catalog"
	"github.com/slotwise/putaway/internal/config"
	"github.com/slotwise/putaway/internal/model"
)

func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("expected system + user messages, got %+v", req.Messages)
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testProviderItem() model.ItemSpec {
	return model.ItemSpec{
		ID: "P-1", ProductName: "Laptop", Category: "Electronics",
		WeightKg: 3, Hazard: model.HazardNone,
		Temperature: model.TempAmbient, Turnover: model.TurnoverHigh,
	}
}

func TestSelect_SuccessfulBackendCall(t *testing.T) {
	srv := chatServer(t, "ZONE: D\nCONFIDENCE: high\nREASONING: Fast pick suits the turnover.")
	backend := NewOllamaBackend(srv.URL, "test-model")
	p := NewProviderWithBackend(backend, catalog.Default(), nil)

	res := p.Select(context.Background(), testProviderItem(), []string{"A", "D", "E"})
	if !res.Success {
		t.Fatalf("select failed: %s", res.Err)
	}
	if res.Zone != "D" {
		t.Errorf("zone = %q, want D", res.Zone)
	}
	if res.Confidence != model.ConfidenceHigh {
		t.Errorf("confidence = %q, want high", res.Confidence)
	}
	if res.Backend != "ollama" {
		t.Errorf("backend = %q, want ollama", res.Backend)
	}
	if res.Latency <= 0 {
		t.Error("latency should be recorded")
	}
}

func TestSelect_HallucinatedZoneClamped(t *testing.T) {
	srv := chatServer(t, "ZONE: Q\nCONFIDENCE: high\nREASONING: Confidently wrong.")
	backend := NewOllamaBackend(srv.URL, "test-model")
	p := NewProviderWithBackend(backend, catalog.Default(), nil)

	res := p.Select(context.Background(), testProviderItem(), []string{"B", "E"})
	if !res.Success {
		t.Fatalf("select failed: %s", res.Err)
	}
	if res.Zone != "B" {
		t.Errorf("zone = %q, want clamp to B", res.Zone)
	}
}

func TestSelect_BackendStatusErrorIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	backend := NewOllamaBackend(srv.URL, "test-model")
	p := NewProviderWithBackend(backend, catalog.Default(), nil)

	res := p.Select(context.Background(), testProviderItem(), []string{"A"})
	if res.Success {
		t.Fatal("expected failure on backend error")
	}
	if !strings.Contains(res.Err, "status") || !strings.Contains(res.Err, "quota exceeded") {
		t.Errorf("error should surface the backend failure verbatim, got %q", res.Err)
	}
	if res.Zone != "" {
		t.Errorf("failed result must not carry a zone, got %q", res.Zone)
	}
}

func TestSelect_TransportErrorIsFatal(t *testing.T) {
	backend := NewOllamaBackend("http://127.0.0.1:1", "test-model")
	p := NewProviderWithBackend(backend, catalog.Default(), nil)

	res := p.Select(context.Background(), testProviderItem(), []string{"A"})
	if res.Success {
		t.Fatal("expected failure on transport error")
	}
	if !strings.Contains(res.Err, "transport") {
		t.Errorf("error should be a transport error, got %q", res.Err)
	}
}

func TestSelect_EmptyResponseIsDistinctError(t *testing.T) {
	srv := chatServer(t, "")
	backend := NewOllamaBackend(srv.URL, "test-model")
	p := NewProviderWithBackend(backend, catalog.Default(), nil)

	res := p.Select(context.Background(), testProviderItem(), []string{"A"})
	if res.Success {
		t.Fatal("expected failure on empty response")
	}
	if res.Err != ErrEmptyResponse.Error() {
		t.Errorf("error = %q, want %q", res.Err, ErrEmptyResponse.Error())
	}
}

func TestSelect_ShortResponseIsRejected(t *testing.T) {
	srv := chatServer(t, "ZONE: A")
	backend := NewOllamaBackend(srv.URL, "test-model")
	p := NewProviderWithBackend(backend, catalog.Default(), nil)

	res := p.Select(context.Background(), testProviderItem(), []string{"A"})
	if res.Success {
		t.Fatal("expected failure on sub-minimum response")
	}
}

func TestSelect_NoCredentialDelegatesToFallback(t *testing.T) {
	cfg := config.Config{Backend: config.BackendOpenRouter} // no APIKey
	p := NewProvider(cfg, catalog.Default(), nil)

	res := p.Select(context.Background(), testProviderItem(), []string{"A", "D"})
	if !res.Success {
		t.Fatalf("fallback delegation must succeed, got %s", res.Err)
	}
	if res.Backend != FallbackName {
		t.Errorf("backend = %q, want %q", res.Backend, FallbackName)
	}
	if res.Zone != "D" {
		t.Errorf("zone = %q, want D (high turnover, light item)", res.Zone)
	}
}

func TestSelect_EmptyEligibleSetFails(t *testing.T) {
	p := NewProviderWithBackend(nil, catalog.Default(), nil)
	res := p.Select(context.Background(), testProviderItem(), nil)
	if res.Success {
		t.Fatal("expected failure on empty eligible set")
	}
	if res.Err != ErrNoEligibleZones.Error() {
		t.Errorf("error = %q, want %q", res.Err, ErrNoEligibleZones.Error())
	}
}

func TestBuildPrompt_SingleZoneJustificationVariant(t *testing.T) {
	cat := catalog.Default()
	item := testProviderItem()
	prompt := buildPrompt(item, []string{"C"}, cat)

	if !strings.Contains(prompt, "MANDATORY") {
		t.Error("single-zone variant should state the assignment is mandatory")
	}
	if !strings.Contains(prompt, "ZONE: C") {
		t.Error("single-zone variant should pin the zone token")
	}
	if !strings.Contains(prompt, "CONFIDENCE: high") {
		t.Error("single-zone variant should pin confidence to high")
	}
	if strings.Contains(prompt, "DECISION CRITERIA") {
		t.Error("single-zone variant should not ask the model to choose")
	}
}

func TestBuildPrompt_MultiZoneSelectionVariant(t *testing.T) {
	cat := catalog.Default()
	item := testProviderItem()
	prompt := buildPrompt(item, []string{"A", "D", "E"}, cat)

	if !strings.Contains(prompt, "DECISION CRITERIA") {
		t.Error("multi-zone variant should list the decision criteria")
	}
	if !strings.Contains(prompt, "A, D, E") {
		t.Error("multi-zone variant should enumerate the eligible letters")
	}
	for _, want := range []string{"General Storage", "Fast-Pick Zone", "Bulk & Heavy"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing zone description %q", want)
		}
	}
	if strings.Contains(prompt, "Cold Storage") {
		t.Error("prompt must exclude ineligible zones")
	}
}
