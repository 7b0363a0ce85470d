package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stableset/pkg/archive"
	"github.com/matzehuels/stableset/pkg/pipeline"
)

func newTestServer(t *testing.T) (*Server, *archive.MemoryStore) {
	t.Helper()
	store := archive.NewMemoryStore()
	runner := pipeline.NewRunner(nil, nil, log.NewWithOptions(io.Discard, log.Options{}))
	srv := New(runner, store, log.NewWithOptions(io.Discard, log.Options{}))
	return srv, store
}

func postAnalysis(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/analyses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /healthz = %d, want 200", w.Code)
	}
}

func TestCreateAnalysis(t *testing.T) {
	srv, _ := newTestServer(t)

	w := postAnalysis(t, srv, `{"ballots": [["A","B","C"],["A","B","C"],["B","A","C"]]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/analyses = %d, body %s", w.Code, w.Body.String())
	}

	var rec archive.Record
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if rec.ID == "" {
		t.Error("response missing record ID")
	}
	if rec.Analysis.Winner != "A" {
		t.Errorf("Winner = %q, want A", rec.Analysis.Winner)
	}
	if len(rec.Analysis.Sets) == 0 {
		t.Error("response missing stability sets")
	}
}

func TestCreateAnalysisThenGet(t *testing.T) {
	srv, _ := newTestServer(t)

	w := postAnalysis(t, srv, `{"ballots": [["A","B"],["A","B"]]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST = %d", w.Code)
	}
	var created archive.Record
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/analyses/"+created.ID, nil)
	got := httptest.NewRecorder()
	srv.ServeHTTP(got, req)

	if got.Code != http.StatusOK {
		t.Fatalf("GET /api/analyses/{id} = %d, body %s", got.Code, got.Body.String())
	}
	var fetched archive.Record
	if err := json.Unmarshal(got.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if fetched.ID != created.ID || fetched.Analysis.Winner != created.Analysis.Winner {
		t.Errorf("fetched record does not match created one")
	}
}

func TestGetAnalysisNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/analyses/0d1f3b1c-1b9a-4b8e-9f3a-6c2d8e4f0a12", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("GET missing analysis = %d, want 404", w.Code)
	}

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Error.Code != "ANALYSIS_NOT_FOUND" {
		t.Errorf("error code = %q, want ANALYSIS_NOT_FOUND", resp.Error.Code)
	}
}

func TestGetAnalysisMalformedID(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/analyses/not-a-uuid", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("GET malformed id = %d, want 404", w.Code)
	}
}

func TestCreateAnalysisInvalidBody(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"malformed json", `{"ballots": [`, "INVALID_FORMAT"},
		{"empty profile", `{"ballots": []}`, "INVALID_PROFILE"},
		{"duplicate candidate", `{"ballots": [["A","A"]]}`, "INVALID_PROFILE"},
		{"empty candidate", `{"ballots": [["A",""]]}`, "INVALID_BALLOT"},
		{"control char candidate", `{"ballots": [["A","B\u0001"]]}`, "INVALID_BALLOT"},
		{"unknown rule", `{"ballots": [["A","B"]], "options": {"rules": ["Borda"]}}`, "INVALID_RULE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postAnalysis(t, srv, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}
			var resp struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if resp.Error.Code != tt.code {
				t.Errorf("error code = %q, want %q", resp.Error.Code, tt.code)
			}
		})
	}
}

func TestCreateAnalysisTooManyCandidates(t *testing.T) {
	srv, _ := newTestServer(t)

	ballot := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		ballot = append(ballot, fmt.Sprintf("c%d", i))
	}
	body, _ := json.Marshal(map[string]any{"ballots": [][]string{ballot}})

	w := postAnalysis(t, srv, string(body))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListAnalyses(t *testing.T) {
	srv, _ := newTestServer(t)

	for i := 0; i < 3; i++ {
		if w := postAnalysis(t, srv, fmt.Sprintf(`{"ballots": [["A","B","x%d"]]}`, i)); w.Code != http.StatusCreated {
			t.Fatalf("POST %d = %d", i, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/analyses?limit=2", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/analyses = %d", w.Code)
	}
	var recs []archive.Record
	if err := json.Unmarshal(w.Body.Bytes(), &recs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("list returned %d records, want 2", len(recs))
	}
}

func TestListAnalysesInvalidLimit(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/analyses?limit=zero", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("GET with bad limit = %d, want 400", w.Code)
	}
}
