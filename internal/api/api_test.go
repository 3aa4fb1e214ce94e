// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package api

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/mlindqvist/gustus/internal/catalog"
	"github.com/mlindqvist/gustus/internal/report"
	"github.com/mlindqvist/gustus/internal/scoring"
	"github.com/mlindqvist/gustus/internal/selection"
	"github.com/mlindqvist/gustus/internal/store"
)

// testEnvelope mirrors APIResponse with raw data for per-test decoding.
type testEnvelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  *APIError       `json:"error,omitempty"`
}

type fixture struct {
	router  http.Handler
	library *catalog.Library
}

// testQuad builds a quad with full attributes and style-coded images.
func testQuad(id string, c catalog.Category, warmth [4]float64) catalog.Quad {
	var images [catalog.QuadImages]string
	for pos := range images {
		images[pos] = fmt.Sprintf("images/%s-01_%d_AS5_VD3_MP7.jpg", c.Code(), pos)
	}
	return catalog.Quad{
		ID:       id,
		Category: c,
		Images:   images,
		Attributes: &catalog.AttributeSet{
			Warmth:    warmth,
			Formality: [4]float64{5, 5, 5, 5},
			Drama:     [4]float64{5, 5, 5, 5},
			Tradition: [4]float64{5, 5, 5, 5},
		},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	lib, err := catalog.NewLibrary([]catalog.Quad{
		testQuad("liv-01", catalog.CategoryLivingRoom, [4]float64{2, 5, 6, 9}),
		testQuad("bed-01", catalog.CategoryBedroom, [4]float64{1, 4, 7, 10}),
	})
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}

	cfg := store.DefaultConfig()
	cfg.InMemory = true
	cfg.Path = ""
	db, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	sessions := store.NewSessionStore(db)
	selections := store.NewSelectionStore(db)
	profiles := store.NewProfileStore(db)

	recorder := selection.NewRecorder(lib, selections, sessions)
	aggregator, err := scoring.NewAggregator(lib, scoring.DefaultConfig())
	if err != nil {
		t.Fatalf("NewAggregator: %v", err)
	}
	scoringSvc := scoring.NewService(lib, aggregator, selections, sessions, profiles)
	deriver := report.NewDeriver(lib)

	handler := NewHandler(lib, recorder, scoringSvc, deriver, sessions, nil)

	mwCfg := DefaultMiddlewareConfig()
	mwCfg.RateLimitDisabled = true
	router := NewRouter(handler, NewMiddleware(mwCfg)).Setup()

	return &fixture{router: router, library: lib}
}

// do executes a request against the router and decodes the envelope.
func (f *fixture) do(t *testing.T, method, path string, body interface{}) (int, *testEnvelope) {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	env := &testEnvelope{}
	if err := json.Unmarshal(rec.Body.Bytes(), env); err != nil {
		t.Fatalf("%s %s: decode envelope from %q: %v", method, path, rec.Body.String(), err)
	}
	return rec.Code, env
}

// createSession creates a session and returns its ID.
func (f *fixture) createSession(t *testing.T) string {
	t.Helper()

	code, env := f.do(t, http.MethodPost, "/api/v1/sessions", nil)
	if code != http.StatusCreated {
		t.Fatalf("create session: status %d", code)
	}
	var sess struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("session ID missing")
	}
	return sess.ID
}

func selectionBody(f1, f2, lf int) map[string]interface{} {
	return map[string]interface{}{
		"favorite1":      f1,
		"favorite2":      f2,
		"least_favorite": lf,
	}
}

func TestSessionLifecycle(t *testing.T) {
	f := newFixture(t)
	id := f.createSession(t)

	code, env := f.do(t, http.MethodGet, "/api/v1/sessions/"+id, nil)
	if code != http.StatusOK {
		t.Fatalf("get session: status %d", code)
	}
	var sess struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &sess); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sess.Status != "in_progress" {
		t.Errorf("Status = %q, want in_progress", sess.Status)
	}

	code, _ = f.do(t, http.MethodGet, "/api/v1/sessions/no-such-session", nil)
	if code != http.StatusNotFound {
		t.Errorf("unknown session: status %d, want 404", code)
	}
}

func TestUpsertSelectionAndResume(t *testing.T) {
	f := newFixture(t)
	id := f.createSession(t)
	base := "/api/v1/sessions/" + id

	// Fresh session resumes at index 0.
	code, env := f.do(t, http.MethodGet, base+"/resume", nil)
	if code != http.StatusOK {
		t.Fatalf("resume: status %d", code)
	}
	var resume resumeResponse
	if err := json.Unmarshal(env.Data, &resume); err != nil {
		t.Fatalf("decode resume: %v", err)
	}
	if resume.ResumeIndex != 0 || resume.TotalQuads != 2 || resume.Complete {
		t.Errorf("resume = %+v, want index 0 of 2, incomplete", resume)
	}

	// Answer the first quad.
	code, _ = f.do(t, http.MethodPut, base+"/selections/liv-01", selectionBody(3, 1, 0))
	if code != http.StatusOK {
		t.Fatalf("upsert: status %d", code)
	}

	code, env = f.do(t, http.MethodGet, base+"/resume", nil)
	if code != http.StatusOK {
		t.Fatalf("resume after answer: status %d", code)
	}
	if err := json.Unmarshal(env.Data, &resume); err != nil {
		t.Fatalf("decode resume: %v", err)
	}
	if resume.ResumeIndex != 1 {
		t.Errorf("ResumeIndex = %d, want 1", resume.ResumeIndex)
	}

	// Skip the second quad; indices in the body must be discarded.
	code, env = f.do(t, http.MethodPut, base+"/selections/bed-01", map[string]interface{}{
		"skipped":   true,
		"favorite1": 2,
	})
	if code != http.StatusOK {
		t.Fatalf("skip: status %d", code)
	}
	var sel selection.Selection
	if err := json.Unmarshal(env.Data, &sel); err != nil {
		t.Fatalf("decode selection: %v", err)
	}
	if !sel.Skipped || sel.Favorite1 != nil {
		t.Errorf("skip should discard indices, got %+v", sel)
	}

	code, env = f.do(t, http.MethodGet, base+"/resume", nil)
	if code != http.StatusOK {
		t.Fatalf("resume after skip: status %d", code)
	}
	if err := json.Unmarshal(env.Data, &resume); err != nil {
		t.Fatalf("decode resume: %v", err)
	}
	if !resume.Complete || resume.ResumeIndex != 2 {
		t.Errorf("resume = %+v, want complete at index 2", resume)
	}
}

func TestUpsertSelectionRejections(t *testing.T) {
	f := newFixture(t)
	id := f.createSession(t)
	base := "/api/v1/sessions/" + id

	tests := []struct {
		name     string
		quadID   string
		body     interface{}
		wantCode int
		wantErr  string
	}{
		{"unknown quad", "nope-01", selectionBody(0, 1, 2), http.StatusNotFound, CodeNotFound},
		{"index out of range", "liv-01", selectionBody(0, 1, 4), http.StatusBadRequest, CodeValidationError},
		{"negative index", "liv-01", selectionBody(-1, 1, 2), http.StatusBadRequest, CodeValidationError},
		{"duplicate indices", "liv-01", selectionBody(1, 1, 2), http.StatusBadRequest, CodeValidationError},
		{"unknown field", "liv-01", map[string]interface{}{"favourite": 1}, http.StatusBadRequest, CodeValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := f.do(t, http.MethodPut, base+"/selections/"+tt.quadID, tt.body)
			if code != tt.wantCode {
				t.Errorf("status = %d, want %d", code, tt.wantCode)
			}
			if env.Error == nil || env.Error.Code != tt.wantErr {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantErr)
			}
		})
	}
}

func TestCompleteSessionFlow(t *testing.T) {
	f := newFixture(t)
	id := f.createSession(t)
	base := "/api/v1/sessions/" + id

	// Premature completion is rejected.
	code, env := f.do(t, http.MethodPost, base+"/complete", nil)
	if code != http.StatusConflict {
		t.Fatalf("premature complete: status %d, want 409", code)
	}
	if env.Error == nil || env.Error.Code != CodeSessionIncomplete {
		t.Errorf("error = %+v, want %s", env.Error, CodeSessionIncomplete)
	}

	// No profile yet.
	code, _ = f.do(t, http.MethodGet, base+"/profile", nil)
	if code != http.StatusNotFound {
		t.Errorf("profile before completion: status %d, want 404", code)
	}

	// Resolve both quads and complete.
	if code, _ := f.do(t, http.MethodPut, base+"/selections/liv-01", selectionBody(3, 1, 0)); code != http.StatusOK {
		t.Fatalf("answer liv-01: status %d", code)
	}
	if code, _ := f.do(t, http.MethodPut, base+"/selections/bed-01", map[string]interface{}{"skipped": true}); code != http.StatusOK {
		t.Fatalf("skip bed-01: status %d", code)
	}

	code, env = f.do(t, http.MethodPost, base+"/complete", nil)
	if code != http.StatusOK {
		t.Fatalf("complete: status %d, body error %+v", code, env.Error)
	}
	var profile scoring.Profile
	if err := json.Unmarshal(env.Data, &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile.CompletedQuads != 1 || profile.SkippedQuads != 1 || profile.TotalQuads != 2 {
		t.Errorf("profile counts = %d/%d/%d, want 1/1/2",
			profile.CompletedQuads, profile.SkippedQuads, profile.TotalQuads)
	}
	if profile.TopMaterials == nil {
		t.Error("TopMaterials must serialize as an empty list, not null")
	}

	// Completion is idempotent.
	code, env = f.do(t, http.MethodPost, base+"/complete", nil)
	if code != http.StatusOK {
		t.Fatalf("repeat complete: status %d", code)
	}
	var second scoring.Profile
	if err := json.Unmarshal(env.Data, &second); err != nil {
		t.Fatalf("decode repeat profile: %v", err)
	}
	if second.Scores != profile.Scores {
		t.Errorf("repeat completion scores differ: %+v vs %+v", second.Scores, profile.Scores)
	}

	// Writes against the completed session are frozen.
	code, env = f.do(t, http.MethodPut, base+"/selections/liv-01", selectionBody(0, 1, 2))
	if code != http.StatusConflict {
		t.Errorf("write after complete: status %d, want 409", code)
	}
	if env.Error == nil || env.Error.Code != CodeSessionComplete {
		t.Errorf("error = %+v, want %s", env.Error, CodeSessionComplete)
	}

	// The profile endpoint serves the persisted copy.
	code, env = f.do(t, http.MethodGet, base+"/profile", nil)
	if code != http.StatusOK {
		t.Fatalf("get profile: status %d", code)
	}
	var persisted scoring.Profile
	if err := json.Unmarshal(env.Data, &persisted); err != nil {
		t.Fatalf("decode persisted profile: %v", err)
	}
	if persisted.Scores != profile.Scores {
		t.Errorf("persisted scores differ from completion response")
	}
}

func TestReportEndpoints(t *testing.T) {
	f := newFixture(t)
	id := f.createSession(t)
	base := "/api/v1/sessions/" + id

	if code, _ := f.do(t, http.MethodPut, base+"/selections/liv-01", selectionBody(0, 1, 2)); code != http.StatusOK {
		t.Fatalf("answer liv-01: status %d", code)
	}

	code, env := f.do(t, http.MethodGet, base+"/report/categories", nil)
	if code != http.StatusOK {
		t.Fatalf("report categories: status %d", code)
	}
	var rows []report.CategoryMetrics
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatalf("decode rows: %v", err)
	}
	if len(rows) != catalog.NumCategories {
		t.Errorf("rows = %d, want %d", len(rows), catalog.NumCategories)
	}

	code, env = f.do(t, http.MethodGet, base+"/report/overall", nil)
	if code != http.StatusOK {
		t.Fatalf("report overall: status %d", code)
	}
	var overall report.OverallMetrics
	if err := json.Unmarshal(env.Data, &overall); err != nil {
		t.Fatalf("decode overall: %v", err)
	}
	// The single answered category carries AS5 -> era 3.0, transitional.
	if overall.StyleLabel != report.StyleTransitional {
		t.Errorf("StyleLabel = %q, want %q", overall.StyleLabel, report.StyleTransitional)
	}

	code, _ = f.do(t, http.MethodGet, "/api/v1/sessions/no-such/report/overall", nil)
	if code != http.StatusNotFound {
		t.Errorf("report for unknown session: status %d, want 404", code)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	f := newFixture(t)

	code, env := f.do(t, http.MethodGet, "/api/v1/quads", nil)
	if code != http.StatusOK {
		t.Fatalf("list quads: status %d", code)
	}
	var quads []quadView
	if err := json.Unmarshal(env.Data, &quads); err != nil {
		t.Fatalf("decode quads: %v", err)
	}
	if len(quads) != 2 {
		t.Errorf("quads = %d, want 2", len(quads))
	}

	code, env = f.do(t, http.MethodGet, "/api/v1/quads?category=bedroom", nil)
	if code != http.StatusOK {
		t.Fatalf("filter quads: status %d", code)
	}
	if err := json.Unmarshal(env.Data, &quads); err != nil {
		t.Fatalf("decode filtered quads: %v", err)
	}
	if len(quads) != 1 || quads[0].ID != "bed-01" {
		t.Errorf("filtered quads = %+v, want only bed-01", quads)
	}

	code, _ = f.do(t, http.MethodGet, "/api/v1/quads?category=garage", nil)
	if code != http.StatusBadRequest {
		t.Errorf("unknown category: status %d, want 400", code)
	}

	code, _ = f.do(t, http.MethodGet, "/api/v1/quads/liv-01", nil)
	if code != http.StatusOK {
		t.Errorf("get quad: status %d", code)
	}
	code, _ = f.do(t, http.MethodGet, "/api/v1/quads/nope-01", nil)
	if code != http.StatusNotFound {
		t.Errorf("unknown quad: status %d, want 404", code)
	}

	code, env = f.do(t, http.MethodGet, "/api/v1/categories", nil)
	if code != http.StatusOK {
		t.Fatalf("categories: status %d", code)
	}
	var categories []struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}
	if err := json.Unmarshal(env.Data, &categories); err != nil {
		t.Fatalf("decode categories: %v", err)
	}
	if len(categories) != catalog.NumCategories {
		t.Errorf("categories = %d, want %d", len(categories), catalog.NumCategories)
	}
}

func TestHealthEndpoints(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/api/v1/health", "/api/v1/health/live", "/api/v1/health/ready"} {
		code, env := f.do(t, http.MethodGet, path, nil)
		if code != http.StatusOK {
			t.Errorf("%s: status %d", path, code)
		}
		if env.Status != "success" {
			t.Errorf("%s: envelope status %q", path, env.Status)
		}
	}
}

func TestRequestIDHeader(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}

	// A supplied request ID is echoed back.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "test-id-123" {
		t.Errorf("X-Request-ID = %q, want echo of supplied ID", got)
	}
}

func TestMalformedBody(t *testing.T) {
	f := newFixture(t)
	id := f.createSession(t)

	req := httptest.NewRequest(http.MethodPut,
		"/api/v1/sessions/"+id+"/selections/liv-01",
		bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
