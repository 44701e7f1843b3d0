package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	v1 "github.com/kenlhlui/go-archiveit/api/v1"
)

const (
	testUsername = "partner"
	testPassword = "secret"
)

// fakePartner is an in-memory rendition of the partner API: auth,
// seed listing, seed creation and seed patching, with knobs to force
// the malformed responses the client has to survive.
type fakePartner struct {
	t *testing.T

	mu       sync.Mutex
	requests []string
	forms    []url.Values
	patches  []map[string]any

	authStatus int
	authBody   any

	listings map[int]any

	createBody any
	nextID     int

	patchStatus int

	seeds map[int]map[string]any
}

func newFakePartner(t *testing.T) *fakePartner {
	return &fakePartner{
		t:        t,
		listings: make(map[int]any),
		seeds:    make(map[int]map[string]any),
		nextID:   9001,
	}
}

func (f *fakePartner) server() *httptest.Server {
	r := chi.NewRouter()

	r.Use(f.record)

	r.Get("/api/auth", f.handleAuth)
	r.Get("/api/seed", f.handleList)
	r.Post("/api/seed", f.handleCreate)
	r.Patch("/api/seed/{seedID}", f.handlePatch)

	ts := httptest.NewServer(r)
	f.t.Cleanup(ts.Close)

	return ts
}

func (f *fakePartner) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := r.Method + " " + r.URL.Path
		if r.URL.RawQuery != "" {
			req += "?" + r.URL.RawQuery
		}

		f.mu.Lock()
		f.requests = append(f.requests, req)
		f.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (f *fakePartner) handleAuth(w http.ResponseWriter, r *http.Request) {
	if f.authStatus != 0 {
		writeJSON(w, f.authStatus, map[string]any{"detail": "forced by test"})
		return
	}

	user, pass, ok := r.BasicAuth()
	if !ok || user != testUsername || pass != testPassword {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "Invalid username/password."})
		return
	}

	body := f.authBody
	if body == nil {
		body = map[string]any{"id": 81, "username": testUsername}
	}

	writeJSON(w, http.StatusOK, body)
}

func (f *fakePartner) handleList(w http.ResponseWriter, r *http.Request) {
	collection, err := strconv.Atoi(r.URL.Query().Get("collection"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "collection is required"})
		return
	}

	body, ok := f.listings[collection]
	if !ok {
		body = []any{}
	}

	writeJSON(w, http.StatusOK, body)
}

func (f *fakePartner) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": err.Error()})
		return
	}

	f.mu.Lock()
	f.forms = append(f.forms, r.PostForm)
	f.mu.Unlock()

	if f.createBody != nil {
		writeJSON(w, http.StatusCreated, f.createBody)
		return
	}

	collection, _ := strconv.Atoi(r.PostForm.Get("collection"))
	crawlDefinition, _ := strconv.Atoi(r.PostForm.Get("crawl_definition"))

	f.mu.Lock()
	id := f.nextID
	f.nextID++

	seed := wireSeed(id, collection, r.PostForm.Get("url"))
	seed["crawl_definition"] = crawlDefinition
	f.seeds[id] = seed
	f.mu.Unlock()

	writeJSON(w, http.StatusCreated, seed)
}

func (f *fakePartner) handlePatch(w http.ResponseWriter, r *http.Request) {
	if f.patchStatus != 0 {
		writeJSON(w, f.patchStatus, map[string]any{"detail": "forced by test"})
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "seedID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "bad seed id"})
		return
	}

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	patch := map[string]any{}
	if err := dec.Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": err.Error()})
		return
	}

	f.mu.Lock()
	f.patches = append(f.patches, patch)

	seed, ok := f.seeds[id]
	if !ok {
		f.mu.Unlock()
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "seed not found"})
		return
	}

	if md, ok := patch["metadata"]; ok {
		seed["metadata"] = md
	}
	if del, ok := patch["deleted"]; ok {
		seed["deleted"] = del
	}
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, seed)
}

func (f *fakePartner) addListing(collection int, body any) {
	f.listings[collection] = body
}

func (f *fakePartner) addSeed(seed map[string]any) {
	id := seed["id"].(int)
	f.seeds[id] = seed
}

func (f *fakePartner) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.requests...)
}

func (f *fakePartner) lastPatch() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.patches) == 0 {
		return nil
	}

	return f.patches[len(f.patches)-1]
}

func (f *fakePartner) lastForm() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.forms) == 0 {
		return nil
	}

	return f.forms[len(f.forms)-1]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

// wireSeed is a full seed body the way the service sends one.
func wireSeed(id, collection int, seedURL string) map[string]any {
	return map[string]any{
		"id":                 id,
		"url":                seedURL,
		"canonical_url":      seedURL,
		"collection":         collection,
		"crawl_definition":   31104307283,
		"active":             true,
		"deleted":            false,
		"last_updated_date":  "2023-05-02T20:16:59.059012Z",
		"created_by":         testUsername,
		"created_date":       "2023-05-02T20:16:59.059043Z",
		"last_updated_by":    testUsername,
		"publicly_visible":   true,
		"valid":              nil,
		"http_response_code": nil,
		"seed_type":          "normal",
		"login_username":     nil,
		"login_password":     nil,
		"metadata":           map[string]any{},
		"seed_groups":        []any{},
	}
}

func newTestClient(t *testing.T, f *fakePartner) v1.V1 {
	t.Helper()

	ts := f.server()

	c, err := NewWithOpts(context.Background(),
		WithBaseURL(ts.URL+"/api/"),
		WithBasicAuth(testUsername, testPassword),
	)
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { c.Close() })

	return c
}
