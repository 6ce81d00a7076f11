package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pedigree-organizer/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	// Forzar modo in-memory aunque el entorno tenga DATABASE_URL.
	t.Setenv("DATABASE_URL", "")

	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(ts.Close)
	return ts
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, raw
}

func createDog(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/dogs", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating dog, got %d body=%s", st, string(body))
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if out.ID == "" {
		t.Fatal("expected non-empty id")
	}
	return out.ID
}

type pedigreeNode struct {
	ID   string        `json:"id"`
	Name string        `json:"name"`
	Sire *pedigreeNode `json:"sire"`
	Dam  *pedigreeNode `json:"dam"`
}

func TestHTTP_EndToEnd_Pedigree(t *testing.T) {
	ts := newTestServer(t)

	// 1) Sire, dam y cachorro referenciando a ambos
	sireID := createDog(t, ts.URL, map[string]any{"name": "Sire A"})
	damID := createDog(t, ts.URL, map[string]any{"name": "Dam A"})
	pupID := createDog(t, ts.URL, map[string]any{
		"name":    "Pup A",
		"sire_id": sireID,
		"dam_id":  damID,
	})

	// 2) Pedigree a profundidad 1: padres resueltos, abuelos null
	st, body := doReq(t, ts.URL, "GET", "/pedigree/"+pupID+"?depth=1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 pedigree, got %d body=%s", st, string(body))
	}

	var tree pedigreeNode
	if err := json.Unmarshal(body, &tree); err != nil {
		t.Fatalf("decode pedigree: %v", err)
	}
	if tree.Name != "Pup A" {
		t.Fatalf("expected root Pup A, got %q", tree.Name)
	}
	if tree.Sire == nil || tree.Sire.Name != "Sire A" {
		t.Fatalf("expected resolved sire branch, got %+v", tree.Sire)
	}
	if tree.Dam == nil || tree.Dam.Name != "Dam A" {
		t.Fatalf("expected resolved dam branch, got %+v", tree.Dam)
	}
	if tree.Sire.Sire != nil || tree.Sire.Dam != nil {
		t.Fatal("expected null branches past depth 1")
	}

	// 3) El perfil individual sigue andando y expone la forma pública
	st, body = doReq(t, ts.URL, "GET", "/dogs/"+pupID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get dog, got %d", st)
	}
	var pub map[string]any
	if err := json.Unmarshal(body, &pub); err != nil {
		t.Fatalf("decode dog: %v", err)
	}
	if pub["id"] != pupID {
		t.Fatalf("expected public id %s, got %v", pupID, pub["id"])
	}
	if _, ok := pub["tags"]; !ok {
		t.Fatal("expected tags always present in public form")
	}
}

func TestHTTP_Validation(t *testing.T) {
	ts := newTestServer(t)

	// Sin name: 422 con detalle por campo
	st, body := doReq(t, ts.URL, "POST", "/dogs", map[string]any{"color": "brindle"})
	if st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 without name, got %d body=%s", st, string(body))
	}
	var verr struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(body, &verr); err != nil {
		t.Fatalf("decode validation response: %v", err)
	}
	if _, ok := verr.Fields["name"]; !ok {
		t.Fatalf("expected name in field errors, got %v", verr.Fields)
	}
}

func TestHTTP_LookupErrors(t *testing.T) {
	ts := newTestServer(t)

	// Id malformado: 400
	if st, _ := doReq(t, ts.URL, "GET", "/dogs/not-an-id", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/pedigree/not-an-id", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed pedigree id, got %d", st)
	}

	// Bien formado pero ausente: 404, nunca 500
	absent := "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	if st, _ := doReq(t, ts.URL, "GET", "/dogs/"+absent, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 for absent id, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/pedigree/"+absent, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 for absent pedigree root, got %d", st)
	}
}

func TestHTTP_SearchByName(t *testing.T) {
	ts := newTestServer(t)

	for _, n := range []string{"Rex", "T-REX", "Luna"} {
		createDog(t, ts.URL, map[string]any{"name": n})
	}

	st, body := doReq(t, ts.URL, "GET", "/dogs?q=rex", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 search, got %d", st)
	}
	var items []map[string]any
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("decode search: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 case-insensitive matches, got %d", len(items))
	}

	st, body = doReq(t, ts.URL, "GET", "/dogs?q=rex&limit=1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 limited search, got %d", st)
	}
	items = nil
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("decode limited search: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected limit=1 to cap results, got %d", len(items))
	}
}

func TestHTTP_RootAndDiagnostics(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 root, got %d", st)
	}
	var root map[string]string
	if err := json.Unmarshal(body, &root); err != nil {
		t.Fatalf("decode root: %v", err)
	}
	if root["message"] == "" {
		t.Fatal("expected welcome message")
	}

	st, body = doReq(t, ts.URL, "GET", "/test", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 diagnostics, got %d", st)
	}
	var diag struct {
		Backend   string `json:"backend"`
		StoreMode string `json:"store_mode"`
	}
	if err := json.Unmarshal(body, &diag); err != nil {
		t.Fatalf("decode diagnostics: %v", err)
	}
	if diag.Backend != "running" {
		t.Fatalf("expected running backend, got %q", diag.Backend)
	}
	if diag.StoreMode != "memory" {
		t.Fatalf("expected degraded in-memory mode without DATABASE_URL, got %q", diag.StoreMode)
	}
}

func TestHTTP_Import(t *testing.T) {
	ts := newTestServer(t)

	// Página externa simulada en localhost
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>CH Zeus - APBT Online Pedigrees</title></head></html>`))
	}))
	defer page.Close()

	st, body := doReq(t, ts.URL, "POST", "/import?url="+page.URL, nil)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 import, got %d body=%s", st, string(body))
	}
	var out struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode import: %v", err)
	}
	if out.Name != "CH Zeus" {
		t.Fatalf("expected name from page title, got %q", out.Name)
	}

	// El registro quedó consultable
	if st, _ := doReq(t, ts.URL, "GET", "/dogs/"+out.ID, nil); st != http.StatusOK {
		t.Fatalf("expected imported dog retrievable, got %d", st)
	}

	// URL que no resuelve: 400 con causa, no 500
	st, body = doReq(t, ts.URL, "POST", "/import?url=http://127.0.0.1:1/nope", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 on fetch failure, got %d body=%s", st, string(body))
	}

	// Sin url: también 400
	if st, _ := doReq(t, ts.URL, "POST", "/import", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 without url param, got %d", st)
	}
}
