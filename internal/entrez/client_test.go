// internal/entrez/client_test.go
package entrez

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("tester@example.org", time.Millisecond)
	c.BaseURL = srv.URL
	return c, srv
}

func esearchJSON(count int, ids []string) string {
	out := `{"esearchresult":{"count":"` + strconv.Itoa(count) + `","idlist":[`
	for i, id := range ids {
		if i > 0 {
			out += ","
		}
		out += `"` + id + `"`
	}
	return out + `]}}`
}

func TestTaxonomyID(t *testing.T) {
	var gotQuery url.Values
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/esearch.fcgi" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		fmt.Fprint(w, esearchJSON(1, []string{"562"}))
	}))

	id, err := c.TaxonomyID(context.Background(), "Escherichia coli")
	if err != nil {
		t.Fatalf("TaxonomyID: %v", err)
	}
	if id != "562" {
		t.Errorf("taxid = %q", id)
	}
	if gotQuery.Get("db") != "taxonomy" || gotQuery.Get("term") != "Escherichia coli" {
		t.Errorf("query = %v", gotQuery)
	}
	if gotQuery.Get("email") != "tester@example.org" {
		t.Errorf("email missing from query: %v", gotQuery)
	}
}

func TestTaxonomyIDNotFound(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, esearchJSON(0, nil))
	}))
	_, err := c.TaxonomyID(context.Background(), "Dracula vampiris")
	if err == nil {
		t.Fatal("want error for unknown organism")
	}
}

func TestGeneIDsPagination(t *testing.T) {
	pages := [][]string{
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7"},
	}
	var starts []int
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs, _ := strconv.Atoi(r.URL.Query().Get("retstart"))
		starts = append(starts, rs)
		page := rs / 3
		if page >= len(pages) {
			fmt.Fprint(w, esearchJSON(7, nil))
			return
		}
		fmt.Fprint(w, esearchJSON(7, pages[page]))
	}))

	ids, err := c.GeneIDs(context.Background(), "562", 3)
	if err != nil {
		t.Fatalf("GeneIDs: %v", err)
	}
	if len(ids) != 7 || ids[6] != "7" {
		t.Errorf("ids = %v", ids)
	}
	if len(starts) != 3 || starts[1] != 3 || starts[2] != 6 {
		t.Errorf("retstarts = %v", starts)
	}
}

func TestGeneNames(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/esummary.fcgi" {
			t.Errorf("path = %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"result":{"uids":["10","11"],"10":{"name":"dnaA"},"11":{}}}`)
	}))

	names, err := c.GeneNames(context.Background(), []string{"10", "11", "12"})
	if err != nil {
		t.Fatalf("GeneNames: %v", err)
	}
	if names["10"] != "dnaA" {
		t.Errorf("names[10] = %q", names["10"])
	}
	if names["11"] != "Unknown" || names["12"] != "Unknown" {
		t.Errorf("missing names should map to Unknown: %v", names)
	}
}

func TestServerErrorSurfaces(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusBadGateway)
	}))
	if _, _, err := c.Search(context.Background(), "gene", "x", 0, 10); err == nil {
		t.Fatal("want error on 502")
	}
}

func TestContextCancellation(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, esearchJSON(0, nil))
	}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := c.Search(ctx, "gene", "x", 0, 10); err == nil {
		t.Fatal("want error from cancelled context")
	}
}
