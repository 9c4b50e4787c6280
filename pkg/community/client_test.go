package community

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const searchBody = `{"workflows":[
	{"id":101,"name":"Customer Churn Prediction","totalViews":500,"user":{"username":"alice"}},
	{"id":102,"name":"Invoice Automation","totalViews":900,"user":{"username":"bob"}}
]}`

const detailBody = `{"data":{"attributes":{
	"id":%d,
	"name":"Customer Churn Prediction",
	"description":"## How it works\n1. Fetch customer data\n2. Score churn risk\n3. Send alerts\n\nRequires credentials for your CRM.",
	"workflow":{"nodes":[
		{"name":"Schedule Trigger","type":"n8n-nodes-base.scheduleTrigger"},
		{"name":"Get Customers","type":"n8n-nodes-base.httpRequest","parameters":{"url":"https://api.example.com/customers"}},
		{"name":"Score","type":"n8n-nodes-base.openAi"},
		{"name":"Check Risk","type":"n8n-nodes-base.if"},
		{"name":"Notes","type":"n8n-nodes-base.stickyNote"},
		{"name":"Notify","type":"n8n-nodes-base.slack"}
	]}
}}}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/templates/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search") == "" {
			http.Error(w, "missing search", http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, searchBody)
	})
	mux.HandleFunc("/workflows/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/workflows/")
		fmt.Fprintf(w, detailBody, mustAtoi(t, id))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		t.Fatalf("bad id %q: %v", s, err)
	}
	return n
}

func TestSearch(t *testing.T) {
	srv := testServer(t)
	c := NewClient(srv.URL, nil, testLogger())

	hits, err := c.Search(context.Background(), "churn prediction", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}
	if hits[0].ID != 101 || hits[0].User.Username != "alice" {
		t.Errorf("unexpected first hit: %+v", hits[0])
	}
}

func TestSearchAndEnrich(t *testing.T) {
	srv := testServer(t)
	c := NewClient(srv.URL, nil, testLogger())

	results := c.SearchAndEnrich(context.Background(), []string{"客戶", "流失"}, "零售", 5)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	// Most viewed template first.
	if results[0].ID != 102 {
		t.Errorf("first result id = %d, want 102 (highest views)", results[0].ID)
	}

	for _, cw := range results {
		// Sticky note excluded from the five real nodes.
		if cw.NodeCount != 5 {
			t.Errorf("workflow %d node count = %d, want 5", cw.ID, cw.NodeCount)
		}
		if cw.Difficulty < 1 || cw.Difficulty > 5 {
			t.Errorf("workflow %d difficulty %d outside 1-5", cw.ID, cw.Difficulty)
		}
		if len(cw.DifficultyReasons) == 0 {
			t.Errorf("workflow %d has no difficulty reasons", cw.ID)
		}
		if cw.NameEN != "Customer Churn Prediction" {
			t.Errorf("workflow %d name_en = %q", cw.ID, cw.NameEN)
		}
		if !strings.Contains(cw.Name, "客戶") {
			t.Errorf("workflow %d translated name = %q", cw.ID, cw.Name)
		}
		if !strings.Contains(cw.URL, "n8n.io/workflows/") {
			t.Errorf("workflow %d url = %q", cw.ID, cw.URL)
		}
		for i, s := range cw.Steps {
			if s.Step != i+1 {
				t.Errorf("workflow %d step %d has ordinal %d", cw.ID, i, s.Step)
			}
		}
	}
}

func TestSearchAndEnrich_DegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, testLogger())
	results := c.SearchAndEnrich(context.Background(), []string{"客戶"}, "零售", 5)
	if len(results) != 0 {
		t.Errorf("got %d results from a failing API, want 0", len(results))
	}
}

func TestClient_UsesCache(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, searchBody)
	}))
	defer srv.Close()

	cache, err := NewCache(t.TempDir(), time.Minute)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	c := NewClient(srv.URL, cache, testLogger())

	for i := 0; i < 3; i++ {
		if _, err := c.Search(context.Background(), "churn", 5); err != nil {
			t.Fatalf("Search %d: %v", i, err)
		}
	}
	if calls != 1 {
		t.Errorf("server saw %d calls, want 1 (cache hit after first)", calls)
	}
}

func TestCache_Expiry(t *testing.T) {
	cache, err := NewCache(t.TempDir(), -time.Second)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	if err := cache.Set("u", []byte("x")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok := cache.Get("u"); ok {
		t.Error("expired entry returned as hit")
	}
}

func TestEnrich_StepsFromDescription(t *testing.T) {
	detail := &workflowDetail{
		Name:        "Churn workflow",
		Description: "## How it works\n1. Fetch customer data\n2. Score churn risk\n3. Send alerts",
	}
	cw := Enrich(detail, 7)
	if len(cw.Steps) != 3 {
		t.Fatalf("got %d steps, want 3 from the numbered list", len(cw.Steps))
	}
	if !strings.Contains(cw.Steps[0].Desc, "客戶") {
		t.Errorf("step desc not translated: %q", cw.Steps[0].Desc)
	}
}

func TestCleanDescription_StripsHTML(t *testing.T) {
	got := cleanDescription("<p>Send <b>alerts</b> daily</p>")
	if strings.Contains(got, "<") {
		t.Errorf("HTML not stripped: %q", got)
	}
	if !strings.Contains(got, "alerts") {
		t.Errorf("text content lost: %q", got)
	}
}
