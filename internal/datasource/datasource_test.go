package datasource

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleJSON = `{
  "nodes": [
    {"id": 1, "name": "Ada Lovelace", "department": "Engineering", "archetype": "Builder",
     "capabilities": ["Go"], "capability_count": 1, "collab_count": 1},
    {"id": 2, "name": "Grace Hopper", "department": "Research", "archetype": "Researcher",
     "capabilities": [], "capability_count": 0, "collab_count": 1}
  ],
  "links": [{"source": 1, "target": 2, "weight": 2, "team_name": "Compilers"}]
}`

func TestSelect_ExactlyOneSource(t *testing.T) {
	if _, err := Select("", "", ""); err == nil {
		t.Error("expected error for no sources")
	}
	if _, err := Select("http://x", "y.json", ""); err == nil {
		t.Error("expected error for two sources")
	}
	src, err := Select("", "graph.json", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if src.Kind != KindFile || src.Location != "graph.json" {
		t.Errorf("selected %+v", src)
	}
}

func TestWatchable(t *testing.T) {
	if (Source{Kind: KindHTTP}).Watchable() {
		t.Error("http sources should not be watchable")
	}
	if !(Source{Kind: KindFile}).Watchable() || !(Source{Kind: KindSQLite}).Watchable() {
		t.Error("file-backed sources should be watchable")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := Load(context.Background(), Source{Kind: KindFile, Location: path})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(g.Nodes) != 2 || len(g.Links) != 1 {
		t.Errorf("got %d nodes, %d links", len(g.Nodes), len(g.Links))
	}
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(context.Background(), Source{Kind: KindFile, Location: "/nonexistent/graph.json"})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	g, err := Load(context.Background(), Source{Kind: KindHTTP, Location: srv.URL})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(g.Nodes) != 2 {
		t.Errorf("got %d nodes", len(g.Nodes))
	}
}

func TestLoad_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := Load(context.Background(), Source{Kind: KindHTTP, Location: srv.URL}); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestLoad_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	stmts := []string{
		`CREATE TABLE people (
			id INTEGER PRIMARY KEY, name TEXT, department TEXT, archetype TEXT,
			capabilities TEXT, capability_count INTEGER, collab_count INTEGER)`,
		`CREATE TABLE collaborations (
			source INTEGER, target INTEGER, weight REAL, team_name TEXT)`,
		`INSERT INTO people VALUES
			(1, 'Ada Lovelace', 'Engineering', 'Builder', '["Go","Python"]', 2, 1),
			(2, 'Grace Hopper', 'Research', 'Researcher', NULL, 0, 1)`,
		`INSERT INTO collaborations VALUES (1, 2, 3, 'Compilers')`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("exec: %v", err)
		}
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	g, err := Load(context.Background(), Source{Kind: KindSQLite, Location: path})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(g.Nodes) != 2 || len(g.Links) != 1 {
		t.Fatalf("got %d nodes, %d links", len(g.Nodes), len(g.Links))
	}
	ada := g.NodeByID(1)
	if len(ada.Capabilities) != 2 || ada.Capabilities[0] != "Go" {
		t.Errorf("capabilities = %v", ada.Capabilities)
	}
	l := g.Links[0]
	if l.Weight != 3 || l.TeamName != "Compilers" || l.Source.ID != 1 {
		t.Errorf("link = %+v", l)
	}
}

func TestStaleWatcher_FlagsChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	notified := make(chan struct{}, 1)
	w := WatchForStaleness(Source{Kind: KindFile, Location: path}, func() {
		notified <- struct{}{}
	})
	if w == nil {
		t.Skip("fsnotify unavailable")
	}
	defer w.Close()

	if w.Stale() {
		t.Fatal("watcher stale before any change")
	}

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-notified:
	case <-time.After(3 * time.Second):
		t.Fatal("no staleness notification after write")
	}
	if !w.Stale() {
		t.Error("Stale() false after notification")
	}
}

func TestStaleWatcher_NilForHTTP(t *testing.T) {
	w := WatchForStaleness(Source{Kind: KindHTTP, Location: "http://example.com"}, nil)
	if w != nil {
		t.Error("http source should not be watched")
	}
	if w.Stale() {
		t.Error("nil watcher should report not stale")
	}
	w.Close() // nil-safe
}
