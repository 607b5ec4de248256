//go:build integration || !unit

package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	server "github.com/Kallyan98/Hotel-Recommender-System/internal/adapters/http_server"
	"github.com/Kallyan98/Hotel-Recommender-System/internal/adapters/llm"
	redisad "github.com/Kallyan98/Hotel-Recommender-System/internal/adapters/redis"
	"github.com/Kallyan98/Hotel-Recommender-System/internal/app"
	"github.com/Kallyan98/Hotel-Recommender-System/internal/shared"
	mysqlrepo "github.com/Kallyan98/Hotel-Recommender-System/internal/storage/mysql"
)

// ---------- helpers ----------

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/sql)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=recommender",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/recommender?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC", hostPort)

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

// stub collaborator: echoes a recommendation mentioning the first hotel it
// sees in the prompt
func startNarrativeStub(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		text := "Welcome to AI Hotel booking system: no offers matched"
		for _, m := range req.Messages {
			if strings.Contains(m.Content, "Sea Breeze Resort") {
				text = "Welcome to AI Hotel booking system: 1. Hotel: Sea Breeze Resort"
				break
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": text}},
			},
		})
	}))
	t.Cleanup(ts.Close)
	return ts
}

// ---------- the test ----------

func TestHTTP_EndToEnd_Recommendation(t *testing.T) {
	db := startMySQL(t)
	ctx := context.Background()

	// seed the reference catalog
	repo := mysqlrepo.New(db)
	for _, o := range shared.SeedOffers {
		if err := repo.UpsertOffer(ctx, o); err != nil {
			t.Fatalf("seed %s: %v", o.Name, err)
		}
	}

	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)

	stub := startNarrativeStub(t)
	nc, err := llm.New(stub.URL, "test-key", "test-model", 100)
	if err != nil {
		t.Fatalf("llm.New: %v", err)
	}

	svc := app.NewRecommendationService(repo, cache, nc, 10*time.Minute)
	srv := server.New()
	srv.MountHandlers(&server.Handlers{R: svc})
	api := httptest.NewServer(srv.Mux())
	t.Cleanup(api.Close)

	body, _ := json.Marshal(map[string]string{
		"request": "Need a stay for 2 adults and 1 child, budget under 5000, from 2025-06-06 to 2025-06-08",
	})
	resp, err := http.Post(api.URL+"/v1/recommendations", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}

	var rec app.Recommendation
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if rec.Intent.Adults != 2 || rec.Intent.Children != 1 {
		t.Fatalf("intent: %+v", rec.Intent)
	}
	if rec.Intent.Budget == nil || *rec.Intent.Budget != 5000 {
		t.Fatalf("budget: %+v", rec.Intent.Budget)
	}
	if len(rec.Candidates) != len(shared.SeedOffers) {
		t.Fatalf("candidates: %d", len(rec.Candidates))
	}
	if got := rec.Fares["Sea Breeze Resort"].TotalFare; got != 22550 {
		t.Fatalf("Sea Breeze total: %d", got)
	}
	if !strings.Contains(rec.Narrative, "Sea Breeze Resort") {
		t.Fatalf("narrative: %q", rec.Narrative)
	}

	// standalone fare endpoint, weekend surcharge included
	fresp, err := http.Get(api.URL + "/v1/offers/Sea%20Breeze%20Resort/fare?check_in=2025-06-07&check_out=2025-06-08&adults=1")
	if err != nil {
		t.Fatalf("GET fare: %v", err)
	}
	defer fresp.Body.Close()
	if fresp.StatusCode != http.StatusOK {
		t.Fatalf("fare status: %d", fresp.StatusCode)
	}
	var fare struct {
		TotalFare int `json:"total_fare"`
	}
	if err := json.NewDecoder(fresp.Body).Decode(&fare); err != nil {
		t.Fatalf("decode fare: %v", err)
	}
	if fare.TotalFare != 5760 { // Saturday night, 4800 * 1.2
		t.Fatalf("fare total: %d", fare.TotalFare)
	}

	// malformed dates are a client error, not a crash
	bresp, err := http.Get(api.URL + "/v1/offers/Sea%20Breeze%20Resort/fare?check_in=garbage&check_out=2025-06-08")
	if err != nil {
		t.Fatalf("GET bad fare: %v", err)
	}
	defer bresp.Body.Close()
	if bresp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad-date status: %d", bresp.StatusCode)
	}
}
