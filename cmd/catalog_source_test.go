package cmd

import (
	"bytes"
	"compress/gzip"
	"context"
	stdsql "database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/examprep/internal/infrastructure/config"
	"github.com/eslsoft/examprep/internal/infrastructure/database"
)

const sampleCatalog = `subjects:
  - name: Physics
    papers:
      - title: Mechanics
        year: 2024
`

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestIsRemote(t *testing.T) {
	tests := map[string]bool{
		"https://example.com/catalog.yaml": true,
		"http://example.com/catalog.yaml":  true,
		"./catalog.yaml":                   false,
		"-":                                false,
		"file:///tmp/catalog.yaml":         false,
	}
	for in, want := range tests {
		if got := isRemote(in); got != want {
			t.Errorf("isRemote(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPrepareCachePath(t *testing.T) {
	dir := t.TempDir()
	url := "https://example.com/catalog.yaml.gz"

	base, path, fromCache, err := prepareCachePath(url, dir, false)
	if err != nil {
		t.Fatalf("prepareCachePath: %v", err)
	}
	if base != dir || fromCache {
		t.Fatalf("unexpected base=%s fromCache=%v", base, fromCache)
	}
	if !strings.HasSuffix(path, ".yaml.gz") || filepath.Dir(path) != dir {
		t.Fatalf("unexpected cache path %s", path)
	}

	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write cache: %v", err)
	}
	if _, again, fromCache, _ := prepareCachePath(url, dir, false); again != path || !fromCache {
		t.Fatalf("expected cache hit at %s, got %s (%v)", path, again, fromCache)
	}
	if _, _, fromCache, _ := prepareCachePath(url, dir, true); fromCache {
		t.Fatalf("no-cache must force a download")
	}
}

func TestCatalogSourceOpen(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(plain, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte(sampleCatalog))
	_ = gz.Close()
	zipped := filepath.Join(dir, "catalog.yaml.gz")
	if err := os.WriteFile(zipped, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name  string
		src   catalogSource
		stdin io.Reader
	}{
		{name: "plain file", src: catalogSource{Location: plain}},
		{name: "gzip by suffix", src: catalogSource{Location: zipped}},
		{name: "stdin", src: catalogSource{Location: "-"}, stdin: strings.NewReader(sampleCatalog)},
		{name: "gzip stdin", src: catalogSource{Location: "-", Gzip: true}, stdin: bytes.NewReader(buf.Bytes())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, closeFn, err := tt.src.open(context.Background(), tt.stdin, quietLogger())
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if err := closeFn(); err != nil {
				t.Fatalf("close: %v", err)
			}
			if string(got) != sampleCatalog {
				t.Fatalf("unexpected content %q", got)
			}
		})
	}
}

func TestCatalogSourceDownloadsOnce(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = io.WriteString(w, sampleCatalog)
	}))
	defer srv.Close()

	src := catalogSource{Location: srv.URL + "/catalog.yaml", CacheDir: t.TempDir()}
	for i := 0; i < 2; i++ {
		r, closeFn, err := src.open(context.Background(), nil, quietLogger())
		if err != nil {
			t.Fatalf("open #%d: %v", i, err)
		}
		got, _ := io.ReadAll(r)
		_ = closeFn()
		if string(got) != sampleCatalog {
			t.Fatalf("unexpected content %q", got)
		}
	}
	if n := hits.Load(); n != 1 {
		t.Fatalf("expected a single download, got %d", n)
	}
}

func TestDownloadFileRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := downloadFile(context.Background(), srv.URL, path); err == nil {
		t.Fatalf("expected error for 404")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("no file should be left behind, stat err=%v", err)
	}
}

func TestImportCatalogIntoSQLite(t *testing.T) {
	db, err := stdsql.Open("sqlite3", "file::memory:?cache=shared")
	if err != nil || db.Ping() != nil {
		t.Skip("sqlite driver not available")
	}
	_ = db.Close()

	cfg := &config.Config{Database: config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "examprep.db"),
	}}
	drv, cleanup, err := database.NewEntDriver(cfg, quietLogger())
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer cleanup()
	if err := database.Migrate(context.Background(), drv); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	writer, closeWriter, err := catalogWriter(cfg, drv, true, quietLogger())
	if err != nil {
		t.Fatalf("catalogWriter: %v", err)
	}
	defer closeWriter()

	src := catalogSource{Location: "-"}
	sum, err := importCatalog(context.Background(), src, strings.NewReader(sampleCatalog), writer, 0, quietLogger())
	if err != nil {
		t.Fatalf("importCatalog: %v", err)
	}
	if sum.Subjects != 1 || sum.Papers != 1 || sum.Videos != 0 {
		t.Fatalf("unexpected summary %+v", sum)
	}
}
