package cmd

import (
	"compress/gzip"
	"context"
	"fmt"
	"hash/crc32"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	"github.com/sirupsen/logrus"

	adapterrepo "github.com/eslsoft/examprep/internal/adapter/repository"
	"github.com/eslsoft/examprep/internal/app"
	"github.com/eslsoft/examprep/internal/infrastructure/config"
	"github.com/eslsoft/examprep/internal/infrastructure/database"
	"github.com/eslsoft/examprep/internal/repository"
	"github.com/eslsoft/examprep/internal/usecase/catalog"
)

type catalogSource struct {
	Location string
	Gzip     bool
	CacheDir string
	NoCache  bool
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// open resolves the catalog location to a reader. Remote catalogs are downloaded once
// into the cache directory and reused unless NoCache is set.
func (s catalogSource) open(ctx context.Context, stdin io.Reader, logger logrus.FieldLogger) (io.Reader, func() error, error) {
	var (
		reader  io.Reader
		closers []func() error
	)
	closeAll := func() error {
		var first error
		for _, c := range closers {
			if err := c(); err != nil && first == nil {
				first = err
			}
		}
		return first
	}

	path := s.Location
	switch {
	case path == "-":
		reader = stdin
	case isRemote(path):
		cacheDir, cached, fromCache, err := prepareCachePath(path, s.CacheDir, s.NoCache)
		if err != nil {
			return nil, nil, err
		}
		if !fromCache {
			if err := os.MkdirAll(cacheDir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("create cache dir: %w", err)
			}
			logger.WithField("url", path).WithField("cache", cached).Info("downloading catalog")
			if err := downloadFile(ctx, path, cached); err != nil {
				return nil, nil, err
			}
		} else {
			logger.WithField("cache", cached).Info("using cached catalog")
		}
		path = cached
		fallthrough
	default:
		file, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, nil, fmt.Errorf("open catalog: %w", err)
		}
		reader = file
		closers = append(closers, file.Close)
	}

	if s.Gzip || strings.HasSuffix(strings.ToLower(s.Location), ".gz") {
		gzr, err := gzip.NewReader(reader)
		if err != nil {
			_ = closeAll()
			return nil, nil, fmt.Errorf("create gzip reader: %w", err)
		}
		reader = gzr
		closers = append([]func() error{gzr.Close}, closers...)
	}
	return reader, closeAll, nil
}

func downloadFile(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: %s", resp.Status)
	}
	tmp := path + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// prepareCachePath decides cache location and returns (cacheDir, filePath, fromCache, error)
func prepareCachePath(url, cacheDirFlag string, noCache bool) (string, string, bool, error) {
	base := cacheDirFlag
	if base == "" {
		userCache, err := os.UserCacheDir()
		if err != nil {
			return "", "", false, fmt.Errorf("resolve user cache dir: %w", err)
		}
		base = filepath.Join(userCache, "examprep")
	}
	ext := ".yaml"
	if strings.HasSuffix(strings.ToLower(url), ".gz") {
		ext = ".yaml.gz"
	}
	name := fmt.Sprintf("catalog-%08x%s", crc32.ChecksumIEEE([]byte(url)), ext)
	filePath := filepath.Join(base, name)
	if !noCache {
		if st, err := os.Stat(filePath); err == nil && st.Size() > 0 {
			return base, filePath, true, nil
		}
	}
	return base, filePath, false, nil
}

// catalogWriter picks the pgx batch writer for PostgreSQL when requested, and the ent
// writer otherwise. With a cache configured, subject writes purge cached name resolutions.
func catalogWriter(cfg *config.Config, drv dialect.Driver, usePgx bool, logger logrus.FieldLogger) (repository.CatalogRepository, func(), error) {
	c, closeCache := app.ProvideCache(cfg, logger)
	if usePgx && drv.Dialect() == dialect.Postgres {
		pool, cleanup, err := database.NewConnection(cfg, logger)
		if err != nil {
			closeCache()
			return nil, nil, err
		}
		return adapterrepo.NewInvalidatingCatalogRepository(adapterrepo.NewPgxCatalogRepository(pool), c, logger), func() {
			cleanup()
			closeCache()
		}, nil
	}
	return adapterrepo.NewInvalidatingCatalogRepository(adapterrepo.NewCatalogRepository(drv), c, logger), closeCache, nil
}

func importCatalog(ctx context.Context, src catalogSource, stdin io.Reader, writer repository.CatalogRepository, batchSize int, logger logrus.FieldLogger) (sum catalog.Summary, err error) {
	reader, closeFn, err := src.open(ctx, stdin, logger)
	if err != nil {
		return sum, err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	c, err := catalog.Load(reader)
	if err != nil {
		return sum, err
	}
	return catalog.NewImporter(writer, catalog.WithBatchSize(batchSize), catalog.WithLogger(logger)).Import(ctx, c)
}
