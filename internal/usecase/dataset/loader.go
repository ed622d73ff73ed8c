package dataset

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"sanctions-watch/internal/domain/entity"
	"sanctions-watch/internal/observability/metrics"
)

// maxLineBytes bounds a single dataset line. Records in the wild run to a
// few hundred KB once documents are embedded; 10 MiB leaves headroom.
const maxLineBytes = 10 << 20

// Loader reads the dataset file and materializes the entity collection.
// Every load re-derives the full collection from the file; an optional cache
// keyed by file modtime and size skips the re-parse when the file has not
// changed. Query results are identical either way because normalization is
// deterministic.
type Loader struct {
	Path       string
	Normalizer *Normalizer
	Logger     *slog.Logger

	// DisableCache forces a re-read and re-parse on every call.
	DisableCache bool

	group singleflight.Group

	mu       sync.RWMutex
	cached   []*entity.Entity
	cachedAt fileStamp
}

// fileStamp identifies a dataset file version for cache invalidation.
type fileStamp struct {
	modTime time.Time
	size    int64
	valid   bool
}

// LoadAll returns the normalized entity collection in file order. A missing
// or unreadable file is logged and yields an empty collection; malformed
// lines are logged, counted, and skipped without aborting the load.
func (l *Loader) LoadAll(ctx context.Context) []*entity.Entity {
	if l.DisableCache {
		entities, _ := l.loadFile(ctx)
		return entities
	}

	stamp := l.stat()
	l.mu.RLock()
	if stamp.valid && l.cachedAt.valid && stamp == l.cachedAt {
		cached := l.cached
		l.mu.RUnlock()
		return cached
	}
	l.mu.RUnlock()

	// Collapse concurrent reloads of the same file version into one parse.
	v, _, _ := l.group.Do("load", func() (any, error) {
		entities, err := l.loadFile(ctx)
		if err != nil {
			// An incomplete load must never be cached, or a single
			// cancelled request would pin a truncated collection until the
			// file changes. The next call retries from scratch.
			return entities, nil
		}
		l.mu.Lock()
		l.cached = entities
		l.cachedAt = l.stat()
		l.mu.Unlock()
		return entities, nil
	})
	return v.([]*entity.Entity)
}

// Refresh re-reads the dataset unconditionally and replaces the cache.
// Used by the scheduled cache warmer. Incomplete loads leave the cache
// untouched.
func (l *Loader) Refresh(ctx context.Context) int {
	entities, err := l.loadFile(ctx)
	if err != nil {
		return len(entities)
	}
	l.mu.Lock()
	l.cached = entities
	l.cachedAt = l.stat()
	l.mu.Unlock()
	return len(entities)
}

func (l *Loader) stat() fileStamp {
	info, err := os.Stat(l.Path)
	if err != nil {
		return fileStamp{}
	}
	return fileStamp{modTime: info.ModTime(), size: info.Size(), valid: true}
}

// loadFile performs the actual read and normalization pass. A non-nil error
// marks the load as incomplete: the returned collection is empty and must not
// be cached.
func (l *Loader) loadFile(ctx context.Context) ([]*entity.Entity, error) {
	start := time.Now()
	logger := l.logger()

	f, err := os.Open(l.Path)
	if err != nil {
		logger.Error("failed to open dataset",
			slog.String("path", l.Path),
			slog.Any("error", err))
		metrics.RecordDatasetLoad(0, time.Since(start), false)
		return []*entity.Entity{}, fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("failed to close dataset file", slog.Any("error", cerr))
		}
	}()

	var entities []*entity.Entity
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := ctx.Err(); err != nil {
			// Cancellation mid-scan leaves a truncated collection; treat it
			// like a read error and discard everything parsed so far.
			logger.Warn("dataset load cancelled",
				slog.Int("line", lineNum),
				slog.Any("error", err))
			metrics.RecordDatasetLoad(0, time.Since(start), false)
			return []*entity.Entity{}, err
		}

		// Lines are sometimes wrapped in an extra pair of quotes by the
		// export tooling; strip them before decoding.
		line := strings.TrimSpace(scanner.Text())
		line = strings.Trim(line, `"`)
		if line == "" {
			continue
		}

		var raw RawRecord
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			logger.Error("failed to parse dataset line",
				slog.Int("line", lineNum),
				slog.Any("error", err))
			metrics.RecordParseError()
			continue
		}

		if e, ok := l.Normalizer.Normalize(raw); ok {
			entities = append(entities, e)
		}
	}
	if err := scanner.Err(); err != nil {
		// A mid-file read error aborts this load; whatever was parsed so
		// far is discarded so callers never see a torn collection.
		logger.Error("failed to read dataset",
			slog.String("path", l.Path),
			slog.Int("line", lineNum),
			slog.Any("error", err))
		metrics.RecordDatasetLoad(0, time.Since(start), false)
		return []*entity.Entity{}, fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
	}

	if entities == nil {
		entities = []*entity.Entity{}
	}

	duration := time.Since(start)
	metrics.RecordDatasetLoad(len(entities), duration, true)
	logger.Info("dataset loaded",
		slog.String("path", l.Path),
		slog.Int("entities", len(entities)),
		slog.Int("lines", lineNum),
		slog.Duration("duration", duration))
	return entities, nil
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}
