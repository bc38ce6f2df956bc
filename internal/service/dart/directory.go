package dart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"InsiderPull/internal/service/cache"
	"InsiderPull/pkg/logger"
)

const directoryCacheKey = "dart:corpcode"

type corpCodeDownloader interface {
	DownloadCorpCodes(ctx context.Context) ([]byte, error)
}

// Directory resolves stock codes to corp codes, backed by a cache of the
// parsed archive. Cache trouble is logged and never fails a load.
type Directory struct {
	src   corpCodeDownloader
	cache cache.BytesCache
	ttl   time.Duration
	log   *logger.Logger
}

func NewDirectory(src corpCodeDownloader, c cache.BytesCache, ttl time.Duration, log *logger.Logger) *Directory {
	if c == nil {
		c = cache.Nop{}
	}
	return &Directory{src: src, cache: c, ttl: ttl, log: log}
}

func (d *Directory) Load(ctx context.Context) (map[string]string, error) {
	if b, ok, err := d.cache.GetBytes(ctx, directoryCacheKey); err != nil {
		d.log.Warn("corp code cache read failed", logger.Error(err))
	} else if ok {
		var m map[string]string
		if err := json.Unmarshal(b, &m); err == nil && len(m) > 0 {
			d.log.Debug("corp codes loaded from cache", logger.Int("count", len(m)))
			return m, nil
		}
		d.log.Warn("discarding unreadable corp code cache entry")
	}

	start := time.Now()
	archive, err := d.src.DownloadCorpCodes(ctx)
	if err != nil {
		return nil, err
	}
	m, err := ParseCorpCodes(archive)
	if err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("corp code archive contained no listed companies")
	}
	d.log.Info("corp codes downloaded",
		logger.Int("count", len(m)),
		logger.Duration("elapsed_ms", time.Since(start)),
	)

	if b, err := json.Marshal(m); err == nil {
		if err := d.cache.SetBytes(ctx, directoryCacheKey, b, d.ttl); err != nil {
			d.log.Warn("corp code cache write failed", logger.Error(err))
		}
	}
	return m, nil
}
