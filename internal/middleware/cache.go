// Package middleware provides the HTTP middleware used by the service:
// a Redis-backed response cache for catalog reads and a distributed
// token-bucket rate limiter.  Both are constructed as no-ops when Redis
// is unavailable so the API keeps serving from MySQL alone.
package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/experience-booking/internal/config"
)

// bodyRecorder captures the response body and status while forwarding
// both to the client, up to a byte limit.
type bodyRecorder struct {
	http.ResponseWriter
	status   int
	buf      bytes.Buffer
	written  int64
	limit    int64
	overflow bool
}

func (br *bodyRecorder) WriteHeader(code int) {
	br.status = code
	br.ResponseWriter.WriteHeader(code)
}

func (br *bodyRecorder) Write(b []byte) (int, error) {
	br.written += int64(len(b))
	if br.limit > 0 && br.written > br.limit {
		br.overflow = true // too large to cache, still stream to the client
	} else {
		br.buf.Write(b)
	}
	return br.ResponseWriter.Write(b)
}

// cacheKey hashes route plus raw query under the configured prefix.
// Request bodies never participate: only GETs are cached.
func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// Cached payload layout: [4 bytes status][JSON body].  Catalog
// responses are always JSON, so headers are not stored.
func encodeEntry(status int, body []byte) []byte {
	out := make([]byte, 4+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(status))
	copy(out[4:], body)
	return out
}

func decodeEntry(bs []byte) (status int, body []byte, ok bool) {
	if len(bs) < 4 {
		return 0, nil, false
	}
	return int(binary.BigEndian.Uint32(bs[0:4])), bs[4:], true
}

// NewCatalogCache returns middleware that serves successful GET
// responses from Redis for the configured TTL.  Capacity counters in
// cached payloads can be up to TTL stale; the reservation path itself
// never goes through the cache, so correctness is unaffected.
func NewCatalogCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 15 * time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			ctx := c.Request().Context()
			key := cacheKey(cfg.Prefix, c)

			if bs, err := rdb.Get(ctx, key).Bytes(); err == nil {
				if status, body, ok := decodeEntry(bs); ok {
					c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(status)
					_, _ = c.Response().Write(body)
					return nil
				}
			}

			rec := &bodyRecorder{
				ResponseWriter: c.Response().Writer,
				status:         http.StatusOK,
				limit:          int64(cfg.MaxBodyBytes),
			}
			c.Response().Writer = rec
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if rec.status == http.StatusOK && !rec.overflow {
				entry := encodeEntry(rec.status, rec.buf.Bytes())
				// Background context: the request may already be done.
				if err := rdb.SetEx(context.Background(), key, entry, ttl).Err(); err != nil {
					c.Logger().Warnf("cache store failed for %s: %v", key, err)
				}
			}
			return nil
		}
	}
}
