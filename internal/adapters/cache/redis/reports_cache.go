// Package redis guarda reportes ya calculados por un periodo corto.
package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"medical-practice/internal/domain/reports"
)

// DefaultTTL mantiene el reporte fresco dentro del mismo minuto.
const DefaultTTL = 60 * time.Second

type ReportsCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewReportsCache(client *goredis.Client) *ReportsCache {
	return &ReportsCache{client: client, ttl: DefaultTTL}
}

// Get devuelve el reporte cacheado si existe. Cualquier falla de red o
// de decodificacion se trata como cache miss.
func (c *ReportsCache) Get(ctx context.Context, key string) (reports.Weekly, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return reports.Weekly{}, false
	}
	var w reports.Weekly
	if err := json.Unmarshal(raw, &w); err != nil {
		return reports.Weekly{}, false
	}
	return w, true
}

// Set escribe el reporte con TTL. Los errores se ignoran: el cache es
// opcional y el reporte siempre se puede recalcular.
func (c *ReportsCache) Set(ctx context.Context, key string, w reports.Weekly) {
	raw, err := json.Marshal(w)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, raw, c.ttl)
}
