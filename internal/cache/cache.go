package cache

import (
	"context"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	// DelPrefix drops every key under the prefix, for entity-wide invalidation.
	DelPrefix(ctx context.Context, prefix string) error
}

// Keys used by the API handlers. Write paths invalidate the matching prefix.
const (
	KeyEmployees       = "tn:employees"
	KeyProjects        = "tn:projects"
	KeyMatrices        = "tn:matrices"
	KeyRecommendations = "tn:recommendations"
)
