package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories are written against.
// It is the full UniversalClient so single-node and miniredis clients fit.
type Client interface {
	redis.UniversalClient
}
