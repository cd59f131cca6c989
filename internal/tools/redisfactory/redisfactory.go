package redisfactory

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// One connection per concern. If the responses cache ever has to be broken
// up per deployment a new function should be introduced.

type Factory struct {
	responsesCache *redis.Client
}

func New() *Factory {
	uri := os.Getenv("RESPONSES_CACHE_REDIS_URI")
	if uri == "" {
		// cache disabled without a URI
		return &Factory{}
	}

	opt, err := redis.ParseURL(uri)
	if err != nil {
		panic(err)
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	return &Factory{
		responsesCache: redis.NewClient(opt),
	}
}

func (f *Factory) ResponsesCacheClient() *redis.Client {
	return f.responsesCache
}
