package tfl

import (
	"context"
	"net/http"

	"bitbucket.org/crgw/ulez-hub/internal/schema"
	"bitbucket.org/crgw/ulez-hub/internal/tools/caching"
	"bitbucket.org/crgw/ulez-hub/internal/tools/slowlog"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type tflVrmLookup struct {
	redis         *redis.Client
	httpTransport *http.Transport
}

func (t *tflVrmLookup) CheckVrm(ctx context.Context, params schema.CheckRequestParams, logger *zerolog.Logger) (schema.CheckResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)

	checkRequest := checkRequest{
		params:        params,
		configuration: params.Configuration,
		logger:        logger,
		slowLogger:    slowLogger,
		cache:         caching.NewRedisCache(t.redis),
	}

	return checkRequest.Execute(ctx, t.httpTransport)
}

// New builds the TfL platform. A nil redis client disables the opt-in
// response cache, which is how the interactive checker runs.
func New(redisClient *redis.Client) *tflVrmLookup {
	transport := http.DefaultTransport.(*http.Transport)
	// improves durations a lot
	transport.DisableKeepAlives = true

	return &tflVrmLookup{
		redis:         redisClient,
		httpTransport: transport,
	}
}
