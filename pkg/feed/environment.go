package feed

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/redis_client"
	"github.com/travigo/nextbus/pkg/util"
)

const defaultHTTPTimeout = 30 * time.Second

// NewClientFromEnvironment builds a Client from the NEXTBUS_* variables, caching static
// documents in Redis when redis_client has been connected
func NewClientFromEnvironment() (*Client, error) {
	env := util.GetEnvironmentVariables()

	timeout, err := util.GetEnvironmentDuration("NEXTBUS_HTTP_TIMEOUT", defaultHTTPTimeout)
	if err != nil {
		return nil, err
	}

	client := NewClient(env["NEXTBUS_FEED_URL"], NewHTTPFetcher(timeout))

	if redis_client.Client != nil {
		expiration, err := util.GetEnvironmentDuration("NEXTBUS_CACHE_EXPIRATION", DefaultCacheExpiration)
		if err != nil {
			return nil, err
		}

		client.Cache = NewRedisDocumentCache(redis_client.Client, expiration)
		client.CacheExpiration = expiration

		log.Debug().Str("expiration", expiration.String()).Msg("Caching feed documents in Redis")
	}

	return client, nil
}
