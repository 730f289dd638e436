package redis_client

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/util"
)

var Client *redis.Client

const defaultConnectionPassword = ""
const defaultDatabase = 0

// Connect sets up the shared client. Redis is optional so nothing is done when
// NEXTBUS_REDIS_ADDRESS is not set.
func Connect() error {
	password := defaultConnectionPassword
	database := defaultDatabase

	env := util.GetEnvironmentVariables()

	address := env["NEXTBUS_REDIS_ADDRESS"]
	if address == "" {
		log.Debug().Msg("Skipping Redis setup")
		return nil
	}

	if env["NEXTBUS_REDIS_PASSWORD"] != "" {
		password = env["NEXTBUS_REDIS_PASSWORD"]
	}

	if env["NEXTBUS_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["NEXTBUS_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return err
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	statusCmd := client.Ping(context.Background())
	if err := statusCmd.Err(); err != nil {
		return err
	}

	Client = client

	log.Info().Str("address", address).Msg("Redis client setup")

	return nil
}
