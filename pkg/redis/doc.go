// Package redis provides helpers for connecting to a Redis server.
//
// It wraps the go-redis client with a Connect function that retries
// until the server becomes ready, plus a health-check helper for
// liveness and readiness probes. Configuration is described by the
// Config struct whose fields are populated from environment variables
// via github.com/caarlos0/env.
//
// # Usage
//
//	var cfg redis.Config
//	if err := env.Parse(&cfg); err != nil {
//		panic(err)
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		panic(err)
//	}
//	defer client.Close()
//
//	checker := redis.Healthcheck(client)
//	if err := checker(ctx); err != nil {
//		// redis is not healthy
//	}
//
// Sentinel errors such as ErrRedisNotReady wrap the underlying
// go-redis errors using errors.Join for easy comparison.
package redis
