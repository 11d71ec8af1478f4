package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/freeeve/realmwright/internal/repository"
	"github.com/freeeve/realmwright/internal/repository/postgres"
	"github.com/freeeve/realmwright/internal/repository/redis"
	"github.com/freeeve/realmwright/internal/repository/sqlite"
)

func noop() {}

// openStore picks a match store from the URL scheme. An empty URL means no
// store. workers sizes the Postgres pool.
func openStore(ctx context.Context, dbURL string, workers int) (repository.MatchRepository, func(), error) {
	switch {
	case dbURL == "":
		return nil, noop, nil
	case strings.HasPrefix(dbURL, "sqlite://"):
		repo, err := sqlite.Open(strings.TrimPrefix(dbURL, "sqlite://"))
		if err != nil {
			return nil, noop, fmt.Errorf("sqlite store: %w", err)
		}
		return repo, func() { repo.Close() }, nil
	case strings.HasPrefix(dbURL, "postgres://"), strings.HasPrefix(dbURL, "postgresql://"):
		db, err := postgres.Connect(ctx, dbURL, workers)
		if err != nil {
			return nil, noop, err
		}
		return postgres.NewMatchRepo(db), func() { db.Close() }, nil
	}
	return nil, noop, fmt.Errorf("unsupported database URL %q", dbURL)
}

// openCache connects the world snapshot cache. An empty URL means no cache.
func openCache(redisURL string) (repository.WorldCache, func(), error) {
	if redisURL == "" {
		return nil, noop, nil
	}
	client, err := redis.NewClient(redisURL)
	if err != nil {
		return nil, noop, err
	}
	return client, func() { client.Close() }, nil
}
