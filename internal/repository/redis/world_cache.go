package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Key patterns for live match data.
func snapshotKey(matchID string) string { return "match:" + matchID + ":world" }
func turnKey(matchID string) string     { return "match:" + matchID + ":turn" }

// SetSnapshot stores the latest world JSON and bumps the match's turn counter.
func (c *Client) SetSnapshot(ctx context.Context, matchID string, snapshot json.RawMessage) error {
	pipe := c.rdb.TxPipeline()
	pipe.Set(ctx, snapshotKey(matchID), []byte(snapshot), c.ttl)
	pipe.Incr(ctx, turnKey(matchID))
	if c.ttl > 0 {
		pipe.Expire(ctx, turnKey(matchID), c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("set snapshot: %w", err)
	}
	return nil
}

// GetSnapshot returns the latest world JSON, or nil if none is stored.
func (c *Client) GetSnapshot(ctx context.Context, matchID string) (json.RawMessage, error) {
	data, err := c.rdb.Get(ctx, snapshotKey(matchID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return json.RawMessage(data), nil
}

// SnapshotCount returns how many snapshots have been written for a match.
func (c *Client) SnapshotCount(ctx context.Context, matchID string) (int64, error) {
	n, err := c.rdb.Get(ctx, turnKey(matchID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("snapshot count: %w", err)
	}
	return n, nil
}

// DeleteMatchData removes every key for a match.
func (c *Client) DeleteMatchData(ctx context.Context, matchID string) error {
	return c.rdb.Del(ctx, snapshotKey(matchID), turnKey(matchID)).Err()
}
