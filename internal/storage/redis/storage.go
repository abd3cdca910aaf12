package redis

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/machgame/internal/model"
	"github.com/mcoot/machgame/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Reset deletes every key under the matchmaking prefix
func (s *Storage) Reset(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, allKeysPattern(), 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func idField[T ~uint64](id T) string {
	return strconv.FormatUint(uint64(id), 10)
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.PlayerRecord) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, playersKey(), idField(player.ID), data).Err()
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.PlayerRecord, error) {
	data, err := s.client.HGet(ctx, playersKey(), idField(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.PlayerRecord
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) CountPlayers(ctx context.Context) (int, error) {
	n, err := s.client.HLen(ctx, playersKey()).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Waiting match operations

func (s *Storage) AppendWaitingMatch(ctx context.Context, match *model.WaitingMatch) error {
	data, err := json.Marshal(match)
	if err != nil {
		return err
	}
	return s.client.RPush(ctx, waitingKey(), data).Err()
}

func (s *Storage) ListWaitingMatches(ctx context.Context) ([]*model.WaitingMatch, error) {
	values, err := s.client.LRange(ctx, waitingKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	matches := make([]*model.WaitingMatch, 0, len(values))
	for _, val := range values {
		var match model.WaitingMatch
		if err := json.Unmarshal([]byte(val), &match); err != nil {
			return nil, fmt.Errorf("decode waiting match: %w", err)
		}
		matches = append(matches, &match)
	}
	return matches, nil
}

func (s *Storage) ActivateMatch(ctx context.Context, match *model.ActiveMatch) error {
	raw, err := s.findWaitingRaw(ctx, match.ID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(match)
	if err != nil {
		return err
	}

	// Use transaction pipeline so the match is never both waiting and active
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, waitingKey(), 1, raw)
		pipe.HSet(ctx, activeMatchesKey(), idField(match.ID), data)
		return nil
	})
	return err
}

// findWaitingRaw returns the stored JSON of the waiting entry with the given id.
// Entries carry a unique id, so the raw value identifies exactly one list element.
func (s *Storage) findWaitingRaw(ctx context.Context, id model.MatchID) (string, error) {
	values, err := s.client.LRange(ctx, waitingKey(), 0, -1).Result()
	if err != nil {
		return "", err
	}

	for _, val := range values {
		var match model.WaitingMatch
		if err := json.Unmarshal([]byte(val), &match); err != nil {
			continue // Skip invalid data
		}
		if match.ID == id {
			return val, nil
		}
	}
	return "", model.ErrMatchNotFound
}

// Active match operations

func (s *Storage) SaveActiveMatch(ctx context.Context, match *model.ActiveMatch) error {
	data, err := json.Marshal(match)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, activeMatchesKey(), idField(match.ID), data).Err()
}

func (s *Storage) GetActiveMatch(ctx context.Context, id model.MatchID) (*model.ActiveMatch, error) {
	data, err := s.client.HGet(ctx, activeMatchesKey(), idField(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMatchNotFound
		}
		return nil, err
	}

	var match model.ActiveMatch
	if err := json.Unmarshal(data, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (s *Storage) ListActiveMatches(ctx context.Context) ([]*model.ActiveMatch, error) {
	values, err := s.client.HVals(ctx, activeMatchesKey()).Result()
	if err != nil {
		return nil, err
	}

	matches := make([]*model.ActiveMatch, 0, len(values))
	for _, val := range values {
		var match model.ActiveMatch
		if err := json.Unmarshal([]byte(val), &match); err != nil {
			return nil, fmt.Errorf("decode active match: %w", err)
		}
		matches = append(matches, &match)
	}

	slices.SortFunc(matches, func(a, b *model.ActiveMatch) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return matches, nil
}
