package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lk16/reversi/internal/services"
	"github.com/lk16/reversi/internal/session"
	"github.com/redis/go-redis/v9"
)

const (
	EventsChannelPrefix = "reversi:events:"
	GameKeyPrefix       = "reversi:games:"
	GameTTL             = 24 * time.Hour
)

// EventRepository publishes game events to Redis and keeps the latest snapshot of each game.
type EventRepository struct {
	redis *redis.Client
}

func NewEventRepositoryFromServices(services *services.Services) *EventRepository {
	return &EventRepository{
		redis: services.Redis,
	}
}

// EventsChannel returns the pub/sub channel for a game.
func EventsChannel(gameID string) string {
	return EventsChannelPrefix + gameID
}

// GameKey returns the hash key holding the latest snapshot of a game.
func GameKey(gameID string) string {
	return GameKeyPrefix + gameID
}

// Record publishes msg and stores its snapshot.
func (repo *EventRepository) Record(ctx context.Context, msg session.Message) error {
	jsonData, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	gameID := msg.Snapshot.ID

	err = repo.redis.Publish(ctx, EventsChannel(gameID), jsonData).Err()
	if err != nil {
		return fmt.Errorf("error publishing event: %w", err)
	}

	key := GameKey(gameID)

	_, err = repo.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, snapshotFields(msg))
		pipe.Expire(ctx, key, GameTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("error storing snapshot: %w", err)
	}

	return nil
}

func snapshotFields(msg session.Message) map[string]any {
	return map[string]any{
		"board":      msg.Snapshot.Board,
		"width":      msg.Snapshot.Width,
		"height":     msg.Snapshot.Height,
		"turn":       msg.Snapshot.Turn.String(),
		"finished":   msg.Snapshot.Finished,
		"last_event": string(msg.Event.Kind),
	}
}
