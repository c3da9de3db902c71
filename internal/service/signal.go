package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/joelraetz/folio"
)

// CommitChannel is the redis channel commit events fan out on.
const CommitChannel = "folio:commits"

type SignalService struct {
	rdb *redis.Client
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb: redisClient,
	}
}

// Publish broadcasts a commit event to every connected node.
func (s *SignalService) Publish(ctx context.Context, event folio.Event) error {

	jsonstr, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, CommitChannel, jsonstr).Err()
	if err != nil {
		return err
	}

	return nil
}

// Subscribe forwards commit events from redis to output until ctx is
// cancelled. Malformed payloads are skipped.
func (s *SignalService) Subscribe(ctx context.Context, output chan<- folio.Event) error {

	pubsub := s.rdb.Subscribe(ctx, CommitChannel)
	defer pubsub.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-pubsub.Channel():
			if !ok {
				return nil
			}
			var event folio.Event
			err := json.Unmarshal([]byte(msg.Payload), &event)
			if err != nil {
				continue
			}
			output <- event
		}
	}
}
