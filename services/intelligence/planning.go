package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mehfil/models"

	"github.com/go-redis/redis/v8"
)

const planningPrefix = "ai:plan:"

// RedisPlanningStore keeps planning state in Redis with a sliding TTL.
type RedisPlanningStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPlanningStore(client *redis.Client, ttl time.Duration) *RedisPlanningStore {
	return &RedisPlanningStore{client: client, ttl: ttl}
}

func (s *RedisPlanningStore) Load(ctx context.Context, key string) (models.PlanningState, error) {
	var state models.PlanningState
	data, err := s.client.Get(ctx, planningPrefix+key).Bytes()
	if err == redis.Nil {
		return state, nil
	}
	if err != nil {
		return state, fmt.Errorf("failed to load planning state: %w", err)
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return models.PlanningState{}, fmt.Errorf("failed to decode planning state: %w", err)
	}
	return state, nil
}

func (s *RedisPlanningStore) Save(ctx context.Context, key string, state models.PlanningState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, planningPrefix+key, b, s.ttl).Err()
}

// planningKey scopes memory to the caller so sessions cannot read each other.
func planningKey(sessionID, userID string) string {
	if userID == "" {
		userID = "guest"
	}
	return userID + ":" + sessionID
}
