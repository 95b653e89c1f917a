package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"progression-service/internal/models"

	"github.com/redis/go-redis/v9"
)

// StageCache keeps zone stage listings in redis. Stage content is
// immutable outside admin writes, so listings cache well; every miss or
// redis error falls through to the database.
type StageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStageCache(client *redis.Client, ttl time.Duration) *StageCache {
	return &StageCache{client: client, ttl: ttl}
}

func zoneKey(zone string) string {
	if zone == "" {
		return "stages:all"
	}
	return "stages:zone:" + zone
}

func (c *StageCache) Get(ctx context.Context, zone string) ([]models.Stage, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, zoneKey(zone)).Bytes()
	if err != nil {
		return nil, false
	}
	var stages []models.Stage
	if err := json.Unmarshal(raw, &stages); err != nil {
		return nil, false
	}
	return stages, true
}

func (c *StageCache) Set(ctx context.Context, zone string, stages []models.Stage) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(stages)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, zoneKey(zone), raw, c.ttl).Err(); err != nil {
		log.Printf("stage cache set failed for zone %q: %v", zone, err)
	}
}

// Invalidate drops the zone listing and the all-zones listing after an
// admin stage write.
func (c *StageCache) Invalidate(ctx context.Context, zone string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, zoneKey(zone), zoneKey("")).Err(); err != nil {
		log.Printf("stage cache invalidate failed for zone %q: %v", zone, err)
	}
}
