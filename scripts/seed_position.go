// +build ignore

// Manual smoke tool: seeds a resolved position record for a session
// directly into Redis, so distance sorting can be exercised against a
// running instance without a geolocation-capable client.
//
//	go run scripts/seed_position.go -session <id> -lat -23.55 -lon -46.63
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type userPosition struct {
	SessionID   string      `json:"session_id"`
	State       string      `json:"state"`
	Coordinates coordinates `json:"coordinates"`
	RequestedAt time.Time   `json:"requested_at"`
	ResolvedAt  time.Time   `json:"resolved_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address")
	session := flag.String("session", "", "session id (generated when empty)")
	lat := flag.Float64("lat", -23.5505, "latitude to seed")
	lon := flag.Float64("lon", -46.6333, "longitude to seed")
	ttl := flag.Duration("ttl", 30*time.Minute, "record TTL")
	flag.Parse()

	if *session == "" {
		*session = uuid.NewString()
	}

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis ping failed: %v", err)
	}

	now := time.Now().UTC()
	pos := userPosition{
		SessionID:   *session,
		State:       "resolved",
		Coordinates: coordinates{Latitude: *lat, Longitude: *lon},
		RequestedAt: now,
		ResolvedAt:  now,
	}

	data, err := json.Marshal(pos)
	if err != nil {
		log.Fatalf("marshal position: %v", err)
	}

	key := fmt.Sprintf("position:%s", *session)
	if err := client.Set(ctx, key, data, *ttl).Err(); err != nil {
		log.Fatalf("seed position: %v", err)
	}

	fmt.Printf("Seeded %s (%.4f, %.4f), ttl %s\n", key, *lat, *lon, *ttl)
	fmt.Printf("Try: curl 'http://localhost:8080/api/v1/categorias/pets/locais?sort=distance-asc&session=%s'\n", *session)
}
