package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/bedrock-effects/internal/repositories/snapshots"
)

func main() {
	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	repo, err := snapshots.NewRedisRepository(&snapshots.RedisRepoConfig{Client: client})
	if err != nil {
		log.Fatalf("Failed to create snapshot repository: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list snapshots: %v", err)
	}

	fmt.Printf("Found %d snapshots:\n", len(list))
	for _, snap := range list {
		fmt.Printf("  %s @ tick %d (updated %s, %d pending)\n",
			snap.EntityID, snap.Tick, snap.UpdatedAt.Format("15:04:05"), snap.PendingHandles)
		for _, c := range snap.Custom {
			fmt.Printf("    custom %-22s amp %d expires at tick %d\n", c.Type, c.Amplifier, c.ExpiresAtTick)
		}
		for defID, ticks := range snap.Visual {
			fmt.Printf("    visual %-22s %d ticks\n", defID, ticks)
		}
	}
}
