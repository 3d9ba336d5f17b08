package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/bedrock-effects/internal/config"
	"github.com/KirkDiggler/bedrock-effects/internal/effects/catalog"
	"github.com/KirkDiggler/bedrock-effects/internal/handlers/discord"
	"github.com/KirkDiggler/bedrock-effects/internal/host"
	"github.com/KirkDiggler/bedrock-effects/internal/repositories/snapshots"
	"github.com/KirkDiggler/bedrock-effects/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	providerConfig := &services.ProviderConfig{
		AnimationNamespace:    cfg.Effects.AnimationNamespace,
		SnapshotIntervalTicks: cfg.Snapshot.IntervalTicks,
	}

	if cfg.Effects.CatalogPath != "" {
		cat, loadErr := catalog.LoadFile(cfg.Effects.CatalogPath)
		if loadErr != nil {
			log.Fatalf("Failed to load catalog %s: %v", cfg.Effects.CatalogPath, loadErr)
		}
		providerConfig.Catalog = cat
		log.Printf("Loaded %d definitions from %s", len(cat.IDs()), cfg.Effects.CatalogPath)
	} else {
		log.Println("Using the embedded default catalog")
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory snapshots")
		} else {
			redisClient = redis.NewClient(opts)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			pingErr := redisClient.Ping(ctx).Err()
			cancel()

			if pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory snapshots")
				_ = redisClient.Close()
				redisClient = nil
			} else {
				repo, repoErr := snapshots.NewRedisRepository(&snapshots.RedisRepoConfig{
					Client: redisClient,
					TTL:    cfg.Snapshot.TTL,
				})
				if repoErr != nil {
					log.Fatalf("Failed to create snapshot repository: %v", repoErr)
				}
				providerConfig.SnapshotRepository = repo
				log.Println("Using Redis for snapshots")
			}
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory snapshots")
	}

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create service provider: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	provider.Start(ctx)
	spawnDemoEntities(provider)

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		provider.Loop.Run(ctx, cfg.Effects.TickRate)
	}()
	log.Printf("Tick loop running at %d ticks per second", cfg.Effects.TickRate)

	if cfg.Discord.Enabled() {
		dg, dgErr := startDiscord(cfg, provider)
		if dgErr != nil {
			log.Printf("Discord debug surface disabled: %v", dgErr)
		} else {
			defer func() {
				if closeErr := dg.Close(); closeErr != nil {
					log.Printf("Failed to close Discord connection: %v", closeErr)
				}
			}()
		}
	} else {
		log.Println("No DISCORD_TOKEN/DISCORD_APP_ID, Discord debug surface disabled")
	}

	fmt.Println("Effect engine is now running. Press CTRL-C to exit.")
	<-ctx.Done()

	fmt.Println("Shutting down...")
	<-loopDone
	provider.Stop()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}

// spawnDemoEntities gives the debug surface something to work with
func spawnDemoEntities(provider *services.Provider) {
	w := provider.World

	player := w.Spawn("minecraft:player", true, host.Vector3{Y: 64})
	for x := -3; x <= 3; x++ {
		for z := -3; z <= 3; z++ {
			_ = w.SetBlock(host.Vector3{X: float64(x), Y: 63, Z: float64(z)}, "minecraft:water")
		}
	}
	for x := -2; x <= 2; x++ {
		at := host.Vector3{X: float64(x), Y: 64, Z: -2}
		if err := w.SetBlock(at, "minecraft:wheat"); err == nil {
			_ = w.SetGrowthState(at, 0)
		}
	}
	zombie := w.Spawn("minecraft:zombie", false, host.Vector3{X: 2, Y: 64})
	item := w.Spawn("minecraft:item", false, host.Vector3{X: 6, Y: 64})

	log.Printf("Demo entities: player=%s zombie=%s item=%s", player.ID(), zombie.ID(), item.ID())
}

func startDiscord(cfg *config.Config, provider *services.Provider) (*discordgo.Session, error) {
	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: provider,
	})
	dg.AddHandler(discord.RecoverMiddleware("effects", handler.HandleInteraction))

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("failed to open Discord connection: %w", err)
	}

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		_ = dg.Close()
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}
	return dg, nil
}
