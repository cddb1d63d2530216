package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/plus3/tabula/ecs"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	maxComponents := flag.Int("max-components", 5, "The maximum number of components per spawned entity.")
	spawnsPerFrame := flag.Int("spawns-per-frame", 0, "Entities to spawn each frame for churn.")
	despawnsPerFrame := flag.Int("despawns-per-frame", 0, "Entities to despawn each frame for churn.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	profilePath := flag.String("profile", "", "Optional YAML profile overriding the other settings.")
	logLevel := flag.String("log-level", "info", "Log level (trace, debug, info, warn, error).")
	flag.Parse()

	cfg, err := loadConfig(StressConfig{
		Duration:         *duration,
		Entities:         *entityCount,
		MaxComponents:    *maxComponents,
		SpawnsPerFrame:   *spawnsPerFrame,
		DespawnsPerFrame: *despawnsPerFrame,
		GCPauseMetrics:   *gcPauseMetrics,
		LogLevel:         *logLevel,
	}, *profilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ecs-stress: %v\n", err)
		os.Exit(1)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	log.Info().Msg("starting ECS stress test")

	// 1. Set up the world and scheduler
	world := ecs.NewWorld(ecs.WithLogger(log))
	RegisterAllGeneratedComponents(world)
	scheduler := ecs.NewScheduler(world)
	RegisterAllGeneratedSystems(scheduler)
	if cfg.SpawnsPerFrame > 0 || cfg.DespawnsPerFrame > 0 {
		scheduler.Register(&churnSystem{
			spawnsPerFrame:   cfg.SpawnsPerFrame,
			despawnsPerFrame: cfg.DespawnsPerFrame,
			maxComponents:    cfg.MaxComponents,
		})
	}

	// 2. Populate the world with initial entities
	log.Info().Int("entities", cfg.Entities).Msg("populating world")
	for i := 0; i < cfg.Entities; i++ {
		// Spawn an entity with 1 to maxComponents random components
		numComponents := rand.Intn(cfg.MaxComponents) + 1
		SpawnRandomEntity(world, numComponents)
	}
	log.Info().Msg("population complete")

	// 3. Run the simulation loop
	report := &Report{
		Duration:       cfg.Duration,
		Entities:       cfg.Entities,
		Components:     GeneratedComponentCount,
		Systems:        GeneratedSystemCount,
		GCPauseMetrics: cfg.GCPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info().Dur("duration", cfg.Duration).Msg("running simulation")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(float64(deltaTime) / float64(time.Second))
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.World = world.Stats()
	report.Scheduler = scheduler.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info().Msg("simulation finished")

	// 4. Generate report to console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to generate report")
	}
	fmt.Println("--- End of Report ---")

	log.Info().Msg("stress test complete")
}

// churnSystem spawns and despawns entities each frame to exercise index
// recycling and table row removal under load.
type churnSystem struct {
	spawnsPerFrame   int
	despawnsPerFrame int
	maxComponents    int
}

func (c *churnSystem) Execute(frame *ecs.UpdateFrame) {
	alive := frame.World.Entities()
	for i := 0; i < c.despawnsPerFrame && len(alive) > 0; i++ {
		frame.Commands.Despawn(alive[rand.Intn(len(alive))])
	}
	for i := 0; i < c.spawnsPerFrame; i++ {
		n := rand.Intn(c.maxComponents) + 1
		frame.Commands.Spawn(RandomComponentSet(n)...)
	}
}
