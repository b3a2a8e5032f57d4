package arena

import (
	"context"
	"errors"
	"io"
	"log"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Run plays EngineA against EngineB over all openings and returns the
// match statistics from EngineA's point of view.
func Run(ctx context.Context, config Config) (Stats, error) {
	if config.Concurrency < 1 || config.MaxPlies < 1 {
		return Stats{}, errors.New("arena: concurrency and max plies must be positive")
	}
	if len(config.Openings) == 0 {
		return Stats{}, errors.New("arena: no openings")
	}
	config = withDefaults(config)
	var logger = config.Logger
	logger.Println("arena started")
	defer logger.Println("arena finished")

	logger.Println("NumCPU", runtime.NumCPU(),
		"GOMAXPROCS", runtime.GOMAXPROCS(0),
		"gameConcurrency", config.Concurrency)
	logger.Printf("%v (%v) vs %v (%v), max plies %v\n",
		config.EngineA.Name, config.EngineA.Difficulty,
		config.EngineB.Name, config.EngineB.Difficulty,
		config.MaxPlies)

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var stats Stats

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, config.Openings, gameInfos)
	})

	g.Go(func() error {
		var err error
		stats, err = showResults(ctx, config, gameResults)
		return err
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < config.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, config, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

func playGames(
	ctx context.Context,
	config Config,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	var engineA = config.EngineA.NewEngine()
	var engineB = config.EngineB.NewEngine()
	for gameInfo := range gameInfos {
		var res, err = playGame(ctx, config, engineA, engineB, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}

func withDefaults(config Config) Config {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard, "", 0)
	}
	return config
}
