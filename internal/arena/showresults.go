package arena

import (
	"context"
	"fmt"
	"math"
)

func showResults(
	ctx context.Context,
	config Config,
	gameResults <-chan gameResult,
) (Stats, error) {
	var logger = config.Logger
	var totalGames = 2 * len(config.Openings)
	var games = 0
	var wins, losses, draws int
	for gameResult := range gameResults {
		games++
		logger.Printf("Finished game %v of %v: %v {%v}\n",
			games, totalGames, gameResultString(gameResult.result), gameResult.comment)
		if gameResult.result == gameResultDraw {
			draws++
		} else if gameResult.result == gameResultWhiteWins && gameResult.gameInfo.engineAIsWhite ||
			gameResult.result == gameResultBlackWins && !gameResult.gameInfo.engineAIsWhite {
			wins++
		} else {
			losses++
		}
		var stat = computeStat(wins, losses, draws)
		logger.Printf("Score: %v - %v - %v  [%.3f] %v\n",
			wins, losses, draws, stat.WinningFraction, games)
		logger.Printf("Elo difference: %.1f, LOS: %.1f %%\n",
			stat.EloDifference, stat.Los*100)
		if config.Pgn != nil {
			if _, err := fmt.Fprintf(config.Pgn, "%v\n\n", gameResult.game); err != nil {
				return Stats{}, err
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}
	return computeStat(wins, losses, draws), nil
}

// https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) Stats {
	var stats = Stats{Wins: wins, Losses: losses, Draws: draws, Los: 0.5}
	var games = wins + losses + draws
	if games == 0 {
		return stats
	}
	stats.WinningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	stats.EloDifference = -math.Log(1/stats.WinningFraction-1) * 400 / math.Ln10
	if wins+losses != 0 {
		stats.Los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	}
	return stats
}

func gameResultString(v int) string {
	if v == gameResultWhiteWins {
		return "1-0"
	}
	if v == gameResultBlackWins {
		return "0-1"
	}
	if v == gameResultDraw {
		return "1/2-1/2"
	}
	return ""
}
