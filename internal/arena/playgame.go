package arena

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/notnil/chess"
	"github.com/tddfan/brainquest-sub000/pkg/common"
	"github.com/tddfan/brainquest-sub000/pkg/engine"
	"github.com/tddfan/brainquest-sub000/pkg/rules/dragontooth"
)

func playGame(
	ctx context.Context,
	config Config,
	engineA, engineB *engine.Engine,
	info gameInfo,
) (gameResult, error) {

	config.Logger.Printf("Started game %v\n", info.gameNumber)

	var pos, err = dragontooth.NewPosition(info.opening)
	if err != nil {
		return gameResult{}, err
	}
	opt, err := chess.FEN(info.opening)
	if err != nil {
		return gameResult{}, err
	}
	var game = chess.NewGame(opt)
	addTags(game, config, info)

	for plies := 0; ; plies++ {
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}
		if game.Outcome() == chess.NoOutcome {
			claimDraw(game)
		}
		if game.Outcome() != chess.NoOutcome {
			return newGameResult(info, game, game.Method().String()), nil
		}
		if plies >= config.MaxPlies {
			game.Draw(chess.DrawOffer)
			return newGameResult(info, game, "max plies"), nil
		}

		var eng = engineB
		var difficulty = config.EngineB.Difficulty
		if (pos.SideToMove() == common.White) == info.engineAIsWhite {
			eng = engineA
			difficulty = config.EngineA.Difficulty
		}
		move, err := eng.SelectMove(pos, difficulty)
		if err != nil {
			return gameResult{}, err
		}
		if move == nil {
			return gameResult{}, errors.New("no move in unfinished game")
		}
		if err := pos.MakeMove(move); err != nil {
			return gameResult{}, err
		}
		m, err := chess.UCINotation{}.Decode(game.Position(), move.String())
		if err != nil {
			return gameResult{}, fmt.Errorf("bad move %v: %w", move, err)
		}
		if err := game.Move(m); err != nil {
			return gameResult{}, fmt.Errorf("bad move %v: %w", move, err)
		}
	}
}

// Threefold repetition and the 50 move rule are only claimable in a Game.
func claimDraw(game *chess.Game) {
	for _, method := range game.EligibleDraws() {
		if method == chess.ThreefoldRepetition || method == chess.FiftyMoveRule {
			game.Draw(method)
			return
		}
	}
}

func newGameResult(info gameInfo, game *chess.Game, comment string) gameResult {
	var result int
	switch game.Outcome() {
	case chess.WhiteWon:
		result = gameResultWhiteWins
	case chess.BlackWon:
		result = gameResultBlackWins
	default:
		result = gameResultDraw
	}
	game.AddTagPair("Result", gameResultString(result))
	return gameResult{gameInfo: info, game: game, comment: comment, result: result}
}

func addTags(game *chess.Game, config Config, info gameInfo) {
	var white, black = config.EngineA, config.EngineB
	if !info.engineAIsWhite {
		white, black = black, white
	}
	game.AddTagPair("Event", "brainquest arena")
	game.AddTagPair("Round", strconv.Itoa(info.gameNumber))
	game.AddTagPair("White", playerName(white))
	game.AddTagPair("Black", playerName(black))
	game.AddTagPair("SetUp", "1")
	game.AddTagPair("FEN", info.opening)
}

func playerName(p Player) string {
	return fmt.Sprintf("%v %v", p.Name, p.Difficulty)
}
