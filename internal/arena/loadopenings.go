package arena

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/notnil/chess"
)

//go:embed openings.txt
var openingsTxt string

func loadOpenings(
	ctx context.Context,
	openings []string,
	gameInfos chan<- gameInfo,
) error {
	for i, fen := range openings {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: fen, engineAIsWhite: true, gameNumber: 1 + 2*i}:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: fen, engineAIsWhite: false, gameNumber: 1 + 2*i + 1}:
		}
	}
	return nil
}

// DefaultOpenings returns the built in opening book as FENs.
func DefaultOpenings() ([]string, error) {
	return ReadOpenings(strings.NewReader(openingsTxt))
}

// ReadOpenings reads one opening per line, either a FEN or a sequence of
// moves in SAN from the initial position. Empty lines and // comments are
// skipped.
func ReadOpenings(r io.Reader) ([]string, error) {
	var result []string
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		var fen, err = parseOpening(line)
		if err != nil {
			return nil, err
		}
		result = append(result, fen)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func parseOpening(opening string) (string, error) {
	if strings.Count(opening, "/") == 7 {
		var opt, err = chess.FEN(opening)
		if err != nil {
			return "", err
		}
		return chess.NewGame(opt).Position().String(), nil
	}
	var game = chess.NewGame()
	for _, san := range strings.Fields(opening) {
		if strings.HasSuffix(san, ".") {
			continue
		}
		if err := game.MoveStr(san); err != nil {
			return "", fmt.Errorf("opening %q: %w", opening, err)
		}
	}
	return game.Position().String(), nil
}
