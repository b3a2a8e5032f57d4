package tactic

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/notnil/chess"
)

// EpdItem is one test position with its accepted best moves in UCI notation.
type EpdItem struct {
	Content   string
	Fen       string
	BestMoves []string
}

func LoadEpd(filePath string, logger *log.Logger) ([]EpdItem, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadEpd(file, logger)
}

// ReadEpd parses "<fen> bm <san>...;" lines. Lines that fail to parse are
// logged and skipped.
func ReadEpd(r io.Reader, logger *log.Logger) ([]EpdItem, error) {
	var result []EpdItem
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var test, err = parseEpdTest(line)
		if err != nil {
			logger.Println(err)
			continue
		}
		result = append(result, test)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func parseEpdTest(s string) (EpdItem, error) {
	var bmBegin = strings.Index(s, " bm ")
	if bmBegin == -1 {
		return EpdItem{}, fmt.Errorf("missing best move %v", s)
	}
	var bmEnd = strings.Index(s[bmBegin:], ";")
	if bmEnd == -1 {
		bmEnd = len(s)
	} else {
		bmEnd += bmBegin
	}
	var fen = strings.TrimSpace(s[:bmBegin])
	if len(strings.Fields(fen)) == 4 {
		fen += " 0 1"
	}
	var sBestMoves = strings.Fields(s[bmBegin:bmEnd])[1:]

	var opt, err = chess.FEN(fen)
	if err != nil {
		return EpdItem{}, err
	}
	var pos = chess.NewGame(opt).Position()

	var bestMoves []string
	for _, sBestMove := range sBestMoves {
		var move, err = chess.AlgebraicNotation{}.Decode(pos, sBestMove)
		if err != nil {
			return EpdItem{}, fmt.Errorf("parse move failed %v: %w", s, err)
		}
		bestMoves = append(bestMoves, chess.UCINotation{}.Encode(pos, move))
	}
	if len(bestMoves) == 0 {
		return EpdItem{}, errors.New("empty best moves " + s)
	}

	return EpdItem{
		Content:   s,
		Fen:       fen,
		BestMoves: bestMoves,
	}, nil
}
