package uci

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/tddfan/brainquest-sub000/pkg/common"
	"github.com/tddfan/brainquest-sub000/pkg/engine"
)

type Engine interface {
	Search(p common.Position) (common.SearchInfo, error)
}

type PositionBuilder func(fen string) (common.Position, error)

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type Protocol struct {
	name        string
	author      string
	version     string
	options     []Option
	engine      Engine
	newPosition PositionBuilder
	position    common.Position
	out         io.Writer
}

func New(name, author, version string, engine Engine, newPosition PositionBuilder, options []Option) *Protocol {
	var initPosition, err = newPosition(InitialPositionFen)
	if err != nil {
		panic(err)
	}
	return &Protocol{
		name:        name,
		author:      author,
		version:     version,
		engine:      engine,
		newPosition: newPosition,
		options:     options,
		position:    initPosition,
		out:         os.Stdout,
	}
}

func (uci *Protocol) Run(logger *log.Logger) {
	uci.RunWith(os.Stdin, os.Stdout, logger)
}

// RunWith reads commands from in until quit or EOF. Search is synchronous,
// so stop has nothing to interrupt.
func (uci *Protocol) RunWith(in io.Reader, out io.Writer, logger *log.Logger) {
	uci.out = out
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			return
		}
		var err = uci.handle(commandLine)
		if err != nil {
			logger.Println(err)
		}
	}
}

func (uci *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	var h func(fields []string) error

	switch commandName {
	case "uci":
		h = uci.uciCommand
	case "setoption":
		h = uci.setOptionCommand
	case "isready":
		h = uci.isReadyCommand
	case "position":
		h = uci.positionCommand
	case "go":
		h = uci.goCommand
	case "ucinewgame", "stop":
		return nil
	}

	if h == nil {
		return errors.New("command not found")
	}

	return h(fields)
}

func (uci *Protocol) uciCommand(fields []string) error {
	fmt.Fprintf(uci.out, "id name %s %s\n", uci.name, uci.version)
	fmt.Fprintf(uci.out, "id author %s\n", uci.author)
	for _, option := range uci.options {
		fmt.Fprintln(uci.out, option.UciString())
	}
	fmt.Fprintln(uci.out, "uciok")
	return nil
}

func (uci *Protocol) setOptionCommand(fields []string) error {
	if len(fields) < 4 {
		return errors.New("invalid setoption arguments")
	}
	var name, value = fields[1], fields[3]
	for _, option := range uci.options {
		if strings.EqualFold(option.UciName(), name) {
			return option.Set(value)
		}
	}
	return errors.New("unhandled option")
}

func (uci *Protocol) isReadyCommand(fields []string) error {
	fmt.Fprintln(uci.out, "readyok")
	return nil
}

func (uci *Protocol) positionCommand(fields []string) error {
	var args = fields
	if len(args) == 0 {
		return errors.New("unknown position command")
	}
	var token = args[0]
	var fen string
	var movesIndex = findIndexString(args, "moves")
	if token == "startpos" {
		fen = InitialPositionFen
	} else if token == "fen" {
		if movesIndex == -1 {
			fen = strings.Join(args[1:], " ")
		} else {
			fen = strings.Join(args[1:movesIndex], " ")
		}
	} else {
		return errors.New("unknown position command")
	}
	var p, err = uci.newPosition(fen)
	if err != nil {
		return err
	}
	if movesIndex >= 0 && movesIndex+1 < len(args) {
		if err := common.ApplyMoves(p, args[movesIndex+1:]); err != nil {
			return fmt.Errorf("parse move failed: %w", err)
		}
	}
	uci.position = p
	return nil
}

func (uci *Protocol) goCommand(fields []string) error {
	var si, err = uci.engine.Search(uci.position)
	if err != nil {
		fmt.Fprintln(uci.out, "bestmove 0000")
		return err
	}
	if si.Move == nil {
		fmt.Fprintln(uci.out, "bestmove 0000")
		return nil
	}
	fmt.Fprintln(uci.out, searchInfoToUci(si, uci.position.SideToMove()))
	fmt.Fprintf(uci.out, "bestmove %v\n", si.Move)
	return nil
}

// searchInfoToUci reports the score from the side to move, as UCI expects.
func searchInfoToUci(si common.SearchInfo, side common.Color) string {
	var sb = &strings.Builder{}
	if si.Random {
		fmt.Fprintf(sb, "info string random move")
		return sb.String()
	}
	var score = si.Score
	if side == common.Black {
		score = -score
	}
	fmt.Fprintf(sb, "info depth %v", si.Depth)
	if mate, ok := engine.MateIn(score, si.Depth); ok {
		fmt.Fprintf(sb, " score mate %v", mate)
	} else {
		fmt.Fprintf(sb, " score cp %v", score)
	}
	fmt.Fprintf(sb, " nodes %v time %v", si.Nodes, si.Time.Milliseconds())
	if len(si.MainLine) != 0 {
		fmt.Fprintf(sb, " pv")
		for _, move := range si.MainLine {
			sb.WriteString(" ")
			sb.WriteString(move.String())
		}
	}
	return sb.String()
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
