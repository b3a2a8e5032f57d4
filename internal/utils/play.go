package utils

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/tddfan/brainquest-sub000/pkg/common"
	"github.com/tddfan/brainquest-sub000/pkg/engine"
)

type IEngine interface {
	SelectMove(p common.Position, d engine.Difficulty) (common.Move, error)
}

// PlayCli plays the side to move of p as the human, reading moves in UCI
// notation from in, and answers every move with the engine.
func PlayCli(in io.Reader, out io.Writer, eng IEngine, difficulty engine.Difficulty, p common.Position) error {
	printBoard(out, p)
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			break
		}
		var move, err = common.FindMove(p, commandLine)
		if err != nil {
			fmt.Fprintln(out, "bad move")
			continue
		}
		if err := p.MakeMove(move); err != nil {
			return err
		}
		printBoard(out, p)
		if p.IsGameOver() {
			fmt.Fprintln(out, gameOverString(p))
			break
		}
		reply, err := eng.SelectMove(p, difficulty)
		if err != nil {
			return err
		}
		if reply == nil {
			return fmt.Errorf("no reply in unfinished game")
		}
		fmt.Fprintln(out, reply.String())
		if err := p.MakeMove(reply); err != nil {
			return fmt.Errorf("bad move %v: %w", reply, err)
		}
		printBoard(out, p)
		if p.IsGameOver() {
			fmt.Fprintln(out, gameOverString(p))
			break
		}
	}
	return scanner.Err()
}

func gameOverString(p common.Position) string {
	if p.IsCheckmate() {
		return "checkmate"
	}
	if p.IsStalemate() {
		return "stalemate"
	}
	return "draw"
}

func printBoard(out io.Writer, p common.Position) {
	for i := 0; i < 64; i++ {
		sq := common.FlipSquare(i)
		piece, _ := p.PieceAt(sq)
		fmt.Fprint(out, pieceString(piece, isDarkSquare(sq)))
		if common.File(sq) == 7 {
			fmt.Fprintln(out)
		}
	}
}

func isDarkSquare(sq int) bool {
	return (common.File(sq)+common.Rank(sq))%2 == 0
}

const (
	whiteKing   = "♔"
	whiteQueen  = "♕"
	whiteRook   = "♖"
	whiteBishop = "♗"
	whiteKnight = "♘"
	whitePawn   = "♙"
	blackKing   = "♚"
	blackQueen  = "♛"
	blackRook   = "♜"
	blackBishop = "♝"
	blackKnight = "♞"
	blackPawn   = "♟"
)

const (
	fgBlack   = 30
	bgWhite   = 47
	bgHiWhite = 107
)

var chessSymbols = [2][7]string{
	{" ", whitePawn, whiteKnight, whiteBishop, whiteRook, whiteQueen, whiteKing},
	{" ", blackPawn, blackKnight, blackBishop, blackRook, blackQueen, blackKing},
}

func pieceString(piece common.Piece, darkSquare bool) string {
	var s = " "
	if piece.Kind > common.Empty && piece.Kind <= common.King {
		s = chessSymbols[piece.Color][piece.Kind]
	}
	s += " "
	const fgColor = fgBlack
	var bgColor int
	if darkSquare {
		bgColor = bgWhite
	} else {
		bgColor = bgHiWhite
	}
	const escape = "\x1b"
	const reset = 0
	return fmt.Sprintf("%s[%s;%sm%s%s[%dm",
		escape, strconv.Itoa(fgColor), strconv.Itoa(bgColor), s, escape, reset)
}
