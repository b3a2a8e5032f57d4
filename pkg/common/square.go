package common

import "strings"

const SquareNone = -1

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

// FlipSquare maps a1 to a8, h1 to h8.
func FlipSquare(sq int) int {
	return sq ^ 56
}

// MirrorSquare maps a square to its point reflection through the board centre.
func MirrorSquare(sq int) int {
	return 63 - sq
}

func File(sq int) int {
	return sq & 7
}

func Rank(sq int) int {
	return sq >> 3
}

func MakeSquare(file, rank int) int {
	return (rank << 3) | file
}

func SquareName(sq int) string {
	if sq < 0 || sq >= 64 {
		return "-"
	}
	var file = fileNames[File(sq)]
	var rank = rankNames[Rank(sq)]
	return string(file) + string(rank)
}

func ParseSquare(s string) int {
	if len(s) != 2 {
		return SquareNone
	}
	var file = strings.IndexByte(fileNames, s[0])
	var rank = strings.IndexByte(rankNames, s[1])
	if file < 0 || rank < 0 {
		return SquareNone
	}
	return MakeSquare(file, rank)
}
