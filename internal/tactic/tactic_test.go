package tactic

import (
	"bytes"
	"io"
	"log"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/tddfan/brainquest-sub000/pkg/engine"
	"github.com/tddfan/brainquest-sub000/pkg/eval/pst"
)

var discard = log.New(io.Discard, "", 0)

func TestParseEpdTest(t *testing.T) {
	var tests = []struct {
		line      string
		fen       string
		bestMoves []string
	}{
		{"6k1/5ppp/8/8/8/8/8/R5K1 w - - bm Ra8#; id \"back rank\";",
			"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", []string{"a1a8"}},
		{"4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1 bm O-O Rh8+;",
			"4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", []string{"e1g1", "h1h8"}},
		{"8/P6k/8/8/8/8/8/K7 w - - bm a8=Q",
			"8/P6k/8/8/8/8/8/K7 w - - 0 1", []string{"a7a8q"}},
	}
	for _, test := range tests {
		var item, err = parseEpdTest(test.line)
		if err != nil {
			t.Error(test.line, err)
			continue
		}
		if item.Fen != test.fen || !reflect.DeepEqual(item.BestMoves, test.bestMoves) {
			t.Error(test.line, item)
		}
	}
}

func TestParseEpdTestErrors(t *testing.T) {
	var tests = []string{
		"6k1/5ppp/8/8/8/8/8/R5K1 w - -",
		"6k1/5ppp/8/8/8/8/8/R5K1 w - - bm ;",
		"6k1/5ppp/8/8/8/8/8/R5K1 w - - bm Rh8;",
		"not a fen bm e4;",
	}
	for _, test := range tests {
		if _, err := parseEpdTest(test); err == nil {
			t.Error(test)
		}
	}
}

func TestReadEpdSkipsBadLines(t *testing.T) {
	var input = strings.Join([]string{
		"6k1/5ppp/8/8/8/8/8/R5K1 w - - bm Ra8#;",
		"",
		"garbage",
		"rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - bm Qh4#;",
	}, "\n")
	var buf bytes.Buffer
	var items, err = ReadEpd(strings.NewReader(input), log.New(&buf, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatal(items)
	}
	if !strings.Contains(buf.String(), "garbage") {
		t.Error("bad line not logged", buf.String())
	}
}

func TestSolveTactic(t *testing.T) {
	var tests, err = LoadEpd("testdata/mates.epd", discard)
	if err != nil {
		t.Fatal(err)
	}
	if len(tests) != 3 {
		t.Fatal(tests)
	}
	var eng = engine.NewEngine(pst.NewEvaluationService(), rand.New(rand.NewSource(1)))
	result, err := SolveTactic(tests, eng, engine.Medium, discard)
	if err != nil {
		t.Fatal(err)
	}
	if result != (Result{Solved: 3, Total: 3}) {
		t.Error(result)
	}
}

func TestLoadEpdMissingFile(t *testing.T) {
	if _, err := LoadEpd("testdata/missing.epd", discard); err == nil {
		t.Error("missing file loaded")
	}
}
