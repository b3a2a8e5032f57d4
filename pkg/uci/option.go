package uci

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tddfan/brainquest-sub000/pkg/engine"
)

type Option interface {
	UciName() string
	UciString() string
	Set(s string) error
}

type IntOption struct {
	Name    string
	Min     int
	Max     int
	Value   *int
	Changed func()
}

func (opt *IntOption) UciName() string {
	return opt.Name
}

func (opt *IntOption) UciString() string {
	return fmt.Sprintf("option name %v type %v default %v min %v max %v",
		opt.Name, "spin", *opt.Value, opt.Min, opt.Max)
}

func (opt *IntOption) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < opt.Min || v > opt.Max {
		return errors.New("argument out of range")
	}
	*opt.Value = v
	if opt.Changed != nil {
		opt.Changed()
	}
	return nil
}

type DifficultyOption struct {
	Name  string
	Value *engine.Difficulty
}

func (opt *DifficultyOption) UciName() string {
	return opt.Name
}

func (opt *DifficultyOption) UciString() string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "option name %v type %v default %v", opt.Name, "combo", *opt.Value)
	for d := engine.Easy; d <= engine.Hard; d++ {
		fmt.Fprintf(sb, " var %v", d)
	}
	return sb.String()
}

func (opt *DifficultyOption) Set(s string) error {
	var d, ok = engine.ParseDifficulty(s)
	if !ok {
		return fmt.Errorf("unknown difficulty %v", s)
	}
	*opt.Value = d
	return nil
}
