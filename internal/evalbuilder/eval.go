package evalbuilder

import (
	"fmt"

	"github.com/tddfan/brainquest-sub000/pkg/engine"
	material "github.com/tddfan/brainquest-sub000/pkg/eval/material"
	pst "github.com/tddfan/brainquest-sub000/pkg/eval/pst"
)

func Get(key string) (func() engine.Evaluator, error) {
	switch key {
	case "", "pst":
		return func() engine.Evaluator {
			return pst.NewEvaluationService()
		}, nil
	case "material":
		return func() engine.Evaluator {
			return material.NewEvaluationService()
		}, nil
	}
	return nil, fmt.Errorf("bad eval %v", key)
}
