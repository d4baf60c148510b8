// Package sensor decodes raw sensor packages into workout trainings.
package sensor

import (
	"fmt"
	"math"

	"github.com/claude/ftracker/internal/workout"
)

// Code tags a sensor package with the workout kind that produced it.
// The set is closed; ReadPackage rejects anything else.
type Code string

const (
	CodeSwimming Code = "SWM"
	CodeRunning  Code = "RUN"
	CodeWalking  Code = "WLK"
)

// Package is one record handed over by the sensor feed: a workout code
// plus the positional numeric readings for that workout kind.
//
//	RUN: action count, duration h, weight kg
//	WLK: action count, duration h, weight kg, height cm
//	SWM: action count, duration h, weight kg, pool length m, pool laps
type Package struct {
	Type Code      `yaml:"type"`
	Data []float64 `yaml:"data"`
}

// ReadPackage constructs the training matching the package code.
// Construction is all-or-nothing: a wrong value count or a fractional
// value in an integer slot fails the whole record, and nothing is
// defaulted.
func ReadPackage(p Package) (workout.Training, error) {
	switch p.Type {
	case CodeSwimming:
		if err := wantValues(p, 5); err != nil {
			return nil, err
		}
		action, err := intValue(p, 0, "action count")
		if err != nil {
			return nil, err
		}
		countPool, err := intValue(p, 4, "pool lap count")
		if err != nil {
			return nil, err
		}
		return workout.NewSwimming(action, p.Data[1], p.Data[2], p.Data[3], countPool), nil

	case CodeRunning:
		if err := wantValues(p, 3); err != nil {
			return nil, err
		}
		action, err := intValue(p, 0, "action count")
		if err != nil {
			return nil, err
		}
		return workout.NewRunning(action, p.Data[1], p.Data[2]), nil

	case CodeWalking:
		if err := wantValues(p, 4); err != nil {
			return nil, err
		}
		action, err := intValue(p, 0, "action count")
		if err != nil {
			return nil, err
		}
		return workout.NewSportsWalking(action, p.Data[1], p.Data[2], p.Data[3]), nil

	default:
		return nil, fmt.Errorf("%s is not a supported workout type (try one of these: %s, %s, %s)",
			p.Type, CodeSwimming, CodeRunning, CodeWalking)
	}
}

func wantValues(p Package, n int) error {
	if len(p.Data) != n {
		return fmt.Errorf("constructing %s training: want %d values, got %d", p.Type, n, len(p.Data))
	}
	return nil
}

func intValue(p Package, i int, name string) (int, error) {
	v := p.Data[i]
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("constructing %s training: %s must be an integer, got %v", p.Type, name, v)
	}
	return int(v), nil
}
