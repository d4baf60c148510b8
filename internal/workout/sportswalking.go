package workout

import "math"

// Calorie coefficients calibrated for sports walking; not configurable.
const (
	walkWeightMultiplier = 0.035
	walkSpeedMultiplier  = 0.029
)

// SportsWalking is a step-counted walking workout. Its calorie formula
// additionally needs the athlete's height.
type SportsWalking struct {
	training
	height float64 // cm, must be nonzero (divides the speed term)
}

// NewSportsWalking builds a walking workout from its sensor readings:
// step count, duration in hours, athlete weight in kg and height in cm.
func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		training: training{
			action:   action,
			duration: duration,
			weight:   weight,
			lenStep:  lenStep,
		},
		height: height,
	}
}

func (SportsWalking) Label() string { return "SportsWalking" }

// SpentCalories uses the floored quotient of squared speed by height.
// The flooring is part of the calibrated formula, not an accident of
// some earlier integer representation; keep it when touching this.
func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	speedTerm := math.Floor(speed * speed / w.height)
	perMinute := walkWeightMultiplier*w.weight + speedTerm*walkSpeedMultiplier*w.weight
	return perMinute * (w.duration * minInHour)
}
