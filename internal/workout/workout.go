// Package workout computes derived metrics — distance, mean speed and
// spent calories — for individual workout records and renders them as
// report lines.
package workout

const (
	mInKm     = 1000.0
	minInHour = 60.0

	lenStep   = 0.65 // metres covered by one step
	lenStroke = 1.38 // metres covered by one stroke
)

// Training is the capability shared by all workout kinds.
// Implementations are immutable value types: every method is a pure
// function of the constructor arguments, so repeated calls always
// return the same values.
type Training interface {
	// Label identifies the workout kind in rendered reports.
	Label() string
	// Duration returns the workout length in hours.
	Duration() float64
	// Distance returns the covered distance in kilometres.
	Distance() float64
	// MeanSpeed returns the mean speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns the energy spent in kcal.
	SpentCalories() float64
}

// training carries the sensor readings common to every workout kind
// plus the shared action-count distance and speed math. Variants embed
// it and add their own calorie formula.
type training struct {
	action   int     // discrete motion units: steps or strokes
	duration float64 // hours
	weight   float64 // kg
	lenStep  float64 // metres per motion unit
}

func (t training) Duration() float64 { return t.duration }

// Distance converts the action count to kilometres.
func (t training) Distance() float64 {
	return float64(t.action) * t.lenStep / mInKm
}

// MeanSpeed divides the action-count distance by the duration. A zero
// duration is not guarded here: the upstream sensor contract never
// reports zero-length workouts, and a violated contract surfaces as
// Inf in the report rather than a silently corrected value.
func (t training) MeanSpeed() float64 {
	return t.Distance() / t.duration
}

// SpentCalories has no shared formula. Reaching this method means a
// variant embedded training without supplying its own.
func (t training) SpentCalories() float64 {
	panic("workout: SpentCalories is not implemented on the base training")
}

// Info assembles the report record for one training. Nothing is
// cached: each call recomputes from the immutable state, so repeated
// calls yield identical records.
func Info(t Training) InfoMessage {
	return InfoMessage{
		TrainingType: t.Label(),
		Duration:     t.Duration(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
