package workout

// Calorie coefficients calibrated for running; not configurable.
const (
	runSpeedMultiplier = 18
	runSpeedShift      = 20
)

// Running is a step-counted running workout.
type Running struct {
	training
}

// NewRunning builds a running workout from its sensor readings: step
// count, duration in hours and athlete weight in kg.
func NewRunning(action int, duration, weight float64) Running {
	return Running{training{
		action:   action,
		duration: duration,
		weight:   weight,
		lenStep:  lenStep,
	}}
}

func (Running) Label() string { return "Running" }

func (r Running) SpentCalories() float64 {
	perMinute := (runSpeedMultiplier*r.MeanSpeed() - runSpeedShift) * r.weight / mInKm
	return perMinute * (r.duration * minInHour)
}
