package workout

// Calorie coefficients calibrated for swimming; not configurable.
const (
	swimSpeedShift       = 1.1
	swimWeightMultiplier = 2
)

// Swimming is a stroke-counted pool workout. Its reported distance
// still comes from the stroke count while its mean speed comes from
// pool geometry; the two measure different things and are not expected
// to agree in the report.
type Swimming struct {
	training
	lengthPool float64 // metres
	countPool  int     // full pool passes
}

// NewSwimming builds a swimming workout from its sensor readings:
// stroke count, duration in hours, athlete weight in kg, pool length
// in metres and the number of pool passes.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) Swimming {
	return Swimming{
		training: training{
			action:   action,
			duration: duration,
			weight:   weight,
			lenStep:  lenStroke,
		},
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

func (Swimming) Label() string { return "Swimming" }

// MeanSpeed replaces the stroke-count estimate with pool geometry:
// total metres swum over the duration.
func (s Swimming) MeanSpeed() float64 {
	return s.lengthPool * float64(s.countPool) / mInKm / s.duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimSpeedShift) * swimWeightMultiplier * s.weight
}
