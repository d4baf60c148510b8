package workout

import "fmt"

// InfoMessage is the computed summary of one workout. It is created
// once per training by Info and never mutated afterwards.
type InfoMessage struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// Message renders the summary as a single report line. The wording,
// field order and three-decimal formatting are a compatibility
// contract with existing consumers of the printed output; do not
// change them.
func (m InfoMessage) Message() string {
	return fmt.Sprintf("Тип тренировки: %s; "+
		"Длительность: %.3f ч.; "+
		"Дистанция: %.3f км; "+
		"Ср. скорость: %.3f км/ч; "+
		"Потрачено ккал: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}
