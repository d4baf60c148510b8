package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMessageFormat pins the rendered report line exactly: wording,
// field order and three-decimal formatting are consumed downstream and
// must not drift.
func TestMessageFormat(t *testing.T) {
	info := Info(NewRunning(15000, 1, 75))

	assert.Equal(t,
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; "+
			"Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
		info.Message())
}

// TestMessageRounding verifies that values are rendered to exactly
// three decimals, rounding rather than truncating.
func TestMessageRounding(t *testing.T) {
	m := InfoMessage{
		TrainingType: "Swimming",
		Duration:     1.23456,
		Distance:     0.9936,
		Speed:        1.0005,
		Calories:     336.00049,
	}

	assert.Equal(t,
		"Тип тренировки: Swimming; Длительность: 1.235 ч.; Дистанция: 0.994 км; "+
			"Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		m.Message())
}
