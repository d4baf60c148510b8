package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadPackage verifies that each workout code dispatches to the
// matching training and that the positional readings land in the right
// slots (checked through the derived metrics).
func TestReadPackage(t *testing.T) {
	cases := []struct {
		name      string
		pkg       Package
		wantLabel string
		wantSpeed float64
	}{
		{
			name:      "swimming",
			pkg:       Package{Type: CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
			wantLabel: "Swimming",
			wantSpeed: 1.0,
		},
		{
			name:      "running",
			pkg:       Package{Type: CodeRunning, Data: []float64{15000, 1, 75}},
			wantLabel: "Running",
			wantSpeed: 9.75,
		},
		{
			name:      "walking",
			pkg:       Package{Type: CodeWalking, Data: []float64{9000, 1, 75, 180}},
			wantLabel: "SportsWalking",
			wantSpeed: 5.85,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			training, err := ReadPackage(tc.pkg)
			require.NoError(t, err)

			assert.Equal(t, tc.wantLabel, training.Label())
			assert.InDelta(t, tc.wantSpeed, training.MeanSpeed(), 1e-9)
		})
	}
}

// TestReadPackageUnsupportedType verifies that an unregistered code is
// rejected with an error enumerating the valid codes.
func TestReadPackageUnsupportedType(t *testing.T) {
	_, err := ReadPackage(Package{Type: "BIKE", Data: []float64{1000, 1, 70}})

	require.Error(t, err)
	assert.EqualError(t, err, "BIKE is not a supported workout type (try one of these: SWM, RUN, WLK)")
}

// TestReadPackageArityMismatch verifies that a wrong value count fails
// construction outright, with no defaulting of missing slots.
func TestReadPackageArityMismatch(t *testing.T) {
	cases := []struct {
		name string
		pkg  Package
	}{
		{"running with too many values", Package{Type: CodeRunning, Data: []float64{15000, 1, 75, 180}}},
		{"walking without height", Package{Type: CodeWalking, Data: []float64{9000, 1, 75}}},
		{"swimming without pool data", Package{Type: CodeSwimming, Data: []float64{720, 1, 80}}},
		{"empty data", Package{Type: CodeRunning, Data: nil}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			training, err := ReadPackage(tc.pkg)

			require.Error(t, err)
			assert.Nil(t, training)
			assert.ErrorContains(t, err, "want")
		})
	}
}

// TestReadPackageFractionalIntegerSlot verifies that integer slots
// (action count, pool lap count) reject fractional readings.
func TestReadPackageFractionalIntegerSlot(t *testing.T) {
	_, err := ReadPackage(Package{Type: CodeRunning, Data: []float64{15000.5, 1, 75}})
	require.Error(t, err)
	assert.ErrorContains(t, err, "action count must be an integer")

	_, err = ReadPackage(Package{Type: CodeSwimming, Data: []float64{720, 1, 80, 25, 40.25}})
	require.Error(t, err)
	assert.ErrorContains(t, err, "pool lap count must be an integer")
}
