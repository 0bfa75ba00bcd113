package ulm_test

import (
	"testing"

	"github.com/sghaida/oodesign/ulm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCalculator_Table(t *testing.T) {
	t.Parallel()

	c := ulm.New(nil)

	cases := []struct {
		name    string
		run     func() (float64, error)
		want    float64
		wantErr error
	}{
		{name: "speed", run: func() (float64, error) { return c.Speed(100, 5) }, want: 20},
		{name: "speed zero time", run: func() (float64, error) { return c.Speed(100, 0) }, wantErr: ulm.ErrZeroTime},
		{name: "distance", run: func() (float64, error) { return c.Distance(100, 10), nil }, want: 1000},
		{name: "time", run: func() (float64, error) { return c.Time(100, 25) }, want: 4},
		{name: "time zero speed", run: func() (float64, error) { return c.Time(100, 0) }, wantErr: ulm.ErrZeroSpeed},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.run()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

// TestCalculator_LogsSentences verifies each successful computation logs one info sentence.
func TestCalculator_LogsSentences(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	c := ulm.New(zap.New(core))

	_, err := c.Speed(100, 5)
	require.NoError(t, err)
	_ = c.Distance(100, 10)
	_, err = c.Time(100, 0)
	require.Error(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "An object that moves 100m in 5s has a speed of 20m/s", entries[0].Message)
	assert.Equal(t, "An object with a speed of 100m/s moving for 10s travels a distance of 1000m", entries[1].Message)
}
