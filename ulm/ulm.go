// Package ulm computes speed, distance and time for uniform linear motion.
//
// All speeds are in m/s, distances in meters and times in seconds.
package ulm

import (
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrZeroTime is returned by Speed when the elapsed time is zero.
	ErrZeroTime = errors.New("ulm: can't calculate for time = 0")

	// ErrZeroSpeed is returned by Time when the speed is zero.
	ErrZeroSpeed = errors.New("ulm: can't calculate for speed = 0")
)

// Calculator logs a sentence describing every result it computes.
type Calculator struct {
	log *zap.SugaredLogger
}

// New returns a Calculator. A nil logger disables logging.
func New(log *zap.Logger) *Calculator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Calculator{log: log.Sugar()}
}

// Speed returns distance / time.
func (c *Calculator) Speed(distanceM, timeS float64) (float64, error) {
	if timeS == 0 {
		return 0, ErrZeroTime
	}
	speed := distanceM / timeS
	c.log.Infof("An object that moves %gm in %gs has a speed of %gm/s", distanceM, timeS, speed)
	return speed, nil
}

// Distance returns speed × time.
func (c *Calculator) Distance(speed, timeS float64) float64 {
	d := speed * timeS
	c.log.Infof("An object with a speed of %gm/s moving for %gs travels a distance of %gm", speed, timeS, d)
	return d
}

// Time returns distance / speed.
func (c *Calculator) Time(distanceM, speed float64) (float64, error) {
	if speed == 0 {
		return 0, ErrZeroSpeed
	}
	t := distanceM / speed
	c.log.Infof("It takes an object %gs to move %gm if it moves at %gm/s", t, distanceM, speed)
	return t, nil
}
