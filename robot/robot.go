// Package robot shows the difference between a robot that builds its own
// transmitter and one that receives it through dependency injection.
package robot

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sghaida/oodesign/di"
)

// KeySender is the dependency key under which a MessageSender is injected.
const KeySender di.DependencyKey = "sender"

// ErrNoSender is returned by SendInformation before a sender is wired.
var ErrNoSender = errors.New("robot: no message sender")

// MessageSender transmits robot information somewhere.
type MessageSender interface {
	Send(info string) error
}

// Antenna writes messages to an io.Writer.
type Antenna struct {
	w io.Writer
}

// NewAntenna returns an Antenna writing to w.
func NewAntenna(w io.Writer) *Antenna { return &Antenna{w: w} }

// Send implements MessageSender.
func (a *Antenna) Send(info string) error {
	_, err := fmt.Fprintf(a.w, "Sending information via antenna\n%s\n", info)
	return err
}

// Recorder keeps every message in memory. It is handy in tests and as a
// second implementation that proves the robot does not care which one it gets.
type Recorder struct {
	mu   sync.Mutex
	msgs []string
}

// Send implements MessageSender.
func (r *Recorder) Send(info string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, info)
	return nil
}

// Messages returns a copy of the recorded messages.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.msgs...)
}

// Robot reports its model and serial through an injected MessageSender.
type Robot struct {
	Model  string
	Serial string

	sender MessageSender
}

// New returns a robot with no sender wired.
func New(model, serial string) *Robot { return &Robot{Model: model, Serial: serial} }

// Information formats the robot's identity.
func (r *Robot) Information() string {
	return fmt.Sprintf("Model: %s \nSerial: %s", r.Model, r.Serial)
}

// SendInformation hands Information to the wired sender.
func (r *Robot) SendInformation() error {
	if r.sender == nil {
		return ErrNoSender
	}
	return r.sender.Send(r.Information())
}

// WithSender wires sender into a robot service.
func WithSender(sender *di.Service[MessageSender]) di.Injector[Robot] {
	return di.Injecting(KeySender, sender, func(r *Robot, s *MessageSender) { r.sender = *s })
}

// Sender wraps s as an injectable dependency.
func Sender(s MessageSender) *di.Service[MessageSender] {
	return di.Init(func() *MessageSender { return &s })
}

// HardwiredRobot constructs its own Antenna. Swapping the transmitter means
// editing this type, which is exactly what Robot avoids.
type HardwiredRobot struct {
	Model  string
	Serial string

	antenna *Antenna
}

// NewHardwired returns a robot whose antenna always writes to w.
func NewHardwired(model, serial string, w io.Writer) *HardwiredRobot {
	return &HardwiredRobot{Model: model, Serial: serial, antenna: NewAntenna(w)}
}

// SendInformation sends the robot's identity through its built-in antenna.
func (r *HardwiredRobot) SendInformation() error {
	return r.antenna.Send(fmt.Sprintf("Model: %s \nSerial: %s", r.Model, r.Serial))
}
