package switchable

import (
	"io"
	"log"
	"os"

	"github.com/golang/glog"
)

// Switchable is the capability a Switch controls.
type Switchable interface {
	On()
	Off()
}

var logger = log.New(os.Stdout, "", 0)

// SetOutput sets the destination of device log lines.
func SetOutput(w io.Writer) { logger.SetOutput(w) }

// Lamp is a stateless Switchable that logs "Lamp On" / "Lamp Off".
type Lamp struct{}

// On implements Switchable.
func (Lamp) On() { logger.Println("Lamp On") }

// Off implements Switchable.
func (Lamp) Off() { logger.Println("Lamp Off") }

// Fan is a stateless Switchable that logs "Fan On" / "Fan Off".
type Fan struct{}

// On implements Switchable.
func (Fan) On() { logger.Println("Fan On") }

// Off implements Switchable.
func (Fan) Off() { logger.Println("Fan Off") }

// Switch toggles one Switchable between off and on.
//
// The device is not owned by the Switch: callers keep it alive for the Switch's
// lifetime. A Switch is not safe for concurrent use.
type Switch struct {
	device Switchable
	on     bool
}

// NewSwitch binds a Switch to device. The Switch starts off.
func NewSwitch(device Switchable) *Switch {
	return &Switch{device: device}
}

// Toggle flips the state and invokes exactly one of On or Off on the device.
func (s *Switch) Toggle() {
	if s.on {
		s.on = false
		glog.V(2).Infof("switch %T: on -> off", s.device)
		s.device.Off()
		return
	}
	s.on = true
	glog.V(2).Infof("switch %T: off -> on", s.device)
	s.device.On()
}

// IsOn reports whether the last Toggle turned the device on.
func (s *Switch) IsOn() bool { return s.on }
