package serial

import "io"

// Device is a device that can be attached to the Controller.
type Device interface {
	Receive(bool)
	Send() bool
}

// nullDevice is an implementation of Device that
// simply returns true on Send and does nothing on
// Receive. This is most commonly used for when no
// device is attached to the Controller.
type nullDevice struct{}

// Receive does nothing.
func (n nullDevice) Receive(bool) {}

// Send always returns true.
func (n nullDevice) Send() bool { return true }

// Recorder is a Device that collects every byte sent to it and
// writes it to w. Test programs use the serial port to report their
// results as text.
type Recorder struct {
	w     io.Writer
	b     uint8
	count uint8
}

// NewRecorder returns a Recorder writing to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Receive shifts in a bit, most significant first.
func (r *Recorder) Receive(bit bool) {
	r.b <<= 1
	if bit {
		r.b |= 1
	}
	if r.count++; r.count == 8 {
		r.w.Write([]byte{r.b})
		r.b, r.count = 0, 0
	}
}

// Send always returns true, as an unplugged cable would.
func (r *Recorder) Send() bool { return true }
