package serial

import (
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/types"
)

// Bus is the part of the memory bus the Controller needs.
type Bus interface {
	mmu.Bus
	Reserve(address uint16, a types.Address)
}

// Controller is the serial controller. It is responsible for sending and
// receiving data to and from devices.
// Before a transfer, data holds the next byte to be sent. AKA types.SB
// During a transfer, each bit shifts the leftmost bit of data out to the
// attached device, and the incoming bit in from the right.
//
// example:
//
//	Before : data = o7 o6 o5 o4 o3 o2 o1 o0
//	Cycle 1: data = o6 o5 o4 o3 o2 o1 o0 i0
//	...
//	Cycle 8: data = i0 i1 i2 i3 i4 i5 i6 i7
//
// Where o0-o7 are the outgoing bits, and i0-i7 are the incoming bits.
//
// There is no clock in this core, so a transfer started with the
// internal clock completes within the write to SC.
type Controller struct {
	data            uint8
	InternalClock   bool // if true, this controller is the master.
	TransferRequest bool // if true, a transfer has been requested.

	b              Bus
	AttachedDevice Device // the device that is attached to this controller.
}

// Attach attaches a Device to the Controller.
func (c *Controller) Attach(d Device) {
	c.AttachedDevice = d
}

// NewController creates a new Controller and reserves SB and SC on
// the bus.
//
// By default, the Controller is attached to a nullDevice, which acts as if
// there is no device attached. This is the same as if the device is not
// plugged in. If you want to attach a device, use the Controller.Attach method.
func NewController(b Bus) *Controller {
	c := &Controller{
		b:              b,
		AttachedDevice: nullDevice{},
	}
	b.Reserve(types.SB, types.Address{
		Read: func(uint16) uint8 {
			return c.data
		},
		Write: func(_ uint16, v uint8) {
			c.data = v
		},
	})
	b.Reserve(types.SC, types.Address{
		Read: func(uint16) uint8 {
			v := uint8(0x7E) // bits 1-6 are unused
			if c.TransferRequest {
				v |= types.Bit7
			}
			if c.InternalClock {
				v |= types.Bit0
			}
			return v
		},
		Write: func(_ uint16, v uint8) {
			c.InternalClock = v&types.Bit0 == types.Bit0
			c.TransferRequest = v&types.Bit7 == types.Bit7

			// only the master drives the transfer
			if c.TransferRequest && c.InternalClock {
				c.transfer()
			}
		},
	})
	return c
}

// transfer shifts all 8 bits, then clears the transfer request and
// requests the serial interrupt.
func (c *Controller) transfer() {
	for i := 0; i < 8; i++ {
		bit := c.AttachedDevice.Send()
		c.AttachedDevice.Receive(c.data&types.Bit7 == types.Bit7)

		c.data <<= 1
		if bit {
			c.data |= 1
		}
	}

	c.TransferRequest = false
	c.b.Write8(types.IF, c.b.Read8(types.IF)|types.Bit3)
}

var _ types.Stater = (*Controller)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - data (uint8)
//   - TransferRequest (bool)
//   - InternalClock (bool)
func (c *Controller) Load(s *types.State) {
	c.data = s.Read8()
	c.TransferRequest = s.ReadBool()
	c.InternalClock = s.ReadBool()
}

// Save implements the types.Stater interface.
func (c *Controller) Save(s *types.State) {
	s.Write8(c.data)
	s.WriteBool(c.TransferRequest)
	s.WriteBool(c.InternalClock)
}
