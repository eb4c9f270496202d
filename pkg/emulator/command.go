package emulator

import (
	"errors"
	"fmt"
)

// ErrMalformedPacket is returned when a packet cannot be decoded.
var ErrMalformedPacket = errors.New("emulator: malformed packet")

// CommandPacket is a command packet that is sent to the
// emulator to control it. On the wire it is the command byte
// followed by the data.
type CommandPacket struct {
	Command Command
	Data    []byte
}

// Command is a command that is sent to the emulator to
// control it.
type Command uint8

// ResponsePacket is a response packet that is sent
// from the emulator to the client. On the wire it is the
// command byte, a status byte (0 for success) and then either
// the data or the error message.
type ResponsePacket struct {
	Command Command
	Data    []byte
	Error   error
}

const (
	// CommandPause pauses the emulator.
	CommandPause Command = iota
	// CommandResume resumes the emulator, leaving any HALT or STOP.
	CommandResume
	// CommandStep executes a single instruction of a paused emulator.
	CommandStep
	// CommandRegisters requests the registers.
	CommandRegisters
	// CommandStatus requests the Status of the emulator.
	CommandStatus
	// CommandSave writes a save file, answering with its path.
	CommandSave
	// CommandClose closes the connection.
	CommandClose Command = 255
)

func (c Command) String() string {
	switch c {
	case CommandPause:
		return "pause"
	case CommandResume:
		return "resume"
	case CommandStep:
		return "step"
	case CommandRegisters:
		return "registers"
	case CommandStatus:
		return "status"
	case CommandSave:
		return "save"
	case CommandClose:
		return "close"
	}
	return fmt.Sprintf("command(%d)", uint8(c))
}

// ParseCommand returns the command with the given name.
func ParseCommand(name string) (Command, error) {
	for _, c := range []Command{CommandPause, CommandResume, CommandStep, CommandRegisters, CommandStatus, CommandSave, CommandClose} {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("emulator: unknown command %q", name)
}

// MarshalBinary encodes the packet.
func (p CommandPacket) MarshalBinary() ([]byte, error) {
	return append([]byte{byte(p.Command)}, p.Data...), nil
}

// UnmarshalBinary decodes the packet.
func (p *CommandPacket) UnmarshalBinary(b []byte) error {
	if len(b) == 0 {
		return ErrMalformedPacket
	}
	p.Command = Command(b[0])
	p.Data = append([]byte(nil), b[1:]...)
	return nil
}

// MarshalBinary encodes the packet.
func (p ResponsePacket) MarshalBinary() ([]byte, error) {
	if p.Error != nil {
		return append([]byte{byte(p.Command), 1}, p.Error.Error()...), nil
	}
	return append([]byte{byte(p.Command), 0}, p.Data...), nil
}

// UnmarshalBinary decodes the packet. A remote error is restored as
// an error holding the same message.
func (p *ResponsePacket) UnmarshalBinary(b []byte) error {
	if len(b) < 2 {
		return ErrMalformedPacket
	}
	p.Command = Command(b[0])
	p.Data, p.Error = nil, nil
	switch b[1] {
	case 0:
		p.Data = append([]byte(nil), b[2:]...)
	case 1:
		p.Error = errors.New(string(b[2:]))
	default:
		return ErrMalformedPacket
	}
	return nil
}
