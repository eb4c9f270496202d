package cpu

import (
	"fmt"
	"strings"

	"github.com/thelolagemann/gbcore/internal/mmu"
)

// Disassemble renders the instruction at addr with its immediate
// operands filled in, and returns the number of bytes it occupies.
// Relative jumps are rendered with their absolute target.
func Disassemble(b mmu.Bus, addr uint16) (string, uint16) {
	opcode := b.Read8(addr)
	switch {
	case opcode == 0xCB:
		return instructionSetCB[b.Read8(addr+1)].name, 2
	case opcode == 0x10:
		return instructionSet[opcode].name, 2
	}

	name := instructionSet[opcode].name
	switch {
	case strings.Contains(name, "d16"), strings.Contains(name, "a16"):
		value := b.Read16(addr + 1)
		name = strings.NewReplacer("d16", fmt.Sprintf("$%04X", value), "a16", fmt.Sprintf("$%04X", value)).Replace(name)
		return name, 3
	case strings.Contains(name, "SP+r8"):
		return strings.Replace(name, "+r8", fmt.Sprintf("%+d", int8(b.Read8(addr+1))), 1), 2
	case strings.Contains(name, "r8"):
		// ADD SP, r8 stays signed, jumps show their target
		displacement := int8(b.Read8(addr + 1))
		if strings.HasPrefix(name, "JR") {
			target := uint16(int32(addr) + 2 + int32(displacement))
			return strings.Replace(name, "r8", fmt.Sprintf("$%04X", target), 1), 2
		}
		return strings.Replace(name, "r8", fmt.Sprintf("%+d", displacement), 1), 2
	case strings.Contains(name, "d8"), strings.Contains(name, "a8"):
		value := fmt.Sprintf("$%02X", b.Read8(addr+1))
		return strings.NewReplacer("d8", value, "a8", value).Replace(name), 2
	}
	return name, 1
}
