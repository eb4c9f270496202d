package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/serial"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/emu"
	"github.com/thelolagemann/gbcore/pkg/emulator"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

type runConfig struct {
	image        string
	pc           *uint16
	maxSteps     int
	trace, debug bool
	writeProtect bool
	save         bool
	restore      bool
	remote       string
	serial       bool
	saves        *emu.Saves
	log          log.Logger
}

// parseAddress parses a 16-bit address written as 0x0100, $0100 or
// 0100.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "0x"), "$")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return uint16(v), nil
}

// loadImage loads a program image onto a new bus.
func loadImage(path string, writeProtect bool, l log.Logger) (*mmu.MMU, []byte, error) {
	rom, err := utils.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	if len(rom) > mmu.AddressSpace {
		l.Infof("%s is %d bytes, only the first %d are mapped", path, len(rom), mmu.AddressSpace)
		rom = rom[:mmu.AddressSpace]
	}
	if writeProtect {
		return mmu.NewMMU(mmu.WithLogger(l), mmu.WithROM(rom)), rom, nil
	}
	m := mmu.NewMMU(mmu.WithLogger(l))
	return m, rom, m.LoadProgram(0, rom)
}

// runProgram executes the image until it halts, stops, faults, runs
// out of steps or ctx is done, and prints the final registers. With
// a remote control server a halted or stopped program keeps waiting
// to be resumed.
func runProgram(ctx context.Context, cfg runConfig, out io.Writer) error {
	if cfg.log == nil {
		cfg.log = log.NewNullLogger()
	}
	m, rom, err := loadImage(cfg.image, cfg.writeProtect, cfg.log)
	if err != nil {
		return err
	}
	id := emu.ProgramID(rom)
	var devices []types.Stater
	if cfg.serial {
		sc := serial.NewController(m)
		sc.Attach(serial.NewRecorder(out))
		devices = append(devices, sc)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	steps := 0
	opts := []cpu.Opt{cpu.PostBoot(), cpu.WithLogger(cfg.log), cpu.WithTracer(func(pc uint16, name string, status cpu.Status) {
		steps++
		if cfg.trace {
			fmt.Fprintf(out, "%04X  %s\n", pc, name)
		}
		if (status.Suspends() && cfg.remote == "") || (cfg.maxSteps > 0 && steps >= cfg.maxSteps) {
			cancel()
		}
	})}
	if cfg.pc != nil {
		opts = append(opts, cpu.WithPC(*cfg.pc))
	}
	if cfg.debug {
		opts = append(opts, cpu.Debug())
	}
	c := cpu.NewCPU(m, opts...)

	if cfg.restore {
		if err := restoreLatest(cfg.saves, id, c, m, devices...); err != nil {
			return err
		}
		// a save taken while halted resumes after the HALT
		c.Resume()
	}

	save := func() (string, error) {
		s, err := cfg.saves.Write(id, emu.Capture(c, m, devices...))
		if err != nil {
			return "", err
		}
		return s.Path, nil
	}

	var server *emulator.Server
	serverDone := make(chan error, 1)
	if cfg.remote != "" {
		server = emulator.NewServer(c, emulator.WithLogger(cfg.log), emulator.WithSaveFunc(save))
		go func() { serverDone <- server.ListenAndServe(ctx, cfg.remote) }()
	} else {
		serverDone <- nil
	}

	runErr := c.Run(ctx)
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}
	if server != nil {
		server.ReportError(runErr)
	}
	cancel()
	if err := <-serverDone; err != nil && !errors.Is(err, context.Canceled) {
		cfg.log.Errorf("remote control: %v", err)
	}

	regs := c.Snapshot()
	fmt.Fprintf(out, "%s\nsteps: %d status: %s\n", regs, steps, c.Suspended())

	if cfg.save {
		path, err := save()
		if err != nil {
			return errors.Join(runErr, err)
		}
		fmt.Fprintf(out, "saved %s\n", path)
	}
	return runErr
}

func restoreLatest(saves *emu.Saves, id string, c *cpu.CPU, m *mmu.MMU, devices ...types.Stater) error {
	latest, err := saves.Latest(id)
	if err != nil {
		return err
	}
	state, err := latest.Read()
	if err != nil {
		return err
	}
	return emu.Restore(state, c, m, devices...)
}

// disassemble prints count instructions of the image starting at
// from.
func disassemble(path string, from uint16, count int, out io.Writer) error {
	m, _, err := loadImage(path, false, log.NewNullLogger())
	if err != nil {
		return err
	}
	addr := from
	for i := 0; i < count; i++ {
		text, length := cpu.Disassemble(m, addr)
		var raw strings.Builder
		for j := uint16(0); j < length; j++ {
			fmt.Fprintf(&raw, "%02X ", m.Read8(addr+j))
		}
		fmt.Fprintf(out, "%04X  %-9s %s\n", addr, raw.String(), text)
		addr += length
	}
	return nil
}

// sendCommands sends each named command and prints its response.
func sendCommands(client *emulator.Client, names []string, out io.Writer) error {
	for _, name := range names {
		command, err := emulator.ParseCommand(name)
		if err != nil {
			return err
		}
		if command == emulator.CommandClose {
			return nil
		}
		response, err := client.Send(command, nil)
		if err != nil {
			return fmt.Errorf("%s: %w", command, err)
		}
		switch command {
		case emulator.CommandRegisters, emulator.CommandStep:
			regs, err := emulator.DecodeRegisters(response.Data)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\n", regs)
		case emulator.CommandSave:
			fmt.Fprintf(out, "saved %s\n", response.Data)
		default:
			if len(response.Data) == 1 {
				fmt.Fprintf(out, "%s: %s\n", command, emulator.Status(response.Data[0]))
			}
		}
	}
	return nil
}
