package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/thelolagemann/gbcore/pkg/emu"
	"github.com/thelolagemann/gbcore/pkg/emulator"
	"github.com/thelolagemann/gbcore/pkg/log"
)

func main() {
	var (
		logLevel string
		pprof    string
		logger   log.Logger
	)

	rootCmd := &cobra.Command{
		Use:           "gbcore",
		Short:         "LR35902 instruction core: run and inspect Game Boy programs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if logger, err = log.NewWithLevel(logLevel); err != nil {
				return err
			}
			if pprof != "" {
				// start pprof
				go func() {
					if err := http.ListenAndServe(pprof, nil); err != nil {
						logger.Errorf("pprof: %v", err)
					}
				}()
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&pprof, "pprof", "", "Serve pprof on this address")

	// run command
	var (
		cfg          runConfig
		pc, savesDir string
		writeProtect bool
	)
	runCmd := &cobra.Command{
		Use:   "run [image]",
		Short: "Execute a program image until it halts, stops or faults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.image = args[0]
			cfg.writeProtect = writeProtect
			cfg.log = logger
			if pc != "" {
				addr, err := parseAddress(pc)
				if err != nil {
					return err
				}
				cfg.pc = &addr
			}
			if cfg.save || cfg.restore || cfg.remote != "" {
				cfg.saves = emu.NewSaves(savesDir, logger)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return runProgram(ctx, cfg, cmd.OutOrStdout())
		},
	}
	runCmd.Flags().StringVar(&pc, "pc", "", "Start address (default 0x0100 with post-boot registers)")
	runCmd.Flags().IntVar(&cfg.maxSteps, "max-steps", 0, "Stop after this many instructions (0 = no limit)")
	runCmd.Flags().BoolVar(&cfg.trace, "trace", false, "Print every executed instruction")
	runCmd.Flags().BoolVar(&cfg.debug, "debug", false, "Log every executed instruction at debug level")
	runCmd.Flags().BoolVar(&writeProtect, "write-protect", true, "Reject writes to 0x0000-0x7FFF")
	runCmd.Flags().BoolVar(&cfg.save, "save", false, "Write a save file when execution ends")
	runCmd.Flags().BoolVar(&cfg.restore, "load", false, "Resume from the newest save file of the image")
	runCmd.Flags().StringVar(&savesDir, "saves", emu.DefaultFolder, "Folder holding save files")
	runCmd.Flags().BoolVar(&cfg.serial, "serial", false, "Print bytes sent over the serial port")
	runCmd.Flags().StringVar(&cfg.remote, "remote", "", "Serve the remote control websocket on this address, e.g. :8090")

	// disasm command
	var (
		from  string
		count int
	)
	disasmCmd := &cobra.Command{
		Use:   "disasm [image]",
		Short: "Disassemble a program image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseAddress(from)
			if err != nil {
				return err
			}
			return disassemble(args[0], addr, count, cmd.OutOrStdout())
		},
	}
	disasmCmd.Flags().StringVar(&from, "from", "0x0100", "Address to start from")
	disasmCmd.Flags().IntVar(&count, "count", 16, "Number of instructions")

	// remote command
	remoteCmd := &cobra.Command{
		Use:   "remote [url] [command...]",
		Short: "Send commands (pause, resume, step, registers, status, save) to a running emulator",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := emulator.Dial(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer client.Close()
			return sendCommands(client, args[1:], cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(runCmd, disasmCmd, remoteCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
