package main

import (
	"fmt"
	"os"

	"github.com/oisee/z80emu/pkg/cpu"
	"github.com/oisee/z80emu/pkg/memory"
	"github.com/oisee/z80emu/pkg/runner"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "z80emu",
		Short: "Z80 instruction-level emulator",
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newSuiteCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var loadAddr uint16
	var pc int
	var cpmStub bool
	var maxInstructions uint64
	var ramSize int

	cmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Load a raw binary image and execute it to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading image: %w", err)
			}

			initialPC := loadAddr
			if pc >= 0 {
				initialPC = uint16(pc)
			}

			sys := cpu.New(ramSize, initialPC, cpmStub)
			if err := sys.Mem.WriteRange(int(loadAddr), len(program), program); err != nil {
				return fmt.Errorf("loading image: %w", err)
			}

			for sys.Running {
				sys.ExecuteInstruction()
				if maxInstructions > 0 && sys.InstructionCount >= maxInstructions {
					fmt.Fprintf(os.Stderr, "z80emu: stopped after %d instructions (limit reached)\n", sys.InstructionCount)
					break
				}
			}

			fmt.Printf("\n%d instructions executed, halted at PC=%04X\n", sys.InstructionCount, sys.Regs.PC())
			return nil
		},
	}
	cmd.Flags().Uint16Var(&loadAddr, "load-addr", 0x0100, "Address the image is loaded at")
	cmd.Flags().IntVar(&pc, "pc", -1, "Initial PC (defaults to --load-addr)")
	cmd.Flags().BoolVar(&cpmStub, "cpm", true, "Install the minimal CP/M BDOS stub at 0x0005")
	cmd.Flags().Uint64Var(&maxInstructions, "max-instructions", 0, "Safety bound on instructions executed (0 = unbounded)")
	cmd.Flags().IntVar(&ramSize, "ram-size", 0x10000, "Size of the emulated address space")
	return cmd
}

func newDumpCmd() *cobra.Command {
	var loadAddr uint16
	var start uint16
	var count int
	var ramSize int

	cmd := &cobra.Command{
		Use:   "dump <image>",
		Short: "Load a raw binary image and print a hex/ASCII memory dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading image: %w", err)
			}

			mem := memory.New(ramSize)
			if err := mem.WriteRange(int(loadAddr), len(program), program); err != nil {
				return fmt.Errorf("loading image: %w", err)
			}

			fmt.Print(memory.Dump(mem, start, count))
			return nil
		},
	}
	cmd.Flags().Uint16Var(&loadAddr, "load-addr", 0x0100, "Address the image is loaded at")
	cmd.Flags().Uint16Var(&start, "start", 0x0100, "First address to dump")
	cmd.Flags().IntVar(&count, "count", 256, "Number of bytes to dump")
	cmd.Flags().IntVar(&ramSize, "ram-size", 0x10000, "Size of the emulated address space")
	return cmd
}

func newSuiteCmd() *cobra.Command {
	var loadAddr uint16
	var cpmStub bool
	var maxInstructions uint64
	var ramSize int
	var numWorkers int
	var checkpointPath string

	cmd := &cobra.Command{
		Use:   "suite <image> [image...]",
		Short: "Run a batch of images in parallel and report pass/fail per image",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			images := make([]runner.Image, 0, len(args))
			for _, path := range args {
				program, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading image %s: %w", path, err)
				}
				images = append(images, runner.Image{
					Name:      path,
					LoadAddr:  loadAddr,
					InitialPC: loadAddr,
					Program:   program,
					CPMStub:   cpmStub,
				})
			}

			table := runner.RunSuite(runner.Suite{Images: images}, runner.Config{
				NumWorkers:      numWorkers,
				MaxInstructions: maxInstructions,
				RAMSize:         ramSize,
			})

			for _, r := range table.Results() {
				status := "ok"
				if r.Panicked {
					status = "panic: " + r.PanicValue
				} else if r.TimedOut {
					status = "timed out"
				}
				fmt.Printf("%-40s %10d instrs  %s\n", r.Name, r.InstructionCount, status)
			}

			if checkpointPath != "" {
				ckpt := &runner.Checkpoint{Results: table.Results(), Completed: table.Len()}
				if err := runner.SaveCheckpoint(checkpointPath, ckpt); err != nil {
					return fmt.Errorf("saving checkpoint: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().Uint16Var(&loadAddr, "load-addr", 0x0100, "Address each image is loaded at")
	cmd.Flags().BoolVar(&cpmStub, "cpm", true, "Install the minimal CP/M BDOS stub at 0x0005")
	cmd.Flags().Uint64Var(&maxInstructions, "max-instructions", 100_000_000, "Safety bound on instructions per image (0 = unbounded)")
	cmd.Flags().IntVar(&ramSize, "ram-size", 0x10000, "Size of the emulated address space")
	cmd.Flags().IntVar(&numWorkers, "workers", 0, "Number of workers (0 = NumCPU)")
	cmd.Flags().StringVar(&checkpointPath, "checkpoint", "", "Write a checkpoint file with final results")
	return cmd
}
