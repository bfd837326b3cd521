// Command nes6502 is a CLI harness around the interpreter: load an iNES
// ROM (or a raw program blob wrapped in a synthetic NROM header), run it
// for a bounded number of instructions or hand control to the interactive
// step debugger, and dump the resulting register and zero-page state.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"nes6502/internal/config"
	"nes6502/internal/debugger"
	"nes6502/internal/machine"
	"nes6502/internal/version"
)

func main() {
	var (
		romPath     = flag.String("rom", "", "path to an iNES ROM image")
		raw         = flag.Bool("raw", false, "treat -rom (or stdin) as a raw 6502 program loaded at $8000, not an iNES file")
		configPath  = flag.String("config", "", "path to a JSON config file (created with defaults if missing)")
		maxInst     = flag.Uint64("instructions", 0, "stop after this many instructions (0 = unbounded)")
		interactive = flag.Bool("debug", false, "launch the interactive step debugger instead of free-running")
		showVersion = flag.Bool("version", false, "print version information and exit")
		zpStart     = flag.Uint("zp-start", 0, "first zero-page address to dump after execution")
		zpEnd       = flag.Uint("zp-end", 0, "last zero-page address (inclusive) to dump after execution")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	cfg := config.New()
	if *configPath != "" {
		if err := cfg.LoadFromFile(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "nes6502: loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *maxInst > 0 {
		cfg.Emulation.MaxInstructions = *maxInst
	}
	if *interactive {
		cfg.Debug.Interactive = true
	}

	data, err := loadImage(*romPath, *raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nes6502: %v\n", err)
		os.Exit(1)
	}

	m := machine.New()
	if err := m.LoadROM(data); err != nil {
		fmt.Fprintf(os.Stderr, "nes6502: loading ROM: %v\n", err)
		os.Exit(1)
	}
	m.Reset()

	if pc := cfg.Emulation.InitialPC; pc != nil {
		m.SetPC(*pc)
	}

	dbg := debugger.New(m)
	for _, addr := range cfg.Debug.Breakpoints {
		dbg.AddBreakpoint(addr)
	}

	if cfg.Debug.Interactive {
		if err := debugger.RunTUI(dbg); err != nil {
			fmt.Fprintf(os.Stderr, "nes6502: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := dbg.Run(cfg.Emulation.MaxInstructions); err != nil {
		fmt.Fprintf(os.Stderr, "nes6502: halted: %v\n", err)
		os.Exit(1)
	}

	printResults(dbg)
	if *zpEnd > 0 && *zpEnd >= *zpStart {
		printZeroPage(dbg, uint16(*zpStart), uint16(*zpEnd))
	}
}

// loadImage reads the ROM bytes from path, or from stdin when path is
// empty, and wraps them in a synthetic one-bank iNES header with a reset
// vector of $8000 when raw is set.
func loadImage(path string, raw bool) ([]byte, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading ROM data: %w", err)
	}
	if !raw {
		return data, nil
	}
	return wrapRawProgram(data), nil
}

func wrapRawProgram(program []byte) []byte {
	const bankSize = 16 * 1024
	header := make([]byte, 16)
	copy(header, []byte("NES\x1A"))
	header[4] = 1 // one 16KB PRG bank

	bank := make([]byte, bankSize)
	copy(bank, program)
	bank[0x3FFC] = 0x00 // reset vector low -> $8000
	bank[0x3FFD] = 0x80 // reset vector high

	return append(header, bank...)
}

func printResults(dbg *debugger.Debugger) {
	snap := dbg.Registers()
	fmt.Printf("PC=%04X A=%02X X=%02X Y=%02X SP=%02X P=%02X\n",
		snap.PC, snap.A, snap.X, snap.Y, snap.SP, snap.Status)
	fmt.Printf("instructions=%d cycles=%d\n", dbg.InstructionCount(), dbg.CycleCount())
}

func printZeroPage(dbg *debugger.Debugger, start, end uint16) {
	fmt.Printf("\nzero page $%02X-$%02X:\n", start, end)
	for addr := start; addr <= end; addr++ {
		fmt.Printf("$%02X: %02X\n", addr, dbg.ReadMemory(addr))
		if addr == 0xFFFF {
			break
		}
	}
}
