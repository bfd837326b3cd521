package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// model is the bubbletea model for the interactive step debugger: a
// memory page view, a register/flag panel, and a raw dump of the
// decoded instruction at PC.
type model struct {
	d      *Debugger
	prevPC uint16
	err    error
	quit   bool
}

// Init performs no initial command; the Machine is expected to already
// be reset by the caller before the TUI starts.
func (m model) Init() tea.Cmd { return nil }

// Update advances the debugger by one instruction on space/j, runs to
// the next breakpoint on r, and quits on q or on a fatal CPU error.
// Stepping onto a breakpoint does not block further steps.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.d.Registers().PC
			hit, err := m.d.Step()
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			if hit {
				return m, nil
			}
		case "r":
			m.err = m.d.Run(0)
			if m.err != nil {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	pc := m.d.Registers().PC
	bytes := m.d.ReadMemoryRange(start, start+16)
	s := fmt.Sprintf("%04X | ", start)
	for i, b := range bytes {
		if start+uint16(i) == pc {
			s += fmt.Sprintf("[%02X] ", b)
		} else {
			s += fmt.Sprintf(" %02X  ", b)
		}
	}
	return s
}

func (m model) status() string {
	snap := m.d.Registers()
	var flags string
	for _, bit := range []uint8{0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01} {
		if snap.Status&bit != 0 {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04X (%04X)
 A: %02X
 X: %02X
 Y: %02X
SP: %02X
N V U B D I Z C
%s
instructions: %d  cycles: %d
`,
		snap.PC, m.prevPC, snap.A, snap.X, snap.Y, snap.SP, flags,
		m.d.InstructionCount(), m.d.CycleCount())
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01X  ", b)
	}

	pc := m.d.Registers().PC
	base := pc &^ 0x0F
	lines := []string{header}
	for i := -2; i <= 2; i++ {
		lines = append(lines, m.renderPage(uint16(int32(base)+int32(i)*16)))
	}
	return strings.Join(lines, "\n")
}

func (m model) View() string {
	pc := m.d.Registers().PC
	inst := m.d.DisassembleInstruction(pc)
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		inst.String(),
		spew.Sdump(inst),
	)
	if m.err != nil {
		return body + "\nerror: " + m.err.Error() + "\n"
	}
	return body
}

// RunTUI starts the interactive step debugger. It blocks until the user
// quits or a fatal CPU error stops the program.
func RunTUI(d *Debugger) error {
	p := tea.NewProgram(model{d: d})
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
