// This file is part of Pim65.
//
// Pim65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pim65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pim65.  If not, see <https://www.gnu.org/licenses/>.

package viewer

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/jetsetilly/pim65/disassembly"
	"github.com/jetsetilly/pim65/hardware"
	"github.com/jetsetilly/pim65/hardware/peripherals/textscreen"
	"github.com/jetsetilly/pim65/setup"
)

// sizes of the various views.
const (
	memoryLength       = 0x100
	disassemblyLength  = 32
	traceLength        = 100
	screenBorderWidth  = 2
	registersPaneWidth = 3
)

// Viewer is the terminal user interface.
type Viewer struct {
	sim     *hardware.Simulator
	outcome string

	screen *tview.TextView
	regs   *tview.TextView
	detail *tview.TextView
	input  *tview.InputField
	cols   *tview.Flex
	rows   *tview.Flex
	app    *tview.Application
}

// NewViewer is the preferred method of initialisation for the Viewer type.
// The outcome string describes how the simulation ended and is shown with
// the registers.
func NewViewer(sim *hardware.Simulator, outcome string) *Viewer {
	v := &Viewer{
		sim:     sim,
		outcome: outcome,
		screen: tview.NewTextView().
			SetWrap(false),
		regs: tview.NewTextView().
			SetWrap(false),
		detail: tview.NewTextView().
			SetWrap(false).
			SetMaxLines(traceLength),
		input: tview.NewInputField().
			SetLabel("> "),
		cols: tview.NewFlex(),
		rows: tview.NewFlex().
			SetDirection(tview.FlexRow),
		app: tview.NewApplication(),
	}

	v.screen.SetBorder(true).SetTitle(" screen ")
	v.detail.SetBorder(true)
	v.regs.SetBackgroundColor(tcell.ColorDarkBlue)

	v.cols.
		AddItem(v.screen, textscreen.Columns+screenBorderWidth, 0, false).
		AddItem(v.detail, 0, 1, false)
	v.rows.
		AddItem(v.cols, 0, 1, false).
		AddItem(v.regs, registersPaneWidth, 0, false).
		AddItem(v.input, 1, 0, true)
	v.app.SetRoot(v.rows, true)

	v.input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEscape:
			v.app.Stop()
		case tcell.KeyEnter:
			cmd := v.input.GetText()
			v.input.SetText("")
			if !v.Command(cmd) {
				v.app.Stop()
			}
		}
	})

	v.Refresh()

	return v
}

// Run the viewer. Returns when the user quits.
func (v *Viewer) Run() error {
	return v.app.Run()
}

// SetScreen sets the tcell screen used by the viewer. Must be called before
// Run(). Useful for testing with tcell.NewSimulationScreen().
func (v *Viewer) SetScreen(screen tcell.Screen) {
	v.app.SetScreen(screen)
}

// Stop the viewer.
func (v *Viewer) Stop() {
	v.app.Stop()
}

// Refresh the screen and registers panes and show the trace in the detail
// pane.
func (v *Viewer) Refresh() {
	v.screen.SetText(ScreenText(v.sim))
	v.regs.SetText(RegistersText(v.sim, v.outcome))
	v.showTrace()
}

// Command performs the command typed by the user. Returns false if the
// command is a request to quit.
func (v *Viewer) Command(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return true
	}

	op, arg, _ := strings.Cut(cmd, " ")
	switch op {
	case "q", "quit", "exit":
		return false
	case "t", "trace":
		v.showTrace()
	case "m", "mem", "memory":
		address, err := setup.ParseAddress(arg)
		if err != nil {
			v.showError(err)
			return true
		}
		v.detail.SetTitle(fmt.Sprintf(" memory %s ", setup.Address(address)))
		v.detail.SetText(v.sim.Mem.HexDump(address, memoryLength))
		v.detail.ScrollToBeginning()
	case "d", "dis", "disasm":
		address, err := setup.ParseAddress(arg)
		if err != nil {
			v.showError(err)
			return true
		}
		s := &strings.Builder{}
		_, err = disassembly.Write(s, disassembly.WriteAttr{ByteCode: true}, v.sim.Mem, address, disassemblyLength)
		if err != nil {
			v.showError(err)
			return true
		}
		v.detail.SetTitle(fmt.Sprintf(" disassembly %s ", setup.Address(address)))
		v.detail.SetText(s.String())
		v.detail.ScrollToBeginning()
	default:
		v.showError(fmt.Errorf("unrecognised command: %s", op))
	}

	return true
}

func (v *Viewer) showTrace() {
	v.detail.SetTitle(" trace ")
	v.detail.SetText(TraceText(v.sim, traceLength))
	v.detail.ScrollToEnd()
}

func (v *Viewer) showError(err error) {
	v.detail.SetTitle(" error ")
	v.detail.SetText(err.Error())
}

// Detail returns the title and content of the detail pane.
func (v *Viewer) Detail() (string, string) {
	return v.detail.GetTitle(), v.detail.GetText(true)
}

// ScreenText returns all rows of the text screen. Unlike textscreen.Dump()
// blank lines are not trimmed.
func ScreenText(sim *hardware.Simulator) string {
	rows := make([]string, textscreen.Rows)
	for r := range rows {
		rows[r] = textscreen.Row(sim.Mem, r)
	}
	return strings.Join(rows, "\n")
}

// RegistersText returns the CPU state and the outcome of the run.
func RegistersText(sim *hardware.Simulator, outcome string) string {
	return fmt.Sprintf("%s\ninstructions: %d\n%s",
		sim.CPU, sim.InstructionCount(), outcome)
}

// TraceText returns the last n lines of the trace. If tracing was not enabled
// a message saying so is returned.
func TraceText(sim *hardware.Simulator, n int) string {
	trace := sim.Trace()
	if len(trace) == 0 {
		return "no trace (run with -trace)"
	}
	if len(trace) > n {
		trace = trace[len(trace)-n:]
	}
	return strings.Join(trace, "\n")
}
