package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/beadsim/internal/trace"
)

const (
	rackHeight  = 16
	minimapCols = 20
	minimapRows = 4
)

type TickMsg time.Time

// Player replays the frames of a recorded trace.
type Player struct {
	tr       *trace.Trace
	pos      int
	running  bool
	interval time.Duration
	minimap  *Canvas
	showHelp bool
}

// NewPlayer prepares tr for playback at fps frames per second.
func NewPlayer(tr *trace.Trace, fps int) Player {
	if fps <= 0 {
		fps = 1
	}
	return Player{
		tr:       tr,
		running:  true,
		interval: time.Second / time.Duration(fps),
		minimap:  NewCanvas(minimapCols, minimapRows),
	}
}

func (p Player) tick() tea.Cmd {
	return tea.Tick(p.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (p Player) Init() tea.Cmd {
	return p.tick()
}

// Position returns the index of the frame on screen.
func (p Player) Position() int { return p.pos }

func (p Player) Running() bool { return p.running }

func (p Player) done() bool {
	return p.pos >= len(p.tr.Frames)-1
}

// Update handles key presses and advances playback on each tick.
func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case " ":
			p.running = !p.running
			if p.running && p.done() {
				p.pos = 0
			}
		case "r":
			p.pos = 0
			p.running = true
		case "[":
			p.running = false
			p.step(-1)
		case "]":
			p.running = false
			p.step(1)
		case "t":
			NextTheme()
		case "?":
			p.showHelp = !p.showHelp
		}
	case TickMsg:
		if p.running {
			if p.done() {
				p.running = false
			} else {
				p.step(1)
			}
		}
		return p, p.tick()
	}
	return p, nil
}

func (p *Player) step(dir int) {
	p.pos += dir
	if p.pos < 0 {
		p.pos = 0
	}
	if last := len(p.tr.Frames) - 1; p.pos > last {
		p.pos = max(last, 0)
	}
}

func (p Player) View() string {
	if len(p.tr.Frames) == 0 {
		return headerStyle().Render("BEAD SORT") + "\n" + mutedStyle().Render("nothing to sort (empty input)") + "\n\nq: quit\n"
	}

	frame := p.tr.Frames[p.pos]
	rackView := rackStyle.Render(Render(frame.Event(), rackHeight))

	var s strings.Builder
	s.WriteString(headerStyle().Render(strings.ToUpper(p.tr.Algorithm+" sort")) + "\n")

	status := "PLAYING"
	switch {
	case p.done():
		status = "DONE"
	case !p.running:
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	total := len(p.tr.Frames)
	s.WriteString(ProgressBar(float64(p.pos+1)/float64(total), 24) + "\n\n")
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d/%d", p.pos+1, total)) + "\n")
	s.WriteString(labelStyle.Render("Phase") + valueStyle.Render(frame.Phase) + "\n")
	s.WriteString(labelStyle.Render("Rod") + valueStyle.Render(slot(frame.B)) + "\n")
	s.WriteString(labelStyle.Render("Row") + valueStyle.Render(slot(frame.C)) + "\n")
	s.WriteString(labelStyle.Render("Values") + valueStyle.Render(fmt.Sprint(frame.Values)) + "\n")
	s.WriteString(labelStyle.Render("Inversions") + valueStyle.Render(fmt.Sprint(Inversions(frame.Values))) + "\n")

	if len(frame.Values) <= minimapCols*2 {
		p.minimap.DrawRack(frame.Values)
		s.WriteString("\n" + beadStyle().Render(p.minimap.String()))
	}

	s.WriteString(helpStyle.Render("─────────────────────\nSP:Pause R:Restart Q:Quit\nT:Theme  ?:Help [ ]:Step"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, rackView, statsStyle.Render(s.String()))

	if p.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume playback    ║
║  R        - Restart from frame 1     ║
║  Q        - Quit                     ║
║  [        - Step back one frame      ║
║  ]        - Step forward one frame   ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func slot(v int) string {
	if v < 0 {
		return "-"
	}
	return fmt.Sprint(v)
}
