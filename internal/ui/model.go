package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/0xlemi/raagnote/internal/listen"
	"github.com/0xlemi/raagnote/internal/raag"
	"github.com/0xlemi/raagnote/internal/recorder"
	"github.com/0xlemi/raagnote/internal/swara"
)

const (
	// How long to keep displaying a note after the signal drops
	noteDisplayDuration = 500 * time.Millisecond

	tickInterval = 100 * time.Millisecond

	// Matches listed after analysis
	maxMatches = 5
)

// TickMsg represents a timer tick
type TickMsg time.Time

// NoteMsg carries a mapped note from the listener
type NoteMsg listen.NoteEvent

// SilenceMsg means the listener heard no usable pitch
type SilenceMsg struct{}

// LevelMsg carries the input level
type LevelMsg listen.LevelEvent

// EventMsg converts a listener event into a UI message
func EventMsg(e listen.Event) tea.Msg {
	switch e := e.(type) {
	case listen.NoteEvent:
		return NoteMsg(e)
	case listen.LevelEvent:
		return LevelMsg(e)
	default:
		return SilenceMsg{}
	}
}

// Model represents the UI state
type Model struct {
	recorder *recorder.Recorder
	engine   *raag.Engine
	script   swara.Script
	tonic    swara.Tonic
	clock    func() time.Time

	current   *swara.Mapping
	lastHeard time.Time
	level     LevelMsg
	session   recorder.Session
	matches   []raag.Match
	analyzed  bool
	width     int
	height    int
}

// NewModel creates a new UI model
func NewModel(rec *recorder.Recorder, engine *raag.Engine, tonic swara.Tonic, script swara.Script) Model {
	return Model{
		recorder: rec,
		engine:   engine,
		tonic:    tonic,
		script:   script,
		clock:    time.Now,
		level:    LevelMsg{DB: -100},
	}
}

// Init initializes the UI model
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update updates the UI model based on messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.toggleRecording()
		case "s":
			if m.script == swara.Latin {
				m.script = swara.Devanagari
			} else {
				m.script = swara.Latin
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case TickMsg:
		m.expireNote()
		if m.recorder.Recording() {
			m.session = m.recorder.Session()
		}
		return m, tick()

	case NoteMsg:
		mapping := msg.Mapping
		m.current = &mapping
		m.lastHeard = m.clock()
		if msg.Recorded {
			m.session = m.recorder.Session()
		}

	case SilenceMsg:
		m.expireNote()

	case LevelMsg:
		m.level = msg
	}

	return m, nil
}

// toggleRecording starts a session, or stops it and ranks the captured swaras
func (m *Model) toggleRecording() {
	if !m.recorder.Recording() {
		m.session = m.recorder.Start()
		m.matches = nil
		m.analyzed = false
		return
	}
	m.session = m.recorder.Stop()
	m.matches = m.engine.Match(m.session.Sequence)
	m.analyzed = true
}

func (m *Model) expireNote() {
	if m.current != nil && m.clock().Sub(m.lastHeard) > noteDisplayDuration {
		m.current = nil
	}
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("RaagNote - Sa = " + m.tonic.String()))
	b.WriteString("\n")

	if m.current != nil {
		b.WriteString(renderSwara(*m.current, m.script))
		b.WriteString("\n")
		info := fmt.Sprintf("%s | %.2f Hz | Cents: %+.1f",
			m.current.Western(), m.current.Frequency, m.current.Cents)
		b.WriteString(infoStyle.Render(info))
		b.WriteString("\n")
		b.WriteString(centMeter(m.current.Cents))
	} else {
		b.WriteString(infoStyle.Render("Listening for audio..."))
	}
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Level: %s %.1f dB", levelBar(m.level.DB), m.level.DB)))
	b.WriteString("\n\n")

	b.WriteString(m.viewRecording())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("r record/analyze • s script • q quit"))

	return b.String()
}

func (m Model) viewRecording() string {
	seq := strings.Join(m.session.Sequence.In(m.script).Strings(), " ")

	if m.recorder.Recording() {
		elapsed := m.clock().Sub(m.session.Started).Truncate(time.Second)
		return recStyle.Render("● REC "+elapsed.String()) + " " + seq
	}
	if !m.analyzed {
		return infoStyle.Render("Press r to start recording")
	}

	var b strings.Builder
	b.WriteString(infoStyle.Render("Recorded: " + seq))
	b.WriteString("\n")
	if len(m.matches) == 0 {
		if len(m.session.Sequence) < raag.MinSequenceLength {
			b.WriteString(infoStyle.Render(fmt.Sprintf("Need at least %d swaras to match", raag.MinSequenceLength)))
		} else {
			b.WriteString(infoStyle.Render("No raag matched with enough confidence"))
		}
		return b.String()
	}
	for i, match := range m.matches[:min(len(m.matches), maxMatches)] {
		line := fmt.Sprintf("%d. %-16s %5.1f%%  %s thaat, %s",
			i+1, match.Name, match.Confidence*100, match.Thaat, match.Time)
		if i == 0 {
			b.WriteString(topMatchStyle.Render(line))
		} else {
			b.WriteString(infoStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
