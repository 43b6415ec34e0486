// Package tui is the interactive battle planner: two army forms, a solve step
// and an animated reveal of the winning battle log.
package tui

import (
	"fmt"
	"strconv"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/napolitain/ageofwar/internal/config"
	"github.com/napolitain/ageofwar/internal/models"
	"github.com/napolitain/ageofwar/internal/muster"
	"github.com/napolitain/ageofwar/internal/solver/arrangement"
)

type phase int

const (
	phaseForm phase = iota
	phaseReveal
	phaseDone
)

const (
	sideYou = iota
	sideEnemy
	sideCount
)

var sideNames = [sideCount]string{"You", "Enemy"}

// Form fields hold up to seven digits
const (
	fieldDigits   = 7
	maxFieldCount = 9_999_999
)

// stepMsg reveals the next engagement
type stepMsg struct{}

// Model is the bubbletea model of the planner
type Model struct {
	solver    *arrangement.Solver
	logger    *zap.Logger
	step      int
	stepDelay time.Duration

	inputs []textinput.Model
	focus  int

	phase    phase
	warnings [sideCount]string
	you      models.Side
	enemy    models.Side
	sol      *arrangement.Solution
	revealed int
	progress progress.Model
	width    int
}

// Option configures a Model
type Option func(*Model)

// WithLogger attaches a logger
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithArmies prefills both forms
func WithArmies(you, enemy models.Army) Option {
	return func(m *Model) {
		m.fill(sideYou, you)
		m.fill(sideEnemy, enemy)
	}
}

// New creates the planner model. PlayConfig supplies the PgUp/PgDn step and
// the delay between revealed engagements.
func New(cfg config.PlayConfig, solver *arrangement.Solver, opts ...Option) Model {
	if solver == nil {
		solver = arrangement.NewSolver()
	}
	m := Model{
		solver:    solver,
		logger:    zap.NewNop(),
		step:      cfg.Step,
		stepDelay: cfg.StepDelay.Duration,
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}

	units := models.AllUnitTypes()
	m.inputs = make([]textinput.Model, sideCount*len(units))
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.CharLimit = fieldDigits
		ti.Width = 8
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// inputIndex maps a side and unit type to its form field
func inputIndex(side int, ut models.UnitType) int {
	for i, u := range models.AllUnitTypes() {
		if u == ut {
			return side*len(models.AllUnitTypes()) + i
		}
	}
	return -1
}

// fill caps counts that do not fit a field at maxFieldCount
func (m *Model) fill(side int, army models.Army) {
	for _, p := range army.Platoons() {
		v := ""
		if p.Soldiers != 0 {
			v = strconv.Itoa(min(p.Soldiers, maxFieldCount))
		}
		m.inputs[inputIndex(side, p.Type)].SetValue(v)
	}
}

// Init starts the cursor blinking
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and reveal ticks
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 10; w > 10 && w < 60 {
			m.progress.Width = w
		}
		return m, nil

	case stepMsg:
		if m.phase != phaseReveal {
			return m, nil
		}
		m.revealed++
		if m.revealed >= models.SideSize {
			m.phase = phaseDone
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		}
		if m.phase != phaseForm {
			if msg.String() == "r" {
				m.reset()
			}
			return m, nil
		}
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.setFocus((m.focus + 1) % len(m.inputs))
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
		return m, nil
	case "pgup":
		m.adjust(m.step)
		return m, nil
	case "pgdown":
		m.adjust(-m.step)
		return m, nil
	case "enter":
		return m.submit()
	}

	// Counts only
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if !unicode.IsDigit(r) {
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// adjust changes the focused count by delta, clamped to the field range
func (m *Model) adjust(delta int) {
	n := min(max(m.value(m.focus)+delta, 0), maxFieldCount)
	m.inputs[m.focus].SetValue(strconv.Itoa(n))
	m.inputs[m.focus].CursorEnd()
}

// value reads a field as a soldier count; blank is zero
func (m *Model) value(i int) int {
	n, err := strconv.Atoi(m.inputs[i].Value())
	if err != nil {
		return 0
	}
	return n
}

func (m *Model) army(side int) models.Army {
	var a models.Army
	for _, ut := range models.AllUnitTypes() {
		a.Set(ut, m.value(inputIndex(side, ut)))
	}
	return a
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.warnings = [sideCount]string{}

	var sides [sideCount]models.Side
	ok := true
	for side := range sides {
		s, err := muster.Muster(m.army(side))
		if err != nil {
			m.warnings[side] = fmt.Sprintf("%s: %v", sideNames[side], err)
			ok = false
			continue
		}
		sides[side] = s
	}
	if !ok {
		return m, nil
	}

	m.you, m.enemy = sides[sideYou], sides[sideEnemy]
	sol, found := m.solver.FindWinningArrangement(m.you, m.enemy)
	m.logger.Debug("planner solved",
		zap.Stringer("you", m.you),
		zap.Stringer("enemy", m.enemy),
		zap.Bool("found", found))

	m.inputs[m.focus].Blur()
	m.revealed = 0
	if !found {
		m.sol = nil
		m.phase = phaseDone
		return m, nil
	}
	m.sol = sol
	m.phase = phaseReveal
	return m, m.tick()
}

func (m Model) tick() tea.Cmd {
	if m.stepDelay <= 0 {
		return func() tea.Msg { return stepMsg{} }
	}
	return tea.Tick(m.stepDelay, func(time.Time) tea.Msg { return stepMsg{} })
}

// reset returns to the form, keeping the entered counts
func (m *Model) reset() {
	m.phase = phaseForm
	m.sol = nil
	m.revealed = 0
	m.warnings = [sideCount]string{}
	m.inputs[m.focus].Focus()
}
