package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/napolitain/ageofwar/internal/config"
	"github.com/napolitain/ageofwar/internal/models"
	"github.com/napolitain/ageofwar/internal/solver/arrangement"
)

func newTestModel(t *testing.T, opts ...Option) Model {
	t.Helper()
	cfg := config.Defaults().Play
	cfg.StepDelay = config.Duration{}
	return New(cfg, arrangement.NewSolver(), opts...)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func winningArmies() (models.Army, models.Army) {
	you := models.Army{Militia: 60, Spearmen: 30, LightCavalry: 100, FootArcher: 20, HeavyCavalry: 50}
	enemy := models.Army{Spearmen: 10, LightCavalry: 20, FootArcher: 90, HeavyCavalry: 50, CavalryArcher: 80}
	return you, enemy
}

// drain runs cmd until it stops producing reveal ticks
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for i := 0; cmd != nil && i < 10; i++ {
		msg := cmd()
		if _, ok := msg.(stepMsg); !ok {
			break
		}
		m, cmd = update(t, m, msg)
	}
	return m
}

func TestFormHasTwelveFields(t *testing.T) {
	m := newTestModel(t)
	if len(m.inputs) != 12 {
		t.Fatalf("expected 12 inputs, got %d", len(m.inputs))
	}
	if !m.inputs[0].Focused() {
		t.Error("first input should start focused")
	}
}

func TestFocusNavigation(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, key(tea.KeyTab))
	if m.focus != 1 {
		t.Errorf("Tab: focus %d, expected 1", m.focus)
	}
	m, _ = update(t, m, key(tea.KeyDown))
	if m.focus != 2 {
		t.Errorf("Down: focus %d, expected 2", m.focus)
	}
	m, _ = update(t, m, key(tea.KeyUp))
	m, _ = update(t, m, key(tea.KeyShiftTab))
	if m.focus != 0 {
		t.Errorf("Up, Shift+Tab: focus %d, expected 0", m.focus)
	}

	// Wraps backwards from the first field
	m, _ = update(t, m, key(tea.KeyShiftTab))
	if m.focus != 11 {
		t.Errorf("expected wrap to 11, got %d", m.focus)
	}
	if !m.inputs[11].Focused() || m.inputs[0].Focused() {
		t.Error("focus flags not moved with the cursor")
	}
}

func TestPageKeysStepValue(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, key(tea.KeyPgUp))
	m, _ = update(t, m, key(tea.KeyPgUp))
	if got := m.inputs[0].Value(); got != "20" {
		t.Errorf("two PgUp: value %q, expected 20", got)
	}
	m, _ = update(t, m, key(tea.KeyPgDown))
	m, _ = update(t, m, key(tea.KeyPgDown))
	m, _ = update(t, m, key(tea.KeyPgDown))
	if got := m.inputs[0].Value(); got != "0" {
		t.Errorf("value should floor at 0, got %q", got)
	}
}

func TestPageUpClampsAtFieldLimit(t *testing.T) {
	m := newTestModel(t)
	m.inputs[0].SetValue("9999995")

	m, _ = update(t, m, key(tea.KeyPgUp))
	if got := m.inputs[0].Value(); got != "9999999" {
		t.Errorf("PgUp near the limit: value %q, expected 9999999", got)
	}
	m, _ = update(t, m, key(tea.KeyPgUp))
	if got := m.inputs[0].Value(); got != "9999999" {
		t.Errorf("PgUp at the limit: value %q, expected 9999999", got)
	}
	m, _ = update(t, m, key(tea.KeyPgDown))
	if got := m.inputs[0].Value(); got != "9999989" {
		t.Errorf("PgDn from the limit: value %q, expected 9999989", got)
	}
}

func TestOnlyDigitsAccepted(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("4"))
	m, _ = update(t, m, runes("x"))
	m, _ = update(t, m, runes("2"))
	if got := m.inputs[0].Value(); got != "42" {
		t.Errorf("value %q, expected 42", got)
	}
}

func TestSubmitWarnsPerSide(t *testing.T) {
	you, _ := winningArmies()
	m := newTestModel(t, WithArmies(you, models.Army{Militia: 5}))

	m, cmd := update(t, m, key(tea.KeyEnter))
	if cmd != nil {
		t.Error("no command expected when the form is invalid")
	}
	if m.phase != phaseForm {
		t.Errorf("should stay on the form, phase %d", m.phase)
	}
	if m.warnings[sideYou] != "" {
		t.Errorf("unexpected warning for your side: %s", m.warnings[sideYou])
	}
	if !strings.Contains(m.warnings[sideEnemy], "at least 5 platoon types") {
		t.Errorf("enemy warning %q", m.warnings[sideEnemy])
	}
	if !strings.Contains(m.View(), "Enemy: assign non-zero soldiers") {
		t.Error("warning should be rendered")
	}
}

func TestSubmitRevealsBattle(t *testing.T) {
	you, enemy := winningArmies()
	m := newTestModel(t, WithArmies(you, enemy))

	m, cmd := update(t, m, key(tea.KeyEnter))
	if m.phase != phaseReveal {
		t.Fatalf("expected reveal phase, got %d", m.phase)
	}
	if cmd == nil {
		t.Fatal("expected a reveal tick")
	}
	if m.revealed != 0 {
		t.Errorf("nothing should be revealed yet, got %d", m.revealed)
	}

	m = drain(t, m, cmd)
	if m.phase != phaseDone {
		t.Fatalf("expected done phase, got %d", m.phase)
	}
	if m.revealed != models.SideSize {
		t.Errorf("revealed %d engagements, expected 5", m.revealed)
	}

	view := m.View()
	for _, want := range []string{"Battle 1:", "Battle 5:", "You won the war! (Total Wins:"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRevealIsOneEngagementPerTick(t *testing.T) {
	you, enemy := winningArmies()
	m := newTestModel(t, WithArmies(you, enemy))
	m, _ = update(t, m, key(tea.KeyEnter))

	m, _ = update(t, m, stepMsg{})
	m, _ = update(t, m, stepMsg{})
	if m.revealed != 2 {
		t.Fatalf("revealed %d, expected 2", m.revealed)
	}
	view := m.View()
	if !strings.Contains(view, "Battle 2:") || strings.Contains(view, "Battle 3:") {
		t.Error("only the first two engagements should be visible")
	}
	if strings.Contains(view, "You won the war!") {
		t.Error("verdict shown before the reveal finished")
	}
}

func TestNoChance(t *testing.T) {
	you := models.Army{Militia: 1, Spearmen: 1, LightCavalry: 1, HeavyCavalry: 1, FootArcher: 1}
	enemy := models.Army{Militia: 1000, Spearmen: 1000, LightCavalry: 1000, HeavyCavalry: 1000, CavalryArcher: 1000}
	m := newTestModel(t, WithArmies(you, enemy))

	m, cmd := update(t, m, key(tea.KeyEnter))
	if cmd != nil {
		t.Error("no reveal expected")
	}
	if m.phase != phaseDone {
		t.Fatalf("expected done phase, got %d", m.phase)
	}
	if !strings.Contains(m.View(), "There is no chance of winning") {
		t.Error("view should say there is no chance")
	}
}

func TestResetKeepsCounts(t *testing.T) {
	you, enemy := winningArmies()
	m := newTestModel(t, WithArmies(you, enemy))
	m, cmd := update(t, m, key(tea.KeyEnter))
	m = drain(t, m, cmd)

	m, _ = update(t, m, runes("r"))
	if m.phase != phaseForm {
		t.Fatalf("expected form phase after r, got %d", m.phase)
	}
	if m.sol != nil || m.revealed != 0 {
		t.Error("result not cleared")
	}
	if got := m.inputs[inputIndex(sideYou, models.LightCavalry)].Value(); got != "100" {
		t.Errorf("LightCavalry count %q, expected 100", got)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{key(tea.KeyCtrlC), key(tea.KeyEsc), runes("q")} {
		m := newTestModel(t)
		_, cmd := update(t, m, msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", msg)
		}
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, stepMsg{})
	if cmd != nil || m.revealed != 0 {
		t.Error("ticks outside the reveal should be ignored")
	}
}
