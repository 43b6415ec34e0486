package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/napolitain/ageofwar/internal/combat"
	"github.com/napolitain/ageofwar/internal/models"
)

// View renders the current phase
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("⚔️  Age of War Battle Planner"))
	sb.WriteString("\n")

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewSide(sideYou), m.viewSide(sideEnemy)))
	sb.WriteString("\n")

	for _, w := range m.warnings {
		if w != "" {
			sb.WriteString(warningStyle.Render("⚠ "+w) + "\n")
		}
	}

	if m.phase != phaseForm {
		sb.WriteString("\n")
		sb.WriteString(m.viewResult())
	}

	sb.WriteString(helpStyle.Render(m.help()))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) viewSide(side int) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(sideNames[side]) + "\n")
	for _, ut := range models.AllUnitTypes() {
		i := inputIndex(side, ut)
		label := labelStyle.Render(ut.DisplayName())
		field := m.inputs[i].View()
		if m.phase == phaseForm && i == m.focus {
			field = focusedStyle.Render("> ") + field
		} else {
			field = blurredStyle.Render("  ") + field
		}
		sb.WriteString(label + field + "\n")
	}
	return columnStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

func (m Model) viewResult() string {
	if m.sol == nil {
		return lossStyle.Render("There is no chance of winning") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Arrangement: %s\n", m.sol.Arrangement))
	for _, e := range m.sol.Report.Engagements[:m.revealed] {
		sb.WriteString(outcomeStyle(e.Outcome).Render(e.String()) + "\n")
	}
	sb.WriteString(m.progress.ViewAs(float64(m.revealed)/float64(models.SideSize)) + "\n")

	if m.phase == phaseDone {
		sb.WriteString(winStyle.Render(fmt.Sprintf("You won the war! (Total Wins: %d)", m.sol.Report.Wins)) + "\n")
	}
	return sb.String()
}

func outcomeStyle(o combat.Outcome) lipgloss.Style {
	switch o {
	case combat.Win:
		return winStyle
	case combat.Draw:
		return drawStyle
	}
	return lossStyle
}

func (m Model) help() string {
	if m.phase == phaseForm {
		return "tab/↓ next • shift+tab/↑ prev • pgup/pgdn ±" + fmt.Sprint(m.step) + " • enter solve • esc quit"
	}
	return "r back to form • q quit"
}
