package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/ageofwar/internal/models"
	"github.com/napolitain/ageofwar/internal/solver/arrangement"
)

func init() {
	color.NoColor = true
}

func testSolution(t *testing.T) *arrangement.Solution {
	t.Helper()
	user, err := models.NewSide([]models.Platoon{
		{Type: models.Militia, Soldiers: 60},
		{Type: models.Spearmen, Soldiers: 30},
		{Type: models.LightCavalry, Soldiers: 100},
		{Type: models.FootArcher, Soldiers: 20},
		{Type: models.HeavyCavalry, Soldiers: 50},
	})
	require.NoError(t, err)
	enemy, err := models.NewSide([]models.Platoon{
		{Type: models.Spearmen, Soldiers: 10},
		{Type: models.LightCavalry, Soldiers: 20},
		{Type: models.FootArcher, Soldiers: 90},
		{Type: models.HeavyCavalry, Soldiers: 50},
		{Type: models.CavalryArcher, Soldiers: 80},
	})
	require.NoError(t, err)

	sol, ok := arrangement.FindWinningArrangement(user, enemy)
	require.True(t, ok)
	return sol
}

func TestSolutionOutput(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Solution(testSolution(t))
	out := buf.String()

	assert.Contains(t, out, "Winning arrangement found")
	assert.Contains(t, out, "Militia#60;Spearmen#30;LightCavalry#100;FootArcher#20;HeavyCavalry#50")
	assert.Contains(t, out, "Battle 1: Militia#60 vs Spearmen#10 => WIN (You: 120 vs Enemy: 10)")
	assert.Contains(t, out, "You won the war! (Total Wins: 3)")
}

func TestSolutionDelayBetweenEngagements(t *testing.T) {
	var buf bytes.Buffer
	var slept []time.Duration
	p := NewPrinter(&buf, WithDelay(time.Second))
	p.sleep = func(d time.Duration) { slept = append(slept, d) }

	p.Solution(testSolution(t))

	assert.Len(t, slept, models.SideSize)
	for _, d := range slept {
		assert.Equal(t, time.Second, d)
	}
}

func TestNoDelayByDefault(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.sleep = func(time.Duration) { t.Fatal("should not sleep without a delay") }
	p.Solution(testSolution(t))
}

func TestAdvantagesTable(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Advantages()
	out := buf.String()

	for _, ut := range models.AllUnitTypes() {
		assert.Contains(t, out, ut.DisplayName())
	}
	assert.Contains(t, out, "x2")
}

func TestArmyAndDropped(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.Army("Your Army", models.Army{Militia: 60, CavalryArcher: 5})
	p.Dropped("Your Army", []models.Platoon{{Type: models.CavalryArcher, Soldiers: 5}})
	out := buf.String()

	assert.Contains(t, out, "Your Army")
	assert.Contains(t, out, "60")
	assert.Contains(t, out, "left out CavalryArcher#5")
}

func TestDroppedNothing(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Dropped("Your Army", nil)
	assert.Empty(t, buf.String())
}

func TestNoChanceAndAlternatives(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.NoChance()
	p.Alternatives([]*arrangement.Solution{testSolution(t)})
	out := buf.String()

	assert.Contains(t, out, "There is no chance of winning")
	assert.Contains(t, out, "All winning arrangements (1)")
	assert.True(t, strings.Contains(out, "Militia#60;Spearmen#30"))
}
