// Package report prints armies, the advantage table and battle results for
// the command line.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/ageofwar/internal/combat"
	"github.com/napolitain/ageofwar/internal/models"
	"github.com/napolitain/ageofwar/internal/solver/arrangement"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgYellow)
)

// Printer writes human-readable battle output
type Printer struct {
	out   io.Writer
	delay time.Duration
	sleep func(time.Duration)
}

// Option configures a Printer
type Option func(*Printer)

// WithDelay pauses between battle log lines, replaying the fight one
// engagement at a time
func WithDelay(d time.Duration) Option {
	return func(p *Printer) {
		p.delay = d
	}
}

// NewPrinter creates a printer writing to out
func NewPrinter(out io.Writer, opts ...Option) *Printer {
	p := &Printer{out: out, sleep: time.Sleep}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Banner prints the program title
func (p *Printer) Banner() {
	titleColor.Fprintln(p.out, "\n╭───────────────────────────╮")
	titleColor.Fprintln(p.out, "│  Age of War               │")
	titleColor.Fprintln(p.out, "│  Battle Arrangement Solver│")
	titleColor.Fprintln(p.out, "╰───────────────────────────╯")
	fmt.Fprintln(p.out)
}

// Army prints the raw counts of an army
func (p *Printer) Army(label string, army models.Army) {
	infoColor.Fprintf(p.out, "📋 %s:\n", label)

	table := tablewriter.NewTable(p.out,
		tablewriter.WithHeader([]string{"Unit", "Soldiers"}),
	)
	for _, pl := range army.Platoons() {
		table.Append([]string{pl.Type.DisplayName(), fmt.Sprintf("%d", pl.Soldiers)})
	}
	table.Render()
}

// Dropped lists platoons left out of the fighting side
func (p *Printer) Dropped(label string, platoons []models.Platoon) {
	if len(platoons) == 0 {
		return
	}
	names := make([]string, len(platoons))
	for i, pl := range platoons {
		names[i] = pl.String()
	}
	infoColor.Fprintf(p.out, "   %s: only the 5 largest platoons fight, left out %s\n", label, strings.Join(names, ", "))
}

// Advantages prints the fixed advantage table
func (p *Printer) Advantages() {
	table := tablewriter.NewTable(p.out,
		tablewriter.WithHeader([]string{"Unit", "Beats"}),
	)
	for _, ut := range models.AllUnitTypes() {
		beaten := combat.Beats(ut)
		names := make([]string, len(beaten))
		for i, b := range beaten {
			names[i] = b.DisplayName()
		}
		table.Append([]string{ut.DisplayName(), strings.Join(names, ", ")})
	}
	table.Render()
	fmt.Fprintf(p.out, "   Advantage doubles a platoon's soldiers for that engagement (x%d)\n", combat.AdvantageMultiplier)
}

// Solution prints the winning arrangement followed by its battle log
func (p *Printer) Solution(sol *arrangement.Solution) {
	successColor.Fprintln(p.out, "\n✓ Winning arrangement found:")
	fmt.Fprintf(p.out, "   %s\n", sol.Arrangement)
	fmt.Fprintf(p.out, "   (%d of %d orderings evaluated)\n", sol.PermutationsTried, arrangement.MaxPermutations)

	infoColor.Fprintln(p.out, "\n⚔️  Simulating Battle...")
	for _, e := range sol.Report.Engagements {
		if p.delay > 0 {
			p.sleep(p.delay)
		}
		fmt.Fprintf(p.out, "   %s\n", e)
	}

	fmt.Fprintln(p.out)
	p.Engagements(sol.Report)
	p.Verdict(sol.Report)
}

// Engagements prints the battle log as a table
func (p *Printer) Engagements(r combat.Report) {
	table := tablewriter.NewTable(p.out,
		tablewriter.WithHeader([]string{"#", "You", "Enemy", "Your Strength", "Enemy Strength", "Outcome"}),
	)
	for _, e := range r.Engagements {
		table.Append([]string{
			fmt.Sprintf("%d", e.Position),
			e.Ally.String(),
			e.Enemy.String(),
			fmt.Sprintf("%d", e.AllyStrength),
			fmt.Sprintf("%d", e.EnemyStrength),
			e.Outcome.String(),
		})
	}
	table.Render()
}

// Verdict prints who won the war
func (p *Printer) Verdict(r combat.Report) {
	fmt.Fprintln(p.out, strings.Repeat("─", 40))
	if r.Victory() {
		successColor.Fprintf(p.out, "You won the war! (Total Wins: %d)\n", r.Wins)
		return
	}
	failureColor.Fprintf(p.out, "Enemy won the war. (Total Wins: %d)\n", r.Wins)
}

// NoChance reports an exhausted search
func (p *Printer) NoChance() {
	failureColor.Fprintln(p.out, "\n✗ There is no chance of winning")
}

// Alternatives lists every winning arrangement
func (p *Printer) Alternatives(solutions []*arrangement.Solution) {
	infoColor.Fprintf(p.out, "\n📊 All winning arrangements (%d):\n", len(solutions))
	table := tablewriter.NewTable(p.out,
		tablewriter.WithHeader([]string{"Order #", "Arrangement", "Wins", "Draws", "Losses"}),
	)
	for _, sol := range solutions {
		table.Append([]string{
			fmt.Sprintf("%d", sol.PermutationsTried),
			sol.Arrangement.String(),
			fmt.Sprintf("%d", sol.Report.Wins),
			fmt.Sprintf("%d", sol.Report.Draws),
			fmt.Sprintf("%d", sol.Report.Losses),
		})
	}
	table.Render()
}
