package formatter

import (
	"fmt"
	"strings"

	"github.com/caregrid/intake/internal/domain"
	"github.com/caregrid/intake/internal/progress"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// moduleLabels are the display names in canonical module order.
var moduleLabels = map[domain.ModuleKey]string{
	domain.ModuleOverview:   "Overview & status",
	domain.ModuleSensory:    "Sensory profile",
	domain.ModuleSocial:     "Social communication",
	domain.ModuleBehavior:   "Behaviour & interests",
	domain.ModuleMilestones: "Milestone timeline",
	domain.ModuleLog:        "Assessment log",
}

// ModuleLabel returns the display name for a module key.
func ModuleLabel(key domain.ModuleKey) string {
	if label, ok := moduleLabels[key]; ok {
		return label
	}
	return string(key)
}

// RenderBar renders a completion bar like [████░░░░]  45%.
// Colored by completion: green from 75%, yellow from 40%, red below.
func RenderBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 40 {
		style = StyleRed
	} else if pct < 75 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %s", style.Render(bar), fmt.Sprintf("%5.1f%%", pct))
}

// RenderProgressReport renders the overall bar plus one line per module.
func RenderProgressReport(report progress.Report) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", StyleBold.Render("Completion"), RenderBar(report.Overall, 24)))
	for _, key := range domain.AllModules {
		b.WriteString(fmt.Sprintf("  %-22s %s\n", ModuleLabel(key), RenderBar(report.PerModule[key], 16)))
	}
	return b.String()
}
