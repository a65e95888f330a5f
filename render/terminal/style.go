package terminal

import "github.com/charmbracelet/lipgloss"

var (
	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
	colorBar    = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
	colorAccent = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}
)

var (
	styleTitle   = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleMeta    = lipgloss.NewStyle().Foreground(colorDim)
	styleSection = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	styleStat      = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleStatLabel = lipgloss.NewStyle().Foreground(colorDim)

	styleBar   = lipgloss.NewStyle().Foreground(colorBar)
	styleCount = lipgloss.NewStyle().Foreground(colorDim)
	styleWord  = lipgloss.NewStyle().Foreground(colorBright)
)
