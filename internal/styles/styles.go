package styles

import "github.com/charmbracelet/lipgloss"

// Color constants
const (
	ColorAccent     = "205" // Magenta - used for titles, headers, emphasis
	ColorSuccess    = "171" // Purple - used for success messages
	ColorKeyword    = "86"  // Cyan - used for SQL keywords
	ColorString     = "220" // Yellow - used for SQL strings
	ColorFaint      = "238" // Gray - used for borders, separators, help text
	ColorError      = "196" // Red - used for backend errors
	ColorCellNormal = "252" // Light Gray - used for normal cell text
)

// Common reusable styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent))

	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Bold(true)

	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorError)).
		Bold(true)

	Faint = lipgloss.NewStyle().
		Faint(true)
)

// SQL syntax highlighting styles
var (
	SQLKeyword = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorKeyword)).
			Bold(true)

	SQLString = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorString))
)

// Table styles
var (
	TableHeader = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccent)).
			Bold(true)

	TableCell = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorCellNormal))

	TableBorder = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorFaint))
)
