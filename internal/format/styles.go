package format

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// The palette mirrors the bright ANSI colors the console has always used:
// cyan banners, yellow command text, green numbers and checks, red errors.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	bannerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	sectionStyle  = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	commandStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	numberStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	goodStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	timeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	exitStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

var (
	divider     = strings.Repeat("=", 70)
	thinDivider = strings.Repeat("─", 70)
)
