package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7C3AED") // Purple
	AccentColor  = lipgloss.Color("#F59E0B") // Amber

	// Trading and price direction
	BuyColor  = lipgloss.Color("#10B981")
	SellColor = lipgloss.Color("#EF4444")
	GainColor = BuyColor
	LossColor = SellColor

	// Milestone progress bar gradient
	ProgressStartColor = "#7C3AED"
	ProgressEndColor   = "#F59E0B"

	BackgroundColor  = lipgloss.Color("#1F2937")
	BorderColor      = lipgloss.Color("#374151")
	FocusBorderColor = lipgloss.Color("#7C3AED")
	SelectionColor   = lipgloss.Color("#374151")

	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
	TextMutedColor     = lipgloss.Color("#6B7280")
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FocusBorderColor).
				Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextSecondaryColor)

	RowStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(SelectionColor)

	// MutedStyle is used for empty states and hints.
	MutedStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)
)

// Market and news
var (
	BuyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(BuyColor)

	SellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SellColor)

	PriceStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	PriceUpStyle = lipgloss.NewStyle().
			Foreground(GainColor)

	PriceDownStyle = lipgloss.NewStyle().
			Foreground(LossColor)

	// TimeStyle renders day labels.
	TimeStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	NewsNormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// NewsImportantStyle marks severe events.
	NewsImportantStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(AccentColor)
)

// Portfolio and milestones
var (
	NetWorthStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	WonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor)
)

// Order entry
var (
	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(FocusBorderColor).
				Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)

	// Symbol autocomplete suggestions
	DropdownItemStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Padding(0, 1)

	DropdownSelectedStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(SelectionColor).
				Padding(0, 1)

	DropdownMatchStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)
)

// Chart styles
var (
	CandleUpStyle = lipgloss.NewStyle().
			Foreground(GainColor)

	CandleDownStyle = lipgloss.NewStyle().
			Foreground(LossColor)

	ChartAxisStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	ChartLabelStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(BackgroundColor).
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	StatusBarDescStyle = lipgloss.NewStyle().
				Foreground(TextSecondaryColor)
)

// RenderTitle renders a title bar for a panel.
func RenderTitle(title string, focused bool) string {
	style := TitleStyle
	if focused {
		style = style.Foreground(FocusBorderColor)
	}
	return style.Render(title)
}

// FormatPrice formats a price with two decimals.
func FormatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}

// FormatChange formats a fractional change as a signed percentage.
func FormatChange(change float64) string {
	return fmt.Sprintf("%+.2f%%", change*100)
}
