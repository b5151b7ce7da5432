package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	marketview "github.com/zappabad/stockquest/internal/market/view"
	"github.com/zappabad/stockquest/tui/styles"
)

// CandlestickPanel displays daily candles for one instrument.
type CandlestickPanel struct {
	quote marketview.Quote

	focused bool
	width   int
	height  int
}

// NewCandlestickPanel creates a new candlestick chart panel.
func NewCandlestickPanel() *CandlestickPanel {
	return &CandlestickPanel{}
}

// Init initializes the panel.
func (p *CandlestickPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *CandlestickPanel) Update(msg tea.Msg) (*CandlestickPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *CandlestickPanel) View() string {
	name := "No instrument"
	if p.quote.Symbol != "" {
		name = fmt.Sprintf("%s %s", p.quote.Symbol, styles.FormatPrice(p.quote.Price))
	}

	var content strings.Builder

	chartWidth := p.width - 4
	chartHeight := max(5, p.height-6)

	// The first candle is the opening price alone; a chart needs a traded day.
	if len(p.quote.Candles) < 2 {
		content.WriteString(styles.MutedStyle.Render("No trading days yet..."))
	} else {
		content.WriteString(renderCandles(chartWidth, chartHeight, p.quote.Candles))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle(fmt.Sprintf("📉 Chart - %s", name), p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func renderCandles(width, height int, candles []marketview.Candle) string {
	if len(candles) == 0 {
		return ""
	}

	// 9 chars for the price axis plus a separator; 2 chars per candle.
	candlesToShow := max(1, (width-10)/2)
	candlesToShow = min(candlesToShow, len(candles))
	display := candles[len(candles)-candlesToShow:]

	minPrice, maxPrice := display[0].Low, display[0].High
	for _, c := range display {
		minPrice = min(minPrice, c.Low)
		maxPrice = max(maxPrice, c.High)
	}
	padding := (maxPrice - minPrice) * 0.1
	if padding == 0 {
		padding = max(0.01, maxPrice*0.01)
	}
	minPrice -= padding
	maxPrice += padding

	chartHeight := max(5, height-3)

	var result strings.Builder
	for row := 0; row < chartHeight; row++ {
		price := yToPrice(row, minPrice, maxPrice, chartHeight)
		result.WriteString(styles.ChartAxisStyle.Render(fmt.Sprintf("%8s │", styles.FormatPrice(price))))

		for _, c := range display {
			style := styles.CandleUpStyle
			if !c.Up() {
				style = styles.CandleDownStyle
			}
			result.WriteString(style.Render(string(candleChar(c, row, minPrice, maxPrice, chartHeight))))
			result.WriteString(" ")
		}
		result.WriteString("\n")
	}

	result.WriteString(styles.ChartAxisStyle.Render("─────────┴"))
	for range display {
		result.WriteString(styles.ChartAxisStyle.Render("──"))
	}
	result.WriteString("\n")

	// Day labels every five candles.
	result.WriteString("          ")
	for i := 0; i < len(display); i++ {
		if i%5 == 0 {
			label := fmt.Sprintf("%-10d", display[i].Day)
			if room := (len(display) - i) * 2; len(label) > room {
				label = label[:room]
			}
			result.WriteString(styles.ChartLabelStyle.Render(label))
			i += len(label)/2 - 1
		} else {
			result.WriteString("  ")
		}
	}

	return result.String()
}

// candleChar returns the character to draw for a candle at a given row.
func candleChar(c marketview.Candle, row int, minPrice, maxPrice float64, height int) rune {
	rowPrice := yToPrice(row, minPrice, maxPrice, height)

	bodyTop, bodyBottom := max(c.Open, c.Close), min(c.Open, c.Close)
	tolerance := (maxPrice - minPrice) / float64(height*2)

	switch {
	case rowPrice <= bodyTop+tolerance && rowPrice >= bodyBottom-tolerance:
		return '┃'
	case rowPrice <= c.High+tolerance && rowPrice > bodyTop:
		return '│'
	case rowPrice >= c.Low-tolerance && rowPrice < bodyBottom:
		return '│'
	}
	return ' '
}

func yToPrice(y int, minPrice, maxPrice float64, height int) float64 {
	if height <= 1 {
		return minPrice
	}
	ratio := float64(y) / float64(height-1)
	return maxPrice - ratio*(maxPrice-minPrice)
}

// SetFocus sets the focus state of the panel.
func (p *CandlestickPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *CandlestickPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetQuote sets the instrument to chart.
func (p *CandlestickPanel) SetQuote(q marketview.Quote) {
	p.quote = q
}
