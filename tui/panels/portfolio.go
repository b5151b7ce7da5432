package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/zappabad/stockquest/internal/game"
	"github.com/zappabad/stockquest/internal/portfolio"
	"github.com/zappabad/stockquest/tui/styles"
)

// PortfolioPanel displays cash, holdings, recent trades and milestone
// progress.
type PortfolioPanel struct {
	snap   game.Snapshot
	trades []portfolio.Trade
	bar    progress.Model

	focused bool
	width   int
	height  int
}

// NewPortfolioPanel creates a new portfolio panel.
func NewPortfolioPanel() *PortfolioPanel {
	return &PortfolioPanel{
		bar: progress.New(progress.WithGradient(styles.ProgressStartColor, styles.ProgressEndColor), progress.WithoutPercentage()),
	}
}

// Init initializes the panel.
func (p *PortfolioPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *PortfolioPanel) Update(msg tea.Msg) (*PortfolioPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *PortfolioPanel) View() string {
	var content strings.Builder

	content.WriteString(fmt.Sprintf("%-10s %s\n", styles.LabelStyle.Render("Cash"), portfolio.FormatCash(p.snap.Cash)))
	content.WriteString(fmt.Sprintf("%-10s %s\n", styles.LabelStyle.Render("Net worth"), styles.NetWorthStyle.Render(portfolio.FormatCash(p.snap.NetWorth))))
	content.WriteString("\n")

	content.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("%-6s %8s %14s", "Symbol", "Shares", "Value")))
	content.WriteString("\n")
	if len(p.snap.Holdings) == 0 {
		content.WriteString(styles.MutedStyle.Render("No positions"))
		content.WriteString("\n")
	}
	for _, h := range p.snap.Holdings {
		q, _ := p.snap.Market.Quote(h.Symbol)
		value := portfolio.PriceOf(q.Price).Mul(decimal.NewFromInt(h.Shares))
		content.WriteString(styles.RowStyle.Render(fmt.Sprintf("%-6s %8d %14s", h.Symbol, h.Shares, portfolio.FormatCash(value))))
		content.WriteString("\n")
	}

	if len(p.trades) > 0 {
		content.WriteString("\n")
		content.WriteString(styles.HeaderStyle.Render("Recent Trades"))
		content.WriteString("\n")
		tradesToShow := p.trades
		if len(tradesToShow) > 5 {
			tradesToShow = tradesToShow[len(tradesToShow)-5:]
		}
		for _, t := range tradesToShow {
			sideStyle := styles.BuyStyle
			if t.Side == portfolio.SideSell {
				sideStyle = styles.SellStyle
			}
			content.WriteString(sideStyle.Render(fmt.Sprintf("%-4s %6d %-6s @ %s", t.Side, t.Quantity, t.Symbol, portfolio.FormatCash(t.Price))))
			content.WriteString("\n")
		}
	}

	content.WriteString("\n")
	content.WriteString(p.renderProgress())

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle(fmt.Sprintf("💼 Portfolio - Day %d", p.snap.Day), p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *PortfolioPanel) renderProgress() string {
	prog := p.snap.Progress
	achieved := fmt.Sprintf("Milestones reached: %d", len(prog.Achieved))
	if prog.Won() {
		return styles.WonStyle.Render(achieved + ". Every goal met. You win!")
	}

	next := prog.Next
	p.bar.Width = max(10, p.width-16)
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.LabelStyle.Render(achieved),
		fmt.Sprintf("Next: %s (%s)", next.Description, portfolio.FormatCash(decimal.NewFromFloat(next.Threshold))),
		p.bar.ViewAs(next.Progress)+fmt.Sprintf(" %5.1f%%", next.Progress*100),
	)
}

// SetFocus sets the focus state of the panel.
func (p *PortfolioPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *PortfolioPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetSnapshot sets the session state to display.
func (p *PortfolioPanel) SetSnapshot(snap game.Snapshot) {
	p.snap = snap
}

// AddTrade records an executed trade.
func (p *PortfolioPanel) AddTrade(trade portfolio.Trade) {
	p.trades = append(p.trades, trade)
	if len(p.trades) > 20 {
		p.trades = p.trades[len(p.trades)-20:]
	}
}
