package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/stockquest/internal/market"
	marketview "github.com/zappabad/stockquest/internal/market/view"
	"github.com/zappabad/stockquest/internal/portfolio"
	"github.com/zappabad/stockquest/tui/styles"
)

// MarketOverviewPanel displays current prices for all instruments.
type MarketOverviewPanel struct {
	quotes        []marketview.Quote
	shares        map[market.Symbol]int64
	selectedIndex int
	focused       bool
	width         int
	height        int
}

// NewMarketOverviewPanel creates a new market overview panel.
func NewMarketOverviewPanel() *MarketOverviewPanel {
	return &MarketOverviewPanel{
		shares: make(map[market.Symbol]int64),
	}
}

// Init initializes the panel.
func (p *MarketOverviewPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *MarketOverviewPanel) Update(msg tea.Msg) (*MarketOverviewPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		prev := p.selectedIndex
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.quotes)-1 {
				p.selectedIndex++
			}
		}
		if prev != p.selectedIndex {
			sym := p.SelectedSymbol()
			return p, func() tea.Msg { return SymbolSelectedMsg{Symbol: sym} }
		}
	}
	return p, nil
}

// View renders the panel.
func (p *MarketOverviewPanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf("%-6s %-20s %10s %8s %6s",
		"Symbol", "Name", "Price", "Change", "Held")
	content.WriteString(styles.HeaderStyle.Render(header))
	content.WriteString("\n")

	for i, q := range p.quotes {
		name := q.Name
		if len(name) > 20 {
			name = name[:19] + "…"
		}
		held := "-"
		if n := p.shares[q.Symbol]; n > 0 {
			held = fmt.Sprintf("%d", n)
		}

		changeStyle := styles.PriceUpStyle
		if q.Change < 0 {
			changeStyle = styles.PriceDownStyle
		}
		change := changeStyle.Render(fmt.Sprintf("%8s", styles.FormatChange(q.Change)))

		row := fmt.Sprintf("%-6s %-20s %10s %s %6s",
			q.Symbol, name, styles.FormatPrice(q.Price), change, held)

		style := styles.RowStyle
		if i == p.selectedIndex {
			style = styles.SelectedRowStyle
		}
		content.WriteString(style.Render(row))
		if i < len(p.quotes)-1 {
			content.WriteString("\n")
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("📈 Market Overview", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *MarketOverviewPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *MarketOverviewPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetSnapshot replaces the quotes and the player's share counts.
func (p *MarketOverviewPanel) SetSnapshot(snap marketview.MarketSnapshot, holdings []portfolio.Holding) {
	p.quotes = snap.Quotes
	clear(p.shares)
	for _, h := range holdings {
		p.shares[h.Symbol] = h.Shares
	}
	if p.selectedIndex >= len(p.quotes) {
		p.selectedIndex = max(0, len(p.quotes)-1)
	}
}

// SelectedSymbol returns the currently selected symbol.
func (p *MarketOverviewPanel) SelectedSymbol() market.Symbol {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.quotes) {
		return p.quotes[p.selectedIndex].Symbol
	}
	return ""
}

// SelectedQuote returns the quote of the selected instrument.
func (p *MarketOverviewPanel) SelectedQuote() (marketview.Quote, bool) {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.quotes) {
		return p.quotes[p.selectedIndex], true
	}
	return marketview.Quote{}, false
}

// SymbolSelectedMsg is sent when the market selection changes.
type SymbolSelectedMsg struct {
	Symbol market.Symbol
}
