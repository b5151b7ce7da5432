package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/stockquest/internal/game"
	"github.com/zappabad/stockquest/internal/market"
	"github.com/zappabad/stockquest/internal/news"
	"github.com/zappabad/stockquest/internal/portfolio"
	"github.com/zappabad/stockquest/tui/panels"
	"github.com/zappabad/stockquest/tui/styles"
)

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusMarket     PanelFocus = 0
	FocusChart      PanelFocus = 1
	FocusNews       PanelFocus = 2
	FocusOrderInput PanelFocus = 3
	FocusPortfolio  PanelFocus = 4

	panelCount = 5
)

// newsHistory is the number of events shown in the news panel.
const newsHistory = 50

// Model is the main TUI application model.
//
// Game calls run inside commands so the UI stays responsive while a day is
// being generated. Update only reads the snapshot carried by result messages.
type Model struct {
	ctx  context.Context
	game *game.Game

	snap game.Snapshot

	// Panels
	marketPanel     *panels.MarketOverviewPanel
	chartPanel      *panels.CandlestickPanel
	newsPanel       *panels.NewsPanel
	orderInputPanel *panels.OrderInputPanel
	portfolioPanel  *panels.PortfolioPanel

	focusedPanel PanelFocus

	width  int
	height int

	statusMsg string
	ready     bool
	advancing bool
	won       bool
}

// NewModel creates a new TUI model for g.
func NewModel(ctx context.Context, g *game.Game) *Model {
	m := &Model{
		ctx:             ctx,
		game:            g,
		marketPanel:     panels.NewMarketOverviewPanel(),
		chartPanel:      panels.NewCandlestickPanel(),
		newsPanel:       panels.NewNewsPanel(),
		orderInputPanel: panels.NewOrderInputPanel(g.Symbols()),
		portfolioPanel:  panels.NewPortfolioPanel(),
		focusedPanel:    FocusMarket,
		statusMsg:       "Press n to open the market",
	}
	m.applySnapshot(g.Snapshot())
	m.won = m.snap.Progress.Won()
	if sym := m.marketPanel.SelectedSymbol(); sym != "" {
		m.orderInputPanel.SetSymbol(sym)
	}
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.marketPanel.Init(),
		m.chartPanel.Init(),
		m.newsPanel.Init(),
		m.orderInputPanel.Init(),
		m.portfolioPanel.Init(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.focusedPanel != FocusOrderInput {
				return m, tea.Quit
			}

		case "n":
			if m.focusedPanel != FocusOrderInput {
				return m, m.advanceDay()
			}

		case "ctrl+n":
			return m, m.advanceDay()

		case "tab":
			m.cycleFocus()
			return m, nil

		case "shift+tab":
			m.focusedPanel = (m.focusedPanel + panelCount - 1) % panelCount
			return m, nil

		case "f1":
			m.setFocus(FocusMarket)
			return m, nil
		case "f2":
			m.setFocus(FocusChart)
			return m, nil
		case "f3":
			m.setFocus(FocusNews)
			return m, nil
		case "f4":
			m.setFocus(FocusOrderInput)
			return m, nil
		case "f5":
			m.setFocus(FocusPortfolio)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case panels.SymbolSelectedMsg:
		m.selectSymbol(msg.Symbol)

	case panels.OrderSubmitMsg:
		cmds = append(cmds, m.submitOrder(msg))

	case panels.OrderRejectedMsg:
		m.statusMsg = "❌ " + msg.Reason

	case orderResultMsg:
		m.handleOrderResult(msg)

	case dayAdvancedMsg:
		m.handleDayAdvanced(msg)
	}

	m.updateFocusedPanel(msg, &cmds)

	return m, tea.Batch(cmds...)
}

func (m *Model) updateFocusedPanel(msg tea.Msg, cmds *[]tea.Cmd) {
	// Only key presses are routed by focus; other messages are handled above.
	if _, ok := msg.(tea.KeyMsg); !ok {
		return
	}

	var cmd tea.Cmd
	switch m.focusedPanel {
	case FocusMarket:
		m.marketPanel, cmd = m.marketPanel.Update(msg)
	case FocusChart:
		m.chartPanel, cmd = m.chartPanel.Update(msg)
	case FocusNews:
		m.newsPanel, cmd = m.newsPanel.Update(msg)
	case FocusOrderInput:
		m.orderInputPanel, cmd = m.orderInputPanel.Update(msg)
	case FocusPortfolio:
		m.portfolioPanel, cmd = m.portfolioPanel.Update(msg)
	}

	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	m.marketPanel.SetFocus(m.focusedPanel == FocusMarket)
	m.chartPanel.SetFocus(m.focusedPanel == FocusChart)
	m.newsPanel.SetFocus(m.focusedPanel == FocusNews)
	m.orderInputPanel.SetFocus(m.focusedPanel == FocusOrderInput)
	m.portfolioPanel.SetFocus(m.focusedPanel == FocusPortfolio)

	// Layout:
	// ┌──────────────────────┬──────────────────────┐
	// │   Market Overview    │        Chart         │
	// ├──────────┬───────────┴──────┬───────────────┤
	// │   News   │   Order Input    │   Portfolio   │
	// └──────────┴──────────────────┴───────────────┘

	halfWidth := m.width / 2
	leftWidth := m.width / 3
	middleWidth := m.width / 3
	rightWidth := m.width - leftWidth - middleWidth

	topHeight := (m.height - 1) / 2
	bottomHeight := m.height - topHeight - 1

	m.marketPanel.SetSize(halfWidth, topHeight)
	m.chartPanel.SetSize(m.width-halfWidth, topHeight)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.marketPanel.View(),
		m.chartPanel.View(),
	)

	m.newsPanel.SetSize(leftWidth, bottomHeight)
	m.orderInputPanel.SetSize(middleWidth, bottomHeight)
	m.portfolioPanel.SetSize(rightWidth, bottomHeight)

	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.newsPanel.View(),
		m.orderInputPanel.View(),
		m.portfolioPanel.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, topRow, bottomRow, m.renderStatusBar())
}

func (m *Model) renderStatusBar() string {
	help := []string{
		styles.StatusBarKeyStyle.Render("n") + styles.StatusBarDescStyle.Render(" next day"),
		styles.StatusBarKeyStyle.Render("F1-F5/Tab") + styles.StatusBarDescStyle.Render(" panels"),
		styles.StatusBarKeyStyle.Render("↑↓") + styles.StatusBarDescStyle.Render(" select"),
		styles.StatusBarKeyStyle.Render("q") + styles.StatusBarDescStyle.Render(" quit"),
	}

	helpStr := lipgloss.JoinHorizontal(lipgloss.Center, help[0], " │ ", help[1], " │ ", help[2], " │ ", help[3])

	status := ""
	if m.advancing {
		status = fmt.Sprintf(" │ Simulating day %d...", m.snap.Day)
	} else if m.statusMsg != "" {
		status = " │ " + m.statusMsg
	}

	return styles.StatusBarStyle.Width(m.width).Render(helpStr + status)
}

func (m *Model) setFocus(panel PanelFocus) {
	m.focusedPanel = panel
}

func (m *Model) cycleFocus() {
	m.focusedPanel = (m.focusedPanel + 1) % panelCount
}

func (m *Model) selectSymbol(sym market.Symbol) {
	if q, ok := m.snap.Market.Quote(sym); ok {
		m.chartPanel.SetQuote(q)
	}
	m.orderInputPanel.SetSymbol(sym)
}

func (m *Model) applySnapshot(snap game.Snapshot) {
	m.snap = snap
	m.marketPanel.SetSnapshot(snap.Market, snap.Holdings)
	m.portfolioPanel.SetSnapshot(snap)

	prices := make(map[market.Symbol]float64, len(snap.Market.Quotes))
	for _, q := range snap.Market.Quotes {
		prices[q.Symbol] = q.Price
	}
	m.orderInputPanel.SetPrices(prices)

	if q, ok := m.marketPanel.SelectedQuote(); ok {
		m.chartPanel.SetQuote(q)
	}
}

func (m *Model) advanceDay() tea.Cmd {
	if m.advancing {
		return nil
	}
	m.advancing = true
	g, ctx := m.game, m.ctx
	return func() tea.Msg {
		events := g.AdvanceDay(ctx)
		return dayAdvancedMsg{
			events: events,
			recent: g.RecentEvents(newsHistory),
			snap:   g.Snapshot(),
		}
	}
}

func (m *Model) handleDayAdvanced(msg dayAdvancedMsg) {
	m.advancing = false
	m.applySnapshot(msg.snap)
	m.newsPanel.SetNews(msg.recent)

	m.statusMsg = fmt.Sprintf("Day %d closed with %d events", msg.snap.Day-1, len(msg.events))
	if !m.won && msg.snap.Progress.Won() {
		m.won = true
		m.statusMsg = "🏆 Every milestone reached. You win!"
	}
}

func (m *Model) submitOrder(order panels.OrderSubmitMsg) tea.Cmd {
	if m.advancing {
		m.statusMsg = "❌ Market is busy, try again after the day closes"
		return nil
	}
	g := m.game
	return func() tea.Msg {
		var (
			trade portfolio.Trade
			err   error
		)
		if order.Side == portfolio.SideBuy {
			trade, err = g.Buy(order.Symbol, order.Quantity)
		} else {
			trade, err = g.Sell(order.Symbol, order.Quantity)
		}
		return orderResultMsg{trade: trade, err: err, snap: g.Snapshot()}
	}
}

func (m *Model) handleOrderResult(msg orderResultMsg) {
	m.applySnapshot(msg.snap)
	if msg.err != nil {
		m.statusMsg = "❌ Order failed: " + orderErrorText(msg.err)
		return
	}
	m.portfolioPanel.AddTrade(msg.trade)
	m.statusMsg = fmt.Sprintf("✓ %s %d %s @ %s",
		msg.trade.Side, msg.trade.Quantity, msg.trade.Symbol, portfolio.FormatCash(msg.trade.Price))

	if !m.won && msg.snap.Progress.Won() {
		m.won = true
		m.statusMsg = "🏆 Every milestone reached. You win!"
	}
}

func orderErrorText(err error) string {
	switch {
	case errors.Is(err, portfolio.ErrInsufficientFunds):
		return "not enough cash"
	case errors.Is(err, portfolio.ErrInsufficientShares):
		return "not enough shares"
	case errors.Is(err, portfolio.ErrInvalidQuantity):
		return "quantity must be positive"
	case errors.Is(err, game.ErrUnknownSymbol):
		return "unknown symbol"
	}
	return err.Error()
}

// dayAdvancedMsg is sent after a simulated day completes.
type dayAdvancedMsg struct {
	events []news.Event
	recent []news.Event
	snap   game.Snapshot
}

// orderResultMsg is sent after an order is processed.
type orderResultMsg struct {
	trade portfolio.Trade
	err   error
	snap  game.Snapshot
}
