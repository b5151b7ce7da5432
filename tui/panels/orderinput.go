package panels

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/stockquest/internal/market"
	"github.com/zappabad/stockquest/internal/portfolio"
	"github.com/zappabad/stockquest/tui/styles"
)

// OrderInputField represents the currently focused input field.
type OrderInputField int

const (
	FieldSymbol OrderInputField = iota
	FieldSide
	FieldQuantity
	FieldSubmit
)

// OrderInputPanel handles order entry with symbol autocomplete.
type OrderInputPanel struct {
	symbols       []market.Symbol
	symbolInput   textinput.Model
	quantityInput textinput.Model

	// Dropdown state
	showDropdown     bool
	dropdownFiltered []string
	dropdownIndex    int

	sideOptions []portfolio.Side
	sideIndex   int

	currentField OrderInputField

	selected *market.Symbol
	prices   map[market.Symbol]float64

	focused bool
	width   int
	height  int
}

// NewOrderInputPanel creates a new order input panel.
func NewOrderInputPanel(symbols []market.Symbol) *OrderInputPanel {
	symbolInput := textinput.New()
	symbolInput.Placeholder = "Search symbol..."
	symbolInput.Width = 15
	symbolInput.CharLimit = 10

	quantityInput := textinput.New()
	quantityInput.Placeholder = "Quantity"
	quantityInput.Width = 10
	quantityInput.CharLimit = 15

	p := &OrderInputPanel{
		symbols:       symbols,
		symbolInput:   symbolInput,
		quantityInput: quantityInput,
		sideOptions:   []portfolio.Side{portfolio.SideBuy, portfolio.SideSell},
		currentField:  FieldSymbol,
		prices:        make(map[market.Symbol]float64),
	}
	p.filterDropdown("")
	return p
}

// Init initializes the panel.
func (p *OrderInputPanel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the panel.
func (p *OrderInputPanel) Update(msg tea.Msg) (*OrderInputPanel, tea.Cmd) {
	if !p.focused {
		return p, nil
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("down"))):
			p.nextField()
			return p, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("up"))):
			p.prevField()
			return p, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			if p.currentField == FieldSubmit {
				return p, p.submitOrder()
			}
			p.nextField()
			return p, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
			p.showDropdown = false
			return p, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("left"))):
			if p.showDropdown {
				if p.dropdownIndex > 0 {
					p.dropdownIndex--
				}
				return p, nil
			}
			if p.currentField == FieldSide {
				if p.sideIndex > 0 {
					p.sideIndex--
				}
				return p, nil
			}

		case key.Matches(msg, key.NewBinding(key.WithKeys("right"))):
			if p.showDropdown {
				if p.dropdownIndex < len(p.dropdownFiltered)-1 {
					p.dropdownIndex++
				}
				return p, nil
			}
			if p.currentField == FieldSide {
				if p.sideIndex < len(p.sideOptions)-1 {
					p.sideIndex++
				}
				return p, nil
			}
		}
	}

	switch p.currentField {
	case FieldSymbol:
		p.symbolInput, cmd = p.symbolInput.Update(msg)
		p.filterDropdown(p.symbolInput.Value())
		p.showDropdown = len(p.symbolInput.Value()) > 0

	case FieldQuantity:
		p.quantityInput, cmd = p.quantityInput.Update(msg)
	}

	return p, cmd
}

// View renders the panel.
func (p *OrderInputPanel) View() string {
	var content strings.Builder

	content.WriteString(p.renderField("Symbol\n", FieldSymbol, p.renderSymbolField()))
	content.WriteString("\n")
	content.WriteString(p.renderField("Side", FieldSide, p.renderSideField()))
	content.WriteString("\n")
	content.WriteString(p.renderField("Qty", FieldQuantity, p.quantityInput.View()))
	content.WriteString("\n\n")

	submitStyle := styles.InputStyle
	if p.currentField == FieldSubmit && p.focused {
		submitStyle = styles.FocusedInputStyle.Bold(true).Foreground(styles.PrimaryColor)
	}
	content.WriteString(submitStyle.Render("  [Submit Order]  "))

	content.WriteString("\n\n")
	content.WriteString(p.renderOrderSummary())

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("📝 Order Entry", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *OrderInputPanel) renderField(label string, field OrderInputField, inputView string) string {
	labelStyle := styles.LabelStyle
	if p.currentField == field && p.focused {
		labelStyle = labelStyle.Foreground(styles.PrimaryColor)
	}
	return labelStyle.Render(fmt.Sprintf("%-8s", label)) + inputView
}

func (p *OrderInputPanel) renderSymbolField() string {
	var result strings.Builder

	inputStyle := styles.InputStyle
	if p.currentField == FieldSymbol && p.focused {
		inputStyle = styles.FocusedInputStyle
		p.symbolInput.Focus()
	} else {
		p.symbolInput.Blur()
	}

	result.WriteString(inputStyle.Render(p.symbolInput.View()))

	if p.showDropdown && len(p.dropdownFiltered) > 0 {
		result.WriteString("\n")
		maxShow := min(5, len(p.dropdownFiltered))

		for i := 0; i < maxShow; i++ {
			item := p.dropdownFiltered[i]
			style := styles.DropdownItemStyle
			if i == p.dropdownIndex {
				style = styles.DropdownSelectedStyle
			}

			highlighted := p.highlightMatch(item, p.symbolInput.Value())
			result.WriteString("         " + style.Render(highlighted))
			if i < maxShow-1 {
				result.WriteString("\n")
			}
		}
	}

	return result.String()
}

func (p *OrderInputPanel) renderSideField() string {
	var items []string
	for i, side := range p.sideOptions {
		style := styles.DropdownItemStyle
		if i == p.sideIndex {
			if p.currentField == FieldSide && p.focused {
				style = styles.DropdownSelectedStyle
			} else {
				style = styles.DropdownItemStyle.Bold(true)
			}
			if side == portfolio.SideBuy {
				style = style.Foreground(styles.BuyColor)
			} else {
				style = style.Foreground(styles.SellColor)
			}
		}
		items = append(items, style.Render(side.String()))
	}
	return strings.Join(items, " | ")
}

func (p *OrderInputPanel) renderOrderSummary() string {
	var parts []string

	symbol := p.symbolInput.Value()
	if p.selected != nil {
		symbol = string(*p.selected)
	}
	if symbol == "" {
		symbol = "---"
	}
	parts = append(parts, symbol)

	side := p.sideOptions[p.sideIndex]
	sideStyle := styles.BuyStyle
	if side == portfolio.SideSell {
		sideStyle = styles.SellStyle
	}
	parts = append(parts, sideStyle.Render(side.String()))

	qty := p.quantityInput.Value()
	if qty == "" {
		qty = "0"
	}
	parts = append(parts, "x"+qty)

	if p.selected != nil {
		if n, err := strconv.ParseInt(qty, 10, 64); err == nil && n > 0 {
			if price, ok := p.prices[*p.selected]; ok {
				parts = append(parts, "≈ "+styles.FormatPrice(price*float64(n)))
			}
		}
	}

	return styles.HeaderStyle.Render("Order: ") + strings.Join(parts, " ")
}

func (p *OrderInputPanel) filterDropdown(query string) {
	query = strings.ToUpper(query)
	p.dropdownFiltered = nil
	p.dropdownIndex = 0

	for _, sym := range p.symbols {
		if strings.Contains(string(sym), query) {
			p.dropdownFiltered = append(p.dropdownFiltered, string(sym))
		}
	}
}

func (p *OrderInputPanel) highlightMatch(item, query string) string {
	if query == "" {
		return item
	}

	idx := strings.Index(item, strings.ToUpper(query))
	if idx == -1 {
		return item
	}

	before := item[:idx]
	match := item[idx : idx+len(query)]
	after := item[idx+len(query):]

	return before + styles.DropdownMatchStyle.Render(match) + after
}

func (p *OrderInputPanel) selectDropdownItem() {
	if p.dropdownIndex < len(p.dropdownFiltered) {
		sym := market.Symbol(p.dropdownFiltered[p.dropdownIndex])
		p.symbolInput.SetValue(string(sym))
		p.selected = &sym
	}
}

func (p *OrderInputPanel) nextField() {
	switch p.currentField {
	case FieldSymbol:
		if p.showDropdown || p.selected == nil {
			p.selectDropdownItem()
		}
		p.showDropdown = false
		p.currentField = FieldSide
		p.symbolInput.Blur()
	case FieldSide:
		p.currentField = FieldQuantity
		p.quantityInput.Focus()
	case FieldQuantity:
		p.currentField = FieldSubmit
		p.quantityInput.Blur()
	case FieldSubmit:
		p.currentField = FieldSymbol
		p.symbolInput.Focus()
	}
}

func (p *OrderInputPanel) prevField() {
	p.showDropdown = false
	switch p.currentField {
	case FieldSymbol:
		p.currentField = FieldSubmit
		p.symbolInput.Blur()
	case FieldSide:
		p.currentField = FieldSymbol
		p.symbolInput.Focus()
	case FieldQuantity:
		p.currentField = FieldSide
		p.quantityInput.Blur()
	case FieldSubmit:
		p.currentField = FieldQuantity
		p.quantityInput.Focus()
	}
}

func (p *OrderInputPanel) submitOrder() tea.Cmd {
	if p.selected == nil {
		return nil
	}

	qty, err := strconv.ParseInt(strings.TrimSpace(p.quantityInput.Value()), 10, 64)
	if err != nil || qty <= 0 {
		return func() tea.Msg {
			return OrderRejectedMsg{Reason: "quantity must be a positive whole number"}
		}
	}

	order := OrderSubmitMsg{
		Symbol:   *p.selected,
		Side:     p.sideOptions[p.sideIndex],
		Quantity: qty,
	}
	return func() tea.Msg { return order }
}

// SetFocus sets the focus state of the panel.
func (p *OrderInputPanel) SetFocus(focused bool) {
	p.focused = focused
	if focused {
		switch p.currentField {
		case FieldSymbol:
			p.symbolInput.Focus()
		case FieldQuantity:
			p.quantityInput.Focus()
		}
	} else {
		p.symbolInput.Blur()
		p.quantityInput.Blur()
	}
}

// SetSize sets the panel dimensions.
func (p *OrderInputPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetSymbol pre-fills the symbol field.
func (p *OrderInputPanel) SetSymbol(sym market.Symbol) {
	p.symbolInput.SetValue(string(sym))
	p.selected = &sym
}

// SetPrices updates the prices used for the order estimate.
func (p *OrderInputPanel) SetPrices(prices map[market.Symbol]float64) {
	p.prices = prices
}

// Reset clears the input fields.
func (p *OrderInputPanel) Reset() {
	p.symbolInput.SetValue("")
	p.quantityInput.SetValue("")
	p.selected = nil
	p.currentField = FieldSymbol
	p.sideIndex = 0
	p.showDropdown = false
}

// OrderSubmitMsg is sent when an order is submitted.
type OrderSubmitMsg struct {
	Symbol   market.Symbol
	Side     portfolio.Side
	Quantity int64
}

// OrderRejectedMsg is sent when the form cannot produce a valid order.
type OrderRejectedMsg struct {
	Reason string
}
