package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/stockquest/internal/news"
	"github.com/zappabad/stockquest/tui/styles"
)

// NewsPanel displays market events, newest first.
type NewsPanel struct {
	news          []news.Event
	selectedIndex int
	scrollOffset  int
	focused       bool
	width         int
	height        int
}

// NewNewsPanel creates a new news panel.
func NewNewsPanel() *NewsPanel {
	return &NewsPanel{}
}

// Init initializes the panel.
func (p *NewsPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *NewsPanel) Update(msg tea.Msg) (*NewsPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
				if p.selectedIndex < p.scrollOffset {
					p.scrollOffset = p.selectedIndex
				}
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.news)-1 {
				p.selectedIndex++
				visibleItems := p.visibleItems()
				if p.selectedIndex >= p.scrollOffset+visibleItems {
					p.scrollOffset = p.selectedIndex - visibleItems + 1
				}
			}
		}
	}
	return p, nil
}

func (p *NewsPanel) visibleItems() int {
	return max(1, p.height-5)
}

// View renders the panel.
func (p *NewsPanel) View() string {
	var content strings.Builder

	if len(p.news) == 0 {
		content.WriteString(styles.MutedStyle.Render("No news yet. Press n to open the market."))
	} else {
		visibleItems := p.visibleItems()
		start := p.scrollOffset
		end := min(start+visibleItems, len(p.news))

		for i := start; i < end; i++ {
			ev := p.news[i]

			text := ev.Text
			if limit := p.width - 22; limit > 3 && len(text) > limit {
				text = text[:limit-3] + "..."
			}

			textStyle := styles.NewsNormalStyle
			if ev.Severe() {
				textStyle = styles.NewsImportantStyle
			}
			impactStyle := styles.PriceUpStyle
			if ev.Impact < 0 {
				impactStyle = styles.PriceDownStyle
			}

			line := fmt.Sprintf("%s %s %s",
				styles.TimeStyle.Render(fmt.Sprintf("D%-3d", ev.Day)),
				impactStyle.Render(fmt.Sprintf("%+5.1f%%", ev.Impact*100)),
				textStyle.Render(text),
			)
			if i == p.selectedIndex && p.focused {
				line = styles.SelectedRowStyle.Render(line)
			}

			content.WriteString(line)
			if i < end-1 {
				content.WriteString("\n")
			}
		}

		if len(p.news) > visibleItems {
			scrollInfo := fmt.Sprintf(" (%d/%d)", p.selectedIndex+1, len(p.news))
			content.WriteString("\n")
			content.WriteString(styles.MutedStyle.Render(scrollInfo))
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("📰 News", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *NewsPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *NewsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetNews replaces the events. items are ordered oldest first, as returned
// by the event history; the panel shows them newest first.
func (p *NewsPanel) SetNews(items []news.Event) {
	p.news = make([]news.Event, len(items))
	for i, ev := range items {
		p.news[len(items)-1-i] = ev
	}
	p.selectedIndex = 0
	p.scrollOffset = 0
}

// Len returns the number of events shown.
func (p *NewsPanel) Len() int { return len(p.news) }
