// Package report renders session state as markdown.
package report

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
	"github.com/zappabad/stockquest/internal/game"
	"github.com/zappabad/stockquest/internal/milestone"
	"github.com/zappabad/stockquest/internal/news"
	"github.com/zappabad/stockquest/internal/portfolio"
)

func price(v float64) string {
	return portfolio.FormatCash(decimal.NewFromFloat(v))
}

func percent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v*100)
}

func impact(v float64) string {
	return fmt.Sprintf("%+.1f%%", v*100)
}

// DayMarkdown renders the events of one day followed by closing prices.
func DayMarkdown(day int, events []news.Event, snap game.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(fmt.Sprintf("Day %d", day))

	if len(events) > 0 {
		var items []string
		for _, ev := range events {
			text := ev.Text
			if ev.Severe() {
				text = md.Bold(text)
			}
			items = append(items, fmt.Sprintf("%s (%s)", text, impact(ev.Impact)))
		}
		doc.BulletList(items...)
	}

	doc.Table(pricesTable(snap))
	return doc.String()
}

func pricesTable(snap game.Snapshot) md.TableSet {
	table := md.TableSet{
		Header: []string{"Symbol", "Name", "Price", "Change"},
	}
	for _, q := range snap.Market.Quotes {
		table.Rows = append(table.Rows, []string{
			string(q.Symbol),
			q.Name,
			price(q.Price),
			percent(q.Change),
		})
	}
	return table
}

// SummaryMarkdown renders the portfolio and milestone standing.
func SummaryMarkdown(snap game.Snapshot, trades []portfolio.Trade) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary after day %d", snap.Day-1))
	doc.Table(md.TableSet{
		Header: []string{md.Bold("Net Worth"), md.Bold(portfolio.FormatCash(snap.NetWorth))},
		Rows: [][]string{
			{"Cash", portfolio.FormatCash(snap.Cash)},
		},
	})

	if len(snap.Holdings) > 0 {
		doc.H2("Holdings")
		table := md.TableSet{
			Header: []string{"Symbol", "Shares", "Price", "Value"},
		}
		for _, h := range snap.Holdings {
			q, _ := snap.Market.Quote(h.Symbol)
			value := portfolio.PriceOf(q.Price).Mul(decimal.NewFromInt(h.Shares))
			table.Rows = append(table.Rows, []string{
				string(h.Symbol),
				fmt.Sprintf("%d", h.Shares),
				price(q.Price),
				portfolio.FormatCash(value),
			})
		}
		doc.Table(table)
	}

	if len(trades) > 0 {
		doc.H2("Trades")
		var items []string
		for _, tr := range trades {
			items = append(items, fmt.Sprintf("%s %d %s @ %s", tr.Side, tr.Quantity, tr.Symbol, portfolio.FormatCash(tr.Price)))
		}
		doc.OrderedList(items...)
	}

	doc.H2("Milestones")
	doc.PlainText(progressLine(snap.Progress))
	return doc.String()
}

func progressLine(p milestone.Progress) string {
	if p.Won() {
		return fmt.Sprintf("All %d milestones reached.", len(p.Achieved))
	}
	return fmt.Sprintf("%d reached. Next: %s at %s (%.1f%%).",
		len(p.Achieved),
		p.Next.Description,
		portfolio.FormatCash(decimal.NewFromFloat(p.Next.Threshold)),
		p.Next.Progress*100,
	)
}

// MilestonesMarkdown renders the milestone table. Reached milestones are
// marked when progress is non-nil.
func MilestonesMarkdown(t milestone.Table, progress *milestone.Progress) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Milestones")

	reached := map[float64]bool{}
	if progress != nil {
		for _, m := range progress.Achieved {
			reached[m.Threshold] = true
		}
	}

	table := md.TableSet{
		Header: []string{"Net Worth", "Goal", "Status"},
	}
	for _, m := range t.Milestones() {
		status := ""
		if reached[m.Threshold] {
			status = "reached"
		}
		table.Rows = append(table.Rows, []string{
			portfolio.FormatCash(decimal.NewFromFloat(m.Threshold)),
			m.Description,
			status,
		})
	}
	doc.Table(table)
	return doc.String()
}
