package renderer

import (
	"bytes"
	"fmt"

	"github.com/jsalinasg/finances"
	md "github.com/nao1215/markdown"
)

// HoldingsMarkdown renders the per-instrument valuation breakdown: the most
// recent `days` rows, one column per instrument plus the holdings balance.
// Days where an instrument has no usable quote render as "n/a"; the list of
// gaps follows the table as warnings.
func HoldingsMarkdown(p *finances.PricedHoldings, days int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	rng := p.Range()
	currency := p.ReportingCurrency()
	doc.H1(fmt.Sprintf("Holdings %s", rng))

	instruments := p.Instruments()
	header := append([]string{"Date"}, instruments...)
	header = append(header, md.Bold("Balance"))

	table := md.TableSet{
		Header: header,
		Rows:   [][]string{},
	}
	from := rng.To.Add(1 - days)
	for day := range rng.Days() {
		if day.Before(from) {
			continue
		}
		cells := make([]string, 0, len(instruments)+2)
		cells = append(cells, day.String())
		for _, id := range instruments {
			v, ok := p.Value(id, day)
			if !ok {
				cells = append(cells, "n/a")
				continue
			}
			cells = append(cells, money(v, currency))
		}
		balance, _ := p.Balance(day)
		cells = append(cells, md.Bold(money(balance, currency)))
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	out := doc.String()
	if w := WarningsMarkdown(p.Warnings()); w != "" {
		out += "\n" + w
	}
	return out
}
