package renderer

import (
	"bytes"
	"fmt"

	"github.com/jsalinasg/finances"
	md "github.com/nao1215/markdown"
)

// LedgerMarkdown renders the tail of the merged ledger: the most recent
// `days` rows, one column per account plus the total.
func LedgerMarkdown(l *finances.Ledger, currency string, days int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	rng := l.Range()
	doc.H1(fmt.Sprintf("Balances %s", rng))

	ids := l.AccountIDs()
	header := append([]string{"Date"}, ids...)
	header = append(header, md.Bold("Total"))

	table := md.TableSet{
		Header: header,
		Rows:   [][]string{},
	}
	from := rng.To.Add(1 - days)
	for row := range l.Rows() {
		if row.Date.Before(from) {
			continue
		}
		cells := make([]string, 0, len(ids)+2)
		cells = append(cells, row.Date.String())
		for _, v := range row.Balances {
			cells = append(cells, money(v, currency))
		}
		cells = append(cells, md.Bold(money(row.Total, currency)))
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	return doc.String()
}
