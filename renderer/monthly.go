package renderer

import (
	"bytes"
	"fmt"

	"github.com/jsalinasg/finances"
	md "github.com/nao1215/markdown"
)

// MonthlyMarkdown renders the per-year month-over-month tables, most recent
// year first, the way the dashboard presents them.
func MonthlyMarkdown(years []finances.YearDiffs, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly changes")
	if len(years) == 0 {
		doc.PlainText("Not enough history for a month-over-month view.")
		return doc.String()
	}

	for _, year := range years {
		doc.H2(fmt.Sprintf("%d", year.Year))
		table := md.TableSet{
			Header: []string{"Month", "Closing total", "Change"},
			Rows:   [][]string{},
		}
		for _, m := range year.Months {
			table.Rows = append(table.Rows, []string{
				m.Month.String(),
				money(m.Total, currency),
				signedMoney(m.Diff, currency),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
