package renderer

import (
	"bytes"

	"github.com/jsalinasg/finances"
	md "github.com/nao1215/markdown"
)

// AccountsMarkdown renders the account declarations as one table.
func AccountsMarkdown(accounts []*finances.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")
	table := md.TableSet{
		Header: []string{"Account", "Bank", "Number", "Type", "Currency", "Status"},
		Rows:   [][]string{},
	}
	for _, a := range accounts {
		table.Rows = append(table.Rows, []string{
			a.ID, a.Bank, a.Number, string(a.Type), a.Currency, string(a.Status),
		})
	}
	doc.Table(table)

	return doc.String()
}
