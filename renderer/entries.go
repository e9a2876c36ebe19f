package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/moneykeeper/moneykeeper"
)

// EntriesMarkdown renders a list of entries as a markdown table under the
// given title.
func EntriesMarkdown(title string, rows []moneykeeper.TaggedEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(rows) == 0 {
		doc.PlainText("No entries.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Id", "Date", "Account", "Amount", "Category", "Description", "Tags"},
		Rows:   [][]string{},
	}
	for _, row := range rows {
		e := row.Entry
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(e.ID(), 10),
			e.Date().String(),
			row.Account,
			e.Signed().SignedString(),
			e.Category(),
			e.Description(),
			tagList(e),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d entries.", len(rows)))
	return doc.String()
}
