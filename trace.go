package bin2bit

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/spacemeshos/bin2bit/bittext"
)

// TraceTable collects one row per examined character.
type TraceTable struct {
	rows [][]string
}

func (t *TraceTable) Trace(ev bittext.TraceEvent) {
	t.rows = append(t.rows, []string{
		fmt.Sprintf("%d:%02d", ev.Line, ev.Column),
		fmt.Sprintf("%t", ev.InComment),
		fmt.Sprintf("%t", ev.AtWordStart),
		fmt.Sprintf("%02d/%02d", ev.Index, ev.Chunk),
		fmt.Sprintf("%d", ev.BitCount),
		fmt.Sprintf("'%s'", bittext.Escape(ev.Char)),
		fmt.Sprintf("%02x", ev.Current),
	})
}

func (t *TraceTable) Len() int {
	return len(t.rows)
}

func (t *TraceTable) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"pos", "comment", "word start", "chunk", "bits", "char", "octet"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.AppendBulk(t.rows)
	table.Render()
}
