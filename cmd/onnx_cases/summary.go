package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/onnx-conformance/cases"
	"github.com/gomlx/onnx-conformance/internal/fixtures"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Faint(false).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Faint(true).
			PaddingLeft(1).PaddingRight(1)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
)

func newPlainTable() *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			switch {
			case row == lgtable.HeaderRow:
				return headerRowStyle
			case row%2 == 0:
				s = oddRowStyle
			default:
				s = evenRowStyle
			}
			return s.Align(lipgloss.Left)
		})
}

func shapesString(values []*tensors.Tensor) string {
	parts := make([]string, len(values))
	for ii, t := range values {
		parts[ii] = t.Shape().String()
	}
	return strings.Join(parts, ", ")
}

// report writes the summary and the cases tables to w.
func report(w io.Writer, generated []*cases.Case, dir *fixtures.Dir, seed uint64) {
	fmt.Fprintln(w, titleStyle.Render("Summary"))
	table := newPlainTable()
	table.Row("# cases", humanize.Comma(int64(len(generated))))
	table.Row("seed", fmt.Sprintf("%d", seed))
	if dir != nil {
		table.Row("output", dir.Root())
		table.Row("# bytes", humanize.Bytes(uint64(dir.BytesWritten())))
	}
	fmt.Fprintln(w, table.Render())

	fmt.Fprintln(w, titleStyle.Render("Cases"))
	table = newPlainTable().Headers("Name", "Operator", "Inputs", "Outputs")
	for _, c := range generated {
		table.Row(c.Name, c.Node.OpType, shapesString(c.Inputs), shapesString(c.Outputs))
	}
	fmt.Fprintln(w, table.Render())
}
