// Package report renders uniform records as bordered ASCII tables suitable
// for posting into a chat room as monospace text.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Table is an ordered set of named columns plus rows aligned to them.
type Table struct {
	columns []string
	rows    [][]string
}

func New(columns ...string) *Table {
	return &Table{columns: columns}
}

// AddRow appends one row. Short rows are padded with empty cells so every
// row stays aligned to the column set.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

func (t *Table) Len() int {
	return len(t.rows)
}

// SortBy stable-sorts rows by the named column. Cells that both parse as
// numbers compare numerically, everything else compares as strings.
func (t *Table) SortBy(column string, descending bool) error {
	idx := -1
	for i, c := range t.columns {
		if c == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("no such column: %q", column)
	}

	sort.SliceStable(t.rows, func(i, j int) bool {
		if descending {
			i, j = j, i
		}
		return cellLess(t.rows[i][idx], t.rows[j][idx])
	})
	return nil
}

func cellLess(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return fa < fb
	}
	return a < b
}

// Render produces the bordered table. An empty table renders headers only.
func (t *Table) Render() string {
	var buf strings.Builder
	w := tablewriter.NewWriter(&buf)
	w.SetHeader(t.columns)
	w.SetAutoFormatHeaders(false)
	w.SetAutoWrapText(false)
	w.AppendBulk(t.rows)
	w.Render()
	return buf.String()
}
