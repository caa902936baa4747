package terminal

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

type tablePrinter interface {
	SetHeader(header []string)
	Append(columns []string)
	Render()
}

func (p *Provider) newTable() tablePrinter {
	if p.Plain {
		return newPlainPrinter(p.out())
	}
	table := tablewriter.NewWriter(p.out())
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

type plainPrinter struct {
	out     io.Writer
	headers []string
	rows    [][]string
}

func newPlainPrinter(out io.Writer) *plainPrinter {
	return &plainPrinter{out: out}
}

func (p *plainPrinter) SetHeader(header []string) {
	p.headers = header
}

func (p *plainPrinter) Append(columns []string) {
	p.rows = append(p.rows, columns)
}

func (p *plainPrinter) Render() {
	var upper []string
	for _, col := range p.headers {
		upper = append(upper, strings.ToUpper(col))
	}
	io.WriteString(p.out, strings.Join(upper, "\t")+"\n")
	for _, row := range p.rows {
		io.WriteString(p.out, strings.Join(row, "\t")+"\n")
	}
}
