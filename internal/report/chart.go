// Package report строит отчёт «заказы по датам» в виде текстовой
// столбчатой диаграммы.
package report

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"lavka/internal/repository"
)

// barWidth ширина самого длинного столбца диаграммы в символах
const barWidth = 40

// Chart печатает количество заказов по датам: дата, число заказов и
// столбец, масштабированный к максимуму
func Chart(w io.Writer, counts []repository.DateCount) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Date", "Orders", ""})

	var max int64
	for _, dc := range counts {
		if dc.Count > max {
			max = dc.Count
		}
	}
	for _, dc := range counts {
		t.AppendRow(table.Row{dc.Date, dc.Count, bar(dc.Count, max)})
	}
	t.Render()
}

func bar(count, max int64) string {
	if count <= 0 || max <= 0 {
		return ""
	}
	n := int(count * barWidth / max)
	if n == 0 {
		n = 1
	}
	return strings.Repeat("#", n)
}
