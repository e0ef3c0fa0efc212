// Package parser turns basketball-reference pages into player statistics
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/myusername/nba-salary-predictor/pkg/models"
)

// ParseTables returns every table in the document, in page order.
// Tables hidden inside HTML comments are not part of the DOM and are skipped.
func ParseTables(doc *goquery.Document) []models.Table {
	var tables []models.Table
	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		tables = append(tables, parseTable(table))
	})
	return tables
}

func parseTable(table *goquery.Selection) models.Table {
	var header []string
	var body []*goquery.Selection

	if thead := table.ChildrenFiltered("thead"); thead.Length() > 0 {
		// Over-header rows group columns; the last header row names them
		if last := thead.First().ChildrenFiltered("tr").Last(); last.Length() > 0 {
			header = rowCells(last)
		}
	}

	table.ChildrenFiltered("tbody, tfoot").Each(func(_ int, section *goquery.Selection) {
		section.ChildrenFiltered("tr").Each(func(_ int, row *goquery.Selection) {
			body = append(body, row)
		})
	})
	// Tables without a thead use a leading all-th row as the header
	if header == nil && len(body) > 0 && allHeaderCells(body[0]) {
		header = rowCells(body[0])
		body = body[1:]
	}

	var rows [][]string
	width := len(header)
	for _, row := range body {
		cells := rowCells(row)
		if len(cells) == 0 {
			continue
		}
		if len(cells) > width {
			width = len(cells)
		}
		rows = append(rows, cells)
	}

	for i := range rows {
		for len(rows[i]) < width {
			rows[i] = append(rows[i], "")
		}
	}

	return models.Table{
		Columns: columnNames(header, width),
		Rows:    rows,
	}
}

// rowCells returns the text of each th/td cell, repeating cells that span several columns
func rowCells(row *goquery.Selection) []string {
	var cells []string
	row.ChildrenFiltered("th, td").Each(func(_ int, cell *goquery.Selection) {
		text := strings.TrimSpace(cell.Text())
		span, err := strconv.Atoi(cell.AttrOr("colspan", "1"))
		if err != nil || span < 1 {
			span = 1
		}
		for i := 0; i < span; i++ {
			cells = append(cells, text)
		}
	})
	return cells
}

func allHeaderCells(row *goquery.Selection) bool {
	cells := row.ChildrenFiltered("th, td")
	return cells.Length() > 0 && cells.Length() == cells.Filter("th").Length()
}

// columnNames names blank header cells "Unnamed: <index>" and suffixes repeated names with .1, .2, ...
func columnNames(header []string, width int) []string {
	names := make([]string, width)
	seen := make(map[string]int)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = header[i]
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		names[i] = name
	}
	return names
}

// FilterRows returns the rows whose column equals value, as column-keyed maps
func FilterRows(t models.Table, column, value string) []models.Row {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil
	}
	var matches []models.Row
	for _, cells := range t.Rows {
		if cells[idx] != value {
			continue
		}
		row := make(models.Row, len(t.Columns))
		for i, name := range t.Columns {
			row[name] = cells[i]
		}
		matches = append(matches, row)
	}
	return matches
}
