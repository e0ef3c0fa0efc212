// Package testutil builds basketball-reference style pages for tests
package testutil

import (
	"fmt"
	"strings"
)

// BasicHeader is the per-game / totals table header
var BasicHeader = []string{
	"Season", "Age", "Tm", "Lg", "Pos", "G", "GS", "MP", "FG", "FGA", "FG%",
	"3P", "3PA", "3P%", "2P", "2PA", "2P%", "eFG%", "FT", "FTA", "FT%",
	"ORB", "DRB", "TRB", "AST", "STL", "BLK", "TOV", "PF", "PTS",
}

// AdvancedHeader is the advanced table header, including its two blank spacer columns
var AdvancedHeader = []string{
	"Season", "Age", "Tm", "Lg", "Pos", "G", "MP", "PER", "TS%", "3PAr", "FTr",
	"ORB%", "DRB%", "TRB%", "AST%", "STL%", "BLK%", "TOV%", "USG%", "",
	"OWS", "DWS", "WS", "WS/48", "", "OBPM", "DBPM", "BPM", "VORP",
}

// BasicRows are per-game rows; 2018-19 has a TOT row followed by one row per team
var BasicRows = [][]string{
	{"2016-17", "19", "LAL", "NBA", "SF", "79", "", "28.8", "3.5", "8.7", ".402", "0.7", "2.4", ".294", "2.8", "6.3", ".443", ".442", "1.6", "2.6", ".621", "0.6", "3.4", "4.0", "2.1", "0.6", "0.5", "1.5", "2.0", "9.4"},
	{"2018-19", "21", "TOT", "NBA", "SF", "52", "52", "33.8", "7.0", "14.0", ".497", "0.4", "1.8", ".330", "6.6", "12.2", ".522", ".513", "3.7", "5.6", ".675", "0.8", "4.3", "5.1", "3.0", "0.5", "0.6", "2.5", "2.9", "18.3"},
	{"2018-19", "21", "LAL", "NBA", "SF", "30", "30", "33.0", "6.8", "13.5", ".500", "0.3", "1.5", ".300", "6.5", "12.0", ".540", ".510", "3.5", "5.2", ".670", "0.7", "4.0", "4.7", "2.8", "0.4", "0.5", "2.4", "2.8", "17.4"},
	{"2018-19", "21", "NOP", "NBA", "SF", "22", "22", "34.9", "7.3", "14.7", ".493", "0.5", "2.2", ".350", "6.8", "12.5", ".500", ".516", "4.0", "6.1", ".680", "0.9", "4.7", "5.6", "3.3", "0.6", "0.7", "2.6", "3.0", "19.5"},
	{"2020-21", "23", "NOP", "NBA", "SF", "61", "61", "34.3", "8.2", "17.8", ".466", "2.2", "5.4", ".381", "6.1", "12.4", ".503", ".517", "5.1", "5.9", ".878", "0.6", "4.3", "4.9", "4.9", "0.7", "0.6", "2.6", "2.0", "23.8"},
	{"2021-22", "24", "NOP", "NBA", "SF", "55", "55", "34.0", "8.4", "18.9", ".440", "1.2", "3.6", ".323", "7.2", "15.3", ".468", ".471", "4.8", "5.5", ".876", "0.6", "5.2", "5.8", "5.6", "0.6", "0.5", "2.8", "2.3", "22.7"},
	{"2022-23", "25", "NOP", "NBA", "SF", "45", "45", "34.1", "8.7", "18.0", ".484", "1.7", "4.4", ".390", "7.0", "13.6", ".514", ".532", "5.5", "6.5", ".882", "0.6", "4.9", "5.5", "5.8", "0.7", "0.4", "3.1", "2.9", "24.7"},
}

// CareerRow is the tfoot summary row of the basic table
var CareerRow = []string{"Career", "", "", "NBA", "", "396", "378", "33.1", "7.2", "15.8", ".456", "1.3", "3.8", ".349", "5.9", "12.0", ".488", ".499", "4.1", "5.1", ".806", "0.6", "4.3", "4.9", "4.3", "0.6", "0.5", "2.6", "2.5", "19.8"}

// AdvancedRows have no 2022-23 row, so that season exists in the basic table only
var AdvancedRows = [][]string{
	{"2016-17", "19", "LAL", "NBA", "SF", "79", "2279", "8.5", ".469", ".276", ".300", "2.4", "13.2", "7.8", "11.2", "1.1", "1.5", "14.4", "17.7", "", "-1.6", "1.6", "0.0", ".000", "", "-3.7", "-1.1", "-4.8", "-1.1"},
	{"2018-19", "21", "TOT", "NBA", "SF", "52", "1760", "15.6", ".555", ".130", ".400", "2.6", "14.4", "8.4", "14.6", "0.8", "1.7", "14.3", "23.4", "", "0.9", "1.2", "2.1", ".057", "", "-0.8", "-1.6", "-2.4", "-0.2"},
	{"2018-19", "21", "LAL", "NBA", "SF", "30", "990", "15.0", ".550", ".120", ".390", "2.4", "14.0", "8.1", "14.0", "0.7", "1.6", "14.0", "23.0", "", "0.5", "0.7", "1.2", ".058", "", "-0.9", "-1.7", "-2.6", "-0.2"},
	{"2018-19", "21", "NOP", "NBA", "SF", "22", "770", "16.2", ".560", ".140", ".410", "2.8", "14.8", "8.7", "15.2", "0.9", "1.8", "14.6", "23.8", "", "0.4", "0.5", "0.9", ".056", "", "-0.7", "-1.5", "-2.2", "0.0"},
	{"2020-21", "23", "NOP", "NBA", "SF", "61", "2094", "18.8", ".578", ".303", ".333", "1.9", "13.5", "7.9", "24.1", "1.0", "1.6", "11.3", "28.4", "", "3.2", "1.0", "4.2", ".097", "", "2.1", "-1.4", "0.7", "1.3"},
	{"2021-22", "24", "NOP", "NBA", "SF", "55", "1885", "18.1", ".554", ".191", ".289", "2.1", "15.2", "8.6", "27.0", "0.9", "1.2", "12.0", "29.7", "", "1.8", "1.5", "3.3", ".084", "", "1.4", "-1.2", "0.2", "1.1"},
}

// Ingram202122 is the expected feature record for the 2021-22 season, in schema order
var Ingram202122 = []float64{
	24, 55, 55, 34.0,
	8.4, 18.9, 1.2, 3.6, 7.2, 15.3,
	4.8, 5.5, 5.2, 5.8, 5.6, 0.6,
	0.5, 2.8, 2.3, 22.7, 18.1,
	27.0, 29.7, 1.8, 1.5, 3.3,
	1.4, 0.2, 1.1,
}

// TableHTML renders a table with a thead, a tbody and an optional tfoot.
// A repeated header row is inserted in the body, as the site does on long careers.
func TableHTML(id string, header []string, rows [][]string, footer [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<table id=%q class=\"stats_table\">\n", id)
	b.WriteString("<thead>\n<tr class=\"over_header\"><th colspan=\"5\"></th><th colspan=\"3\">Summary</th></tr>\n")
	writeRow(&b, "", header, true, len(header))
	b.WriteString("</thead>\n<tbody>\n")
	for i, row := range rows {
		if i == 2 {
			writeRow(&b, "thead", header, true, len(header))
		}
		writeRow(&b, "full_table", row, false, len(header))
	}
	b.WriteString("</tbody>\n")
	if len(footer) > 0 {
		b.WriteString("<tfoot>\n")
		for _, row := range footer {
			writeRow(&b, "", row, false, len(header))
		}
		b.WriteString("</tfoot>\n")
	}
	b.WriteString("</table>\n")
	return b.String()
}

// writeRow renders one row; a short data row's last cell spans the remaining width
func writeRow(b *strings.Builder, class string, cells []string, header bool, width int) {
	if class != "" {
		fmt.Fprintf(b, "<tr class=%q>", class)
	} else {
		b.WriteString("<tr>")
	}
	for i, c := range cells {
		switch {
		case header:
			fmt.Fprintf(b, "<th>%s</th>", c)
		case i == 0 && c != "Career":
			fmt.Fprintf(b, "<th data-stat=\"season\"><a href=\"/leagues/NBA_%s.html\">%s</a></th>", c, c)
		case i == len(cells)-1 && len(cells) < width:
			fmt.Fprintf(b, "<td colspan=\"%d\">%s</td>", width-len(cells)+1, c)
		default:
			fmt.Fprintf(b, "<td>%s</td>", c)
		}
	}
	b.WriteString("</tr>\n")
}

// FillerTable is a table in basic layout whose numbers differ from every real row
func FillerTable(id string) string {
	rows := make([][]string, 0, len(BasicRows))
	for _, r := range BasicRows {
		row := make([]string, len(r))
		copy(row, r)
		for i := 1; i < len(row); i++ {
			if i != 2 && i != 3 && i != 4 {
				row[i] = "999"
			}
		}
		rows = append(rows, row)
	}
	return TableHTML(id, BasicHeader, rows, nil)
}

// DidNotPlayRow is a season the player sat out: identity cells, then one note spanning every stat
func DidNotPlayRow(season string) []string {
	return []string{season, "26", "NOP", "NBA", "SF", "Did Not Play (injury)"}
}

// InjuredTables is the four-table layout with a 2023-24 season the player missed,
// listed in both the basic and the advanced table
func InjuredTables() []string {
	basic := append(append([][]string{}, BasicRows...), DidNotPlayRow("2023-24"))
	advanced := append(append([][]string{}, AdvancedRows...), DidNotPlayRow("2023-24"))
	return []string{
		TableHTML("per_game", BasicHeader, basic, [][]string{CareerRow}),
		FillerTable("totals"),
		FillerTable("per_minute"),
		TableHTML("advanced", AdvancedHeader, advanced, nil),
	}
}

// RegularSeasonTables is the four-table layout of a player without playoff games
func RegularSeasonTables() []string {
	return []string{
		TableHTML("per_game", BasicHeader, BasicRows, [][]string{CareerRow}),
		FillerTable("totals"),
		FillerTable("per_minute"),
		TableHTML("advanced", AdvancedHeader, AdvancedRows, nil),
	}
}

// PlayoffTables is the layout of a player with playoff games: playoff tables
// interleave the regular season ones and the advanced table sits at position 5
func PlayoffTables() []string {
	return []string{
		TableHTML("per_game", BasicHeader, BasicRows, [][]string{CareerRow}),
		FillerTable("playoffs_per_game"),
		FillerTable("totals"),
		FillerTable("playoffs_totals"),
		FillerTable("per_minute"),
		TableHTML("advanced", AdvancedHeader, AdvancedRows, nil),
		FillerTable("playoffs_advanced"),
	}
}

// ProfilePage renders a player profile. An empty image omits the media item.
func ProfilePage(name, profilePath, image string, tables []string) string {
	var b strings.Builder
	b.WriteString("<html><head><title>" + name + " Stats</title></head><body>\n")
	b.WriteString("<div id=\"info\"><div id=\"meta\">")
	if image != "" {
		fmt.Fprintf(&b, "<div class=\"media-item\"><img src=%q alt=\"Photo of %s\"></div>", image, name)
	}
	fmt.Fprintf(&b, "<div><h1><span>%s</span></h1><p>Position: Small Forward</p></div></div></div>\n", name)
	for _, t := range tables {
		b.WriteString(t)
	}
	b.WriteString("<div id=\"all_shooting\"><!--\n")
	b.WriteString(FillerTable("shooting"))
	b.WriteString("--></div>\n")
	fmt.Fprintf(&b, "<div id=\"bottom_nav_container\"><p><a href=%q>%s Overview</a></p><p><a href=\"/players/\">Players Index</a></p></div>\n", profilePath, name)
	b.WriteString("</body></html>")
	return b.String()
}

// SearchItem is one entry on a search results page
type SearchItem struct {
	Name string
	Href string
}

// SearchPage renders a search results page
func SearchPage(items []SearchItem) string {
	var b strings.Builder
	b.WriteString("<html><body><div id=\"searches\"><div id=\"players\">\n")
	for _, item := range items {
		fmt.Fprintf(&b, "<div class=\"search-item\"><div class=\"search-item-name\"><strong><a href=%q>%s</a></strong></div>", item.Href, item.Name)
		fmt.Fprintf(&b, "<div class=\"search-item-url\">%s</div></div>\n", item.Href)
	}
	b.WriteString("</div></div></body></html>")
	return b.String()
}
