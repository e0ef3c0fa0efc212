package parser

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myusername/nba-salary-predictor/internal/testutil"
	"github.com/myusername/nba-salary-predictor/pkg/models"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestParseTables_SkipsCommentedTables(t *testing.T) {
	page := testutil.ProfilePage("Brandon Ingram", "/players/i/ingrabr01.html", "", testutil.RegularSeasonTables())
	tables := ParseTables(mustDoc(t, page))
	assert.Len(t, tables, 4)
}

func TestParseTables_HeaderFromLastTheadRow(t *testing.T) {
	html := testutil.TableHTML("advanced", testutil.AdvancedHeader, testutil.AdvancedRows, nil)
	tables := ParseTables(mustDoc(t, html))
	require.Len(t, tables, 1)

	cols := tables[0].Columns
	require.Len(t, cols, len(testutil.AdvancedHeader))
	assert.Equal(t, "Season", cols[0])
	assert.Equal(t, "Unnamed: 19", cols[19])
	assert.Equal(t, "Unnamed: 24", cols[24])
	assert.Equal(t, "VORP", cols[28])
}

func TestParseTables_BodyAndFooterRows(t *testing.T) {
	html := testutil.TableHTML("per_game", testutil.BasicHeader, testutil.BasicRows, [][]string{testutil.CareerRow})
	tables := ParseTables(mustDoc(t, html))
	require.Len(t, tables, 1)

	// data rows, one repeated header row, one career row
	rows := tables[0].Rows
	require.Len(t, rows, len(testutil.BasicRows)+2)
	assert.Equal(t, "Season", rows[2][0])
	assert.Equal(t, "Career", rows[len(rows)-1][0])
	assert.Equal(t, "2016-17", rows[0][0])
}

func TestParseTables_ColspanAndDuplicateNames(t *testing.T) {
	html := `<table>
		<tr><th>Season</th><th>Split</th><th>Split</th><th></th></tr>
		<tr><th>2021-22</th><td colspan="2">x</td><td>1</td></tr>
		<tr><th>2022-23</th><td>y</td></tr>
	</table>`
	tables := ParseTables(mustDoc(t, html))
	require.Len(t, tables, 1)

	want := models.Table{
		Columns: []string{"Season", "Split", "Split.1", "Unnamed: 3"},
		Rows: [][]string{
			{"2021-22", "x", "x", "1"},
			{"2022-23", "y", "", ""},
		},
	}
	if diff := cmp.Diff(want, tables[0]); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterRows(t *testing.T) {
	table := models.Table{
		Columns: []string{"Season", "Tm", "G"},
		Rows: [][]string{
			{"2018-19", "TOT", "52"},
			{"2018-19", "LAL", "30"},
			{"2019-20", "NOP", "56"},
		},
	}

	rows := FilterRows(table, "Season", "2018-19")
	require.Len(t, rows, 2)
	assert.Equal(t, "TOT", rows[0]["Tm"])

	assert.Empty(t, FilterRows(table, "Season", "1999-00"))
	assert.Empty(t, FilterRows(table, "Year", "2018-19"))
}
