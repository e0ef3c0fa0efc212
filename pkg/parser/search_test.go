package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myusername/nba-salary-predictor/internal/testutil"
	"github.com/myusername/nba-salary-predictor/pkg/models"
)

const baseURL = "https://www.basketball-reference.com"

func TestParseSearchPage_KeepsOnlyPlayers(t *testing.T) {
	page := testutil.SearchPage([]testutil.SearchItem{
		{Name: "Brandon Ingram", Href: "/players/i/ingrabr01.html"},
		{Name: "New Orleans Pelicans", Href: "/teams/NOP/"},
		{Name: "Brandon Jennings", Href: "/players/j/jennibr01.html"},
		{Name: "Brandon Coach", Href: "/coaches/coachbr01c.html"},
	})

	results, err := ParseSearchPage(mustDoc(t, page), baseURL)
	require.NoError(t, err)

	want := []models.SearchResult{
		{Name: "Brandon Ingram", Link: baseURL + "/players/i/ingrabr01.html"},
		{Name: "Brandon Jennings", Link: baseURL + "/players/j/jennibr01.html"},
	}
	if diff := cmp.Diff(want, results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
	for _, r := range results {
		assert.True(t, strings.HasPrefix(r.Link, baseURL+PlayersPrefix), r.Link)
	}
}

func TestParseSearchPage_NoResults(t *testing.T) {
	results, err := ParseSearchPage(mustDoc(t, testutil.SearchPage(nil)), baseURL)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestParseSearchPage_RedirectToProfile(t *testing.T) {
	page := testutil.ProfilePage("Brandon Ingram", "/players/i/ingrabr01.html", "", testutil.PlayoffTables())

	results, err := ParseSearchPage(mustDoc(t, page), baseURL)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Brandon Ingram", results[0].Name)
	assert.Equal(t, baseURL+"/players/i/ingrabr01.html", results[0].Link)
}

func TestParseSearchPage_RedirectWithEmptyInfo(t *testing.T) {
	page := `<html><body><div id="info"></div>
		<div id="bottom_nav_container"><a href="/players/i/ingrabr01.html">x</a></div></body></html>`

	_, err := ParseSearchPage(mustDoc(t, page), baseURL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrResolution))
}

func TestParseSearchPage_RedirectWithoutNav(t *testing.T) {
	page := `<html><body><div id="info"><h1><span>Brandon Ingram</span></h1></div></body></html>`

	_, err := ParseSearchPage(mustDoc(t, page), baseURL)
	assert.ErrorIs(t, err, models.ErrResolution)
}

func TestAbsoluteLink(t *testing.T) {
	cases := []struct{ base, href, want string }{
		{baseURL, "/players/i/ingrabr01.html", baseURL + "/players/i/ingrabr01.html"},
		{baseURL + "/search/search.fcgi?search=x", "/players/a/b.html", baseURL + "/players/a/b.html"},
		{baseURL, "https://example.com/players/x.html", "https://example.com/players/x.html"},
	}
	for _, tc := range cases {
		got, err := AbsoluteLink(tc.base, tc.href)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}
