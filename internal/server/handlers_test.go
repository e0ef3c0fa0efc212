package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myusername/nba-salary-predictor/internal/testutil"
	"github.com/myusername/nba-salary-predictor/pkg/models"
	"github.com/myusername/nba-salary-predictor/pkg/salary"
	"github.com/myusername/nba-salary-predictor/pkg/scraper"
)

const ingramPath = "/players/i/ingrabr01.html"

type flatModel struct{}

func (flatModel) Predict(models.SeasonRecord) (float64, error) { return 5000000.4, nil }

// newAPI starts a fake upstream site and returns the API under test plus the upstream URL
func newAPI(t *testing.T) (http.Handler, string) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search/search.fcgi", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search") == "Brandon" {
			fmt.Fprint(w, testutil.SearchPage([]testutil.SearchItem{
				{Name: "Brandon Ingram", Href: ingramPath},
				{Name: "Brandon Jennings", Href: "/players/j/jennibr01.html"},
				{Name: "Brooklyn Nets", Href: "/teams/BRK/"},
			}))
			return
		}
		fmt.Fprint(w, testutil.SearchPage(nil))
	})
	mux.HandleFunc(ingramPath, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testutil.ProfilePage("Brandon Ingram", ingramPath, "", testutil.RegularSeasonTables()))
	})
	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	client := scraper.NewClient(scraper.NewFetcher(5*time.Second, nil), scraper.WithBaseURL(upstream.URL))
	h := NewHandler(salary.NewPipeline(client, flatModel{}))
	return h.Router([]string{"*"}), upstream.URL
}

func get(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec, body
}

func TestHealthCheck(t *testing.T) {
	h, _ := newAPI(t)
	rec, body := get(t, h, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestSearch(t *testing.T) {
	h, _ := newAPI(t)

	rec, body := get(t, h, "/api/v1/search?name=Brandon")
	require.Equal(t, http.StatusOK, rec.Code)
	results := body["results"].([]interface{})
	assert.Len(t, results, 2)

	rec, body = get(t, h, "/api/v1/search?name=zzzz")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No players found.", body["error"])

	rec, _ = get(t, h, "/api/v1/search")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSeasons(t *testing.T) {
	h, upstream := newAPI(t)

	rec, body := get(t, h, "/api/v1/seasons?link="+url.QueryEscape(upstream+ingramPath))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body["seasons"], "2021-22")
	assert.NotContains(t, body["seasons"], "Career")
}

func TestRecord(t *testing.T) {
	h, upstream := newAPI(t)

	rec, body := get(t, h, "/api/v1/record?season=2021-22&link="+url.QueryEscape(upstream+ingramPath))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["values"], models.FeatureCount)
	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, 24.0, stats["Age"])
}

func TestPredict(t *testing.T) {
	h, upstream := newAPI(t)

	target := "/api/v1/predict?name=Brandon%20Ingram&season=2021-22&link=" + url.QueryEscape(upstream+ingramPath)
	rec, body := get(t, h, target)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Brandon Ingram", body["player"])
	assert.Equal(t, 5000000.0, body["salary"])
	assert.Equal(t, "$5,000,000", body["salary_text"])
	assert.NotContains(t, body, "image")
}

func TestPredict_InvalidSeason(t *testing.T) {
	h, upstream := newAPI(t)

	rec, body := get(t, h, "/api/v1/predict?season=1950-51&link="+url.QueryEscape(upstream+ingramPath))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Please enter a valid year.", body["error"])

	rec, _ = get(t, h, "/api/v1/predict?season=2021-22")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPredict_UpstreamMissing(t *testing.T) {
	h, upstream := newAPI(t)

	rec, _ := get(t, h, "/api/v1/record?season=2021-22&link="+url.QueryEscape(upstream+"/players/x/nobody.html"))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestSeasons_ForeignLinkRejected(t *testing.T) {
	h, _ := newAPI(t)
	var hits int32
	internal := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		fmt.Fprint(w, "<html><body>secret</body></html>")
	}))
	t.Cleanup(internal.Close)

	for _, target := range []string{
		"/api/v1/seasons?link=" + url.QueryEscape(internal.URL+"/admin/secrets"),
		"/api/v1/record?season=2021-22&link=" + url.QueryEscape(internal.URL+ingramPath),
		"/api/v1/predict?season=2021-22&link=" + url.QueryEscape(internal.URL+ingramPath),
	} {
		rec, body := get(t, h, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "Please choose a player from the search results.", body["error"])
	}
	assert.EqualValues(t, 0, atomic.LoadInt32(&hits))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, StatusFor(models.ErrSeasonNotFound))
	assert.Equal(t, http.StatusBadRequest, StatusFor(fmt.Errorf("%w: x", models.ErrInvalidLink)))
	assert.Equal(t, http.StatusNotFound, StatusFor(models.ErrNoMatch))
	assert.Equal(t, http.StatusBadGateway, StatusFor(fmt.Errorf("%w: x", models.ErrResolution)))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(models.ErrPrediction))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(models.ErrSchema))
}
