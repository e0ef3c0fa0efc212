// Package salary runs the search, extract and predict steps for one player season
package salary

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/myusername/nba-salary-predictor/pkg/models"
	"github.com/myusername/nba-salary-predictor/pkg/predictor"
	"github.com/myusername/nba-salary-predictor/pkg/scraper"
)

// Result is everything shown for one player season
type Result struct {
	Prediction models.Prediction
	// Image is empty when the headshot could not be found
	Image string
	// Page is the raw profile HTML the record was read from
	Page string
}

// Pipeline connects the scraper to the salary model
type Pipeline struct {
	client *scraper.Client
	model  predictor.Predictor
}

// NewPipeline creates a Pipeline. The model is shared read-only across calls.
func NewPipeline(client *scraper.Client, model predictor.Predictor) *Pipeline {
	return &Pipeline{client: client, model: model}
}

// Search resolves a name into candidates
func (p *Pipeline) Search(ctx context.Context, name string) ([]models.SearchResult, error) {
	return p.client.Search(ctx, name)
}

// Seasons lists the seasons on a player's page
func (p *Pipeline) Seasons(ctx context.Context, link string) ([]string, error) {
	return p.client.Seasons(ctx, link)
}

// Record extracts one season record without predicting
func (p *Pipeline) Record(ctx context.Context, link, season string) (models.SeasonRecord, error) {
	return p.client.SeasonRecord(ctx, link, season)
}

// Predict extracts the season record for a candidate and predicts its salary.
// A missing headshot is logged and left blank; every other failure is returned.
func (p *Pipeline) Predict(ctx context.Context, candidate models.SearchResult, season string) (Result, error) {
	profile, err := p.client.Profile(ctx, candidate.Link)
	if err != nil {
		return Result{}, err
	}

	record, err := p.client.Extract(profile, season)
	if err != nil {
		return Result{}, err
	}

	image, err := profile.Image()
	if err != nil {
		log.Printf("No image for %s: %v", candidate.Name, err)
		image = ""
	}

	salary, err := p.model.Predict(record)
	if err != nil {
		if !errors.Is(err, models.ErrPrediction) {
			err = fmt.Errorf("%w: %w", models.ErrPrediction, err)
		}
		return Result{}, err
	}
	log.Printf("Predicted salary for %s %s: %.0f", candidate.Name, season, salary)

	return Result{
		Prediction: models.Prediction{
			Player: candidate.Name,
			Season: season,
			Record: record,
			Salary: salary,
		},
		Image: image,
		Page:  profile.HTML,
	}, nil
}

// Lookup runs the whole flow from a free-text name: search, choose a
// candidate (by index when index >= 0, else closest name), then predict.
func (p *Pipeline) Lookup(ctx context.Context, name string, index int, season string) (Result, error) {
	results, err := p.Search(ctx, name)
	if err != nil {
		return Result{}, err
	}
	candidate, err := scraper.SelectCandidate(results, name, index)
	if err != nil {
		return Result{}, err
	}
	return p.Predict(ctx, candidate, season)
}

// UserMessage is the text shown for a pipeline failure
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, models.ErrSeasonNotFound):
		return "Please enter a valid year."
	case errors.Is(err, models.ErrNoMatch):
		return "No players found."
	case errors.Is(err, models.ErrInvalidLink):
		return "Please choose a player from the search results."
	case errors.Is(err, models.ErrResolution):
		return "Player search is unavailable, please try again."
	case errors.Is(err, models.ErrFetch), errors.Is(err, models.ErrParse):
		return "Could not load the player's statistics."
	default:
		return "Could not predict a salary for this player."
	}
}
