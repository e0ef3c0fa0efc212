// Package predictor evaluates a pre-trained salary regression model on season records
package predictor

import (
	"fmt"
	"math"
	"os"

	"github.com/titanous/json5"

	"github.com/myusername/nba-salary-predictor/pkg/models"
)

// Predictor turns a season record into a salary
type Predictor interface {
	Predict(record models.SeasonRecord) (float64, error)
}

// Tree is a regression tree in flattened layout: node i splits on Feature[i]
// at Threshold[i], going Left when the value is <= the threshold. Leaves have
// Left[i] == -1 and predict Value[i].
type Tree struct {
	Left      []int     `json:"left"`
	Right     []int     `json:"right"`
	Feature   []int     `json:"feature"`
	Threshold []float64 `json:"threshold"`
	Value     []float64 `json:"value"`
}

// Model is a serialized salary model. Linear models carry Coefficients,
// forests carry Trees and predict the mean of their outputs.
type Model struct {
	Name         string    `json:"name"`
	Features     []string  `json:"features"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
	Trees        []Tree    `json:"trees"`
}

// Load reads a model artifact from disk
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading model %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a JSON5 model artifact
func Parse(data []byte) (*Model, error) {
	var m Model
	if err := json5.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", models.ErrPrediction, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that the model was trained on the feature schema and is well formed
func (m *Model) Validate() error {
	if len(m.Features) != models.FeatureCount {
		return fmt.Errorf("%w: model has %d features, records have %d", models.ErrPrediction, len(m.Features), models.FeatureCount)
	}
	for i, name := range m.Features {
		if name != models.FeatureSchema[i] {
			return fmt.Errorf("%w: feature %d is %q, expected %q", models.ErrPrediction, i, name, models.FeatureSchema[i])
		}
	}

	switch {
	case len(m.Trees) > 0 && len(m.Coefficients) > 0:
		return fmt.Errorf("%w: model has both coefficients and trees", models.ErrPrediction)
	case len(m.Trees) > 0:
		for i, t := range m.Trees {
			if err := t.validate(); err != nil {
				return fmt.Errorf("%w: tree %d: %w", models.ErrPrediction, i, err)
			}
		}
	case len(m.Coefficients) != models.FeatureCount:
		return fmt.Errorf("%w: model has %d coefficients, expected %d", models.ErrPrediction, len(m.Coefficients), models.FeatureCount)
	}
	return nil
}

// Predict returns the model output for a record
func (m *Model) Predict(record models.SeasonRecord) (float64, error) {
	x := record.Values[:]
	var out float64
	if len(m.Trees) > 0 {
		for _, t := range m.Trees {
			v, err := t.predict(x)
			if err != nil {
				return 0, fmt.Errorf("%w: %w", models.ErrPrediction, err)
			}
			out += v
		}
		out /= float64(len(m.Trees))
	} else {
		out = m.Intercept
		for i, c := range m.Coefficients {
			out += c * x[i]
		}
	}

	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, fmt.Errorf("%w: model produced %v", models.ErrPrediction, out)
	}
	return out, nil
}

func (t Tree) validate() error {
	n := len(t.Left)
	if n == 0 {
		return fmt.Errorf("empty tree")
	}
	if len(t.Right) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("node arrays differ in length")
	}
	for i := 0; i < n; i++ {
		if t.Left[i] == -1 {
			continue
		}
		if t.Left[i] <= i || t.Left[i] >= n || t.Right[i] <= i || t.Right[i] >= n {
			return fmt.Errorf("node %d has children out of range", i)
		}
		if t.Feature[i] < 0 || t.Feature[i] >= models.FeatureCount {
			return fmt.Errorf("node %d splits on unknown feature %d", i, t.Feature[i])
		}
	}
	return nil
}

func (t Tree) predict(x []float64) (float64, error) {
	node := 0
	// children always point forward, so a walk is at most len(nodes) steps
	for steps := 0; steps < len(t.Left); steps++ {
		if t.Left[node] == -1 {
			return t.Value[node], nil
		}
		if x[t.Feature[node]] <= t.Threshold[node] {
			node = t.Left[node]
		} else {
			node = t.Right[node]
		}
	}
	return 0, fmt.Errorf("tree walk did not reach a leaf")
}
