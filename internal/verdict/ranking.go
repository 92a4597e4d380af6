package verdict

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
)

var ErrNoScores = errors.New("no scores to rank")

// Score is the similarity the model assigned to one candidate label.
type Score struct {
	Label string
	Value float64
}

// Top returns the highest-scoring entry. On equal scores the earlier entry
// wins, matching argmax over the candidate order. NaN scores are ignored.
func Top(scores []Score) (Score, error) {
	var (
		best  Score
		found bool
	)
	for _, s := range scores {
		if math.IsNaN(s.Value) {
			continue
		}
		if !found || s.Value > best.Value {
			best, found = s, true
		}
	}
	if !found {
		return Score{}, ErrNoScores
	}
	return best, nil
}

// Model scores candidate labels against an image.
type Model interface {
	Rank(ctx context.Context, imagePath string, candidates []string) ([]Score, error)
}

// Classifier runs a Model and feeds its winner through Classify.
type Classifier struct {
	model      Model
	candidates []string
}

// NewClassifier uses DefaultCandidates when candidates is empty.
func NewClassifier(model Model, candidates ...string) *Classifier {
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}
	return &Classifier{model: model, candidates: slices.Clone(candidates)}
}

// ClassifyImage ranks the candidates for imagePath and classifies the top one.
func (c *Classifier) ClassifyImage(ctx context.Context, imagePath string) (Result, error) {
	scores, err := c.model.Rank(ctx, imagePath, slices.Clone(c.candidates))
	if err != nil {
		return Result{}, fmt.Errorf("rank %s: %w", imagePath, err)
	}
	top, err := Top(scores)
	if err != nil {
		return Result{}, err
	}
	return Classify(top.Label), nil
}
