package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/ecocity/internal/bins"
	"github.com/dmitrijs2005/ecocity/internal/navigation"
	"github.com/dmitrijs2005/ecocity/internal/verdict"
)

// getLines is a test seam for GetLines.
var getLines = GetLines

const defaultImage = "photo"

// Bins lists the eco-bin markers of the map screen.
func (a *App) Bins(_ context.Context) error {
	if err := a.requireScreen(navigation.Map); err != nil {
		return err
	}
	lat, lon := bins.Center()
	fmt.Fprintf(a.out, "Map centre: %.4f, %.4f\n", lat, lon)
	for i, b := range a.bins {
		fmt.Fprintf(a.out, "%d. %.4f, %.4f (%s)\n", i+1, b.Lat, b.Lon, b.Icon)
	}
	return nil
}

// Nearest prints the bin closest to the given coordinates.
func (a *App) Nearest(_ context.Context, args []string) error {
	if err := a.requireScreen(navigation.Map); err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: nearest <lat> <lon>", ErrUsage)
	}
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("%w: bad latitude %q", ErrUsage, args[0])
	}
	lon, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("%w: bad longitude %q", ErrUsage, args[1])
	}

	b, km, err := bins.Nearest(a.bins, lat, lon)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Nearest bin: %.4f, %.4f, %.2f km away\n", b.Lat, b.Lon, km)
	return nil
}

// Classify applies the verdict policy to a label the user already has.
func (a *App) Classify(ctx context.Context, label string) error {
	if err := a.requireScreen(navigation.Food); err != nil {
		return err
	}
	if label == "" {
		return fmt.Errorf("%w: classify <label>", ErrUsage)
	}
	return a.report(ctx, verdict.Classify(label))
}

// Rank asks the user for the model's label scores for image, picks the top
// one and classifies it.
func (a *App) Rank(ctx context.Context, image string) error {
	if err := a.requireScreen(navigation.Food); err != nil {
		return err
	}
	if image == "" {
		image = defaultImage
	}

	res, err := verdict.NewClassifier(promptModel{app: a}).ClassifyImage(ctx, image)
	if err != nil {
		return err
	}
	return a.report(ctx, res)
}

// report prints a food check result and credits the session one point.
func (a *App) report(ctx context.Context, res verdict.Result) error {
	fmt.Fprintf(a.out, "Label: %s\n%s\n", res.Label, verdict.Message(res.Verdict))

	total, err := a.auth.AddPoints(1)
	if err != nil {
		return err
	}
	a.logger.Debug(ctx, "food checked", "label", res.Label, "verdict", res.Verdict.String())
	fmt.Fprintf(a.out, "Points: %d\n", total)
	return nil
}

// promptModel stands in for the image model: the user types the scores.
type promptModel struct {
	app *App
}

func (m promptModel) Rank(_ context.Context, image string, candidates []string) ([]verdict.Score, error) {
	prompt := fmt.Sprintf("Scores for %s as label=score, one per line.\nCandidates: %s",
		image, strings.Join(candidates, ", "))
	lines, err := getLines(m.app.reader, prompt, m.app.out)
	if err != nil {
		return nil, err
	}
	return ParseScores(lines)
}
