package train

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/zeu5/pazaak-learn/dataset"
	"github.com/zeu5/pazaak-learn/model"
)

// Regressor selects the model family to fit.
type Regressor string

const (
	RegressorTree   Regressor = "tree"
	RegressorForest Regressor = "forest"
)

// Fitting defaults, per regressor.
const (
	TreeDepth   = 3
	ForestDepth = 4
	ForestTrees = 100
)

// Default artifact locations.
const (
	DefaultDatasetPath = "resources/result.csv"
	DefaultModelPath   = "resources/model.json"
	DefaultDotPath     = "resources/graph.dot"

	TreeDatasetPath = "resources/result_80.csv"
	TreeModelPath   = "resources/model_dt.json"

	ForestDatasetPath = "resources/result_95.csv"
	ForestModelPath   = "resources/model_rf.json"
)

var (
	ErrEmptySplit       = errors.New("train: not enough rows to split")
	ErrUnknownRegressor = errors.New("train: unknown regressor")
)

// Config drives one training run.
type Config struct {
	Regressor   Regressor
	DatasetPath string
	ModelPath   string
	// DotPath, when set and the regressor is a tree, receives a
	// graphviz rendering of the fitted splits.
	DotPath string
	// Seed fixes forest bootstrap sampling.
	Seed   uint64
	Logger zerolog.Logger
}

// TreeConfig is the preset for the decision-tree pipeline.
func TreeConfig() Config {
	return Config{
		Regressor:   RegressorTree,
		DatasetPath: TreeDatasetPath,
		ModelPath:   TreeModelPath,
		DotPath:     DefaultDotPath,
		Logger:      zerolog.Nop(),
	}
}

// ForestConfig is the preset for the random-forest pipeline.
func ForestConfig() Config {
	return Config{
		Regressor:   RegressorForest,
		DatasetPath: ForestDatasetPath,
		ModelPath:   ForestModelPath,
		Logger:      zerolog.Nop(),
	}
}

// Report summarizes a completed training run.
type Report struct {
	Rows      int
	TrainRows int
	TestRows  int
	// Score is the coefficient of determination on the held-out rows.
	Score     float64
	ModelPath string
	Duration  time.Duration
}

// Run reads the dataset, fits the configured regressor on a
// deterministic three-quarter split, scores it on the held-out
// quarter, and writes the model artifact.
func Run(cfg Config) (Report, error) {
	start := time.Now()

	ds, err := dataset.ReadFile(cfg.DatasetPath)
	if err != nil {
		return Report{}, err
	}
	xs, ys := Matrix(ds)
	trainIdx, testIdx := Split(len(xs))
	if len(trainIdx) == 0 || len(testIdx) == 0 {
		return Report{}, fmt.Errorf("%w: %d rows in %s", ErrEmptySplit, len(xs), cfg.DatasetPath)
	}
	trainX, trainY := gather(xs, ys, trainIdx)
	testX, testY := gather(xs, ys, testIdx)

	cfg.Logger.Debug().
		Str("dataset", cfg.DatasetPath).
		Str("regressor", string(cfg.Regressor)).
		Int("train_rows", len(trainX)).
		Int("test_rows", len(testX)).
		Msg("fitting model")

	m, err := fitRegressor(cfg, trainX, trainY)
	if err != nil {
		return Report{}, err
	}

	estimates := make([]float64, len(testX))
	for i, x := range testX {
		estimates[i] = m.Evaluate(x)
	}
	score := stat.RSquaredFrom(estimates, testY, nil)

	if tr, ok := m.(*model.Tree); ok && cfg.DotPath != "" {
		if err := writeDot(cfg.DotPath, tr); err != nil {
			return Report{}, err
		}
	}
	if err := model.SaveFile(cfg.ModelPath, m, FeatureNames); err != nil {
		return Report{}, err
	}

	rep := Report{
		Rows:      len(xs),
		TrainRows: len(trainX),
		TestRows:  len(testX),
		Score:     score,
		ModelPath: cfg.ModelPath,
		Duration:  time.Since(start),
	}
	cfg.Logger.Info().
		Str("model", rep.ModelPath).
		Float64("score", rep.Score).
		Dur("duration", rep.Duration).
		Msg("model trained")
	return rep, nil
}

func fitRegressor(cfg Config, xs [][]float64, ys []float64) (model.Model, error) {
	switch cfg.Regressor {
	case RegressorTree:
		return model.Fit(xs, ys, model.Options{MaxDepth: TreeDepth, MinLeaf: 1})
	case RegressorForest:
		return model.FitForest(xs, ys, model.ForestOptions{
			Trees:    ForestTrees,
			MaxDepth: ForestDepth,
			MinLeaf:  1,
			Seed:     cfg.Seed,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegressor, cfg.Regressor)
	}
}

func writeDot(path string, tr *model.Tree) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return tr.WriteGraphviz(f, FeatureNames)
}
