package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zeu5/pazaak-learn/util"
)

// Artifact kinds recognized by Load.
const (
	KindTree   = "tree"
	KindForest = "forest"
)

var ErrUnknownModel = errors.New("model: unknown model type")

// artifact tags the serialized model with its kind and the feature
// names it was trained on, so loaders can reject mismatched inputs.
type artifact struct {
	Kind     string          `json:"model_type"`
	Features []string        `json:"feature_names"`
	Model    json.RawMessage `json:"model"`
}

// SaveFile writes m and its feature names to path as a tagged JSON
// artifact.
func SaveFile(path string, m Model, featureNames []string) error {
	var kind string
	switch m.(type) {
	case *Tree:
		kind = KindTree
	case *Forest:
		kind = KindForest
	default:
		return fmt.Errorf("%w: %T", ErrUnknownModel, m)
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return util.SaveJson(path, artifact{Kind: kind, Features: featureNames, Model: raw})
}

// Load reads a tagged artifact and rebuilds the model it names.
func Load(r io.Reader) (Model, []string, error) {
	var a artifact
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, nil, err
	}
	switch a.Kind {
	case KindTree:
		t := &Tree{}
		if err := json.Unmarshal(a.Model, t); err != nil {
			return nil, nil, err
		}
		return t, a.Features, nil
	case KindForest:
		f := &Forest{}
		if err := json.Unmarshal(a.Model, f); err != nil {
			return nil, nil, err
		}
		return f, a.Features, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownModel, a.Kind)
	}
}

// LoadFile opens path and loads the artifact inside.
func LoadFile(path string) (Model, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Load(f)
}
