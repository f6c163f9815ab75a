// Package file loads a question tree from a YAML document.
//
// The document shape mirrors the domain model:
//
//	root: q1_food_type
//	questions:
//	  - id: q1_food_type
//	    prompt: What kind of food are you in the mood for?
//	    options: [Italian, Mexican, Indian]
//	    branches:
//	      Italian: q2_italian_preference
//	      "*": end
//
// Branch keys may use any casing; normalization and referential validation
// happen in domain.NewGraph.
package file

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/forkpath-dev/forkpath/pkg/domain"
)

// Source reads a graph document from disk on every Load.
type Source struct {
	path string
}

// New creates a Source for the given YAML file path.
func New(path string) *Source {
	return &Source{path: path}
}

type graphDoc struct {
	Root      string            `yaml:"root"`
	Questions []domain.Question `yaml:"questions"`
}

// Load implements ports.GraphSource.
func (s *Source) Load() (string, []domain.Question, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", nil, fmt.Errorf("reading graph file %s: %w", s.path, err)
	}

	var doc graphDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", nil, fmt.Errorf("parsing graph file %s: %w", s.path, err)
	}
	if doc.Root == "" {
		return "", nil, fmt.Errorf("graph file %s: missing root", s.path)
	}
	if len(doc.Questions) == 0 {
		return "", nil, fmt.Errorf("graph file %s: no questions defined", s.path)
	}

	return doc.Root, doc.Questions, nil
}
