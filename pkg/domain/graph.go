package domain

import "sort"

// Graph is the validated, immutable question tree.
// It is built once at startup and must be treated as read-only afterwards;
// concurrent lookups need no synchronization.
type Graph struct {
	root      string
	questions map[string]Question
}

// NewGraph validates and normalizes a question set into a Graph.
//
// Construction fails with a MalformedTreeError when the tree cannot be
// trusted at runtime:
//   - the root does not identify a known question
//   - two questions share an ID, or a question claims the terminal ID
//   - a branch or default target is neither a known question nor TerminalID
//   - a declared option has no route (no branch entry and no default)
//
// Branch keys are normalized (trimmed, casefolded) so runtime matching is a
// plain map lookup, and a DefaultKey entry is lifted into Question.Default.
func NewGraph(root string, questions []Question) (*Graph, error) {
	byID := make(map[string]Question, len(questions))

	for _, q := range questions {
		if q.ID == "" {
			return nil, &MalformedTreeError{Reason: "question with empty ID"}
		}
		if q.ID == TerminalID {
			return nil, &MalformedTreeError{From: q.ID, Reason: "question ID collides with the terminal marker"}
		}
		if _, dup := byID[q.ID]; dup {
			return nil, &MalformedTreeError{From: q.ID, Reason: "duplicate question ID"}
		}

		normalized := make(map[string]string, len(q.Branches))
		for key, target := range q.Branches {
			if key == DefaultKey {
				q.Default = target
				continue
			}
			normalized[Normalize(key)] = target
		}
		q.Branches = normalized
		byID[q.ID] = q
	}

	if _, ok := byID[root]; !ok {
		return nil, &MalformedTreeError{Target: root, Reason: "root question not found"}
	}

	// Referential integrity: dangling targets are a load-time failure, never
	// a mid-conversation surprise.
	for id, q := range byID {
		for key, target := range q.Branches {
			if err := checkTarget(byID, id, key, target); err != nil {
				return nil, err
			}
		}
		if q.Default != "" {
			if err := checkTarget(byID, id, DefaultKey, q.Default); err != nil {
				return nil, err
			}
		}
		for _, opt := range q.Options {
			if _, ok := q.Resolve(Normalize(opt)); !ok {
				return nil, &MalformedTreeError{From: id, Target: opt, Reason: "declared option has no branch target"}
			}
		}
	}

	return &Graph{root: root, questions: byID}, nil
}

func checkTarget(byID map[string]Question, from, key, target string) error {
	if target == TerminalID {
		return nil
	}
	if _, ok := byID[target]; !ok {
		return &MalformedTreeError{From: from, Target: target, Reason: "branch " + key + " points to unknown question"}
	}
	return nil
}

// Root returns the designated entry question.
func (g *Graph) Root() Question {
	return g.questions[g.root]
}

// Question looks up a question by ID.
func (g *Graph) Question(id string) (Question, bool) {
	q, ok := g.questions[id]
	return q, ok
}

// Questions returns all questions ordered by ID, for introspection tools.
func (g *Graph) Questions() []Question {
	out := make([]Question, 0, len(g.questions))
	for _, q := range g.questions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of questions in the graph.
func (g *Graph) Len() int {
	return len(g.questions)
}
