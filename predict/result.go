// SPDX-License-Identifier: EPL-2.0

package predict

import (
	"cmp"
	"fmt"
	"slices"
)

// Result is the backend's answer for one clip.
type Result struct {
	Emotion       string             `json:"emotion" yaml:"emotion"`
	Confidence    float64            `json:"confidence" yaml:"confidence"`
	Probabilities map[string]float64 `json:"probabilities" yaml:"probabilities"`
}

// Score is one label with its probability.
type Score struct {
	Label       string  `json:"label" yaml:"label"`
	Probability float64 `json:"probability" yaml:"probability"`
}

// Top returns the n most probable labels, highest first. Ties sort by
// label. n <= 0 returns all of them.
func (r *Result) Top(n int) []Score {
	scores := make([]Score, 0, len(r.Probabilities))
	for label, p := range r.Probabilities {
		scores = append(scores, Score{Label: label, Probability: p})
	}

	slices.SortFunc(scores, func(a, b Score) int {
		if c := cmp.Compare(b.Probability, a.Probability); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})

	if n > 0 && n < len(scores) {
		scores = scores[:n]
	}

	return scores
}

// validate mirrors the checks a client makes before trusting a response.
func (r *Result) validate() error {
	if r.Emotion == "" {
		return fmt.Errorf("%w: missing emotion", ErrInvalidResponse)
	}

	if r.Probabilities == nil {
		return fmt.Errorf("%w: missing probabilities", ErrInvalidResponse)
	}

	return nil
}
