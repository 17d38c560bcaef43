// SPDX-License-Identifier: EPL-2.0

package predict

import (
	"fmt"
	"testing"
)

func TestResult_Top(t *testing.T) {
	t.Parallel()

	r := &Result{Probabilities: map[string]float64{
		"angry": 0.05, "happy": 0.4, "neutral": 0.4, "sad": 0.15,
	}}

	tests := []struct {
		n    int
		want []string
	}{
		{1, []string{"happy"}},
		{3, []string{"happy", "neutral", "sad"}},
		{0, []string{"happy", "neutral", "sad", "angry"}},
		{10, []string{"happy", "neutral", "sad", "angry"}},
	}

	for _, tt := range tests {
		got := r.Top(tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("Top(%d) = %v, want %v", tt.n, got, tt.want)
			continue
		}
		for i := range got {
			if got[i].Label != tt.want[i] {
				t.Errorf("Top(%d)[%d] = %q, want %q", tt.n, i, got[i].Label, tt.want[i])
			}
		}
	}
}

func ExampleResult_Top() {
	r := &Result{
		Emotion:       "sad",
		Confidence:    0.62,
		Probabilities: map[string]float64{"sad": 0.62, "neutral": 0.3, "fear": 0.08},
	}

	for _, s := range r.Top(2) {
		fmt.Printf("%s %.2f\n", s.Label, s.Probability)
	}
	// Output:
	// sad 0.62
	// neutral 0.30
}
