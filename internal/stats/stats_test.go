package stats

import "testing"

func TestMedian(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []float64
		want   *float64
	}{
		{
			name:   "empty input",
			values: nil,
			want:   nil,
		},
		{
			name:   "single value",
			values: []float64{42.5},
			want:   ptr(42.5),
		},
		{
			name:   "odd count returns middle",
			values: []float64{3, 1, 2},
			want:   ptr(2.0),
		},
		{
			name:   "even count returns mean of middles",
			values: []float64{4, 1, 3, 2},
			want:   ptr(2.5),
		},
		{
			name:   "duplicates",
			values: []float64{5, 5, 5, 5, 5},
			want:   ptr(5.0),
		},
		{
			name:   "negative values",
			values: []float64{-3, -1, -2},
			want:   ptr(-2.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Median(tt.values)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("Median(%v) = %v, want %v", tt.values, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("Median(%v) = %v, want %v", tt.values, *got, *tt.want)
			}
		})
	}
}

func TestMedianPermutationInvariant(t *testing.T) {
	t.Parallel()

	permutations := [][]float64{
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{3, 1, 5, 2, 4},
		{2, 5, 1, 4, 3},
	}

	for _, p := range permutations {
		got := Median(p)
		if got == nil || *got != 3 {
			t.Errorf("Median(%v) = %v, want 3", p, got)
		}
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	values := []float64{3, 1, 2}
	Median(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input mutated: %v", values)
	}
}

func TestMedianInts(t *testing.T) {
	t.Parallel()

	got := Median([]int{1, 2, 3, 4})
	if got == nil || *got != 2.5 {
		t.Errorf("Median([1 2 3 4]) = %v, want 2.5", got)
	}
}

func ptr(f float64) *float64 { return &f }
