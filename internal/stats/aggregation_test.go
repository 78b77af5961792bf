package stats

import (
	"reflect"
	"testing"
)

func TestMeanMedianSum(t *testing.T) {
	tests := []struct {
		values            []float64
		mean, median, sum float64
	}{
		{nil, 0, 0, 0},
		{[]float64{4}, 4, 4, 4},
		{[]float64{3, 1, 2}, 2, 2, 6},
		{[]float64{4, 1, 3, 2}, 2.5, 2.5, 10},
	}
	for _, tt := range tests {
		if got := Mean(tt.values); got != tt.mean {
			t.Errorf("Mean(%v) = %v, want %v", tt.values, got, tt.mean)
		}
		if got := Median(tt.values); got != tt.median {
			t.Errorf("Median(%v) = %v, want %v", tt.values, got, tt.median)
		}
		if got := Sum(tt.values); got != tt.sum {
			t.Errorf("Sum(%v) = %v, want %v", tt.values, got, tt.sum)
		}
	}
}

func TestMedianDoesNotReorder(t *testing.T) {
	values := []float64{3, 1, 2}
	Median(values)
	if !reflect.DeepEqual(values, []float64{3, 1, 2}) {
		t.Errorf("Median modified its input: %v", values)
	}
}

func TestTopCounts(t *testing.T) {
	counts := map[string]int{"Mexican": 5, "Pizza": 3, "Bars": 5, "Sushi": 1}
	got := TopCounts(counts, 3)
	want := []KeyCount{{"Bars", 5}, {"Mexican", 5}, {"Pizza", 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopCounts = %v, want %v", got, want)
	}
	if all := TopCounts(counts, 10); len(all) != 4 {
		t.Errorf("TopCounts beyond size returned %d entries", len(all))
	}
}
