package wrand

import (
	"math"
	"math/rand"
	"testing"
)

func TestIndexBounds(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	weights := []float64{1, 2, 3}
	for i := 0; i < 1000; i++ {
		idx := Index(r, weights)
		if idx < 0 || idx >= len(weights) {
			t.Fatalf("Index = %d, out of range", idx)
		}
	}
}

func TestIndexZeroWeightNeverPicked(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	weights := []float64{0, 5, 0, 3, -1}
	for i := 0; i < 2000; i++ {
		idx := Index(r, weights)
		if idx != 1 && idx != 3 {
			t.Fatalf("Index = %d, want 1 or 3", idx)
		}
	}
}

func TestIndexAllZero(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	if idx := Index(r, []float64{0, 0}); idx != -1 {
		t.Errorf("Index = %d, want -1", idx)
	}
	if idx := Index(r, nil); idx != -1 {
		t.Errorf("Index(nil) = %d, want -1", idx)
	}
}

func TestIndexDistribution(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	weights := []float64{1, 3}
	counts := [2]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[Index(r, weights)]++
	}
	ratio := float64(counts[1]) / float64(n)
	if ratio < 0.72 || ratio > 0.78 {
		t.Errorf("weight-3 ratio = %.3f, want ~0.75", ratio)
	}
}

func TestIndexDeterminism(t *testing.T) {
	weights := []float64{2, 1, 4, 0.5}
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		if got, want := Index(a, weights), Index(b, weights); got != want {
			t.Fatalf("draw %d: %d != %d", i, got, want)
		}
	}
}

func TestIndexRoll(t *testing.T) {
	weights := []float64{1, 2}
	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		idx, roll := IndexRoll(a, weights)
		if want := Index(b, weights); idx != want {
			t.Fatalf("draw %d: IndexRoll = %d, Index = %d", i, idx, want)
		}
		if roll < 0 || roll >= 3 {
			t.Fatalf("roll = %f, out of [0,3)", roll)
		}
	}
}

func TestPick(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	items := []string{"a", "b", "c"}
	for i := 0; i < 500; i++ {
		got, ok := Pick(r, items, func(s string) float64 {
			if s == "b" {
				return 1
			}
			return 0
		})
		if !ok || got != "b" {
			t.Fatalf("Pick = %q, %v, want b, true", got, ok)
		}
	}

	_, ok := Pick(r, items, func(string) float64 { return 0 })
	if ok {
		t.Error("Pick with all-zero weights reported ok")
	}
}

func TestBool(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	if Bool(r, 0, 1) {
		t.Error("Bool(0,1) = true")
	}
	if !Bool(r, 1, 0) {
		t.Error("Bool(1,0) = false")
	}
	yes := 0
	const n = 20000
	for i := 0; i < n; i++ {
		if Bool(r, 1, 1) {
			yes++
		}
	}
	ratio := float64(yes) / float64(n)
	if ratio < 0.47 || ratio > 0.53 {
		t.Errorf("Bool(1,1) ratio = %.3f, want ~0.5", ratio)
	}
}

func TestPercent(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	if Percent(r, 0) {
		t.Error("Percent(0) = true")
	}
	if !Percent(r, 100) {
		t.Error("Percent(100) = false")
	}
	if Percent(r, -5) {
		t.Error("Percent(-5) = true")
	}
	if !Percent(r, 150) {
		t.Error("Percent(150) = false")
	}
	hits := 0
	const n = 20000
	for i := 0; i < n; i++ {
		if Percent(r, 30) {
			hits++
		}
	}
	ratio := float64(hits) / float64(n)
	if ratio < 0.27 || ratio > 0.33 {
		t.Errorf("Percent(30) ratio = %.3f, want ~0.3", ratio)
	}
}

func TestGauss(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	const n = 50000
	sum, sumSq := 0.0, 0.0
	for i := 0; i < n; i++ {
		x := Gauss(r, 10, 2)
		sum += x
		sumSq += x * x
	}
	mean := sum / n
	stddev := math.Sqrt(sumSq/n - mean*mean)
	if mean < 9.9 || mean > 10.1 {
		t.Errorf("mean = %.3f, want ~10", mean)
	}
	if stddev < 1.9 || stddev > 2.1 {
		t.Errorf("stddev = %.3f, want ~2", stddev)
	}
}

func TestGaussZeroStddev(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	if got := Gauss(r, 3, 0); got != 3 {
		t.Errorf("Gauss(3, 0) = %f, want 3", got)
	}
}
