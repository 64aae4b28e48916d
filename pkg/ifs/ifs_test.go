package ifs

import (
	"testing"

	"github.com/willbeason/ifs-fractal/pkg/errors"
	"github.com/willbeason/ifs-fractal/pkg/geometry"
	"github.com/willbeason/ifs-fractal/pkg/transforms"
)

// scripted replays a fixed sequence of draws, cycling when exhausted.
type scripted struct {
	draws []float64
	next  int
}

func (s *scripted) Float64() float64 {
	r := s.draws[s.next%len(s.draws)]
	s.next++
	return r
}

func mustSet(t *testing.T, p transforms.Preset) *transforms.ProbabilisticTransform {
	t.Helper()
	set, err := p.Set()
	if err != nil {
		t.Fatalf("%v.Set() error: %v", p, err)
	}
	return set
}

func TestGenerate_InvalidPointCount(t *testing.T) {
	set := mustSet(t, transforms.Fern)

	for _, n := range []int{0, -1} {
		cloud, err := Generate(set, n, NewSeeded(1))
		if !errors.Is(err, errors.ErrCodeInvalidPointCount) {
			t.Errorf("Generate(%d) error = %v, want %s", n, err, errors.ErrCodeInvalidPointCount)
		}
		if cloud != nil {
			t.Errorf("Generate(%d) cloud = %+v, want nil", n, cloud)
		}
	}
}

func TestGenerate_OnePoint(t *testing.T) {
	set := mustSet(t, transforms.Fern)
	src := &scripted{draws: []float64{0.5}}

	cloud, err := Generate(set, 1, src)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(cloud.Points) != 1 {
		t.Fatalf("len(Points) = %d, want 1", len(cloud.Points))
	}

	want := set.Transform(set.Select(0.5)).Next(geometry.XY{})
	if cloud.Points[0] != want {
		t.Errorf("Points[0] = %+v, want %+v", cloud.Points[0], want)
	}

	wantBox := geometry.Box{Xmin: want.X, Xmax: want.X, Ymin: want.Y, Ymax: want.Y}
	if cloud.Bounds != wantBox {
		t.Errorf("Bounds = %+v, want %+v", cloud.Bounds, wantBox)
	}
}

func TestGenerate_WithStart(t *testing.T) {
	set := mustSet(t, transforms.Sierpinsky)
	start := geometry.XY{X: 10, Y: 20}

	cloud, err := Generate(set, 1, &scripted{draws: []float64{0}}, WithStart(start))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	// Transform 0 halves and shifts by (1, 1).
	want := geometry.XY{X: 6, Y: 11}
	if cloud.Points[0] != want {
		t.Errorf("Points[0] = %+v, want %+v", cloud.Points[0], want)
	}
}

func TestGenerate_FollowsChain(t *testing.T) {
	set := mustSet(t, transforms.Tree)
	draws := []float64{0.01, 0.3, 0.6, 0.95, 0.2}

	cloud, err := Generate(set, len(draws), &scripted{draws: draws})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	s := Start(geometry.XY{})
	for i, r := range draws {
		s = Step(set, s, &scripted{draws: []float64{r}})
		if cloud.Points[i] != s.Current {
			t.Errorf("Points[%d] = %+v, want %+v", i, cloud.Points[i], s.Current)
		}
	}

	wantCounts := []int{1, 2, 1, 1}
	for i, want := range wantCounts {
		if cloud.Counts[i] != want {
			t.Errorf("Counts[%d] = %d, want %d", i, cloud.Counts[i], want)
		}
	}
}

func TestGenerate_BoundsContainAllPoints(t *testing.T) {
	for _, p := range transforms.Presets() {
		t.Run(p.String(), func(t *testing.T) {
			cloud, err := Generate(mustSet(t, p), 5000, NewSeeded(7))
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}

			total := 0
			for _, c := range cloud.Counts {
				total += c
			}
			if total != len(cloud.Points) {
				t.Errorf("sum(Counts) = %d, want %d", total, len(cloud.Points))
			}

			for i, pt := range cloud.Points {
				if !cloud.Bounds.Contains(pt) {
					t.Fatalf("Points[%d] = %+v outside %+v", i, pt, cloud.Bounds)
				}
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	set := mustSet(t, transforms.Custom)

	a, err := Generate(set, 1000, NewSeeded(42))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	b, err := Generate(set, 1000, NewSeeded(42))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("Points[%d] differ: %+v != %+v", i, a.Points[i], b.Points[i])
		}
	}
	if a.Bounds != b.Bounds {
		t.Errorf("Bounds differ: %+v != %+v", a.Bounds, b.Bounds)
	}
}

func TestStep_DoesNotMutateInput(t *testing.T) {
	set := mustSet(t, transforms.Fern)
	s := Start(geometry.XY{X: 1, Y: 1})

	next := Step(set, s, &scripted{draws: []float64{0.5}})
	if s.Current != (geometry.XY{X: 1, Y: 1}) || s.Transform != -1 {
		t.Errorf("Step mutated its input: %+v", s)
	}
	if next.Transform != 1 {
		t.Errorf("Step().Transform = %d, want 1", next.Transform)
	}
}
