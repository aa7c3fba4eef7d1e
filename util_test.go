package pathcreator

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// angleDist returns the absolute angular distance between a and b, in [0, π].
func angleDist(a, b float64) float64 {
	return math.Abs(NormalizeAngle(a - b))
}

func cmpApprox(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}
