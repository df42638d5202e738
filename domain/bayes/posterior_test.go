package bayes

import (
	"math"
	"testing"

	"settei/domain/setting"
)

const tol = 1e-9

func TestLikelihood_KnownValue(t *testing.T) {
	// C(10,2) * 0.2^2 * 0.8^8 = 45 * 0.04 * 0.16777216
	want := 45.0 * 0.04 * math.Pow(0.8, 8)
	got := Likelihood(10, 2, 0.2)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Likelihood(10,2,0.2) = %v, want %v", got, want)
	}
}

func TestLikelihood_LargeSampleStaysFinite(t *testing.T) {
	got := Likelihood(1000, 26, 1.0/38.15)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("Likelihood(1000,26,1/38.15) is not finite: %v", got)
	}
	if got <= 0 {
		t.Errorf("Likelihood(1000,26,1/38.15) = %v, want > 0", got)
	}

	// Even thousands of spins must not underflow to zero near the mode.
	if got := Likelihood(5000, 131, 1.0/38.15); got <= 0 {
		t.Errorf("Likelihood(5000,131,1/38.15) = %v, want > 0", got)
	}
}

func TestLikelihood_DegenerateInputsReturnZero(t *testing.T) {
	cases := []struct {
		name  string
		spins int
		hits  int
		p     float64
	}{
		{"p zero", 100, 10, 0.0},
		{"p negative", 100, 10, -0.5},
		{"p one", 100, 10, 1.0},
		{"p above one", 100, 10, 1.5},
		{"zero spins", 0, 0, 0.3},
		{"negative spins", -10, 0, 0.3},
		{"negative hits", 100, -1, 0.3},
		{"hits above spins", 100, 101, 0.3},
	}
	for _, tc := range cases {
		if got := Likelihood(tc.spins, tc.hits, tc.p); got != 0.0 {
			t.Errorf("%s: Likelihood(%d,%d,%v) = %v, want 0", tc.name, tc.spins, tc.hits, tc.p, got)
		}
	}
}

func TestNormalize_SumsToOne(t *testing.T) {
	priors := []map[setting.Key]float64{
		{setting.Setting1: 1, setting.Setting2: 2, setting.Setting4: 3, setting.Setting5: 4, setting.Setting6: 5},
		{setting.Setting1: 20, setting.Setting6: 80},
		{setting.Setting1: 0.001},
		{setting.Setting2: 100, setting.Setting4: -50},
	}
	for i, prior := range priors {
		d := Normalize(prior)
		if math.Abs(d.Sum()-1.0) > tol {
			t.Errorf("case %d: normalized sum = %v, want 1", i, d.Sum())
		}
		if len(d) != setting.Count() {
			t.Errorf("case %d: got %d keys, want %d", i, len(d), setting.Count())
		}
	}
}

func TestNormalize_DegenerateFallsBackToUniform(t *testing.T) {
	uniform := setting.Uniform()
	cases := []map[setting.Key]float64{
		nil,
		{},
		{setting.Setting1: 0, setting.Setting2: 0},
		{setting.Setting1: -5, setting.Setting6: -1},
	}
	for i, prior := range cases {
		d := Normalize(prior)
		if !d.ApproxEqual(uniform, tol) {
			t.Errorf("case %d: Normalize(%v) = %v, want uniform", i, prior, d)
		}
	}
}

func TestNormalize_ClampsNegativeWeights(t *testing.T) {
	d := Normalize(map[setting.Key]float64{
		setting.Setting1: -10,
		setting.Setting6: 10,
	})
	if d[setting.Setting1] != 0 {
		t.Errorf("negative weight should clamp to 0, got %v", d[setting.Setting1])
	}
	if math.Abs(d[setting.Setting6]-1.0) > tol {
		t.Errorf("setting 6 should hold all mass, got %v", d[setting.Setting6])
	}
}

func TestNormalize_IgnoresUnknownKeys(t *testing.T) {
	d := Normalize(map[setting.Key]float64{
		"3":              100, // not in the hypothesis set
		setting.Setting5: 50,
	})
	if math.Abs(d[setting.Setting5]-1.0) > tol {
		t.Errorf("unknown key should not take mass, setting 5 = %v", d[setting.Setting5])
	}
	if _, ok := d["3"]; ok {
		t.Error("unknown key leaked into the distribution")
	}
}

func TestNormalize_AlreadyNormalizedIsNoOp(t *testing.T) {
	prior := map[setting.Key]float64{
		setting.Setting1: 0.1, setting.Setting2: 0.2, setting.Setting4: 0.3,
		setting.Setting5: 0.25, setting.Setting6: 0.15,
	}
	d := Normalize(prior)
	for k, w := range prior {
		if math.Abs(d[k]-w) > tol {
			t.Errorf("key %s: got %v, want %v", k, d[k], w)
		}
	}
}

func TestPosterior_SumsToOne(t *testing.T) {
	cases := []struct {
		spins int
		hits  int
	}{
		{1000, 20}, {1000, 44}, {100, 3}, {0, 0}, {5000, 200},
	}
	for _, tc := range cases {
		d := Posterior(tc.spins, tc.hits, nil)
		if math.Abs(d.Sum()-1.0) > tol {
			t.Errorf("Posterior(%d,%d) sums to %v, want 1", tc.spins, tc.hits, d.Sum())
		}
	}
}

func TestPosterior_Idempotent(t *testing.T) {
	prior := map[setting.Key]float64{setting.Setting1: 30, setting.Setting4: 40, setting.Setting6: 30}
	a := Posterior(1200, 40, prior)
	b := Posterior(1200, 40, prior)
	if !a.ApproxEqual(b, 0) {
		t.Errorf("identical inputs produced different posteriors: %v vs %v", a, b)
	}
}

func TestPosterior_ZeroMarginalReturnsPrior(t *testing.T) {
	// Only settings with zero prior mass would have nonzero likelihood, so
	// every numerator is zero and the normalized prior comes back.
	prior := map[setting.Key]float64{setting.Setting1: 1}
	d := Posterior(0, 0, prior) // zero spins zeroes every likelihood
	if math.Abs(d[setting.Setting1]-1.0) > tol {
		t.Errorf("expected normalized prior back, got %v", d)
	}
}

func TestPosterior_ZeroPriorMassStaysZero(t *testing.T) {
	prior := map[setting.Key]float64{setting.Setting1: 50, setting.Setting6: 50}
	d := Posterior(1000, 30, prior)
	for _, k := range []setting.Key{setting.Setting2, setting.Setting4, setting.Setting5} {
		if d[k] != 0 {
			t.Errorf("setting %s had zero prior but posterior %v", k, d[k])
		}
	}
}

func TestPosterior_MoreHitsShiftMassUpward(t *testing.T) {
	low := Posterior(1000, 20, nil)
	high := Posterior(1000, 50, nil)
	if high[setting.Setting6] <= low[setting.Setting6] {
		t.Errorf("mass on setting 6 should grow with hit count: %v -> %v",
			low[setting.Setting6], high[setting.Setting6])
	}
	if high[setting.Setting1] >= low[setting.Setting1] {
		t.Errorf("mass on setting 1 should shrink with hit count: %v -> %v",
			low[setting.Setting1], high[setting.Setting1])
	}
}

func TestPosterior_LowHitRateScenario(t *testing.T) {
	// 20/1000 is a 2% hit rate, at or below setting 1's 1/38.15.
	d := Posterior(1000, 20, nil)
	highProb := d.SubsetSum(setting.HighGroup...)
	if highProb >= 0.5 {
		t.Errorf("high-group mass = %v, want < 0.5 for a 2%% hit rate", highProb)
	}
	lowProb := d.SubsetSum(setting.LowGroup...)
	if lowProb <= highProb {
		t.Errorf("low group (%v) should dominate high group (%v)", lowProb, highProb)
	}
}

func TestPosterior_HighHitRateScenario(t *testing.T) {
	// 44/1000 is 4.4%, right at setting 6's 1/22.53.
	d := Posterior(1000, 44, nil)
	top, mass := d.Top()
	if top != setting.Setting6 {
		t.Errorf("top key = %s (%.4f), want 6", top, mass)
	}
}
