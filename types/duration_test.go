package types_test

import (
	"math"
	"testing"
	"time"

	"github.com/blockberries/kairos/types"

	"github.com/blockberries/cramberry/pkg/cramberry"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// roundTrip marshals v, unmarshals into a new T, and returns it.
func roundTrip[T any](t *testing.T, v T) T {
	t.Helper()
	data, err := cramberry.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var out T
	if err := cramberry.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	return out
}

func TestDuration_RoundTrip(t *testing.T) {
	d := types.Duration{Seconds: -7, Attos: -123456789012345678}
	got := roundTrip(t, d)
	if got != d {
		t.Fatalf("Duration round-trip failed: got %+v, want %+v", got, d)
	}
}

func TestDuration_IntegerConstructorsExact(t *testing.T) {
	cases := []struct {
		name string
		got  types.Duration
		want types.Duration
	}{
		{"seconds", types.Seconds(3), types.Duration{Seconds: 3}},
		{"negative seconds", types.Seconds(-3), types.Duration{Seconds: -3}},
		{"milliseconds split", types.Milliseconds(1500), types.Duration{Seconds: 1, Attos: 500_000_000_000_000_000}},
		{"negative milliseconds", types.Milliseconds(-1500), types.Duration{Seconds: -1, Attos: -500_000_000_000_000_000}},
		{"microseconds split", types.Microseconds(2_000_001), types.Duration{Seconds: 2, Attos: 1_000_000_000_000}},
		{"nanoseconds split", types.Nanoseconds(int64(3_000_000_007)), types.Duration{Seconds: 3, Attos: 7_000_000_000}},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: got %+v, want %+v", tc.name, tc.got, tc.want)
		}
	}
}

func TestDuration_UnitConversionsConsistent(t *testing.T) {
	if !types.Seconds(0.5).Equal(types.Milliseconds(500)) {
		t.Error("Seconds(0.5) != Milliseconds(500)")
	}
	if !types.Milliseconds(0.5).Equal(types.Microseconds(500)) {
		t.Error("Milliseconds(0.5) != Microseconds(500)")
	}
	if !types.Microseconds(0.5).Equal(types.Nanoseconds(500)) {
		t.Error("Microseconds(0.5) != Nanoseconds(500)")
	}
}

func TestDuration_Arithmetic(t *testing.T) {
	if got := types.Seconds(1).Mul(2); !got.Equal(types.Seconds(2)) {
		t.Errorf("Seconds(1)*2 = %v, want Seconds(2)", got)
	}
	if got := types.Seconds(1).Ratio(types.Seconds(1)); got != 1.0 {
		t.Errorf("Seconds(1)/Seconds(1) = %v, want 1.0", got)
	}
	if got := types.Seconds(4).Div(2); !got.Equal(types.Seconds(2)) {
		t.Errorf("Seconds(4)/2 = %v, want Seconds(2)", got)
	}
	if got := types.Seconds(1).Add(types.Seconds(2)); !got.Equal(types.Seconds(3)) {
		t.Errorf("Seconds(1)+Seconds(2) = %v, want Seconds(3)", got)
	}
	if got := types.Seconds(5).Neg(); !got.Equal(types.Seconds(-5)) {
		t.Errorf("-Seconds(5) = %v, want Seconds(-5)", got)
	}

	// The float path is documented as lossy below the nanosecond;
	// 0.3 - 0.2 lands within tolerance of 0.1, not exactly on it.
	got := types.Seconds(0.3).Sub(types.Seconds(0.2))
	diff := math.Abs(got.Sub(types.Seconds(0.1)).ToGo().Seconds())
	if diff > 1e-9 {
		t.Errorf("Seconds(0.3)-Seconds(0.2) = %v, want ≈ Seconds(0.1)", got)
	}
}

func TestDuration_ExactComparison(t *testing.T) {
	// One atto apart: invisible to the float path, visible to Cmp.
	a := types.Duration{Seconds: 1, Attos: 0}
	b := types.Duration{Seconds: 1, Attos: 1}
	if !a.Less(b) {
		t.Error("comparison lost a one-attosecond difference")
	}
	if a.Equal(b) {
		t.Error("Equal conflated values one attosecond apart")
	}
	if got := b.Cmp(a); got != 1 {
		t.Errorf("Cmp = %d, want 1", got)
	}
}

func TestDuration_GoInterop(t *testing.T) {
	d := types.FromGo(90 * time.Minute)
	if !d.Equal(types.Seconds(5400)) {
		t.Fatalf("FromGo(90m) = %v", d)
	}
	if d.ToGo() != 90*time.Minute {
		t.Fatalf("ToGo = %v, want 90m", d.ToGo())
	}
}

func TestDuration_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("wire round-trip is exact for any pair", prop.ForAll(
		func(secs, attos int64) bool {
			d := types.Duration{Seconds: secs, Attos: attos}
			data, err := cramberry.Marshal(d)
			if err != nil {
				return false
			}
			var out types.Duration
			if err := cramberry.Unmarshal(data, &out); err != nil {
				return false
			}
			return out == d
		},
		gen.Int64(),
		gen.Int64(),
	))

	properties.Property("nanosecond constructor inverts ToGo exactly", prop.ForAll(
		func(n int64) bool {
			return types.Nanoseconds(n).ToGo() == time.Duration(n)
		},
		gen.Int64(),
	))

	properties.Property("Cmp is antisymmetric", prop.ForAll(
		func(s1, a1, s2, a2 int64) bool {
			d := types.Duration{Seconds: s1, Attos: a1}
			o := types.Duration{Seconds: s2, Attos: a2}
			return d.Cmp(o) == -o.Cmp(d)
		},
		gen.Int64(), gen.Int64(), gen.Int64(), gen.Int64(),
	))

	properties.Property("integer second constructors order with their argument", prop.ForAll(
		func(a, b int64) bool {
			da, db := types.Seconds(a), types.Seconds(b)
			return (a < b) == da.Less(db)
		},
		gen.Int64Range(-1e15, 1e15),
		gen.Int64Range(-1e15, 1e15),
	))

	properties.TestingRun(t)
}
