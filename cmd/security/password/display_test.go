package password

import "testing"

func TestDisplayState_Update(t *testing.T) {
	t.Parallel()

	all := []DisplayState{Unknown, Met, NotMet}

	cases := []struct {
		verdict bool
		strict  bool
		want    DisplayState
	}{
		{verdict: false, strict: false, want: Unknown},
		{verdict: false, strict: true, want: NotMet},
		{verdict: true, strict: false, want: Met},
		{verdict: true, strict: true, want: Met},
	}

	for _, from := range all {
		for _, tc := range cases {
			got := from.Update(tc.verdict, tc.strict)
			if got != tc.want {
				t.Fatalf("%s.Update(%v,%v)=%s want=%s", from, tc.verdict, tc.strict, got, tc.want)
			}
		}
	}
}

func TestDisplayState_Reset(t *testing.T) {
	t.Parallel()

	for _, from := range []DisplayState{Unknown, Met, NotMet} {
		if got := from.Reset(); got != Unknown {
			t.Fatalf("%s.Reset()=%s", from, got)
		}
	}
}

func TestDisplayState_ZeroIsUnknown(t *testing.T) {
	t.Parallel()

	var s DisplayState
	if s != Unknown || s.Icon() != "circle" {
		t.Fatalf("zero value must be Unknown/circle, got %s/%s", s, s.Icon())
	}
	if Met.Icon() != "checkmark.circle" || NotMet.Icon() != "xmark.circle" {
		t.Fatalf("icon mismatch")
	}
}

func TestDisplay_ApplyLenientThenStrict(t *testing.T) {
	t.Parallel()

	var d Display

	// "abc": only lowercase holds.
	d.Apply(Evaluate("abc"), false)
	for _, cs := range d.Snapshot() {
		want := Unknown
		if cs.Criterion == Lowercase {
			want = Met
		}
		if cs.State != want {
			t.Fatalf("lenient %s=%s want=%s", cs.Criterion, cs.State, want)
		}
	}

	d.Apply(Evaluate("abc"), true)
	for _, cs := range d.Snapshot() {
		want := NotMet
		if cs.Criterion == Lowercase {
			want = Met
		}
		if cs.State != want {
			t.Fatalf("strict %s=%s want=%s", cs.Criterion, cs.State, want)
		}
	}

	d.Reset()
	for _, c := range AllCriteria() {
		if d.State(c) != Unknown {
			t.Fatalf("reset %s=%s", c, d.State(c))
		}
	}
}

func TestDisplay_SnapshotOrder(t *testing.T) {
	t.Parallel()

	var d Display
	snap := d.Snapshot()
	if len(snap) != 5 {
		t.Fatalf("expected 5 states, got %d", len(snap))
	}
	for i, c := range AllCriteria() {
		if snap[i].Criterion != c {
			t.Fatalf("order mismatch at %d: %s", i, snap[i].Criterion)
		}
	}
}
