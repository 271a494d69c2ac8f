package password

import "testing"

func BenchmarkEvaluate_DefaultPolicy(b *testing.B) {
	pw := "12345678Aa!correct/horse#battery"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Evaluate(pw)
	}
}

func BenchmarkValidate_DefaultPolicy(b *testing.B) {
	p := DefaultPolicy()
	pw := "12345678Aa!correct/horse#battery"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !p.Validate(pw) {
			b.Fatalf("expected valid password")
		}
	}
}
