package resolver

import (
	"testing"

	"github.com/seitarof/gen-fake/internal/inspector"
)

func BenchmarkResolve_Table(b *testing.B) {
	r := New(DefaultRules()...)
	field := inspector.StoredField{Name: "at", Type: named("time.Time")}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = r.Resolve("Event", field)
	}
}

func BenchmarkResolve_Fallback(b *testing.B) {
	r := New(DefaultRules()...)
	field := inspector.StoredField{Name: "profile", Type: named("Profile")}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = r.Resolve("User", field)
	}
}
