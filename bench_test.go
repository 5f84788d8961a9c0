package rexspan

import (
	"strings"
	"testing"
)

// Benchmarks for the three queries on each backend.
// Common host patterns: key=value pairs, log fields, anchored IDs.

var benchKeyValue = `(\w+)=(\w+)`

var benchIDPattern = `\d+|[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`

var benchLogLine = strings.Repeat("ts 2024-01-02 level info ", 20) + "user=alice"

func benchPattern(b *testing.B, backend, expr string) *Pattern {
	b.Helper()
	p, err := CompileWithConfig(expr, Config{Backend: backend})
	if err != nil {
		b.Fatalf("compile %q on %s: %v", expr, backend, err)
	}
	b.Cleanup(func() { p.Close() })
	return p
}

func BenchmarkMatch_UUID(b *testing.B) {
	input := "550e8400-e29b-41d4-a716-446655440000"
	for _, backend := range Backends() {
		b.Run(backend, func(b *testing.B) {
			p := benchPattern(b, backend, benchIDPattern)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p.Match(input)
			}
		})
	}
}

func BenchmarkCapture_KeyValue(b *testing.B) {
	for _, backend := range Backends() {
		b.Run(backend, func(b *testing.B) {
			p := benchPattern(b, backend, benchKeyValue)
			b.SetBytes(int64(len(benchLogLine)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p.Capture(benchLogLine, 0)
			}
		})
	}
}

func BenchmarkCapture_Offset(b *testing.B) {
	offset := len(benchLogLine) / 2
	for _, backend := range Backends() {
		b.Run(backend, func(b *testing.B) {
			p := benchPattern(b, backend, benchKeyValue)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p.Capture(benchLogLine, offset)
			}
		})
	}
}

func BenchmarkSearch_KeyValue(b *testing.B) {
	for _, backend := range Backends() {
		b.Run(backend, func(b *testing.B) {
			p := benchPattern(b, backend, benchKeyValue)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p.Search(benchLogLine, 0)
			}
		})
	}
}

func BenchmarkSearch_NoMatch(b *testing.B) {
	input := strings.Repeat("no pairs here ", 50)
	for _, backend := range Backends() {
		b.Run(backend, func(b *testing.B) {
			p := benchPattern(b, backend, benchKeyValue)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p.Search(input, 0)
			}
		})
	}
}
