package cache

import (
	"strconv"
	"testing"
)

func BenchmarkSetUpdate(b *testing.B) {
	c, _ := New[string, int](1024)

	for i := 0; i < b.N; i++ {
		c.Set("key", i)
	}
}

// every Set past the first 1024 evicts
func BenchmarkSetEvict(b *testing.B) {
	c, _ := New[int, int](1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(i, i)
	}
}

func BenchmarkGetHit(b *testing.B) {
	c, _ := New[string, int](1024)
	keys := make([]string, 1024)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
		c.Set(keys[i], i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(keys[i%len(keys)])
	}
}
