package id_test

import (
	"testing"

	"github.com/charlieallen/portfolio/pkg/id"
)

func BenchmarkNewULID(b *testing.B) {
	for b.Loop() {
		_ = id.NewULID()
	}
}
