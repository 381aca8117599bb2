package mtf_test

import (
	"math/rand"
	"testing"

	"github.com/on-the-ground/mtftable/mtf"
)

const benchTableSize = 500

func filledTable(b *testing.B) *mtf.Table[int, int] {
	tbl := mtf.New[int, int](mtf.Ordered[int]())
	for i := 0; i < benchTableSize; i++ {
		tbl.Insert(i, i)
	}
	b.ResetTimer()
	return tbl
}

func BenchmarkInsert(b *testing.B) {
	tbl := mtf.New[int, int](mtf.Ordered[int]())
	for i := 0; i < b.N; i++ {
		tbl.Insert(i, i)
	}
}

func BenchmarkLookupUniform(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	tbl := filledTable(b)
	for i := 0; i < b.N; i++ {
		tbl.Lookup(r.Intn(benchTableSize))
	}
}

func BenchmarkLookupSkewed(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	zipf := rand.NewZipf(r, 1.2, 1, benchTableSize-1)
	tbl := filledTable(b)
	for i := 0; i < b.N; i++ {
		tbl.Lookup(int(zipf.Uint64()))
	}
}

func BenchmarkPeekSkewed(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	zipf := rand.NewZipf(r, 1.2, 1, benchTableSize-1)
	tbl := filledTable(b)
	for i := 0; i < b.N; i++ {
		tbl.Peek(int(zipf.Uint64()))
	}
}

func BenchmarkLookupMiss(b *testing.B) {
	tbl := filledTable(b)
	for i := 0; i < b.N; i++ {
		tbl.Lookup(-1)
	}
}
