// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn names the factor with zero-based index idx. It must be pure and must
// produce names accepted by laggraph.ValidName.
type IDFn func(idx int) string

// GeneIDFn returns prefix + (idx+1): GeneIDFn("G")(0) == "G1".
// The returned IDFn panics if idx < 0.
func GeneIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("GeneIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx+1)
	}
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A".
// Panics if idx is outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns the spreadsheet column name for idx: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// FactorNames returns the n names prefix1..prefixN.
func FactorNames(n int, prefix string) []string {
	fn := GeneIDFn(prefix)
	out := make([]string, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, fn(i))
	}
	return out
}

// WithSymbolIDs names factors A, B, ... Z.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs names factors A..Z, AA, AB, ...
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }
