package compare

import (
	"hash/maphash"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Fold returns the Unicode case-folded form of s. Two strings that differ
// only in letter case fold to the same string.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// FoldCase orders and equates strings ordinally after case folding, so
// "aPPLE" and "Apple" are equivalent and sort between "AbAcUs" and "bRaNcH".
//
// FoldCase implements both Comparer[string] and Equaler[string].
type FoldCase struct {
	seed maphash.Seed
}

// IgnoreCase returns the case-insensitive ordinal string strategy.
func IgnoreCase() FoldCase {
	return FoldCase{seed: maphash.MakeSeed()}
}

// Compare implements Comparer.
func (f FoldCase) Compare(a, b string) int {
	return strings.Compare(Fold(a), Fold(b))
}

// Equal implements Equaler.
func (f FoldCase) Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Hash implements Equaler.
func (f FoldCase) Hash(s string) uint64 {
	return maphash.String(f.seed, Fold(s))
}

// Collation orders strings by the collation rules of a language, the way a
// dictionary of that language would (accents and case are secondary to the
// base letters).
//
// Collation implements both Comparer[string] and Equaler[string]. It keeps
// scratch buffers, so a single Collation must not be used concurrently.
type Collation struct {
	col  *collate.Collator
	buf  collate.Buffer
	seed maphash.Seed
}

// Culture returns the collation of tag. Options such as collate.IgnoreCase
// or collate.Numeric refine it.
//
//	words := order.OrderByWith(s, identity, compare.Culture(language.English))
func Culture(tag language.Tag, opts ...collate.Option) *Collation {
	return &Collation{
		col:  collate.New(tag, opts...),
		seed: maphash.MakeSeed(),
	}
}

// CultureIgnoreCase returns the case-insensitive collation of tag.
func CultureIgnoreCase(tag language.Tag) *Collation {
	return Culture(tag, collate.IgnoreCase)
}

// Compare implements Comparer.
func (c *Collation) Compare(a, b string) int {
	return c.col.CompareString(a, b)
}

// Equal implements Equaler.
func (c *Collation) Equal(a, b string) bool {
	return c.col.CompareString(a, b) == 0
}

// Hash implements Equaler by hashing the collation key of s.
func (c *Collation) Hash(s string) uint64 {
	c.buf.Reset()
	return maphash.Bytes(c.seed, c.col.KeyFromString(&c.buf, s))
}
