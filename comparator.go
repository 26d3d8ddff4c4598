package guuid

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Comparator selects the byte priority used to order UUIDs. Storage engines
// disagree on which bytes of a 128-bit key are most significant, so a value
// generated for one engine only sorts by creation time under the matching
// Comparator.
type Comparator uint8

const (
	// ComparatorDefault compares the storage bytes left to right, as memcmp,
	// MySQL BINARY(16) and PostgreSQL bytea do.
	ComparatorDefault Comparator = iota
	// ComparatorSQLServer follows SQL Server's uniqueidentifier ordering,
	// which ranks the last six bytes first.
	ComparatorSQLServer
	// ComparatorMongoDB follows the network byte order MongoDB stores for
	// binary subtype 4, which equals the order of the canonical text.
	ComparatorMongoDB
)

// priorities[c][i] is the byte index inspected at rank i.
var priorities = [...][16]int{
	ComparatorDefault:   {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	ComparatorSQLServer: {10, 11, 12, 13, 14, 15, 8, 9, 6, 7, 4, 5, 0, 1, 2, 3},
	ComparatorMongoDB:   {3, 2, 1, 0, 5, 4, 7, 6, 8, 9, 10, 11, 12, 13, 14, 15},
}

var comparatorNames = [...]string{
	ComparatorDefault:   "default",
	ComparatorSQLServer: "sqlserver",
	ComparatorMongoDB:   "mongodb",
}

// Comparators returns every supported comparator.
func Comparators() []Comparator {
	return []Comparator{ComparatorDefault, ComparatorSQLServer, ComparatorMongoDB}
}

// ParseComparator maps a case-insensitive name ("default", "sqlserver",
// "mongodb") to a Comparator.
func ParseComparator(name string) (Comparator, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return ComparatorDefault, nil
	}
	for c, cn := range comparatorNames {
		if cn == n {
			return Comparator(c), nil
		}
	}
	return ComparatorDefault, fmt.Errorf("guuid: unknown comparator %q", name)
}

func (c Comparator) valid() bool {
	return int(c) < len(priorities)
}

// String returns the comparator name
func (c Comparator) String() string {
	if !c.valid() {
		return fmt.Sprintf("Comparator(%d)", uint8(c))
	}
	return comparatorNames[c]
}

// Priority returns the byte indices in the order this comparator inspects
// them, most significant first. Unknown comparators behave as
// ComparatorDefault.
func (c Comparator) Priority() [16]int {
	if !c.valid() {
		return priorities[ComparatorDefault]
	}
	return priorities[c]
}

// CompareUUID orders two UUIDs, returning -1, 0 or +1.
func (c Comparator) CompareUUID(a, b UUID) int {
	for _, i := range c.Priority() {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// Less reports whether a sorts before b
func (c Comparator) Less(a, b UUID) bool {
	return c.CompareUUID(a, b) < 0
}

// Sort sorts ids in place in ascending order.
func (c Comparator) Sort(ids []UUID) {
	sort.SliceStable(ids, func(i, j int) bool { return c.Less(ids[i], ids[j]) })
}

// Compare orders two values that are UUIDs or shaped like one.
//
// A nil operand (untyped nil, or a nil pointer to one of the identifier types
// below) sorts before any value and
// equals another nil. Besides UUID, the operands may be github.com/google/uuid
// and github.com/gofrs/uuid/v5 values, which are read in network byte order,
// or any other 16-byte array type such as ulid.ULID, read in storage order.
// When a UUID and a foreign value hold the same 128 bits, the UUID sorts
// after the foreign value.
//
// Operands of any other shape yield a *ComparisonError.
func (c Comparator) Compare(a, b any) (int, error) {
	aNil, bNil := isNilOperand(a), isNilOperand(b)
	switch {
	case aNil && bNil:
		return 0, nil
	case aNil:
		return -1, nil
	case bNil:
		return 1, nil
	}

	ua, aNative, ok := asUUID(a)
	if !ok {
		return 0, &ComparisonError{A: a, B: b}
	}
	ub, bNative, ok := asUUID(b)
	if !ok {
		return 0, &ComparisonError{A: a, B: b}
	}

	if r := c.CompareUUID(ua, ub); r != 0 {
		return r, nil
	}
	switch {
	case aNative && !bNative:
		return 1, nil
	case !aNative && bNative:
		return -1, nil
	}
	return 0, nil
}

// isNilOperand reports untyped nil and nil pointers to identifier shapes.
// A nil pointer to anything else is an unsupported operand.
func isNilOperand(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil() && isIdentifierArray(rv.Type().Elem())
}

func isIdentifierArray(t reflect.Type) bool {
	return t.Kind() == reflect.Array && t.Len() == len(UUID{}) && t.Elem().Kind() == reflect.Uint8
}

// asUUID converts an operand to storage order. native reports whether the
// operand was this package's UUID.
func asUUID(v any) (u UUID, native bool, ok bool) {
	switch v := v.(type) {
	case UUID:
		return v, true, true
	case *UUID:
		return *v, true, true
	}
	if u, ok := fromForeign(v); ok {
		return u, false, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if !rv.IsValid() || !isIdentifierArray(rv.Type()) {
		return Nil, false, false
	}
	for i := range u {
		u[i] = byte(rv.Index(i).Uint())
	}
	return u, false, true
}
