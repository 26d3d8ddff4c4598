package guuid

import (
	"database/sql/driver"
	"fmt"
)

// UUID represents a 128-bit identifier in storage byte order.
//
// The first three groups of the textual form are stored little-endian:
// the canonical text AABBCCDD-EEFF-GGHH-IIJJ-KKLLMMNNOOPP is held as the bytes
// DD CC BB AA FF EE HH GG II JJ KK LL MM NN OO PP. This is the layout used by
// SQL Server's uniqueidentifier and by .NET-style binary drivers, which is why
// the version nibble lives in byte 7 rather than byte 6.
type UUID [16]byte

// Version represents the generator that produced a UUID
type Version byte

const (
	VersionUnknown    Version = 0
	VersionMD5        Version = 3 // name-based, MD5
	VersionRandom     Version = 4
	VersionSHA1       Version = 5 // name-based, SHA-1
	VersionSequential Version = 8 // time-ordered, comparator dependent layout
)

// String returns the name of the version
func (v Version) String() string {
	switch v {
	case VersionMD5:
		return "MD5"
	case VersionRandom:
		return "Random"
	case VersionSHA1:
		return "SHA1"
	case VersionSequential:
		return "Sequential"
	default:
		return "Unknown"
	}
}

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "NCS"
	case VariantRFC4122:
		return "RFC4122"
	case VariantMicrosoft:
		return "Microsoft"
	default:
		return "Future"
	}
}

const (
	versionByte = 7
	variantByte = 8
)

// Nil is the nil UUID (all zeros)
var Nil UUID

// VersionOf classifies u by the high nibble of byte 7.
// Nibbles that no generator in this package writes yield VersionUnknown.
func VersionOf(u UUID) Version {
	switch v := Version(u[versionByte] >> 4); v {
	case VersionMD5, VersionRandom, VersionSHA1, VersionSequential:
		return v
	default:
		return VersionUnknown
	}
}

// Version returns the version of the UUID
func (u UUID) Version() Version {
	return VersionOf(u)
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	switch {
	case (u[variantByte] & 0x80) == 0x00:
		return VariantNCS
	case (u[variantByte] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[variantByte] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// stamp writes the version nibble and the RFC 4122 variant bits.
func (u *UUID) stamp(v Version) {
	u[versionByte] = (u[versionByte] & 0x0f) | byte(v)<<4
	u[variantByte] = (u[variantByte] & 0x3f) | 0x80
}

// String returns the canonical upper-case dashed form:
// XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX
func (u UUID) String() string {
	return u.Encode(StyleDashed)
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("guuid: Parse(%q): %v", s, err))
	}
	return uuid
}

// TryParse is the non-failing form of Parse. It reports false and returns Nil
// for input that is not a valid identifier.
func TryParse(s string) (UUID, bool) {
	uuid, err := Parse(s)
	if err != nil {
		return Nil, false
	}
	return uuid, true
}

// Bytes returns a copy of the 16 bytes in storage order
func (u UUID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, u[:])
	return b
}

// FromBytes creates a UUID from exactly 16 bytes in storage order
func FromBytes(b []byte) (UUID, error) {
	var uuid UUID
	if len(b) != 16 {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], b)
	return uuid, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return uuid
}

// FromRFC4122 converts 16 bytes in RFC 4122 network order, as produced by
// github.com/google/uuid and most other Go UUID packages, to storage order.
func FromRFC4122(b [16]byte) UUID {
	return UUID(swapGroups(b))
}

// RFC4122 returns the bytes in RFC 4122 network order, which is also the order
// in which the canonical text lists them.
func (u UUID) RFC4122() [16]byte {
	return swapGroups(u)
}

// swapGroups reverses the first three groups. It is its own inverse.
func swapGroups(b [16]byte) [16]byte {
	return [16]byte{
		b[3], b[2], b[1], b[0],
		b[5], b[4],
		b[7], b[6],
		b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15],
	}
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// MarshalText implements the encoding.TextMarshaler interface.
// The text form is URL-safe Base64, the compact round-trip notation.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.Encode(StyleBase64)), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// Any notation accepted by Parse is allowed.
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidLength
	}
	copy(u[:], data)
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	case []byte:
		if len(src) == 16 {
			copy(u[:], src)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*u = id
		return nil
	default:
		return fmt.Errorf("guuid: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility.
// The value is the 16 storage bytes so that BINARY(16) and uniqueidentifier
// columns order rows by the engine's own rule.
func (u UUID) Value() (driver.Value, error) {
	return u.Bytes(), nil
}

// Compare returns an integer comparing two UUIDs byte by byte in storage order.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	return ComparatorDefault.CompareUUID(u, other)
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}
