package guuid

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

// fixture is F47AC10B-58CC-4372-A567-0E02B2C3D479 in storage order.
var fixture = UUID{0x0b, 0xc1, 0x7a, 0xf4, 0xcc, 0x58, 0x72, 0x43, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "canonical format",
			input:   "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantErr: false,
		},
		{
			name:    "upper case",
			input:   "F47AC10B-58CC-4372-A567-0E02B2C3D479",
			wantErr: false,
		},
		{
			name:    "without hyphens",
			input:   "f47ac10b58cc4372a5670e02b2c3d479",
			wantErr: false,
		},
		{
			name:    "with URN prefix",
			input:   "urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantErr: false,
		},
		{
			name:    "with braces",
			input:   "{f47ac10b-58cc-4372-a567-0e02b2c3d479}",
			wantErr: false,
		},
		{
			name:    "with parentheses",
			input:   "(F47AC10B-58CC-4372-A567-0E02B2C3D479)",
			wantErr: false,
		},
		{
			name:    "structure dump",
			input:   "{0xf47ac10b,0x58cc,0x4372,{0xa5,0x67,0x0e,0x02,0xb2,0xc3,0xd4,0x79}}",
			wantErr: false,
		},
		{
			name:    "base64",
			input:   "C8F69MxYckOlZw4CssPUeQ",
			wantErr: false,
		},
		{
			name:    "base64 with padding",
			input:   "C8F69MxYckOlZw4CssPUeQ==",
			wantErr: false,
		},
		{
			name:    "base32",
			input:   "BPAXV5GMLBZEHJLHBYBLFQ6UPE",
			wantErr: false,
		},
		{
			name:    "base32 lower case",
			input:   "bpaxv5gmlbzehjlhbyblfq6upe",
			wantErr: false,
		},
		{
			name:    "surrounding whitespace",
			input:   "  f47ac10b-58cc-4372-a567-0e02b2c3d479\n",
			wantErr: false,
		},
		{
			name:    "invalid format - wrong length",
			input:   "f47ac10b-58cc-4372-a567",
			wantErr: true,
		},
		{
			name:    "invalid format - invalid hex",
			input:   "g47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantErr: true,
		},
		{
			name:    "invalid format - too many digits",
			input:   "f47ac10b-58cc-4372-a567-0e02b2c3d47900",
			wantErr: true,
		},
		{
			name:    "invalid format - stray character",
			input:   "f47ac10b-58cc-4372-a567-0e02b2c3d47;",
			wantErr: true,
		},
		{
			name:    "invalid format - three padding characters",
			input:   "C8F69MxYckOlZw4CssPUeQ===",
			wantErr: true,
		},
		{
			name:    "invalid format - base32 outside alphabet",
			input:   "BPAXV5GMLBZEHJLHBYBLFQ6UP8",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uuid, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("Parse() error = %v, want ErrInvalidFormat", err)
				}
				return
			}
			if uuid != fixture {
				t.Errorf("Parse() = %v, want %v", uuid, fixture)
			}
			// Verify round-trip
			str := uuid.String()
			uuid2, err := Parse(str)
			if err != nil {
				t.Errorf("Round-trip parse failed: %v", err)
			}
			if uuid != uuid2 {
				t.Errorf("Round-trip UUID mismatch: got %v, want %v", uuid2, uuid)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	for _, in := range []string{"", "   "} {
		uuid, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", in, err)
		}
		if !uuid.IsNil() {
			t.Errorf("Parse(%q) = %v, want Nil", in, uuid)
		}
	}
}

func TestParse_ErrorMessage(t *testing.T) {
	_, err := Parse("nope")
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Parse() error = %T, want *FormatError", err)
	}
	if fe.Input != "nope" {
		t.Errorf("FormatError.Input = %q", fe.Input)
	}
	if want := `guuid: "nope" is not a valid identifier`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestTryParse(t *testing.T) {
	uuid, ok := TryParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	if !ok || uuid != fixture {
		t.Errorf("TryParse() = %v, %v", uuid, ok)
	}
	uuid, ok = TryParse("f47ac10b")
	if ok || !uuid.IsNil() {
		t.Errorf("TryParse() on invalid input = %v, %v", uuid, ok)
	}
}

func TestUUID_String(t *testing.T) {
	want := "F47AC10B-58CC-4372-A567-0E02B2C3D479"
	got := fixture.String()
	if got != want {
		t.Errorf("String() = %v, want %v", got, want)
	}
}

func TestUUID_IsNil(t *testing.T) {
	nilUUID := Nil
	if !nilUUID.IsNil() {
		t.Error("Nil UUID should return true for IsNil()")
	}

	nonNilUUID := UUID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	if nonNilUUID.IsNil() {
		t.Error("Non-nil UUID should return false for IsNil()")
	}
}

func TestUUID_MarshalUnmarshalText(t *testing.T) {
	// Marshal
	text, err := fixture.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "C8F69MxYckOlZw4CssPUeQ" {
		t.Errorf("MarshalText() = %s, want URL-safe Base64", text)
	}

	// Unmarshal
	var uuid2 UUID
	err = uuid2.UnmarshalText(text)
	if err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}

	if fixture != uuid2 {
		t.Errorf("Marshal/Unmarshal mismatch: got %v, want %v", uuid2, fixture)
	}
}

func TestUUID_MarshalUnmarshalBinary(t *testing.T) {
	// Marshal
	data, err := fixture.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}

	if len(data) != 16 {
		t.Errorf("MarshalBinary() length = %d, want 16", len(data))
	}

	// Unmarshal
	var uuid2 UUID
	err = uuid2.UnmarshalBinary(data)
	if err != nil {
		t.Fatalf("UnmarshalBinary() error = %v", err)
	}

	if fixture != uuid2 {
		t.Errorf("Marshal/Unmarshal mismatch: got %v, want %v", uuid2, fixture)
	}

	if err := uuid2.UnmarshalBinary(data[:15]); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("UnmarshalBinary() short input error = %v, want ErrInvalidLength", err)
	}
}

func TestUUID_JSON(t *testing.T) {
	type TestStruct struct {
		ID UUID `json:"id"`
	}

	ts := TestStruct{ID: fixture}

	// Marshal
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"id":"C8F69MxYckOlZw4CssPUeQ"}` {
		t.Errorf("json.Marshal() = %s", data)
	}

	// Unmarshal
	var ts2 TestStruct
	err = json.Unmarshal(data, &ts2)
	if err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if ts.ID != ts2.ID {
		t.Errorf("JSON Marshal/Unmarshal mismatch: got %v, want %v", ts2.ID, ts.ID)
	}

	// Dashed text is accepted on the way in as well.
	if err := json.Unmarshal([]byte(`{"id":"f47ac10b-58cc-4372-a567-0e02b2c3d479"}`), &ts2); err != nil {
		t.Fatalf("json.Unmarshal() dashed error = %v", err)
	}
	if ts2.ID != fixture {
		t.Errorf("json.Unmarshal() dashed = %v", ts2.ID)
	}

	if err := json.Unmarshal([]byte(`{"id":"garbage"}`), &ts2); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("json.Unmarshal() garbage error = %v, want ErrInvalidFormat", err)
	}
}

func TestUUID_Compare(t *testing.T) {
	uuid1 := UUID{0x01}
	uuid2 := UUID{0x02}
	uuid3 := UUID{0x01}

	if uuid1.Compare(uuid2) != -1 {
		t.Error("uuid1 should be less than uuid2")
	}

	if uuid2.Compare(uuid1) != 1 {
		t.Error("uuid2 should be greater than uuid1")
	}

	if uuid1.Compare(uuid3) != 0 {
		t.Error("uuid1 should be equal to uuid3")
	}
}

func TestUUID_Equal(t *testing.T) {
	uuid1 := UUID{0x01, 0x02, 0x03}
	uuid2 := UUID{0x01, 0x02, 0x03}
	uuid3 := UUID{0x03, 0x02, 0x01}

	if !uuid1.Equal(uuid2) {
		t.Error("uuid1 should equal uuid2")
	}

	if uuid1.Equal(uuid3) {
		t.Error("uuid1 should not equal uuid3")
	}
}

func TestUUID_Scan(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    UUID
		wantErr bool
	}{
		{
			name:  "string input",
			input: "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			want:  fixture,
		},
		{
			name:  "byte slice input - 16 bytes",
			input: fixture.Bytes(),
			want:  fixture,
		},
		{
			name:  "byte slice input - string format",
			input: []byte("f47ac10b-58cc-4372-a567-0e02b2c3d479"),
			want:  fixture,
		},
		{
			name:  "byte slice input - base64",
			input: []byte("C8F69MxYckOlZw4CssPUeQ"),
			want:  fixture,
		},
		{
			name:  "nil input",
			input: nil,
			want:  Nil,
		},
		{
			name:    "invalid type",
			input:   123,
			wantErr: true,
		},
		{
			name:    "invalid text",
			input:   "not-a-uuid",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var uuid UUID
			err := uuid.Scan(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && uuid != tt.want {
				t.Errorf("Scan() = %v, want %v", uuid, tt.want)
			}
		})
	}
}

func TestUUID_Value(t *testing.T) {
	val, err := fixture.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	b, ok := val.([]byte)
	if !ok {
		t.Fatalf("Value() returned non-[]byte type: %T", val)
	}

	if !bytes.Equal(b, fixture[:]) {
		t.Errorf("Value() = %x, want %x", b, fixture[:])
	}
}

func TestUUID_Version(t *testing.T) {
	tests := []struct {
		nibble byte
		want   Version
	}{
		{0x0, VersionUnknown},
		{0x1, VersionUnknown},
		{0x3, VersionMD5},
		{0x4, VersionRandom},
		{0x5, VersionSHA1},
		{0x7, VersionUnknown},
		{0x8, VersionSequential},
		{0xf, VersionUnknown},
	}
	for _, tt := range tests {
		var uuid UUID
		uuid[7] = tt.nibble<<4 | 0x0f
		if got := VersionOf(uuid); got != tt.want {
			t.Errorf("VersionOf(nibble %x) = %v, want %v", tt.nibble, got, tt.want)
		}
	}

	if fixture.Version() != VersionRandom {
		t.Errorf("Version() = %v, want %v", fixture.Version(), VersionRandom)
	}
	if Nil.Version() != VersionUnknown {
		t.Errorf("Nil.Version() = %v, want %v", Nil.Version(), VersionUnknown)
	}
}

func TestUUID_Variant(t *testing.T) {
	// Create a UUID with RFC 4122 variant (10xx xxxx)
	uuid := UUID{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	variant := uuid.Variant()
	if variant != VariantRFC4122 {
		t.Errorf("Variant() = %v, want %v", variant, VariantRFC4122)
	}
}

func TestMustParse(t *testing.T) {
	// Valid UUID should not panic
	uuid := MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	if uuid.IsNil() {
		t.Error("MustParse() returned nil UUID")
	}

	// Invalid UUID should panic
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse() did not panic on invalid input")
		}
	}()
	MustParse("invalid-uuid")
}

func TestUUID_Bytes(t *testing.T) {
	b := fixture.Bytes()
	if len(b) != 16 {
		t.Errorf("Bytes() length = %d, want 16", len(b))
	}
	if !bytes.Equal(b, fixture[:]) {
		t.Error("Bytes() did not return correct byte slice")
	}

	// The slice is a copy.
	b[0] = 0xff
	if fixture[0] == 0xff {
		t.Error("Bytes() aliases the UUID")
	}
}

func TestFromRFC4122(t *testing.T) {
	network := [16]byte{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x43, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}
	if got := FromRFC4122(network); got != fixture {
		t.Errorf("FromRFC4122() = %x, want %x", got[:], fixture[:])
	}
	if got := fixture.RFC4122(); got != network {
		t.Errorf("RFC4122() = %x, want %x", got[:], network[:])
	}
}
