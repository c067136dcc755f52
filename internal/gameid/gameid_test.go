package gameid

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerate(t *testing.T) {
	id := Generate()

	if len(id) != Length {
		t.Errorf("expected %d characters, got %d", Length, len(id))
	}
	if err := Validate(id); err != nil {
		t.Errorf("generated ID failed validation: %v", err)
	}
}

func TestGenerateUnique(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := Generate()
		if ids[id] {
			t.Errorf("duplicate ID generated: %s", id)
		}
		ids[id] = true
	}
}

func TestGenerateTimeSorted(t *testing.T) {
	var ids []string
	for i := 0; i < 10; i++ {
		ids = append(ids, Generate())
		time.Sleep(time.Millisecond)
	}

	for i := 1; i < len(ids); i++ {
		if strings.Compare(ids[i-1], ids[i]) >= 0 {
			t.Errorf("IDs not sorted: %s >= %s", ids[i-1], ids[i])
		}
	}
}

func TestGenerateFromReader(t *testing.T) {
	random := bytes.Repeat([]byte{0xab}, 16)

	id, err := GenerateFrom(bytes.NewReader(random))
	if err != nil {
		t.Fatalf("GenerateFrom failed: %v", err)
	}
	if err := Validate(id); err != nil {
		t.Errorf("ID failed validation: %v", err)
	}

	if _, err := GenerateFrom(bytes.NewReader(random[:3])); err == nil {
		t.Error("expected an error from a short reader")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for i := 0; i < 50; i++ {
		u := uuid.Must(uuid.NewV7())
		id := Encode(u)

		got, err := Decode(id)
		if err != nil {
			t.Fatalf("Decode(%q): %v", id, err)
		}
		if got != u {
			t.Fatalf("round trip mismatch: %s != %s", got, u)
		}
	}
}

func TestEncodeKnownValues(t *testing.T) {
	if got := Encode(uuid.UUID{}); got != strings.Repeat("0", Length) {
		t.Errorf("zero UUID encoded as %q", got)
	}

	var max uuid.UUID
	for i := range max {
		max[i] = 0xff
	}
	if got := Encode(max); got != "7"+strings.Repeat("z", Length-1) {
		t.Errorf("max UUID encoded as %q", got)
	}
}

func TestTimestamp(t *testing.T) {
	before := time.Now().Add(-time.Second)
	id := Generate()
	after := time.Now().Add(time.Second)

	ts, err := Timestamp(id)
	if err != nil {
		t.Fatalf("Timestamp failed: %v", err)
	}
	if ts.Before(before) || ts.After(after) {
		t.Errorf("timestamp %v outside [%v, %v]", ts, before, after)
	}

	if _, err := Timestamp(Encode(uuid.UUID{})); err == nil {
		t.Error("expected an error for a non v7 UUID")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid ID", id: "01h5n0et5q6mt3v7ms1234abcd"},
		{name: "too short", id: "01h5n0et5q6mt3v7ms123", wantErr: true},
		{name: "too long", id: "01h5n0et5q6mt3v7ms1234abcdef", wantErr: true},
		{name: "first char too high", id: "81h5n0et5q6mt3v7ms1234abcd", wantErr: true},
		{name: "invalid character", id: "01h5n0et5q6mt3v7ms1234abci", wantErr: true},
		{name: "uppercase not allowed", id: "01H5N0ET5Q6MT3V7MS1234ABCD", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAlphabet(t *testing.T) {
	if len(alphabet) != 32 {
		t.Errorf("alphabet should have 32 characters, got %d", len(alphabet))
	}

	seen := make(map[rune]bool)
	for _, char := range alphabet {
		if seen[char] {
			t.Errorf("duplicate character in alphabet: %c", char)
		}
		seen[char] = true
	}

	for _, char := range "ilou" {
		if strings.ContainsRune(alphabet, char) {
			t.Errorf("alphabet should not contain %c", char)
		}
	}
}
