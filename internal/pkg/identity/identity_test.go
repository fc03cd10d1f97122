package identity

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
)

var guestNamePattern = regexp.MustCompile(`^(Swift|Bright|Clever|Witty|Charming|Bold|Calm|Eager)(Panda|Eagle|Dolphin|Phoenix|Tiger|Wolf|Lion|Bear)#(\d{4})$`)

func TestGuestNameFormat(t *testing.T) {
	for i := 0; i < 500; i++ {
		name := GuestName()

		match := guestNamePattern.FindStringSubmatch(name)
		if match == nil {
			t.Fatalf("GuestName() = %q, does not match <Adjective><Noun>#NNNN", name)
		}

		number, err := strconv.Atoi(match[3])
		if err != nil {
			t.Fatalf("GuestName() = %q, suffix %q is not numeric", name, match[3])
		}
		if number < 1 || number > 9999 {
			t.Fatalf("GuestName() = %q, number %d outside 1..9999", name, number)
		}
	}
}

func TestRoomIDFormat(t *testing.T) {
	for i := 0; i < 500; i++ {
		id := RoomID()

		if len(id) != RoomIDLength {
			t.Fatalf("RoomID() = %q, length %d, want %d", id, len(id), RoomIDLength)
		}

		for _, char := range id {
			if !strings.ContainsRune(RoomIDAlphabet, char) {
				t.Fatalf("RoomID() = %q contains %q outside alphabet", id, char)
			}
		}
	}
}

func TestIsValidRoomID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "valid upper-case", id: "ABC123", want: true},
		{name: "valid all letters", id: "QWERTY", want: true},
		{name: "valid all digits", id: "000000", want: true},
		{name: "lower-case rejected", id: "abc123", want: false},
		{name: "too short", id: "ABC12", want: false},
		{name: "too long", id: "ABC1234", want: false},
		{name: "empty", id: "", want: false},
		{name: "punctuation", id: "ABC-12", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidRoomID(tt.id); got != tt.want {
				t.Errorf("IsValidRoomID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestGeneratedRoomIDIsValid(t *testing.T) {
	for i := 0; i < 100; i++ {
		if id := RoomID(); !IsValidRoomID(id) {
			t.Fatalf("RoomID() = %q rejected by IsValidRoomID", id)
		}
	}
}
