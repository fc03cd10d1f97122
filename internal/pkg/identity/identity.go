/*
Package identity generates human-readable guest names and short room codes.

Guest names follow the "<Adjective><Noun>#NNNN" pattern and room codes are
6-character strings over the upper-case alphanumeric alphabet. Both are display
identifiers, not secrets: collisions are possible and accepted, and no uniqueness
is guaranteed across calls.
*/
package identity

import (
	"fmt"
	"math/rand"
	"strings"
)

const (
	// RoomIDAlphabet defines the character set used for room codes (A-Z, 0-9).
	RoomIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// RoomIDLength is the fixed length of a generated room code.
	RoomIDLength = 6

	// guestNumberMax bounds the numeric guest-name suffix: the drawn value is
	// in 1..guestNumberMax inclusive, so "#0000" can never occur.
	guestNumberMax = 9999
)

var adjectives = []string{"Swift", "Bright", "Clever", "Witty", "Charming", "Bold", "Calm", "Eager"}

var nouns = []string{"Panda", "Eagle", "Dolphin", "Phoenix", "Tiger", "Wolf", "Lion", "Bear"}

// GuestName returns a pseudo-random display name of the form "<Adjective><Noun>#NNNN",
// with the number zero-padded to 4 digits and drawn from 1..9999.
func GuestName() string {
	adjective := adjectives[rand.Intn(len(adjectives))]
	noun := nouns[rand.Intn(len(nouns))]
	number := rand.Intn(guestNumberMax) + 1

	return fmt.Sprintf("%s%s#%04d", adjective, noun, number)
}

// RoomID returns a 6-character room code drawn uniformly, with replacement, from
// RoomIDAlphabet. The caller is responsible for collision handling; none is done here.
func RoomID() string {
	result := make([]byte, RoomIDLength)

	for i := range result {
		result[i] = RoomIDAlphabet[rand.Intn(len(RoomIDAlphabet))]
	}

	return string(result)
}

// IsValidRoomID checks if the given string is a well-formed room code:
// length equals RoomIDLength and all characters belong to RoomIDAlphabet.
func IsValidRoomID(id string) bool {
	if len(id) != RoomIDLength {
		return false
	}

	for _, char := range id {
		if !strings.ContainsRune(RoomIDAlphabet, char) {
			return false
		}
	}

	return true
}
