package session

import (
	"time"

	"pingroom/internal/app/user"
)

// Emotion is a fixed small enum attached to a message to convey affect.
// The zero value means no emotion is attached.
type Emotion string

const (
	EmotionNone    Emotion = ""
	EmotionHappy   Emotion = "happy"
	EmotionSad     Emotion = "sad"
	EmotionAngry   Emotion = "angry"
	EmotionExcited Emotion = "excited"
	EmotionNeutral Emotion = "neutral"
)

// ParseEmotion validates an emotion tag from untrusted input. The empty string is
// accepted and means "no emotion".
func ParseEmotion(s string) (Emotion, bool) {
	switch Emotion(s) {
	case EmotionNone, EmotionHappy, EmotionSad, EmotionAngry, EmotionExcited, EmotionNeutral:
		return Emotion(s), true
	}
	return EmotionNone, false
}

// Message is a single timestamped utterance attributed to a user snapshot.
// ID, Timestamp, and Sender are fixed at creation; Content and Emotion may be
// replaced in place by edit and react operations.
type Message struct {
	// ID is a time-based token, unique and ordered by creation within a session.
	ID string `json:"id"`

	// Content is the non-empty message text, stored trimmed.
	Content string `json:"content"`

	// Sender is the acting user's snapshot at send time.
	Sender user.Snapshot `json:"sender"`

	// Timestamp is the creation instant.
	Timestamp time.Time `json:"timestamp"`

	// Emotion is the optional affect tag. A react replaces any prior value
	// rather than accumulating.
	Emotion Emotion `json:"emotion,omitempty"`
}
