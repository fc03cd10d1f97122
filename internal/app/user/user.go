/*
Package user contains core data structures related to participant identity.

It defines the basic representation of a chat participant (the User struct) and the
immutable Snapshot type used to attribute messages to a user as they were at send time.
*/
package user

// Status describes a participant's presence state.
type Status string

const (
	StatusOnline  Status = "online"
	StatusIdle    Status = "idle"
	StatusDnd     Status = "dnd"
	StatusOffline Status = "offline"
)

// User represents the basic identity information of a chat participant.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`

	// Name is the display name of the user in the chat room.
	Name string `json:"name"`

	// Status is the user's presence state.
	Status Status `json:"status"`

	// IsHost marks the room host. At most one host per room in the intended
	// design, though nothing enforces it.
	IsHost bool `json:"isHost,omitempty"`
}

// Snapshot is a point-in-time copy of a user's identity, attached to messages at
// send time. It is not a live reference: renaming a user later does not change
// historical messages.
type Snapshot struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status Status `json:"status"`
}

// Snapshot returns the user's current identity snapshot.
func (u User) Snapshot() Snapshot {
	return Snapshot{
		ID:     u.ID,
		Name:   u.Name,
		Status: u.Status,
	}
}
