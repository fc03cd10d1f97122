/*
Package session contains the core state logic of the chat session: the ordered room
list, the user roster, the active message sequence, and the mutation rules binding them.

This file defines the Room model.
*/
package session

// RoomKind distinguishes the permanent general room from user-created temporary rooms.
type RoomKind string

const (
	// RoomGeneral marks the permanent room. It is never removable through the
	// HTTP surface; the store itself honors a caller-discipline contract (see EndRoom).
	RoomGeneral RoomKind = "general"

	// RoomTemporary marks a user-created room that may be ended at any time.
	RoomTemporary RoomKind = "temporary"
)

// GeneralRoomID is the fixed identifier of the permanent room.
const GeneralRoomID = "general"

// Room represents a named conversation channel.
type Room struct {
	// ID is either the literal "general" or a generated 6-character code.
	ID string `json:"id"`

	// Name is the mutable display name.
	Name string `json:"name"`

	// Kind is general or temporary.
	Kind RoomKind `json:"type"`

	// Participants is an advisory headcount, not reconciled against real membership.
	Participants int `json:"participants"`

	// IsActive is the room liveness flag.
	IsActive bool `json:"isActive"`
}
