/*
Package session contains the core state logic of the chat session.

This file defines the Store, the single owner of all Room, User, and Message
collections for the lifetime of the server process. Every mutation returns an
explicit *errs.CustomError so callers can distinguish "applied" from "ignored";
an invalid mutation never changes state and never panics.
*/
package session

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"pingroom/internal/app/user"
	"pingroom/internal/pkg/errs"
	"pingroom/internal/pkg/identity"
	"pingroom/internal/pkg/logx"
)

// BotUser is the synthetic sender attributed to relayed assistant replies.
var BotUser = user.User{
	ID:     "bot",
	Name:   "Bot",
	Status: user.StatusOnline,
}

// systemUser authors the seeded welcome message.
var systemUser = user.User{
	ID:     "system",
	Name:   "System",
	Status: user.StatusOnline,
}

// Store owns the session state: the ordered room list, the user roster, the current
// room id, and the active message sequence.
//
// Only one message sequence exists: it is reset when a room is created and kept as-is
// when the current room is switched. This mirrors the observed behavior of the system
// this store reproduces; per-room keyed history was deliberately not introduced.
//
// All operations are synchronous; the mutex exists because HTTP handlers invoke the
// store from concurrent goroutines.
type Store struct {
	mu sync.RWMutex

	currentRoomID string
	rooms         []Room
	users         []user.User
	messages      []Message

	// lastMessageMilli backs nextMessageID so two sends within the same
	// millisecond still get distinct, ordered ids.
	lastMessageMilli int64

	logger zerolog.Logger
}

// New constructs a Store seeded with the permanent general room, the static user
// roster, and the welcome messages of the general room.
func New() *Store {
	storeLogger := logx.Logger().With().Str("component", "session").Logger()

	s := &Store{
		currentRoomID: GeneralRoomID,
		rooms: []Room{
			{
				ID:           GeneralRoomID,
				Name:         "General Chat",
				Kind:         RoomGeneral,
				Participants: 5,
				IsActive:     true,
			},
		},
		users: []user.User{
			{ID: "1", Name: "SwiftPanda#1234", Status: user.StatusOnline, IsHost: true},
			{ID: "2", Name: "BrightEagle#5678", Status: user.StatusOnline},
			{ID: "3", Name: "CleverDolphin#9012", Status: user.StatusIdle},
			{ID: "4", Name: "WittyPhoenix#3456", Status: user.StatusOnline},
			{ID: "5", Name: "CharmingTiger#7890", Status: user.StatusDnd},
		},
		logger: storeLogger,
	}

	s.seedWelcomeMessages()

	return s
}

// seedWelcomeMessages populates the general room's opening conversation.
func (s *Store) seedWelcomeMessages() {
	now := time.Now()

	seed := []struct {
		content string
		sender  user.User
		age     time.Duration
		emotion Emotion
	}{
		{
			content: "Welcome to PingRoom! \U0001F389 This is the general chat room where everyone can hang out.",
			sender:  systemUser,
			age:     60 * time.Second,
		},
		{
			content: "Hey everyone! How's it going?",
			sender:  s.users[0],
			age:     45 * time.Second,
			emotion: EmotionHappy,
		},
		{
			content: "Pretty good! Just exploring this new chat app.",
			sender:  s.users[1],
			age:     30 * time.Second,
			emotion: EmotionExcited,
		},
		{
			content: "The emotion tagging feature is really cool! \U0001F60A",
			sender:  s.users[3],
			age:     15 * time.Second,
			emotion: EmotionHappy,
		},
	}

	for i, m := range seed {
		s.messages = append(s.messages, Message{
			ID:        strconv.Itoa(i + 1),
			Content:   m.content,
			Sender:    m.sender.Snapshot(),
			Timestamp: now.Add(-m.age),
			Emotion:   m.emotion,
		})
	}
}

// CurrentRoomID returns the id of the currently selected room.
func (s *Store) CurrentRoomID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.currentRoomID
}

// Rooms returns a copy of the room list in creation order.
func (s *Store) Rooms() []Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]Room, len(s.rooms))
	copy(rooms, s.rooms)
	return rooms
}

// Users returns a copy of the user roster.
func (s *Store) Users() []user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]user.User, len(s.users))
	copy(users, s.users)
	return users
}

// Messages returns a copy of the active message sequence in send order.
func (s *Store) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]Message, len(s.messages))
	copy(messages, s.messages)
	return messages
}

// SelectRoom sets the current room. Unlike the silent-ignore origin behavior, an
// unknown room id fails loudly with ErrRoomNotFound and leaves the selection unchanged.
func (s *Store) SelectRoom(roomID string) *errs.CustomError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.roomExists(roomID) {
		return errs.NewError(errs.ErrRoomNotFound)
	}

	s.currentRoomID = roomID
	return nil
}

// CreateRoom generates a fresh room code, appends a new temporary room named after it,
// selects it, and resets the message sequence. It never fails. Generated ids are not
// checked against existing rooms; a collision at 36^6 odds is tolerated by contract.
func (s *Store) CreateRoom() Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	roomID := identity.RoomID()

	room := Room{
		ID:           roomID,
		Name:         "Room " + roomID,
		Kind:         RoomTemporary,
		Participants: 1,
		IsActive:     true,
	}

	s.rooms = append(s.rooms, room)
	s.currentRoomID = roomID
	s.messages = nil

	s.logger.Info().Str("room_id", roomID).Msg("Temporary room created.")

	return room
}

// EndRoom removes the room from the list. If the removed room was current, the
// selection falls back to the general room.
//
// The store removes any existing room, including "general"; callers are expected
// not to end the general room. That discipline is enforced one layer up, at the
// HTTP handler, not here.
func (s *Store) EndRoom(roomID string) *errs.CustomError {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, room := range s.rooms {
		if room.ID == roomID {
			idx = i
			break
		}
	}

	if idx < 0 {
		return errs.NewError(errs.ErrRoomNotFound)
	}

	s.rooms = append(s.rooms[:idx], s.rooms[idx+1:]...)

	if s.currentRoomID == roomID {
		s.currentRoomID = GeneralRoomID
	}

	s.logger.Info().Str("room_id", roomID).Msg("Room ended.")

	return nil
}

// RenameRoom replaces the display name of the matching room.
func (s *Store) RenameRoom(roomID, newName string) *errs.CustomError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if newName == "" {
		return errs.NewError(errs.ErrRoomNameEmpty)
	}

	for i := range s.rooms {
		if s.rooms[i].ID == roomID {
			s.rooms[i].Name = newName
			return nil
		}
	}

	return errs.NewError(errs.ErrRoomNotFound)
}

// SendMessage appends a new message from the given sender to the active sequence.
// Whitespace-only content is rejected; stored content is trimmed.
func (s *Store) SendMessage(sender user.Snapshot, content string, emotion Emotion) (Message, *errs.CustomError) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return Message{}, errs.NewError(errs.ErrMessageEmpty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	message := Message{
		ID:        s.nextMessageID(),
		Content:   trimmed,
		Sender:    sender,
		Timestamp: time.Now(),
		Emotion:   emotion,
	}

	s.messages = append(s.messages, message)

	return message, nil
}

// AppendBotMessage appends a bot-authored message to the active sequence, bypassing
// the empty-content check so relay fallback text always lands.
func (s *Store) AppendBotMessage(content string) Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	message := Message{
		ID:        s.nextMessageID(),
		Content:   content,
		Sender:    BotUser.Snapshot(),
		Timestamp: time.Now(),
	}

	s.messages = append(s.messages, message)

	return message
}

// EditMessage replaces the content of the matching message in place, preserving its
// id, timestamp, sender, and emotion.
func (s *Store) EditMessage(messageID, newContent string) *errs.CustomError {
	if newContent == "" {
		return errs.NewError(errs.ErrMessageEmpty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == messageID {
			s.messages[i].Content = newContent
			return nil
		}
	}

	return errs.NewError(errs.ErrMessageNotFound)
}

// DeleteMessage removes the matching message from the active sequence.
func (s *Store) DeleteMessage(messageID string) *errs.CustomError {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == messageID {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return nil
		}
	}

	return errs.NewError(errs.ErrMessageNotFound)
}

// ReactMessage sets or overwrites the emotion of the matching message. A reaction
// replaces any prior emotion; emotions never accumulate.
func (s *Store) ReactMessage(messageID string, emotion Emotion) *errs.CustomError {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == messageID {
			s.messages[i].Emotion = emotion
			return nil
		}
	}

	return errs.NewError(errs.ErrMessageNotFound)
}

// roomExists reports whether a room with the given id is present. Caller must hold mu.
func (s *Store) roomExists(roomID string) bool {
	for _, room := range s.rooms {
		if room.ID == roomID {
			return true
		}
	}
	return false
}

// nextMessageID returns a Unix-millisecond token, bumped past the previous one when
// two messages land in the same millisecond. Caller must hold mu.
func (s *Store) nextMessageID() string {
	now := time.Now().UnixMilli()
	if now <= s.lastMessageMilli {
		now = s.lastMessageMilli + 1
	}
	s.lastMessageMilli = now

	return strconv.FormatInt(now, 10)
}
