package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pingroom/internal/app/session"
	"pingroom/internal/pkg/auth/jwt"
	"pingroom/internal/pkg/errs"
	"pingroom/internal/pkg/identity"
)

func TestHandleGetSession(t *testing.T) {
	deps := testDeps()

	r := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	w := httptest.NewRecorder()
	HandleGetSession(deps)(w, r)

	e := decodeEnvelope(t, w)
	if e.Code != 0 {
		t.Fatalf("envelope code = %d, want 0", e.Code)
	}

	var data struct {
		CurrentRoomID string         `json:"currentRoomId"`
		Rooms         []session.Room `json:"rooms"`
		Users         []struct {
			Name string `json:"name"`
		} `json:"users"`
	}
	decodeData(t, e, &data)

	if data.CurrentRoomID != session.GeneralRoomID {
		t.Errorf("currentRoomId = %q, want general", data.CurrentRoomID)
	}
	if len(data.Rooms) != 1 || data.Rooms[0].ID != session.GeneralRoomID {
		t.Errorf("rooms = %+v, want only general", data.Rooms)
	}
	if len(data.Users) != 5 {
		t.Errorf("users = %d, want 5 seeded", len(data.Users))
	}
}

func TestHandleCreateRoom(t *testing.T) {
	deps := testDeps()

	r := httptest.NewRequest(http.MethodPost, "/api/rooms", nil)
	w := httptest.NewRecorder()
	HandleCreateRoom(deps)(w, r)

	e := decodeEnvelope(t, w)
	if e.Code != 0 {
		t.Fatalf("envelope code = %d, want 0", e.Code)
	}

	var data struct {
		Room          session.Room `json:"room"`
		CurrentRoomID string       `json:"currentRoomId"`
	}
	decodeData(t, e, &data)

	if !identity.IsValidRoomID(data.Room.ID) {
		t.Errorf("room id %q is not a valid code", data.Room.ID)
	}
	if data.CurrentRoomID != data.Room.ID {
		t.Errorf("currentRoomId = %q, want the new room %q", data.CurrentRoomID, data.Room.ID)
	}
	if got := deps.Store.CurrentRoomID(); got != data.Room.ID {
		t.Errorf("store current room = %q, want %q", got, data.Room.ID)
	}
}

func TestHandleSelectRoom(t *testing.T) {
	deps := testDeps()
	room := deps.Store.CreateRoom()

	w := postJSON(t, HandleSelectRoom(deps), "/api/rooms/select", `{"roomId":"general"}`)
	if e := decodeEnvelope(t, w); e.Code != 0 {
		t.Fatalf("select general failed: %s", w.Body.String())
	}
	if got := deps.Store.CurrentRoomID(); got != session.GeneralRoomID {
		t.Errorf("current room = %q, want general", got)
	}

	w = postJSON(t, HandleSelectRoom(deps), "/api/rooms/select", `{"roomId":"ZZZZZZ"}`)
	if e := decodeEnvelope(t, w); e.Code != errs.ErrRoomNotFound {
		t.Errorf("envelope code = %d, want %d", e.Code, errs.ErrRoomNotFound)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}

	_ = room
}

func TestHandleEndRoom(t *testing.T) {
	deps := testDeps()
	room := deps.Store.CreateRoom()

	// The handler is the disciplined caller: the permanent room is refused here.
	w := postJSON(t, HandleEndRoom(deps), "/api/rooms/end", `{"roomId":"general"}`)
	if e := decodeEnvelope(t, w); e.Code != errs.ErrRoomPermanent {
		t.Errorf("end general: envelope code = %d, want %d", e.Code, errs.ErrRoomPermanent)
	}
	if got := len(deps.Store.Rooms()); got != 2 {
		t.Errorf("rooms = %d after refused end, want 2", got)
	}

	w = postJSON(t, HandleEndRoom(deps), "/api/rooms/end", `{"roomId":"`+room.ID+`"}`)
	e := decodeEnvelope(t, w)
	if e.Code != 0 {
		t.Fatalf("end temporary failed: %s", w.Body.String())
	}

	var data struct {
		CurrentRoomID string `json:"currentRoomId"`
	}
	decodeData(t, e, &data)
	if data.CurrentRoomID != session.GeneralRoomID {
		t.Errorf("currentRoomId = %q, want fallback to general", data.CurrentRoomID)
	}
}

func TestHandleRenameRoom(t *testing.T) {
	deps := testDeps()
	room := deps.Store.CreateRoom()

	w := postJSON(t, HandleRenameRoom(deps), "/api/rooms/rename", `{"roomId":"`+room.ID+`","name":"Team Sync"}`)
	if e := decodeEnvelope(t, w); e.Code != 0 {
		t.Fatalf("rename failed: %s", w.Body.String())
	}

	w = postJSON(t, HandleRenameRoom(deps), "/api/rooms/rename", `{"roomId":"`+room.ID+`","name":""}`)
	if e := decodeEnvelope(t, w); e.Code != errs.ErrRoomNameEmpty {
		t.Errorf("empty rename: envelope code = %d, want %d", e.Code, errs.ErrRoomNameEmpty)
	}
}

func TestHandleSendMessageAnonymousGuest(t *testing.T) {
	deps := testDeps()

	w := postJSON(t, HandleSendMessage(deps), "/api/messages", `{"content":"hello there","emotion":"happy"}`)
	e := decodeEnvelope(t, w)
	if e.Code != 0 {
		t.Fatalf("send failed: %s", w.Body.String())
	}

	var data struct {
		Message session.Message `json:"message"`
	}
	decodeData(t, e, &data)

	if data.Message.Content != "hello there" {
		t.Errorf("content = %q", data.Message.Content)
	}
	if data.Message.Emotion != session.EmotionHappy {
		t.Errorf("emotion = %q, want happy", data.Message.Emotion)
	}
	if data.Message.Sender.ID != "current-user" {
		t.Errorf("sender id = %q, want the anonymous id", data.Message.Sender.ID)
	}
	if !strings.Contains(data.Message.Sender.Name, "#") {
		t.Errorf("sender name = %q, want a generated guest name", data.Message.Sender.Name)
	}
}

func TestHandleSendMessageAuthenticatedIdentity(t *testing.T) {
	deps := testDeps()

	payload := &jwt.Payload{ID: "user-42", Name: "alice", Email: "alice@example.com"}

	r := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(`{"content":"from alice"}`))
	r.Header.Set("Content-Type", "application/json")
	r = r.WithContext(context.WithValue(r.Context(), jwt.ContextAuthPayloadKey, payload))

	w := httptest.NewRecorder()
	HandleSendMessage(deps)(w, r)

	e := decodeEnvelope(t, w)
	if e.Code != 0 {
		t.Fatalf("send failed: %s", w.Body.String())
	}

	var data struct {
		Message session.Message `json:"message"`
	}
	decodeData(t, e, &data)

	if data.Message.Sender.ID != "user-42" || data.Message.Sender.Name != "alice" {
		t.Errorf("sender = %+v, want the token identity", data.Message.Sender)
	}
}

func TestHandleSendMessageValidation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "empty content", body: `{"content":"   "}`, wantCode: errs.ErrMessageEmpty},
		{name: "unknown emotion", body: `{"content":"hi","emotion":"meh"}`, wantCode: errs.ErrEmotionInvalid},
		{name: "unknown field", body: `{"content":"hi","bogus":true}`, wantCode: errs.ErrInvalidJSONFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := testDeps()
			before := len(deps.Store.Messages())

			w := postJSON(t, HandleSendMessage(deps), "/api/messages", tt.body)
			if e := decodeEnvelope(t, w); e.Code != tt.wantCode {
				t.Errorf("envelope code = %d, want %d", e.Code, tt.wantCode)
			}
			if got := len(deps.Store.Messages()); got != before {
				t.Errorf("message count changed: %d -> %d", before, got)
			}
		})
	}
}

func TestHandleEditDeleteReactFlow(t *testing.T) {
	deps := testDeps()
	message, _ := deps.Store.SendMessage(actingSnapshot(httptest.NewRequest(http.MethodPost, "/", nil)), "draft", session.EmotionNone)

	w := postJSON(t, HandleEditMessage(deps), "/api/messages/edit", `{"messageId":"`+message.ID+`","content":"edited"}`)
	if e := decodeEnvelope(t, w); e.Code != 0 {
		t.Fatalf("edit failed: %s", w.Body.String())
	}

	w = postJSON(t, HandleReactMessage(deps), "/api/messages/react", `{"messageId":"`+message.ID+`","emotion":"sad"}`)
	if e := decodeEnvelope(t, w); e.Code != 0 {
		t.Fatalf("react failed: %s", w.Body.String())
	}

	// Reacting requires a concrete emotion; the empty tag is rejected.
	w = postJSON(t, HandleReactMessage(deps), "/api/messages/react", `{"messageId":"`+message.ID+`","emotion":""}`)
	if e := decodeEnvelope(t, w); e.Code != errs.ErrEmotionInvalid {
		t.Errorf("react with empty emotion: envelope code = %d, want %d", e.Code, errs.ErrEmotionInvalid)
	}

	messages := deps.Store.Messages()
	last := messages[len(messages)-1]
	if last.Content != "edited" || last.Emotion != session.EmotionSad {
		t.Errorf("message = %+v, want edited content and sad emotion", last)
	}

	w = postJSON(t, HandleDeleteMessage(deps), "/api/messages/delete", `{"messageId":"`+message.ID+`"}`)
	if e := decodeEnvelope(t, w); e.Code != 0 {
		t.Fatalf("delete failed: %s", w.Body.String())
	}

	w = postJSON(t, HandleDeleteMessage(deps), "/api/messages/delete", `{"messageId":"`+message.ID+`"}`)
	if e := decodeEnvelope(t, w); e.Code != errs.ErrMessageNotFound {
		t.Errorf("second delete: envelope code = %d, want %d", e.Code, errs.ErrMessageNotFound)
	}
}
