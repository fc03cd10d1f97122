/*
Package handler provides HTTP handler functions for the message operations:
send, edit, delete, and react.
*/
package handler

import (
	"net/http"

	"pingroom/internal/app/session"
	"pingroom/internal/app/user"
	"pingroom/internal/pkg/auth/jwt"
	"pingroom/internal/pkg/errs"
	"pingroom/internal/pkg/identity"
	"pingroom/internal/pkg/req"
	"pingroom/internal/pkg/resp"
)

// actingSnapshot resolves the sender identity for a request: the token identity when
// present, otherwise a freshly generated guest name under the fixed anonymous id.
func actingSnapshot(r *http.Request) user.Snapshot {
	if payload := jwt.GetPayloadFromContext(r); payload != nil {
		return user.Snapshot{
			ID:     payload.ID,
			Name:   payload.Name,
			Status: user.StatusOnline,
		}
	}

	return user.Snapshot{
		ID:     "current-user",
		Name:   identity.GuestName(),
		Status: user.StatusOnline,
	}
}

// HandleListMessages returns the active message sequence in send order.
func HandleListMessages(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]any{
			"messages": deps.Store.Messages(),
		}
		resp.RespondSuccess(w, r, data)
	}
}

type SendMessageInput struct {
	Content string `json:"content"`
	Emotion string `json:"emotion,omitempty"`
}

// HandleSendMessage appends a message from the acting user to the active room.
func HandleSendMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input SendMessageInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		emotion, ok := session.ParseEmotion(input.Emotion)
		if !ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrEmotionInvalid))
			return
		}

		message, customErr := deps.Store.SendMessage(actingSnapshot(r), input.Content, emotion)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"message": message,
		})
	}
}

type EditMessageInput struct {
	MessageID string `json:"messageId"`
	Content   string `json:"content"`
}

// HandleEditMessage replaces a message's content in place.
func HandleEditMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input EditMessageInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := deps.Store.EditMessage(input.MessageID, input.Content); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, nil)
	}
}

type DeleteMessageInput struct {
	MessageID string `json:"messageId"`
}

// HandleDeleteMessage removes a message from the active sequence.
func HandleDeleteMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input DeleteMessageInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := deps.Store.DeleteMessage(input.MessageID); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, nil)
	}
}

type ReactMessageInput struct {
	MessageID string `json:"messageId"`
	Emotion   string `json:"emotion"`
}

// HandleReactMessage sets or overwrites a message's emotion tag. A concrete emotion
// is required; reacting cannot clear a tag.
func HandleReactMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input ReactMessageInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		emotion, ok := session.ParseEmotion(input.Emotion)
		if !ok || emotion == session.EmotionNone {
			resp.RespondError(w, r, errs.NewError(errs.ErrEmotionInvalid))
			return
		}

		if customErr := deps.Store.ReactMessage(input.MessageID, emotion); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, nil)
	}
}
