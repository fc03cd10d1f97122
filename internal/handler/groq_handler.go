/*
Package handler provides HTTP handler functions for the chat-completion relay.

The relay route does not use the standard {code, message, data} envelope: both its
success shape (verbatim upstream body) and its failure shape (the literal error
object below, HTTP 500) are fixed by its contract.
*/
package handler

import (
	"encoding/json"
	"net/http"

	"pingroom/internal/app/session"
	"pingroom/internal/gateway/groq"
	"pingroom/internal/pkg/errs"
	"pingroom/internal/pkg/logx"
	"pingroom/internal/pkg/req"
	"pingroom/internal/pkg/resp"
)

// relayErrorBody is the single failure shape of the relay. Network errors, malformed
// request bodies, and unreadable upstream responses all collapse into it.
const relayErrorBody = `{"error":"Failed to fetch from Groq API"}`

// relayFailureText is appended as the bot reply when the composer flow cannot reach
// the upstream.
const relayFailureText = "Error - Could not get a response."

type RelayInput struct {
	Messages []groq.Turn `json:"messages"`
}

// HandleGroqRelay forwards conversation turns to the upstream chat-completion API
// and writes the upstream body back verbatim.
func HandleGroqRelay(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input RelayInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondRelayError(w)
			return
		}

		body, err := deps.Relay.Complete(r.Context(), input.Messages)
		if err != nil {
			logx.Error(err, "Groq relay request failed")
			respondRelayError(w)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}
}

// respondRelayError writes the relay's fixed failure shape.
func respondRelayError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(relayErrorBody))
}

type AskInput struct {
	Content string `json:"content"`
	Emotion string `json:"emotion,omitempty"`
}

// HandleAskBot is the composer flow: it appends the acting user's message to the
// store, relays it upstream as a single user turn, and appends the bot reply.
// The reply is the first choice's content, or a fallback literal when the
// response carries no usable choice or the relay fails.
//
// The bot reply lands in whatever room is active when the upstream response
// returns. A user switching rooms mid-flight moves the reply with them; that race
// is accepted, not guarded.
func HandleAskBot(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input AskInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		emotion, ok := session.ParseEmotion(input.Emotion)
		if !ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrEmotionInvalid))
			return
		}

		userMessage, customErr := deps.Store.SendMessage(actingSnapshot(r), input.Content, emotion)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		turns := []groq.Turn{{Role: "user", Content: userMessage.Content}}

		var botMessage session.Message

		body, err := deps.Relay.Complete(r.Context(), turns)
		if err != nil {
			logx.Error(err, "Groq relay request failed during composer flow")
			botMessage = deps.Store.AppendBotMessage(relayFailureText)
		} else {
			botMessage = deps.Store.AppendBotMessage(groq.FirstChoiceContent(body))
		}

		resp.RespondSuccess(w, r, map[string]any{
			"userMessage": userMessage,
			"botMessage":  botMessage,
		})
	}
}
