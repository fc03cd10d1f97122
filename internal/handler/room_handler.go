/*
Package handler provides HTTP handler functions for room management.
*/
package handler

import (
	"net/http"

	"pingroom/internal/app/session"
	"pingroom/internal/pkg/errs"
	"pingroom/internal/pkg/req"
	"pingroom/internal/pkg/resp"
)

// HandleGetSession returns the store snapshot: current room, room list, and roster.
func HandleGetSession(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]any{
			"currentRoomId": deps.Store.CurrentRoomID(),
			"rooms":         deps.Store.Rooms(),
			"users":         deps.Store.Users(),
		}
		resp.RespondSuccess(w, r, data)
	}
}

// HandleCreateRoom creates a fresh temporary room, selects it, and resets the
// message sequence.
func HandleCreateRoom(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room := deps.Store.CreateRoom()

		data := map[string]any{
			"room":          room,
			"currentRoomId": room.ID,
		}
		resp.RespondSuccess(w, r, data)
	}
}

type SelectRoomInput struct {
	RoomID string `json:"roomId"`
}

// HandleSelectRoom switches the current room.
func HandleSelectRoom(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input SelectRoomInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := deps.Store.SelectRoom(input.RoomID); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"currentRoomId": input.RoomID,
		})
	}
}

type EndRoomInput struct {
	RoomID string `json:"roomId"`
}

// HandleEndRoom removes a temporary room. The store would remove any room it is
// asked to, including "general"; the disciplined caller lives here, so the
// permanent room is refused before the store is reached.
func HandleEndRoom(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input EndRoomInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.RoomID == session.GeneralRoomID {
			resp.RespondError(w, r, errs.NewError(errs.ErrRoomPermanent))
			return
		}

		if customErr := deps.Store.EndRoom(input.RoomID); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"currentRoomId": deps.Store.CurrentRoomID(),
		})
	}
}

type RenameRoomInput struct {
	RoomID string `json:"roomId"`
	Name   string `json:"name"`
}

// HandleRenameRoom replaces a room's display name.
func HandleRenameRoom(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input RenameRoomInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := deps.Store.RenameRoom(input.RoomID, input.Name); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, nil)
	}
}
