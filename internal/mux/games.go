package mux

import (
	"errors"
	"net/http"

	"updownriver-server/pkg/deck"
)

type postGamesCreatePayload struct {
	DisplayName string `json:"displayName"`
	MaxCards    int    `json:"maxCards"`
}

type gamesCreateJoinResponse struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId"`
}

func (m *Mux) postGamesCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postGamesCreatePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.DisplayName == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("displayName is required"))
			return
		}

		gameID, playerID, err := m.manager.CreateGame(pp.DisplayName, pp.MaxCards)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, gamesCreateJoinResponse{
			GameID:   gameID,
			PlayerID: playerID,
		})
	}
}

type postGamesJoinPayload struct {
	GameID      string `json:"gameId"`
	DisplayName string `json:"displayName"`
}

func (m *Mux) postGamesJoin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postGamesJoinPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.GameID == "" || pp.DisplayName == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("gameId and displayName are required"))
			return
		}

		playerID, err := m.manager.JoinGame(pp.GameID, pp.DisplayName)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, gamesCreateJoinResponse{
			GameID:   pp.GameID,
			PlayerID: playerID,
		})
	}
}

type postGamesStartPayload struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId"`
}

func (m *Mux) postGamesStart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postGamesStartPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		snapshot, err := m.manager.StartGame(pp.GameID, pp.PlayerID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}

type postGamesBidPayload struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId"`
	Bid      int    `json:"bid"`
}

func (m *Mux) postGamesBid() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postGamesBidPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		snapshot, err := m.manager.PlaceBid(pp.GameID, pp.PlayerID, pp.Bid)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}

type postGamesPlayPayload struct {
	GameID   string     `json:"gameId"`
	PlayerID string     `json:"playerId"`
	Card     *deck.Card `json:"card"`
}

func (m *Mux) postGamesPlay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postGamesPlayPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.Card == nil {
			writeJSONError(w, http.StatusBadRequest, errors.New("card is required"))
			return
		}

		snapshot, err := m.manager.PlayCard(pp.GameID, pp.PlayerID, pp.Card)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}

func (m *Mux) getGamesState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := r.FormValue("gameId")
		if gameID == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("gameId is required"))
			return
		}

		snapshot, err := m.manager.State(gameID, r.FormValue("playerId"))
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}

type postGamesResetPayload struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId"`
}

func (m *Mux) postGamesReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postGamesResetPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		snapshot, err := m.manager.ResetGame(pp.GameID, pp.PlayerID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}
