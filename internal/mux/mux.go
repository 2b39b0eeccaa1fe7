package mux

import (
	"net/http"

	"updownriver-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	manager *room.Manager
}

// NewMux returns a new HTTP mux over the game manager
func NewMux(version string, manager *room.Manager) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		manager: manager,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())

	r.Methods(http.MethodPost).Path("/games/create").Handler(this.postGamesCreate())
	r.Methods(http.MethodPost).Path("/games/join").Handler(this.postGamesJoin())
	r.Methods(http.MethodPost).Path("/games/start").Handler(this.postGamesStart())
	r.Methods(http.MethodPost).Path("/games/bid").Handler(this.postGamesBid())
	r.Methods(http.MethodPost).Path("/games/play").Handler(this.postGamesPlay())
	r.Methods(http.MethodGet).Path("/games/state").Handler(this.getGamesState())
	r.Methods(http.MethodPost).Path("/games/reset").Handler(this.postGamesReset())

	r.Methods(http.MethodGet).
		Path("/games/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}/ws").
		Handler(this.getGamesUUIDWS())

	return this
}
