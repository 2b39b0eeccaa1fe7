package room

import (
	"context"
	"errors"
	"sync"
	"time"

	"updownriver-server/pkg/deck"
	"updownriver-server/pkg/game"

	"github.com/sirupsen/logrus"
)

// ErrGameNotFound is an error when the game ID doesn't match an active game
var ErrGameNotFound = errors.New("game not found")

const archiveTimeout = time.Second * 10

// Archiver persists a finished game's final snapshot
type Archiver interface {
	ArchiveGame(ctx context.Context, snapshot *game.Snapshot) error
}

// Manager owns every active game and serializes access to each one.
// Operations on different games run in parallel; operations against the same
// game take that game's lock for their full duration
type Manager struct {
	logger   logrus.FieldLogger
	options  game.Options
	archiver Archiver

	mu    sync.RWMutex
	games map[string]*gameRoom
}

// gameRoom pairs a game with its lock and its websocket subscribers
type gameRoom struct {
	mu   sync.RWMutex
	game *game.Game

	clientsMu sync.Mutex
	clients   map[*Client]bool
}

// NewManager returns a new game manager
func NewManager(logger logrus.FieldLogger, options game.Options) *Manager {
	return &Manager{
		logger:  logger,
		options: options,
		games:   make(map[string]*gameRoom),
	}
}

// SetArchiver installs a store for finished games. Optional
func (m *Manager) SetArchiver(archiver Archiver) {
	m.archiver = archiver
}

// CreateGame creates a new game with the creator seated and returns the game
// and player IDs
func (m *Manager) CreateGame(displayName string, maxCards int) (gameID, playerID string, err error) {
	opts := m.options
	opts.MaxCards = maxCards

	g, host, err := game.NewGame(m.logger, displayName, opts)
	if err != nil {
		return "", "", err
	}

	m.mu.Lock()
	m.games[g.ID()] = &gameRoom{
		game:    g,
		clients: make(map[*Client]bool),
	}
	m.mu.Unlock()

	return g.ID(), host.ID, nil
}

// JoinGame seats a new player in the lobby
func (m *Manager) JoinGame(gameID, displayName string) (playerID string, err error) {
	room, err := m.room(gameID)
	if err != nil {
		return "", err
	}

	room.mu.Lock()
	player, err := room.game.AddPlayer(displayName)
	room.mu.Unlock()

	if err != nil {
		return "", err
	}

	room.broadcast()
	return player.ID, nil
}

// StartGame starts the game and deals the first round
func (m *Manager) StartGame(gameID, requesterID string) (*game.Snapshot, error) {
	return m.mutate(gameID, requesterID, func(g *game.Game) error {
		return g.Start()
	})
}

// PlaceBid records a bid
func (m *Manager) PlaceBid(gameID, playerID string, bid int) (*game.Snapshot, error) {
	return m.mutate(gameID, playerID, func(g *game.Game) error {
		return g.PlaceBid(playerID, bid)
	})
}

// PlayCard plays a card
func (m *Manager) PlayCard(gameID, playerID string, card *deck.Card) (*game.Snapshot, error) {
	return m.mutate(gameID, playerID, func(g *game.Game) error {
		return g.PlayCard(playerID, card)
	})
}

// ResetGame puts the game back in the lobby with the same players
func (m *Manager) ResetGame(gameID, requesterID string) (*game.Snapshot, error) {
	return m.mutate(gameID, requesterID, func(g *game.Game) error {
		g.Reset()
		return nil
	})
}

// State returns the game state as seen by the requesting player.
// Repeated polling never perturbs the game
func (m *Manager) State(gameID, requesterID string) (*game.Snapshot, error) {
	room, err := m.room(gameID)
	if err != nil {
		return nil, err
	}

	room.mu.RLock()
	defer room.mu.RUnlock()

	return room.game.Snapshot(requesterID), nil
}

// mutate runs op under the game's write lock, and on success broadcasts the
// new state and archives the game if it just finished
func (m *Manager) mutate(gameID, requesterID string, op func(*game.Game) error) (*game.Snapshot, error) {
	room, err := m.room(gameID)
	if err != nil {
		return nil, err
	}

	room.mu.Lock()
	if err := op(room.game); err != nil {
		room.mu.Unlock()
		return nil, err
	}

	snapshot := room.game.Snapshot(requesterID)
	finished := room.game.State() == game.StateFinished
	room.mu.Unlock()

	room.broadcast()

	if finished && m.archiver != nil {
		m.archive(room)
	}

	return snapshot, nil
}

func (m *Manager) room(gameID string) (*gameRoom, error) {
	m.mu.RLock()
	room, ok := m.games[gameID]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrGameNotFound
	}

	return room, nil
}

func (m *Manager) archive(room *gameRoom) {
	room.mu.RLock()
	snapshot := room.game.Snapshot("")
	room.mu.RUnlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
		defer cancel()

		if err := m.archiver.ArchiveGame(ctx, snapshot); err != nil {
			m.logger.WithError(err).WithField("game", snapshot.GameID).Error("could not archive game")
		}
	}()
}

// ClientConnected subscribes a websocket client to its game's updates and
// sends it a fresh snapshot. A player may only hold one open socket per game;
// connecting again closes the previous one
func (m *Manager) ClientConnected(client *Client) error {
	room, err := m.room(client.gameID)
	if err != nil {
		return err
	}

	room.clientsMu.Lock()
	if client.playerID != "" {
		for c := range room.clients {
			if c.playerID == client.playerID {
				delete(room.clients, c)
				c.evict("connected from another session")
			}
		}
	}
	room.clients[client] = true
	room.clientsMu.Unlock()

	m.logger.WithField("client", client.String()).Debug("client connected")

	room.mu.RLock()
	snapshot := room.game.Snapshot(client.playerID)
	room.mu.RUnlock()

	client.Send(snapshot)
	return nil
}

// ClientDisconnected drops the subscription
func (m *Manager) ClientDisconnected(client *Client) {
	room, err := m.room(client.gameID)
	if err != nil {
		return
	}

	room.clientsMu.Lock()
	delete(room.clients, client)
	room.clientsMu.Unlock()

	m.logger.WithField("client", client.String()).Debug("client disconnected")
}

// broadcast sends each subscriber a snapshot rendered for its own player, so
// no client ever sees another player's hand
func (r *gameRoom) broadcast() {
	r.clientsMu.Lock()
	clients := make([]*Client, 0, len(r.clients))
	for client := range r.clients {
		clients = append(clients, client)
	}
	r.clientsMu.Unlock()

	for _, client := range clients {
		r.mu.RLock()
		snapshot := r.game.Snapshot(client.playerID)
		r.mu.RUnlock()

		if !client.Send(snapshot) {
			logrus.WithField("client", client.String()).Warn("dropped update; client send buffer is full")
		}
	}
}
