package db

import (
	"context"
	"database/sql"
	"encoding/json"

	"updownriver-server/pkg/game"
)

// Archive stores finished games in Postgres
type Archive struct {
	db *sql.DB
}

// NewArchive returns an archive over the database handle
func NewArchive(db *sql.DB) *Archive {
	return &Archive{db: db}
}

const archiveGameSQL = `
INSERT INTO game_archive (game_uuid, players, round_results)
VALUES ($1, $2, $3)`

// ArchiveGame persists a finished game's final standings and per-round
// results
func (a *Archive) ArchiveGame(ctx context.Context, snapshot *game.Snapshot) error {
	players, err := json.Marshal(snapshot.Players)
	if err != nil {
		return err
	}

	results, err := json.Marshal(snapshot.RoundResults)
	if err != nil {
		return err
	}

	_, err = a.db.ExecContext(ctx, archiveGameSQL, snapshot.GameID, players, results)
	return err
}
