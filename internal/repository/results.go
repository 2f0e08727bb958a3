package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lk16/reversi/internal/reversi"
	"github.com/lk16/reversi/internal/services"
	"github.com/lk16/reversi/internal/session"
)

// GameResult is a row of the game_results table.
type GameResult struct {
	ID         string    `db:"id" json:"id"`
	Width      int       `db:"width" json:"width"`
	Height     int       `db:"height" json:"height"`
	Dark       int       `db:"dark" json:"dark"`
	Light      int       `db:"light" json:"light"`
	Winner     string    `db:"winner" json:"winner"`
	FinalBoard string    `db:"final_board" json:"final_board"`
	FinishedAt time.Time `db:"finished_at" json:"finished_at"`
}

// ResultRepository stores finished games in Postgres.
type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepositoryFromServices(services *services.Services) *ResultRepository {
	return &ResultRepository{
		db: services.Postgres,
	}
}

// Record stores the result of finished events and ignores all other events.
func (repo *ResultRepository) Record(ctx context.Context, msg session.Message) error {
	row, ok := newGameResult(msg)
	if !ok {
		return nil
	}

	query := `
		INSERT INTO game_results (id, width, height, dark, light, winner, final_board)
		VALUES (:id, :width, :height, :dark, :light, :winner, :final_board)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := repo.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("error inserting game result: %w", err)
	}

	return nil
}

// GetResult loads the result of a finished game.
func (repo *ResultRepository) GetResult(ctx context.Context, gameID string) (*GameResult, error) {
	var result GameResult

	query := `SELECT id, width, height, dark, light, winner, final_board, finished_at FROM game_results WHERE id = $1`
	if err := repo.db.GetContext(ctx, &result, query, gameID); err != nil {
		return nil, fmt.Errorf("error loading game result: %w", err)
	}

	return &result, nil
}

func newGameResult(msg session.Message) (*GameResult, bool) {
	if msg.Event.Kind != reversi.EventFinished || msg.Event.Result == nil {
		return nil, false
	}

	result := msg.Event.Result

	winner := result.Winner.String()
	if result.Winner == reversi.Empty {
		winner = "draw"
	}

	return &GameResult{
		ID:         msg.Snapshot.ID,
		Width:      msg.Snapshot.Width,
		Height:     msg.Snapshot.Height,
		Dark:       result.Dark,
		Light:      result.Light,
		Winner:     winner,
		FinalBoard: msg.Snapshot.Board,
	}, true
}
