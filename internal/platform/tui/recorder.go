package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// MatchRecorder writes a match to the history store when it ends.
// It is shared by every copy of a Model, so a match is saved at most once
// however many paths try to end it.
type MatchRecorder struct {
	once    sync.Once
	store   *storage.Store
	game    *pong.Game
	logger  *log.Logger
	started time.Time
	id      string
}

// NewMatchRecorder creates a recorder for game. store and logger may be nil.
func NewMatchRecorder(game *pong.Game, store *storage.Store, logger *log.Logger) *MatchRecorder {
	return &MatchRecorder{
		store:   store,
		game:    game,
		logger:  logger,
		started: time.Now(),
	}
}

// Record builds the history entry for the match so far.
func (r *MatchRecorder) Record(reason string) storage.MatchRecord {
	snap := r.game.Snapshot()
	ids := r.game.ControllerIDs()
	return storage.MatchRecord{
		Player1:   ids[0],
		Player2:   ids[1],
		Score1:    int(snap.Scores.P1),
		Score2:    int(snap.Scores.P2),
		Ticks:     snap.Tick,
		Duration:  int(time.Since(r.started).Seconds()),
		EndReason: reason,
	}
}

// Finish saves the match once, if anyone scored. Later calls are no-ops.
// Returns the stored match ID, or "" when nothing was saved.
func (r *MatchRecorder) Finish(reason string) string {
	r.once.Do(func() {
		rec := r.Record(reason)
		if rec.Score1+rec.Score2 == 0 || r.store == nil {
			return
		}

		id, err := r.store.SaveMatch(rec)
		if err != nil {
			if r.logger != nil {
				r.logger.Warn("could not save match", "error", err)
			}
			return
		}
		r.id = id

		if r.logger != nil {
			r.logger.Info("match saved",
				"id", id,
				"score", fmt.Sprintf("%d-%d", rec.Score1, rec.Score2),
				"reason", reason,
			)
		}
	})
	return r.id
}

// MatchID returns the stored match ID, or "" if the match was not saved.
func (r *MatchRecorder) MatchID() string {
	return r.id
}
