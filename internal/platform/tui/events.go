package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// LogResult writes the events of one tick to logger. Points are logged at
// info level, everything else at debug. Quiet ticks are skipped.
func LogResult(logger *log.Logger, res pong.Result) {
	if logger == nil || res.Events == 0 {
		return
	}

	kv := []any{
		"tick", res.Tick,
		"events", res.Events.String(),
		"p1", res.Scores.P1,
		"p2", res.Scores.P2,
	}

	if res.Events.Scored() {
		logger.Info("point", kv...)
		return
	}
	logger.Debug("event", kv...)
}
