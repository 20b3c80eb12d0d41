package game

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// TurnLog is what one player did during one turn.
type TurnLog struct {
	Turn  int      `json:"turn"`
	Lines []string `json:"lines"`
}

// PlayLog records a player's turns. Lines are always sent to the logger at
// debug level; they are kept in memory only when recording is enabled.
type PlayLog struct {
	logger *log.Logger
	record bool
	turns  []TurnLog
}

func newPlayLog(logger *log.Logger, record bool) *PlayLog {
	return &PlayLog{logger: logger, record: record}
}

func (l *PlayLog) startTurn(turn int) {
	if l.record {
		l.turns = append(l.turns, TurnLog{Turn: turn})
	}
}

// enabled reports whether a line would go anywhere.
func (l *PlayLog) enabled() bool {
	return l.record || l.debug()
}

func (l *PlayLog) debug() bool {
	return l.logger != nil && l.logger.GetLevel() <= log.DebugLevel
}

func (l *PlayLog) add(player string, turn int, format string, args ...any) {
	if !l.enabled() {
		return
	}
	line := fmt.Sprintf(format, args...)
	if l.debug() {
		l.logger.Debug(line, "player", player, "turn", turn)
	}
	if l.record && len(l.turns) > 0 {
		last := &l.turns[len(l.turns)-1]
		last.Lines = append(last.Lines, line)
	}
}

// Turns returns the recorded turns, oldest first.
func (l *PlayLog) Turns() []TurnLog {
	out := make([]TurnLog, len(l.turns))
	copy(out, l.turns)
	return out
}
