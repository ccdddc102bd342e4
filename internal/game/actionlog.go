package game

import (
	"fmt"
	"time"
)

// LogType classifies an action log entry.
type LogType string

const (
	LogStart    LogType = "START"
	LogDraw     LogType = "DRAW"
	LogTrade    LogType = "TRADE"
	LogComplete LogType = "COMPLETE"
	LogEvent    LogType = "EVENT"
	LogPass     LogType = "PASS"
)

// ActionLogEntry is one line of the game's audit trail.
type ActionLogEntry struct {
	ID       string    `json:"id"`
	TS       time.Time `json:"ts"`
	PlayerID string    `json:"playerId,omitempty"`
	Turn     int       `json:"turn"`
	Type     LogType   `json:"type"`
	Message  string    `json:"message"`
}

// PushLog appends an entry, assigning its id and, when unset, its timestamp,
// then trims the oldest entries beyond Config.LogRetention. Ids keep counting
// across trims so they never repeat.
func (g *Game) PushLog(entry ActionLogEntry) ActionLogEntry {
	g.logSeq++
	entry.ID = fmt.Sprintf("log-%d", g.logSeq)
	if entry.TS.IsZero() {
		entry.TS = g.now()
	}
	g.Log = append(g.Log, entry)

	retention := g.Config.LogRetention
	if retention <= 0 {
		retention = DefaultLogRetention
	}
	if excess := len(g.Log) - retention; excess > 0 {
		g.Log = append(g.Log[:0:0], g.Log[excess:]...)
	}
	return entry
}

// logf pushes an entry for the current turn.
func (g *Game) logf(playerID string, typ LogType, format string, args ...any) ActionLogEntry {
	return g.PushLog(ActionLogEntry{
		PlayerID: playerID,
		Turn:     g.Turn,
		Type:     typ,
		Message:  fmt.Sprintf(format, args...),
	})
}
