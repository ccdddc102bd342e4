package game

import "errors"

// Precondition violations.
var (
	ErrInvalidPlayerCount = errors.New("game requires between 1 and 4 players")
	ErrInvalidPlayerName  = errors.New("player name must not be blank")
	ErrNotActivePlayer    = errors.New("not the active player")
	ErrAlreadyDrawn       = errors.New("already drew this turn")
	ErrAlreadyTraded      = errors.New("already traded this turn")
	ErrEventPending       = errors.New("an event is pending acknowledgment")
	ErrNoPendingEvent     = errors.New("no event is pending")
	ErrUnknownEvent       = errors.New("unknown event type")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrNoFeatures         = errors.New("no features selected")
	ErrNoActiveFeature    = errors.New("player has no active feature")
	ErrFeatureMismatch    = errors.New("feature is not the player's active feature")
	ErrCardLocked         = errors.New("card is locked by PTO")
	ErrDuplicateCard      = errors.New("card submitted more than once")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrSelfTrade          = errors.New("cannot trade with yourself")
)

// Missing entities.
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrCardNotFound   = errors.New("card not found")
)

// ErrGameOver is returned by mutating operations once the game is WON or LOST.
var ErrGameOver = errors.New("game is over")

// ErrorKind groups engine errors the way a transport layer reports them.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindPrecondition
	KindNotFound
	KindGameOver
)

// String returns the string representation of the kind
func (k ErrorKind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition"
	case KindNotFound:
		return "not_found"
	case KindGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

var preconditionErrors = []error{
	ErrInvalidPlayerCount, ErrInvalidPlayerName, ErrNotActivePlayer,
	ErrAlreadyDrawn, ErrAlreadyTraded, ErrEventPending, ErrNoPendingEvent,
	ErrUnknownEvent, ErrInvalidSelection, ErrNoFeatures, ErrNoActiveFeature,
	ErrFeatureMismatch, ErrCardLocked, ErrDuplicateCard,
	ErrInsufficientPoints, ErrSelfTrade,
}

// Kind classifies err. Errors that did not come from the engine are
// KindUnknown.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrGameOver):
		return KindGameOver
	case errors.Is(err, ErrPlayerNotFound), errors.Is(err, ErrCardNotFound):
		return KindNotFound
	}
	for _, target := range preconditionErrors {
		if errors.Is(err, target) {
			return KindPrecondition
		}
	}
	return KindUnknown
}
