package effects

import "errors"

var (
	// ErrNotPrepared is the panic value for processing without a prepared stream.
	ErrNotPrepared = errors.New("effects: delay is not prepared")
	// ErrDelayConfigured is returned by setters while a stream is prepared.
	ErrDelayConfigured = errors.New("effects: delay parameters are fixed while a stream is prepared")
	// ErrDelayTooShort reports an echo time shorter than one maximum block.
	ErrDelayTooShort = errors.New("effects: delay time is shorter than one block")
	// ErrHistoryTooShort reports a history that cannot hold the echo time plus one block.
	ErrHistoryTooShort = errors.New("effects: delay history is too short")
)
