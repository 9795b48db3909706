package apperror

import "errors"

var (
	ErrScoresNotFound       = errors.New("scores not found")
	ErrMalformedScores      = errors.New("malformed scores record")
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
	ErrUnknownMode          = errors.New("unknown game mode")
	ErrAddrNotFound         = errors.New("redis address string is empty")
)
