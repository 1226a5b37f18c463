package types

import "errors"

var (
	ErrStationNotFound   = errors.New("station not found")
	ErrDuplicateStation  = errors.New("source and target are the same station")
	ErrNoPath            = errors.New("stations are not connected")
	ErrInvalidSection    = errors.New("invalid section")
	ErrInvalidLine       = errors.New("invalid line")
	ErrUnknownEdgeWeight = errors.New("unknown edge weight")
)
