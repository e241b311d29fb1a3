package playback

import "errors"

var (
	// ErrNoModels indicates a driver built with an empty sequence.
	ErrNoModels = errors.New("playback: no models to play")

	// ErrNoSurface indicates a driver built without a surface.
	ErrNoSurface = errors.New("playback: nil surface")

	// ErrInterval indicates a non-positive frame interval.
	ErrInterval = errors.New("playback: frame interval must be positive")
)
