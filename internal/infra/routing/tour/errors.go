package tour

import "nagarsetu/internal/errors"

var (
	// ErrMissingStart is returned when no start point is given.
	ErrMissingStart = errors.New("start point is required")
	// ErrStartNotFlagged is returned when the start point is not marked IsStart.
	ErrStartNotFlagged = errors.New("start point must be flagged as start")
	// ErrStartInStops is returned when a stop is marked IsStart.
	ErrStartInStops = errors.New("stops must not contain a start point")
	// ErrEmptyPointID is returned when a point has no ID.
	ErrEmptyPointID = errors.New("point id is required")
	// ErrDuplicatePointID is returned when two points share an ID.
	ErrDuplicatePointID = errors.New("duplicate point id")
	// ErrInvalidCoordinate is returned for NaN, infinite, or out-of-range coordinates.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrStartIndexOutOfRange is returned when NearestNeighbor gets a bad start index.
	ErrStartIndexOutOfRange = errors.New("start index out of range")
)
