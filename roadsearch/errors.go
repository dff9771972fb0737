package roadsearch

import "errors"

// ErrEmptyMatch is returned when a lookup finds no road at all.
var ErrEmptyMatch = errors.New("roadsearch: no road matched the query")
