package palette

import "errors"

// ErrInvalidMaxColors is wrapped and returned when Extract is called with
// maxColors < 1. This is a programmer contract violation:
// the algorithmic core panics on it, and Extract is the single recover
// point that turns the panic into a returned error.
var ErrInvalidMaxColors = errors.New("palette: maxColors must be >= 1")
