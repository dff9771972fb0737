package editdist

import "errors"

// ErrLengthMismatch is returned by Hamming when its two arguments are
// not the same length.
var ErrLengthMismatch = errors.New("editdist: hamming distance requires equal-length strings")
