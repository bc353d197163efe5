package compression

import "github.com/pkg/errors"

// CompressionError surfaces the direction (compress/decompress), the codec
// involved, and the underlying cause. Even LZ4 and Snappy, whose
// underlying Go libraries never actually fail on valid input, are wrapped
// uniformly so callers have one error shape to handle regardless of
// Algorithm.
type CompressionError struct {
	Op        string    // "compress" or "decompress"
	Algorithm Algorithm
	Err       error
}

func (e *CompressionError) Error() string {
	return errors.Wrapf(e.Err, "%s: %s", e.Op, e.Algorithm).Error()
}

func (e *CompressionError) Unwrap() error {
	return e.Err
}

func wrapError(op string, algo Algorithm, err error) *CompressionError {
	return &CompressionError{Op: op, Algorithm: algo, Err: errors.WithStack(err)}
}
