package cryptoerr

import (
	"errors"
	"fmt"
)

// Kind classifies a primitive failure
type Kind int

const (
	// InvalidKey means a key or nonce had bad encoding or length
	InvalidKey Kind = iota + 1
	// InvalidSignature means a signature had bad encoding or length
	InvalidSignature
	// EncryptionFailed means the cipher itself faulted while sealing
	EncryptionFailed
	// DecryptionFailed means authentication failed or the ciphertext was malformed
	DecryptionFailed
	// CompressionFailed means the encoder faulted
	CompressionFailed
	// DecompressionFailed means the frame was malformed, truncated or corrupted
	DecompressionFailed
	// RandomFailed means the entropy source failed
	RandomFailed
	// IoError means an underlying reader or writer failed
	IoError
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case InvalidKey:
		return "InvalidKey"
	case InvalidSignature:
		return "InvalidSignature"
	case EncryptionFailed:
		return "EncryptionFailed"
	case DecryptionFailed:
		return "DecryptionFailed"
	case CompressionFailed:
		return "CompressionFailed"
	case DecompressionFailed:
		return "DecompressionFailed"
	case RandomFailed:
		return "RandomFailed"
	case IoError:
		return "IoError"
	default:
		return "Unknown"
	}
}

// Sentinels for errors.Is matching by kind
var (
	ErrInvalidKey          = &Error{Kind: InvalidKey}
	ErrInvalidSignature    = &Error{Kind: InvalidSignature}
	ErrEncryptionFailed    = &Error{Kind: EncryptionFailed}
	ErrDecryptionFailed    = &Error{Kind: DecryptionFailed}
	ErrCompressionFailed   = &Error{Kind: CompressionFailed}
	ErrDecompressionFailed = &Error{Kind: DecompressionFailed}
	ErrRandomFailed        = &Error{Kind: RandomFailed}
	ErrIO                  = &Error{Kind: IoError}
)

// Error is a typed primitive failure
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// New creates an error of the given kind with a message
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Err: errors.New(msg)}
}

// Newf creates an error of the given kind with a formatted message
func Newf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// Wrap wraps err with a kind. A nil err yields nil.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so sentinels work with errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf extracts the kind from err if it carries one
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
