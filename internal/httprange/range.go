package httprange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for range parsing. The distinction matters downstream:
// malformed headers map to 400 while syntactically valid but unsatisfiable
// ranges map to 416.
var (
	// ErrMalformed indicates a Range header that does not conform to the
	// single-range byte-range grammar.
	ErrMalformed = errors.New("malformed range header")

	// ErrUnsatisfiable indicates a well-formed range that cannot be satisfied
	// against the current file size.
	ErrUnsatisfiable = errors.New("range not satisfiable")
)

// ByteRange is an inclusive byte interval within a file. Values are only ever
// produced by Parse against a known size, so Start <= End < size always holds.
type ByteRange struct {
	Start uint64
	End   uint64
}

// Length returns the number of bytes covered by the range.
func (r ByteRange) Length() uint64 {
	return r.End - r.Start + 1
}

// ContentRange formats the Content-Range header value for a 206 response.
func (r ByteRange) ContentRange(size uint64) string {
	return fmt.Sprintf("bytes %d-%d/%d", r.Start, r.End, size)
}

// UnsatisfiableContentRange formats the Content-Range header value carried by
// a 416 response, which names only the current size.
func UnsatisfiableContentRange(size uint64) string {
	return fmt.Sprintf("bytes */%d", size)
}

// Parse parses an HTTP Range header value against a known file size.
//
// The accepted grammar is the single-range subset of RFC 7233:
//
//	bytes=<start>-<end>   explicit interval, inclusive
//	bytes=<start>-        open-ended, end = size-1
//	bytes=-<n>            suffix, the last n bytes
//
// An empty header means no range was requested; the second return value is
// false and the caller should serve the full file. Multi-range requests are
// rejected as malformed.
func Parse(header string, size uint64) (ByteRange, bool, error) {
	if header == "" {
		return ByteRange{}, false, nil
	}

	spec, ok := strings.CutPrefix(header, "bytes=")
	if !ok {
		return ByteRange{}, false, fmt.Errorf("%w: missing bytes= prefix", ErrMalformed)
	}
	if strings.Contains(spec, ",") {
		return ByteRange{}, false, fmt.Errorf("%w: multiple ranges not supported", ErrMalformed)
	}

	startStr, endStr, ok := strings.Cut(strings.TrimSpace(spec), "-")
	if !ok {
		return ByteRange{}, false, fmt.Errorf("%w: missing separator", ErrMalformed)
	}

	// A zero-byte file cannot satisfy any byte range.
	if size == 0 {
		return ByteRange{}, false, ErrUnsatisfiable
	}

	if startStr == "" {
		// Suffix form: last n bytes.
		n, err := strconv.ParseUint(endStr, 10, 64)
		if err != nil {
			return ByteRange{}, false, fmt.Errorf("%w: invalid suffix length %q", ErrMalformed, endStr)
		}
		if n == 0 {
			return ByteRange{}, false, ErrUnsatisfiable
		}
		if n > size {
			n = size
		}
		return ByteRange{Start: size - n, End: size - 1}, true, nil
	}

	start, err := strconv.ParseUint(startStr, 10, 64)
	if err != nil {
		return ByteRange{}, false, fmt.Errorf("%w: invalid range start %q", ErrMalformed, startStr)
	}
	if start >= size {
		return ByteRange{}, false, ErrUnsatisfiable
	}

	end := size - 1
	if endStr != "" {
		end, err = strconv.ParseUint(endStr, 10, 64)
		if err != nil {
			return ByteRange{}, false, fmt.Errorf("%w: invalid range end %q", ErrMalformed, endStr)
		}
		if start > end {
			return ByteRange{}, false, fmt.Errorf("%w: start %d after end %d", ErrMalformed, start, end)
		}
		// Clamp an end past EOF rather than rejecting, matching common
		// server behavior for bytes=N- style prefetch requests.
		if end > size-1 {
			end = size - 1
		}
	}

	return ByteRange{Start: start, End: end}, true, nil
}
