package line

import (
	"fmt"

	"github.com/draganm/something/internal/memory"
	"github.com/draganm/something/internal/metrics"
)

// boundedWriter keeps what fits in dst and counts everything it was given
type boundedWriter struct {
	dst   []byte
	n     int
	total int
}

func (w *boundedWriter) Write(p []byte) (int, error) {
	w.total += len(p)
	w.n += copy(w.dst[w.n:], p)
	return len(p), nil
}

// FormatInto allocates a buffer of capacity bytes and formats into it.
// At most bound-1 bytes are written; a bound of 0 or above capacity means
// capacity. Longer output is cut silently; see Line.Truncated.
func FormatInto(alloc memory.Allocator, capacity, bound int, reason, format string, args ...any) (Line, error) {
	buf, err := alloc.Allocate(capacity, reason)
	if err != nil {
		return Line{}, err
	}
	if buf == nil || buf.Cap() == 0 {
		return Line{}, fmt.Errorf("allocator returned nothing for %d bytes: %w", capacity, memory.ErrAllocationFailure)
	}

	return Format(buf, bound, format, args...), nil
}

// Format writes into an existing buffer with the same bounds as FormatInto
func Format(buf *memory.Buffer, bound int, format string, args ...any) Line {
	data := buf.Bytes()
	if len(data) == 0 {
		return Line{buf: buf}
	}
	if bound <= 0 || bound > len(data) {
		bound = len(data)
	}
	w := &boundedWriter{dst: data[:bound-1]}
	fmt.Fprintf(w, format, args...)

	l := terminate(buf, w.n)
	l.want = w.total
	if l.Truncated() {
		metrics.FormatTruncations.Inc()
	}
	return l
}
