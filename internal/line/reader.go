package line

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/draganm/something/internal/memory"
	"github.com/draganm/something/internal/metrics"
)

// ReadLine reads at most buf.Cap()-1 bytes from r, stopping after a newline.
// Bytes past the limit are left in r for the next read. The line ends at the
// first newline or zero byte, which is replaced by the terminator.
//
// End of stream before any byte returns an empty line and io.EOF. End of
// stream after some bytes is not an error.
func ReadLine(r *bufio.Reader, buf *memory.Buffer) (Line, error) {
	if buf == nil || buf.Cap() == 0 {
		return Line{}, fmt.Errorf("cannot read into nothing: %w", memory.ErrInvalidSize)
	}

	data := buf.Bytes()
	limit := len(data) - 1
	n := 0
	ending := metrics.EndingLimit
	var readErr error

	for n < limit {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				ending = metrics.EndingEOF
				if n == 0 {
					readErr = io.EOF
				}
			} else {
				ending = metrics.EndingError
				readErr = fmt.Errorf("failed to read line: %w", err)
			}
			break
		}
		data[n] = b
		n++
		if b == '\n' {
			ending = metrics.EndingNewline
			break
		}
	}

	metrics.LinesRead.WithLabelValues(ending).Inc()
	return terminate(buf, span(data[:n], "\n\x00")), readErr
}
