// Package line reads and formats terminated strings into fixed-capacity buffers.
package line

import (
	"bytes"

	"github.com/draganm/something/internal/memory"
)

// Line is the terminated content of a buffer. The byte at Len() is always zero.
type Line struct {
	buf  *memory.Buffer
	n    int
	want int
}

func terminate(buf *memory.Buffer, n int) Line {
	data := buf.Bytes()
	data[n] = 0
	return Line{buf: buf, n: n, want: n}
}

// Len returns the number of bytes before the terminator
func (l Line) Len() int {
	return l.n
}

// Cap returns the capacity of the underlying buffer
func (l Line) Cap() int {
	if l.buf == nil {
		return 0
	}
	return l.buf.Cap()
}

// Bytes returns the content without the terminator
func (l Line) Bytes() []byte {
	if l.buf == nil || l.buf.Released() {
		return nil
	}
	return l.buf.Bytes()[:l.n]
}

func (l Line) String() string {
	return string(l.Bytes())
}

// Want returns the length the content would have had without truncation
func (l Line) Want() int {
	return l.want
}

// Truncated reports whether content was dropped to fit the buffer
func (l Line) Truncated() bool {
	return l.want > l.n
}

// Buffer returns the buffer the line lives in
func (l Line) Buffer() *memory.Buffer {
	return l.buf
}

// span returns the length of the initial part of b holding none of the reject bytes
func span(b []byte, reject string) int {
	if i := bytes.IndexAny(b, reject); i >= 0 {
		return i
	}
	return len(b)
}
