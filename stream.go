package tagtext

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

var readerPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, 4096)
	},
}

// UntagWriter strips tags from tagged text written to it in chunks of any
// size and forwards the content to the underlying writer. A tag split across
// writes is dropped once its '>' arrives; a '<' that is never closed drops
// everything after it, as Untag does.
type UntagWriter struct {
	w           io.Writer
	keepEscapes bool
	inTag       bool
	buf         []byte
}

// NewUntagWriter returns an UntagWriter that writes content to w. EscapedLT
// is turned back into '<' unless keepEscapes is set.
func NewUntagWriter(w io.Writer, keepEscapes bool) *UntagWriter {
	return &UntagWriter{w: w, keepEscapes: keepEscapes}
}

// Write consumes p. The returned count is len(p) unless the underlying
// writer fails.
func (u *UntagWriter) Write(p []byte) (int, error) {
	u.buf = u.buf[:0]
	for _, c := range p {
		switch {
		case u.inTag:
			if c == '>' {
				u.inTag = false
			}
		case c == '<':
			u.inTag = true
		case c == EscapedLT && !u.keepEscapes:
			u.buf = append(u.buf, '<')
		default:
			u.buf = append(u.buf, c)
		}
	}
	if len(u.buf) == 0 {
		return len(p), nil
	}
	if _, err := u.w.Write(u.buf); err != nil {
		return 0, err
	}
	return len(p), nil
}

// InTag reports whether the last byte written left the writer inside a tag.
func (u *UntagWriter) InTag() bool {
	return u.inTag
}

// Reset discards tag state and directs output to w.
func (u *UntagWriter) Reset(w io.Writer) {
	u.w = w
	u.inTag = false
	u.buf = u.buf[:0]
}

// UntagStreamRequest configures UntagStream.
type UntagStreamRequest struct {
	Reader      io.Reader
	Writer      io.Writer
	KeepEscapes bool
}

// UntagStream copies tagged text from Reader to Writer with all tags removed.
func UntagStream(req UntagStreamRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("untag stream: Reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("untag stream: Writer is nil")
	}
	reader := readerPool.Get().(*bufio.Reader)
	reader.Reset(req.Reader)
	defer func() {
		reader.Reset(nil)
		readerPool.Put(reader)
	}()
	uw := NewUntagWriter(req.Writer, req.KeepEscapes)
	if _, err := reader.WriteTo(uw); err != nil {
		return fmt.Errorf("untag stream: %w", err)
	}
	return nil
}
