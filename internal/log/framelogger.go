package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// FrameLogger records the encoded controller snapshots and held keys of
// each frame.
type FrameLogger interface {
	Log(frame uint64, hand string, data []byte)
}

type frameLogger struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewFrameLogger creates a FrameLogger. If w is nil, the logger is a no-op.
func NewFrameLogger(w io.Writer) FrameLogger {
	return &frameLogger{w: w, now: time.Now}
}

// Log emits a single line with timestamp, frame number, hand and hex dump.
func (l *frameLogger) Log(frame uint64, hand string, data []byte) {
	if len(data) == 0 || l.w == nil {
		return
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	line := fmt.Sprintf("%s frame %d %s: %d bytes, hex: %s\n",
		l.now().Format("2006/01/02 15:04:05"),
		frame,
		hand,
		len(data),
		hexbuf.String())

	l.mu.Lock()
	_, _ = l.w.Write([]byte(line))
	l.mu.Unlock()
}
