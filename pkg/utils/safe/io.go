// Package safe wraps io calls whose errors can only be logged, such as
// writes to an already committed HTTP response.
package safe

import (
	"context"
	"io"

	"github.com/secmon-lab/roadmap/pkg/utils/logging"
)

// Close closes c and logs a failure. A nil closer is ignored.
func Close(ctx context.Context, c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logging.From(ctx).Warn("failed to close", "error", err)
	}
}

// Write writes data to w and logs a failure or a short write. A nil writer
// is ignored.
func Write(ctx context.Context, w io.Writer, data []byte) {
	if w == nil {
		return
	}
	n, err := w.Write(data)
	if err != nil {
		logging.From(ctx).Warn("failed to write", "error", err, "written", n, "size", len(data))
	}
}

// Copy copies src into dst and logs a failure
func Copy(ctx context.Context, dst io.Writer, src io.Reader) {
	if n, err := io.Copy(dst, src); err != nil {
		logging.From(ctx).Warn("failed to copy", "error", err, "copied", n)
	}
}
