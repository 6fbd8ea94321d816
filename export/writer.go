package export

import (
	"context"
	"io"
)

type contextWriter struct {
	ctx context.Context
	w   io.Writer
}

// ContextWriter wraps w so writes fail once ctx is done, which stops an
// export as soon as the client goes away
func ContextWriter(ctx context.Context, w io.Writer) io.Writer {
	return &contextWriter{ctx: ctx, w: w}
}

func (cw *contextWriter) Write(p []byte) (int, error) {
	if err := cw.ctx.Err(); err != nil {
		return 0, err
	}
	return cw.w.Write(p)
}
