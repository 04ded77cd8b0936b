package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"media-share/internal/core/domain"
	"os"

	"golang.org/x/time/rate"
)

func (s *streamService) Open(ctx context.Context, file domain.ResolvedFile, plan domain.StreamPlan) (io.ReadCloser, error) {
	if plan.Kind != domain.PlanFull && plan.Kind != domain.PlanPartial {
		return nil, fmt.Errorf("plan %s has no body", plan.Kind)
	}

	f, err := os.Open(file.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s vanished", domain.ErrNotFound, file.Name)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	// The file may have changed since Locate.
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat open file: %w", err)
	}
	if !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is no longer a regular file", domain.ErrNotFound, file.Name)
	}
	if plan.Range.Length() > 0 && plan.Range.End >= info.Size() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s shrank to %d bytes", domain.ErrNotFound, file.Name, info.Size())
	}

	var reader io.Reader = io.NewSectionReader(f, plan.Range.Start, plan.Range.Length())
	reader = &contextReader{ctx: ctx, reader: reader}
	if s.cfg.RateLimit > 0 {
		reader = newThrottledReader(ctx, reader, s.cfg.RateLimit, s.cfg.BufferSize)
	}

	s.logger.Debug("stream opened",
		"file", file.Name,
		"kind", plan.Kind.String(),
		"start", plan.Range.Start,
		"length", plan.Range.Length(),
	)

	return &fileStream{Reader: reader, file: f, name: file.Name, stream: s}, nil
}

// fileStream releases the file handle on Close
type fileStream struct {
	io.Reader
	file   *os.File
	name   string
	stream *streamService
}

func (f *fileStream) Close() error {
	err := f.file.Close()
	f.stream.logger.Debug("stream closed", "file", f.name)
	return err
}

// contextReader stops reading once the request context is done
type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.reader.Read(p)
}

// throttledReader paces reads with a token bucket, one token per byte
type throttledReader struct {
	ctx     context.Context
	reader  io.Reader
	limiter *rate.Limiter
}

func newThrottledReader(ctx context.Context, reader io.Reader, bytesPerSecond int64, bufferSize int) *throttledReader {
	// WaitN rejects n above the burst, so a chunk never exceeds it.
	burst := bufferSize
	if int64(burst) > bytesPerSecond {
		burst = int(bytesPerSecond)
	}
	if burst < 1 {
		burst = 1
	}
	return &throttledReader{
		ctx:     ctx,
		reader:  reader,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSecond), burst),
	}
}

func (t *throttledReader) Read(p []byte) (int, error) {
	if burst := t.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}
	n, err := t.reader.Read(p)
	if n > 0 {
		if waitErr := t.limiter.WaitN(t.ctx, n); waitErr != nil {
			return n, waitErr
		}
	}
	return n, err
}
