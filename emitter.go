package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	limiter "github.com/sethvargo/go-limiter"
	"github.com/sethvargo/go-limiter/memorystore"
	log "github.com/sirupsen/logrus"
)

// An Emitter is the sink the generator hands finished records to.
type Emitter interface {
	Emit(rec *Record) error
	Stop() error
}

// A LineEmitter writes records in the wire format through a buffered writer.
type LineEmitter struct {
	buf    *bufio.Writer
	closer io.Closer
}

// NewLineEmitter returns an emitter writing to w with the given buffer size.
// A non-positive size falls back to the bufio default. When w is also an
// io.Closer it is closed on Stop, after the final flush, which is what
// terminates an LZ4 frame when the stream is compressed.
func NewLineEmitter(w io.Writer, bufSize int) *LineEmitter {
	var buf *bufio.Writer
	if bufSize > 0 {
		buf = bufio.NewWriterSize(w, bufSize)
	} else {
		buf = bufio.NewWriter(w)
	}

	emitter := &LineEmitter{buf: buf}
	if closer, ok := w.(io.Closer); ok {
		emitter.closer = closer
	}

	return emitter
}

func (e *LineEmitter) Emit(rec *Record) error {
	if _, err := rec.WriteTo(e.buf); err != nil {
		return fmt.Errorf("failed to emit record %s: %w", rec.Key, err)
	}

	return nil
}

// Stop flushes buffered records and closes the underlying writer when it
// supports closing.
func (e *LineEmitter) Stop() error {
	if err := e.buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush records: %w", err)
	}

	if e.closer != nil {
		if err := e.closer.Close(); err != nil {
			return fmt.Errorf("failed to close output: %w", err)
		}
	}

	return nil
}

// A RateLimitedEmitter wraps another Emitter, throttling it to a fixed number
// of records per second. Unlike a log rate limiter it never drops anything: a
// limited record waits for the next token, because the byte budget has to
// account for every record handed downstream.
type RateLimitedEmitter struct {
	limitStore limiter.Store
	output     Emitter
	limitKey   string
}

// NewRateLimitedEmitter returns an emitter admitting at most recordsPerSec
// records each second into the wrapped output.
func NewRateLimitedEmitter(recordsPerSec uint64, output Emitter) (*RateLimitedEmitter, error) {
	// Set up the rate limiter
	store, err := memorystore.New(&memorystore.Config{
		// Number of tokens allowed per interval.
		Tokens: recordsPerSec,

		// Interval until tokens reset.
		Interval: time.Second,
	})

	if err != nil {
		return nil, fmt.Errorf("unable to create memory store: %w", err)
	}

	return &RateLimitedEmitter{
		limitStore: store,
		output:     output,
		limitKey:   "records",
	}, nil
}

// Emit passes the record downstream as soon as the limiter admits it.
func (e *RateLimitedEmitter) Emit(rec *Record) error {
	for {
		_, _, reset, ok, err := e.limitStore.Take(context.Background(), e.limitKey)
		if err != nil {
			return fmt.Errorf("unable to take rate limit token: %w", err)
		}

		if ok {
			break
		}

		// reset is the time the current window ends, in unix nanoseconds
		wait := time.Until(time.Unix(0, int64(reset)))
		if wait <= 0 {
			wait = time.Millisecond
		}

		log.Debugf("Rate limited, waiting %s for the next token", wait)
		time.Sleep(wait)
	}

	return e.output.Emit(rec)
}

// Stop cleans up the limiter and stops the wrapped emitter.
func (e *RateLimitedEmitter) Stop() error {
	if err := e.limitStore.Close(context.Background()); err != nil {
		log.Warnf("Error closing limiter store: %s", err)
	}

	return e.output.Stop()
}
