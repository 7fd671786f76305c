package main

import (
	"bytes"
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
)

// LogCapture grabs logrus output for tests that need to inspect it
func LogCapture(fn func()) string {
	capture := &bytes.Buffer{}
	log.SetOutput(capture)
	fn()
	log.SetOutput(os.Stderr)

	return capture.String()
}

// mockEmitter implements the Emitter interface, for testing
type mockEmitter struct {
	EmitShouldError bool

	Records       []*Record
	CallCount     int
	StopWasCalled bool
}

func (e *mockEmitter) Emit(rec *Record) error {
	e.CallCount++
	if e.EmitShouldError {
		return errors.New("intentional test error")
	}

	copied := *rec
	e.Records = append(e.Records, &copied)
	return nil
}

func (e *mockEmitter) Stop() error {
	e.StopWasCalled = true
	return nil
}

// mockProgressSink implements the ProgressSink interface, for testing
type mockProgressSink struct {
	RecordCount uint64
	ByteCount   uint64
}

func (s *mockProgressSink) Observe(records uint64, bytes uint64) {
	s.RecordCount += records
	s.ByteCount += bytes
}

// closeRecorder is a writer that remembers whether Close was called
type closeRecorder struct {
	bytes.Buffer
	Closed bool
}

func (c *closeRecorder) Close() error {
	c.Closed = true
	return nil
}

// failingWriter errors on every write
type failingWriter struct{}

func (w *failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("intentional test error")
}
