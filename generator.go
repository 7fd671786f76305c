package main

import (
	"fmt"
	"math/rand"

	director "github.com/relistan/go-director"
	log "github.com/sirupsen/logrus"
)

// A ProgressSink receives per-record accounting as records go out.
type ProgressSink interface {
	Observe(records uint64, bytes uint64)
}

// A Generator streams synthetic records until the accounted byte cost of
// everything emitted reaches the budget. It owns the only mutable state in
// the program: the running byte total and the next record index.
type Generator struct {
	TotalBytes int64
	Overhead   int64

	sample   func() float64
	rng      *rand.Rand
	emitter  Emitter
	progress ProgressSink
	looper   director.Looper

	generated int64
	nextIndex int64
}

// NewGenerator returns a properly configured Generator. The random source is
// passed in explicitly so runs can be reproduced with a fixed seed.
func NewGenerator(totalBytes int64, overhead int64, sample func() float64,
	rng *rand.Rand, emitter Emitter, progress ProgressSink) *Generator {

	return &Generator{
		TotalBytes: totalBytes,
		Overhead:   overhead,
		sample:     sample,
		rng:        rng,
		emitter:    emitter,
		progress:   progress,
		looper:     director.NewFreeLooper(director.FOREVER, make(chan error)),
	}
}

// Run drives the generation loop to completion. Records come out in strictly
// increasing index order, and the last one may push the accounted total past
// the budget. Any emission failure aborts the run immediately; whatever was
// already written stays written.
func (g *Generator) Run() error {
	go g.looper.Loop(func() error {
		// Checked before emitting, so a non-positive budget emits nothing.
		// Quit delivery is asynchronous and the looper may come around
		// again before it lands, which is why the check guards the emit.
		if g.generated >= g.TotalBytes {
			g.looper.Quit()
			return nil
		}

		return g.emitOne()
	})

	err := g.looper.Wait()
	if err != nil {
		return fmt.Errorf("generation aborted at record %d: %w", g.nextIndex, err)
	}

	log.Infof("Generated %d records, %d bytes accounted (budget %d)",
		g.nextIndex, g.generated, g.TotalBytes)

	return nil
}

// emitOne builds and emits the record for the current index, then moves the
// accounting forward.
func (g *Generator) emitOne() error {
	// Draw order is fixed so a seeded run is bit-reproducible
	key := KeyForIndex(g.nextIndex)
	flags := g.rng.Uint64()
	crc := g.rng.Uint64()
	seed := g.rng.Uint64()
	bodySize := int64(g.sample()) // truncates toward zero

	rec := &Record{
		Key:      key,
		Flags:    flags,
		CRC:      crc,
		BodySize: bodySize,
		Seed:     seed,
	}

	if err := g.emitter.Emit(rec); err != nil {
		return err
	}

	g.generated += g.Overhead + bodySize
	g.nextIndex++

	if g.progress != nil {
		g.progress.Observe(1, uint64(g.Overhead+bodySize))
	}

	return nil
}
