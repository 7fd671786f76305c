package main

import (
	"flag"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pierrec/lz4/v4"
	"github.com/relistan/rubberneck"
	log "github.com/sirupsen/logrus"

	"github.com/mejedi/yndx-xxlsort/reporter"
)

type Config struct {
	Seed           int64         `envconfig:"SEED" default:"0"`
	RateLimit      uint64        `envconfig:"RATE_LIMIT" default:"0"`
	ReportInterval time.Duration `envconfig:"REPORT_INTERVAL" default:"0"`
	BufferSize     int           `envconfig:"BUFFER_SIZE" default:"1048576"`
	LoggingLevel   string        `envconfig:"LOGGING_LEVEL" default:"info"`
}

var (
	largeMode   = flag.Bool("large", false, "Generate larger record bodies")
	lz4Output   = flag.Bool("lz4", false, "LZ4-compress the record stream")
	profilePath = flag.String("profile", "", "YAML distribution profile overriding the built-in presets")
)

func configureLogging(config *Config) {
	level, err := log.ParseLevel(config.LoggingLevel)
	if err != nil {
		log.Fatalf("Unable to parse logging level: %s", err)
	}
	log.SetLevel(level)
}

func main() {
	flag.Parse()

	var config Config
	err := envconfig.Process("xxlgen", &config)
	if err != nil {
		log.Fatal(err.Error())
	}

	configureLogging(&config)

	// Announce on stderr via logrus; stdout belongs to the record stream
	rubberneck.NewPrinter(log.Infof, rubberneck.NoAddLineFeed).Print(config)

	sizeSpec := "20G"
	if flag.NArg() > 0 {
		sizeSpec = flag.Arg(0)
	}

	totalBytes, err := ParseSizeSpec(sizeSpec)
	if err != nil {
		log.Fatalf("Unable to parse size spec: %s", err)
	}

	dist := SelectDistribution(*largeMode)
	overhead := int64(RecordOverhead)
	if *profilePath != "" {
		profile, err := LoadProfile(*profilePath)
		if err != nil {
			log.Fatalf("Unable to load profile: %s", err)
		}
		dist = profile.Distribution()
		overhead = profile.Overhead
	}
	log.Infof("Generating %d bytes from the %s distribution (location %g, scale %g)",
		totalBytes, dist.Name, dist.Location, dist.Scale)

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var out io.Writer = os.Stdout
	if *lz4Output {
		out = lz4.NewWriter(out)
	}

	var emitter Emitter = NewLineEmitter(out, config.BufferSize)
	if config.RateLimit > 0 {
		emitter, err = NewRateLimitedEmitter(config.RateLimit, emitter)
		if err != nil {
			log.Fatalf("Unable to set up rate limiting: %s", err)
		}
	}

	var progress ProgressSink
	var progReporter *reporter.ProgressReporter
	if config.ReportInterval > 0 {
		progReporter = reporter.NewProgressReporter(config.ReportInterval)
		progReporter.Run()
		progress = progReporter
	}

	generator := NewGenerator(totalBytes, overhead, dist.Sampler(rng), rng, emitter, progress)

	err = generator.Run()

	// Flush even after a failed run so everything emitted stays emitted
	if stopErr := emitter.Stop(); stopErr != nil && err == nil {
		err = stopErr
	}

	if progReporter != nil {
		progReporter.Stop()
	}

	if err != nil {
		log.Fatal(err.Error())
	}
}
