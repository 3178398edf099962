package channel

import (
	"fmt"
	"math/rand"

	"github.com/DataDog/sketches-go/ddsketch"
	"github.com/aclements/go-moremath/stats"
	"github.com/rs/zerolog"

	"github.com/yangl1996/error-control-codes/bitstring"
)

// Experiment sends random data words through a noisy channel and
// counts how often the detector notices the corruption. Trials are
// independently seeded from Seed, so a run is reproducible and any
// single trial can be replayed on its own.
type Experiment struct {
	Detector Detector
	DataLen  int
	BER      float64
	Trials   int
	Seed     uint64
	// Logger receives per-trial debug events; nil disables logging.
	Logger *zerolog.Logger
}

// Report summarizes one experiment run. Every trial is counted in
// exactly one of Clean, Detected, and Missed.
type Report struct {
	Trials     int
	Clean      int // delivered untouched
	Detected   int // corrupted and flagged
	Missed     int // corrupted but accepted
	TotalFlips int

	flips       *ddsketch.DDSketch
	observedBER stats.Sample
}

// MissRate is the fraction of corrupted deliveries the detector
// accepted. Zero when nothing was corrupted.
func (r *Report) MissRate() float64 {
	corrupted := r.Detected + r.Missed
	if corrupted == 0 {
		return 0
	}
	return float64(r.Missed) / float64(corrupted)
}

// FlipQuantiles returns the per-trial flip count at each quantile.
func (r *Report) FlipQuantiles(qs []float64) ([]float64, error) {
	return r.flips.GetValuesAtQuantiles(qs)
}

// ObservedBER returns the mean and standard deviation of the per-trial
// realized bit error rate.
func (r *Report) ObservedBER() (mean, stddev float64) {
	return r.observedBER.Mean(), r.observedBER.StdDev()
}

// Run executes the experiment.
func (e Experiment) Run() (*Report, error) {
	if e.Detector == nil {
		return nil, fmt.Errorf("experiment: no detector")
	}
	if e.DataLen <= 0 {
		return nil, fmt.Errorf("experiment: data length %d", e.DataLen)
	}
	if e.Trials <= 0 {
		return nil, fmt.Errorf("experiment: trial count %d", e.Trials)
	}
	if e.BER < 0 || e.BER > 1 {
		return nil, InvalidRateError{e.BER}
	}
	logger := e.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	sketch, err := ddsketch.NewDefaultDDSketch(0.01)
	if err != nil {
		return nil, err
	}
	rep := &Report{flips: sketch}

	for trial := 0; trial < e.Trials; trial++ {
		r := rand.New(rand.NewSource(TrialSeed(e.Seed, trial)))
		data := randomBits(r, e.DataLen)
		word, err := e.Detector.Encode(data)
		if err != nil {
			return nil, fmt.Errorf("trial %d: encode: %w", trial, err)
		}
		ch := &Channel{r}
		noisy, flipped, err := ch.Flip(word, e.BER)
		if err != nil {
			return nil, fmt.Errorf("trial %d: channel: %w", trial, err)
		}
		passed, err := e.Detector.Check(noisy)
		if err != nil {
			return nil, fmt.Errorf("trial %d: check: %w", trial, err)
		}

		rep.Trials++
		rep.TotalFlips += len(flipped)
		rep.flips.Add(float64(len(flipped)))
		rep.observedBER.Xs = append(rep.observedBER.Xs, float64(len(flipped))/float64(len(word)))
		switch {
		case len(flipped) == 0:
			rep.Clean++
		case passed:
			rep.Missed++
		default:
			rep.Detected++
		}
		logger.Debug().
			Int("trial", trial).
			Int("flips", len(flipped)).
			Bool("passed", passed).
			Msg("trial finished")
	}
	logger.Info().
		Int("trials", rep.Trials).
		Int("clean", rep.Clean).
		Int("detected", rep.Detected).
		Int("missed", rep.Missed).
		Msg("experiment finished")
	return rep, nil
}

func randomBits(r *rand.Rand, n int) bitstring.BitString {
	b := make(bitstring.BitString, n)
	for i := range b {
		b[i] = byte(r.Intn(2))
	}
	return b
}
