package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	flag "github.com/opencoff/pflag"
)

type benchCommand struct{}

func init() {
	registerCommand("bench", &benchCommand{})
}

func (c *benchCommand) run(args []string, opt *Option) error {
	var z sizing
	var probes int
	var seed uint64

	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	fs.SetOutput(os.Stdout)
	z.register(fs)
	fs.IntVarP(&probes, "probes", "q", 100000, "Probe the filter with `Q` items that were never added")
	fs.Uint64VarP(&seed, "seed", "s", 0, "Seed for the generated items; 0 picks one from the clock")
	fs.Usage = func() {
		fmt.Printf("Usage: bench [options]\n\noptions:\n")
		fs.PrintDefaults()
		os.Exit(0)
	}

	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	if probes <= 0 {
		return fmt.Errorf("bench: probes must be positive, saw %d", probes)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	f, err := z.newFilter(opt)
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	rnd := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	item := func(prefix string) string {
		return fmt.Sprintf("%s-%016x", prefix, rnd.Uint64())
	}

	start := time.Now()
	for i := uint32(0); i < f.ExpectedElements(); i++ {
		if err := f.Add(item("in")); err != nil {
			return fmt.Errorf("bench: %w", err)
		}
	}
	addTime := time.Since(start)

	start = time.Now()
	var matches int
	for i := 0; i < probes; i++ {
		ok, err := f.Contains(item("out"))
		if err != nil {
			return fmt.Errorf("bench: %w", err)
		}
		if ok {
			matches++
		}
	}
	probeTime := time.Since(start)

	opt.log.Debug("bench done", "seed", seed, "add", addTime, "probe", probeTime)

	measured := float64(matches) / float64(probes)
	opt.Printf("bits %d, rounds %d, %d items, %d probes\n",
		f.BitArraySize(), f.HashRounds(), f.Count(), probes)
	opt.Printf("target %.6f, estimated %.6f, measured %.6f (%d false positives)\n",
		f.FalsePositiveProbability(), f.EstimatedFalsePositiveRate(), measured, matches)
	return nil
}
