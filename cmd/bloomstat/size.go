package main

import (
	"fmt"
	"os"

	"github.com/FastFilter/bloomfilter"
	flag "github.com/opencoff/pflag"
)

type sizeCommand struct{}

func init() {
	registerCommand("size", &sizeCommand{})
}

func (c *sizeCommand) run(args []string, opt *Option) error {
	var z sizing

	fs := flag.NewFlagSet("size", flag.ExitOnError)
	fs.SetOutput(os.Stdout)
	z.register(fs)
	fs.Usage = func() {
		fmt.Printf("Usage: size [options]\n\noptions:\n")
		fs.PrintDefaults()
		os.Exit(0)
	}

	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("size: %w", err)
	}

	f, err := z.newFilter(opt)
	if err != nil {
		return fmt.Errorf("size: %w", err)
	}

	opt.Printf("elements           %d\n", f.ExpectedElements())
	opt.Printf("target fp rate     %g\n", f.FalsePositiveProbability())
	opt.Printf("bit array size     %d\n", f.BitArraySize())
	opt.Printf("hash rounds        %d\n", f.HashRounds())
	opt.Printf("bytes              %d\n", f.SizeBytes())
	opt.Printf("bits per element   %.2f\n", float64(f.BitArraySize())/float64(f.ExpectedElements()))
	opt.Printf("fp rate at n       %.6f\n", bloomfilter.FalsePositiveRate(f.BitArraySize(), f.HashRounds(), uint64(f.ExpectedElements())))
	return nil
}
