package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/FastFilter/bloomfilter"
	flag "github.com/opencoff/pflag"
)

type checkCommand struct{}

func init() {
	registerCommand("check", &checkCommand{})
}

func (c *checkCommand) run(args []string, opt *Option) error {
	var z sizing

	fs := flag.NewFlagSet("check", flag.ExitOnError)
	fs.SetOutput(os.Stdout)
	z.register(fs)
	fs.Usage = func() {
		fmt.Printf(`Usage: check [options] WORDS [QUERY...]

where:
   WORDS    is a text file with one item per line; blank lines are skipped
   QUERY    is an item to test; with no QUERY, items are read from stdin

options:
`)
		fs.PrintDefaults()
		os.Exit(0)
	}

	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("check: %w", err)
	}

	args = fs.Args()
	if len(args) < 1 {
		return fmt.Errorf("check: insufficient args")
	}

	f, err := z.newFilter(opt)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	n, err := AddWordFile(f, args[0])
	if err != nil {
		return fmt.Errorf("check: can't add %s: %w", args[0], err)
	}
	opt.log.Info("words loaded", "file", args[0], "items", n,
		"bits_set", f.BitsSet(), "est_fp_rate", f.EstimatedFalsePositiveRate())

	if n > uint64(f.ExpectedElements()) {
		opt.log.Warn("filter overfilled", "items", n, "expected", f.ExpectedElements())
	}

	query := func(q string) error {
		ok, err := f.Contains(q)
		if err != nil {
			return fmt.Errorf("check: %q: %w", q, err)
		}
		ans := "no"
		if ok {
			ans = "maybe"
		}
		opt.Printf("%s\t%s\n", q, ans)
		return nil
	}

	if qs := args[1:]; len(qs) > 0 {
		for _, q := range qs {
			if err := query(q); err != nil {
				return err
			}
		}
		return nil
	}

	return eachLine(opt.in, query)
}

// AddWordFile adds every non-blank line of fn to f and returns the number
// of items added.
func AddWordFile(f *bloomfilter.Filter, fn string) (uint64, error) {
	fd, err := os.Open(fn)
	if err != nil {
		return 0, err
	}

	defer fd.Close()

	return AddWordStream(f, fd)
}

// AddWordStream is AddWordFile over an already open stream.
func AddWordStream(f *bloomfilter.Filter, fd io.Reader) (uint64, error) {
	var n uint64

	err := eachLine(fd, func(s string) error {
		if err := f.Add(s); err != nil {
			return err
		}
		n++
		return nil
	})
	return n, err
}

// eachLine calls fp with every line of fd that is not blank. Lines keep
// their surrounding whitespace.
func eachLine(fd io.Reader, fp func(s string) error) error {
	sc := bufio.NewScanner(fd)
	for sc.Scan() {
		s := sc.Text()
		if len(strings.TrimSpace(s)) == 0 {
			continue
		}
		if err := fp(s); err != nil {
			return err
		}
	}
	return sc.Err()
}
