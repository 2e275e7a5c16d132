// bloomstat -- size, fill and probe Bloom filters from the command line
//
// bloomstat is a diagnostic tool for the bloomfilter package. It prints the
// derived sizing for a (p, n) pair, answers membership queries against a
// filter built from a word list, and measures the false-positive rate a
// filter actually reaches against the rate it was configured for.

package main

import (
	"fmt"
	"os"

	flag "github.com/opencoff/pflag"
)

func main() {
	var verbose, json bool

	usage := fmt.Sprintf(
		`%s - size, fill and probe Bloom filters

Usage: %s [global-options] CMD CMD-ARGS...

CMD is an operation to be performed and CMD-ARGS are operation specific
arguments. The list of supported operations are:

  size  [options]                  -- Show derived bit-array size and hash rounds
  check [options] WORDS [QUERY...] -- Load WORDS and test each QUERY (or stdin)
  bench [options]                  -- Measure the false positive rate

Options:
`, os.Args[0], os.Args[0])

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(os.Stdout)
	fs.BoolVarP(&verbose, "verbose", "V", false, "Show verbose output")
	fs.BoolVarP(&json, "json", "", false, "Emit logs as JSON")
	fs.Usage = func() {
		fmt.Print(usage)
		fs.PrintDefaults()
		os.Exit(0)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		die("%s", err)
	}

	args := fs.Args()
	if len(args) < 1 {
		fmt.Print(usage)
		fs.PrintDefaults()
		os.Exit(0)
	}

	opt := &Option{
		log: newLogger(os.Stderr, verbose, json),
		in:  os.Stdin,
		out: os.Stdout,
	}

	if err := runCommand(args, opt); err != nil {
		die("%s", err)
	}
}

// die with error
func die(f string, v ...interface{}) {
	warn(f, v...)
	os.Exit(1)
}

func warn(f string, v ...interface{}) {
	z := fmt.Sprintf("%s: %s", os.Args[0], f)
	s := fmt.Sprintf(z, v...)
	if n := len(s); s[n-1] != '\n' {
		s += "\n"
	}

	os.Stderr.WriteString(s)
	os.Stderr.Sync()
}
