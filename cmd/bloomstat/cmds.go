package main

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/FastFilter/bloomfilter"
	flag "github.com/opencoff/pflag"
)

type command interface {
	run(args []string, opt *Option) error
}

var cmds = struct {
	sync.Mutex
	m map[string]command
}{
	m: make(map[string]command),
}

func registerCommand(nm string, cmd command) {
	cmds.Lock()
	defer cmds.Unlock()
	if _, ok := cmds.m[nm]; ok {
		panic(fmt.Sprintf("%s already registered", nm))
	}
	cmds.m[nm] = cmd
}

func runCommand(args []string, o *Option) error {
	nm := args[0]

	cmds.Lock()
	defer cmds.Unlock()
	cmd, ok := cmds.m[nm]
	if !ok {
		return fmt.Errorf("unknown command %s", nm)
	}

	return cmd.run(args, o)
}

// Option carries the global settings every command runs with.
type Option struct {
	log *slog.Logger
	in  io.Reader
	out io.Writer
}

func (o *Option) Printf(s string, v ...interface{}) {
	fmt.Fprintf(o.out, s, v...)
}

// newLogger returns a text or JSON slog logger on w; verbose enables debug records.
func newLogger(w io.Writer, verbose, json bool) *slog.Logger {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	hopt := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler = slog.NewTextHandler(w, hopt)
	if json {
		h = slog.NewJSONHandler(w, hopt)
	}
	return slog.New(h)
}

// sizing holds the -p/-n flags shared by every command.
type sizing struct {
	p float64
	n uint32
}

func (z *sizing) register(fs *flag.FlagSet) {
	fs.Float64VarP(&z.p, "probability", "p", 0.01, "Target false positive probability `P`")
	fs.Uint32VarP(&z.n, "elements", "n", 1000, "Expected number of elements `N`")
}

func (z *sizing) newFilter(opt *Option) (*bloomfilter.Filter, error) {
	f, err := bloomfilter.New(z.p, z.n)
	if err != nil {
		return nil, err
	}

	opt.log.Debug("filter created",
		"p", z.p, "n", z.n,
		"bits", f.BitArraySize(), "rounds", f.HashRounds(), "bytes", f.SizeBytes())
	return f, nil
}
