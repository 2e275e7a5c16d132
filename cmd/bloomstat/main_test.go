package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/FastFilter/bloomfilter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyw = []string{
	"expectoration",
	"mizzenmastman",
	"stockfather",
	"pictorialness",
	"villainous",
	"unquality",
	"sized",
	"Tarahumari",
	"endocrinotherapy",
	"quicksandy",
}

func newTestOption(in string) (*Option, *bytes.Buffer, *bytes.Buffer) {
	var out, logs bytes.Buffer
	opt := &Option{
		log: newLogger(&logs, true, true),
		in:  strings.NewReader(in),
		out: &out,
	}
	return opt, &out, &logs
}

func writeWords(t *testing.T, lines ...string) string {
	fn := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(fn, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return fn
}

func TestUnknownCommand(t *testing.T) {
	opt, _, _ := newTestOption("")
	err := runCommand([]string{"frobnicate"}, opt)
	assert.EqualError(t, err, "unknown command frobnicate")
}

func TestRegisterTwicePanics(t *testing.T) {
	assert.Panics(t, func() { registerCommand("size", &sizeCommand{}) })
}

func TestSize(t *testing.T) {
	opt, out, logs := newTestOption("")
	require.NoError(t, runCommand([]string{"size", "-p", "0.01", "-n", "1000"}, opt))

	s := out.String()
	assert.Contains(t, s, "bit array size     6644\n")
	assert.Contains(t, s, "hash rounds        6\n")
	assert.Contains(t, s, "bytes              832\n")
	assert.Contains(t, logs.String(), `"msg":"filter created"`)
}

func TestSizeRejectsDegenerate(t *testing.T) {
	opt, _, _ := newTestOption("")
	err := runCommand([]string{"size", "-p", "0.6", "-n", "10"}, opt)
	assert.ErrorIs(t, err, bloomfilter.ErrDegenerateHashCount)

	err = runCommand([]string{"size", "-n", "0"}, opt)
	assert.ErrorIs(t, err, bloomfilter.ErrInvalidElementCount)
}

func TestCheckArgs(t *testing.T) {
	fn := writeWords(t, append([]string{"", "   "}, keyw...)...)
	opt, out, logs := newTestOption("")

	err := runCommand([]string{"check", "-n", "100", fn, "stockfather", "sized"}, opt)
	require.NoError(t, err)
	assert.Equal(t, "stockfather\tmaybe\nsized\tmaybe\n", out.String())
	assert.Contains(t, logs.String(), `"items":10`)
}

func TestCheckStdin(t *testing.T) {
	fn := writeWords(t, keyw...)
	opt, out, _ := newTestOption("villainous\n\nTarahumari\n")

	require.NoError(t, runCommand([]string{"check", fn}, opt))
	assert.Equal(t, "villainous\tmaybe\nTarahumari\tmaybe\n", out.String())
}

func TestCheckAbsent(t *testing.T) {
	fn := writeWords(t, "alpha", "beta", "gamma")
	opt, out, _ := newTestOption("")

	require.NoError(t, runCommand([]string{"check", "-p", "0.01", "-n", "1000", fn, "delta"}, opt))
	assert.Equal(t, "delta\tno\n", out.String())
}

func TestCheckErrors(t *testing.T) {
	opt, _, _ := newTestOption("")
	assert.EqualError(t, runCommand([]string{"check"}, opt), "check: insufficient args")

	err := runCommand([]string{"check", filepath.Join(t.TempDir(), "missing.txt")}, opt)
	assert.ErrorIs(t, err, os.ErrNotExist)

	fn := writeWords(t, keyw...)
	err = runCommand([]string{"check", fn, "  "}, opt)
	assert.ErrorIs(t, err, bloomfilter.ErrBlankInput)
}

func TestCheckOverfillWarns(t *testing.T) {
	fn := writeWords(t, keyw...)
	opt, _, logs := newTestOption("")

	require.NoError(t, runCommand([]string{"check", "-n", "2", fn, "sized"}, opt))
	assert.Contains(t, logs.String(), `"msg":"filter overfilled"`)
}

func TestAddWordStream(t *testing.T) {
	f, err := bloomfilter.New(0.01, 100)
	require.NoError(t, err)

	n, err := AddWordStream(f, strings.NewReader(strings.Join(keyw, "\n")))
	require.NoError(t, err)
	assert.Equal(t, uint64(len(keyw)), n)
	assert.Equal(t, uint64(len(keyw)), f.Count())

	for _, w := range keyw {
		ok, err := f.Contains(w)
		require.NoError(t, err)
		assert.True(t, ok, w)
	}
}

func TestBench(t *testing.T) {
	opt, out, _ := newTestOption("")
	err := runCommand([]string{"bench", "-p", "0.1", "-n", "2000", "-q", "20000", "-s", "42"}, opt)
	require.NoError(t, err)

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "bits 6644, rounds 3, 2000 items, 20000 probes\n"), s)
	assert.Contains(t, s, "target 0.100000")

	// same seed, same result
	opt2, out2, _ := newTestOption("")
	require.NoError(t, runCommand([]string{"bench", "-p", "0.1", "-n", "2000", "-q", "20000", "-s", "42"}, opt2))
	assert.Equal(t, s, out2.String())
}

func TestBenchRejectsProbes(t *testing.T) {
	opt, _, _ := newTestOption("")
	err := runCommand([]string{"bench", "-q", "0"}, opt)
	assert.EqualError(t, err, "bench: probes must be positive, saw 0")
}

func TestTextLogger(t *testing.T) {
	var b bytes.Buffer
	l := newLogger(&b, false, false)
	l.Debug("hidden")
	l.Info("shown", "k", 3)
	assert.NotContains(t, b.String(), "hidden")
	assert.Contains(t, b.String(), "msg=shown k=3")

	newLogger(io.Discard, true, false).Debug("discarded")
}
