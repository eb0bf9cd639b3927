package main

import (
	"bytes"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/joshuapare/pathkit/arena"
	"github.com/joshuapare/pathkit/internal/mmfile"
	"github.com/joshuapare/pathkit/internal/pathtext"
)

// ingestResult accumulates input-side measurements for the dedup report.
type ingestResult struct {
	Paths      int // path lines ingested
	InputBytes int // bytes of path text seen (excluding newlines)
}

func newAllocator() *arena.Allocator {
	return arena.New(
		arena.WithSeparator(separator),
		arena.WithCacheSize(cacheSize),
	)
}

// ingest feeds every path line from the named inputs (or stdin when none
// are given) into the allocator.
func ingest(a *arena.Allocator, args []string) (ingestResult, error) {
	var res ingestResult
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := ingestOne(a, arg, &res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func ingestOne(a *arena.Allocator, arg string, res *ingestResult) error {
	r, cleanup, err := openInput(arg)
	if err != nil {
		return err
	}
	defer cleanup()

	return pathtext.ScanLines(r, encoding, func(line string) error {
		a.FromString(line)
		res.Paths++
		res.InputBytes += len(line)
		return nil
	})
}

// openInput maps files into memory; "-" means stdin.
func openInput(arg string) (io.Reader, func() error, error) {
	if arg == "-" {
		return os.Stdin, func() error { return nil }, nil
	}
	data, cleanup, err := mmfile.Map(arg)
	if err != nil {
		return nil, nil, err
	}
	logrus.WithFields(logrus.Fields{
		"file":  arg,
		"bytes": len(data),
	}).Debug("mapped input")
	return bytes.NewReader(data), cleanup, nil
}
