package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/evanjt06/lrucache/cache"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	os.Exit(runMain(os.Args[1:], os.Stdout, os.Stderr))
}

// runMain parses args, runs the demo and returns the process exit code. The
// logger is flushed before returning so failures reach stderr.
func runMain(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lrucache", flag.ContinueOnError)
	fs.SetOutput(stderr)
	capacity := fs.Int("capacity", 2, "maximum number of cached entries")
	verbose := fs.Bool("v", false, "log every cache operation")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := zapcore.InfoLevel
	if *verbose {
		level = zapcore.DebugLevel
	}
	logger := cache.NewConsoleLogger(zapcore.Lock(zapcore.AddSync(stderr)), level)
	defer logger.Sync()

	if err := run(stdout, logger, *capacity); err != nil {
		logger.Error("demo failed", zap.Error(err))
		return 1
	}
	return 0
}

// run replays a short set/get sequence against a fresh cache and writes
// every step to w.
func run(w io.Writer, logger *zap.Logger, capacity int) error {
	c, err := cache.New[int, int](capacity, cache.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("create cache: %w", err)
	}
	defer c.Close()

	set := func(k, v int) {
		c.Set(k, v)
		fmt.Fprintf(w, "set %d=%d size=%d\n", k, v, c.Len())
	}
	get := func(k int) {
		if v, ok := c.Get(k); ok {
			fmt.Fprintf(w, "get %d -> %d\n", k, v)
			return
		}
		fmt.Fprintf(w, "get %d -> miss\n", k)
	}

	set(1, 1)
	set(2, 2)
	get(1)
	set(3, 3)
	get(2)
	set(4, 4)
	get(1)
	get(3)
	get(4)

	fmt.Fprintf(w, "keys (oldest first): %v\n", c.Keys())
	c.Log()

	return nil
}
