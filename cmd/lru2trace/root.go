package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func newRootCommand() *cobra.Command {
	var (
		configPath string
		v          = viper.New()
	)
	cmd := &cobra.Command{
		Use:   "lru2trace [file...]",
		Short: "Trace an LRU-2 store over a sequence of integer keys",
		Long: `lru2trace accesses every integer key read from the given files
(or standard input) in order, and prints the history and cache queues
after each access.

Capacities that are not set through --history/--cache, LRU2_* environment
variables or a config file are read from the head of the input stream.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(v, configPath)
			if err != nil {
				return err
			}
			input, closeInput, err := openInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			defer closeInput()
			return runTrace(config, input,
				promptWriter(cmd.InOrStdin(), args, cmd.ErrOrStderr()),
				cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "configuration file path (toml, yaml or json)")
	flags.Int("history", 0, "history queue capacity")
	flags.Int("cache", 0, "cache queue capacity")
	flags.BoolP("index", "i", false, "print the position index after each access")
	flags.BoolP("metrics", "m", false, "print Prometheus metrics after the trace")
	flags.BoolP("debug", "d", false, "enable debug logging")
	if err := bindFlags(v, flags); err != nil {
		panic(err)
	}
	return cmd
}

func runTrace(config *Config, input io.Reader, prompt, stdout, stderr io.Writer) error {
	var (
		logger = newLogger(stderr, config.Debug)
		stream = newTokens(input)
	)
	history, cache, err := resolveCapacities(config, stream, prompt)
	if err != nil {
		return err
	}
	store, err := newStore(config, history, cache, logger)
	if err != nil {
		return err
	}
	logger.Debug("store created",
		"history_capacity", history, "cache_capacity", cache)
	trace := &tracer{
		store:  store,
		out:    stdout,
		log:    logger,
		index:  config.Index,
		prompt: prompt,
	}
	steps, err := trace.run(stream)
	if err != nil {
		return fmt.Errorf("trace stopped after %d accesses: %w", steps, err)
	}
	logger.Debug("trace complete", "accesses", steps)
	if config.Metrics {
		return writeMetrics(stdout, prometheus.DefaultGatherer)
	}
	return nil
}

// openInputs concatenates the named files,
// or returns stdin if there are none.
func openInputs(stdin io.Reader, paths []string) (io.Reader, func(), error) {
	if len(paths) == 0 {
		return stdin, func() {}, nil
	}
	var (
		files    = make([]*os.File, 0, len(paths))
		readers  = make([]io.Reader, 0, len(paths)*2)
		closeAll = func() {
			for _, file := range files {
				file.Close()
			}
		}
	)
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to open input: %w", err)
		}
		files = append(files, file)
		// Keep the last token of one file apart from the first of the next.
		readers = append(readers, file, strings.NewReader("\n"))
	}
	return io.MultiReader(readers...), closeAll, nil
}

// promptWriter returns where interactive prompts go,
// or nil unless keys are typed into a terminal.
func promptWriter(stdin io.Reader, paths []string, stderr io.Writer) io.Writer {
	if len(paths) != 0 {
		return nil
	}
	file, ok := stdin.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return nil
	}
	return stderr
}
