package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strconv"
	"strings"

	"github.com/djdv/go-lru2"
	"github.com/djdv/go-lru2/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

type (
	tracedStore interface {
		lru2.Policy[int]
		Positions() iter.Seq2[int, lru2.Position]
	}
	// tokens yields integers from a whitespace separated stream,
	// remembering the ordinal of each token for error reporting.
	tokens struct {
		scanner *bufio.Scanner
		ordinal int
	}
	tracer struct {
		store  tracedStore
		out    io.Writer
		log    *slog.Logger
		index  bool
		prompt io.Writer
	}
)

var errMissingCapacity = errors.New("input ended before all capacities were read")

const metricsName = "lru2trace"

func newTokens(input io.Reader) *tokens {
	scanner := bufio.NewScanner(input)
	scanner.Split(bufio.ScanWords)
	return &tokens{scanner: scanner}
}

// next returns the next integer, or io.EOF once the stream is drained.
func (t *tokens) next() (int, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		return 0, io.EOF
	}
	t.ordinal++
	token := t.scanner.Text()
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("token %d (%q) is not an integer: %w",
			t.ordinal, token, err)
	}
	return value, nil
}

// resolveCapacities fills in every capacity the config left unset
// from the head of the stream, history first.
func resolveCapacities(config *Config, input *tokens, prompt io.Writer) (history, cache int, err error) {
	history, cache = config.HistoryCapacity, config.CacheCapacity
	read := func(queue lru2.Queue) (int, error) {
		if prompt != nil {
			fmt.Fprintf(prompt, "%s capacity: ", queue)
		}
		capacity, err := input.next()
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: missing %s capacity", errMissingCapacity, queue)
		}
		return capacity, err
	}
	if !config.historyConfigured {
		if history, err = read(lru2.History); err != nil {
			return 0, 0, err
		}
	}
	if !config.cacheConfigured {
		if cache, err = read(lru2.Cache); err != nil {
			return 0, 0, err
		}
	}
	return history, cache, nil
}

func newStore(config *Config, history, cache int, logger *slog.Logger) (tracedStore, error) {
	logEviction := lru2.WithEvictionHandler(func(key int, from lru2.Queue) {
		logger.Debug("evicted", "key", key, "queue", from)
	})
	if config.Metrics {
		store, err := metrics.New(metricsName, history, cache, logEviction)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	store, err := lru2.New(history, cache, logEviction)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// run accesses every remaining key in order,
// printing the state of the store after each one.
func (t *tracer) run(input *tokens) (int, error) {
	if t.prompt != nil {
		fmt.Fprintln(t.prompt, "keys (whitespace separated):")
	}
	var step int
	for {
		key, err := input.next()
		if errors.Is(err, io.EOF) {
			return step, nil
		}
		if err != nil {
			return step, err
		}
		step++
		from := t.store.Access(key)
		t.log.Debug("accessed", "step", step, "key", key, "found_in", from)
		if err := t.print(step, key, from); err != nil {
			return step, err
		}
	}
}

func (t *tracer) print(step, key int, from lru2.Queue) error {
	var b strings.Builder
	fmt.Fprintf(&b, "access #%d: %d (%s)\n", step, key, outcome(from))
	if t.index {
		for indexed, position := range t.store.Positions() {
			fmt.Fprintf(&b, "  %d %s\n", indexed, position)
		}
	}
	fmt.Fprintf(&b, "History: %v\n", t.store.History())
	fmt.Fprintf(&b, "Cache: %v\n\n", t.store.Cache())
	_, err := io.WriteString(t.out, b.String())
	return err
}

func outcome(from lru2.Queue) string {
	switch from {
	case lru2.History:
		return "promoted"
	case lru2.Cache:
		return "hit"
	default:
		return "admitted"
	}
}

// writeMetrics encodes the store's metric families
// in the Prometheus text exposition format.
func writeMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	encoder := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), "lru2_") {
			continue
		}
		if err := encoder.Encode(family); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	return nil
}
