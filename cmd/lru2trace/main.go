// Command lru2trace prints the queues of an LRU-2 store
// after each access of a sequence of integer keys.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("trace failed", "error", err)
		os.Exit(1)
	}
}
