package ring_test

import (
	"slices"
	"testing"

	"github.com/djdv/go-lru2/internal/ring"
)

func TestQueue(t *testing.T) {
	var (
		root     ring.Ring[string]
		elements = make(map[string]*ring.Ring[string])
	)
	if !root.Empty() || root.Front() != nil || root.Back() != nil {
		t.Fatal("zero value root is not an empty queue")
	}
	for _, name := range []string{"a", "b", "c", "d"} {
		element := &ring.Ring[string]{Metadata: ring.Metadata[string]{Name: name}}
		root.PushBack(element)
		elements[name] = element
	}
	checkNames(t, &root, "a", "b", "c", "d")
	if got := root.Len(); got != 5 {
		t.Fatalf("ring should hold the root and 4 elements but holds %d", got)
	}

	middle := elements["b"]
	middle.Detach()
	if middle.Root != nil || middle.Len() != 1 {
		t.Fatal("detached element is still linked")
	}
	checkNames(t, &root, "a", "c", "d")

	head := root.Front()
	head.Detach()
	root.PushBack(head)
	checkNames(t, &root, "c", "d", "a")
	if root.Back() != head || head.Root != &root {
		t.Fatal("element pushed back is not the tail")
	}

	for _, name := range []string{"c", "d", "a"} {
		elements[name].Detach()
	}
	if !root.Empty() {
		t.Fatal("queue not empty after detaching every element")
	}
}

func checkNames(tb testing.TB, root *ring.Ring[string], want ...string) {
	tb.Helper()
	if got := slices.Collect(root.Names()); !slices.Equal(got, want) {
		tb.Fatalf("unexpected queue order"+
			"\n\tgot: %v"+
			"\n\twant: %v",
			got, want)
	}
}
