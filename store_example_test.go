package lru2_test

import (
	"fmt"

	lru2 "github.com/djdv/go-lru2"
)

func ExampleStore() {
	const (
		historyCapacity = 2
		cacheCapacity   = 2
	)
	store, err := lru2.New[int](historyCapacity, cacheCapacity)
	if err != nil {
		panic(err)
	}
	for _, key := range []int{1, 2, 1} {
		fmt.Printf("%d: %s\n", key, store.Access(key))
	}
	fmt.Println("History:", store.History())
	fmt.Println("Cache:", store.Cache())
	// Output:
	// 1: none
	// 2: none
	// 1: history
	// History: [2]
	// Cache: [1]
}

func ExampleStore_Positions() {
	store, err := lru2.New[string](3, 3)
	if err != nil {
		panic(err)
	}
	for _, key := range []string{"a", "b", "c", "b"} {
		store.Access(key)
	}
	for key, position := range store.Positions() {
		fmt.Println(key, position)
	}
	// Output:
	// a (0, -)
	// c (1, -)
	// b (-, 0)
}

func ExampleWithEvictionHandler() {
	logEviction := func(key string, from lru2.Queue) {
		fmt.Printf("evicted %q from %s\n", key, from)
	}
	store, err := lru2.New(1, 1, lru2.WithEvictionHandler(logEviction))
	if err != nil {
		panic(err)
	}
	for _, key := range []string{"scan", "hot", "hot", "next", "next"} {
		store.Access(key)
	}
	fmt.Println("Cache:", store.Cache())
	// Output:
	// evicted "scan" from history
	// evicted "hot" from cache
	// Cache: [next]
}
