//go:build !lru2_debug

package lru2

const debugging = false

func assert(bool, string) {}
