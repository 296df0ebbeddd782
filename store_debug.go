//go:build lru2_debug

package lru2

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
