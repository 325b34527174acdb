package cache_test

import (
	"fmt"

	"github.com/sewenew/cache"
)

func ExampleLRU() {
	const (
		capacity = 1024 // TODO(Anyone): Use contextual capacity.
		key      = "name"
		value    = 1
	)
	lru, err := cache.NewLRU[string, int](capacity)
	if err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	lru.Set(key, value)
	if got, ok := lru.Get(key); ok {
		fmt.Printf("%s: %d\n", key, got)
	}
	// Output:
	// name: 1
}

func ExampleSLRU() {
	slru, err := cache.NewSLRU[string, int](10, 0.2)
	if err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	slru.Set("hot", 1)
	slru.Get("hot") // second hit promotes to the protected segment
	if got, ok := slru.Get("hot"); ok {
		fmt.Printf("hot: %d\n", got)
	}
	// Output:
	// hot: 1
}

func ExampleLFU() {
	lfu, err := cache.NewLFU[string, int](2)
	if err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	lfu.Set("a", 1)
	lfu.Set("b", 2)
	lfu.Get("a")    // a is now the more frequent entry
	lfu.Set("c", 3) // evicts b
	_, ok := lfu.Get("b")
	fmt.Println("b resident:", ok)
	// Output:
	// b resident: false
}

func ExampleLIRS() {
	lirs, err := cache.NewLIRS[string, int](100, 0.05)
	if err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	lirs.Set("page", 42)
	if got, ok := lirs.Get("page"); ok {
		fmt.Printf("page: %d\n", got)
	}
	// Output:
	// page: 42
}

func makeValue() (int, error) {
	const (
		someValue = 1
		initError = false
	)
	if initError {
		return 0, fmt.Errorf(
			"could not initialize...",
		)
	}
	fmt.Println("initialized value:", someValue)
	return someValue, nil
}

func ExampleLRU_Load() {
	const (
		capacity = 1024 // TODO(Anyone): Use contextual capacity.
		key      = "load"
	)
	lru, err := cache.NewLRU[string, int](capacity)
	if err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	got, err := lru.Load(key, makeValue)
	if err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	fmt.Printf("%s: %d\n", key, got)
	if got, err = lru.Load(key, makeValue); err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	fmt.Printf("cached: %d\n", got)
	// Output:
	// initialized value: 1
	// load: 1
	// cached: 1
}
