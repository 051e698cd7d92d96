// Package cache provides a small generic LRU cache.
//
//	runs := cache.New[string, []int](256)
//	glyphs := runs.GetOrCreate("hello", shape)
//
// A Cache is safe for concurrent use and must not be copied after creation.
package cache
