package config

import "strings"

const pathSeparator = "."

// SplitPath splits a dotted key into its ordered segments.
// "a.b.c" yields ["a", "b", "c"]; a key without dots yields a single segment.
func SplitPath(key string) []string {
	return strings.Split(key, pathSeparator)
}
