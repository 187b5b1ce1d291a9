// Package config provides a layered key-value configuration store. Values are
// loaded from an optional JSON or YAML file and then overridden by environment
// variables carrying a prefix (ML_ by default). Precedence: Environment
// variables > Config file. Nested values are addressed with dotted keys such
// as "database.pool.size".
//
// A Config is not safe for concurrent mutation; callers serialize access.
package config
