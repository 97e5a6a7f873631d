// Package configview provides read-only, composable configuration lookups.
//
// A View maps a string key to an optional string value. Views compose two
// ways:
//
//   - Layered(a, b, ...) stacks views in precedence order: the first view
//     that reports a key wins, later views are fallbacks.
//   - Prefixed(v, "Commands:deploy:") scopes a view so that Get("env")
//     consults the underlying view for "Commands:deploy:env".
//
// Concrete sources cover the usual places configuration comes from:
//
//   - Map: an in-memory literal layer, used for tests and command-line
//     --set overrides.
//   - Env: process environment variables, with configuration paths
//     translated to environment form (uppercase, ':' and '.' to '_').
//   - File: a JSON/JSONC or YAML file flattened to ':'-joined key paths,
//     reloadable in place and optionally kept fresh by a Watcher.
//
// All views are safe for concurrent reads. File is additionally safe to
// Reload concurrently with reads; the value set is swapped atomically.
package configview
