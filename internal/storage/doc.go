// Package storage reads and writes the tooling's file formats: YAML drive
// scenarios and JSONL cycle recordings. It also watches scenario files for
// changes. The engine itself never touches this package.
package storage
