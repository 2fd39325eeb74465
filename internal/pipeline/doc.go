// Package pipeline walks interval sets through a chain of engine Stages keyed
// by category name, from a start category to a terminal category.
//
// The chain is resolved and checked once in New; Run is read-only afterwards
// and safe to call from several goroutines. The per-hop contract is Mapper,
// which keeps the traversal swappable and testable.
package pipeline
