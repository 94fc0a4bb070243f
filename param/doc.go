// Package param implements the named-parameter surface shared by every
// runner and solver (spec §6): a typed bag keyed by flag name, each entry
// carrying a description, an optional default, a validity predicate, and
// an is-set state.
//
// Design, grounded on the teacher's tsp/types.go Options/DefaultOptions
// idiom and tsp/validate.go's staged validation:
//   - Bag is a plain map guarded by the same "populated before solve
//     starts, immutable during a run" discipline spec §5 assigns to
//     parameter registries — no synchronization is needed because a run
//     never mutates its own parameters.
//   - Validation is a closure supplied at Define time, not reflection:
//     mirrors validateOptionsStandalone's per-field checks, generalized
//     into one predicate per parameter instead of one function per
//     Options struct.
package param
