// Package observer implements the cross-cutting listener interface shared
// by every runner, kicker, and solver (spec §6, §9): a single-threaded,
// fire-and-forget dispatcher. No teacher file has an analogous hook — the
// teacher's tsp package runs synchronously to completion and returns a
// single result — so this package follows spec §6/§9 text directly,
// using nothing beyond the standard library (see DESIGN.md: no pub/sub
// library appears anywhere in the retrieved pack's domain-relevant repos,
// and spec §1 places REST/eventing exposure out of core scope).
package observer
