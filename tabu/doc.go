// Package tabu implements the tabu-search runner family (spec §4.6): a
// bounded list of recently-applied moves is kept to forbid their inverse
// from being reapplied for a random tenure, except when an aspiration
// criterion overrides the prohibition.
//
// Grounded on original_source's src/helpers/TabuListItem.hh (a move
// paired with the iteration at which it leaves the list) and
// include/easylocal/runners/firstimprovementtabusearch.hh /
// sampletabusearch.hh (the base TabuSearch itself — best-improvement
// selection under the tabu predicate — is reconstructed from spec §4.6
// text plus these two subclasses' literal description of how they
// differ from it). The teacher (tsp/) has no tabu-list mechanism; the
// list bookkeeping below follows the teacher's plain-struct,
// explicit-index-arithmetic style (as in tsp/rng.go) rather than the
// original's doubly-linked-list-of-lists TabuListManager.
package tabu
