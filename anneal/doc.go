// Package anneal implements the simulated-annealing runner family (spec
// §4.5): a candidate move is drawn at random each iteration and accepted
// unconditionally if improving, or with Metropolis probability
// exp(-delta/temperature) otherwise; the temperature falls on a cooling
// schedule until a stopping condition specific to each variant is met.
//
// Grounded on original_source/include/easylocal/runners/
// simulatedannealing*.hh (EasyLocal++'s runner family, retrieved as
// spec.md's original implementation): SimulatedAnnealing (min-temperature
// stop), SimulatedAnnealingEvaluationBased (neighbors-per-temperature
// derived from a fixed evaluation budget), SimulatedAnnealingWithReheating
// (periodic restart of the schedule), SimulatedAnnealingTimeBased
// (wall-clock-driven cooling), SimulatedAnnealingWithShiftingPenalty
// (adaptive hard-constraint weight), SimulatedAnnealingWithLearning
// (per-sub-neighborhood acceptance-reward bias). The teacher (tsp/) has no
// probabilistic-acceptance runner; the shared Metropolis/cooling
// mechanics below are new code built directly from that original source
// and spec §4.5, in the teacher's doc-comment and sentinel-error idiom.
package anneal
