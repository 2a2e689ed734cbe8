// Package trainer implements the population-based evolutionary search that
// fits an mlp.MLP scorer against a set of training instances.
//
// Train runs a strictly sequential outer generational loop — sort, elites,
// mutants, offspring — while each individual's fitness evaluation is
// data-parallel across instances. Selection and crossover stay on the
// calling goroutine so the random stream that drives them is never shared,
// keeping a fixed seed reproducible end to end.
package trainer
