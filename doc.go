// Package yace constructs coresets for k-means clustering: small weighted
// subsets of a large point set that preserve, within provable bounds, the
// cost of any candidate clustering.
//
// # Quick Start
//
//	runner := yace.New(
//	    yace.WithStore(blobstore.NewLocalStore("./out")),
//	)
//
//	cs, err := runner.Run(ctx, yace.Config{
//	    Algorithm:   coreset.StrategySensitivity,
//	    Dataset:     dataset.NameCSV,
//	    DataPath:    "./points.csv",
//	    NumClusters: 10,
//	    CoresetSize: 1000,
//	    Seed:        42,
//	})
//
// The run parses the dataset, samples the coreset and, when a store is
// configured, writes a compressed results file plus a done.out completion
// marker.
//
// # Strategies
//
//   - uniform-sampling: distinct points drawn uniformly, each weighted N/T.
//   - sensitivity-sampling: points drawn with replacement proportional to an
//     upper bound on their cost share, weighted by inverse probability.
//   - group-sampling: points stratified into geometric sensitivity ranges
//     and sampled uniformly within each group.
//
// # Determinism
//
// Runs are reproducible: identical seed, dataset and parameters produce a
// bit-identical coreset.
package yace
