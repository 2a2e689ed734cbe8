// SPDX-License-Identifier: MIT
package node

import "math"

// FeatureCount returns the feature-vector length produced for the given
// feature configuration: 9 for config 1, 10 for 2, 12 for 3, 14 for 4. Any
// other value is treated as configuration 1 (9), matching the original's
// "default: num_features = 9" (original_source/src/main.cpp).
func FeatureCount(featureConfig int) int {
	switch featureConfig {
	case 2:
		return 10
	case 3:
		return 12
	case 4:
		return 14
	default:
		return 9
	}
}

// Features computes and standardizes the feature vector for the node at id,
// storing it on the node and also returning it. featureConfig selects which
// cumulative extension set to append to the nine base features (eight
// summary statistics plus depth).
func (a *Arena) Features(id ID, featureConfig int) []float64 {
	inst := a.inst
	n := &a.nodes[id]

	pL := make([]float64, inst.M)
	for i := 0; i < inst.M; i++ {
		pL[i] = float64(n.CursorS[i]) / float64(len(inst.S[i]))
	}
	rL := make([]float64, inst.R)
	for k := 0; k < inst.R; k++ {
		rL[k] = float64(n.CursorR[k]) / float64(len(inst.Anti[k]))
	}

	pMax, pMin, pMean, pStd := stats(pL)
	rMax, rMin, rMean, rStd := stats(rL)

	features := make([]float64, 0, FeatureCount(featureConfig))
	features = append(features, pMax, pMin, pMean, pStd, rMax, rMin, rMean, rStd, float64(n.Depth))

	if featureConfig >= 2 {
		features = append(features, float64(inst.Sigma))
	}
	if featureConfig >= 3 {
		features = append(features, float64(inst.M), float64(inst.R))
	}
	if featureConfig == 4 {
		features = append(features, float64(len(inst.S[0])), float64(len(inst.Anti[0])))
	}

	standardize(features)
	n.Features = features
	return features
}

// stats returns max, min, mean, and population standard deviation of vs.
func stats(vs []float64) (max, min, mean, std float64) {
	if len(vs) == 0 {
		// Zero input strings or zero anti-patterns: the corresponding aggregate
		// carries no signal, so it is reported as 0 rather than panicking on
		// an empty reduction.
		return 0, 0, 0, 0
	}
	max, min = vs[0], vs[0]
	sum := 0.0
	for _, v := range vs {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
		sum += v
	}
	mean = sum / float64(len(vs))

	sumSq := 0.0
	for _, v := range vs {
		d := v - mean
		sumSq += d * d
	}
	std = math.Sqrt(sumSq / float64(len(vs)))
	return
}

// standardize subtracts the mean of features and divides by its standard
// deviation, in place. When the standard deviation is exactly zero the
// divide is skipped rather than producing NaN/Inf — see DESIGN.md Open
// Question 1.
func standardize(features []float64) {
	_, _, mean, std := stats(features)
	for i, f := range features {
		if std == 0 {
			features[i] = f - mean
		} else {
			features[i] = (f - mean) / std
		}
	}
}
