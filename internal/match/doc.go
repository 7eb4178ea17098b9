// Package match provides name normalization, Levenshtein distance calculation
// and ranked "did you mean" suggestions for node name lookups.
//
// Key functions:
//   - NormalizeName: folds a node name for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks candidate names by similarity to a missing one
package match
