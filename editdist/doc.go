// Package editdist implements the edit-distance family (C7) and their
// Sellers fuzzy variants (C8): Hamming, Levenshtein, restricted
// Damerau-Levenshtein, and full Damerau-Levenshtein, each between bytes.
//
// Every distance here is directional in the editing sense described by
// its recurrence (insertions/removals/substitutions/transpositions
// happen in the first argument while the second is held static), but
// Levenshtein and restricted-DL both happen to be symmetric functions.
package editdist
