// Package roadsearch implements road lookup by name (C9): exact
// substring match, nearest-by-edit-distance, and nearest-by-fuzzy-
// distance, each reducing to a choice among the roads owned by a
// core.Graph.
package roadsearch
