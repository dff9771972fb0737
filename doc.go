// Package roadnet is an interactive road-network pathfinding and
// street-name search engine.
//
// Everything is organized by concern:
//
//	heap/        — generic indexed binary min-heap backing the planners
//	core/        — Graph, Vertex, Edge, Road arena and accident state
//	viewer/      — outbound hook interface for visualization sinks
//	pathfind/    — BFS, Greedy Best-First, Dijkstra, A*, Dijkstra-by-weight
//	simulate/    — re-planning loops driving a commuter as weights drift
//	strmatch/    — naive, Boyer-Moore and Knuth-Morris-Pratt exact search
//	editdist/    — Hamming, Levenshtein and Damerau-Levenshtein distances
//	roadsearch/  — road lookup by name, composing strmatch and editdist
//
// A Graph owns its vertices, edges and roads as an arena: cross
// references between them are plain pointers, never re-derived by ID
// lookup. Accidents suspend a vertex or an edge by moving it out of the
// active adjacency sets the path engine reads, without touching
// topology; Regenerate then re-rolls edge weights by a bounded random
// walk so a re-planning loop in simulate has something to react to.
package roadnet
