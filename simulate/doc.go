// Package simulate implements the re-planning loops (C5) that drive a
// virtual commuter along a continuously re-planned shortest path as edge
// weights drift: edge-step advances one hop per plan, road-step advances
// to the next road transition.
//
// Both loops plan with pathfind.DijkstraByWeight and regenerate weights
// with core.Graph.Regenerate between iterations; neither mutates graph
// topology or accident state.
package simulate
