// Package graph implements the undirected multigraph at the heart of the
// Czech–Havas–Majewski minimal-perfect-hash construction.
//
// A Graph has a fixed vertex count N, fixed up front by the caller. Edges
// are added with Connect(u, v, edgeValue); each call records the edge at
// both endpoints, and parallel edges between the same pair of vertices are
// preserved rather than collapsed.
//
// AssignVertexValues runs a single explicit-stack depth-first search that
// both detects cycles and assigns vertex values in one pass: if the graph
// is acyclic, every vertex ends up with a value in [0, N) such that, for
// every edge (u, v, e) with u != v, vertex_values[u] + vertex_values[v] ==
// e (mod N). If the graph contains a cycle (including a self-loop), the
// call returns false and the vertex values must be treated as garbage.
//
// Complexity: O(N + E) time and space, where E is the number of Connect
// calls. A Graph is built fresh for every trial of the generator and
// discarded immediately on failure (see the generator package); it is not
// safe for concurrent use and carries no synchronization, since nothing in
// this module ever shares one across goroutines.
package graph
