// Package caves models an undirected cave system and counts the routes
// from "start" to "end" under two visit policies.
//
// A cave is big when its name is upper case and small otherwise. Big caves
// may be visited any number of times. Under SingleVisit every small cave is
// visited at most once; under OneRevisit a single small cave other than
// start may be visited twice.
//
// Enumeration is delegated to dfs.AllPaths over a core.Graph whose vertex
// Metadata records the cave size.
package caves
