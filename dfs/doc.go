// Package dfs enumerates start→target walks in a core.Graph by depth-first
// search with backtracking.
//
// What:
//
//   - AllPaths counts (and optionally collects) every walk from a start
//     vertex to a target vertex. A walk ends the moment it reaches the
//     target; it never continues through it.
//   - Which vertices a walk may step onto is decided by an admission
//     predicate (WithAdmit) that sees the current Walk: the path so far
//     and a per-vertex visit count. The default admits only vertices not
//     yet on the path, giving simple paths.
//   - WithTracked marks the vertices whose revisits are counted by
//     Walk.Repeats, which lets a predicate express "at most one vertex of
//     this kind may appear twice".
//
// How:
//
//   - One mutable path and one visit multiset are shared by the whole
//     search; each step pushes before recursing and pops after, so memory
//     stays O(depth) regardless of the number of walks.
//   - Neighbour lists are fetched once per vertex and cached; core.Graph
//     returns them sorted, so enumeration order is deterministic.
//
// Termination is the caller's responsibility: a predicate that admits
// unbounded revisits along a cycle never finishes. WithMaxDepth bounds the
// walk length as a safety net.
//
// Errors:
//
//   - ErrGraphNil            if g is nil.
//   - ErrStartVertexNotFound if the start vertex is missing.
//   - ErrTargetNotFound      if the target vertex is missing.
//   - context.Canceled       if the context is done.
//   - any error returned by the OnPath hook.
package dfs
