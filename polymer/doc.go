// Package polymer expands a polymer template under pair-insertion rules
// without ever materialising the polymer string.
//
// The state is a multiset of adjacent element pairs plus per-element
// totals. One step replaces every pair AB (with rule AB -> M) by AM and MB
// and adds one M per replaced pair, so a step costs O(|pairs|) no matter
// how long the polymer has grown.
package polymer
