package vebset

/*

# van Emde Boas ordered set primitives for Forestrie (16-bit keys)

This package provides an ordered set over a fixed universe of 16-bit
keys (0..65535), implemented as a van Emde Boas tree. Find, Insert,
Erase, Min, Max, Successor and Predecessor all run in O(log log U) time,
U = 2^16, which in practice means at most three levels of recursion.

It mirrors the `go-merklelog/mmr` style:

- small, composable functions and methods
- index arithmetic on machine words where possible
- a burden of knowledge on the caller for hot paths

## Structure

A vEB tree recursively splits its key width in half. A subtree of width
w partitions its keys into 2^ceil(w/2) clusters of width floor(w/2),
keeping a summary subtree (itself a vEB structure over the cluster
indices) that records which clusters are non-empty. Once the width
drops to a single machine word (leafBits), the subtree degenerates to a
flat bitmap and every operation is a bit scan.

Two classic optimizations shape the layout:

 1. Min elision. Each internal node caches its min and max. The min is
    *only* cached; it is never inserted into a cluster. The first key
    inserted into an empty subtree therefore touches no children at
    all, and every recursive insert or erase descends into exactly one
    substructure, which is what bounds the running time.
 2. Lazy clusters. Cluster substructures are materialized on first
    insert and released as soon as they empty. A subtree holding one
    key is just a cached (min == max) pair.

## Invariants

- the summary's members are exactly the indices of non-empty clusters
- a materialized cluster is never empty
- min <= max whenever the subtree is non-empty; min == max iff it
  holds a single key

## Caller contract

The set is single-threaded value machinery: no locking, no atomics.
Each Set exclusively owns its structure; Clone produces a fully
independent deep copy and Swap exchanges two sets in O(1).

Iterators hold only the key they are positioned on, plus a reference to
the owning Set; every move is a fresh Successor or Predecessor query.
There is no structural iterator state to invalidate, so moving an
iterator after the set has been mutated is well defined: it answers
from the set's current contents. The owning Set must outlive its
iterators.

Unexported min/max accessors on substructures are undefined for empty
substructures. Callers inside the package check emptiness first; this
is deliberate and keeps the hot paths branch-light.

*/
