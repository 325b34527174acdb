// Package cache implements bounded in-memory key/value caches with four
// classical replacement policies: [LRU], [LFU], [SLRU], and [LIRS].
//
// Every cache is constructed with a fixed entry capacity and offers the
// same surface: Set, Get, Del (plus Load and Len). All operations run in
// amortised constant time. Caches are plain single-goroutine data
// structures; Get reorders internal lists, so concurrent access of any
// kind must be guarded by the caller.
//
// The following is a summary (intended for maintainers) of the policies
// and the vocabulary shared by their implementations.
//
// Glossary and invariants:
//
//   - LRU / MRU: the least / most recently used end of a recency list.
//
//     New and touched entries move to the MRU end; eviction takes the
//     LRU end.
//
//   - Probation / protected ([SLRU])
//
//     The two segments of a segmented LRU. New entries enter probation;
//     a second hit promotes to protected; protected overflow demotes
//     its LRU entry back into probation.
//
//   - Frequency bucket ([LFU])
//
//     A node of the frequency list holding all entries with the same
//     access count, LRU-ordered within the bucket. Bucket frequencies
//     are strictly increasing along the list and empty buckets are
//     removed eagerly, so the first bucket is always the eviction
//     candidate.
//
//   - LIR / HIR ([LIRS])
//
//     Low / High Inter-reference Recency. LIR entries have the shortest
//     observed reuse distance and are protected from eviction.
//
//   - Stack S / list Q ([LIRS])
//
//     The two internal LRU-ordered structures of LIRS. S tracks recency
//     across LIR, resident HIR, and non-resident HIR entries; Q holds
//     the resident HIR values.
//
//   - HIR non-resident
//
//     A metadata-only shadow in S for a key whose value was evicted
//     from Q. A hit on it is still a miss; a Set resurrects it as LIR.
//
//   - Bottom pruning ([LIRS])
//
//     Get hits and Sets on keys in S, and every Del, end by dropping
//     non-LIR tail entries (with their Q values, when resident), so the
//     oldest element of S is LIR afterwards (or S is empty). Admitting a
//     new key, or accessing a value held only in Q, pushes onto S without
//     pruning; once deletions have removed every LIR while Q still holds
//     values, such pushes can leave a non-LIR entry at the bottom of S
//     until the next pruning operation.
//
// The LFU implementation follows the constant-time frequency-list
// construction from the [O(1) LFU paper]. The LIRS implementation
// follows the [LIRS paper]; its stack/list vocabulary is kept so the
// code can be read against the paper.
//
// [O(1) LFU paper]: http://dhruvbird.com/lfu.pdf
// [LIRS paper]: http://web.cse.ohio-state.edu/hpcs/WWW/HTML/publications/papers/TR-02-6.pdf
package cache
