// Package frame implements the columnar engine behind frame-kinded values:
// named series backed by immutable Apache Arrow arrays, multi-column frames,
// integer-to-u32 index casting and index-based row selection (take).
//
// The engine owns all Arrow access; callers only hold opaque *Frame and
// *Series handles and request new handles from cast/take. Engine errors are
// plain errors; the command layer wraps them into its labeled taxonomy.
package frame
