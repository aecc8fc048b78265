package collections

import (
	"encoding/binary"
	"hash/maphash"

	"golang.org/x/crypto/blake2b"
)

var hashSeed = maphash.MakeSeed()

// SequenceEqual reports whether a and b hold equal items in the same order.
//
// Unlike [arrayslice.ArraySlice.Equal], which compares identity, this
// compares contents: two slices over different arrays with the same items
// are sequence-equal. A default slice is sequence-equal to any empty one.
func SequenceEqual[T comparable](a, b Enumerable[T]) bool {
	return SequenceEqualFunc(a, b, func(x, y T) bool { return x == y })
}

// SequenceEqualFunc is [SequenceEqual] with a caller-supplied item equality.
func SequenceEqualFunc[T, U any](a Enumerable[T], b Enumerable[U], eq func(T, U) bool) bool {
	n := a.Len()
	if n != b.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		x, err := a.At(i)
		if err != nil {
			return false
		}
		y, err := b.At(i)
		if err != nil {
			return false
		}
		if !eq(x, y) {
			return false
		}
	}
	return true
}

// HashCode returns an order-sensitive hash of the items of s. Sequences for
// which [SequenceEqual] holds hash equal within one process; the value is
// not stable across processes (see [Digest] for that).
func HashCode[T comparable](s Enumerable[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(s.Len()))
	h.Write(n[:])
	for _, v := range s.All() {
		maphash.WriteComparable(&h, v)
	}
	return h.Sum64()
}

// Digest returns the BLAKE2b-256 digest of the items of s, each converted
// with encode and length-prefixed so that item boundaries are part of the
// digest. The result is stable across processes and machines, which makes
// it suitable as a cache key or content fingerprint.
//
//	d := collections.Digest(s, func(v string) []byte { return []byte(v) })
func Digest[T any](s Enumerable[T], encode func(T) []byte) [blake2b.Size256]byte {
	h, _ := blake2b.New256(nil) // only fails for keys longer than 64 bytes
	var prefix [binary.MaxVarintLen64]byte
	for _, v := range s.All() {
		b := encode(v)
		h.Write(prefix[:binary.PutUvarint(prefix[:], uint64(len(b)))])
		h.Write(b)
	}
	var out [blake2b.Size256]byte
	copy(out[:], h.Sum(nil))
	return out
}
