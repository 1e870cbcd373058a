package pipeline

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// Job IDs are ULIDs: a 48-bit millisecond timestamp followed by 80
// random bits, rendered as 26 Crockford Base32 characters. Generated
// locally so IDs sort by creation time without pulling in a dependency.

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var (
	ulidMu  sync.Mutex
	ulidMS  uint64
	ulidSeq uint16
)

func generateULID() string {
	ulidMu.Lock()
	defer ulidMu.Unlock()

	ms := uint64(time.Now().UnixMilli())
	if ms == ulidMS {
		ulidSeq++
	} else {
		ulidMS = ms
		ulidSeq = 0
	}

	var b [16]byte
	binary.BigEndian.PutUint16(b[0:2], uint16(ms>>32))
	binary.BigEndian.PutUint32(b[2:6], uint32(ms))
	rand.Read(b[6:])
	// A counter in the leading random bytes keeps IDs minted within
	// the same millisecond distinct and ordered.
	binary.BigEndian.PutUint16(b[6:8], ulidSeq)

	out := make([]byte, 0, 26)
	out = appendCrockford(out, b[:6], 10)
	out = appendCrockford(out, b[6:], 16)
	return string(out)
}

// appendCrockford encodes src as exactly n Base32 characters, MSB
// first. When n*5 exceeds the bit count, the leading character absorbs
// the shortfall as implied zero bits (the timestamp's 48 bits land in
// 10 characters this way).
func appendCrockford(dst []byte, src []byte, n int) []byte {
	pad := uint(n*5) - uint(len(src)*8)
	for i := 0; i < n; i++ {
		var v byte
		for j := 0; j < 5; j++ {
			bit := uint(i*5 + j)
			if bit < pad {
				continue
			}
			pos := bit - pad
			if src[pos/8]&(1<<(7-pos%8)) != 0 {
				v |= 1 << (4 - j)
			}
		}
		dst = append(dst, crockford[v])
	}
	return dst
}
