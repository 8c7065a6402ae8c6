package slots

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/osse101/SlotReveal_Go/internal/domain"
)

// Source supplies uniformly distributed 32-bit integers
type Source interface {
	NextUint32() (uint32, error)
}

// CryptoSource reads big-endian 32-bit integers from a cryptographically strong reader
type CryptoSource struct {
	reader io.Reader
}

// NewCryptoSource returns a source backed by crypto/rand
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{reader: crand.Reader}
}

// NextUint32 returns the next random value in [0, 2^32)
func (s *CryptoSource) NextUint32() (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(s.reader, buf[:]); err != nil {
		return 0, fmt.Errorf(ErrMsgReadRandomFailed, err)
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// ParseDrawMode converts a config string into a DrawMode
func ParseDrawMode(s string) (DrawMode, error) {
	switch DrawMode(s) {
	case DrawModeModulo, "":
		return DrawModeModulo, nil
	case DrawModeRejection:
		return DrawModeRejection, nil
	default:
		return "", fmt.Errorf(ErrMsgUnknownDrawMode, s)
	}
}

// drawIndex reduces samples from src to an index in [0, n)
func drawIndex(src Source, n int, mode DrawMode) (int, error) {
	size := uint64(n)

	if mode != DrawModeRejection {
		v, err := src.NextUint32()
		if err != nil {
			return 0, err
		}
		return int(uint64(v) % size), nil
	}

	limit := sourceRange - sourceRange%size
	for attempt := 0; attempt < MaxRejectionAttempts; attempt++ {
		v, err := src.NextUint32()
		if err != nil {
			return 0, err
		}
		if uint64(v) < limit {
			return int(uint64(v) % size), nil
		}
	}
	return 0, domain.ErrRandomSourceExhausted
}
