//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"strings"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
	"github.com/rios0rios0/assemblystamp/internal/domain/repositories"
)

// StubCodecRepository implements repositories.CodecRepository with byte-for-byte
// conversions. Every encoding is supported unless listed in Unsupported.
type StubCodecRepository struct {
	DetectResult string
	Unsupported  []string

	DecodeErr error
	EncodeErr error

	EncodedWith []string
	BOMRequests []bool
}

var _ repositories.CodecRepository = (*StubCodecRepository)(nil)

func (c *StubCodecRepository) Detect(_ []byte) string {
	if c.DetectResult == "" {
		return "utf-8"
	}
	return c.DetectResult
}

func (c *StubCodecRepository) Canonical(encoding string) string {
	return strings.ToLower(strings.TrimSpace(encoding))
}

func (c *StubCodecRepository) Supports(encoding string) bool {
	for _, unsupported := range c.Unsupported {
		if c.Canonical(unsupported) == c.Canonical(encoding) {
			return false
		}
	}
	return true
}

func (c *StubCodecRepository) Decode(data []byte, encoding string) (string, error) {
	if c.DecodeErr != nil {
		return "", c.DecodeErr
	}
	if !c.Supports(encoding) {
		return "", fmt.Errorf("%w: %s", entities.ErrUnsupportedEncoding, encoding)
	}
	return string(data), nil
}

func (c *StubCodecRepository) Encode(text string, encoding string, writeBOM bool) ([]byte, error) {
	c.EncodedWith = append(c.EncodedWith, encoding)
	c.BOMRequests = append(c.BOMRequests, writeBOM)
	if c.EncodeErr != nil {
		return nil, c.EncodeErr
	}
	return []byte(text), nil
}
