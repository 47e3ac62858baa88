package content

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	contentIdPrefix = "Qm"
	contentIdLength = 46
)

// Store keeps certificate files addressed by content id.
type Store interface {
	Put(ctx context.Context, data []byte) (string, error)
	Get(ctx context.Context, contentId string) ([]byte, error)
	Close() error
}

// ComputeContentId derives a CID-shaped id from the sha256 of data.
func ComputeContentId(data []byte) string {
	sum := sha256.Sum256(data)
	return (contentIdPrefix + hex.EncodeToString(sum[:]))[:contentIdLength]
}

func IsValidContentId(contentId string) bool {
	return len(contentId) == contentIdLength && strings.HasPrefix(contentId, contentIdPrefix)
}
