package sources

import (
	"crypto/sha1" //nolint:gosec // non-cryptographic change detection
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Adda-Baaj/spacetraders-go/internal/domain"
	"github.com/goccy/go-json"
)

// Digest hashes the JSON encoding of payload. Struct fields encode in a fixed
// order, so equal payloads produce equal digests.
func Digest(payload any) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}
	sum := sha1.Sum(raw)
	return hex.EncodeToString(sum[:]), nil
}

func newSnapshot(src Source, subject string, payload any) (domain.Snapshot, error) {
	digest, err := Digest(payload)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("digest %s snapshot: %w", src.Kind, err)
	}
	return domain.Snapshot{
		SourceID:    src.ID,
		Kind:        src.Kind,
		Subject:     subject,
		Digest:      digest,
		Payload:     payload,
		CollectedAt: time.Now().UTC(),
	}, nil
}
