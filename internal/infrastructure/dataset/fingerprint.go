package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	"github.com/scentlens/backend/internal/domain"
)

// fileFingerprint hashes a file's absolute path, size and modification time.
// extra values distinguish different readings of the same file.
func fileFingerprint(path string, extra ...string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}

	digest := xxhash.New()
	fmt.Fprintf(digest, "%s\x00%d\x00%d", abs, info.Size(), info.ModTime().UnixNano())
	for _, e := range extra {
		fmt.Fprintf(digest, "\x00%s", e)
	}
	return fmt.Sprintf("%016x", digest.Sum64()), nil
}
