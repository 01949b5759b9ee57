// Package fs provides filesystem fingerprinting for up-to-date checks.
package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputHasher = (*Hasher)(nil)

// Hasher fingerprints task inputs with xxhash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashInputs computes a single fingerprint over the declared input paths,
// resolved relative to root. Directories are walked, globs are expanded, and
// a missing input is an error.
func (h *Hasher) HashInputs(root string, inputs []string) (string, error) {
	sorted := make([]string, len(inputs))
	copy(sorted, inputs)
	sort.Strings(sorted)

	hasher := xxhash.New()
	for _, input := range sorted {
		_, _ = hasher.WriteString(input)
		_, _ = hasher.Write([]byte{0})

		if err := h.hashInputPath(filepath.Join(root, input), hasher); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// hashInputPath hashes a single input path, attempting glob resolution if the
// path doesn't exist.
func (h *Hasher) hashInputPath(path string, hasher io.Writer) error {
	if _, err := os.Stat(path); err != nil {
		return h.tryGlobAndHash(path, hasher)
	}
	return h.hashPath(path, hasher)
}

func (h *Hasher) tryGlobAndHash(path string, hasher io.Writer) error {
	matches, globErr := filepath.Glob(path)
	if globErr == nil && len(matches) > 0 {
		sort.Strings(matches)
		for _, match := range matches {
			if err := h.hashPath(match, hasher); err != nil {
				return err
			}
		}
		return nil
	}
	return zerr.With(zerr.New("input not found"), "path", path)
}

func (h *Hasher) hashPath(path string, hasher io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}

	if !info.IsDir() {
		return h.hashFile(path, hasher)
	}

	return filepath.WalkDir(path, func(entry string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return zerr.With(zerr.Wrap(walkErr, "failed to walk directory"), "path", entry)
		}
		if d.IsDir() {
			return nil
		}
		return h.hashFile(entry, hasher)
	})
}

func (h *Hasher) hashFile(path string, hasher io.Writer) error {
	_, _ = hasher.Write([]byte(path))
	_, _ = hasher.Write([]byte{0})

	hash, err := h.hashFileContent(path)
	if err != nil {
		return err
	}
	if err := binary.Write(hasher, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}

func (h *Hasher) hashFileContent(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return hasher.Sum64(), nil
}
