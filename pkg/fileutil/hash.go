package fileutil

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"hash"
	"io"
	"strings"

	futilserrors "github.com/arthur-debert/futils/pkg/errors"
	"github.com/arthur-debert/futils/pkg/filesystem"
)

// DefaultChunkSize is the read size used while hashing (10 MiB).
const DefaultChunkSize = 10 * 1024 * 1024

// DefaultAlgorithm is the digest used when none is configured.
const DefaultAlgorithm = "md5"

// Algorithm represents a hash algorithm configuration
type Algorithm struct {
	Name    string
	NewFunc func() hash.Hash
}

// GetAlgorithm returns the hash algorithm configuration for the given name
func GetAlgorithm(name string) (*Algorithm, error) {
	switch strings.ToLower(name) {
	case "md5":
		return &Algorithm{Name: "md5", NewFunc: md5.New}, nil
	case "sha1":
		return &Algorithm{Name: "sha1", NewFunc: sha1.New}, nil
	case "sha256":
		return &Algorithm{Name: "sha256", NewFunc: sha256.New}, nil
	case "sha512":
		return &Algorithm{Name: "sha512", NewFunc: sha512.New}, nil
	default:
		return nil, futilserrors.Newf(futilserrors.ErrInvalidInput, "unsupported hash algorithm: %s", name).
			WithDetail("algorithm", name)
	}
}

// AlgorithmNames lists the supported algorithm names.
func AlgorithmNames() []string {
	return []string{"md5", "sha1", "sha256", "sha512"}
}

// Hasher computes file digests by streaming fixed-size chunks.
type Hasher struct {
	fs        filesystem.FS
	algorithm *Algorithm
	chunkSize int
}

// Option configures a Hasher.
type Option func(*Hasher)

// WithChunkSize sets the read chunk size. Values below 1 are ignored.
func WithChunkSize(size int) Option {
	return func(h *Hasher) {
		if size > 0 {
			h.chunkSize = size
		}
	}
}

// WithAlgorithm sets the digest algorithm. A nil algorithm is ignored.
func WithAlgorithm(algorithm *Algorithm) Option {
	return func(h *Hasher) {
		if algorithm != nil {
			h.algorithm = algorithm
		}
	}
}

// NewHasher returns a Hasher reading from fsys, using MD5 and 10 MiB chunks
// unless overridden.
func NewHasher(fsys filesystem.FS, opts ...Option) *Hasher {
	h := &Hasher{
		fs:        fsys,
		algorithm: &Algorithm{Name: DefaultAlgorithm, NewFunc: md5.New},
		chunkSize: DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Algorithm returns the name of the digest algorithm in use.
func (h *Hasher) Algorithm() string {
	return h.algorithm.Name
}

// ChunkSize returns the read chunk size in bytes.
func (h *Hasher) ChunkSize() int {
	return h.chunkSize
}

// Hash returns the lowercase hex digest of the file at path. Open and read
// errors are returned unchanged.
func (h *Hasher) Hash(path string) (string, error) {
	f, err := h.fs.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	hasher := h.algorithm.NewFunc()
	buffer := make([]byte, h.chunkSize)
	for {
		n, err := f.Read(buffer)
		if n > 0 {
			hasher.Write(buffer[:n])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// MD5 returns the MD5 digest of a file on the OS filesystem.
func MD5(path string) (string, error) {
	return NewHasher(filesystem.NewOS()).Hash(path)
}
