package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"regxl/internal/codegen"
)

// Bump when DiskPayload changes shape; mismatched entries read as misses.
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash used as a disk cache key.
type Digest [sha256.Size]byte

// SourceDigest keys a compilation by its exact source text plus the manifest
// hash of the extensions it was compiled with. Two builds with different
// manifests never collide.
func SourceDigest(src []byte, manifest Digest) Digest {
	h := sha256.New()
	h.Write(manifest[:])
	h.Write(src)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// DiskPayload is the serialized form of one compiled pattern.
type DiskPayload struct {
	Schema  uint16
	Source  string
	Pattern string
	Flags   uint8
}

// DiskCache persists compiled patterns under XDG_CACHE_HOME keyed by source
// digest. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a disk cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "pats", hexKey+".mp")
}

// Put serializes a compiled pattern to the cache. The write goes through a
// temp file and a rename so readers never observe a partial entry.
func (c *DiskCache) Put(key Digest, src string, pattern codegen.Pattern) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := DiskPayload{
		Schema:  diskCacheSchemaVersion,
		Source:  src,
		Pattern: pattern.Source,
		Flags:   uint8(pattern.Flags),
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a compiled pattern from the cache. A missing entry or a schema
// mismatch is a miss, not an error.
func (c *DiskCache) Get(key Digest) (codegen.Pattern, bool, error) {
	if c == nil {
		return codegen.Pattern{}, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return codegen.Pattern{}, false, nil
		}
		return codegen.Pattern{}, false, err
	}
	defer f.Close()

	var payload DiskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return codegen.Pattern{}, false, err
	}
	if payload.Schema != diskCacheSchemaVersion {
		return codegen.Pattern{}, false, nil
	}
	return codegen.Pattern{
		Source: payload.Pattern,
		Flags:  codegen.Flags(payload.Flags),
	}, true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
