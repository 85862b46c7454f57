package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/mohsen1/tsz-sub014/internal/diag"
	"github.com/mohsen1/tsz-sub014/internal/source"
)

// diskCacheSchemaVersion is bumped whenever CachedFile's shape changes, so
// a stale on-disk entry is silently treated as a miss rather than
// misdecoded (mirrors the teacher's dcache.go schema-version guard).
const diskCacheSchemaVersion uint16 = 1

// DiskCache persists one file's diagnostics keyed by its content hash
// (§6.4's `recycle` request clears this). Thread-safe for concurrent
// CheckProgram workers.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedFile is the on-disk payload: enough to reconstruct a FileResult
// without re-running the checker, plus the codes' spans so a cache hit can
// still point a caller back at the offending source.
type CachedFile struct {
	Schema uint16
	Path   string
	Codes  []uint16
	Sevs   []uint8
	Msgs   []string
	Starts []uint32
	Ends   []uint32
}

// OpenDiskCache initializes the cache at the standard XDG location, the
// way the teacher's OpenDiskCache does for its own "surge" app name.
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

func (c *DiskCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "files", hex.EncodeToString(key[:])+".mp")
}

// Put writes a file's diagnostics to the cache, keyed by its content hash.
func (c *DiskCache) Put(key [32]byte, res FileResult) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(toCachedFile(res)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a cached result back, reporting false (no error) on a miss.
func (c *DiskCache) Get(key [32]byte) (FileResult, bool, error) {
	if c == nil {
		return FileResult{}, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileResult{}, false, nil
		}
		return FileResult{}, false, err
	}
	defer f.Close()

	var cached CachedFile
	if err := msgpack.NewDecoder(f).Decode(&cached); err != nil {
		return FileResult{}, false, err
	}
	if cached.Schema != diskCacheSchemaVersion {
		return FileResult{}, false, nil
	}
	return fromCachedFile(cached), true, nil
}

// DropAll invalidates every cached entry (§6.4's `recycle` request).
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(c.dir)
}

func toCachedFile(res FileResult) CachedFile {
	cf := CachedFile{Schema: diskCacheSchemaVersion, Path: res.Path}
	for _, d := range res.Diagnostics {
		cf.Codes = append(cf.Codes, uint16(d.Code))
		cf.Sevs = append(cf.Sevs, uint8(d.Severity))
		cf.Msgs = append(cf.Msgs, d.Message)
		cf.Starts = append(cf.Starts, d.Primary.Start)
		cf.Ends = append(cf.Ends, d.Primary.End)
	}
	return cf
}

func fromCachedFile(cf CachedFile) FileResult {
	res := FileResult{Path: cf.Path}
	for i := range cf.Codes {
		res.Diagnostics = append(res.Diagnostics, &diag.Diagnostic{
			Code:     diag.Code(cf.Codes[i]),
			Severity: diag.Severity(cf.Sevs[i]),
			Message:  cf.Msgs[i],
			Primary:  source.Span{Start: cf.Starts[i], End: cf.Ends[i]},
		})
	}
	return res
}
