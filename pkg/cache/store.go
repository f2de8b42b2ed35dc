// Package cache provides a small disk-backed key-value store used to keep
// catalog responses and fetched images between runs. Each entry lives in one
// JSON envelope file named by the hash of its key; writes are atomic via
// temp-file-then-rename. Entries expire by TTL and the store evicts
// oldest-first once it exceeds its entry budget.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Options configures a Store.
type Options struct {
	// Dir is the directory where envelope files are stored.
	Dir string

	// MaxEntries is the entry budget before oldest-first eviction kicks
	// in. Default: 256.
	MaxEntries int

	// DefaultTTL applies to Put. Zero means entries never expire by time.
	DefaultTTL time.Duration
}

// Stats is a snapshot of store counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Entries   int
}

// envelope is the persisted form of one entry.
type envelope struct {
	Key     string `json:"key"`
	Created int64  `json:"created"` // UnixNano
	TTLNS   int64  `json:"ttl_ns"`  // 0 = no expiry
	Data    []byte `json:"data"`    // base64 via encoding/json
}

func (e envelope) expired(now time.Time) bool {
	if e.TTLNS <= 0 {
		return false
	}
	return now.Sub(time.Unix(0, e.Created)) > time.Duration(e.TTLNS)
}

// Store is a disk-backed key-value cache. Safe for concurrent use.
type Store struct {
	opts Options

	mu        sync.Mutex
	index     map[string]int64 // hash -> created (UnixNano), for eviction order
	hits      int64
	misses    int64
	evictions int64
}

// NewStore opens (or creates) a store rooted at opts.Dir and rebuilds the
// in-memory index from existing envelope files. Expired entries found during
// the scan are removed.
func NewStore(opts Options) (*Store, error) {
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = 256
	}
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("cache: create directory %s: %w", opts.Dir, err)
	}

	s := &Store{
		opts:  opts,
		index: make(map[string]int64),
	}
	if err := s.scan(); err != nil {
		return nil, fmt.Errorf("cache: scan directory: %w", err)
	}
	return s, nil
}

// Get returns the bytes stored under key, or ok=false when the key is
// missing or expired. Expired entries are deleted on the way out.
func (s *Store) Get(key string) ([]byte, bool) {
	h := hashKey(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[h]; !ok {
		s.misses++
		return nil, false
	}

	env, err := s.read(h)
	if err != nil {
		s.removeLocked(h)
		s.misses++
		return nil, false
	}
	if env.expired(time.Now()) {
		s.removeLocked(h)
		s.misses++
		return nil, false
	}

	s.hits++
	return env.Data, true
}

// Put stores value under key with the store's default TTL.
func (s *Store) Put(key string, value []byte) error {
	return s.PutWithTTL(key, value, s.opts.DefaultTTL)
}

// PutWithTTL stores value under key. A TTL of zero means the entry never
// expires by time, only by eviction or explicit delete.
func (s *Store) PutWithTTL(key string, value []byte, ttl time.Duration) error {
	h := hashKey(key)
	env := envelope{
		Key:     key,
		Created: time.Now().UnixNano(),
		TTLNS:   int64(ttl),
		Data:    value,
	}

	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("cache: marshal entry %q: %w", key, err)
	}
	if err := atomicWrite(s.path(h), raw, s.opts.Dir); err != nil {
		return fmt.Errorf("cache: write entry %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.index[h] = env.Created
	s.evictLocked()
	return nil
}

// Delete removes the entry for key. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) {
	h := hashKey(key)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[h]; ok {
		s.removeLocked(h)
	}
}

// Has reports whether key exists and is not expired.
func (s *Store) Has(key string) bool {
	h := hashKey(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[h]; !ok {
		return false
	}
	env, err := s.read(h)
	if err != nil || env.expired(time.Now()) {
		s.removeLocked(h)
		return false
	}
	return true
}

// Sweep removes all expired entries and returns how many were dropped.
// There is no background goroutine; callers sweep when convenient (vitrine
// sweeps once at startup).
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0
	for h := range s.index {
		env, err := s.read(h)
		if err != nil || env.expired(now) {
			s.removeLocked(h)
			removed++
		}
	}
	return removed
}

// Clear removes every entry.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.opts.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cache: clear read dir: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".tmp-") {
			_ = os.Remove(filepath.Join(s.opts.Dir, name))
		}
	}

	s.index = make(map[string]int64)
	return nil
}

// Stats returns a snapshot of the store counters.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Hits:      s.hits,
		Misses:    s.misses,
		Evictions: s.evictions,
		Entries:   len(s.index),
	}
}

// --- internal helpers ---

// hashKey maps an arbitrary key (URLs, composite keys with colons) onto a
// short filesystem-safe name. 8 bytes of SHA-256 is plenty for a store
// capped at a few hundred entries.
func hashKey(key string) string {
	h := sha256.Sum256([]byte(key))
	return hex.EncodeToString(h[:8])
}

func (s *Store) path(hash string) string {
	return filepath.Join(s.opts.Dir, hash+".json")
}

func (s *Store) read(hash string) (envelope, error) {
	var env envelope
	raw, err := os.ReadFile(s.path(hash))
	if err != nil {
		return env, err
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return env, err
	}
	return env, nil
}

// removeLocked drops an entry from the index and deletes its file.
// Caller must hold s.mu.
func (s *Store) removeLocked(hash string) {
	delete(s.index, hash)
	_ = os.Remove(s.path(hash))
}

// evictLocked removes oldest entries until the count fits MaxEntries.
// Caller must hold s.mu.
func (s *Store) evictLocked() {
	if len(s.index) <= s.opts.MaxEntries {
		return
	}

	type aged struct {
		hash    string
		created int64
	}
	all := make([]aged, 0, len(s.index))
	for h, c := range s.index {
		all = append(all, aged{hash: h, created: c})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].created < all[j].created })

	for _, a := range all {
		if len(s.index) <= s.opts.MaxEntries {
			break
		}
		s.removeLocked(a.hash)
		s.evictions++
	}
}

// scan rebuilds the index from envelope files already on disk, discarding
// anything expired or unreadable.
func (s *Store) scan() error {
	entries, err := os.ReadDir(s.opts.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	now := time.Now()
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		hash := strings.TrimSuffix(name, ".json")

		env, err := s.read(hash)
		if err != nil || env.expired(now) {
			_ = os.Remove(s.path(hash))
			continue
		}
		s.index[hash] = env.Created
	}
	return nil
}

// atomicWrite writes data to path via a temporary file and rename.
func atomicWrite(path string, data []byte, tmpDir string) error {
	tmp, err := os.CreateTemp(tmpDir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	success = true
	return nil
}
