// ABOUTME: Upload memoization using Badger KV storage.
// ABOUTME: Uses type-prefixed keys (upload:hash) with JSON values.

package uploadcache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dgraph-io/badger/v3"
)

const (
	// UploadPrefix is the key prefix for cached upload results.
	UploadPrefix = "upload:"
)

var (
	ErrNotFound = errors.New("upload not cached")
)

// Entry records one completed upload keyed by the file's content hash, so
// re-running a conversion never re-uploads unchanged attachments.
type Entry struct {
	ResourceID string `json:"resource_id"`
	MediaType  string `json:"media_type"`
	PublicURI  string `json:"public_uri,omitempty"`
	ViewerURI  string `json:"viewer_uri"`
	UploadedAt int64  `json:"uploaded_at"`
}

// Cache is a Badger-backed store of upload entries.
type Cache struct {
	kv *badger.DB
}

// Open opens (creating if needed) the cache at path.
func Open(path string) (*Cache, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	kv, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open upload cache: %w", err)
	}
	return &Cache{kv: kv}, nil
}

func (c *Cache) Close() error {
	return c.kv.Close()
}

func uploadKey(digest string) []byte {
	return []byte(UploadPrefix + digest)
}

// HashFile returns the hex SHA-256 of the file's content.
func HashFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Attachment paths come from the export
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Get retrieves the entry for a content digest.
func (c *Cache) Get(digest string) (*Entry, error) {
	var entry Entry
	err := c.kv.View(func(txn *badger.Txn) error {
		item, err := txn.Get(uploadKey(digest))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// Put stores the entry for a content digest.
func (c *Cache) Put(digest string, entry *Entry) error {
	if entry.UploadedAt == 0 {
		entry.UploadedAt = time.Now().Unix()
	}
	encoded, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	return c.kv.Update(func(txn *badger.Txn) error {
		return txn.Set(uploadKey(digest), encoded)
	})
}

// Count returns how many uploads are cached.
func (c *Cache) Count() (int, error) {
	count := 0
	prefix := []byte(UploadPrefix)
	err := c.kv.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// Clear deletes every cached upload.
func (c *Cache) Clear() (int, error) {
	var keys [][]byte
	prefix := []byte(UploadPrefix)
	err := c.kv.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	err = c.kv.Update(func(txn *badger.Txn) error {
		for _, k := range keys {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
	return len(keys), err
}
