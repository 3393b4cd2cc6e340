// Package bbolt implements ports.DesignStore using bbolt (embedded B+ tree).
// Records live msgpack-encoded in a "designs" bucket keyed by ID; a "names"
// bucket maps each design name to its ID. Writes are transactional, so a
// crash mid-write cannot corrupt previously committed designs.
package bbolt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/corey/mechsize/internal/ports"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	bolt "go.etcd.io/bbolt"
)

// Bucket keys
var (
	bucketDesigns = []byte("designs")
	bucketNames   = []byte("names")
)

// Store implements ports.DesignStore backed by bbolt.
type Store struct {
	db  *bolt.DB
	now func() time.Time
}

var _ ports.DesignStore = (*Store)(nil)

// NewStore opens (or creates) a bbolt database at the given path, creating
// its parent directory if needed.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketDesigns); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketNames)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init buckets: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveDesign stores rec, replacing any design with the same name. The
// existing ID is kept on replace; otherwise a new UUID is assigned when
// rec.ID is empty. rec is updated in place with the final ID and SavedAt.
func (s *Store) SaveDesign(rec *ports.DesignRecord) error {
	if rec == nil {
		return fmt.Errorf("nil design")
	}
	if rec.Name == "" {
		return fmt.Errorf("design has no name")
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		designs, names := tx.Bucket(bucketDesigns), tx.Bucket(bucketNames)

		if prev := names.Get([]byte(rec.Name)); prev != nil {
			rec.ID = string(prev)
		} else if rec.ID == "" {
			rec.ID = uuid.NewString()
		} else if old := designs.Get([]byte(rec.ID)); old != nil {
			// Renaming an existing ID: drop its old name entry.
			var prevRec ports.DesignRecord
			if err := msgpack.Unmarshal(old, &prevRec); err != nil {
				return fmt.Errorf("unmarshal design %s: %w", rec.ID, err)
			}
			if err := names.Delete([]byte(prevRec.Name)); err != nil {
				return err
			}
		}
		rec.SavedAt = s.now().UTC()

		data, err := msgpack.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal design: %w", err)
		}
		if err := designs.Put([]byte(rec.ID), data); err != nil {
			return err
		}
		return names.Put([]byte(rec.Name), []byte(rec.ID))
	})
}

// LoadDesign returns the design with ID or name ref.
func (s *Store) LoadDesign(ref string) (*ports.DesignRecord, error) {
	var data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		id, ok := resolveRef(tx, ref)
		if !ok {
			return ports.ErrDesignNotFound
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		v := tx.Bucket(bucketDesigns).Get(id)
		data = make([]byte, len(v))
		copy(data, v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var rec ports.DesignRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal design %q: %w", ref, err)
	}
	return &rec, nil
}

// ListDesigns returns all designs sorted by name.
func (s *Store) ListDesigns() ([]ports.DesignRecord, error) {
	var out []ports.DesignRecord

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDesigns).ForEach(func(k, v []byte) error {
			var rec ports.DesignRecord
			buf := make([]byte, len(v))
			copy(buf, v)
			if err := msgpack.Unmarshal(buf, &rec); err != nil {
				return fmt.Errorf("unmarshal design %s: %w", k, err)
			}
			out = append(out, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// DeleteDesign removes the design with ID or name ref.
func (s *Store) DeleteDesign(ref string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		id, ok := resolveRef(tx, ref)
		if !ok {
			return ports.ErrDesignNotFound
		}
		designs := tx.Bucket(bucketDesigns)

		var rec ports.DesignRecord
		if err := msgpack.Unmarshal(designs.Get(id), &rec); err != nil {
			return fmt.Errorf("unmarshal design %s: %w", id, err)
		}
		if err := tx.Bucket(bucketNames).Delete([]byte(rec.Name)); err != nil {
			return err
		}
		return designs.Delete(id)
	})
}

// resolveRef finds the design ID for ref, trying it as an ID first and then
// as a name.
func resolveRef(tx *bolt.Tx, ref string) ([]byte, bool) {
	if ref == "" {
		return nil, false
	}
	if tx.Bucket(bucketDesigns).Get([]byte(ref)) != nil {
		return []byte(ref), true
	}
	if id := tx.Bucket(bucketNames).Get([]byte(ref)); id != nil {
		return append([]byte(nil), id...), true
	}
	return nil, false
}

// IsLockTimeout reports whether err came from bbolt failing to acquire the
// file lock within the open timeout.
func IsLockTimeout(err error) bool {
	return errors.Is(err, bolt.ErrTimeout)
}
