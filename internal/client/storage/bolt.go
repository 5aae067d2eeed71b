package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/Revolutionnnn/gestor-ia/internal/logging"
)

var blobBucket = []byte("blobs")

// BoltStore keeps each named value as a JSON blob inside a single-bucket
// bbolt file. One process is the only writer, matching the one-tab ownership
// model of the original front end.
type BoltStore struct {
	db  *bolt.DB
	log logging.Logger
}

// OpenBolt opens (or creates) the data file and ensures the blob bucket
// exists.
func OpenBolt(path string, log logging.Logger) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("error opening data file: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(blobBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error initializing data file: %w", err)
	}

	return &BoltStore{db: db, log: log}, nil
}

func (s *BoltStore) Load(key string, out any) bool {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(blobBucket).Get([]byte(key)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		s.warn(key, err)
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.warn(key, err)
		return false
	}
	return true
}

func (s *BoltStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error serializing %q: %w", key, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(blobBucket).Put([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("error storing %q: %w", key, err)
	}
	return nil
}

func (s *BoltStore) Remove(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(blobBucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("error removing %q: %w", key, err)
	}
	return nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) warn(key string, err error) {
	if s.log != nil {
		s.log.Warn(context.Background(), "no se pudo leer del almacenamiento local", "key", key, "error", err)
	}
}
