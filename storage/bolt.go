package storage

import (
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"

	"quotes-api/models"
)

var collectionsBucket = []byte("collections")

// BoltStore keeps every collection in a single bbolt bucket,
// key -> JSON document.
type BoltStore struct {
	db *bolt.DB
}

func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, &models.StorageError{Op: "open", Err: err}
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(collectionsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, &models.StorageError{Op: "init", Err: err}
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Get(key string, v interface{}) error {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if data := tx.Bucket(collectionsBucket).Get([]byte(key)); data != nil {
			raw = append([]byte(nil), data...)
		}
		return nil
	})
	if err != nil {
		return &models.StorageError{Op: "get", Err: err}
	}
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &models.StorageError{Op: "decode", Err: err}
	}
	return nil
}

func (s *BoltStore) Set(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &models.StorageError{Op: "encode", Err: err}
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(collectionsBucket).Put([]byte(key), raw)
	})
	if err != nil {
		return &models.StorageError{Op: "set", Err: err}
	}
	return nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
