package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/docsync/internal/client/storage"
)

// stateKey строит ключ для байт-состояния CRDT реплики документа
func stateKey(documentID string) []byte {
	return []byte("ydoc_cache_" + documentID)
}

// SaveState persists the encoded replica state for a document
func (s *Storage) SaveState(ctx context.Context, documentID string, data []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketStates)
		if bucket == nil {
			return fmt.Errorf("states bucket not found")
		}

		if err := bucket.Put(stateKey(documentID), data); err != nil {
			return fmt.Errorf("failed to save state: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("save state transaction failed: %w", err)
	}

	return nil
}

// GetState retrieves the last persisted replica state for a document
func (s *Storage) GetState(ctx context.Context, documentID string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var data []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketStates)
		if bucket == nil {
			return storage.ErrStateNotFound
		}

		stored := bucket.Get(stateKey(documentID))
		if stored == nil {
			return storage.ErrStateNotFound
		}

		// Копируем: буфер bbolt валиден только внутри транзакции
		data = append([]byte(nil), stored...)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return data, nil
}
