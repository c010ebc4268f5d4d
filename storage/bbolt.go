package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

// bboltWriter keys records by filePath inside a single bucket.
type bboltWriter struct {
	db     *bbolt.DB
	bucket string
}

func newBBolt(path string) (Writer, error) {
	dbPath, bucket, ok := strings.Cut(path, ":")
	if !ok {
		return nil, fmt.Errorf(`storage: bbolt target %q does not have expected format "<path>:<bucket>"`, path)
	}

	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("storage: opening bbolt database %q: %w", dbPath, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: creating bucket %q: %w", bucket, err)
	}

	return &bboltWriter{db: db, bucket: bucket}, nil
}

func (w *bboltWriter) Download(ctx context.Context, url, filePath string) error {
	rec, err := fetch(ctx, url)
	if err != nil {
		return err
	}
	return w.put(filePath, rec)
}

func (w *bboltWriter) Save(filePath string, content []byte) error {
	return w.put(filePath, &record{Content: content})
}

func (w *bboltWriter) put(filePath string, rec *record) error {
	v, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return w.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(w.bucket)).Put([]byte(filePath), v)
	})
}

func (w *bboltWriter) Close() error {
	return w.db.Close()
}

func init() {
	register("bbolt", newBBolt)
}
