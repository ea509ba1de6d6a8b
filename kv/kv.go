// Package kv stores documents under string keys in a bbolt file.
//
// Values are kept in EDN notation and parsed again when read.
package kv

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/modric/modric/debug"
	"github.com/modric/modric/encode"
	"github.com/modric/modric/format"
	"github.com/modric/modric/ir"
	"github.com/modric/modric/parse"

	"go.etcd.io/bbolt"
)

var (
	ErrNotFound = errors.New("key not found")
	ErrEmptyKey = errors.New("empty key")
)

var docBucket = []byte("docs")

// Store is an open document store.  It is safe for concurrent use.
type Store struct {
	db *bbolt.DB
}

// Entry is a key and its document.
type Entry struct {
	Key   string
	Value *ir.Node
}

// Open opens or creates the store at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, os.FileMode(0o644), &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(docBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores node under key, replacing any previous value.
func (s *Store) Put(key string, node *ir.Node) error {
	if key == "" {
		return ErrEmptyKey
	}
	d, err := encode.Print(node, encode.EncodeFormat(format.EDNFormat))
	if err != nil {
		return err
	}
	if debug.KV() {
		debug.Logf("kv put %q %s\n", key, d)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(docBucket).Put([]byte(key), d)
	})
}

// Get returns the document stored under key.
func (s *Store) Get(key string) (*ir.Node, error) {
	var res *ir.Node
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(docBucket).Get([]byte(key))
		if v == nil {
			return fmt.Errorf("%w: %q", ErrNotFound, key)
		}
		node, err := decode(key, v)
		if err != nil {
			return err
		}
		res = node
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Store) Delete(key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(docBucket)
		if b.Get([]byte(key)) == nil {
			return fmt.Errorf("%w: %q", ErrNotFound, key)
		}
		return b.Delete([]byte(key))
	})
}

// Iter returns up to count entries in key order starting at the first key
// not less than start.  A count below 1 means no limit.
func (s *Store) Iter(start string, count int) ([]Entry, error) {
	var res []Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(docBucket).Cursor()
		var k, v []byte
		if start == "" {
			k, v = c.First()
		} else {
			k, v = c.Seek([]byte(start))
		}
		for ; k != nil; k, v = c.Next() {
			if count > 0 && len(res) == count {
				return nil
			}
			node, err := decode(string(k), v)
			if err != nil {
				return err
			}
			res = append(res, Entry{Key: string(k), Value: node})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if debug.KV() {
		debug.Logf("kv iter %q %d: %d entries\n", start, count, len(res))
	}
	return res, nil
}

// decode parses a stored value.  v is only valid for the life of the
// transaction and parse errors keep a reference to their input, so v is
// copied first.
func decode(key string, v []byte) (*ir.Node, error) {
	node, err := parse.Parse(bytes.Clone(v), parse.RequireEnd())
	if err != nil {
		return nil, fmt.Errorf("value of %q: %w", key, err)
	}
	return node, nil
}
