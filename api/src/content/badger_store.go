package content

import (
	"context"
	"errors"

	"ecertify/pkg/logger"
	reasoncodes "ecertify/pkg/reason_codes"

	"github.com/dgraph-io/badger/v4"
)

type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens a badger database at path. An empty path keeps the data in memory.
func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, reasoncodes.Wrap(reasoncodes.ErrContentStore, err, "could not open badger at %q", path)
	}
	logger.Default().Infof("Badger content store opened (in memory: %t)", path == "")
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Put(_ context.Context, data []byte) (string, error) {
	cid := ComputeContentId(data)
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(cid), data)
	})
	if err != nil {
		return "", reasoncodes.Wrap(reasoncodes.ErrContentStore, err, "could not store content %s", cid)
	}
	return cid, nil
}

func (s *BadgerStore) Get(_ context.Context, contentId string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(contentId))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, reasoncodes.New(reasoncodes.ErrNotFound, "content %s not found", contentId)
	}
	if err != nil {
		return nil, reasoncodes.Wrap(reasoncodes.ErrContentStore, err, "could not read content %s", contentId)
	}
	return data, nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
