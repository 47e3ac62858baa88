package content

import (
	"bytes"
	"context"
	"io"
	"time"

	"ecertify/pkg/logger"
	reasoncodes "ecertify/pkg/reason_codes"
	"ecertify/pkg/utilities"

	shell "github.com/ipfs/go-ipfs-api"
)

// at most this many adds are in flight against the node
const maxConcurrentAdds = 10

type IpfsStore struct {
	sh      *shell.Shell
	addSem  chan struct{}
	backoff utilities.Backoff
}

func NewIpfsStore(apiAddress string) *IpfsStore {
	return &IpfsStore{
		sh:     shell.NewShell(apiAddress),
		addSem: make(chan struct{}, maxConcurrentAdds),
		backoff: utilities.Backoff{
			Attempts: 5,
			Initial:  100 * time.Millisecond,
			Max:      2 * time.Second,
		},
	}
}

func (s *IpfsStore) Put(ctx context.Context, data []byte) (string, error) {
	var cid string
	attempts, err := utilities.Retry(ctx, s.backoff, nil, func() error {
		select {
		case s.addSem <- struct{}{}:
		case <-ctx.Done():
			return ctx.Err()
		}
		defer func() { <-s.addSem }()

		hash, err := s.sh.Add(bytes.NewReader(data), shell.Pin(true))
		cid = hash
		return err
	})
	if err != nil {
		return "", reasoncodes.Wrap(reasoncodes.ErrContentStore, err, "ipfs add failed after %d attempts", attempts)
	}

	logger.Default().Debugf("Added %d bytes to ipfs as %s", len(data), cid)
	return cid, nil
}

func (s *IpfsStore) Get(ctx context.Context, contentId string) ([]byte, error) {
	if !IsValidContentId(contentId) {
		return nil, reasoncodes.New(reasoncodes.ErrNotFound, "content %s not found", contentId)
	}

	var data []byte
	_, err := utilities.Retry(ctx, s.backoff, nil, func() error {
		rc, err := s.sh.Cat(contentId)
		if err != nil {
			return err
		}
		defer rc.Close()

		data, err = io.ReadAll(rc)
		return err
	})
	if err != nil {
		return nil, reasoncodes.Wrap(reasoncodes.ErrContentStore, err, "ipfs cat %s failed", contentId)
	}
	return data, nil
}

func (s *IpfsStore) Close() error {
	return nil
}
