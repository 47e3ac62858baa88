package content_test

import (
	"context"
	"testing"

	"ecertify/api/src/content"
	"ecertify/pkg/logger"
	reasoncodes "ecertify/pkg/reason_codes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{
		Args: []logger.LoggerArg{{Key: "service", Value: "content-test"}},
	})
}

func TestComputeContentId(t *testing.T) {
	cid := content.ComputeContentId([]byte("diploma"))

	assert.Len(t, cid, 46)
	assert.True(t, content.IsValidContentId(cid))
	assert.Equal(t, cid, content.ComputeContentId([]byte("diploma")))
	assert.NotEqual(t, cid, content.ComputeContentId([]byte("transcript")))
}

func TestIsValidContentId(t *testing.T) {
	tests := []struct {
		cid  string
		want bool
	}{
		{"QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", true},
		{"", false},
		{"Qm123", false},
		{"XmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, content.IsValidContentId(tt.cid), tt.cid)
	}
}

func TestStores(t *testing.T) {
	stores := map[string]func(t *testing.T) content.Store{
		"memory": func(t *testing.T) content.Store { return content.NewMemoryStore() },
		"badger": func(t *testing.T) content.Store {
			s, err := content.NewBadgerStore("")
			require.NoError(t, err)
			return s
		},
	}

	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := open(t)
			defer store.Close()

			cid, err := store.Put(ctx, []byte("%PDF-1.7 certificate"))
			require.NoError(t, err)
			assert.True(t, content.IsValidContentId(cid))

			data, err := store.Get(ctx, cid)
			require.NoError(t, err)
			assert.Equal(t, []byte("%PDF-1.7 certificate"), data)

			again, err := store.Put(ctx, []byte("%PDF-1.7 certificate"))
			require.NoError(t, err)
			assert.Equal(t, cid, again)

			_, err = store.Get(ctx, content.ComputeContentId([]byte("never stored")))
			assert.True(t, reasoncodes.Is(err, reasoncodes.ErrNotFound))
		})
	}
}

func TestNewStoreFromConfig(t *testing.T) {
	store, err := content.NewStoreFromConfig(content.ConfigJson{}.ConvertToDomain())
	require.NoError(t, err)
	assert.IsType(t, &content.MemoryStore{}, store)

	store, err = content.NewStoreFromConfig(content.ConfigJson{Driver: "ipfs", IpfsApi: "localhost:5001"}.ConvertToDomain())
	require.NoError(t, err)
	assert.IsType(t, &content.IpfsStore{}, store)

	_, err = content.NewStoreFromConfig(content.Config{Driver: "s3"})
	assert.Error(t, err)
}

func TestIpfsStoreRejectsMalformedId(t *testing.T) {
	store := content.NewIpfsStore("localhost:5001")
	_, err := store.Get(context.Background(), "not-a-cid")
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrNotFound))
}
