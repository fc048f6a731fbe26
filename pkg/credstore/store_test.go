package credstore_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediflow/mediflow-go/pkg/credstore"
)

func TestComposite(t *testing.T) {
	ctx := context.Background()

	t.Run("write fans out to every store", func(t *testing.T) {
		first := credstore.NewMemoryStore()
		second := credstore.NewMemoryStore()
		store := credstore.NewComposite(first, second)

		require.NoError(t, store.SetToken(ctx, "T1"))

		tok, err := first.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "T1", tok)

		tok, err = second.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "T1", tok)
	})

	t.Run("read follows precedence", func(t *testing.T) {
		first := credstore.NewMemoryStore()
		second := credstore.NewMemoryStore()
		store := credstore.NewComposite(first, second)

		require.NoError(t, first.SetToken(ctx, "from-first"))
		require.NoError(t, second.SetToken(ctx, "stale-second"))

		tok, err := store.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "from-first", tok)
	})

	t.Run("stale copy in later store still resolves", func(t *testing.T) {
		first := credstore.NewMemoryStore()
		second := credstore.NewMemoryStore()
		store := credstore.NewComposite(first, second)

		require.NoError(t, second.SetToken(ctx, "only-second"))

		tok, err := store.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "only-second", tok)
	})

	t.Run("empty everywhere", func(t *testing.T) {
		store := credstore.NewComposite(credstore.NewMemoryStore(), credstore.NewMemoryStore())

		_, err := store.Token(ctx)
		assert.ErrorIs(t, err, credstore.ErrNoCredential)
	})

	t.Run("cancelled read reports cancellation, not absence", func(t *testing.T) {
		first := credstore.NewMemoryStore()
		require.NoError(t, first.SetToken(ctx, "T1"))
		store := credstore.NewComposite(first, credstore.NewMemoryStore())

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Token(cancelled)
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, credstore.ErrNoCredential)
	})

	t.Run("partial write rolls back", func(t *testing.T) {
		first := credstore.NewMemoryStore()
		second := credstore.NewMemoryStore()
		second.FailSet = errors.New("disk full")
		store := credstore.NewComposite(first, second)

		err := store.SetToken(ctx, "T1")
		assert.ErrorIs(t, err, credstore.ErrPersist)

		// No location may retain a partial copy.
		_, err = first.Token(ctx)
		assert.ErrorIs(t, err, credstore.ErrNoCredential)
	})

	t.Run("clear erases every store", func(t *testing.T) {
		first := credstore.NewMemoryStore()
		second := credstore.NewMemoryStore()
		store := credstore.NewComposite(first, second)

		require.NoError(t, store.SetToken(ctx, "T1"))
		require.NoError(t, store.Clear(ctx))

		_, err := first.Token(ctx)
		assert.ErrorIs(t, err, credstore.ErrNoCredential)
		_, err = second.Token(ctx)
		assert.ErrorIs(t, err, credstore.ErrNoCredential)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		store := credstore.NewComposite(credstore.NewMemoryStore())
		require.NoError(t, store.Clear(ctx))
		require.NoError(t, store.Clear(ctx))
	})
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.json")
		store := credstore.NewFileStore(path)

		require.NoError(t, store.SetToken(ctx, "T1"))

		tok, err := store.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "T1", tok)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("missing file", func(t *testing.T) {
		store := credstore.NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))

		_, err := store.Token(ctx)
		assert.ErrorIs(t, err, credstore.ErrNoCredential)
	})

	t.Run("corrupt file reads as empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
		store := credstore.NewFileStore(path)

		_, err := store.Token(ctx)
		assert.ErrorIs(t, err, credstore.ErrNoCredential)

		// The next write replaces the corrupt file.
		require.NoError(t, store.SetToken(ctx, "T2"))
		tok, err := store.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "T2", tok)
	})

	t.Run("clear removes the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.json")
		store := credstore.NewFileStore(path)

		require.NoError(t, store.SetToken(ctx, "T1"))
		require.NoError(t, store.Clear(ctx))

		_, err := os.Stat(path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestCookieStore(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cookies.json")
		store := credstore.NewCookieStore(path, "api.mediflow.example", time.Hour)

		require.NoError(t, store.SetToken(ctx, "T1"))

		tok, err := store.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "T1", tok)
	})

	t.Run("expired cookie is no credential", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cookies.json")
		store := credstore.NewCookieStore(path, "api.mediflow.example", -time.Minute)

		require.NoError(t, store.SetToken(ctx, "T1"))

		_, err := store.Token(ctx)
		assert.ErrorIs(t, err, credstore.ErrNoCredential)
	})

	t.Run("other domains are untouched by clear", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cookies.json")
		ours := credstore.NewCookieStore(path, "api.mediflow.example", time.Hour)
		other := credstore.NewCookieStore(path, "other.example", time.Hour)

		require.NoError(t, ours.SetToken(ctx, "T1"))
		require.NoError(t, other.SetToken(ctx, "T2"))

		require.NoError(t, ours.Clear(ctx))

		_, err := ours.Token(ctx)
		assert.ErrorIs(t, err, credstore.ErrNoCredential)

		tok, err := other.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "T2", tok)
	})

	t.Run("set replaces previous cookie", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cookies.json")
		store := credstore.NewCookieStore(path, "api.mediflow.example", time.Hour)

		require.NoError(t, store.SetToken(ctx, "old"))
		require.NoError(t, store.SetToken(ctx, "new"))

		tok, err := store.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "new", tok)
	})
}

func TestNew(t *testing.T) {
	t.Run("creates the state directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "state")
		store, err := credstore.New(credstore.Config{Dir: dir}, "api.mediflow.example")
		require.NoError(t, err)

		require.NoError(t, store.SetToken(context.Background(), "T1"))

		tok, err := store.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "T1", tok)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}
