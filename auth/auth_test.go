package auth

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func staticFactory(calls *atomic.Int32, token string) SourceFactory {
	return func(ctx context.Context, scopes ...string) (oauth2.TokenSource, error) {
		calls.Add(1)
		// Give concurrent callers time to pile up behind the first one.
		time.Sleep(10 * time.Millisecond)
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}), nil
	}
}

func TestStatic(t *testing.T) {
	tok, err := Static("abc").Token(context.Background(), []string{"s"})
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	tok, err = None.Token(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestTokenSourceProvider(t *testing.T) {
	t.Run("caches per scope set", func(t *testing.T) {
		var calls atomic.Int32
		p := NewTokenSourceProvider(staticFactory(&calls, "tok"), zerolog.Nop())

		for _, scopes := range [][]string{{"b", "a"}, {"a", "b"}, {"a", "b", "a"}} {
			tok, err := p.Token(context.Background(), scopes)
			require.NoError(t, err)
			assert.Equal(t, "tok", tok)
		}
		assert.Equal(t, int32(1), calls.Load())

		_, err := p.Token(context.Background(), []string{"c"})
		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("concurrent first fetch creates one source", func(t *testing.T) {
		var calls atomic.Int32
		p := NewTokenSourceProvider(staticFactory(&calls, "tok"), zerolog.Nop())

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				tok, err := p.Token(context.Background(), []string{"scope"})
				assert.NoError(t, err)
				assert.Equal(t, "tok", tok)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("empty scopes", func(t *testing.T) {
		var calls atomic.Int32
		p := NewTokenSourceProvider(staticFactory(&calls, "tok"), zerolog.Nop())

		tok, err := p.Token(context.Background(), []string{})
		require.NoError(t, err)
		assert.Empty(t, tok)
		assert.Zero(t, calls.Load())
	})

	t.Run("factory error", func(t *testing.T) {
		errNoCreds := errors.New("no default credentials")
		p := NewTokenSourceProvider(func(context.Context, ...string) (oauth2.TokenSource, error) {
			return nil, errNoCreds
		}, zerolog.Nop())

		_, err := p.Token(context.Background(), []string{"scope"})
		require.Error(t, err)
		assert.ErrorIs(t, err, errNoCreds)
		assert.Contains(t, err.Error(), "failed to create token source")
	})

	t.Run("source error", func(t *testing.T) {
		errExpired := errors.New("refresh token revoked")
		p := NewTokenSourceProvider(func(context.Context, ...string) (oauth2.TokenSource, error) {
			return failingSource{err: errExpired}, nil
		}, zerolog.Nop())

		_, err := p.Token(context.Background(), []string{"scope"})
		require.Error(t, err)
		assert.ErrorIs(t, err, errExpired)
	})
}

type failingSource struct {
	err error
}

func (s failingSource) Token() (*oauth2.Token, error) {
	return nil, s.err
}

func TestNewCredentialsFileProvider(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewCredentialsFileProvider(filepath.Join(t.TempDir(), "nope.json"), zerolog.Nop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read credentials file")
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "creds.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

		_, err := NewCredentialsFileProvider(path, zerolog.Nop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid credentials file")
	})

	t.Run("authorized user", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "creds.json")
		creds := `{"type":"authorized_user","client_id":"id","client_secret":"secret","refresh_token":"refresh"}`
		require.NoError(t, os.WriteFile(path, []byte(creds), 0o600))

		p, err := NewCredentialsFileProvider(path, zerolog.Nop())
		require.NoError(t, err)
		assert.NotNil(t, p)
	})
}

func TestNewRefreshTokenProvider(t *testing.T) {
	_, err := NewRefreshTokenProvider(RefreshTokenConfig{ClientID: "id"}, zerolog.Nop())
	require.Error(t, err)

	p, err := NewRefreshTokenProvider(RefreshTokenConfig{
		ClientID:     "id",
		ClientSecret: "secret",
		RefreshToken: "refresh",
		TokenURL:     "http://127.0.0.1:0/token",
	}, zerolog.Nop())
	require.NoError(t, err)

	tok, err := p.Token(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, tok)
}
