package playmovies

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("requires a client", func(t *testing.T) {
		_, err := New(nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http client is nil")
	})

	t.Run("defaults", func(t *testing.T) {
		s, err := New(http.DefaultClient, nil)
		require.NoError(t, err)

		assert.Equal(t, DefaultUserAgent, s.UserAgent())
		assert.Equal(t, "https://playmoviespartner.googleapis.com/", s.BasePath())
		assert.Equal(t, "https://playmoviespartner.googleapis.com/", s.RootPath())
		assert.NotNil(t, s.Accounts())
	})

	t.Run("options", func(t *testing.T) {
		s, err := New(http.DefaultClient, nil,
			WithUserAgent("agent/1.0"),
			WithBasePath("http://localhost:8080/"),
			WithUserAgent(""),
		)
		require.NoError(t, err)

		assert.Equal(t, "agent/1.0", s.UserAgent())
		assert.Equal(t, "http://localhost:8080/", s.BasePath())
	})
}

func TestServiceSetters(t *testing.T) {
	s, err := New(http.DefaultClient, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultUserAgent, s.SetUserAgent("a"))
	assert.Equal(t, "a", s.SetUserAgent("b"))
	assert.Equal(t, "b", s.UserAgent())

	assert.Equal(t, DefaultBasePath, s.SetBasePath("not a url"))
	assert.Equal(t, "not a url", s.BasePath())

	assert.Equal(t, DefaultRootPath, s.SetRootPath(""))
	assert.Equal(t, "", s.RootPath())
}

func TestScope(t *testing.T) {
	assert.Equal(t, "https://www.googleapis.com/auth/playmovies_partner.readonly", PlaymoviesPartnerReadonlyScope.String())
	assert.Equal(t, PlaymoviesPartnerReadonlyScope, DefaultScope)
}
