package filter

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/playmovies/playmovies"
)

func storeInfos(t *testing.T) []*playmovies.StoreInfo {
	t.Helper()

	var page playmovies.ListStoreInfosResponse
	require.NoError(t, json.Unmarshal([]byte(`{"storeInfos":[
		{"videoId":"v1","country":"US","name":"Dune","hasHdOffer":true,"audioTracks":["en","fr"],"liveTime":"2016-02-01T00:00:00Z"},
		{"videoId":"v2","country":"FR","name":"Dune","hasHdOffer":true,"audioTracks":["fr"]},
		{"videoId":"v3","country":"US","name":"Arrival","hasHdOffer":false,"audioTracks":["EN"]}
	]}`), &page))
	return page.StoreInfos
}

func strPtr(s string) *string { return &s }

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `hasHdOffer && country == "US"`,
		},
		{
			name:        "empty expression",
			expression:  "  ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:        "invalid syntax",
			expression:  `icontains(name, "unclosed`,
			wantErr:     true,
			errContains: "failed to compile expression",
		},
		{
			name:       "helpers",
			expression: `icontains(name, "dune") and includes(audioTracks, "EN") and daysSince(liveTime) > 30`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewCompiler().Compile(tt.expression)

			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestCompilerCache(t *testing.T) {
	c := NewCompiler(WithCache(2))

	a, err := c.Compile(`country == "US"`)
	require.NoError(t, err)
	again, err := c.Compile(` country == "US" `)
	require.NoError(t, err)
	assert.Same(t, a, again)
	assert.Equal(t, 1, c.Size())

	_, err = c.Compile(`country == "FR"`)
	require.NoError(t, err)
	_, err = c.Compile(`country == "DE"`)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Size())

	evicted, err := c.Compile(`country == "US"`)
	require.NoError(t, err)
	assert.NotSame(t, a, evicted)

	c.Clear()
	assert.Zero(t, c.Size())

	uncached := NewCompiler(WithCache(0))
	_, err = uncached.Compile(`true`)
	require.NoError(t, err)
	assert.Zero(t, uncached.Size())
}

func TestSelect(t *testing.T) {
	records := storeInfos(t)

	tests := []struct {
		name       string
		expression string
		want       []string
	}{
		{name: "wire field names", expression: `hasHdOffer && country == "US"`, want: []string{"v1"}},
		{name: "icontains", expression: `icontains(name, "DUNE")`, want: []string{"v1", "v2"}},
		{name: "includes ignores case", expression: `includes(audioTracks, "en")`, want: []string{"v1", "v3"}},
		{name: "in operator", expression: `"fr" in audioTracks`, want: []string{"v1", "v2"}},
		{name: "missing field is nil", expression: `liveTime == nil`, want: []string{"v2", "v3"}},
		{name: "no match", expression: `country == "JP"`, want: []string{}},
	}

	c := NewCompiler()

	t.Run("absent flags and lists", func(t *testing.T) {
		hd := true
		sparse := []*playmovies.StoreInfo{
			{VideoID: strPtr("v1"), Country: strPtr("US"), HasHdOffer: &hd},
			{VideoID: strPtr("v2"), Country: strPtr("US")},
		}

		f, err := c.Compile(`hasHdOffer && country == "US"`)
		require.NoError(t, err)
		got, err := Select(f, sparse)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "v1", *got[0].VideoID)

		f, err = c.Compile(`!hasSdOffer && !("en" in audioTracks)`)
		require.NoError(t, err)
		got, err = Select(f, sparse)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := c.Compile(tt.expression)
			require.NoError(t, err)

			got, err := Select(f, records)
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, s := range got {
				ids = append(ids, *s.VideoID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestMatch(t *testing.T) {
	c := NewCompiler()

	t.Run("orders", func(t *testing.T) {
		f, err := c.Compile(`status == "STATUS_APPROVED" && priority >= 2`)
		require.NoError(t, err)

		status := "STATUS_APPROVED"
		priority := 2.5
		ok, err := f.Match(&playmovies.Order{Status: &status, Priority: &priority})
		require.NoError(t, err)
		assert.True(t, ok)

		low := 1.0
		ok, err = f.Match(&playmovies.Order{Status: &status, Priority: &low})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("days since", func(t *testing.T) {
		f, err := c.Compile(`daysSince(start) >= 7`)
		require.NoError(t, err)

		start := time.Now().AddDate(0, 0, -10).Format(time.DateOnly)
		ok, err := f.Match(&playmovies.Avail{Start: &start})
		require.NoError(t, err)
		assert.True(t, ok)

		bad := "someday"
		ok, err = f.Match(&playmovies.Avail{Start: &bad})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("not an object", func(t *testing.T) {
		f, err := c.Compile(`true`)
		require.NoError(t, err)

		_, err = f.Match([]string{"a"})
		var evalErr *EvaluationError
		require.ErrorAs(t, err, &evalErr)
		assert.Equal(t, -1, evalErr.Index)
	})

	t.Run("runtime error", func(t *testing.T) {
		f, err := c.Compile(`icontains(name, "x")`)
		require.NoError(t, err)

		_, err = Select(f, []*playmovies.StoreInfo{{}})
		var evalErr *EvaluationError
		require.ErrorAs(t, err, &evalErr)
		assert.Equal(t, 0, evalErr.Index)
		assert.NotNil(t, errors.Unwrap(err))
	})
}

func TestSet(t *testing.T) {
	s, err := NewSet(NewCompiler(), map[string]string{
		"hd_us":  `hasHdOffer && country == "US"`,
		"french": `includes(audioTracks, "fr")`,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"french", "hd_us"}, s.Names())

	f, ok := s.Get("hd_us")
	require.True(t, ok)
	got, err := Select(f, storeInfos(t))
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, ok = s.Get("missing")
	assert.False(t, ok)

	_, err = NewSet(NewCompiler(), map[string]string{"broken": `country ==`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile filter 'broken'")
}

func TestLRUCache(t *testing.T) {
	c := newLRUCache[int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	c.Put("c", 3)
	_, ok = c.Get("b")
	assert.False(t, ok, "least recently used entry is evicted")

	c.Put("a", 10)
	v, _ = c.Get("a")
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, c.Len())
}
