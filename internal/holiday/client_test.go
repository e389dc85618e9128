package holiday

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNagerClient_PublicHolidays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/PublicHolidays/2025/KR", r.URL.Path)
		w.Write([]byte(`[{"date":"2025-03-01","localName":"삼일절","name":"Independence Movement Day"}]`))
	}))
	defer srv.Close()

	entries, err := NewNagerClient(srv.URL, "kr", nil).PublicHolidays(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "삼일절", entries[0].LocalName)
}

func TestNagerClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewNagerClient(srv.URL, "", nil).PublicHolidays(context.Background(), 1800)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestNagerClient_FeedsCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"date":"2025-05-05","localName":"어린이날","name":"Children's Day"}]`))
	}))
	defer srv.Close()

	c := NewCache(NewNagerClient(srv.URL, "KR", nil), nil)
	require.NoError(t, c.Ensure(context.Background(), 2025))
	assert.Equal(t, "어린이날", c.Label("2025-05-05"))
}
