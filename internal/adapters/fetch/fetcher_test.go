package fetch_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/onto/internal/adapters/fetch"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func source(t *testing.T, raw string) domain.Source {
	t.Helper()
	src, err := domain.ParseSource(raw)
	require.NoError(t, err)
	return src
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func TestFetcher_Network(t *testing.T) {
	t.Parallel()

	var accept atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("/onto", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/onto.rdf", http.StatusFound)
	})
	mux.HandleFunc("/onto.rdf", func(w http.ResponseWriter, r *http.Request) {
		accept.Store(r.Header.Get("Accept"))
		_, _ = w.Write([]byte("<rdf:RDF/>"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	var buf bytes.Buffer
	final, err := fetch.New(srv.Client(), quietLogger(t)).Fetch(context.Background(), source(t, srv.URL+"/onto"), &buf)
	require.NoError(t, err)

	assert.Equal(t, srv.URL+"/onto.rdf", final)
	assert.Equal(t, "<rdf:RDF/>", buf.String())
	assert.Equal(t, fetch.AcceptHeader, accept.Load())
}

func TestFetcher_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := fetch.New(srv.Client(), quietLogger(t)).Fetch(context.Background(), source(t, srv.URL+"/missing"), &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSourceUnreachable))

	var status *fetch.StatusError
	require.True(t, errors.As(err, &status))
	assert.Equal(t, http.StatusNotFound, status.Code)
}

func TestFetcher_BreakerOpensOnServerErrors(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := fetch.New(srv.Client(), quietLogger(t))
	for range 5 {
		_, err := f.Fetch(context.Background(), source(t, srv.URL+"/x"), &bytes.Buffer{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSourceUnreachable))
	}
	assert.Equal(t, int32(3), hits.Load(), "open breaker must short-circuit further requests")
}

func TestFetcher_ClientErrorsDoNotTripBreaker(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := fetch.New(srv.Client(), quietLogger(t))
	for range 5 {
		_, _ = f.Fetch(context.Background(), source(t, srv.URL+"/x"), &bytes.Buffer{})
	}
	assert.Equal(t, int32(5), hits.Load())
}

func TestFetcher_Cancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetch.New(srv.Client(), quietLogger(t)).Fetch(ctx, source(t, srv.URL+"/x"), &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSourceUnreachable))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFetcher_LocalFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "pizza.owl")
	require.NoError(t, os.WriteFile(path, []byte("<owl/>"), 0o600))

	f := fetch.New(nil, quietLogger(t))

	var buf bytes.Buffer
	final, err := f.Fetch(context.Background(), source(t, path), &buf)
	require.NoError(t, err)
	assert.Equal(t, path, final)
	assert.Equal(t, "<owl/>", buf.String())

	_, err = f.Fetch(context.Background(), source(t, filepath.Join(dir, "missing.owl")), &bytes.Buffer{})
	assert.True(t, errors.Is(err, domain.ErrSourceUnreachable))

	_, err = f.Fetch(context.Background(), source(t, dir), &bytes.Buffer{})
	assert.True(t, errors.Is(err, domain.ErrSourceUnreachable))
}
