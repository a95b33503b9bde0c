package lov_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/onto/internal/adapters/fetch"
	"go.trai.ch/onto/internal/adapters/lov"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func serveList(t *testing.T, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dataset/lov/api/v2/vocabulary/list" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDirectory_List(t *testing.T) {
	t.Parallel()

	body, err := os.ReadFile(filepath.Join("testdata", "list.json"))
	require.NoError(t, err)
	srv := serveList(t, body)

	log := quietLogger(t)
	dir := lov.New(fetch.New(srv.Client(), log), log)

	got, err := dir.List(context.Background(), srv.URL+"/dataset/lov/api/v2/vocabulary/list")
	require.NoError(t, err)

	assert.Equal(t, []domain.Vocabulary{
		{URI: "http://xmlns.com/foaf/0.1/", Title: "Friend of a Friend vocabulary", Namespace: "http://xmlns.com/foaf/0.1/"},
		{URI: "http://purl.org/dc/terms/", Title: "DCMI Metadata Terms", Namespace: "http://purl.org/dc/terms/"},
		{URI: "http://www.w3.org/2004/02/skos/core", Namespace: "http://www.w3.org/2004/02/skos/core#"},
	}, got)
}

func TestDirectory_ListFromFile(t *testing.T) {
	t.Parallel()

	log := quietLogger(t)
	dir := lov.New(fetch.New(nil, log), log)

	got, err := dir.List(context.Background(), filepath.Join("testdata", "list.json"))
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestDirectory_ListErrors(t *testing.T) {
	t.Parallel()

	t.Run("not json", func(t *testing.T) {
		t.Parallel()
		srv := serveList(t, []byte("<html>maintenance</html>"))
		log := quietLogger(t)

		_, err := lov.New(fetch.New(srv.Client(), log), log).
			List(context.Background(), srv.URL+"/dataset/lov/api/v2/vocabulary/list")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrVocabularyListInvalid))
	})

	t.Run("unreachable", func(t *testing.T) {
		t.Parallel()
		srv := serveList(t, nil)
		log := quietLogger(t)

		_, err := lov.New(fetch.New(srv.Client(), log), log).
			List(context.Background(), srv.URL+"/missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSourceUnreachable))
	})

	t.Run("fetcher failure is passed through", func(t *testing.T) {
		t.Parallel()
		fetcher := mocks.NewMockFetcher(gomock.NewController(t))
		cause := domain.Fail(domain.ErrSourceUnreachable, errors.New("circuit open"), "fetch")
		fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return("", cause)

		_, err := lov.New(fetcher, quietLogger(t)).List(context.Background(), domain.DefaultVocabularyDirectory)
		assert.ErrorIs(t, err, domain.ErrSourceUnreachable)
	})
}
