package cep_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bewear/internal/cep"
	"bewear/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *cep.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(testWriter{t}, nil))
	return cep.New(cep.Config{BaseURL: srv.URL, Timeout: time.Second}, logger)
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestLookup_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/01311000/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cep":"01311-000","logradouro":"Avenida Paulista","bairro":"Bela Vista","localidade":"São Paulo","uf":"SP"}`))
	})

	result, err := client.Lookup(context.Background(), "01311-000")
	require.NoError(t, err)
	assert.Equal(t, "Avenida Paulista", result.Street)
	assert.Equal(t, "Bela Vista", result.Neighborhood)
	assert.Equal(t, "São Paulo", result.City)
	assert.Equal(t, "SP", result.State)
}

func TestLookup_MalformedCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream should not be called for a malformed code")
	})

	_, err := client.Lookup(context.Background(), "1234")
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestLookup_UnknownCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"erro": true}`))
	})

	_, err := client.Lookup(context.Background(), "99999999")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCEPNotFound)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

// Unknown codes are healthy upstream answers; a burst of them must not
// open the circuit and take lookups down for everyone else.
func TestLookup_UnknownCodesDoNotTripBreaker(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/ws/01311000/json/" {
			w.Write([]byte(`{"logradouro":"Avenida Paulista","bairro":"Bela Vista","localidade":"São Paulo","uf":"SP"}`))
			return
		}
		w.Write([]byte(`{"erro": true}`))
	})

	for i := 0; i < 10; i++ {
		_, err := client.Lookup(context.Background(), "99999999")
		assert.ErrorIs(t, err, domain.ErrCEPNotFound)
	}

	// Every unknown lookup reached the upstream and a real code still works.
	assert.Equal(t, 10, calls)
	result, err := client.Lookup(context.Background(), "01311-000")
	require.NoError(t, err)
	assert.Equal(t, "Avenida Paulista", result.Street)
}

func TestLookup_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Lookup(context.Background(), "01311-000")
	require.Error(t, err)
	assert.Equal(t, domain.EUNAVAILABLE, domain.ErrorCode(err))
}

func TestLookup_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	})

	for i := 0; i < 10; i++ {
		_, err := client.Lookup(context.Background(), "01311-000")
		require.Error(t, err)
	}

	// Once the breaker trips the upstream stops being hit.
	assert.Less(t, calls, 10)
}
