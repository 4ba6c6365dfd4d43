package loki

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewShipper_WhenURLMissing_ShouldFail(t *testing.T) {
	_, err := NewShipper(context.Background(), Config{}, nil)
	assert.Error(t, err)
}

func Test_Shipper_ShouldDeliverBatchedEntries(t *testing.T) {

	var mu sync.Mutex
	var requests []pushRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gz, err := gzip.NewReader(r.Body)
		require.NoError(t, err)

		var req pushRequest
		require.NoError(t, json.NewDecoder(gz).Decode(&req))

		mu.Lock()
		requests = append(requests, req)
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	shipper, err := NewShipper(context.Background(), Config{
		URL:    server.URL,
		Labels: map[string]string{"app": "test"},
	}, nil)
	require.NoError(t, err)

	shipper.Ship(Entry{Level: "error", Message: "first"})
	shipper.Ship(Entry{Level: "error", Message: "second"})
	shipper.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, requests, 1)
	require.Len(t, requests[0].Streams, 1)
	assert.Equal(t, "test", requests[0].Streams[0].Stream["app"])
	assert.Len(t, requests[0].Streams[0].Values, 2)
}

func Test_Shipper_WhenServerRejects_ShouldReportError(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	errs := make(chan error, 1)
	shipper, err := NewShipper(context.Background(), Config{
		URL:           server.URL,
		FlushInterval: 10 * time.Millisecond,
	}, func(err error) {
		select {
		case errs <- err:
		default:
		}
	})
	require.NoError(t, err)
	defer shipper.Close()

	shipper.Ship(Entry{Level: "error", Message: "boom"})

	select {
	case <-errs:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a delivery error")
	}
}
