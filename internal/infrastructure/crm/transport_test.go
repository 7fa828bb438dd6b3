package crm

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lead-service/internal/config"
)

func hangingHandler(w http.ResponseWriter, r *http.Request) {
	select {
	case <-r.Context().Done():
	case <-time.After(5 * time.Second):
	}
}

func TestTimeoutsAreRetriedUpToMaxAttempts(t *testing.T) {
	contact := newFakeEndpoint(t, hangingHandler)
	client, err := NewClient(config.CRMConfig{
		ContactURL:  contact.server.URL,
		DealURL:     contact.server.URL,
		Timeout:     50 * time.Millisecond,
		MaxAttempts: 3,
		RetryDelay:  2 * time.Second,
	})
	require.NoError(t, err)

	var sleeps []time.Duration
	client.transport.sleep = func(_ context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return nil
	}

	result := client.ProcessRegistration(context.Background(), testRegistration())

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, CodeConnectionError, result.Errors[0].Code)
	assert.Equal(t, ErrorField, result.Errors[0].Field)
	assert.Equal(t, int32(3), contact.calls.Load())
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second}, sleeps)
}

func TestConnectionRefusedIsRetried(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	client := newTestClient(t, "http://"+addr, "")
	var sleeps atomic.Int32
	client.transport.sleep = func(context.Context, time.Duration) error {
		sleeps.Add(1)
		return nil
	}

	result := client.CreateContact(context.Background(), testRegistration())

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, CodeConnectionError, result.Errors[0].Code)
	assert.Equal(t, int32(2), sleeps.Load())
}

func TestProxyFailureFallsBackToDirectConnection(t *testing.T) {
	contact := newFakeEndpoint(t, respondJSON(`{"result": 42}`))

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	deadProxy := "http://" + listener.Addr().String()
	require.NoError(t, listener.Close())

	client, err := NewClient(config.CRMConfig{
		ContactURL:  contact.server.URL,
		ProxyURL:    deadProxy,
		Timeout:     time.Second,
		MaxAttempts: 3,
		RetryDelay:  time.Millisecond,
	})
	require.NoError(t, err)

	result := client.CreateContact(context.Background(), testRegistration())

	assert.True(t, result.Success)
	assert.Equal(t, int64(42), result.Data.ContactID)
	assert.Equal(t, int32(1), contact.calls.Load())
}

func TestProxyFailureWithUnreachableTarget(t *testing.T) {
	target, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	targetURL := "http://" + target.Addr().String()
	require.NoError(t, target.Close())

	proxy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	proxyURL, err := url.Parse("http://" + proxy.Addr().String())
	require.NoError(t, err)
	require.NoError(t, proxy.Close())

	tr := newTransport(time.Second, http.ProxyURL(proxyURL), 2, time.Millisecond)
	var sends int
	tr.sleep = func(context.Context, time.Duration) error {
		sends++
		return nil
	}

	_, err = tr.post(context.Background(), targetURL, request{Fields: map[string]string{}})
	require.Error(t, err)
	assert.True(t, isProxyError(err))
	assert.Equal(t, 1, sends)

	code, _ := describe(err)
	assert.Equal(t, CodeProxyError, code)
}

func TestCanceledContextStopsRetrying(t *testing.T) {
	contact := newFakeEndpoint(t, hangingHandler)
	client := newTestClient(t, contact.server.URL, "")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	result := client.CreateContact(ctx, testRegistration())

	assert.False(t, result.Success)
	assert.Equal(t, int32(1), contact.calls.Load())
}

func TestIsTransient(t *testing.T) {
	ctx := context.Background()
	assert.True(t, isTransient(ctx, &net.OpError{Op: "dial", Err: errors.New("refused")}))
	assert.True(t, isTransient(ctx, &url.Error{Op: "Post", URL: "x", Err: &net.OpError{Op: "read", Err: errors.New("reset")}}))
	assert.False(t, isTransient(ctx, errors.New("boom")))

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	assert.False(t, isTransient(canceled, &net.OpError{Op: "dial", Err: errors.New("refused")}))
}
