package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

const maxResponseBytes = 1 << 20

// transport posts JSON to the CRM with bounded retries on transport-level failures.
type transport struct {
	proxied     *http.Client
	direct      *http.Client
	maxAttempts int
	retryDelay  time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

type response struct {
	status int
	body   []byte
}

func newTransport(timeout time.Duration, proxy func(*http.Request) (*url.URL, error), maxAttempts int, retryDelay time.Duration) *transport {
	return &transport{
		proxied:     newHTTPClient(timeout, proxy),
		direct:      newHTTPClient(timeout, nil),
		maxAttempts: maxAttempts,
		retryDelay:  retryDelay,
		sleep:       sleepContext,
	}
}

func newHTTPClient(timeout time.Duration, proxy func(*http.Request) (*url.URL, error)) *http.Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.Proxy = proxy
	tr.DisableKeepAlives = true
	return &http.Client{Timeout: timeout, Transport: tr}
}

// post retries transient failures up to maxAttempts. A proxy failure earns one
// extra attempt that bypasses the proxy before the regular retry path continues.
func (t *transport) post(ctx context.Context, endpoint string, payload interface{}) (*response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode bitrix24 request: %w", err)
	}

	var lastErr error
	proxyBypassed := false
	for attempt := 1; attempt <= t.maxAttempts; attempt++ {
		resp, err := t.send(ctx, endpoint, body, true)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !isTransient(ctx, err) {
			return nil, err
		}

		if isProxyError(err) && !proxyBypassed {
			proxyBypassed = true
			log.WithError(err).WithField("endpoint", endpoint).Warn("bitrix24 proxy error, retrying without proxy")

			resp, err = t.send(ctx, endpoint, body, false)
			if err == nil {
				return resp, nil
			}
			lastErr = err
			if !isTransient(ctx, err) {
				return nil, err
			}
		}

		if attempt < t.maxAttempts {
			log.WithError(lastErr).WithFields(log.Fields{
				"endpoint": endpoint,
				"attempt":  attempt,
			}).Warn("bitrix24 request failed, retrying")
			if err := t.sleep(ctx, t.retryDelay); err != nil {
				return nil, lastErr
			}
		}
	}
	return nil, lastErr
}

func (t *transport) send(ctx context.Context, endpoint string, body []byte, useProxy bool) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := t.direct
	if useProxy {
		client = t.proxied
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}
	return &response{status: resp.StatusCode, body: data}, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func isProxyError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "proxyconnect"
}

// isTransient reports whether err is a connection-level failure worth retrying.
// Cancellation of the caller's context is never retried.
func isTransient(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET)
}

// describe turns a transport error into the code and message reported to callers.
func describe(err error) (string, string) {
	switch {
	case isProxyError(err):
		return CodeProxyError, fmt.Sprintf("Proxy error while connecting to Bitrix24: %v", err)
	case isTransient(context.Background(), err):
		return CodeConnectionError, fmt.Sprintf("Failed to connect to Bitrix24: %v", err)
	default:
		return CodeException, fmt.Sprintf("Exception: %v", err)
	}
}
