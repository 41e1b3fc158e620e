package airtable

import (
	"net/http"
	"time"
)

// loggingTransport logs every outbound call with its status and latency.
type loggingTransport struct {
	inner  http.RoundTripper
	logger Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.inner.RoundTrip(req)
	if err != nil {
		t.logger.Errorf("airtable %s %s failed after %s: %v", req.Method, req.URL.Path, time.Since(start), err)
		return nil, err
	}
	if resp.StatusCode >= 400 {
		t.logger.Errorf("airtable %s %s -> %d (%s)", req.Method, req.URL.Path, resp.StatusCode, time.Since(start))
	} else {
		t.logger.Debugf("airtable %s %s -> %d (%s)", req.Method, req.URL.Path, resp.StatusCode, time.Since(start))
	}
	return resp, nil
}
