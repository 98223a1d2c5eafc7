// Package submit delivers an assembled order to the remote order log
// endpoint with bounded exponential-backoff retries.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/converse98/pizzeria-pos/internal/domain"
)

// State of the submission machine. A Submit call moves Idle to
// Submitting and always returns to Idle once a terminal result
// (success or failure) has been produced.
type State int32

const (
	StateIdle State = iota
	StateSubmitting
)

const (
	maxAttempts   = 5
	maxBodyInErr  = 100
	clientTimeout = 30 * time.Second
)

var (
	// ErrRetryExhausted means every attempt failed without a terminal
	// HTTP response.
	ErrRetryExhausted = errors.New("order submission failed after multiple retries")

	// ErrInFlight means a submission is already running. Only one may
	// be in flight at a time.
	ErrInFlight = errors.New("order submission already in progress")
)

// StatusError is a non-retryable HTTP failure: any non-success status
// other than a retryable 429, or a 429 on the final attempt.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s", e.Status, e.Body)
}

// Receipt is the parsed response body of a successful submission.
type Receipt map[string]interface{}

// Doer performs one HTTP request. Consumers define it so tests can
// inject a fake transport instead of the network.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Submitter posts order snapshots to the order log endpoint. Rate
// limited attempts (429) are retried with exponential backoff and
// jitter up to a fixed ceiling; everything else is terminal.
type Submitter struct {
	endpoint string
	apiKey   string
	client   Doer
	state    atomic.Int32

	attempts int
	sleep    func(time.Duration)
	jitter   func() time.Duration
}

// NewSubmitter builds a Submitter. A nil client gets a default
// instrumented HTTP client.
func NewSubmitter(endpoint, apiKey string, client Doer) *Submitter {
	if client == nil {
		client = &http.Client{
			Timeout:   clientTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Submitter{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   client,
		attempts: maxAttempts,
		sleep:    time.Sleep,
		jitter: func() time.Duration {
			return time.Duration(rand.Int63n(int64(time.Second)))
		},
	}
}

// State returns the current machine state.
func (s *Submitter) State() State {
	return State(s.state.Load())
}

// Submit delivers the order. The snapshot is marshaled once and every
// retry resends the identical bytes. Once started, the attempt
// sequence runs to a terminal state; there is no cancellation
// primitive for an in-flight retry sequence.
func (s *Submitter) Submit(ctx context.Context, o *domain.Order) (Receipt, error) {
	if !s.state.CompareAndSwap(int32(StateIdle), int32(StateSubmitting)) {
		return nil, ErrInFlight
	}
	defer s.state.Store(int32(StateIdle))

	body, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order: %w", err)
	}

	for attempt := 0; attempt < s.attempts; attempt++ {
		receipt, retryable, err := s.attempt(ctx, body, attempt)
		if err != nil {
			return nil, err
		}
		if !retryable {
			return receipt, nil
		}

		// Rate limited: wait 2^attempt seconds plus up to 1s of jitter
		// before the next try. The wait is passive and blocks nobody
		// but this submission.
		s.sleep(time.Duration(1<<attempt)*time.Second + s.jitter())
	}

	return nil, ErrRetryExhausted
}

// attempt performs a single POST. It returns retryable=true only for a
// 429 before the final attempt; all other outcomes are terminal.
func (s *Submitter) attempt(ctx context.Context, body []byte, attempt int) (Receipt, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("failed to build order log request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("order log request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusCreated || (resp.StatusCode >= 200 && resp.StatusCode < 300):
		var receipt Receipt
		if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
			receipt = Receipt{} // empty or malformed body still counts as success
		}
		return receipt, false, nil

	case resp.StatusCode == http.StatusTooManyRequests && attempt < s.attempts-1:
		io.Copy(io.Discard, resp.Body)
		return nil, true, nil

	default:
		raw, _ := io.ReadAll(resp.Body)
		if len(raw) > maxBodyInErr {
			raw = raw[:maxBodyInErr]
		}
		return nil, false, &StatusError{Status: resp.StatusCode, Body: string(raw)}
	}
}
