package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultHTTPTimeout bounds every outbound request unless the config says otherwise.
	DefaultHTTPTimeout = 10 * time.Second
	// maxErrorBodyLen limits how much of a failed response ends up in error messages.
	maxErrorBodyLen = 200
)

var (
	ErrNonOkResponse     = errors.New("non-OK response")
	ErrEmptyResponseBody = errors.New("empty response body")
	ErrNonJSONContent    = errors.New("non-JSON content type")
)

// StatusError is returned for any response with a status other than 200 OK.
// The body is kept because some APIs explain their refusal in JSON.
type StatusError struct {
	Code        int
	Status      string
	ContentType string
	Body        []byte
}

func (e *StatusError) Error() string {
	body := string(e.Body)
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen]
	}

	return fmt.Sprintf("%s %s: %s", ErrNonOkResponse, e.Status, body)
}

func (e *StatusError) Unwrap() error {
	return ErrNonOkResponse
}

// IsJSON reports whether the failed response carried a JSON body.
func (e *StatusError) IsJSON() bool {
	return strings.Contains(e.ContentType, "application/json") && len(e.Body) > 0
}

// NewHTTPClient returns the client shared by all outbound requests of a session.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	return &http.Client{Timeout: timeout}
}

// sendRequest sends an HTTP GET request and returns a valid byte slice of a JSON response body.
func sendRequest(ctx context.Context, client *http.Client, url string, header http.Header) ([]byte, error) {
	body, contentType, err := fetch(ctx, client, url, header)
	if err != nil {
		return nil, fmt.Errorf("sendRequest: %w", err)
	}

	if !strings.Contains(contentType, "application/json") {
		return nil, fmt.Errorf("sendRequest: %w, %s", ErrNonJSONContent, contentType)
	}

	return body, nil
}

// fetch sends an HTTP GET request and returns the non-empty response body and its content type.
func fetch(ctx context.Context, client *http.Client, url string, header http.Header) ([]byte, string, error) {
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if reqErr != nil {
		return nil, "", fmt.Errorf("fetch: invalid request error: %s : %w", url, reqErr)
	}

	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	if client == nil {
		client = http.DefaultClient
	}

	resp, respErr := client.Do(req)
	if respErr != nil {
		return nil, "", fmt.Errorf("fetch: failed to send GET request: %s: %w", url, respErr)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Read the response body
	body, bodyErr := io.ReadAll(resp.Body)
	if bodyErr != nil {
		return nil, "", fmt.Errorf("fetch: failed to read response body: %w", bodyErr)
	}

	contentType := resp.Header.Get("Content-Type")

	// Check if the request was successful (status code 200 OK)
	if resp.StatusCode != http.StatusOK {
		return nil, "", &StatusError{
			Code:        resp.StatusCode,
			Status:      resp.Status,
			ContentType: contentType,
			Body:        body,
		}
	}

	if len(body) == 0 {
		return nil, "", fmt.Errorf("fetch: %w", ErrEmptyResponseBody)
	}

	return body, contentType, nil
}
