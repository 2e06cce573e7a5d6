package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	// NoSummaryFound is shown in place of a summary for subjects the provider does not know.
	NoSummaryFound = "No summary found."
	// DefaultSummaryChars is the default character budget of a mission summary.
	DefaultSummaryChars = 500
	// DefaultSummaryBaseURL is the REST endpoint of the English Wikipedia.
	DefaultSummaryBaseURL = "https://en.wikipedia.org/api/rest_v1"
	// DefaultUserAgent identifies us towards the summary provider, which rejects anonymous clients.
	DefaultUserAgent = "launchday/0.1 (https://github.com/micutio/launchday)"
	// sentenceTerminator is the only character we treat as the end of a sentence.
	sentenceTerminator = '.'
)

// SummaryProvider looks up free-text summaries by subject name.
// exists is false if the provider has no entry for the subject, which is not an error.
type SummaryProvider interface {
	Summary(ctx context.Context, subject string) (text string, exists bool, err error)
}

// Summarize truncates text to at most maxChars characters at the last full sentence and appends a
// period. Texts within the budget are returned unchanged.
func Summarize(text string, maxChars int) string {
	summary, _ := TruncateAtSentence(text, maxChars)
	return summary
}

// TruncateAtSentence works like Summarize and additionally reports whether the cut happened at a
// sentence boundary. If the prefix contains no period at all, the prefix is cut mid-sentence and
// still gets a trailing period; ok is false in that case.
// Lengths are counted in characters (runes), not bytes.
func TruncateAtSentence(text string, maxChars int) (string, bool) {
	maxChars = max(maxChars, 0)

	runes := []rune(text)
	if len(runes) <= maxChars {
		return text, true
	}

	prefix := runes[:maxChars]
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i] == sentenceTerminator {
			return string(prefix[:i]) + string(sentenceTerminator), true
		}
	}

	return string(prefix) + string(sentenceTerminator), false
}

// MissionSummary fetches the summary of a subject and fits it into maxChars.
// Unknown subjects yield NoSummaryFound. Provider failures are returned as error.
// atBoundary is false only when the text had to be cut mid-sentence.
func MissionSummary(
	ctx context.Context,
	provider SummaryProvider,
	subject string,
	maxChars int,
) (summary string, atBoundary bool, err error) {
	if strings.TrimSpace(subject) == "" {
		return NoSummaryFound, true, nil
	}

	text, exists, err := provider.Summary(ctx, subject)
	if err != nil {
		return "", false, fmt.Errorf("missionSummary: %s: %w", subject, err)
	}

	if !exists {
		return NoSummaryFound, true, nil
	}

	summary, atBoundary = TruncateAtSentence(text, maxChars)

	return summary, atBoundary, nil
}

// wikiSummaryResponse mirrors the fields we need from the page summary endpoint.
type wikiSummaryResponse struct {
	Type    string `json:"type"`    // standard, disambiguation, no-extract, ...
	Title   string `json:"title"`   // normalized page title
	Extract string `json:"extract"` // plain text of the lead section
}

// WikipediaClient implements SummaryProvider against the Wikipedia REST API.
type WikipediaClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewWikipediaClient returns a client for the REST API at baseURL, e.g.
// https://de.wikipedia.org/api/rest_v1 for the German Wikipedia.
func NewWikipediaClient(client *http.Client, baseURL, userAgent string) *WikipediaClient {
	if baseURL == "" {
		baseURL = DefaultSummaryBaseURL
	}

	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &WikipediaClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: client,
	}
}

// SummaryURL returns the page summary endpoint for the given subject.
func (wc *WikipediaClient) SummaryURL(subject string) string {
	title := strings.ReplaceAll(strings.TrimSpace(subject), " ", "_")
	return wc.baseURL + "/page/summary/" + url.PathEscape(title)
}

func (wc *WikipediaClient) Summary(ctx context.Context, subject string) (string, bool, error) {
	header := http.Header{}
	header.Set("User-Agent", wc.userAgent)
	header.Set("Accept", "application/json")

	body, err := sendRequest(ctx, wc.httpClient, wc.SummaryURL(subject), header)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return "", false, nil
		}
		return "", false, fmt.Errorf("wikipedia: %w", err)
	}

	var data wikiSummaryResponse
	if jsonErr := json.Unmarshal(body, &data); jsonErr != nil {
		return "", false, fmt.Errorf("wikipedia: failed to unmarshal json: %w", jsonErr)
	}

	return data.Extract, true, nil
}
