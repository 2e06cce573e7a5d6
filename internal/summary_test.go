package internal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncateAtSentence(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		maxChars   int
		expected   string
		atBoundary bool
	}{
		{
			name:       "within budget is unchanged",
			text:       "Short text without period",
			maxChars:   100,
			expected:   "Short text without period",
			atBoundary: true,
		},
		{
			name:       "exactly at budget is unchanged",
			text:       "Exact.",
			maxChars:   6,
			expected:   "Exact.",
			atBoundary: true,
		},
		{
			name:       "cut at last full sentence",
			text:       "Hello world. Foo bar. Baz qux.",
			maxChars:   15,
			expected:   "Hello world.",
			atBoundary: true,
		},
		{
			name:       "period inside budget is kept",
			text:       "One. Two. Three.",
			maxChars:   9,
			expected:   "One. Two.",
			atBoundary: true,
		},
		{
			name:       "single period inside a long prefix",
			text:       strings.Repeat("a", 250) + "." + strings.Repeat("a", 49),
			maxChars:   280,
			expected:   strings.Repeat("a", 250) + ".",
			atBoundary: true,
		},
		{
			name:       "no period cuts mid-sentence",
			text:       strings.Repeat("a", 300),
			maxChars:   250,
			expected:   strings.Repeat("a", 250) + ".",
			atBoundary: false,
		},
		{
			name:       "counts characters not bytes",
			text:       "Über. Ärger überall.",
			maxChars:   8,
			expected:   "Über.",
			atBoundary: true,
		},
		{
			name:       "negative budget is zero",
			text:       "abc",
			maxChars:   -5,
			expected:   ".",
			atBoundary: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, atBoundary := TruncateAtSentence(test.text, test.maxChars)
			require.Equal(t, test.expected, got)
			require.Equal(t, test.atBoundary, atBoundary)
			require.Equal(t, got, Summarize(test.text, test.maxChars))
		})
	}
}

func TestSummarizeLength(t *testing.T) {
	text := "Apollo 11 was the first crewed lunar landing. It launched on July 16, 1969. " +
		"Neil Armstrong and Buzz Aldrin walked on the Moon"

	for maxChars := 0; maxChars <= len(text)+5; maxChars++ {
		got := Summarize(text, maxChars)
		require.LessOrEqual(t, len([]rune(got)), max(maxChars, 0)+1)

		if len([]rune(text)) > maxChars {
			require.True(t, strings.HasSuffix(got, "."))
		} else {
			require.Equal(t, text, got)
		}
	}
}

type fakeSummaryProvider struct {
	text   string
	exists bool
	err    error
	asked  []string
}

func (f *fakeSummaryProvider) Summary(_ context.Context, subject string) (string, bool, error) {
	f.asked = append(f.asked, subject)
	return f.text, f.exists, f.err
}

func TestMissionSummary(t *testing.T) {
	errProvider := errors.New("provider down")

	tests := []struct {
		name       string
		subject    string
		provider   *fakeSummaryProvider
		expected   string
		atBoundary bool
		expectErr  bool
		asked      int
	}{
		{
			name:       "blank subject is not looked up",
			subject:    "  ",
			provider:   &fakeSummaryProvider{},
			expected:   NoSummaryFound,
			atBoundary: true,
			asked:      0,
		},
		{
			name:       "unknown subject",
			subject:    "Unknown Mission",
			provider:   &fakeSummaryProvider{exists: false},
			expected:   NoSummaryFound,
			atBoundary: true,
			asked:      1,
		},
		{
			name:       "known subject is summarized",
			subject:    "Apollo 11",
			provider:   &fakeSummaryProvider{text: "First sentence. Second sentence.", exists: true},
			expected:   "First sentence.",
			atBoundary: true,
			asked:      1,
		},
		{
			name:       "no sentence boundary",
			subject:    "Endless",
			provider:   &fakeSummaryProvider{text: strings.Repeat("a", 30), exists: true},
			expected:   strings.Repeat("a", 20) + ".",
			atBoundary: false,
			asked:      1,
		},
		{
			name:      "provider failure",
			subject:   "Apollo 11",
			provider:  &fakeSummaryProvider{err: errProvider},
			expectErr: true,
			asked:     1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, atBoundary, err := MissionSummary(context.Background(), test.provider, test.subject, 20)
			require.Len(t, test.provider.asked, test.asked)
			if test.expectErr {
				require.ErrorIs(t, err, errProvider)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.expected, got)
			require.Equal(t, test.atBoundary, atBoundary)
		})
	}
}

func TestWikipediaSummaryURL(t *testing.T) {
	client := NewWikipediaClient(nil, "https://en.wikipedia.org/api/rest_v1/", "")

	require.Equal(t,
		"https://en.wikipedia.org/api/rest_v1/page/summary/Apollo_11",
		client.SummaryURL("Apollo 11"))
	require.Equal(t,
		"https://en.wikipedia.org/api/rest_v1/page/summary/Falcon_9%2FDragon",
		client.SummaryURL("Falcon 9/Dragon"))
}

func TestWikipediaClientSummary(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		expected  string
		exists    bool
		expectErr bool
	}{
		{
			name:     "page found",
			status:   http.StatusOK,
			body:     `{"type":"standard","title":"Apollo 11","extract":"Apollo 11 was a spaceflight."}`,
			expected: "Apollo 11 was a spaceflight.",
			exists:   true,
		},
		{
			name:   "page not found",
			status: http.StatusNotFound,
			body:   `{"type":"https://mediawiki.org/wiki/HyperSwitch/errors/not_found"}`,
			exists: false,
		},
		{
			name:      "server error",
			status:    http.StatusServiceUnavailable,
			body:      `{"detail":"down"}`,
			expectErr: true,
		},
		{
			name:      "broken json",
			status:    http.StatusOK,
			body:      `{"extract":`,
			expectErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/page/summary/Apollo_11", r.URL.Path)
				require.Equal(t, "test-agent", r.Header.Get("User-Agent"))

				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(test.status)
				_, _ = w.Write([]byte(test.body))
			}))
			defer server.Close()

			client := NewWikipediaClient(server.Client(), server.URL, "test-agent")
			text, exists, err := client.Summary(context.Background(), "Apollo 11")
			if test.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.exists, exists)
			require.Equal(t, test.expected, text)
		})
	}
}
