package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

const (
	// DefaultPictureBaseURL is NASA's astronomy picture of the day endpoint.
	DefaultPictureBaseURL = "https://api.nasa.gov/planetary/apod"
	// DemoAPIKey is accepted by api.nasa.gov with a low rate limit.
	DemoAPIKey = "DEMO_KEY"
	// mediaTypeImage marks pictures that can be shown as an image, videos only get a link.
	mediaTypeImage = "image"
)

// See https://github.com/nasa/apod-api for further explanations of the fields

// Picture mirrors the JSON which is returned for a picture of the day query.
// Failed queries and dates without a picture produce a Picture without URL.
type Picture struct {
	Date        string `json:"date"`        // date of the picture, YYYY-MM-DD
	Title       string `json:"title"`       // title of the picture
	Explanation string `json:"explanation"` // text explaining the picture
	URL         string `json:"url"`         // URL of the picture or video
	HDURL       string `json:"hdurl"`       // URL of the high resolution picture, if any
	MediaType   string `json:"media_type"`  // image or video
	Copyright   string `json:"copyright"`   // copyright holder, public domain if empty
	// returned by the API instead of the above on errors
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// HasImage reports whether the API returned something to show for the date.
func (p *Picture) HasImage() bool {
	return p.URL != ""
}

// IsImage reports whether the picture is an image, as opposed to a video.
func (p *Picture) IsImage() bool {
	return p.HasImage() && (p.MediaType == "" || p.MediaType == mediaTypeImage)
}

// GetTitleAsStr returns the title or a generic caption if the API omitted it.
func (p *Picture) GetTitleAsStr() string {
	if p.Title == "" {
		return "Hubble Image"
	}

	return p.Title
}

// BuildPictureURL returns the request URL for the picture of the given date.
func BuildPictureURL(baseURL, apiKey string, date DateKey) string {
	if baseURL == "" {
		baseURL = DefaultPictureBaseURL
	}

	query := url.Values{}
	query.Set("api_key", apiKey)
	query.Set("date", date.ISO())

	separator := "?"
	if strings.Contains(baseURL, "?") {
		separator = "&"
	}

	return baseURL + separator + query.Encode()
}

// PictureClient fetches the picture of the day.
type PictureClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewPictureClient(client *http.Client, baseURL, apiKey string, logger *slog.Logger) *PictureClient {
	if apiKey == "" {
		apiKey = DemoAPIKey
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PictureClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: client,
		logger:     logger,
	}
}

// Fetch requests the picture of the given date.
// Client errors (4xx) with a JSON body are a valid outcome: the picture simply has no URL.
// Transport errors and server errors are returned.
func (pc *PictureClient) Fetch(ctx context.Context, date DateKey) (Picture, error) {
	targetURL := BuildPictureURL(pc.baseURL, pc.apiKey, date)

	body, err := sendRequest(ctx, pc.httpClient, targetURL, nil)
	if err != nil {
		var statusErr *StatusError
		if !errors.As(err, &statusErr) || statusErr.Code >= http.StatusInternalServerError || !statusErr.IsJSON() {
			return Picture{}, fmt.Errorf("fetchPicture: %s: %w", date, err)
		}

		pc.logger.Info("no picture for date", slog.String("date", date.ISO()), slog.Int("status", statusErr.Code))
		body = statusErr.Body
	}

	var picture Picture
	if jsonErr := json.Unmarshal(body, &picture); jsonErr != nil {
		return Picture{}, fmt.Errorf("fetchPicture: failed to unmarshal json: %w", jsonErr)
	}

	if picture.Code != 0 {
		pc.logger.Debug("picture service message",
			slog.String("date", date.ISO()),
			slog.Int("code", picture.Code),
			slog.String("msg", picture.Msg))
	}

	return picture, nil
}
