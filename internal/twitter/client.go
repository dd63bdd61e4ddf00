// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

// Package twitter is a minimal client for the Twitter API v2 "create tweet"
// endpoint, authenticated with OAuth 1.0a user-context credentials.
package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dghubble/oauth1"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// Credentials are the four OAuth 1.0a secrets of an app acting for a user.
type Credentials struct {
	ConsumerKey       string
	ConsumerSecret    string
	AccessToken       string
	AccessTokenSecret string
}

// Tweet is the created tweet as returned by the API.
type Tweet struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// URL returns a permalink that resolves without knowing the author handle.
func (t Tweet) URL() string {
	return "https://x.com/i/web/status/" + t.ID
}

type Client struct {
	http    *http.Client
	baseURL string
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	baseURL string
	base    *http.Client
}

// WithBaseURL points the client at another API root, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(o *clientOptions) { o.baseURL = u }
}

// WithHTTPClient sets the client used underneath the OAuth signer.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.base = c }
}

// NewClient returns a client signing every request with creds.
func NewClient(creds Credentials, opts ...Option) *Client {
	o := clientOptions{baseURL: "https://api.twitter.com"}
	for _, opt := range opts {
		opt(&o)
	}

	ctx := context.Background()
	if o.base != nil {
		ctx = context.WithValue(ctx, oauth1.HTTPClient, o.base)
	}
	conf := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessTokenSecret)

	return &Client{
		http:    conf.Client(ctx, token),
		baseURL: strings.TrimRight(o.baseURL, "/"),
	}
}

type createTweetRequest struct {
	Text string `json:"text"`
}

type createTweetResponse struct {
	Data Tweet `json:"data"`
}

// CreateTweet publishes text. Non-2xx answers are returned as *APIError.
func (c *Client) CreateTweet(ctx context.Context, text string) (*Tweet, error) {
	body, err := json.Marshal(createTweetRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("encode tweet: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/2/tweets", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post tweet: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, data)
	}

	var out createTweetResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if out.Data.ID == "" {
		return nil, fmt.Errorf("decode response: missing tweet id")
	}
	return &out.Data, nil
}
