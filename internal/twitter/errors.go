// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package twitter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	// Messages are the human-readable details found in the body, in order,
	// without duplicates.
	Messages []string
}

func (e *APIError) Error() string {
	head := fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	if len(e.Messages) == 0 {
		return head
	}
	return head + ": " + strings.Join(e.Messages, "; ")
}

// problem covers both the v2 problem document and the legacy errors array.
type problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Errors []struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	} `json:"errors"`
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status}
	var p problem
	if err := json.Unmarshal(body, &p); err != nil {
		return e
	}

	seen := map[string]bool{http.StatusText(status): true, "": true}
	add := func(s string) {
		s = strings.TrimSpace(s)
		if seen[s] {
			return
		}
		seen[s] = true
		e.Messages = append(e.Messages, s)
	}
	add(p.Detail)
	for _, pe := range p.Errors {
		add(pe.Message)
		add(pe.Detail)
	}
	if len(e.Messages) == 0 {
		add(p.Title)
	}
	return e
}
