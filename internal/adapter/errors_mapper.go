// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusRequestEntityTooLarge: ErrTooLarge,
	http.StatusUnsupportedMediaType:  ErrUnsupportedFormat,
	http.StatusUnprocessableEntity:   ErrRejected,
	http.StatusBadGateway:            ErrBadGateway,
	http.StatusServiceUnavailable:    ErrUnavailable,
	http.StatusInternalServerError:   ErrInternalServerError,
}

type errorBody struct {
	Error string `json:"error"`
	Line  int    `json:"line"`
}

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	raw := strings.TrimSpace(string(resp.Body()))

	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Error == "" {
		body = errorBody{Error: raw}
	}

	sentinel, ok := statusErrors[status]
	if !ok {
		if body.Error == "" {
			body.Error = http.StatusText(status)
		}
		return fmt.Errorf("http %d: %s", status, body.Error)
	}

	return &ServerError{Status: status, Message: body.Error, Line: body.Line, Err: sentinel}
}
