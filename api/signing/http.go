// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package signing

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/optakt/steem-uri/signing/failure"
)

type httpError struct {
	Message string `json:"message"`
	Err     string `json:"error,omitempty"`
}

func (e httpError) Error() string {
	if e.Err == "" {
		return e.Message
	}
	return fmt.Sprintf("%v (err: %v)", e.Message, e.Err)
}

func newHTTPError(code int, message string, err error) *echo.HTTPError {
	e := httpError{
		Message: message,
	}
	if err != nil {
		e.Err = err.Error()
	}

	return echo.NewHTTPError(code, e)
}

// failed maps errors from the signing packages to HTTP errors. Validation
// failures of the request itself are bad requests, protocol failures of the
// signing request are unprocessable, and an unavailable signer is forbidden.
func failed(message string, err error) *echo.HTTPError {

	if errors.As(err, &failure.InvalidRequest{}) {
		return newHTTPError(http.StatusBadRequest, message, err)
	}

	if errors.As(err, &failure.SignerUnavailable{}) {
		return newHTTPError(http.StatusForbidden, message, err)
	}

	switch {
	case errors.As(err, &failure.MalformedURI{}),
		errors.As(err, &failure.InvalidProtocol{}),
		errors.As(err, &failure.InvalidAction{}),
		errors.As(err, &failure.InvalidSigningAction{}),
		errors.As(err, &failure.InvalidAliasArguments{}),
		errors.As(err, &failure.InvalidPayload{}),
		errors.As(err, &failure.MalformedEncoding{}):
		return newHTTPError(http.StatusUnprocessableEntity, message, err)
	}

	return newHTTPError(http.StatusInternalServerError, message, err)
}
