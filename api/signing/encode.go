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
	"net/http"

	"github.com/labstack/echo/v4"
)

// EncodeTransaction creates a signing request for a full transaction.
func (c *Controller) EncodeTransaction(ctx echo.Context) error {

	var req EncodeTransactionRequest
	err := ctx.Bind(&req)
	if err != nil {
		return newHTTPError(http.StatusBadRequest, "could not unmarshal request", err)
	}

	err = c.validate.Request(req)
	if err != nil {
		return failed("invalid encode request", err)
	}

	uri, err := c.codec.EncodeTx(req.Transaction, req.Params)
	if err != nil {
		c.log.Error().Err(err).Msg("could not encode transaction")
		return failed("could not encode transaction", err)
	}

	return ctx.JSON(http.StatusOK, URIResponse{URI: uri})
}

// EncodeOperation creates a signing request for a single operation.
func (c *Controller) EncodeOperation(ctx echo.Context) error {

	var req EncodeOperationRequest
	err := ctx.Bind(&req)
	if err != nil {
		return newHTTPError(http.StatusBadRequest, "could not unmarshal request", err)
	}

	err = c.validate.Request(req)
	if err != nil {
		return failed("invalid encode request", err)
	}

	uri, err := c.codec.EncodeOp(req.Operation, req.Params)
	if err != nil {
		c.log.Error().Err(err).Str("operation", req.Operation.Name).Msg("could not encode operation")
		return failed("could not encode operation", err)
	}

	return ctx.JSON(http.StatusOK, URIResponse{URI: uri})
}

// EncodeOperations creates a signing request for a list of operations.
func (c *Controller) EncodeOperations(ctx echo.Context) error {

	var req EncodeOperationsRequest
	err := ctx.Bind(&req)
	if err != nil {
		return newHTTPError(http.StatusBadRequest, "could not unmarshal request", err)
	}

	err = c.validate.Request(req)
	if err != nil {
		return failed("invalid encode request", err)
	}

	uri, err := c.codec.EncodeOps(req.Operations, req.Params)
	if err != nil {
		c.log.Error().Err(err).Int("operations", len(req.Operations)).Msg("could not encode operations")
		return failed("could not encode operations", err)
	}

	return ctx.JSON(http.StatusOK, URIResponse{URI: uri})
}
