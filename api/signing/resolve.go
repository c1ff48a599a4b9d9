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

	"github.com/optakt/steem-uri/signing/resolver"
)

// Resolve decodes a signing request and resolves its placeholders with the
// given options, returning the transaction ready to be signed.
func (c *Controller) Resolve(ctx echo.Context) error {

	var req ResolveRequest
	err := ctx.Bind(&req)
	if err != nil {
		return newHTTPError(http.StatusBadRequest, "could not unmarshal request", err)
	}

	err = c.validate.Request(req)
	if err != nil {
		return failed("invalid resolve request", err)
	}

	tx, params, err := c.decode(req.URI)
	if err != nil {
		c.log.Debug().Err(err).Msg("could not decode signing request")
		return failed("could not decode signing request", err)
	}

	result, err := resolver.Transaction(tx, params, req.Options)
	if err != nil {
		c.log.Debug().Err(err).Msg("could not resolve signing request")
		return failed("could not resolve signing request", err)
	}

	c.log.Info().
		Str("signer", result.Signer).
		Int("operations", len(result.Transaction.Operations)).
		Bool("no_broadcast", params.NoBroadcast).
		Msg("signing request resolved")

	res := ResolveResponse{
		Transaction: result.Transaction,
		Signer:      result.Signer,
		Params:      params,
	}

	return ctx.JSON(http.StatusOK, res)
}
