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

// Callback fills in the template tokens of a callback URL with the given
// confirmation.
func (c *Controller) Callback(ctx echo.Context) error {

	var req CallbackRequest
	err := ctx.Bind(&req)
	if err != nil {
		return newHTTPError(http.StatusBadRequest, "could not unmarshal request", err)
	}

	err = c.validate.Request(req)
	if err != nil {
		return failed("invalid callback request", err)
	}

	res := CallbackResponse{
		URL: resolver.Callback(req.URL, req.Confirmation),
	}

	return ctx.JSON(http.StatusOK, res)
}
