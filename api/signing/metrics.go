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
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelRoute  = "route"
	labelStatus = "status"
)

var (
	requests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "signing_requests_total",
		Help: "the number of handled signing API requests",
	}, []string{labelRoute, labelStatus})

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signing_decode_cache_hits_total",
		Help: "the number of signing URIs served from the decode cache",
	})
)

// Metrics is a middleware that counts handled requests by route and status.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {

		err := next(ctx)

		status := ctx.Response().Status
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
		} else if err != nil {
			status = http.StatusInternalServerError
		}

		requests.With(prometheus.Labels{
			labelRoute:  ctx.Path(),
			labelStatus: strconv.Itoa(status),
		}).Inc()

		return err
	}
}
