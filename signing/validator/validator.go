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

package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/optakt/steem-uri/signing/failure"
)

// Validator validates the structure of signing API requests and of the
// signing options given by signing applications.
type Validator struct {
	validate *validator.Validate
}

// New creates a new validator.
func New() *Validator {

	v := Validator{
		validate: newRequestValidator(),
	}

	return &v
}

// Request validates the given request, which should be one of the signing
// API request types, signing options or signing parameters. It returns the
// first problem found as an invalid request failure.
func (v *Validator) Request(request interface{}) error {

	err := v.validate.Struct(request)
	// If validation passed ok - we're done.
	if err == nil {
		return nil
	}

	// InvalidValidationError is returned by the validation library in cases of invalid usage,
	// more precisely, passing a non-struct to `validate.Struct()` method.
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("could not validate request: %w", err)
	}

	// Process validation errors we have found. Return the first one we encounter.
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return fmt.Errorf("could not validate request: %w", err)
	}
	first := errs[0]

	return failure.InvalidRequest{
		Description: failure.NewDescription(first.Tag(),
			failure.WithString("value", fmt.Sprint(first.Value())),
		),
		Field: first.Field(),
	}
}
