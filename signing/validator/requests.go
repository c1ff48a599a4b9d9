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
	"encoding/hex"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/optakt/steem-uri/api/signing"
	"github.com/optakt/steem-uri/models/steem"
)

// Field names are displayed if the code deals with the plain `error` types instead of the structured validation errors.
// Since we turn validation errors into failures, they end up as the failure's field.
const (
	signersField    = "signers"
	signerField     = "signer"
	preferredField  = "preferred_signer"
	expirationField = "expiration"
	callbackField   = "callback"
	uriField        = "uri"
	urlField        = "url"
	operationsField = "operations"
	operationField  = "operation"
	signatureField  = "sig"
)

func newRequestValidator() *validator.Validate {

	v := validator.New()

	// Register custom validators for known types.
	// We register a single type per validator, so we can safely perform type
	// assertion of the provided `validator.StructLevel` to the correct type.
	v.RegisterStructValidation(optionsValidator, steem.Options{})
	v.RegisterStructValidation(parametersValidator, steem.Parameters{})
	v.RegisterStructValidation(confirmationValidator, steem.Confirmation{})

	// Register custom top-level validators. These validate the entire request
	// object, compared to the ones above which validate a specific type
	// within the request.
	v.RegisterStructValidation(encodeTransactionValidator, signing.EncodeTransactionRequest{})
	v.RegisterStructValidation(encodeOperationValidator, signing.EncodeOperationRequest{})
	v.RegisterStructValidation(encodeOperationsValidator, signing.EncodeOperationsRequest{})
	v.RegisterStructValidation(decodeValidator, signing.DecodeRequest{})
	v.RegisterStructValidation(resolveValidator, signing.ResolveRequest{})
	v.RegisterStructValidation(callbackValidator, signing.CallbackRequest{})

	return v
}

func optionsValidator(sl validator.StructLevel) {
	options := sl.Current().Interface().(steem.Options)
	if len(options.Signers) == 0 {
		sl.ReportError(options.Signers, signersField, signersField, signersEmpty, "")
	}
	for _, signer := range options.Signers {
		if AccountName(signer) != nil {
			sl.ReportError(signer, signersField, signersField, accountInvalid, "")
		}
	}
	if options.PreferredSigner != "" && AccountName(options.PreferredSigner) != nil {
		sl.ReportError(options.PreferredSigner, preferredField, preferredField, accountInvalid, "")
	}
	if options.Expiration.IsZero() {
		sl.ReportError(options.Expiration, expirationField, expirationField, expirationMissing, "")
	}
}

func parametersValidator(sl validator.StructLevel) {
	params := sl.Current().Interface().(steem.Parameters)
	if params.Signer != "" && AccountName(params.Signer) != nil {
		sl.ReportError(params.Signer, signerField, signerField, accountInvalid, "")
	}
	if params.Callback != "" {
		u, err := url.Parse(params.Callback)
		if err != nil || !u.IsAbs() {
			sl.ReportError(params.Callback, callbackField, callbackField, callbackInvalid, "")
		}
	}
}

func confirmationValidator(sl validator.StructLevel) {
	conf := sl.Current().Interface().(steem.Confirmation)
	_, err := hex.DecodeString(conf.Signature)
	if conf.Signature == "" || err != nil {
		sl.ReportError(conf.Signature, signatureField, signatureField, signatureInvalid, "")
	}
}

func encodeTransactionValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(signing.EncodeTransactionRequest)
	if len(req.Transaction.Operations) == 0 {
		sl.ReportError(req.Transaction.Operations, operationsField, operationsField, operationsEmpty, "")
	}
	for _, op := range req.Transaction.Operations {
		if op.Name == "" {
			sl.ReportError(op.Name, operationField, operationField, operationUnnamed, "")
		}
	}
}

func encodeOperationValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(signing.EncodeOperationRequest)
	if req.Operation.Name == "" {
		sl.ReportError(req.Operation.Name, operationField, operationField, operationUnnamed, "")
	}
}

func encodeOperationsValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(signing.EncodeOperationsRequest)
	if len(req.Operations) == 0 {
		sl.ReportError(req.Operations, operationsField, operationsField, operationsEmpty, "")
	}
	for _, op := range req.Operations {
		if op.Name == "" {
			sl.ReportError(op.Name, operationField, operationField, operationUnnamed, "")
		}
	}
}

func decodeValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(signing.DecodeRequest)
	if req.URI == "" {
		sl.ReportError(req.URI, uriField, uriField, uriEmpty, "")
	}
}

func resolveValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(signing.ResolveRequest)
	if req.URI == "" {
		sl.ReportError(req.URI, uriField, uriField, uriEmpty, "")
	}
}

func callbackValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(signing.CallbackRequest)
	if req.URL == "" {
		sl.ReportError(req.URL, urlField, urlField, urlEmpty, "")
	}
}
