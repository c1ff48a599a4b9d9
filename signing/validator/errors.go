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

// Error descriptions for common errors.
const (
	accountInvalid    = "account name is not valid"
	signersEmpty      = "signer list is empty"
	expirationMissing = "expiration is missing"
	callbackInvalid   = "callback is not a valid absolute URL"
	uriEmpty          = "signing URI is empty"
	urlEmpty          = "callback URL is empty"
	operationsEmpty   = "operation list is empty"
	operationUnnamed  = "operation name is empty"
	signatureInvalid  = "signature is not a valid hex-encoded string"
)
