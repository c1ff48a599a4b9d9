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

package uri

// Error descriptions for common errors.
const (
	uriUnparseable   = "could not parse signing URI"
	queryUnparseable = "could not parse query string"
	pathInvalid      = "signing URI path must be a kind and a payload"
	protocolInvalid  = "unsupported protocol"
	actionInvalid    = "unsupported action"
	kindUnknown      = "unknown signing action"
	callbackEncoding = "could not decode callback"

	txInvalid  = "payload is not a valid transaction"
	opInvalid  = "payload is not a valid operation"
	opsInvalid = "payload is not a valid list of operations"

	aliasArgCount   = "invalid number of alias arguments"
	aliasArgEscaped = "alias argument is not properly escaped"
	aliasArgInvalid = "could not parse alias argument"
)
