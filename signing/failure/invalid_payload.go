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

package failure

import (
	"fmt"
)

// InvalidPayload is the error for a payload that could not be decoded. The
// encoding names the layer that failed, and the cause is the error returned
// by that layer, if any.
type InvalidPayload struct {
	Description Description
	Encoding    string
	Cause       error
}

// Error implements the error interface.
func (i InvalidPayload) Error() string {
	return fmt.Sprintf("invalid payload (encoding: %s): %s", i.Encoding, i.Description)
}

// Unwrap returns the underlying decoding error.
func (i InvalidPayload) Unwrap() error {
	return i.Cause
}
