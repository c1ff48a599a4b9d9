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

// MalformedURI is the error for a signing request that can not be parsed as
// a URI, or whose path does not have the expected structure.
type MalformedURI struct {
	Description Description
	URI         string
}

// Error implements the error interface.
func (m MalformedURI) Error() string {
	return fmt.Sprintf("malformed signing URI (uri: %s): %s", m.URI, m.Description)
}
