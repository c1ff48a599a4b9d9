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
	"strings"
)

// SignerUnavailable is the error for a resolved signer that the signing
// application holds no keys for.
type SignerUnavailable struct {
	Description Description
	Signer      string
	Available   []string
}

// Error implements the error interface.
func (s SignerUnavailable) Error() string {
	return fmt.Sprintf("signer unavailable (signer: %s, available: [%s]): %s", s.Signer, strings.Join(s.Available, " "), s.Description)
}
