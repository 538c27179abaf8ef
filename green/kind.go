// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package green

import "fmt"

// Kind classifies a node or token. Its values are defined by the grammar
// driving the builder; this package only ever compares kinds for equality
// and never interprets them.
type Kind uint32

// String implements [fmt.Stringer].
func (k Kind) String() string {
	return fmt.Sprintf("Kind(%d)", uint32(k))
}
