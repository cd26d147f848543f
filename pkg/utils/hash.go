// Copyright 2025 The VITA Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package utils provides shared helpers for the VITA benchmark harness:
// canonical hashing, fuzzy string ranking, localized time formatting and
// token estimation.
package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// HashString returns the hex sha-256 digest of the raw string.
func HashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Hash returns the hex sha-256 digest of the canonical JSON encoding of obj.
// Map keys are emitted in sorted order, so structurally equal values hash
// equal regardless of insertion order. Strings are hashed as-is.
func Hash(obj any) string {
	if s, ok := obj.(string); ok {
		return HashString(s)
	}
	data, err := json.Marshal(obj)
	if err != nil {
		// Unmarshalable values still need a stable digest.
		return HashString(fmt.Sprintf("%v", obj))
	}
	return HashString(string(data))
}
