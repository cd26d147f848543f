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

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFormats(t *testing.T) {
	assert.True(t, CheckTimeFormat("2025-07-05 10:30:00"))
	assert.False(t, CheckTimeFormat("2025-07-05"))
	assert.False(t, CheckTimeFormat("2025/07/05 10:30:00"))

	assert.True(t, CheckDateFormat("2025-07-05"))
	assert.False(t, CheckDateFormat("2025-13-05"))
	assert.False(t, CheckDateFormat("2025-07-05 10:30:00"))
}

func TestWeekday(t *testing.T) {
	en, err := Weekday("2025-07-05 10:00:00", "english")
	require.NoError(t, err)
	assert.Equal(t, "Saturday", en)

	zh, err := Weekday("2025-07-05 10:00:00", "chinese")
	require.NoError(t, err)
	assert.Equal(t, "星期六", zh)

	_, err = Weekday("not a time", "english")
	assert.Error(t, err)
}


func TestHashIsOrderIndependent(t *testing.T) {
	a := map[string]any{"x": 1, "y": "z"}
	b := map[string]any{"y": "z", "x": 1}
	assert.Equal(t, Hash(a), Hash(b))
	assert.NotEqual(t, Hash(a), Hash(map[string]any{"x": 2, "y": "z"}))
	assert.Equal(t, HashString("abc"), Hash("abc"))
	assert.Len(t, HashString("abc"), 64)
}
