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

func TestRerankOrdersByScore(t *testing.T) {
	docs := []Doc{
		{ID: "a", Text: "qqqqqqqq"},
		{ID: "b", Text: "sichuan hotpot restaurant"},
		{ID: "c", Text: "zzzzzzzz"},
	}
	ranked := Rerank("sichuan hotpot", docs)
	require.Len(t, ranked, 3)
	assert.Equal(t, "b", ranked[0].ID)
	assert.GreaterOrEqual(t, ranked[0].Score, ranked[1].Score)
	assert.GreaterOrEqual(t, ranked[1].Score, ranked[2].Score)
}

func TestRerankKeepsDuplicateCandidatesApart(t *testing.T) {
	docs := []Doc{
		{ID: "first", Text: "noodle shop"},
		{ID: "second", Text: "noodle shop"},
	}
	ranked := Rerank("noodle shop", docs)
	require.Len(t, ranked, 2)
	assert.NotEqual(t, ranked[0].Text, ranked[1].Text)
	ids := []string{ranked[0].ID, ranked[1].ID}
	assert.ElementsMatch(t, []string{"first", "second"}, ids)
}

func TestRerankTiesKeepInputOrder(t *testing.T) {
	docs := []Doc{
		{ID: "x", Text: "abcdef"},
		{ID: "y", Text: "abcdef-"},
	}
	ranked := Rerank("zzz", docs)
	require.Len(t, ranked, 2)
	if ranked[0].Score == ranked[1].Score {
		assert.Equal(t, "x", ranked[0].ID)
	}
}

func TestFuzzyMatch(t *testing.T) {
	assert.True(t, FuzzyMatch("hangzhou", "hangzhou west lake district"))
	assert.False(t, FuzzyMatch("hangzhou", "qqqq"))
}

