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

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionCompareWithToolCall(t *testing.T) {
	action := Action{
		Name:        "create_delivery_order",
		Arguments:   map[string]any{"user_id": "u1", "store_id": "s1", "note": "hurry"},
		CompareArgs: []string{"user_id", "store_id"},
	}

	match := ToolCall{Name: "create_delivery_order", Arguments: map[string]any{"user_id": "u1", "store_id": "s1", "note": "whatever"}}
	assert.True(t, action.CompareWithToolCall(match))

	wrongName := match
	wrongName.Name = "pay_order"
	assert.False(t, action.CompareWithToolCall(wrongName))

	wrongValue := ToolCall{Name: "create_delivery_order", Arguments: map[string]any{"user_id": "u2", "store_id": "s1"}}
	assert.False(t, action.CompareWithToolCall(wrongValue))
}

func TestActionCompareAllArgumentsWhenUnset(t *testing.T) {
	action := Action{
		Name:      "pay_order",
		Arguments: map[string]any{"order_id": "OT123", "user_id": "u1"},
	}
	assert.True(t, action.CompareWithToolCall(ToolCall{
		Name:      "pay_order",
		Arguments: map[string]any{"order_id": "OT123", "user_id": "u1"},
	}))
	assert.False(t, action.CompareWithToolCall(ToolCall{
		Name:      "pay_order",
		Arguments: map[string]any{"order_id": "OT999", "user_id": "u1"},
	}))
}

func TestActionCompareNumbersByValue(t *testing.T) {
	action := Action{
		Name:        "create_order",
		Arguments:   map[string]any{"quantity": 2},
		CompareArgs: []string{"quantity"},
	}
	// Task files decode numbers as float64.
	assert.True(t, action.CompareWithToolCall(ToolCall{
		Name:      "create_order",
		Arguments: map[string]any{"quantity": float64(2)},
	}))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "25.0", FormatFloat(25))
	assert.Equal(t, "0.0", FormatFloat(0))
	assert.Equal(t, "-3.0", FormatFloat(-3))
	assert.Equal(t, "25.5", FormatFloat(25.5))
	assert.Equal(t, "0.125", FormatFloat(0.125))
}

func TestFormatStringList(t *testing.T) {
	assert.Equal(t, "[]", FormatStringList(nil))
	assert.Equal(t, "['a']", FormatStringList([]string{"a"}))
	assert.Equal(t, "['a', 'b']", FormatStringList([]string{"a", "b"}))
}

func TestEvaluationCriteriaIsEmpty(t *testing.T) {
	var criteria *EvaluationCriteria
	assert.True(t, criteria.IsEmpty())
	assert.True(t, (&EvaluationCriteria{}).IsEmpty())
	assert.False(t, (&EvaluationCriteria{OverallRubrics: []string{"r"}}).IsEmpty())
	assert.False(t, (&EvaluationCriteria{ExpectedStates: []ExpectedState{{}}}).IsEmpty())
}
