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

package environment

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ToolType classifies a tool by its effect on the database.
type ToolType string

const (
	ToolTypeRead    ToolType = "read"
	ToolTypeWrite   ToolType = "write"
	ToolTypeThink   ToolType = "think"
	ToolTypeGeneric ToolType = "generic"
)

// PreconditionError is a violated tool precondition. Unlike other errors it
// is not a failed turn: dispatch surfaces the message to the agent as the
// tool result so the agent can correct its call.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string { return e.Message }

// Preconditionf builds a PreconditionError with a formatted message.
func Preconditionf(format string, a ...any) *PreconditionError {
	return &PreconditionError{Message: fmt.Sprintf(format, a...)}
}

// Tool is one callable environment operation. Arguments arrive as the
// decoded JSON object from the model's tool call.
type Tool struct {
	Name       string
	Type       ToolType
	Parameters map[string]any
	run        func(args map[string]any) (string, error)
}

// NewTool wraps a typed handler. The argument struct's json tags drive both
// the generated parameter schema and the decoding of incoming calls; numeric
// strings and other near-miss types are coerced rather than rejected.
func NewTool[A any](name string, toolType ToolType, run func(args A) (string, error)) *Tool {
	return &Tool{
		Name:       name,
		Type:       toolType,
		Parameters: generateSchema[A](),
		run: func(raw map[string]any) (string, error) {
			var args A
			decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				Result:           &args,
				TagName:          "json",
				WeaklyTypedInput: true,
			})
			if err != nil {
				return "", fmt.Errorf("failed to build argument decoder for %s: %w", name, err)
			}
			if err := decoder.Decode(raw); err != nil {
				return "", fmt.Errorf("invalid arguments for %s: %w", name, err)
			}
			return run(args)
		},
	}
}

// Call invokes the tool. A violated precondition becomes the result string;
// any other error propagates to the caller as a failed turn.
func (t *Tool) Call(args map[string]any) (string, error) {
	result, err := t.run(args)
	if err != nil {
		var pre *PreconditionError
		if errors.As(err, &pre) {
			return pre.Message, nil
		}
		return "", err
	}
	return result, nil
}
