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
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// generateSchema reflects a tool argument struct into the JSON schema the
// chat API expects under parameters. json tags name the arguments;
// jsonschema:"required" marks them required.
func generateSchema[T any]() map[string]any {
	reflector := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(new(T))

	encoded, err := json.Marshal(schema)
	if err != nil {
		return map[string]any{"type": "object", "properties": map[string]any{}}
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(encoded, &schemaMap); err != nil {
		return map[string]any{"type": "object", "properties": map[string]any{}}
	}
	delete(schemaMap, "$schema")
	delete(schemaMap, "$id")
	delete(schemaMap, "additionalProperties")

	result := map[string]any{"type": "object"}
	if properties, ok := schemaMap["properties"]; ok {
		result["properties"] = properties
	} else {
		result["properties"] = map[string]any{}
	}
	if required, ok := schemaMap["required"]; ok {
		result["required"] = required
	}
	return result
}
