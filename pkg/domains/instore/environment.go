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

package instore

import (
	"encoding/json"
	"fmt"

	"github.com/vitabench/vita/pkg/environment"
	"github.com/vitabench/vita/pkg/model"
)

// DomainName identifies this domain in tasks and results.
const DomainName = "instore"

var envKeys = []string{"shops", "orders", "reservations", "books", "time", "user_id", "weather", "location", "user_historical_behaviors"}

// NewEnvironment builds the in-store environment from a task's environment
// blob. Unknown keys are dropped; shops, books, reservations and orders
// default to empty.
func NewEnvironment(blob map[string]any, language string) (*environment.Environment, error) {
	filtered := make(map[string]any, len(envKeys))
	for _, key := range envKeys {
		if value, ok := blob[key]; ok {
			filtered[key] = value
		}
	}
	for _, key := range []string{"shops", "books", "reservations", "orders"} {
		if _, ok := filtered[key]; !ok {
			filtered[key] = map[string]any{}
		}
	}

	encoded, err := json.Marshal(filtered)
	if err != nil {
		return nil, fmt.Errorf("failed to encode instore environment: %w", err)
	}
	db := &DB{}
	if err := json.Unmarshal(encoded, db); err != nil {
		return nil, fmt.Errorf("failed to decode instore environment: %w", err)
	}
	if db.Orders == nil {
		db.Orders = make(map[string]*model.Order)
	}
	for _, order := range db.Orders {
		order.Normalize()
	}

	tk := environment.NewToolkit(db, language)
	RegisterTools(tk, db)
	return environment.New(DomainName, environment.AgentPolicy(language), tk, Descriptions), nil
}

// LoadTasks reads this domain's task set for the language.
func LoadTasks(dataDir, language string) ([]model.Task, error) {
	return model.LoadTasksFile(model.TaskFilePath(dataDir, DomainName, language))
}
