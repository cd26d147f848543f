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

// Package environment implements the simulated world an agent acts on: a
// per-simulation database of domain entities, a typed tool catalog with a
// JSON-schema view for the LLM, and the dispatch path between them.
package environment

import (
	"fmt"
	"sort"
	"time"

	"github.com/vitabench/vita/pkg/model"
	"github.com/vitabench/vita/pkg/utils"
)

// DB holds the world context shared by every domain: simulated time, the
// active user, weather and geocoding tables, behavior history and the
// mutable order table. Domain databases embed it.
type DB struct {
	Time                    string                  `json:"time,omitempty"`
	UserID                  string                  `json:"user_id,omitempty"`
	Weather                 []model.Weather         `json:"weather,omitempty"`
	Locations               []model.Location        `json:"location,omitempty"`
	UserHistoricalBehaviors map[string]any          `json:"user_historical_behaviors,omitempty"`
	Orders                  map[string]*model.Order `json:"orders,omitempty"`
}

// Database is one domain's mutable state. Statistics and Nearby let the
// shared tools work against any domain without knowing its entity kinds.
type Database interface {
	Core() *DB
	Statistics() map[string]any
	Nearby(longitude, latitude, rng float64) []string
	Hash() string
}

// Core returns the shared tables.
func (db *DB) Core() *DB { return db }

// Now returns the simulated time when the task pins one, wall clock time
// otherwise.
func (db *DB) Now() string {
	if db.Time != "" {
		return db.Time
	}
	return time.Now().Format(utils.DateTimeLayout)
}

// OrderIDs returns the order ids in sorted order for deterministic
// iteration.
func (db *DB) OrderIDs() []string {
	ids := make([]string, 0, len(db.Orders))
	for id := range db.Orders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type orderIDScheme struct {
	hashPrefix string
	idPrefix   string
	params     []string
}

var orderIDSchemes = map[string]orderIDScheme{
	"delivery":            {hashPrefix: "#DELIVERY#", idPrefix: "OT", params: []string{"user_id"}},
	"hotel":               {hashPrefix: "#HOTEL#", idPrefix: "OO", params: []string{"hotel_id", "product_id", "user_id"}},
	"attraction":          {hashPrefix: "#ATTRACTION#", idPrefix: "OO", params: []string{"user_id"}},
	"flight":              {hashPrefix: "#FLIGHT#", idPrefix: "OO", params: []string{"user_id"}},
	"train":               {hashPrefix: "#TRAIN#", idPrefix: "OO", params: []string{"user_id"}},
	"instore":             {hashPrefix: "#INSTORE#", idPrefix: "OI"},
	"instore_book":        {hashPrefix: "#INSTORE_BOOK#", idPrefix: "OI"},
	"instore_reservation": {hashPrefix: "#INSTORE_RESV#", idPrefix: "OI"},
}

// AssignOrderID derives a new order id for the scenario: a two-letter
// channel prefix followed by the first 10 hex chars of a salted hash over
// the scenario's identifying parameters.
func (db *DB) AssignOrderID(scenario, userID string, extra map[string]string) (string, error) {
	scheme, ok := orderIDSchemes[scenario]
	if !ok {
		return "", fmt.Errorf("unsupported scenario type: %s", scenario)
	}

	hashInput := scheme.hashPrefix
	for _, param := range scheme.params {
		if param == "user_id" {
			hashInput += userID
			continue
		}
		value, ok := extra[param]
		if !ok {
			return "", fmt.Errorf("missing required parameter: %s", param)
		}
		hashInput += value
	}

	timestamp := fmt.Sprintf("%.6f", float64(time.Now().UnixMicro())/1e6)
	return scheme.idPrefix + utils.HashString(hashInput+timestamp)[:10], nil
}
