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

// Package delivery implements the food-delivery domain: stores with product
// catalogs, order creation with dispatch scheduling, and the payment,
// modification and cancellation lifecycle.
package delivery

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/vitabench/vita/pkg/environment"
	"github.com/vitabench/vita/pkg/model"
	"github.com/vitabench/vita/pkg/utils"
)

// Attributes is a product's specification text. Task data carries it either
// as a string or as a list that collapses to a comma-joined string.
type Attributes string

func (a *Attributes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Attributes(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*a = Attributes(strings.Join(list, ", "))
	return nil
}

// StoreProduct is one purchasable item of a store.
type StoreProduct struct {
	ProductID  string     `json:"product_id"`
	Name       string     `json:"name"`
	StoreID    string     `json:"store_id"`
	StoreName  string     `json:"store_name"`
	Attributes Attributes `json:"attributes"`
	Quantity   int        `json:"quantity"`
	Price      float64    `json:"price"`
	Tags       []string   `json:"tags"`
}

func (p *StoreProduct) String() string {
	return fmt.Sprintf("StoreProduct(store_name=%s, store_id=%s, product_name=%s, product_id=%s, attributes=%s, quantity=%d, price=%s, tags=%s)",
		p.StoreName, p.StoreID, p.Name, p.ProductID, p.Attributes, p.Quantity,
		model.FormatFloat(p.Price), model.FormatStringList(p.Tags))
}

// Store is a delivery merchant with its product catalog.
type Store struct {
	StoreID  string          `json:"store_id"`
	Name     string          `json:"name"`
	Score    float64         `json:"score"`
	Location model.Location  `json:"location"`
	Tags     []string        `json:"tags"`
	Products []*StoreProduct `json:"products"`
}

// String renders the store without its products.
func (s *Store) String() string {
	return fmt.Sprintf("Store(name=%s, store_id=%s, score=%s, location=%s, tags=%s)",
		s.Name, s.StoreID, model.FormatFloat(s.Score), s.Location, model.FormatStringList(s.Tags))
}

// Detail renders the store followed by every product.
func (s *Store) Detail() string {
	products := make([]string, len(s.Products))
	for i, p := range s.Products {
		products[i] = p.String()
	}
	return fmt.Sprintf("Store(name=%s, store_id=%s, score=%s, location=%s, tags=%s), products=%s",
		s.Name, s.StoreID, model.FormatFloat(s.Score), s.Location, model.FormatStringList(s.Tags),
		strings.Join(products, "\n"))
}

// DB is the delivery domain database.
type DB struct {
	environment.DB
	Stores map[string]*Store `json:"stores"`
}

// Statistics counts the domain entities.
func (db *DB) Statistics() map[string]any {
	return map[string]any{"num_stores": len(db.Stores)}
}

// Hash fingerprints the full database state.
func (db *DB) Hash() string {
	return utils.Hash(db)
}

// Nearby lists stores within rng meters of the coordinate.
func (db *DB) Nearby(longitude, latitude, rng float64) []string {
	var matches []string
	for _, id := range db.storeIDs() {
		store := db.Stores[id]
		distance := environment.Distance(longitude, latitude, store.Location.Longitude, store.Location.Latitude)
		if distance <= rng {
			matches = append(matches, store.String())
		}
	}
	return matches
}

func (db *DB) storeIDs() []string {
	ids := make([]string, 0, len(db.Stores))
	for id := range db.Stores {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (db *DB) store(storeID string) (*Store, error) {
	store, ok := db.Stores[storeID]
	if !ok {
		return nil, fmt.Errorf("Store %s not found", storeID)
	}
	return store, nil
}

func (db *DB) product(productID string) (*StoreProduct, error) {
	for _, id := range db.storeIDs() {
		for _, product := range db.Stores[id].Products {
			if product.ProductID == productID {
				return product, nil
			}
		}
	}
	return nil, fmt.Errorf("%s not found", productID)
}
