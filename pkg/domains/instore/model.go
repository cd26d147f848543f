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

// Package instore implements the in-store dining domain: shop and product
// search, product orders, table booking and reservations.
package instore

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vitabench/vita/pkg/environment"
	"github.com/vitabench/vita/pkg/model"
	"github.com/vitabench/vita/pkg/utils"
)

// ShopProduct is one purchasable item in a shop.
type ShopProduct struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	ShopID    string   `json:"shop_id"`
	Price     float64  `json:"price"`
	Quantity  int      `json:"quantity"`
	Tags      []string `json:"tags"`
}

func (p *ShopProduct) String() string {
	return fmt.Sprintf("ShopProduct(shop_id=%s, product_id=%s, name=%s, price=%s, quantity=%d, tags=%s)",
		p.ShopID, p.ProductID, p.Name, model.FormatFloat(p.Price), p.Quantity, model.FormatStringList(p.Tags))
}

// Shop is a merchant the user can order from, book a table at, or queue for.
type Shop struct {
	ShopID            string         `json:"shop_id"`
	ShopName          string         `json:"shop_name"`
	Score             float64        `json:"score"`
	Location          model.Location `json:"location"`
	Tags              []string       `json:"tags"`
	EnableBook        bool           `json:"enable_book"`
	BookPrice         float64        `json:"book_price"`
	EnableReservation bool           `json:"enable_reservation"`
	Products          []*ShopProduct `json:"products"`
}

func (s *Shop) String() string {
	return fmt.Sprintf("Shop(shop_name=%s, shop_id=%s, score=%s, location=%s, tags=%s, enable_book=%s, book_price=%s, enable_reservation=%s)",
		s.ShopName, s.ShopID, model.FormatFloat(s.Score), s.Location, model.FormatStringList(s.Tags),
		formatBool(s.EnableBook), model.FormatFloat(s.BookPrice), formatBool(s.EnableReservation))
}

func (s *Shop) Detail() string {
	products := make([]string, len(s.Products))
	for i, p := range s.Products {
		products[i] = p.String()
	}
	return fmt.Sprintf("Shop(shop_name=%s, shop_id=%s, score=%s, location=%s, tags=%s, enable_book=%s, book_price=%s, enable_reservation=%s, products=%s)",
		s.ShopName, s.ShopID, model.FormatFloat(s.Score), s.Location, model.FormatStringList(s.Tags),
		formatBool(s.EnableBook), model.FormatFloat(s.BookPrice), formatBool(s.EnableReservation),
		strings.Join(products, "\n"))
}

// BookInfo is a table booking at a shop.
type BookInfo struct {
	BookID        string            `json:"book_id"`
	ShopID        string            `json:"shop_id"`
	BookTime      string            `json:"book_time"`
	UpdateTime    string            `json:"update_time"`
	CustomerID    string            `json:"customer_id"`
	CustomerCount int               `json:"customer_count"`
	BookPrice     float64           `json:"book_price"`
	Status        model.OrderStatus `json:"status"`
}

func (b *BookInfo) String() string {
	return fmt.Sprintf("BookInfo(book_id=%s,shop_id=%s, book_time=%s, customer_id=%s, customer_count=%d, book_price=%s, status=%s",
		b.BookID, b.ShopID, b.BookTime, b.CustomerID, b.CustomerCount, model.FormatFloat(b.BookPrice), b.Status)
}

// ReservationInfo is a queue-number reservation at a shop.
type ReservationInfo struct {
	ReservationID   string            `json:"reservation_id"`
	ShopID          string            `json:"shop_id"`
	ReservationTime string            `json:"reservation_time"`
	UpdateTime      string            `json:"update_time"`
	CustomerID      string            `json:"customer_id"`
	CustomerCount   int               `json:"customer_count"`
	Status          model.OrderStatus `json:"status"`
}

func (r *ReservationInfo) String() string {
	return fmt.Sprintf("ReservationInfo(reservation_id=%s,shop_id=%s, reservation_time=%s, customer_id=%s, customer_count=%d, status=%s",
		r.ReservationID, r.ShopID, r.ReservationTime, r.CustomerID, r.CustomerCount, r.Status)
}

// DB is the in-store domain database.
type DB struct {
	environment.DB
	Shops        map[string]*Shop            `json:"shops,omitempty"`
	Books        map[string]*BookInfo        `json:"books,omitempty"`
	Reservations map[string]*ReservationInfo `json:"reservations,omitempty"`
}

// Statistics counts the domain entities.
func (db *DB) Statistics() map[string]any {
	return map[string]any{
		"num_stores": len(db.Shops),
	}
}

// Hash fingerprints the full database state.
func (db *DB) Hash() string {
	return utils.Hash(db)
}

// Nearby lists shops within rng meters.
func (db *DB) Nearby(longitude, latitude, rng float64) []string {
	var matches []string
	for _, id := range db.shopIDs() {
		shop := db.Shops[id]
		if environment.Distance(longitude, latitude, shop.Location.Longitude, shop.Location.Latitude) <= rng {
			matches = append(matches, shop.String())
		}
	}
	return matches
}

func (db *DB) shopIDs() []string {
	ids := make([]string, 0, len(db.Shops))
	for id := range db.Shops {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (db *DB) shop(shopID string) (*Shop, error) {
	shop, ok := db.Shops[shopID]
	if !ok {
		return nil, fmt.Errorf("Shop %s does not exist", shopID)
	}
	return shop, nil
}

// product looks a product up across all shops.
func (db *DB) product(productID string) (*ShopProduct, error) {
	for _, id := range db.shopIDs() {
		for _, product := range db.Shops[id].Products {
			if product.ProductID == productID {
				return product, nil
			}
		}
	}
	return nil, fmt.Errorf("Product %s does not exist", productID)
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
