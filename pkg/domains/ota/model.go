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

// Package ota implements the online travel agency domain: hotels,
// attractions, flights and trains with dated inventory, plus the booking,
// payment, rebooking and cancellation lifecycle.
package ota

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vitabench/vita/pkg/environment"
	"github.com/vitabench/vita/pkg/model"
	"github.com/vitabench/vita/pkg/utils"
)

// HotelProduct is one room type on one date.
type HotelProduct struct {
	ProductID string  `json:"product_id"`
	Date      string  `json:"date"`
	RoomType  string  `json:"room_type"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

func (p *HotelProduct) String() string {
	return fmt.Sprintf("HotelProduct(room_type=%s, date=%s, price=%s, quantity=%d, product_id=%s)",
		p.RoomType, p.Date, model.FormatFloat(p.Price), p.Quantity, p.ProductID)
}

// AttractionProduct is one ticket type on one date.
type AttractionProduct struct {
	ProductID  string  `json:"product_id"`
	Date       string  `json:"date"`
	TicketType string  `json:"ticket_type"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

func (p *AttractionProduct) String() string {
	return fmt.Sprintf("AttractionProduct(ticket_type=%s, date=%s, price=%s, quantity=%d, product_id=%s)",
		p.TicketType, p.Date, model.FormatFloat(p.Price), p.Quantity, p.ProductID)
}

// FlightProduct is one seat class on one date.
type FlightProduct struct {
	ProductID string  `json:"product_id"`
	Date      string  `json:"date"`
	SeatType  string  `json:"seat_type"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

func (p *FlightProduct) String() string {
	return fmt.Sprintf("FlightProduct(seat_type=%s, date=%s, price=%s, quantity=%d, product_id=%s)",
		p.SeatType, p.Date, model.FormatFloat(p.Price), p.Quantity, p.ProductID)
}

// TrainProduct is one seat class on one date.
type TrainProduct struct {
	ProductID string  `json:"product_id"`
	Date      string  `json:"date"`
	SeatType  string  `json:"seat_type"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

func (p *TrainProduct) String() string {
	return fmt.Sprintf("TrainProduct(seat_type=%s, date=%s, price=%s, quantity=%d, product_id=%s)",
		p.SeatType, p.Date, model.FormatFloat(p.Price), p.Quantity, p.ProductID)
}

// Hotel is a bookable property with dated room inventory.
type Hotel struct {
	HotelID    string          `json:"hotel_id"`
	HotelName  string          `json:"hotel_name"`
	Score      float64         `json:"score"`
	StarRating int             `json:"star_rating"`
	Location   model.Location  `json:"location"`
	Tags       []string        `json:"tags"`
	Products   []*HotelProduct `json:"products"`
}

func (h *Hotel) String() string {
	return fmt.Sprintf("Hotel(hotel_id=%s, hotel_name=%s, score=%s, star_rating=%d, location=%s, tags=%s)",
		h.HotelID, h.HotelName, model.FormatFloat(h.Score), h.StarRating, h.Location, model.FormatStringList(h.Tags))
}

func (h *Hotel) Detail() string {
	products := make([]string, len(h.Products))
	for i, p := range h.Products {
		products[i] = p.String()
	}
	return fmt.Sprintf("Hotel(hotel_id=%s, hotel_name=%s, score=%s, star_rating=%d, location=%s, tags=%s, products=%s)",
		h.HotelID, h.HotelName, model.FormatFloat(h.Score), h.StarRating, h.Location, model.FormatStringList(h.Tags),
		strings.Join(products, "\n"))
}

// Attraction is a sight with dated ticket inventory.
type Attraction struct {
	AttractionID   string               `json:"attraction_id"`
	AttractionName string               `json:"attraction_name"`
	Location       model.Location       `json:"location"`
	Description    string               `json:"description"`
	Score          float64              `json:"score"`
	OpeningHours   string               `json:"opening_hours"`
	TicketPrice    float64              `json:"ticket_price"`
	Products       []*AttractionProduct `json:"products"`
}

func (a *Attraction) String() string {
	return fmt.Sprintf("Attraction(attraction_id=%s, attraction_name=%s, location=%s, description=%s, score=%s, opening_hours=%s, ",
		a.AttractionID, a.AttractionName, a.Location, a.Description, model.FormatFloat(a.Score), a.OpeningHours)
}

func (a *Attraction) Detail() string {
	products := make([]string, len(a.Products))
	for i, p := range a.Products {
		products[i] = p.String()
	}
	return fmt.Sprintf("Attraction(attraction_id=%s, attraction_name=%s, location=%s, description=%s, score=%s, opening_hours=%s, ticket_price=%s, products=%s)",
		a.AttractionID, a.AttractionName, a.Location, a.Description, model.FormatFloat(a.Score), a.OpeningHours,
		model.FormatFloat(a.TicketPrice), strings.Join(products, "\n"))
}

// Flight is a scheduled flight with dated seat inventory.
type Flight struct {
	FlightID                 string           `json:"flight_id"`
	FlightNumber             string           `json:"flight_number"`
	DepartureCity            string           `json:"departure_city"`
	ArrivalCity              string           `json:"arrival_city"`
	DepartureAirportLocation model.Location   `json:"departure_airport_location"`
	ArrivalAirportLocation   model.Location   `json:"arrival_airport_location"`
	DepartureTime            string           `json:"departure_time"`
	ArrivalTime              string           `json:"arrival_time"`
	Tags                     []string         `json:"tags"`
	Products                 []*FlightProduct `json:"products"`
}

func (f *Flight) String() string {
	return fmt.Sprintf("Flight(flight_id=%s, flight_number=%s, departure_city=%s, arrival_city=%s, departure_airport_location=%s, arrival_airport_location=%s, departure_time=%s, arrival_time=%s, tags=%s)",
		f.FlightID, f.FlightNumber, f.DepartureCity, f.ArrivalCity, f.DepartureAirportLocation,
		f.ArrivalAirportLocation, f.DepartureTime, f.ArrivalTime, model.FormatStringList(f.Tags))
}

func (f *Flight) Detail() string {
	products := make([]string, len(f.Products))
	for i, p := range f.Products {
		products[i] = p.String()
	}
	return fmt.Sprintf("Flight(flight_id=%s, flight_number=%s, departure_city=%s, arrival_city=%s, departure_airport_location=%s, arrival_airport_location=%s, departure_time=%s, arrival_time=%s, tags=%s, products=%s)",
		f.FlightID, f.FlightNumber, f.DepartureCity, f.ArrivalCity, f.DepartureAirportLocation,
		f.ArrivalAirportLocation, f.DepartureTime, f.ArrivalTime, model.FormatStringList(f.Tags),
		strings.Join(products, "\n"))
}

// Train is a scheduled train with dated seat inventory.
type Train struct {
	TrainID                  string          `json:"train_id"`
	TrainNumber              string          `json:"train_number"`
	DepartureCity            string          `json:"departure_city"`
	ArrivalCity              string          `json:"arrival_city"`
	DepartureStationLocation model.Location  `json:"departure_station_location"`
	ArrivalStationLocation   model.Location  `json:"arrival_station_location"`
	DepartureTime            string          `json:"departure_time"`
	ArrivalTime              string          `json:"arrival_time"`
	Tags                     []string        `json:"tags"`
	Products                 []*TrainProduct `json:"products"`
}

func (t *Train) String() string {
	return fmt.Sprintf("Train(train_id=%s, train_number=%s, departure_city=%s, arrival_city=%s, departure_station_location=%s, arrival_station_location=%s, departure_time=%s, arrival_time=%s, tags=%s)",
		t.TrainID, t.TrainNumber, t.DepartureCity, t.ArrivalCity, t.DepartureStationLocation,
		t.ArrivalStationLocation, t.DepartureTime, t.ArrivalTime, model.FormatStringList(t.Tags))
}

func (t *Train) Detail() string {
	products := make([]string, len(t.Products))
	for i, p := range t.Products {
		products[i] = p.String()
	}
	return fmt.Sprintf("Train(train_id=%s, train_number=%s, departure_city=%s, arrival_city=%s, departure_station_location=%s, arrival_station_location=%s, departure_time=%s, arrival_time=%s, tags=%s, products=%s)",
		t.TrainID, t.TrainNumber, t.DepartureCity, t.ArrivalCity, t.DepartureStationLocation,
		t.ArrivalStationLocation, t.DepartureTime, t.ArrivalTime, model.FormatStringList(t.Tags),
		strings.Join(products, "\n"))
}

// DB is the OTA domain database.
type DB struct {
	environment.DB
	Hotels      map[string]*Hotel      `json:"hotels,omitempty"`
	Attractions map[string]*Attraction `json:"attractions,omitempty"`
	Flights     map[string]*Flight     `json:"flights,omitempty"`
	Trains      map[string]*Train      `json:"trains,omitempty"`
}

// Statistics counts the domain entities.
func (db *DB) Statistics() map[string]any {
	return map[string]any{
		"num_hotels":      len(db.Hotels),
		"num_attractions": len(db.Attractions),
		"num_flights":     len(db.Flights),
		"num_trains":      len(db.Trains),
	}
}

// Hash fingerprints the full database state.
func (db *DB) Hash() string {
	return utils.Hash(db)
}

// Nearby lists entities within rng meters. Hotels and attractions match on
// their location; flights and trains match on either endpoint.
func (db *DB) Nearby(longitude, latitude, rng float64) []string {
	var matches []string
	for _, id := range sortedKeys(db.Hotels) {
		hotel := db.Hotels[id]
		if environment.Distance(longitude, latitude, hotel.Location.Longitude, hotel.Location.Latitude) <= rng {
			matches = append(matches, hotel.String())
		}
	}
	for _, id := range sortedKeys(db.Attractions) {
		attraction := db.Attractions[id]
		if environment.Distance(longitude, latitude, attraction.Location.Longitude, attraction.Location.Latitude) <= rng {
			matches = append(matches, attraction.String())
		}
	}
	for _, id := range sortedKeys(db.Flights) {
		flight := db.Flights[id]
		dep := flight.DepartureAirportLocation
		arr := flight.ArrivalAirportLocation
		if environment.Distance(longitude, latitude, dep.Longitude, dep.Latitude) <= rng ||
			environment.Distance(longitude, latitude, arr.Longitude, arr.Latitude) <= rng {
			matches = append(matches, flight.String())
		}
	}
	for _, id := range sortedKeys(db.Trains) {
		train := db.Trains[id]
		dep := train.DepartureStationLocation
		arr := train.ArrivalStationLocation
		if environment.Distance(longitude, latitude, dep.Longitude, dep.Latitude) <= rng ||
			environment.Distance(longitude, latitude, arr.Longitude, arr.Latitude) <= rng {
			matches = append(matches, train.String())
		}
	}
	return matches
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
