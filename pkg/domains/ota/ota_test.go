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

package ota

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitabench/vita/pkg/environment"
	"github.com/vitabench/vita/pkg/model"
)

func newTestEnv(t *testing.T) (*environment.Environment, *DB) {
	t.Helper()
	blob := map[string]any{
		"time":    "2025-07-05 10:00:00",
		"user_id": "u1",
		"hotels": map[string]any{
			"h1": map[string]any{
				"hotel_id":    "h1",
				"hotel_name":  "Lakeside Grand Hotel",
				"score":       4.7,
				"star_rating": 5,
				"location":    map[string]any{"address": "No. 18 Hubin Road, Hangzhou", "longitude": 120.16, "latitude": 30.25},
				"tags":        []string{"lake view"},
				"products": []map[string]any{
					{"product_id": "r1", "date": "2025-07-06", "room_type": "King Room", "price": 680.0, "quantity": 2},
					{"product_id": "r2", "date": "2025-07-06", "room_type": "Twin Room", "price": 580.0, "quantity": 0},
				},
			},
		},
		"attractions": map[string]any{
			"a1": map[string]any{
				"attraction_id":   "a1",
				"attraction_name": "West Lake Cruise",
				"location":        map[string]any{"address": "West Lake, Hangzhou", "longitude": 120.14, "latitude": 30.24},
				"description":     "Boat tour of the lake",
				"score":           4.9,
				"opening_hours":   "08:00-17:00",
				"ticket_price":    70.0,
				"products": []map[string]any{
					{"product_id": "t1", "date": "2025-07-06", "ticket_type": "Adult", "price": 70.0, "quantity": 10},
				},
			},
		},
		"flights": map[string]any{
			"f1": map[string]any{
				"flight_id":                  "f1",
				"flight_number":              "CA1234",
				"departure_city":             "Hangzhou",
				"arrival_city":               "Beijing",
				"departure_airport_location": map[string]any{"address": "Xiaoshan Airport, Hangzhou", "longitude": 120.43, "latitude": 30.23},
				"arrival_airport_location":   map[string]any{"address": "Capital Airport, Beijing", "longitude": 116.58, "latitude": 40.08},
				"departure_time":             "09:00",
				"arrival_time":               "11:20",
				"products": []map[string]any{
					{"product_id": "s1", "date": "2025-07-06", "seat_type": "Economy", "price": 900.0, "quantity": 5},
					{"product_id": "s2", "date": "2025-07-07", "seat_type": "Economy", "price": 1100.0, "quantity": 5},
				},
			},
		},
		"trains": map[string]any{
			"tr1": map[string]any{
				"train_id":                   "tr1",
				"train_number":               "G7502",
				"departure_city":             "Hangzhou",
				"arrival_city":               "Shanghai",
				"departure_station_location": map[string]any{"address": "Hangzhou East Station", "longitude": 120.21, "latitude": 30.29},
				"arrival_station_location":   map[string]any{"address": "Shanghai Hongqiao Station", "longitude": 121.32, "latitude": 31.19},
				"departure_time":             "08:00",
				"arrival_time":               "09:00",
				"products": []map[string]any{
					{"product_id": "k1", "date": "2025-07-06", "seat_type": "Second Class", "price": 73.0, "quantity": 20},
					{"product_id": "k2", "date": "2025-07-07", "seat_type": "Second Class", "price": 73.0, "quantity": 1},
				},
			},
		},
	}
	env, err := NewEnvironment(blob, "english")
	require.NoError(t, err)
	return env, env.DB().(*DB)
}

func singleOrderID(t *testing.T, db *DB) string {
	t.Helper()
	require.Len(t, db.Core().Orders, 1)
	for id := range db.Core().Orders {
		return id
	}
	return ""
}

func TestHotelSearchAndInfo(t *testing.T) {
	env, _ := newTestEnv(t)

	result, err := env.UseTool("hotel_search_recommand", map[string]any{
		"city_name": "Hangzhou", "key_words": []any{"lake"},
	})
	require.NoError(t, err)
	assert.Contains(t, result, "Lakeside Grand Hotel")

	result, err = env.UseTool("hotel_search_recommand", map[string]any{"city_name": "qqqqqqqq"})
	require.NoError(t, err)
	assert.Equal(t, "No hotels found matching the criteria. Please check if the city name is correct and try again.", result)

	result, err = env.UseTool("get_ota_hotel_info", map[string]any{"hotel_id": "h1"})
	require.NoError(t, err)
	assert.Contains(t, result, "Hotel Info:")
	assert.Contains(t, result, "King Room")

	result, err = env.UseTool("get_ota_hotel_info", map[string]any{"hotel_id": "h9"})
	require.NoError(t, err)
	assert.Equal(t, "Error: hotel h9 not found", result)
}

func TestCreateAndCancelHotelOrder(t *testing.T) {
	env, db := newTestEnv(t)

	result, err := env.UseTool("create_hotel_order", map[string]any{
		"hotel_id": "h1", "room_id": "r1", "user_id": "u1",
	})
	require.NoError(t, err)
	assert.Contains(t, result, "status:unpaid")
	assert.Contains(t, result, "total_price:680.0")
	assert.Equal(t, 1, db.Hotels["h1"].Products[0].Quantity)

	id := singleOrderID(t, db)
	assert.True(t, strings.HasPrefix(id, "OO"))
	assert.Len(t, id, 12)

	result, err = env.UseTool("create_hotel_order", map[string]any{
		"hotel_id": "h1", "room_id": "r2", "user_id": "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, "No available rooms at the moment", result)

	result, err = env.UseTool("pay_hotel_order", map[string]any{"order_id": id})
	require.NoError(t, err)
	assert.Equal(t, "Payment successful", result)

	result, err = env.UseTool("pay_hotel_order", map[string]any{"order_id": id})
	require.NoError(t, err)
	assert.Equal(t, "Order status must be unpaid", result)

	result, err = env.UseTool("cancel_hotel_order", map[string]any{"order_id": id, "user_id": "u1"})
	require.NoError(t, err)
	assert.Equal(t, "Cancellation successful, refund amount: 680.0", result)
	assert.Equal(t, model.StatusCancelled, db.Core().Orders[id].Status)

	result, err = env.UseTool("cancel_hotel_order", map[string]any{"order_id": id, "user_id": "u1"})
	require.NoError(t, err)
	assert.Equal(t, "Order is already in cancelled status", result)
}

func TestCancelUnpaidOrderRefundsNothing(t *testing.T) {
	env, db := newTestEnv(t)

	_, err := env.UseTool("create_attraction_order", map[string]any{
		"attraction_id": "a1", "ticket_id": "t1", "user_id": "u1", "date": "2025-07-06", "quantity": 2,
	})
	require.NoError(t, err)
	id := singleOrderID(t, db)

	result, err := env.UseTool("cancel_attraction_order", map[string]any{"order_id": id, "user_id": "u1"})
	require.NoError(t, err)
	assert.Equal(t, "Cancellation successful, refund amount: 0", result)
}

func TestCreateAttractionOrderInventory(t *testing.T) {
	env, db := newTestEnv(t)

	result, err := env.UseTool("create_attraction_order", map[string]any{
		"attraction_id": "a1", "ticket_id": "t1", "user_id": "u1", "date": "2025-07-06", "quantity": 3,
	})
	require.NoError(t, err)
	assert.Contains(t, result, "total_price:210.0")
	assert.Equal(t, 7, db.Attractions["a1"].Products[0].Quantity)

	result, err = env.UseTool("create_attraction_order", map[string]any{
		"attraction_id": "a1", "ticket_id": "t1", "user_id": "u1", "date": "2025-07-07", "quantity": 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "The attraction does not have the specified ticket on the specified date", result)

	result, err = env.UseTool("create_attraction_order", map[string]any{
		"attraction_id": "a1", "ticket_id": "t1", "user_id": "u1", "date": "2025-07-06", "quantity": 100,
	})
	require.NoError(t, err)
	assert.Equal(t, "Insufficient ticket inventory for the specified date", result)
}

func TestFlightAndTrainSearch(t *testing.T) {
	env, _ := newTestEnv(t)

	result, err := env.UseTool("flight_search_recommend", map[string]any{
		"departure": "Hangzhou", "destination": "Beijing",
	})
	require.NoError(t, err)
	assert.Contains(t, result, "CA1234")

	result, err = env.UseTool("flight_search_recommend", map[string]any{
		"departure": "Hangzhou", "destination": "qqqqqqqq",
	})
	require.NoError(t, err)
	assert.Equal(t, "No flights found matching the criteria", result)

	result, err = env.UseTool("train_ticket_search", map[string]any{
		"departure": "Hangzhou", "destination": "Shanghai", "date": "2025-07-06",
	})
	require.NoError(t, err)
	assert.Contains(t, result, "G7502")

	result, err = env.UseTool("train_ticket_search", map[string]any{
		"departure": "Hangzhou", "destination": "Shanghai", "date": "07-06",
	})
	require.NoError(t, err)
	assert.Contains(t, result, "Date format is incorrect")
}

func TestModifyTrainOrder(t *testing.T) {
	env, db := newTestEnv(t)

	_, err := env.UseTool("create_train_order", map[string]any{
		"train_id": "tr1", "seat_id": "k1", "user_id": "u1", "date": "2025-07-06", "quantity": 1,
	})
	require.NoError(t, err)
	id := singleOrderID(t, db)

	result, err := env.UseTool("modify_train_order", map[string]any{
		"order_id": id, "user_id": "u1", "new_date": "2025-07-07",
	})
	require.NoError(t, err)
	assert.Contains(t, result, "Only paid orders can be modified")

	_, err = env.UseTool("pay_train_order", map[string]any{"order_id": id})
	require.NoError(t, err)

	result, err = env.UseTool("modify_train_order", map[string]any{
		"order_id": id, "user_id": "u1", "new_date": "2025-07-07",
	})
	require.NoError(t, err)
	assert.Equal(t, "Modification successful, price difference: 0.0, refunded", result)

	order := db.Core().Orders[id]
	assert.Equal(t, model.StatusPaid, order.Status)
	assert.Equal(t, 73.0, order.TotalPrice)
	// Inventory moved from the old date to the new one.
	assert.Equal(t, 20, db.Trains["tr1"].Products[0].Quantity)
	assert.Equal(t, 0, db.Trains["tr1"].Products[1].Quantity)

	result, err = env.UseTool("modify_train_order", map[string]any{
		"order_id": id, "user_id": "u1", "new_date": "2025-07-08",
	})
	require.NoError(t, err)
	assert.Contains(t, result, "does not have Second Class type seats")
}

func TestModifyFlightOrderPriceIncrease(t *testing.T) {
	env, db := newTestEnv(t)

	_, err := env.UseTool("create_flight_order", map[string]any{
		"flight_id": "f1", "seat_id": "s1", "user_id": "u1", "date": "2025-07-06", "quantity": 1,
	})
	require.NoError(t, err)
	id := singleOrderID(t, db)

	_, err = env.UseTool("pay_flight_order", map[string]any{"order_id": id})
	require.NoError(t, err)

	result, err := env.UseTool("modify_flight_order", map[string]any{
		"order_id": id, "user_id": "u1", "new_date": "2025-07-07",
	})
	require.NoError(t, err)
	assert.Equal(t, "Modification successful, need to pay additional amount: 200.0, please pay as soon as possible", result)

	order := db.Core().Orders[id]
	assert.Equal(t, model.StatusUnpaid, order.Status)
	assert.Equal(t, 1100.0, order.TotalPrice)
}

func TestSearchOrders(t *testing.T) {
	env, db := newTestEnv(t)

	_, err := env.UseTool("search_hotel_order", map[string]any{"user_id": "u1"})
	assert.EqualError(t, err, "User does not exist or has no order records")

	_, err = env.UseTool("create_hotel_order", map[string]any{
		"hotel_id": "h1", "room_id": "r1", "user_id": "u1",
	})
	require.NoError(t, err)
	id := singleOrderID(t, db)

	// Paid is the default status filter.
	result, err := env.UseTool("search_hotel_order", map[string]any{"user_id": "u1"})
	require.NoError(t, err)
	assert.Empty(t, result)

	result, err = env.UseTool("search_hotel_order", map[string]any{"user_id": "u1", "status": "unpaid"})
	require.NoError(t, err)
	assert.Contains(t, result, id)

	result, err = env.UseTool("search_hotel_order", map[string]any{
		"user_id": "u1", "status": "unpaid", "date": "2025-07-06",
	})
	require.NoError(t, err)
	assert.Contains(t, result, id)

	result, err = env.UseTool("search_hotel_order", map[string]any{
		"user_id": "u1", "status": "unpaid", "date": "2025-07-09",
	})
	require.NoError(t, err)
	assert.Empty(t, result)

	result, err = env.UseTool("search_flight_order", map[string]any{"user_id": "u1", "status": "unpaid"})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestOrderDetailTypeCheck(t *testing.T) {
	env, db := newTestEnv(t)

	_, err := env.UseTool("create_hotel_order", map[string]any{
		"hotel_id": "h1", "room_id": "r1", "user_id": "u1",
	})
	require.NoError(t, err)
	id := singleOrderID(t, db)

	result, err := env.UseTool("get_hotel_order_detail", map[string]any{"order_id": id})
	require.NoError(t, err)
	assert.Contains(t, result, id)

	result, err = env.UseTool("get_train_order_detail", map[string]any{"order_id": id})
	require.NoError(t, err)
	assert.Equal(t, "Order type is not a train order", result)

	_, err = env.UseTool("get_hotel_order_detail", map[string]any{"order_id": "OO0000000000"})
	assert.EqualError(t, err, "Order OO0000000000 not found")
}
