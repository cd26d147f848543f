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

package delivery

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitabench/vita/pkg/environment"
	"github.com/vitabench/vita/pkg/model"
)

func newTestEnv(t *testing.T) *environment.Environment {
	t.Helper()
	blob := map[string]any{
		"time":    "2025-07-05 10:00:00",
		"user_id": "u1",
		"location": []map[string]any{
			{"address": "No. 1 West Lake Road, Hangzhou", "longitude": 120.15, "latitude": 30.28},
		},
		"stores": map[string]any{
			"s1": map[string]any{
				"store_id": "s1",
				"name":     "Pizza Palace",
				"score":    4.8,
				"location": map[string]any{"address": "No. 2 West Lake Road, Hangzhou", "longitude": 120.16, "latitude": 30.29},
				"tags":     []string{"pizza", "italian"},
				"products": []map[string]any{
					{"product_id": "p1", "name": "Margherita Pizza", "store_id": "s1", "store_name": "Pizza Palace", "attributes": "large", "quantity": 1, "price": 20.0, "tags": []string{"pizza"}},
					{"product_id": "p2", "name": "Garlic Bread", "store_id": "s1", "store_name": "Pizza Palace", "attributes": "", "quantity": 1, "price": 15.5, "tags": []string{"bread", "side"}},
				},
			},
		},
	}
	env, err := NewEnvironment(blob, "english")
	require.NoError(t, err)
	return env
}

func createTestOrder(t *testing.T, env *environment.Environment) (string, *model.Order) {
	t.Helper()
	result, err := env.UseTool("create_delivery_order", map[string]any{
		"user_id":       "u1",
		"store_id":      "s1",
		"product_ids":   []any{"p1", "p2"},
		"product_cnts":  []any{2, 1},
		"address":       "No. 1 West Lake Road, Hangzhou",
		"dispatch_time": "2025-07-05 12:00:00",
		"note":          "extra cheese",
	})
	require.NoError(t, err)
	require.Contains(t, result, "status:unpaid")

	orders := env.DB().Core().Orders
	require.Len(t, orders, 1)
	for id, order := range orders {
		return id, order
	}
	return "", nil
}

func TestCreateDeliveryOrder(t *testing.T) {
	env := newTestEnv(t)
	id, order := createTestOrder(t, env)

	assert.True(t, strings.HasPrefix(id, "OT"))
	assert.Len(t, id, 12)
	assert.Equal(t, model.OrderDelivery, order.OrderType)
	assert.Equal(t, model.StatusUnpaid, order.Status)
	assert.Equal(t, 55.5, order.TotalPrice)
	assert.Equal(t, "2025-07-05 10:00:00", order.CreateTime)
	assert.Equal(t, "2025-07-05 12:00:00", order.DispatchTime)
	assert.Equal(t, "extra cheese", order.Note)
	require.NotNil(t, order.Location)
	assert.Equal(t, 120.15, order.Location.Longitude)
	require.Len(t, order.Products, 2)

	detail, err := env.UseTool("get_delivery_order_detail", map[string]any{"order_id": id})
	require.NoError(t, err)
	assert.Contains(t, detail, "total_price:55.5")
	assert.Contains(t, detail, "Margherita Pizza")
}

func TestCreateDeliveryOrderValidation(t *testing.T) {
	env := newTestEnv(t)
	base := map[string]any{
		"user_id":       "u1",
		"store_id":      "s1",
		"product_ids":   []any{"p1"},
		"product_cnts":  []any{1},
		"address":       "No. 1 West Lake Road, Hangzhou",
		"dispatch_time": "2025-07-05 12:00:00",
	}
	override := func(key string, value any) map[string]any {
		args := make(map[string]any, len(base))
		for k, v := range base {
			args[k] = v
		}
		args[key] = value
		return args
	}

	result, err := env.UseTool("create_delivery_order", override("user_id", "u2"))
	require.NoError(t, err)
	assert.Equal(t, "User ID does not match", result)

	result, err = env.UseTool("create_delivery_order", override("store_id", "s9"))
	require.NoError(t, err)
	assert.Equal(t, "Store s9 not found", result)

	result, err = env.UseTool("create_delivery_order", override("product_ids", []any{"p9"}))
	require.NoError(t, err)
	assert.Contains(t, result, "not found")

	result, err = env.UseTool("create_delivery_order", override("dispatch_time", "2025-07-05 08:00:00"))
	require.NoError(t, err)
	assert.Contains(t, result, "must be in the future")

	result, err = env.UseTool("create_delivery_order", override("dispatch_time", "12:00"))
	require.NoError(t, err)
	assert.Contains(t, result, "time format is invalid")

	result, err = env.UseTool("create_delivery_order", override("product_cnts", []any{1, 2}))
	require.NoError(t, err)
	assert.Contains(t, result, "list is invalid")

	result, err = env.UseTool("create_delivery_order", override("product_cnts", []any{0}))
	require.NoError(t, err)
	assert.Contains(t, result, "list is invalid")
}

func TestPayDeliveryOrder(t *testing.T) {
	env := newTestEnv(t)
	id, order := createTestOrder(t, env)

	result, err := env.UseTool("pay_delivery_order", map[string]any{"order_id": id})
	require.NoError(t, err)
	assert.Equal(t, "Payment successful", result)
	assert.Equal(t, model.StatusPaid, order.Status)

	result, err = env.UseTool("pay_delivery_order", map[string]any{"order_id": id})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Order %s is not in `unpaid` status. Current status: paid", id), result)

	result, err = env.UseTool("get_delivery_order_status", map[string]any{"order_id": id})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Order %s status: paid", id), result)

	result, err = env.UseTool("pay_delivery_order", map[string]any{"order_id": "OT0000000000"})
	require.NoError(t, err)
	assert.Equal(t, "Error: Order OT0000000000 not found", result)
}

func TestModifyAndCancelDeliveryOrder(t *testing.T) {
	env := newTestEnv(t)
	id, order := createTestOrder(t, env)

	result, err := env.UseTool("modify_delivery_order", map[string]any{"order_id": id, "note": "no onions"})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Order %s has been modified.", id), result)
	assert.Equal(t, "no onions", order.Note)

	result, err = env.UseTool("cancel_delivery_order", map[string]any{"order_id": id})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Order %s has been cancelled.", id), result)
	assert.Equal(t, model.StatusCancelled, order.Status)

	result, err = env.UseTool("cancel_delivery_order", map[string]any{"order_id": id})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Order %s is already cancelled", id), result)

	result, err = env.UseTool("modify_delivery_order", map[string]any{"order_id": id, "note": "x"})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Cannot modify order %s as it is already cancelled", id), result)
}

func TestSearchDeliveryOrders(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.UseTool("search_delivery_orders", map[string]any{"user_id": "u1"})
	require.NoError(t, err)
	assert.Equal(t, "No delivery orders available", result)

	id, _ := createTestOrder(t, env)

	result, err = env.UseTool("search_delivery_orders", map[string]any{"user_id": "u1"})
	require.NoError(t, err)
	assert.Contains(t, result, id)

	result, err = env.UseTool("search_delivery_orders", map[string]any{"user_id": "u1", "status": "paid"})
	require.NoError(t, err)
	assert.Equal(t, "No delivery orders available", result)

	result, err = env.UseTool("search_delivery_orders", map[string]any{"user_id": "u2"})
	require.NoError(t, err)
	assert.Equal(t, "User ID does not match", result)
}

func TestStoreAndProductSearch(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.UseTool("delivery_store_search_recommend", map[string]any{"keywords": []any{"pizza"}})
	require.NoError(t, err)
	assert.Contains(t, result, "Pizza Palace")

	result, err = env.UseTool("delivery_store_search_recommend", map[string]any{"keywords": []any{}})
	require.NoError(t, err)
	assert.Equal(t, "Keywords cannot be empty", result)

	result, err = env.UseTool("delivery_store_search_recommend", map[string]any{"keywords": []any{"  "}})
	require.NoError(t, err)
	assert.Equal(t, "All keywords must be non-empty strings", result)

	result, err = env.UseTool("delivery_product_search_recommend", map[string]any{"keywords": []any{"garlic"}})
	require.NoError(t, err)
	assert.Contains(t, result, "Garlic Bread")
}

func TestStoreAndProductInfo(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.UseTool("get_delivery_store_info", map[string]any{"store_id": "s1"})
	require.NoError(t, err)
	assert.Contains(t, result, "Pizza Palace")
	assert.Contains(t, result, "Margherita Pizza")

	result, err = env.UseTool("get_delivery_store_info", map[string]any{"store_id": "s9"})
	require.NoError(t, err)
	assert.Equal(t, "Error: Store s9 not found", result)

	result, err = env.UseTool("get_delivery_product_info", map[string]any{"product_id": "p2"})
	require.NoError(t, err)
	assert.Contains(t, result, "Garlic Bread")
	assert.Contains(t, result, "price=15.5")
}

func TestShippingMinutes(t *testing.T) {
	assert.Equal(t, 25.0, ShippingMinutes(0))
	assert.Equal(t, 32.0, ShippingMinutes(1000))

	env := newTestEnv(t)
	result, err := env.UseTool("delivery_distance_to_time", map[string]any{"distance": 1000.0})
	require.NoError(t, err)
	assert.Equal(t, "32.0", result)
}

func TestAttributesUnmarshal(t *testing.T) {
	var a Attributes
	require.NoError(t, a.UnmarshalJSON([]byte(`"large"`)))
	assert.Equal(t, Attributes("large"), a)
	require.NoError(t, a.UnmarshalJSON([]byte(`["no ice", "half sugar"]`)))
	assert.Equal(t, Attributes("no ice, half sugar"), a)
}
