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
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Action is the expected counterpart of a ToolCall inside a task
// specification. When CompareArgs is nil, all tool-call arguments are
// compared.
type Action struct {
	ActionID    string         `json:"action_id"`
	Requestor   ToolRequestor  `json:"requestor,omitempty"`
	Name        string         `json:"name"`
	Arguments   map[string]any `json:"arguments"`
	Info        string         `json:"info,omitempty"`
	CompareArgs []string       `json:"compare_args,omitempty"`
}

// CompareWithToolCall reports whether a tool call matches this action: names
// must be equal and the selected arguments must compare equal by value.
func (a *Action) CompareWithToolCall(tc ToolCall) bool {
	if a.Name != tc.Name {
		return false
	}
	compare := a.CompareArgs
	if compare == nil {
		for k := range tc.Arguments {
			compare = append(compare, k)
		}
	}
	if len(compare) == 0 {
		return true
	}
	for _, k := range compare {
		got, gotOK := tc.Arguments[k]
		want, wantOK := a.Arguments[k]
		if gotOK != wantOK {
			return false
		}
		if !jsonEqual(got, want) {
			return false
		}
	}
	return true
}

func jsonEqual(a, b any) bool {
	da, errA := json.Marshal(a)
	db, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
	}
	return string(da) == string(db)
}

// UserScenario carries everything sent to the user simulator.
type UserScenario struct {
	UserProfile map[string]any `json:"user_profile"`
}

// ExpectedState describes orders that should exist in the final DB state,
// plus state-specific rubrics.
type ExpectedState struct {
	RequiredOrders []any    `json:"required_orders,omitempty"`
	OptionalOrders []Order  `json:"optional_orders,omitempty"`
	StateRubrics   []string `json:"state_rubrics,omitempty"`
}

// EvaluationCriteria is what the judge panel scores a trajectory against.
type EvaluationCriteria struct {
	ExpectedStates []ExpectedState `json:"expected_states,omitempty"`
	OverallRubrics []string        `json:"overall_rubrics,omitempty"`
}

// IsEmpty reports whether no criteria were supplied.
func (ec *EvaluationCriteria) IsEmpty() bool {
	return ec == nil || (len(ec.ExpectedStates) == 0 && len(ec.OverallRubrics) == 0)
}

// Task is an immutable scenario specification.
type Task struct {
	ID                 string              `json:"id"`
	Domain             string              `json:"domain"`
	Environment        map[string]any      `json:"environment"`
	UserScenario       UserScenario        `json:"user_scenario"`
	Instructions       string              `json:"instructions"`
	EvaluationCriteria *EvaluationCriteria `json:"evaluation_criteria,omitempty"`
	MessageHistory     []Message           `json:"message_history,omitempty"`
}

// Location is a geocoded address.
type Location struct {
	Address   string  `json:"address"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s longitude:%s,latitude:%s",
		l.Address, FormatFloat(l.Longitude), FormatFloat(l.Latitude))
}

// Weather is one city/date weather record. Temperature holds [low, high].
type Weather struct {
	City        string     `json:"city"`
	Category    string     `json:"category"`
	Datetime    string     `json:"datetime"`
	Temperature [2]float64 `json:"temperature"`
	Humidity    float64    `json:"humidity"`
}

func (w Weather) String() string {
	return fmt.Sprintf("city: %s, weather: %s, datetime: %s, temperature: %s~%s, humidity: %s",
		w.City, w.Category, w.Datetime,
		FormatFloat(w.Temperature[0]), FormatFloat(w.Temperature[1]), FormatFloat(w.Humidity))
}

// OrderStatus values. Transitions are enforced by the domain toolkits, not
// here.
type OrderStatus string

const (
	StatusUnpaid     OrderStatus = "unpaid"
	StatusPaid       OrderStatus = "paid"
	StatusUnconsumed OrderStatus = "unconsumed"
	StatusConsumed   OrderStatus = "consumed"
	StatusProcessed  OrderStatus = "processed"
	StatusInProgress OrderStatus = "in-progress"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// OrderType values.
type OrderType string

const (
	OrderDelivery   OrderType = "delivery"
	OrderInstore    OrderType = "instore"
	OrderHotel      OrderType = "hotel"
	OrderAttraction OrderType = "attraction"
	OrderFlight     OrderType = "flight"
	OrderTrain      OrderType = "train"
)

// storeIDLabel names the store-id field per order type in rendered output.
var storeIDLabel = map[OrderType]string{
	OrderDelivery:   "store_id",
	OrderInstore:    "shop_id",
	OrderHotel:      "hotel_id",
	OrderAttraction: "attraction_id",
	OrderFlight:     "flight_id",
	OrderTrain:      "train_id",
}

// Order is a purchase record across all domains.
type Order struct {
	OrderID      string      `json:"order_id"`
	OrderType    OrderType   `json:"order_type"`
	UserID       string      `json:"user_id"`
	StoreID      string      `json:"store_id"`
	Note         string      `json:"note,omitempty"`
	Location     *Location   `json:"location,omitempty"`
	DispatchTime string      `json:"dispatch_time,omitempty"`
	ShippingTime float64     `json:"shipping_time,omitempty"`
	DeliveryTime string      `json:"delivery_time,omitempty"`
	TotalPrice   float64     `json:"total_price"`
	CreateTime   string      `json:"create_time"`
	UpdateTime   string      `json:"update_time"`
	Status       OrderStatus `json:"status"`
	Products     []any       `json:"products"`
}

// Normalize fills update_time from create_time when unset.
func (o *Order) Normalize() {
	if o.UpdateTime == "" && o.CreateTime != "" {
		o.UpdateTime = o.CreateTime
	}
}

// Summary renders the short order form without products.
func (o *Order) Summary() string {
	return fmt.Sprintf("Order(order_id:%s, order_type:%s, user_id:%s, %s:%s, total_price:%s, create_time:%s, update_time:%s, status:%s, ",
		o.OrderID, o.OrderType, o.UserID, storeIDLabel[o.OrderType], o.StoreID,
		FormatFloat(o.TotalPrice), o.CreateTime, o.UpdateTime, o.Status)
}

// String renders the full order form including products. Delivery orders
// additionally show dispatch, shipping and delivery times.
func (o *Order) String() string {
	if o.OrderType == OrderDelivery {
		return fmt.Sprintf("Order(order_id:%s, order_type:%s, user_id:%s, %s:%s, dispatch_time:%s, shipping_time:%s, delivery_time:%s, total_price:%s, create_time:%s, update_time:%s, note:%s, status:%s, products:%s)",
			o.OrderID, o.OrderType, o.UserID, storeIDLabel[o.OrderType], o.StoreID,
			o.DispatchTime, FormatFloat(o.ShippingTime), o.DeliveryTime,
			FormatFloat(o.TotalPrice), o.CreateTime, o.UpdateTime, o.Note, o.Status,
			formatProducts(o.Products))
	}
	return fmt.Sprintf("Order(order_id:%s, order_type:%s, user_id:%s, %s:%s, total_price:%s, create_time:%s, update_time:%s, status:%s, products:%s)",
		o.OrderID, o.OrderType, o.UserID, storeIDLabel[o.OrderType], o.StoreID,
		FormatFloat(o.TotalPrice), o.CreateTime, o.UpdateTime, o.Status,
		formatProducts(o.Products))
}

func formatProducts(products []any) string {
	parts := make([]string, len(products))
	for i, p := range products {
		parts[i] = fmt.Sprintf("%v", p)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatStringList renders a string slice as a quoted bracket list,
// matching how entity tags appear in tool output.
func FormatStringList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// FormatFloat renders a float the way tool outputs expect: integral values
// keep one decimal place ("25.0"), others use the shortest representation.
func FormatFloat(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
