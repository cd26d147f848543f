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
	"fmt"
	"strings"

	"github.com/vitabench/vita/pkg/environment"
	"github.com/vitabench/vita/pkg/model"
	"github.com/vitabench/vita/pkg/utils"
)

const searchTopK = 100

type tools struct {
	db *DB
	tk *environment.Toolkit
}

// RegisterTools adds the OTA tools to a toolkit bound to db.
func RegisterTools(tk *environment.Toolkit, db *DB) {
	t := &tools{db: db, tk: tk}

	tk.Register(environment.NewTool("get_ota_hotel_info", environment.ToolTypeRead, t.hotelInfo))
	tk.Register(environment.NewTool("get_ota_attraction_info", environment.ToolTypeRead, t.attractionInfo))
	tk.Register(environment.NewTool("get_ota_flight_info", environment.ToolTypeRead, t.flightInfo))
	tk.Register(environment.NewTool("get_ota_train_info", environment.ToolTypeRead, t.trainInfo))
	tk.Register(environment.NewTool("hotel_search_recommand", environment.ToolTypeRead, t.hotelSearch))
	tk.Register(environment.NewTool("attractions_search_recommend", environment.ToolTypeRead, t.attractionSearch))
	tk.Register(environment.NewTool("flight_search_recommend", environment.ToolTypeRead, t.flightSearch))
	tk.Register(environment.NewTool("train_ticket_search", environment.ToolTypeRead, t.trainSearch))
	tk.Register(environment.NewTool("create_hotel_order", environment.ToolTypeWrite, t.createHotelOrder))
	tk.Register(environment.NewTool("create_attraction_order", environment.ToolTypeWrite, t.createAttractionOrder))
	tk.Register(environment.NewTool("create_flight_order", environment.ToolTypeWrite, t.createFlightOrder))
	tk.Register(environment.NewTool("create_train_order", environment.ToolTypeWrite, t.createTrainOrder))
	tk.Register(environment.NewTool("pay_hotel_order", environment.ToolTypeWrite, t.payOrder))
	tk.Register(environment.NewTool("pay_attraction_order", environment.ToolTypeWrite, t.payOrder))
	tk.Register(environment.NewTool("pay_flight_order", environment.ToolTypeWrite, t.payOrder))
	tk.Register(environment.NewTool("pay_train_order", environment.ToolTypeWrite, t.payOrder))
	tk.Register(environment.NewTool("search_hotel_order", environment.ToolTypeRead, t.searchHotelOrders))
	tk.Register(environment.NewTool("search_attraction_order", environment.ToolTypeRead, t.searchOrdersFor(model.OrderAttraction)))
	tk.Register(environment.NewTool("search_flight_order", environment.ToolTypeRead, t.searchOrdersFor(model.OrderFlight)))
	tk.Register(environment.NewTool("search_train_order", environment.ToolTypeRead, t.searchOrdersFor(model.OrderTrain)))
	tk.Register(environment.NewTool("get_hotel_order_detail", environment.ToolTypeRead, t.orderDetailFor(model.OrderHotel, "Order type is not a hotel order")))
	tk.Register(environment.NewTool("get_attraction_order_detail", environment.ToolTypeRead, t.orderDetailFor(model.OrderAttraction, "Order type is not an attraction order")))
	tk.Register(environment.NewTool("get_flight_order_detail", environment.ToolTypeRead, t.orderDetailFor(model.OrderFlight, "Order type is not a flight order")))
	tk.Register(environment.NewTool("get_train_order_detail", environment.ToolTypeRead, t.orderDetailFor(model.OrderTrain, "Order type is not a train order")))
	tk.Register(environment.NewTool("modify_train_order", environment.ToolTypeWrite, t.modifyTrainOrder))
	tk.Register(environment.NewTool("modify_flight_order", environment.ToolTypeWrite, t.modifyFlightOrder))
	tk.Register(environment.NewTool("cancel_hotel_order", environment.ToolTypeWrite, t.cancelOrderFor(model.OrderHotel, "Order type is not a hotel order")))
	tk.Register(environment.NewTool("cancel_attraction_order", environment.ToolTypeWrite, t.cancelOrderFor(model.OrderAttraction, "Order type is not an attraction order")))
	tk.Register(environment.NewTool("cancel_flight_order", environment.ToolTypeWrite, t.cancelOrderFor(model.OrderFlight, "Order type is not a flight order")))
	tk.Register(environment.NewTool("cancel_train_order", environment.ToolTypeWrite, t.cancelOrderFor(model.OrderTrain, "Order type is not a train order")))
}

func (t *tools) order(orderID string) (*model.Order, error) {
	order, ok := t.db.Core().Orders[orderID]
	if !ok {
		return nil, fmt.Errorf("Order %s not found", orderID)
	}
	return order, nil
}

func (t *tools) ordersOfType(orderType model.OrderType) []*model.Order {
	core := t.db.Core()
	var orders []*model.Order
	for _, id := range core.OrderIDs() {
		if core.Orders[id].OrderType == orderType {
			orders = append(orders, core.Orders[id])
		}
	}
	return orders
}

func (t *tools) addOrder(order *model.Order) string {
	core := t.db.Core()
	if _, exists := core.Orders[order.OrderID]; exists {
		return "Order already exists"
	}
	if core.Orders == nil {
		core.Orders = make(map[string]*model.Order)
	}
	core.Orders[order.OrderID] = order
	return "done"
}

type hotelInfoArgs struct {
	HotelID string `json:"hotel_id" jsonschema:"required"`
}

func (t *tools) hotelInfo(args hotelInfoArgs) (string, error) {
	if args.HotelID == "" {
		return "", environment.Preconditionf("Hotel ID cannot be empty")
	}
	hotel, ok := t.db.Hotels[args.HotelID]
	if !ok {
		return fmt.Sprintf("Error: hotel %s not found", args.HotelID), nil
	}
	return "Hotel Info:\n" + hotel.Detail(), nil
}

type attractionInfoArgs struct {
	AttractionID string `json:"attraction_id" jsonschema:"required"`
}

func (t *tools) attractionInfo(args attractionInfoArgs) (string, error) {
	if args.AttractionID == "" {
		return "", environment.Preconditionf("Attraction ID cannot be empty")
	}
	attraction, ok := t.db.Attractions[args.AttractionID]
	if !ok {
		return fmt.Sprintf("Error: attraction %s not found", args.AttractionID), nil
	}
	return "Attraction Info:\n" + attraction.Detail(), nil
}

type flightInfoArgs struct {
	FlightID string `json:"flight_id" jsonschema:"required"`
}

func (t *tools) flightInfo(args flightInfoArgs) (string, error) {
	if args.FlightID == "" {
		return "", environment.Preconditionf("Flight ID cannot be empty")
	}
	flight, ok := t.db.Flights[args.FlightID]
	if !ok {
		return fmt.Sprintf("Error: flight %s not found", args.FlightID), nil
	}
	return "Flight Info:\n" + flight.Detail(), nil
}

type trainInfoArgs struct {
	TrainID string `json:"train_id" jsonschema:"required"`
}

func (t *tools) trainInfo(args trainInfoArgs) (string, error) {
	if args.TrainID == "" {
		return "", environment.Preconditionf("Train ID cannot be empty")
	}
	train, ok := t.db.Trains[args.TrainID]
	if !ok {
		return fmt.Sprintf("Error: train %s not found", args.TrainID), nil
	}
	return "Train Info:\n" + train.Detail(), nil
}

type hotelSearchArgs struct {
	CityName string   `json:"city_name" jsonschema:"required"`
	KeyWords []string `json:"key_words,omitempty"`
}

func (t *tools) hotelSearch(args hotelSearchArgs) (string, error) {
	var docs []utils.Doc
	for _, id := range sortedKeys(t.db.Hotels) {
		hotel := t.db.Hotels[id]
		if !utils.FuzzyMatch(args.CityName, hotel.Location.Address) {
			continue
		}
		docs = append(docs, utils.Doc{ID: id, Text: hotel.HotelName + strings.Join(hotel.Tags, ",")})
	}
	if len(docs) == 0 {
		return "No hotels found matching the criteria. Please check if the city name is correct and try again.", nil
	}

	ranked := utils.Rerank(strings.Join(args.KeyWords, ""), docs)
	if len(ranked) > searchTopK {
		ranked = ranked[:searchTopK]
	}
	selected := make([]string, len(ranked))
	for i, doc := range ranked {
		selected[i] = t.db.Hotels[doc.ID].String()
	}
	return strings.Join(selected, "\n"), nil
}

type attractionSearchArgs struct {
	CityName string   `json:"city_name" jsonschema:"required"`
	KeyWords []string `json:"key_words" jsonschema:"required"`
}

func (t *tools) attractionSearch(args attractionSearchArgs) (string, error) {
	var docs []utils.Doc
	for _, id := range sortedKeys(t.db.Attractions) {
		attraction := t.db.Attractions[id]
		if !utils.FuzzyMatch(args.CityName, attraction.Location.Address) {
			continue
		}
		text := fmt.Sprintf("%s,%s,%s", attraction.AttractionName, attraction.Description, attraction.Location.Address)
		docs = append(docs, utils.Doc{ID: id, Text: text})
	}
	if len(docs) == 0 {
		return "No attractions found matching the criteria. Please check if the city name is correct and try again.", nil
	}

	ranked := utils.Rerank(strings.Join(args.KeyWords, ""), docs)
	if len(ranked) > searchTopK {
		ranked = ranked[:searchTopK]
	}
	selected := make([]string, len(ranked))
	for i, doc := range ranked {
		selected[i] = t.db.Attractions[doc.ID].String()
	}
	return strings.Join(selected, "\n"), nil
}

type routeSearchArgs struct {
	Departure   string `json:"departure" jsonschema:"required"`
	Destination string `json:"destination" jsonschema:"required"`
}

func (t *tools) flightSearch(args routeSearchArgs) (string, error) {
	if args.Departure == "" {
		return "", environment.Preconditionf("Departure city cannot be empty")
	}
	if args.Destination == "" {
		return "", environment.Preconditionf("Destination city cannot be empty")
	}
	var matched []string
	for _, id := range sortedKeys(t.db.Flights) {
		flight := t.db.Flights[id]
		if !utils.FuzzyMatch(args.Departure, flight.DepartureCity) {
			continue
		}
		if !utils.FuzzyMatch(args.Destination, flight.ArrivalCity) {
			continue
		}
		matched = append(matched, flight.String())
	}
	if len(matched) == 0 {
		return "No flights found matching the criteria", nil
	}
	return strings.Join(matched, "\n"), nil
}

type trainSearchArgs struct {
	Departure   string `json:"departure" jsonschema:"required"`
	Destination string `json:"destination" jsonschema:"required"`
	Date        string `json:"date" jsonschema:"required"`
}

func (t *tools) trainSearch(args trainSearchArgs) (string, error) {
	if args.Departure == "" {
		return "", environment.Preconditionf("Departure city cannot be empty")
	}
	if args.Destination == "" {
		return "", environment.Preconditionf("Destination city cannot be empty")
	}
	if args.Date == "" {
		return "", environment.Preconditionf("Departure date cannot be empty")
	}
	if !utils.CheckDateFormat(args.Date) {
		return "", environment.Preconditionf("Date format is incorrect, correct format is %%Y-%%m-%%d")
	}

	var matched []string
	for _, id := range sortedKeys(t.db.Trains) {
		train := t.db.Trains[id]
		for _, product := range train.Products {
			if product.Date != args.Date {
				continue
			}
			if !utils.FuzzyMatch(args.Departure, train.DepartureCity) {
				continue
			}
			if !utils.FuzzyMatch(args.Destination, train.ArrivalCity) {
				continue
			}
			matched = append(matched, train.String())
		}
	}
	if len(matched) == 0 {
		return "No trains found matching the criteria", nil
	}
	return strings.Join(matched, "\n"), nil
}

type createHotelOrderArgs struct {
	HotelID string `json:"hotel_id" jsonschema:"required"`
	RoomID  string `json:"room_id" jsonschema:"required"`
	UserID  string `json:"user_id" jsonschema:"required"`
}

func (t *tools) createHotelOrder(args createHotelOrderArgs) (string, error) {
	if args.HotelID == "" {
		return "", environment.Preconditionf("Hotel ID cannot be empty")
	}
	if args.UserID == "" {
		return "", environment.Preconditionf("User ID cannot be empty")
	}
	if args.UserID != t.db.Core().UserID {
		return "", environment.Preconditionf("User ID does not match")
	}
	hotel, ok := t.db.Hotels[args.HotelID]
	if !ok {
		return "", fmt.Errorf("hotel %s not found", args.HotelID)
	}

	var ordered []any
	for _, product := range hotel.Products {
		if product.ProductID != args.RoomID {
			continue
		}
		if product.Quantity <= 0 {
			return "No available rooms at the moment", nil
		}
		product.Quantity--
		ordered = append(ordered, &HotelProduct{
			ProductID: product.ProductID,
			Price:     product.Price,
			Date:      product.Date,
			Quantity:  1,
			RoomType:  product.RoomType,
		})
		break
	}

	var total float64
	for _, p := range ordered {
		total += p.(*HotelProduct).Price
	}
	now := t.tk.Now()
	orderID, err := t.db.Core().AssignOrderID("hotel", args.UserID, map[string]string{
		"hotel_id":   args.HotelID,
		"product_id": args.RoomID,
	})
	if err != nil {
		return "", err
	}
	order := &model.Order{
		OrderID:    orderID,
		OrderType:  model.OrderHotel,
		UserID:     args.UserID,
		StoreID:    args.HotelID,
		TotalPrice: total,
		CreateTime: now,
		UpdateTime: now,
		Status:     model.StatusUnpaid,
		Products:   ordered,
	}
	if resp := t.addOrder(order); resp != "done" {
		return resp, nil
	}
	return order.String(), nil
}

type createAttractionOrderArgs struct {
	AttractionID string `json:"attraction_id" jsonschema:"required"`
	TicketID     string `json:"ticket_id" jsonschema:"required"`
	UserID       string `json:"user_id" jsonschema:"required"`
	Date         string `json:"date" jsonschema:"required"`
	Quantity     int    `json:"quantity" jsonschema:"required"`
}

func (t *tools) createAttractionOrder(args createAttractionOrderArgs) (string, error) {
	if args.AttractionID == "" {
		return "", environment.Preconditionf("Attraction ID cannot be empty")
	}
	if args.TicketID == "" {
		return "", environment.Preconditionf("Ticket ID cannot be empty")
	}
	if args.UserID == "" {
		return "", environment.Preconditionf("User ID cannot be empty")
	}
	if args.Quantity <= 0 {
		return "", environment.Preconditionf("Booking quantity must be greater than 0")
	}
	if args.UserID != t.db.Core().UserID {
		return "", environment.Preconditionf("User ID does not match")
	}
	attraction, ok := t.db.Attractions[args.AttractionID]
	if !ok {
		return "", fmt.Errorf("attraction %s not found", args.AttractionID)
	}

	var target *AttractionProduct
	for _, product := range attraction.Products {
		if product.Date == args.Date && product.ProductID == args.TicketID {
			target = product
			break
		}
	}
	if target == nil {
		return "The attraction does not have the specified ticket on the specified date", nil
	}
	if target.Quantity < args.Quantity {
		return "Insufficient ticket inventory for the specified date", nil
	}
	target.Quantity -= args.Quantity

	ordered := &AttractionProduct{
		ProductID:  target.ProductID,
		Price:      target.Price,
		Date:       args.Date,
		Quantity:   args.Quantity,
		TicketType: target.TicketType,
	}
	now := t.tk.Now()
	orderID, err := t.db.Core().AssignOrderID("attraction", args.UserID, nil)
	if err != nil {
		return "", err
	}
	order := &model.Order{
		OrderID:    orderID,
		OrderType:  model.OrderAttraction,
		UserID:     args.UserID,
		StoreID:    args.AttractionID,
		TotalPrice: ordered.Price * float64(ordered.Quantity),
		CreateTime: now,
		UpdateTime: now,
		Status:     model.StatusUnpaid,
		Products:   []any{ordered},
	}
	if resp := t.addOrder(order); resp != "done" {
		return resp, nil
	}
	return order.String(), nil
}

type createFlightOrderArgs struct {
	FlightID string `json:"flight_id" jsonschema:"required"`
	SeatID   string `json:"seat_id" jsonschema:"required"`
	UserID   string `json:"user_id" jsonschema:"required"`
	Date     string `json:"date" jsonschema:"required"`
	Quantity int    `json:"quantity" jsonschema:"required"`
}

func (t *tools) createFlightOrder(args createFlightOrderArgs) (string, error) {
	if args.FlightID == "" {
		return "", environment.Preconditionf("Flight ID cannot be empty")
	}
	if args.SeatID == "" {
		return "", environment.Preconditionf("Seat ID cannot be empty")
	}
	if args.UserID == "" {
		return "", environment.Preconditionf("User ID cannot be empty")
	}
	if args.Quantity <= 0 {
		return "", environment.Preconditionf("Booking quantity must be greater than 0")
	}
	if args.UserID != t.db.Core().UserID {
		return "", environment.Preconditionf("User ID does not match")
	}
	flight, ok := t.db.Flights[args.FlightID]
	if !ok {
		return "", fmt.Errorf("flight %s not found", args.FlightID)
	}

	var target *FlightProduct
	for _, product := range flight.Products {
		if product.Date == args.Date && product.ProductID == args.SeatID {
			target = product
			break
		}
	}
	if target == nil {
		return "The flight does not have the specified seat on the specified date", nil
	}
	if target.Quantity < args.Quantity {
		return "Insufficient seat inventory for the specified date", nil
	}
	target.Quantity -= args.Quantity

	ordered := &FlightProduct{
		ProductID: target.ProductID,
		Price:     target.Price,
		Date:      args.Date,
		Quantity:  args.Quantity,
		SeatType:  target.SeatType,
	}
	now := t.tk.Now()
	orderID, err := t.db.Core().AssignOrderID("flight", args.UserID, nil)
	if err != nil {
		return "", err
	}
	order := &model.Order{
		OrderID:    orderID,
		OrderType:  model.OrderFlight,
		UserID:     args.UserID,
		StoreID:    args.FlightID,
		TotalPrice: ordered.Price * float64(ordered.Quantity),
		CreateTime: now,
		UpdateTime: now,
		Status:     model.StatusUnpaid,
		Products:   []any{ordered},
	}
	if resp := t.addOrder(order); resp != "done" {
		return resp, nil
	}
	return order.String(), nil
}

type createTrainOrderArgs struct {
	TrainID  string `json:"train_id" jsonschema:"required"`
	SeatID   string `json:"seat_id" jsonschema:"required"`
	UserID   string `json:"user_id" jsonschema:"required"`
	Date     string `json:"date" jsonschema:"required"`
	Quantity int    `json:"quantity" jsonschema:"required"`
}

func (t *tools) createTrainOrder(args createTrainOrderArgs) (string, error) {
	if args.TrainID == "" {
		return "", environment.Preconditionf("Train ID cannot be empty")
	}
	if args.SeatID == "" {
		return "", environment.Preconditionf("Seat ID cannot be empty")
	}
	if args.UserID == "" {
		return "", environment.Preconditionf("User ID cannot be empty")
	}
	if args.Quantity <= 0 {
		return "", environment.Preconditionf("Booking quantity must be greater than 0")
	}
	if args.UserID != t.db.Core().UserID {
		return "", environment.Preconditionf("User ID does not match")
	}
	train, ok := t.db.Trains[args.TrainID]
	if !ok {
		return "", fmt.Errorf("train %s not found", args.TrainID)
	}

	var target *TrainProduct
	for _, product := range train.Products {
		if product.Date == args.Date && product.ProductID == args.SeatID {
			target = product
			break
		}
	}
	if target == nil {
		return "The train does not have the specified seat on the specified date", nil
	}
	if target.Quantity < args.Quantity {
		return "Insufficient seat inventory for the specified date", nil
	}
	target.Quantity -= args.Quantity

	ordered := &TrainProduct{
		ProductID: target.ProductID,
		Price:     target.Price,
		Date:      args.Date,
		Quantity:  args.Quantity,
		SeatType:  target.SeatType,
	}
	now := t.tk.Now()
	orderID, err := t.db.Core().AssignOrderID("train", args.UserID, nil)
	if err != nil {
		return "", err
	}
	order := &model.Order{
		OrderID:    orderID,
		OrderType:  model.OrderTrain,
		UserID:     args.UserID,
		StoreID:    args.TrainID,
		TotalPrice: ordered.Price * float64(ordered.Quantity),
		CreateTime: now,
		UpdateTime: now,
		Status:     model.StatusUnpaid,
		Products:   []any{ordered},
	}
	if resp := t.addOrder(order); resp != "done" {
		return resp, nil
	}
	return order.String(), nil
}

type orderIDArgs struct {
	OrderID string `json:"order_id" jsonschema:"required"`
}

func (t *tools) payOrder(args orderIDArgs) (string, error) {
	if args.OrderID == "" {
		return "", environment.Preconditionf("Order ID cannot be empty")
	}
	order, err := t.order(args.OrderID)
	if err != nil {
		return "", err
	}
	if order.Status != model.StatusUnpaid {
		return "Order status must be unpaid", nil
	}
	order.Status = model.StatusPaid
	order.UpdateTime = t.tk.Now()
	return "Payment successful", nil
}

type searchOrderArgs struct {
	UserID string `json:"user_id" jsonschema:"required"`
	Date   string `json:"date,omitempty"`
	Status string `json:"status,omitempty"`
}

func (t *tools) searchHotelOrders(args searchOrderArgs) (string, error) {
	if args.UserID == "" {
		return "", environment.Preconditionf("User ID cannot be empty")
	}
	if args.UserID != t.db.Core().UserID {
		return "", environment.Preconditionf("User ID does not match")
	}
	hasOrders := false
	for _, order := range t.ordersOfType(model.OrderHotel) {
		if order.UserID == args.UserID {
			hasOrders = true
			break
		}
	}
	if !hasOrders {
		return "", fmt.Errorf("User does not exist or has no order records")
	}
	return t.filterOrders(model.OrderHotel, args)
}

func (t *tools) searchOrdersFor(orderType model.OrderType) func(searchOrderArgs) (string, error) {
	return func(args searchOrderArgs) (string, error) {
		if args.UserID == "" {
			return "", environment.Preconditionf("User ID cannot be empty")
		}
		if args.UserID != t.db.Core().UserID {
			return "", environment.Preconditionf("User ID does not match")
		}
		return t.filterOrders(orderType, args)
	}
}

func (t *tools) filterOrders(orderType model.OrderType, args searchOrderArgs) (string, error) {
	if args.Date != "" && !utils.CheckDateFormat(args.Date) {
		return "", environment.Preconditionf("Date format is incorrect, correct format is %%Y-%%m-%%d")
	}
	status := args.Status
	if status == "" {
		status = string(model.StatusPaid)
	}

	var matched []string
	for _, order := range t.ordersOfType(orderType) {
		if order.UserID != args.UserID {
			continue
		}
		if string(order.Status) != status {
			continue
		}
		if args.Date != "" && !orderHasDate(order, args.Date) {
			continue
		}
		matched = append(matched, order.Summary())
	}
	return strings.Join(matched, "\n"), nil
}

func orderHasDate(order *model.Order, date string) bool {
	for _, product := range order.Products {
		if d, ok := productDate(product); ok && d == date {
			return true
		}
	}
	return false
}

func (t *tools) orderDetailFor(orderType model.OrderType, typeMismatch string) func(orderIDArgs) (string, error) {
	return func(args orderIDArgs) (string, error) {
		if args.OrderID == "" {
			return "", environment.Preconditionf("Order ID cannot be empty")
		}
		order, err := t.order(args.OrderID)
		if err != nil {
			return "", err
		}
		if order.OrderType != orderType {
			return "", environment.Preconditionf("%s", typeMismatch)
		}
		return order.String(), nil
	}
}

type modifyOrderArgs struct {
	OrderID string `json:"order_id" jsonschema:"required"`
	UserID  string `json:"user_id" jsonschema:"required"`
	NewDate string `json:"new_date" jsonschema:"required"`
}

func (t *tools) modifyTrainOrder(args modifyOrderArgs) (string, error) {
	if args.OrderID == "" {
		return "", environment.Preconditionf("Order ID cannot be empty")
	}
	if args.UserID == "" {
		return "", environment.Preconditionf("User ID cannot be empty")
	}
	if args.NewDate == "" {
		return "", environment.Preconditionf("New departure date cannot be empty")
	}
	if args.UserID != t.db.Core().UserID {
		return "", environment.Preconditionf("User ID does not match")
	}
	if !utils.CheckDateFormat(args.NewDate) {
		return "", environment.Preconditionf("Date format is incorrect, correct format is %%Y-%%m-%%d")
	}
	order, err := t.order(args.OrderID)
	if err != nil {
		return "", err
	}
	if order.OrderType != model.OrderTrain {
		return "", environment.Preconditionf("Order type is not a train order")
	}
	if order.UserID != args.UserID {
		return "", environment.Preconditionf("Order %s does not belong to user %s", args.OrderID, args.UserID)
	}
	if order.Status != model.StatusPaid {
		return "", environment.Preconditionf("Only paid orders can be modified, current status: %s", order.Status)
	}
	if len(order.Products) != 1 {
		return "", environment.Preconditionf("Only single train ticket order modification is supported")
	}

	old := seatProduct(order.Products[0])
	train, ok := t.db.Trains[order.StoreID]
	if !ok {
		return "", fmt.Errorf("train %s not found", order.StoreID)
	}
	var target *TrainProduct
	for _, product := range train.Products {
		if product.Date == args.NewDate && product.SeatType == old.SeatType {
			target = product
			break
		}
	}
	if target == nil {
		return "", environment.Preconditionf("New date %s does not have %s type seats", args.NewDate, old.SeatType)
	}
	if target.Quantity < old.Quantity {
		return "", environment.Preconditionf("Insufficient %s seat inventory for new date %s", old.SeatType, args.NewDate)
	}

	for _, product := range train.Products {
		if product.Date == old.Date && product.SeatType == old.SeatType {
			product.Quantity += old.Quantity
			break
		}
	}
	target.Quantity -= old.Quantity

	oldTotal := old.Price * float64(old.Quantity)
	newTotal := target.Price * float64(old.Quantity)
	diff := newTotal - oldTotal
	if diff > 0 {
		order.Status = model.StatusUnpaid
	}
	order.Products = []any{&TrainProduct{
		ProductID: target.ProductID,
		Price:     target.Price,
		Date:      args.NewDate,
		SeatType:  old.SeatType,
		Quantity:  old.Quantity,
	}}
	order.TotalPrice = newTotal
	order.UpdateTime = t.tk.Now()

	if diff > 0 {
		return fmt.Sprintf("Modification successful, need to pay additional amount: %s, please pay as soon as possible", model.FormatFloat(diff)), nil
	}
	return fmt.Sprintf("Modification successful, price difference: %s, refunded", model.FormatFloat(diff)), nil
}

func (t *tools) modifyFlightOrder(args modifyOrderArgs) (string, error) {
	if args.OrderID == "" {
		return "", environment.Preconditionf("Order ID cannot be empty")
	}
	if args.UserID == "" {
		return "", environment.Preconditionf("User ID cannot be empty")
	}
	if args.NewDate == "" {
		return "", environment.Preconditionf("New departure date cannot be empty")
	}
	if !utils.CheckDateFormat(args.NewDate) {
		return "", environment.Preconditionf("Date format is incorrect, correct format is %%Y-%%m-%%d")
	}
	if args.UserID != t.db.Core().UserID {
		return "", environment.Preconditionf("User ID does not match")
	}
	order, err := t.order(args.OrderID)
	if err != nil {
		return "", err
	}
	if order.OrderType != model.OrderFlight {
		return "", environment.Preconditionf("Order type is not a flight order")
	}
	if order.UserID != args.UserID {
		return "", environment.Preconditionf("User %s does not have permission to modify this order", args.UserID)
	}
	if order.Status != model.StatusPaid {
		return "", environment.Preconditionf("Only paid orders can be modified")
	}
	if len(order.Products) != 1 {
		return "", environment.Preconditionf("Only single flight ticket order modification is supported")
	}

	old := seatProduct(order.Products[0])
	flight, ok := t.db.Flights[order.StoreID]
	if !ok {
		return "", fmt.Errorf("flight %s not found", order.StoreID)
	}
	var target *FlightProduct
	for _, product := range flight.Products {
		if product.Date == args.NewDate && product.SeatType == old.SeatType {
			target = product
			break
		}
	}
	if target == nil {
		return "", environment.Preconditionf("New date %s does not have %s type seats", args.NewDate, old.SeatType)
	}
	if target.Quantity < old.Quantity {
		return "", environment.Preconditionf("Insufficient %s seat inventory for new date %s", old.SeatType, args.NewDate)
	}

	for _, product := range flight.Products {
		if product.Date == old.Date && product.SeatType == old.SeatType {
			product.Quantity += old.Quantity
			break
		}
	}
	target.Quantity -= old.Quantity

	oldTotal := old.Price * float64(old.Quantity)
	newTotal := target.Price * float64(old.Quantity)
	diff := newTotal - oldTotal
	if diff > 0 {
		order.Status = model.StatusUnpaid
	}
	order.Products = []any{&FlightProduct{
		ProductID: target.ProductID,
		Price:     target.Price,
		Date:      args.NewDate,
		SeatType:  old.SeatType,
		Quantity:  old.Quantity,
	}}
	order.TotalPrice = newTotal
	order.UpdateTime = t.tk.Now()

	if diff > 0 {
		return fmt.Sprintf("Modification successful, need to pay additional amount: %s, please pay as soon as possible", model.FormatFloat(diff)), nil
	}
	return fmt.Sprintf("Modification successful, price difference: %s, refunded", model.FormatFloat(diff)), nil
}

type cancelOrderArgs struct {
	OrderID string `json:"order_id" jsonschema:"required"`
	UserID  string `json:"user_id" jsonschema:"required"`
}

func (t *tools) cancelOrderFor(orderType model.OrderType, typeMismatch string) func(cancelOrderArgs) (string, error) {
	return func(args cancelOrderArgs) (string, error) {
		if args.OrderID == "" {
			return "", environment.Preconditionf("Order ID cannot be empty")
		}
		if args.UserID == "" {
			return "", environment.Preconditionf("User ID cannot be empty")
		}
		if args.UserID != t.db.Core().UserID {
			return "", environment.Preconditionf("User ID does not match")
		}
		order, err := t.order(args.OrderID)
		if err != nil {
			return "", err
		}
		if order.OrderType != orderType {
			return "", environment.Preconditionf("%s", typeMismatch)
		}
		if order.Status == model.StatusCancelled {
			return "", environment.Preconditionf("Order is already in cancelled status")
		}
		refund := "0"
		if order.Status == model.StatusPaid {
			refund = model.FormatFloat(order.TotalPrice)
		}
		order.Status = model.StatusCancelled
		order.UpdateTime = t.tk.Now()
		return fmt.Sprintf("Cancellation successful, refund amount: %s", refund), nil
	}
}

// seatView normalizes a seat product regardless of whether it was created
// by a tool or decoded from task JSON.
type seatView struct {
	Date     string
	SeatType string
	Quantity int
	Price    float64
}

func seatProduct(p any) seatView {
	switch v := p.(type) {
	case *TrainProduct:
		return seatView{Date: v.Date, SeatType: v.SeatType, Quantity: v.Quantity, Price: v.Price}
	case *FlightProduct:
		return seatView{Date: v.Date, SeatType: v.SeatType, Quantity: v.Quantity, Price: v.Price}
	case map[string]any:
		view := seatView{}
		if s, ok := v["date"].(string); ok {
			view.Date = s
		}
		if s, ok := v["seat_type"].(string); ok {
			view.SeatType = s
		}
		if n, ok := v["quantity"].(float64); ok {
			view.Quantity = int(n)
		}
		if n, ok := v["price"].(float64); ok {
			view.Price = n
		}
		return view
	}
	return seatView{}
}

func productDate(p any) (string, bool) {
	switch v := p.(type) {
	case *HotelProduct:
		return v.Date, true
	case *AttractionProduct:
		return v.Date, true
	case *FlightProduct:
		return v.Date, true
	case *TrainProduct:
		return v.Date, true
	case map[string]any:
		if s, ok := v["date"].(string); ok {
			return s, true
		}
	}
	return "", false
}
