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
	"math"
	"strings"
	"time"

	"github.com/vitabench/vita/pkg/environment"
	"github.com/vitabench/vita/pkg/model"
	"github.com/vitabench/vita/pkg/utils"
)

const searchTopK = 50

type tools struct {
	db *DB
	tk *environment.Toolkit
}

// RegisterTools adds the delivery tools to a toolkit bound to db.
func RegisterTools(tk *environment.Toolkit, db *DB) {
	t := &tools{db: db, tk: tk}

	tk.Register(environment.NewTool("delivery_distance_to_time", environment.ToolTypeGeneric, t.distanceToTime))
	tk.Register(environment.NewTool("get_delivery_store_info", environment.ToolTypeRead, t.storeInfo))
	tk.Register(environment.NewTool("get_delivery_product_info", environment.ToolTypeRead, t.productInfo))
	tk.Register(environment.NewTool("delivery_store_search_recommend", environment.ToolTypeRead, t.storeSearch))
	tk.Register(environment.NewTool("delivery_product_search_recommend", environment.ToolTypeRead, t.productSearch))
	tk.Register(environment.NewTool("create_delivery_order", environment.ToolTypeWrite, t.createOrder))
	tk.Register(environment.NewTool("pay_delivery_order", environment.ToolTypeWrite, t.payOrder))
	tk.Register(environment.NewTool("get_delivery_order_status", environment.ToolTypeRead, t.orderStatus))
	tk.Register(environment.NewTool("cancel_delivery_order", environment.ToolTypeWrite, t.cancelOrder))
	tk.Register(environment.NewTool("modify_delivery_order", environment.ToolTypeWrite, t.modifyOrder))
	tk.Register(environment.NewTool("search_delivery_orders", environment.ToolTypeRead, t.searchOrders))
	tk.Register(environment.NewTool("get_delivery_order_detail", environment.ToolTypeRead, t.orderDetail))
}

func (t *tools) order(orderID string) (*model.Order, error) {
	order, ok := t.db.Core().Orders[orderID]
	if !ok {
		return nil, fmt.Errorf("Order %s not found", orderID)
	}
	if order.OrderType != model.OrderDelivery {
		return nil, fmt.Errorf("Order %s is not a delivery order", orderID)
	}
	return order, nil
}

func (t *tools) deliveryOrders() []*model.Order {
	core := t.db.Core()
	var orders []*model.Order
	for _, id := range core.OrderIDs() {
		if core.Orders[id].OrderType == model.OrderDelivery {
			orders = append(orders, core.Orders[id])
		}
	}
	return orders
}

type distanceToTimeArgs struct {
	Distance float64 `json:"distance" jsonschema:"required"`
}

// ShippingMinutes converts a store-to-address distance in meters to a
// delivery duration in minutes.
func ShippingMinutes(distance float64) float64 {
	return math.Round(25.00 + float64(int(distance))*0.006510)
}

func (t *tools) distanceToTime(args distanceToTimeArgs) (string, error) {
	return model.FormatFloat(ShippingMinutes(args.Distance)), nil
}

type storeInfoArgs struct {
	StoreID string `json:"store_id" jsonschema:"required"`
}

func (t *tools) storeInfo(args storeInfoArgs) (string, error) {
	if args.StoreID == "" {
		return "", environment.Preconditionf("Store ID cannot be empty")
	}
	store, err := t.db.store(args.StoreID)
	if err != nil {
		return fmt.Sprintf("Error: %s", err), nil
	}
	return store.Detail(), nil
}

type productInfoArgs struct {
	ProductID string `json:"product_id" jsonschema:"required"`
}

func (t *tools) productInfo(args productInfoArgs) (string, error) {
	if args.ProductID == "" {
		return "", environment.Preconditionf("Product ID cannot be empty")
	}
	product, err := t.db.product(args.ProductID)
	if err != nil {
		return fmt.Sprintf("Error: %s", err), nil
	}
	return product.String(), nil
}

type keywordsArgs struct {
	Keywords []string `json:"keywords" jsonschema:"required"`
}

func checkKeywords(keywords []string) error {
	if len(keywords) == 0 {
		return environment.Preconditionf("Keywords cannot be empty")
	}
	for _, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			return environment.Preconditionf("All keywords must be non-empty strings")
		}
	}
	return nil
}

func (t *tools) storeSearch(args keywordsArgs) (string, error) {
	if err := checkKeywords(args.Keywords); err != nil {
		return "", err
	}
	if len(t.db.Stores) == 0 {
		return "No stores available", nil
	}

	docs := make([]utils.Doc, 0, len(t.db.Stores))
	for _, id := range t.db.storeIDs() {
		store := t.db.Stores[id]
		docs = append(docs, utils.Doc{ID: id, Text: store.Name + strings.Join(store.Tags, ",")})
	}
	ranked := utils.Rerank(strings.Join(args.Keywords, ""), docs)
	if len(ranked) > searchTopK {
		ranked = ranked[:searchTopK]
	}

	var selected []string
	for _, doc := range ranked {
		if store, ok := t.db.Stores[doc.ID]; ok {
			selected = append(selected, store.String())
		}
	}
	if len(selected) == 0 {
		return "No stores found matching the keywords", nil
	}
	return strings.Join(selected, "\n"), nil
}

func (t *tools) productSearch(args keywordsArgs) (string, error) {
	if err := checkKeywords(args.Keywords); err != nil {
		return "", err
	}

	var docs []utils.Doc
	products := make(map[string]*StoreProduct)
	for _, id := range t.db.storeIDs() {
		for _, product := range t.db.Stores[id].Products {
			products[product.ProductID] = product
			docs = append(docs, utils.Doc{
				ID:   product.ProductID,
				Text: fmt.Sprintf("%s %s %s", product.StoreName, product.Name, model.FormatStringList(product.Tags)),
			})
		}
	}
	if len(docs) == 0 {
		return "No products available", nil
	}

	ranked := utils.Rerank(strings.Join(args.Keywords, ""), docs)
	if len(ranked) > searchTopK {
		ranked = ranked[:searchTopK]
	}
	var selected []string
	for _, doc := range ranked {
		if product, ok := products[doc.ID]; ok {
			selected = append(selected, product.String())
		}
	}
	if len(selected) == 0 {
		return "No products found matching the keywords", nil
	}
	return strings.Join(selected, "\n"), nil
}

type createOrderArgs struct {
	UserID       string   `json:"user_id" jsonschema:"required"`
	StoreID      string   `json:"store_id" jsonschema:"required"`
	ProductIDs   []string `json:"product_ids" jsonschema:"required"`
	ProductCnts  []int    `json:"product_cnts" jsonschema:"required"`
	Address      string   `json:"address" jsonschema:"required"`
	DispatchTime string   `json:"dispatch_time" jsonschema:"required"`
	Attributes   []string `json:"attributes,omitempty"`
	Note         string   `json:"note,omitempty"`
}

func (t *tools) createOrder(args createOrderArgs) (string, error) {
	core := t.db.Core()
	if args.UserID == "" {
		return "", environment.Preconditionf("User ID cannot be empty")
	}
	if args.UserID != core.UserID {
		return "", environment.Preconditionf("User ID does not match")
	}
	if _, ok := t.db.Stores[args.StoreID]; !ok {
		return "", environment.Preconditionf("Store %s not found", args.StoreID)
	}
	products := make([]*StoreProduct, len(args.ProductIDs))
	for i, productID := range args.ProductIDs {
		product, err := t.db.product(productID)
		if err != nil {
			return "", environment.Preconditionf("products %v not found", args.ProductIDs)
		}
		products[i] = product
	}
	if args.Address == "" {
		return "", environment.Preconditionf("Location %s is empty", args.Address)
	}
	if len(args.ProductIDs) != len(args.ProductCnts) {
		return "", environment.Preconditionf("product_cnts %v list is invalid", args.ProductCnts)
	}
	for _, cnt := range args.ProductCnts {
		if cnt <= 0 {
			return "", environment.Preconditionf("product_cnts %v list is invalid", args.ProductCnts)
		}
	}
	if args.DispatchTime == "" || !utils.CheckTimeFormat(args.DispatchTime) {
		return "", environment.Preconditionf("dispatch_time %s time format is invalid, yyyy-mm-dd HH:MM:SS required", args.DispatchTime)
	}
	now := t.tk.Now()
	dispatchAt, _ := utils.ParseDateTime(args.DispatchTime)
	nowAt, _ := utils.ParseDateTime(now)
	if dispatchAt.Before(nowAt) {
		return "", environment.Preconditionf("dispatch_time %s must be in the future", args.DispatchTime)
	}

	store := t.db.Stores[args.StoreID]
	location, err := environment.Geocode(core, args.Address)
	if err != nil {
		return "", err
	}
	distance := environment.Distance(location.Longitude, location.Latitude, store.Location.Longitude, store.Location.Latitude)
	shippingTime := ShippingMinutes(distance)
	deliveryTime := dispatchAt.Add(time.Duration(shippingTime) * time.Minute).Format(utils.DateTimeLayout)

	var totalAmount float64
	for i, product := range products {
		totalAmount += product.Price * float64(args.ProductCnts[i])
	}

	attributes := make([]string, len(products))
	for i, attr := range args.Attributes {
		if i >= len(products) {
			break
		}
		attributes[i] = attr
	}
	ordered := make([]any, len(products))
	for i, product := range products {
		ordered[i] = &StoreProduct{
			ProductID:  product.ProductID,
			Name:       product.Name,
			StoreID:    product.StoreID,
			StoreName:  product.StoreName,
			Attributes: Attributes(attributes[i]),
			Quantity:   args.ProductCnts[i],
			Price:      product.Price,
			Tags:       product.Tags,
		}
	}

	orderID, err := core.AssignOrderID("delivery", args.UserID, nil)
	if err != nil {
		return "", err
	}
	order := &model.Order{
		OrderID:   orderID,
		OrderType: model.OrderDelivery,
		UserID:    args.UserID,
		StoreID:   args.StoreID,
		Location: &model.Location{
			Address:   args.Address,
			Longitude: location.Longitude,
			Latitude:  location.Latitude,
		},
		DispatchTime: args.DispatchTime,
		ShippingTime: shippingTime,
		DeliveryTime: deliveryTime,
		TotalPrice:   totalAmount,
		CreateTime:   now,
		UpdateTime:   now,
		Note:         args.Note,
		Products:     ordered,
		Status:       model.StatusUnpaid,
	}
	if _, exists := core.Orders[order.OrderID]; exists {
		return "Order already exists", nil
	}
	if core.Orders == nil {
		core.Orders = make(map[string]*model.Order)
	}
	core.Orders[order.OrderID] = order
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
		return fmt.Sprintf("Error: %s", err), nil
	}
	if order.Status != model.StatusUnpaid {
		return fmt.Sprintf("Order %s is not in `unpaid` status. Current status: %s", args.OrderID, order.Status), nil
	}
	order.Status = model.StatusPaid
	order.UpdateTime = t.tk.Now()
	return "Payment successful", nil
}

func (t *tools) orderStatus(args orderIDArgs) (string, error) {
	if args.OrderID == "" {
		return "", environment.Preconditionf("Order ID cannot be empty")
	}
	order, err := t.order(args.OrderID)
	if err != nil {
		return fmt.Sprintf("Error: %s", err), nil
	}
	return fmt.Sprintf("Order %s status: %s", args.OrderID, order.Status), nil
}

func (t *tools) cancelOrder(args orderIDArgs) (string, error) {
	if args.OrderID == "" {
		return "", environment.Preconditionf("Order ID cannot be empty")
	}
	order, err := t.order(args.OrderID)
	if err != nil {
		return fmt.Sprintf("Error: %s", err), nil
	}
	if order.Status == model.StatusCancelled {
		return fmt.Sprintf("Order %s is already cancelled", args.OrderID), nil
	}
	order.Status = model.StatusCancelled
	order.UpdateTime = t.tk.Now()
	return fmt.Sprintf("Order %s has been cancelled.", order.OrderID), nil
}

type modifyOrderArgs struct {
	OrderID string `json:"order_id" jsonschema:"required"`
	Note    string `json:"note" jsonschema:"required"`
}

func (t *tools) modifyOrder(args modifyOrderArgs) (string, error) {
	if args.OrderID == "" {
		return "", environment.Preconditionf("Order ID cannot be empty")
	}
	order, err := t.order(args.OrderID)
	if err != nil {
		return fmt.Sprintf("Error: %s", err), nil
	}
	if order.Status == model.StatusCancelled {
		return fmt.Sprintf("Cannot modify order %s as it is already cancelled", args.OrderID), nil
	}
	order.Note = args.Note
	order.UpdateTime = t.tk.Now()
	return fmt.Sprintf("Order %s has been modified.", order.OrderID), nil
}

type searchOrdersArgs struct {
	UserID string `json:"user_id" jsonschema:"required"`
	Status string `json:"status,omitempty"`
}

func (t *tools) searchOrders(args searchOrdersArgs) (string, error) {
	if args.UserID == "" {
		return "", environment.Preconditionf("User ID cannot be empty")
	}
	if args.UserID != t.db.Core().UserID {
		return "", environment.Preconditionf("User ID does not match")
	}
	status := args.Status
	if status == "" {
		status = string(model.StatusUnpaid)
	}

	var matched []string
	for _, order := range t.deliveryOrders() {
		if string(order.Status) == status && order.UserID == args.UserID {
			matched = append(matched, order.Summary())
		}
	}
	if len(matched) == 0 {
		return "No delivery orders available", nil
	}
	return strings.Join(matched, "\n"), nil
}

func (t *tools) orderDetail(args orderIDArgs) (string, error) {
	if args.OrderID == "" {
		return "", environment.Preconditionf("Order ID cannot be empty")
	}
	order, err := t.order(args.OrderID)
	if err != nil {
		return fmt.Sprintf("Error: %s", err), nil
	}
	return order.String(), nil
}
