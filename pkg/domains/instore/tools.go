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
	"fmt"
	"sort"
	"strings"

	"github.com/vitabench/vita/pkg/environment"
	"github.com/vitabench/vita/pkg/model"
	"github.com/vitabench/vita/pkg/utils"
)

const searchTopK = 50

type tools struct {
	db *DB
	tk *environment.Toolkit
}

// RegisterTools adds the in-store tools to a toolkit bound to db.
func RegisterTools(tk *environment.Toolkit, db *DB) {
	t := &tools{db: db, tk: tk}

	tk.Register(environment.NewTool("instore_shop_search_recommend", environment.ToolTypeRead, t.shopSearch))
	tk.Register(environment.NewTool("instore_product_search_recommend", environment.ToolTypeRead, t.productSearch))
	tk.Register(environment.NewTool("create_instore_product_order", environment.ToolTypeWrite, t.createOrder))
	tk.Register(environment.NewTool("pay_instore_order", environment.ToolTypeWrite, t.payOrder))
	tk.Register(environment.NewTool("instore_cancel_order", environment.ToolTypeWrite, t.cancelOrder))
	tk.Register(environment.NewTool("instore_book", environment.ToolTypeWrite, t.book))
	tk.Register(environment.NewTool("pay_instore_book", environment.ToolTypeWrite, t.payBook))
	tk.Register(environment.NewTool("instore_cancel_book", environment.ToolTypeWrite, t.cancelBook))
	tk.Register(environment.NewTool("instore_reservation", environment.ToolTypeWrite, t.reserve))
	tk.Register(environment.NewTool("instore_modify_reservation", environment.ToolTypeWrite, t.modifyReservation))
	tk.Register(environment.NewTool("instore_cancel_reservation", environment.ToolTypeWrite, t.cancelReservation))
	tk.Register(environment.NewTool("get_instore_orders", environment.ToolTypeRead, t.listOrders))
	tk.Register(environment.NewTool("get_instore_reservations", environment.ToolTypeRead, t.listReservations))
	tk.Register(environment.NewTool("get_instore_books", environment.ToolTypeRead, t.listBooks))
	tk.Register(environment.NewTool("search_instore_book", environment.ToolTypeRead, t.searchBook))
	tk.Register(environment.NewTool("search_instore_reservation", environment.ToolTypeRead, t.searchReservation))
}

func (t *tools) order(orderID string) (*model.Order, error) {
	order, ok := t.db.Core().Orders[orderID]
	if !ok {
		return nil, fmt.Errorf("Order %s not found", orderID)
	}
	if order.OrderType != model.OrderInstore {
		return nil, fmt.Errorf("Order %s is not an instore order", orderID)
	}
	return order, nil
}

func (t *tools) instoreOrders() []*model.Order {
	core := t.db.Core()
	var orders []*model.Order
	for _, id := range core.OrderIDs() {
		if core.Orders[id].OrderType == model.OrderInstore {
			orders = append(orders, core.Orders[id])
		}
	}
	return orders
}

func (t *tools) book(args bookArgs) (string, error) {
	if args.UserID == "" {
		return "", environment.Preconditionf("User ID cannot be empty")
	}
	if args.UserID != t.db.Core().UserID {
		return "", environment.Preconditionf("User ID does not match")
	}
	if args.ShopID == "" {
		return "", environment.Preconditionf("Shop ID cannot be empty")
	}
	if args.Time == "" {
		return "", environment.Preconditionf("Table booking time cannot be empty")
	}
	count := 1
	if args.CustomerCount != nil {
		count = *args.CustomerCount
	}
	if count <= 0 {
		return "", environment.Preconditionf("Number of customers for table booking must be greater than 0")
	}
	if !utils.CheckTimeFormat(args.Time) {
		return "", environment.Preconditionf("Table booking time format is incorrect, correct format is %%Y-%%m-%%d %%H:%%M:%%S")
	}

	shop, err := t.db.shop(args.ShopID)
	if err != nil {
		return fmt.Sprintf("Error: %s", err), nil
	}
	if !shop.EnableBook {
		return fmt.Sprintf("Shop %s does not support table booking", args.ShopID), nil
	}

	status := model.StatusPaid
	if shop.BookPrice > 0 {
		status = model.StatusUnpaid
	}
	bookID, err := t.db.Core().AssignOrderID("instore_book", args.UserID, nil)
	if err != nil {
		return "", err
	}
	info := &BookInfo{
		BookID:        bookID,
		ShopID:        args.ShopID,
		BookTime:      args.Time,
		CustomerCount: count,
		BookPrice:     shop.BookPrice,
		CustomerID:    args.UserID,
		Status:        status,
		UpdateTime:    t.tk.Now(),
	}
	if _, exists := t.db.Books[info.BookID]; exists {
		return "Failed to create booking: BookInfo already exists", nil
	}
	if t.db.Books == nil {
		t.db.Books = make(map[string]*BookInfo)
	}
	t.db.Books[info.BookID] = info
	return info.String(), nil
}

type searchArgs struct {
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

func (t *tools) shopSearch(args searchArgs) (string, error) {
	if err := checkKeywords(args.Keywords); err != nil {
		return "", err
	}
	if len(t.db.Shops) == 0 {
		return "No shops available", nil
	}

	docs := make([]utils.Doc, 0, len(t.db.Shops))
	for _, id := range t.db.shopIDs() {
		shop := t.db.Shops[id]
		docs = append(docs, utils.Doc{ID: id, Text: shop.ShopName + "," + strings.Join(shop.Tags, ",")})
	}
	ranked := utils.Rerank(strings.Join(args.Keywords, ""), docs)
	if len(ranked) > searchTopK {
		ranked = ranked[:searchTopK]
	}
	if len(ranked) == 0 {
		return "No shops found matching the keywords", nil
	}
	selected := make([]string, len(ranked))
	for i, doc := range ranked {
		selected[i] = t.db.Shops[doc.ID].String()
	}
	return strings.Join(selected, "\n"), nil
}

func (t *tools) productSearch(args searchArgs) (string, error) {
	if err := checkKeywords(args.Keywords); err != nil {
		return "", err
	}

	var docs []utils.Doc
	byID := make(map[string]*ShopProduct)
	for _, id := range t.db.shopIDs() {
		for _, product := range t.db.Shops[id].Products {
			docs = append(docs, utils.Doc{ID: product.ProductID, Text: product.Name + "," + strings.Join(product.Tags, ",")})
			byID[product.ProductID] = product
		}
	}
	if len(docs) == 0 {
		return "No products available", nil
	}
	ranked := utils.Rerank(strings.Join(args.Keywords, ""), docs)
	if len(ranked) > searchTopK {
		ranked = ranked[:searchTopK]
	}
	if len(ranked) == 0 {
		return "No products found matching the keywords", nil
	}
	selected := make([]string, len(ranked))
	for i, doc := range ranked {
		selected[i] = byID[doc.ID].String()
	}
	return strings.Join(selected, "\n"), nil
}

type createOrderArgs struct {
	UserID    string `json:"user_id" jsonschema:"required"`
	ShopID    string `json:"shop_id" jsonschema:"required"`
	ProductID string `json:"product_id" jsonschema:"required"`
	Quantity  *int   `json:"quantity,omitempty"`
}

func (t *tools) createOrder(args createOrderArgs) (string, error) {
	if args.UserID == "" {
		return "", environment.Preconditionf("User ID cannot be empty")
	}
	if args.UserID != t.db.Core().UserID {
		return "", environment.Preconditionf("User ID does not match")
	}
	if args.ShopID == "" {
		return "", environment.Preconditionf("Shop ID cannot be empty")
	}
	if args.ProductID == "" {
		return "", environment.Preconditionf("Product ID cannot be empty")
	}
	quantity := 1
	if args.Quantity != nil {
		quantity = *args.Quantity
	}
	if quantity <= 0 {
		return "", environment.Preconditionf("Quantity must be greater than 0")
	}

	shop, err := t.db.shop(args.ShopID)
	if err != nil {
		return fmt.Sprintf("Error: %s", err), nil
	}
	inShop := false
	for _, product := range shop.Products {
		if product.ProductID == args.ProductID {
			inShop = true
			break
		}
	}
	if !inShop {
		return fmt.Sprintf("Product %s does not exist in shop %s", args.ProductID, args.ShopID), nil
	}
	product, err := t.db.product(args.ProductID)
	if err != nil {
		return fmt.Sprintf("Error: %s", err), nil
	}
	product.Quantity = quantity

	now := t.tk.Now()
	orderID, err := t.db.Core().AssignOrderID("instore", args.UserID, nil)
	if err != nil {
		return "", err
	}
	order := &model.Order{
		OrderID:    orderID,
		OrderType:  model.OrderInstore,
		UserID:     args.UserID,
		StoreID:    args.ShopID,
		TotalPrice: float64(quantity) * product.Price,
		CreateTime: now,
		UpdateTime: now,
		Status:     model.StatusUnpaid,
		Products:   []any{product},
	}
	core := t.db.Core()
	if _, exists := core.Orders[order.OrderID]; exists {
		return "Failed to create order: Order already exists", nil
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

func (t *tools) cancelOrder(args orderIDArgs) (string, error) {
	if args.OrderID == "" {
		return "", environment.Preconditionf("Order ID cannot be empty")
	}
	order, err := t.order(args.OrderID)
	if err != nil {
		return fmt.Sprintf("Error: %s", err), nil
	}
	if order.Status == model.StatusCancelled {
		return fmt.Sprintf("Order %s is already cancelled.", order.OrderID), nil
	}
	order.Status = model.StatusCancelled
	order.UpdateTime = t.tk.Now()
	return fmt.Sprintf("Order %s is cancelled.", order.OrderID), nil
}

type bookArgs struct {
	UserID        string `json:"user_id" jsonschema:"required"`
	ShopID        string `json:"shop_id" jsonschema:"required"`
	Time          string `json:"time" jsonschema:"required"`
	CustomerCount *int   `json:"customer_count,omitempty"`
}

type bookIDArgs struct {
	BookID string `json:"book_id" jsonschema:"required"`
}

func (t *tools) bookInfo(bookID string) (*BookInfo, error) {
	info, ok := t.db.Books[bookID]
	if !ok {
		return nil, fmt.Errorf("BookInfo %s not found", bookID)
	}
	return info, nil
}

func (t *tools) payBook(args bookIDArgs) (string, error) {
	if args.BookID == "" {
		return "", environment.Preconditionf("Booking ID cannot be empty")
	}
	info, err := t.bookInfo(args.BookID)
	if err != nil {
		return fmt.Sprintf("Error: %s", err), nil
	}
	if info.Status != model.StatusUnpaid {
		return fmt.Sprintf("BookInfo %s is not in `unpaid` status. Current status: %s", info.BookID, info.Status), nil
	}
	info.Status = model.StatusPaid
	info.UpdateTime = t.tk.Now()
	return "Payment successful", nil
}

func (t *tools) cancelBook(args bookIDArgs) (string, error) {
	if args.BookID == "" {
		return "", environment.Preconditionf("Booking ID cannot be empty")
	}
	info, err := t.bookInfo(args.BookID)
	if err != nil {
		return fmt.Sprintf("Error: %s", err), nil
	}
	if info.Status == model.StatusCancelled {
		return fmt.Sprintf("BookInfo %s is already cancelled.", info.BookID), nil
	}
	info.Status = model.StatusCancelled
	info.UpdateTime = t.tk.Now()
	return fmt.Sprintf("BookInfo %s is cancelled.", info.BookID), nil
}

func (t *tools) reserve(args bookArgs) (string, error) {
	if args.UserID == "" {
		return "", environment.Preconditionf("User ID cannot be empty")
	}
	if args.UserID != t.db.Core().UserID {
		return "", environment.Preconditionf("User ID does not match")
	}
	if args.ShopID == "" {
		return "", environment.Preconditionf("Shop ID cannot be empty")
	}
	if args.Time == "" {
		return "", environment.Preconditionf("Reservation time cannot be empty")
	}
	count := 1
	if args.CustomerCount != nil {
		count = *args.CustomerCount
	}
	if count <= 0 {
		return "", environment.Preconditionf("Number of customers for reservation must be greater than 0")
	}
	if !utils.CheckTimeFormat(args.Time) {
		return "", environment.Preconditionf("Reservation time format is incorrect, correct format is %%Y-%%m-%%d %%H:%%M:%%S")
	}

	if _, err := t.db.shop(args.ShopID); err != nil {
		return fmt.Sprintf("Error: %s", err), nil
	}

	reservationID, err := t.db.Core().AssignOrderID("instore_reservation", args.UserID, nil)
	if err != nil {
		return "", err
	}
	info := &ReservationInfo{
		ReservationID:   reservationID,
		ShopID:          args.ShopID,
		ReservationTime: args.Time,
		CustomerID:      args.UserID,
		CustomerCount:   count,
		Status:          model.StatusUnconsumed,
		UpdateTime:      t.tk.Now(),
	}
	if _, exists := t.db.Reservations[info.ReservationID]; exists {
		return "Failed to create reservation: ReservationInfo already exists", nil
	}
	if t.db.Reservations == nil {
		t.db.Reservations = make(map[string]*ReservationInfo)
	}
	t.db.Reservations[info.ReservationID] = info
	return info.String(), nil
}

func (t *tools) reservationInfo(reservationID string) (*ReservationInfo, error) {
	info, ok := t.db.Reservations[reservationID]
	if !ok {
		return nil, fmt.Errorf("ReservationInfo %s not found", reservationID)
	}
	return info, nil
}

type modifyReservationArgs struct {
	ReservationID string `json:"reservation_id" jsonschema:"required"`
	Time          string `json:"time" jsonschema:"required"`
	CustomerCount int    `json:"customer_count,omitempty"`
}

func (t *tools) modifyReservation(args modifyReservationArgs) (string, error) {
	if args.ReservationID == "" {
		return "", environment.Preconditionf("Reservation ID cannot be empty")
	}
	if args.Time == "" {
		return "", environment.Preconditionf("Reservation time cannot be empty")
	}
	if args.CustomerCount < 0 {
		return "", environment.Preconditionf("Number of customers for reservation must be greater than or equal to 0")
	}
	if !utils.CheckTimeFormat(args.Time) {
		return "", environment.Preconditionf("Reservation time format is incorrect, correct format is %%Y-%%m-%%d %%H:%%M:%%S")
	}

	info, err := t.reservationInfo(args.ReservationID)
	if err != nil {
		return fmt.Sprintf("Error: %s", err), nil
	}
	if info.Status == model.StatusConsumed || info.Status == model.StatusCancelled {
		return fmt.Sprintf("ReservationInfo %s is already %s.", info.ReservationID, info.Status), nil
	}
	info.ReservationTime = args.Time
	info.CustomerCount = args.CustomerCount
	info.UpdateTime = t.tk.Now()
	return info.String(), nil
}

type reservationIDArgs struct {
	ReservationID string `json:"reservation_id" jsonschema:"required"`
}

func (t *tools) cancelReservation(args reservationIDArgs) (string, error) {
	if args.ReservationID == "" {
		return "", environment.Preconditionf("Reservation ID cannot be empty")
	}
	info, err := t.reservationInfo(args.ReservationID)
	if err != nil {
		return fmt.Sprintf("Error: %s", err), nil
	}
	if info.Status == model.StatusCancelled {
		return fmt.Sprintf("ReservationInfo %s is already cancelled.", info.ReservationID), nil
	}
	info.Status = model.StatusCancelled
	info.UpdateTime = t.tk.Now()
	return fmt.Sprintf("ReservationInfo %s is cancelled.", info.ReservationID), nil
}

type userIDArgs struct {
	UserID string `json:"user_id" jsonschema:"required"`
}

func (t *tools) checkUser(userID string) error {
	if userID == "" {
		return environment.Preconditionf("User ID cannot be empty")
	}
	if userID != t.db.Core().UserID {
		return environment.Preconditionf("User ID does not match")
	}
	return nil
}

func (t *tools) listOrders(args userIDArgs) (string, error) {
	if err := t.checkUser(args.UserID); err != nil {
		return "", err
	}
	var matched []string
	for _, order := range t.instoreOrders() {
		if order.UserID == args.UserID {
			matched = append(matched, order.String())
		}
	}
	if len(matched) == 0 {
		return fmt.Sprintf("User %s has no order information.", args.UserID), nil
	}
	return strings.Join(matched, "\n"), nil
}

func (t *tools) listReservations(args userIDArgs) (string, error) {
	if err := t.checkUser(args.UserID); err != nil {
		return "", err
	}
	var matched []string
	for _, id := range sortedIDs(t.db.Reservations) {
		if info := t.db.Reservations[id]; info.CustomerID == args.UserID {
			matched = append(matched, info.String())
		}
	}
	if len(matched) == 0 {
		return fmt.Sprintf("User %s has no reservation information.", args.UserID), nil
	}
	return strings.Join(matched, "\n"), nil
}

func (t *tools) listBooks(args userIDArgs) (string, error) {
	if err := t.checkUser(args.UserID); err != nil {
		return "", err
	}
	var matched []string
	for _, id := range sortedIDs(t.db.Books) {
		if info := t.db.Books[id]; info.CustomerID == args.UserID {
			matched = append(matched, info.String())
		}
	}
	if len(matched) == 0 {
		return fmt.Sprintf("User %s has no book information.", args.UserID), nil
	}
	return strings.Join(matched, "\n"), nil
}

type searchBookArgs struct {
	UserID string `json:"user_id" jsonschema:"required"`
	BookID string `json:"book_id,omitempty"`
}

func (t *tools) searchBook(args searchBookArgs) (string, error) {
	if err := t.checkUser(args.UserID); err != nil {
		return "", err
	}
	if args.BookID == "" {
		return t.listBooks(userIDArgs{UserID: args.UserID})
	}
	info, err := t.bookInfo(args.BookID)
	if err != nil {
		return "", err
	}
	if info.CustomerID != args.UserID {
		return fmt.Sprintf("BookInfo %s is not belong to user %s.", args.BookID, args.UserID), nil
	}
	return info.String(), nil
}

type searchReservationArgs struct {
	UserID        string `json:"user_id" jsonschema:"required"`
	ReservationID string `json:"reservation_id,omitempty"`
}

func (t *tools) searchReservation(args searchReservationArgs) (string, error) {
	if err := t.checkUser(args.UserID); err != nil {
		return "", err
	}
	if args.ReservationID == "" {
		return t.listReservations(userIDArgs{UserID: args.UserID})
	}
	info, err := t.reservationInfo(args.ReservationID)
	if err != nil {
		return "", err
	}
	if info.CustomerID != args.UserID {
		return fmt.Sprintf("ReservationInfo %s is not belong to user %s.", args.ReservationID, args.UserID), nil
	}
	return info.String(), nil
}

func sortedIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
