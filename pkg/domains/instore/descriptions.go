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

import "github.com/vitabench/vita/pkg/environment"

// Descriptions documents the in-store tools in both languages.
var Descriptions = environment.DescriptionTable{
	English: map[string]environment.ToolDescription{
		"instore_shop_search_recommend": {
			Description:    "In instore consumption scenario, when user needs are vague (no clear expression of specific packages or specific merchants), need to recommend multiple merchants based on user preferences and merchant tags",
			Preconditions:  "In instore consumption scenario, get merchant-related keywords",
			Postconditions: "Return merchant list, guide user to select and confirm merchant, after merchant is confirmed user needs to select and confirm package",
			Args: []environment.ArgDescription{
				{Name: "keywords", Description: "Keywords describing merchants"},
			},
			Returns: "Structured merchant information output",
		},
		"instore_product_search_recommend": {
			Description:    "In instore scenario, can extract keywords describing packages from user expressions, search or recommend multiple packages",
			Preconditions:  "In instore scenario, package-related keywords",
			Postconditions: "Return package list, guide user to select package and create order",
			Args: []environment.ArgDescription{
				{Name: "keywords", Description: "Keywords describing packages"},
			},
			Returns: "Structured package information output",
		},
		"create_instore_product_order": {
			Description:    "Submit instore order",
			Preconditions:  "In instore scenario, determine unique merchant id and one or more product ids",
			Postconditions: "Return order information (including order_id), ask user to confirm payment",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "User id"},
				{Name: "shop_id", Description: "Merchant id"},
				{Name: "product_id", Description: "Package id"},
				{Name: "quantity", Description: "Quantity"},
			},
			Returns: "Order information",
		},
		"pay_instore_order": {
			Description:    "In instore scenario, with order information above, user expresses payment completion or re-payment completion",
			Preconditions:  "In instore scenario, user expresses completion of payment operation, order creation completed and enters payment phase | user indicates re-payment",
			Postconditions: "Return payment result information",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order id"},
			},
			Returns: "Payment result information output",
		},
		"instore_cancel_order": {
			Description:    "User cancels order or user cancels payment. Prohibited from canceling orders that are already in cancelled status.",
			Preconditions:  "In instore scenario, query order status, ensure order status is not cancelled",
			Postconditions: "Return order cancellation result information",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order id"},
			},
			Returns: "Order cancellation result information output",
		},
		"instore_book": {
			Description:    "Seat reservation - Reserve physical seats/tables after selecting merchant",
			Preconditions:  "In instore scenario, determine unique merchant id, merchant supports seat reservation service",
			Postconditions: "Return seat reservation information (including book_id), if seat reservation fee is required, ask user to confirm payment",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "User id"},
				{Name: "shop_id", Description: "Merchant id"},
				{Name: "time", Description: "Seat reservation time format: %Y-%m-%d %H:%M:%S"},
				{Name: "customer_count", Description: "Seat reservation customer count, default is 1 person"},
			},
			Returns: "Seat reservation information",
		},
		"pay_instore_book": {
			Description:    "Instore seat reservation payment",
			Preconditions:  "In instore scenario, determine unique seat reservation id",
			Postconditions: "Return payment result information",
			Args: []environment.ArgDescription{
				{Name: "book_id", Description: "Seat reservation id"},
			},
			Returns: "Payment result information",
		},
		"instore_cancel_book": {
			Description:    "Cancel instore seat reservation",
			Preconditions:  "In instore scenario, determine unique seat reservation id",
			Postconditions: "Return seat reservation cancellation result information",
			Args: []environment.ArgDescription{
				{Name: "book_id", Description: "Seat reservation id"},
			},
			Returns: "Seat reservation cancellation result information",
		},
		"instore_reservation": {
			Description:    "Service reservation - Reserve service time after selecting merchant",
			Preconditions:  "In instore scenario, determine unique merchant id, merchant supports reservation service",
			Postconditions: "Return reservation information (including reservation_id), notify user to arrive at merchant at agreed time to receive service",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "User id"},
				{Name: "shop_id", Description: "Merchant id"},
				{Name: "time", Description: "Service reservation time format: %Y-%m-%d %H:%M:%S"},
				{Name: "customer_count", Description: "Service reservation customer count, default is 1 person"},
			},
			Returns: "Service reservation information",
		},
		"instore_modify_reservation": {
			Description:    "Modify instore reservation consumption information",
			Preconditions:  "In instore scenario, query user's pending modification reservation consumption orders, determine unique reservation_id, user modifies reservation consumption time and customer count",
			Postconditions: "Output modified reservation consumption information, notify user to arrive at merchant at agreed time for consumption",
			Args: []environment.ArgDescription{
				{Name: "reservation_id", Description: "Reservation id"},
				{Name: "time", Description: "New reservation consumption time format: %Y-%m-%d %H:%M:%S"},
				{Name: "customer_count", Description: "New reservation consumption customer count"},
			},
			Returns: "Modified reservation consumption information",
		},
		"instore_cancel_reservation": {
			Description:    "Cancel instore reservation consumption",
			Preconditions:  "In instore scenario, determine unique reservation consumption id",
			Postconditions: "Return reservation consumption cancellation result information",
			Args: []environment.ArgDescription{
				{Name: "reservation_id", Description: "Reservation consumption id"},
			},
			Returns: "Reservation consumption cancellation result information",
		},
		"get_instore_orders": {
			Description:    "Get all instore orders for specified user",
			Preconditions:  "In instore scenario, need to view all instore orders",
			Postconditions: "Return detailed information of all instore orders",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "User id"},
			},
			Returns: "Detailed information of all instore orders for current user",
		},
		"get_instore_reservations": {
			Description:    "Get all instore reservation consumption for specified user",
			Preconditions:  "In instore scenario, need to view all instore reservation consumption",
			Postconditions: "Return detailed information of all instore reservation consumption",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "User id"},
			},
			Returns: "Detailed information of all instore reservation consumption for current user",
		},
		"get_instore_books": {
			Description:    "Get all instore seat reservations for specified user",
			Preconditions:  "In instore scenario, need to view all instore seat reservations",
			Postconditions: "Return detailed information of all instore seat reservations",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "User id"},
			},
			Returns: "Detailed information of all instore seat reservations for current user",
		},
		"search_instore_book": {
			Description:    "Query user's seat reservation information, when book_id is None, return all user seat reservations, when book_id is not None, return specified seat reservation",
			Preconditions:  "In instore scenario, when book_id is None, return all user seat reservations, when book_id is not None, return specified seat reservation",
			Postconditions: "Return seat reservation information, convenient for later modification/cancellation",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "User id"},
				{Name: "book_id", Description: "Seat reservation id, optional parameter, default is None"},
			},
			Returns: "Seat reservation information, multiple seat reservations separated by newlines",
		},
		"search_instore_reservation": {
			Description:    "Query user's reservation consumption information",
			Preconditions:  "In instore scenario, when reservation_id is None, return all user reservation consumption, when reservation_id is not None, return specified reservation consumption",
			Postconditions: "Return reservation consumption information, convenient for later modification/cancellation",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "User id"},
				{Name: "reservation_id", Description: "Reservation consumption id, optional parameter, default is None"},
			},
			Returns: "Reservation consumption information, multiple reservations separated by newlines",
		},
	},
	Chinese: map[string]environment.ToolDescription{
		"instore_shop_search_recommend": {
			Description:    "在到店场景下，用户（需求模糊，没明确表达具体套餐｜没有明确表达具体商家），需要结合用户个人喜好和商家标签等信息，推荐多个商家",
			Preconditions:  "处于到店场景，获取商家相关的关键词",
			Postconditions: "返回商家列表，引导用户选择确定商家，商家确定后需要用户选择并确定套餐",
			Args: []environment.ArgDescription{
				{Name: "keywords", Description: "描述商家的关键词"},
			},
			Returns: "结构化输出的商家信息",
		},
		"instore_product_search_recommend": {
			Description:    "在到店场景下，可以根据用户表达抽取出描述套餐的关键词，搜索或推荐多个套餐",
			Preconditions:  "处于到店场景，套餐相关的关键词",
			Postconditions: "返回套餐列表，引导用户选择套餐并创建订单",
			Args: []environment.ArgDescription{
				{Name: "keywords", Description: "描述套餐的关键词"},
			},
			Returns: "结构化输出的套餐信息",
		},
		"create_instore_product_order": {
			Description:    "到店订单提交",
			Preconditions:  "处于到店场景，确定唯一一个店家id和一个或多个商品id",
			Postconditions: "返回订单信息（包含order_id），询问用户是否支付订单",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "用户id"},
				{Name: "shop_id", Description: "商家id"},
				{Name: "product_id", Description: "套餐id"},
				{Name: "quantity", Description: "数量"},
			},
			Returns: "订单信息",
		},
		"pay_instore_order": {
			Description:    "在到店场景下，上文有订单信息，用户表达支付完成，或者重新支付完成",
			Preconditions:  "处于到店场景，用户表达完成支付操作，订单创建完成并进入支付环节｜用户表示重新支付",
			Postconditions: "返回支付结果信息",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单id"},
			},
			Returns: "输出支付结果信息",
		},
		"instore_cancel_order": {
			Description:    "用户取消订单，或者用户取消支付。禁止对处于已取消状态的订单再次取消。",
			Preconditions:  "处于到店场景，查询订单状态，确保订单状态为非cancelled",
			Postconditions: "返回取消订单结果信息",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单id"},
			},
			Returns: "输出取消订单结果信息",
		},
		"instore_book": {
			Description:    "座位预定 - 在选定商家后预定物理座位/桌位",
			Preconditions:  "处于到店场景，确定唯一一个商家id，商家支持座位预定服务",
			Postconditions: "返回座位预定信息（包含book_id），如需要支付订座费，询问用户是否支付",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "用户id"},
				{Name: "shop_id", Description: "商家id"},
				{Name: "time", Description: "座位预定时间 格式: %Y-%m-%d %H:%M:%S"},
				{Name: "customer_count", Description: "座位预定人数，默认为1人"},
			},
			Returns: "座位预定信息",
		},
		"pay_instore_book": {
			Description:    "到店座位预定支付",
			Preconditions:  "处于到店场景，确定唯一一个订座id",
			Postconditions: "返回支付结果信息",
			Args: []environment.ArgDescription{
				{Name: "book_id", Description: "订座id"},
			},
			Returns: "支付结果信息",
		},
		"instore_cancel_book": {
			Description:    "到店取消订座",
			Preconditions:  "处于到店场景，确定唯一一个订座id",
			Postconditions: "返回取消订座结果信息",
			Args: []environment.ArgDescription{
				{Name: "book_id", Description: "订座id"},
			},
			Returns: "取消订座结果信息",
		},
		"instore_reservation": {
			Description:    "服务预约 - 在选定商家后预约服务时间点",
			Preconditions:  "处于到店场景，确定唯一一个商家id，商家支持服务预约",
			Postconditions: "返回服务预约信息（包含reservation_id），通知用户按照约定时间到商家接受服务",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "用户id"},
				{Name: "shop_id", Description: "商家id"},
				{Name: "time", Description: "服务预约时间 格式: %Y-%m-%d %H:%M:%S"},
				{Name: "customer_count", Description: "服务预约人数，默认为1人"},
			},
			Returns: "服务预约信息",
		},
		"instore_modify_reservation": {
			Description:    "到店场景对查询到的预约消费信息进行修改",
			Preconditions:  "处于到店场景，查询用户待修改预约消费订单，确定唯一一个reservation_id，用户修改预约消费的时间、人数",
			Postconditions: "输出修改后预约消费信息，通知用户按照约定时间到商家消费",
			Args: []environment.ArgDescription{
				{Name: "reservation_id", Description: "预约消费id"},
				{Name: "time", Description: "修改后的预约消费时间 正确格式为 %Y-%m-%d %H:%M:%S"},
				{Name: "customer_count", Description: "修改后的预约消费人数"},
			},
			Returns: "修改后的预约信息",
		},
		"instore_cancel_reservation": {
			Description:    "到店预约消费取消",
			Preconditions:  "处于到店场景，确定唯一一个预约消费id",
			Postconditions: "返回取消预约消费结果信息",
			Args: []environment.ArgDescription{
				{Name: "reservation_id", Description: "预约消费id"},
			},
			Returns: "取消预约消费结果信息",
		},
		"get_instore_orders": {
			Description:    "获取指定用户所有到店订单",
			Preconditions:  "处于到店场景，需要查看所有到店订单",
			Postconditions: "返回所有到店订单的详细信息",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "用户id"},
			},
			Returns: "当前用户所有到店订单的详细信息",
		},
		"get_instore_reservations": {
			Description:    "获取指定用户所有到店预约消费",
			Preconditions:  "处于到店场景，需要查看所有到店预约消费",
			Postconditions: "返回所有到店预约消费的详细信息",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "用户id"},
			},
			Returns: "当前用户所有到店预约消费的详细信息",
		},
		"get_instore_books": {
			Description:    "获取指定用户所有到店座位预定",
			Preconditions:  "处于到店场景，需要查看所有到店座位预定",
			Postconditions: "返回所有到店座位预定的详细信息",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "用户id"},
			},
			Returns: "当前用户所有到店座位预定的详细信息",
		},
		"search_instore_book": {
			Description:    "查询用户的座位预定信息，当book_id为None时，返回用户所有座位预定，当book_id不为None时，返回指定座位预定",
			Preconditions:  "处于到店场景，当book_id为None时，返回用户所有座位预定，当book_id不为None时，返回指定座位预定",
			Postconditions: "返回座位预定信息，方便之后进行修改/取消",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "用户id"},
				{Name: "book_id", Description: "座位预定id，可选参数，默认为None"},
			},
			Returns: "座位预定信息，多个座位预定用换行符分隔",
		},
		"search_instore_reservation": {
			Description:    "查询用户的预约消费信息",
			Preconditions:  "处于到店场景，当reservation_id为None时，返回用户所有预约消费，当reservation_id不为None时，返回指定预约消费",
			Postconditions: "返回预约消费信息，方便之后进行修改/取消",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "用户id"},
				{Name: "reservation_id", Description: "预约消费id，可选参数，默认为None"},
			},
			Returns: "预约消费信息，多个预约用换行符分隔",
		},
	},
}
