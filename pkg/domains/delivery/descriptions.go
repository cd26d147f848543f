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

import "github.com/vitabench/vita/pkg/environment"

// Descriptions documents the delivery tools per locale.
var Descriptions = environment.DescriptionTable{
	English: map[string]environment.ToolDescription{
		"delivery_distance_to_time": {
			Description:    "Calculate delivery time (minutes) based on distance (meters)",
			Preconditions:  "Calculate delivery time based on distance from store to user address",
			Postconditions: "Return delivery time (minutes)",
			Args: []environment.ArgDescription{
				{Name: "distance", Description: "Distance (in meters)"},
			},
			Returns: "Time (in minutes)",
		},
		"get_delivery_store_info": {
			Description:    "Get store information including store id, rating, address, longitude, latitude, tags, and product list",
			Preconditions:  "In delivery scenario, need to get detailed store information",
			Postconditions: "Return detailed store information",
			Args: []environment.ArgDescription{
				{Name: "store_id", Description: "Store id"},
			},
			Returns: "Detailed store information",
		},
		"get_delivery_product_info": {
			Description:    "Get food information including food name, food id, store name, store id, food rating, food price, and food tags",
			Preconditions:  "In delivery scenario, need to get detailed food information",
			Postconditions: "Return detailed food information",
			Args: []environment.ArgDescription{
				{Name: "product_id", Description: "Food id"},
			},
			Returns: "Detailed food information",
		},
		"delivery_store_search_recommend": {
			Description:    "In delivery scenario, can extract keywords describing stores from user expressions, search or recommend multiple stores",
			Preconditions:  "In delivery scenario, get keywords describing stores",
			Postconditions: "Return store list, guide user to select and confirm store",
			Args: []environment.ArgDescription{
				{Name: "keywords", Description: "Keywords describing stores"},
			},
			Returns: "Structured store information output",
		},
		"delivery_product_search_recommend": {
			Description:    "In delivery scenario, can extract keywords describing food from user expressions, search or recommend multiple food items",
			Preconditions:  "In delivery scenario, get keywords describing food",
			Postconditions: "Return food list, guide user to select food and create order",
			Args: []environment.ArgDescription{
				{Name: "keywords", Description: "Keywords describing food"},
			},
			Returns: "Structured food information output",
		},
		"create_delivery_order": {
			Description:    "Create delivery order, only supports single store orders, single store can order multiple food items",
			Preconditions:  "In delivery scenario, determine unique store id and one or more food ids, determine user dietary restrictions and reflect in order",
			Postconditions: "Return order information, ask user to confirm payment",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "User id"},
				{Name: "store_id", Description: "Store id"},
				{Name: "product_ids", Description: "Food id list"},
				{Name: "product_cnts", Description: "Food id corresponding quantity list"},
				{Name: "address", Description: "delivery target address"},
				{Name: "dispatch_time", Description: "delivery order dispatch start time (when rider picks up food from store), format: yyyy-mm-dd HH:MM:SS"},
				{Name: "attributes", Description: "Food id corresponding food specification attributes"},
				{Name: "note", Description: "Order notes (prohibited from putting user time requirements directly in notes), such as dietary restriction information"},
			},
			Returns: "If creation successful, return order information (including order id, user id, store id, food id list, food quantity list, address, order time, update time, order status, food list, notes), otherwise return related prompt information",
		},
		"pay_delivery_order": {
			Description:    "In delivery scenario, with order information above, user expresses confirmation of payment or re-payment",
			Preconditions:  "In delivery scenario, user expresses confirmation of payment, order creation completed and enters payment phase | user indicates re-payment",
			Postconditions: "Return payment result information",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order id"},
			},
			Returns: "Payment result information",
		},
		"get_delivery_order_status": {
			Description:    "Get order status",
			Preconditions:  "Query delivery order status",
			Postconditions: "Return order status information",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order id"},
			},
			Returns: "Order status information",
		},
		"cancel_delivery_order": {
			Description:    "User cancels order or user cancels payment. Prohibited from canceling orders that are already in cancelled status.",
			Preconditions:  "Query delivery order status, ensure order status is not cancelled",
			Postconditions: "Return order cancellation result information",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order id"},
			},
			Returns: "Order cancellation result information",
		},
		"modify_delivery_order": {
			Description:    "Modify order note information",
			Preconditions:  "Above text determines unique delivery order_id, user needs to modify delivery order notes",
			Postconditions: "Output modified order information, if order not yet paid user needs to confirm payment",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order id"},
				{Name: "note", Description: "New order note information"},
			},
			Returns: "Result of modifying order note operation",
		},
		"search_delivery_orders": {
			Description:    "Query all delivery orders, return information including order ID, order type, user ID, store ID, total price, order time, update time, order status, etc.",
			Preconditions:  "View all delivery orders according to query conditions",
			Postconditions: "Return detailed information of all delivery orders meeting conditions",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "User ID"},
				{Name: "status", Description: "Order status, default is unpaid"},
			},
			Returns: "Return detailed information of all delivery orders meeting conditions, including order ID, order type, user ID, store ID, total price, order time, update time, order status, etc.",
		},
		"get_delivery_order_detail": {
			Description:    "Query delivery order by order ID, return detailed information including order ID, order type, store ID, dispatch time, dispatch duration, delivery time, total price, order time, update time, order status and food list",
			Preconditions:  "Above text determines unique delivery order_id",
			Postconditions: "Return specified order detailed information",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order id"},
			},
			Returns: "Specified order detailed information, including order ID, order type, store ID, dispatch time, dispatch duration, delivery time, total price, order time, update time, order status and food list",
		},
	},
	Chinese: map[string]environment.ToolDescription{
		"delivery_distance_to_time": {
			Description:    "根据距离（米）计算外卖配送时间（分钟）",
			Preconditions:  "根据从商家到用户地址的距离计算外卖配送时间",
			Postconditions: "返回配送时间（分钟）",
			Args: []environment.ArgDescription{
				{Name: "distance", Description: "距离（以米为单位）"},
			},
			Returns: "时间（以分钟为单位）",
		},
		"get_delivery_store_info": {
			Description:    "获取商家信息，包括商家id、评分、地址、经度、纬度、标签、商品列表",
			Preconditions:  "处于外卖场景，需要获取商家的详细信息",
			Postconditions: "返回商家的详细信息",
			Args: []environment.ArgDescription{
				{Name: "store_id", Description: "商家id"},
			},
			Returns: "商家的详细信息",
		},
		"get_delivery_product_info": {
			Description:    "获取商品信息，包括商品名称、商品id、商店名称、商店id、商品评分、商品价格、商品标签",
			Preconditions:  "处于外卖场景，需要获取商品的详细信息",
			Postconditions: "返回商品的详细信息",
			Args: []environment.ArgDescription{
				{Name: "product_id", Description: "商品id"},
			},
			Returns: "商品的详细信息",
		},
		"delivery_store_search_recommend": {
			Description:    "在外卖场景下，可以根据用户表达抽取出描述商家的关键词，搜索或推荐多个商家",
			Preconditions:  "处于外卖场景，获取描述商家的关键词",
			Postconditions: "返回商家列表，引导用户选择确定商家",
			Args: []environment.ArgDescription{
				{Name: "keywords", Description: "描述商家的关键词"},
			},
			Returns: "结构化输出的商家信息",
		},
		"delivery_product_search_recommend": {
			Description:    "在外卖场景下，可以根据用户表达抽取出描述商品的关键词，搜索或推荐多个商品",
			Preconditions:  "处于外卖场景，获取描述商品的关键词",
			Postconditions: "返回商品列表，引导用户选择商品并创建订单",
			Args: []environment.ArgDescription{
				{Name: "keywords", Description: "描述商品的关键词"},
			},
			Returns: "结构化输出的商品信息",
		},
		"create_delivery_order": {
			Description:    "外卖订单创建，仅支持单个商家下单，单个商家可以下单多个商品",
			Preconditions:  "处于外卖场景，确定唯一一个店家id和一个或多个商品id，确定用户的饮食禁忌，并在订单中体现",
			Postconditions: "返回订单信息，询问用户是否支付订单",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "用户id"},
				{Name: "store_id", Description: "商店id"},
				{Name: "product_ids", Description: "商品id列表"},
				{Name: "product_cnts", Description: "商品id对应数量列表"},
				{Name: "address", Description: "外卖配送目标地址"},
				{Name: "dispatch_time", Description: "外卖订单开始配送的时间（即骑手从商家取餐出发的时间），格式为yyyy-mm-dd HH:MM:SS"},
				{Name: "attributes", Description: "商品id对应商品规格属性"},
				{Name: "note", Description: "订单备注（禁止将用户关于时间等需求直接放在备注中），如饮食禁忌信息说明"},
			},
			Returns: "如果创建成功，返回订单信息（包含订单id、用户id、商店id、商品id列表、商品数量列表、地址、下单时间、更新时间、订单状态、商品列表、备注），否则返回相关提示信息",
		},
		"pay_delivery_order": {
			Description:    "在外卖场景下，上文有订单信息，用户表达确认支付，或者重新支付",
			Preconditions:  "处于外卖场景，用户表达确认支付，订单创建完成并进入支付环节｜用户表示重新支付",
			Postconditions: "返回支付结果信息",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单id"},
			},
			Returns: "支付结果信息",
		},
		"get_delivery_order_status": {
			Description:    "获取订单状态",
			Preconditions:  "查询外卖订单状态",
			Postconditions: "返回订单状态信息",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单id"},
			},
			Returns: "订单状态信息",
		},
		"cancel_delivery_order": {
			Description:    "用户取消订单，或者用户取消支付。禁止对处于已取消状态的订单再次取消。",
			Preconditions:  "查询外卖订单状态，确保订单状态为非cancelled",
			Postconditions: "返回取消订单结果信息",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单id"},
			},
			Returns: "取消订单结果信息",
		},
		"modify_delivery_order": {
			Description:    "修改订单备注信息",
			Preconditions:  "上文确定唯一一个外卖order_id，用户需要修改外卖订单备注",
			Postconditions: "输出修改后订单信息，如果订单还未支付则需要用户确认支付",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单id"},
				{Name: "note", Description: "新的订单备注信息"},
			},
			Returns: "修改订单备注操作的结果",
		},
		"search_delivery_orders": {
			Description:    "查询所有外卖订单，返回包含订单ID、订单类型、用户ID、商家ID、总价、下单时间、更新时间、订单状态等信息",
			Preconditions:  "按照查询条件查看所有外卖订单",
			Postconditions: "返回所有符合条件外卖订单的详细信息",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "用户ID"},
				{Name: "status", Description: "订单状态，默认为未支付"},
			},
			Returns: "返回所有符合条件的外卖订单详细信息，包括订单ID、订单类型、用户ID、商家ID、总价、下单时间、更新时间、订单状态等信息",
		},
		"get_delivery_order_detail": {
			Description:    "根据订单ID查询外卖订单，返回包含订单ID、订单类型、商家ID、配送时间、配送耗时、送达时间、总价、下单时间、更新时间、订单状态和商品列表等详细信息",
			Preconditions:  "上文确定唯一一个外卖order_id",
			Postconditions: "返回指定订单详细信息",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单id"},
			},
			Returns: "指定订单的详细信息，包括订单ID、订单类型、商家ID、配送时间、配送耗时、送达时间、总价、下单时间、更新时间、订单状态和商品列表",
		},
	},
}
