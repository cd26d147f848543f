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

import "github.com/vitabench/vita/pkg/environment"

// Descriptions documents the OTA tools in both languages. The table keys
// hotel search under hotel_search_recommend while the registered tool is
// hotel_search_recommand, so that tool renders without a docstring.
var Descriptions = environment.DescriptionTable{
	English: map[string]environment.ToolDescription{
		"get_ota_hotel_info": {
			Description:    "Get hotel information including hotel id, name, rating, star level, address, tags, and room list",
			Preconditions:  "In hotel query and booking scenario, need to get detailed hotel information",
			Postconditions: "Return detailed hotel information, guide user to select room and place order",
			Args: []environment.ArgDescription{
				{Name: "hotel_id", Description: "Hotel id"},
			},
			Returns: "Hotel information",
		},
		"get_ota_attraction_info": {
			Description:    "Get attraction information including attraction id, name, address, description, rating, opening hours, ticket prices, and ticket type list",
			Preconditions:  "In attraction travel scenario, need to get detailed attraction information",
			Postconditions: "Return detailed attraction information, guide user to select tickets and place order",
			Args: []environment.ArgDescription{
				{Name: "attraction_id", Description: "Attraction id"},
			},
			Returns: "Attraction information",
		},
		"get_ota_flight_info": {
			Description:    "Get flight information including flight id, flight number, departure city, arrival city, departure airport location, arrival airport location, departure time, arrival time, flight tags, and seat type list",
			Preconditions:  "In flight ticket query and purchase scenario, need to get detailed flight information",
			Postconditions: "Return detailed flight information, guide user to select seats and place order",
			Args: []environment.ArgDescription{
				{Name: "flight_id", Description: "Flight id"},
			},
			Returns: "Flight information",
		},
		"get_ota_train_info": {
			Description:    "Get train information including train id, train number, departure city, arrival city, departure station location, arrival station location, departure time, arrival time, train tags, and seat type list",
			Preconditions:  "In train ticket query and purchase scenario, need to get detailed train information",
			Postconditions: "Return detailed train information, guide user to select seats and place order",
			Args: []environment.ArgDescription{
				{Name: "train_id", Description: "Train id"},
			},
			Returns: "Train information",
		},
		"hotel_search_recommend": {
			Description:    "In hotel query and booking scenario, recommend suitable hotel options based on user location needs and preferences, provide basic hotel information including hotel id, name, rating, star level, address, and tags",
			Preconditions:  "User requests hotel booking, provides hotel-related keywords or location",
			Postconditions: "Return list of hotels meeting criteria, if hotel details (room list, prices, etc.) are needed, use hotel detail query tool, guide user to select hotel",
			Args: []environment.ArgDescription{
				{Name: "city_name", Description: "City name"},
				{Name: "key_words", Description: "Search keywords (matching hotel name, hotel introduction, etc.)"},
			},
			Returns: "Structured output of basic hotel information",
		},
		"attractions_search_recommend": {
			Description:    "Recommend suitable attraction options based on user location needs and preferences, provide basic attraction information including attraction id, name, address, description, rating, and opening hours",
			Preconditions:  "User requests attraction booking, provides attraction-related keywords or location",
			Postconditions: "Return list of attractions meeting criteria, if attraction details (ticket list, prices, etc.) are needed, use attraction detail query tool, guide user to select attraction",
			Args: []environment.ArgDescription{
				{Name: "city_name", Description: "City name"},
				{Name: "key_words", Description: "Search keywords (matching attraction name, location, address, features, etc.)"},
			},
			Returns: "Structured output of basic attraction information",
		},
		"flight_search_recommend": {
			Description:    "Recommend suitable flight options based on user location needs and preferences, provide basic flight information including flight id, flight number, departure city, arrival city, departure airport location, arrival airport location, departure time, arrival time, and flight tags",
			Preconditions:  "User requests flight booking, provides flight-related keywords or location",
			Postconditions: "Return list of flights meeting criteria, if flight details (seat type list, prices, dates, etc.) are needed, use flight detail query tool, guide user to select flight",
			Args: []environment.ArgDescription{
				{Name: "departure", Description: "Departure city"},
				{Name: "destination", Description: "Destination city"},
			},
			Returns: "Structured output of basic flight information",
		},
		"train_ticket_search": {
			Description:    "Recommend suitable train options based on user location needs and preferences, provide basic train ticket information including train id, train number, departure city, arrival city, departure station location, arrival station location, departure time, arrival time, and train tags",
			Preconditions:  "User requests train booking, provides train-related keywords or location",
			Postconditions: "Return list of train tickets meeting criteria, if train ticket details (seat type list, prices, dates, etc.) are needed, use train ticket detail query tool, guide user to select train ticket",
			Args: []environment.ArgDescription{
				{Name: "departure", Description: "Departure city"},
				{Name: "destination", Description: "Destination city"},
				{Name: "date", Description: "Departure date"},
			},
			Returns: "Structured output of basic train information",
		},
		"create_hotel_order": {
			Description:    "When user books hotel, system generates order based on user requirements (such as hotel name, check-in date, number of people, etc.)",
			Preconditions:  "User is logged in and provides valid identity (user_id), user provides valid hotel name (hotel_name) and room type (room_type), system has information about target hotel, and hotel has rooms available on requested dates",
			Postconditions: "Generate order, ask user to confirm payment",
			Args: []environment.ArgDescription{
				{Name: "hotel_id", Description: "Hotel ID"},
				{Name: "product_id", Description: "Room ID"},
				{Name: "user_id", Description: "User ID"},
			},
			Returns: "Feedback output of creating order operation",
		},
		"create_attraction_order": {
			Description:    "User purchases tickets based on attraction and date, system returns ticket-related information and places order",
			Preconditions:  "In attraction travel scenario, user requests to book attraction, provides necessary booking information",
			Postconditions: "Generate order, ask user to confirm payment",
			Args: []environment.ArgDescription{
				{Name: "attraction_id", Description: "Attraction ID"},
				{Name: "ticket_id", Description: "Ticket ID"},
				{Name: "user_id", Description: "User ID"},
				{Name: "date", Description: "Visit date, format: %Y-%m-%d"},
				{Name: "quantity", Description: "Quantity"},
			},
			Returns: "Feedback output of creating order operation",
		},
		"create_flight_order": {
			Description:    "User purchases flight tickets based on flight and seat type, system returns flight ticket-related information and places order",
			Preconditions:  "In flight ticket query and purchase scenario, user requests to book flight, provides necessary booking information",
			Postconditions: "Generate order, ask user to confirm payment",
			Args: []environment.ArgDescription{
				{Name: "flight_id", Description: "Flight ID"},
				{Name: "seat_id", Description: "Seat ID"},
				{Name: "user_id", Description: "User ID"},
				{Name: "date", Description: "Departure date, format: %Y-%m-%d"},
				{Name: "quantity", Description: "Quantity"},
			},
			Returns: "Feedback output of creating order operation",
		},
		"create_train_order": {
			Description:    "User purchases train tickets based on train and seat type, system returns train ticket-related information and places order",
			Preconditions:  "In train ticket query and purchase scenario, user requests to book train, provides necessary booking information",
			Postconditions: "Generate order, ask user to confirm payment",
			Args: []environment.ArgDescription{
				{Name: "train_id", Description: "Train ID"},
				{Name: "seat_id", Description: "Seat ID"},
				{Name: "user_id", Description: "User ID"},
				{Name: "date", Description: "Departure date, format: %Y-%m-%d"},
				{Name: "quantity", Description: "Quantity"},
			},
			Returns: "Feedback output of creating order operation",
		},
		"pay_hotel_order": {
			Description:    "User pays for hotel order",
			Preconditions:  "In hotel query and booking scenario, user requests payment for hotel order, order ID is determined above",
			Postconditions: "Confirm payment and update order status to paid",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order ID"},
			},
			Returns: "Payment result information",
		},
		"pay_attraction_order": {
			Description:    "User pays for attraction ticket order",
			Preconditions:  "In attraction travel scenario, user requests payment for attraction ticket order, order ID is determined above",
			Postconditions: "Confirm payment and update order status to paid",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order ID"},
			},
			Returns: "Payment result information",
		},
		"pay_flight_order": {
			Description:    "User pays for flight order",
			Preconditions:  "In flight ticket query and purchase scenario, user requests payment for flight order, order ID is determined above",
			Postconditions: "Confirm payment and update order status to paid",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order ID"},
			},
			Returns: "Payment result information",
		},
		"pay_train_order": {
			Description:    "User pays for train ticket order",
			Preconditions:  "In train ticket query and purchase scenario, user requests payment for train ticket order, order ID is determined above",
			Postconditions: "Confirm payment and update order status to paid",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order ID"},
			},
			Returns: "Payment result information",
		},
		"search_hotel_order": {
			Description:    "Query user's hotel orders based on user ID, return order ID, order type, user ID, hotel ID, order total price, order time, update time and order status",
			Preconditions:  "User needs to query hotel orders",
			Postconditions: "Return order information, convenient for later modification/cancellation",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "User ID"},
				{Name: "date", Description: "Date"},
				{Name: "status", Description: "Order status"},
			},
			Returns: "Specified user's hotel order information",
		},
		"search_attraction_order": {
			Description:    "Query user's attraction ticket orders based on user ID, return order ID, order type, user ID, attraction ID, order total price, order time, update time and order status",
			Preconditions:  "User needs to query attraction ticket orders",
			Postconditions: "Return order information, convenient for later modification/cancellation",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "User ID"},
				{Name: "date", Description: "Date"},
				{Name: "status", Description: "Order status"},
			},
			Returns: "Specified user's attraction ticket order information",
		},
		"search_flight_order": {
			Description:    "Query user's flight orders based on user ID, return order ID, order type, user ID, flight ID, order total price, order time, update time and order status",
			Preconditions:  "User needs to query flight orders",
			Postconditions: "Return order information, convenient for later modification/cancellation",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "User ID"},
				{Name: "date", Description: "Date"},
				{Name: "status", Description: "Order status"},
			},
			Returns: "Specified user's flight order information",
		},
		"search_train_order": {
			Description:    "Query user's train ticket orders based on user ID, return order ID, order type, user ID, train ID, order total price, order time, update time and order status",
			Preconditions:  "User needs to query train ticket orders",
			Postconditions: "Return order information, convenient for later modification/cancellation",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "User ID"},
				{Name: "date", Description: "Date"},
				{Name: "status", Description: "Order status"},
			},
			Returns: "Specified user's train ticket order information",
		},
		"get_hotel_order_detail": {
			Description:    "Get hotel order details, including order ID, order type, user ID, hotel ID, order total price, order time, update time, order status and order room detailed information (room type, check-in date, price, room ID)",
			Preconditions:  "User requests hotel order details, order ID is determined above",
			Postconditions: "Return order details",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order ID"},
			},
			Returns: "Order details",
		},
		"get_attraction_order_detail": {
			Description:    "Get attraction ticket order details, including order ID, order type, user ID, attraction ID, order total price, order time, update time, order status and order attraction detailed information (ticket type, date, price, ticket ID)",
			Preconditions:  "User requests attraction ticket order details, order ID is determined above",
			Postconditions: "Return order details",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order ID"},
			},
			Returns: "Order details",
		},
		"get_flight_order_detail": {
			Description:    "Get flight order details, including order ID, order type, user ID, flight ID, order total price, order time, update time, order status and order flight ticket detailed information (seat type, date, price, seat ID)",
			Preconditions:  "User requests flight order details, order ID is determined above",
			Postconditions: "Return order details",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order ID"},
			},
			Returns: "Order details",
		},
		"get_train_order_detail": {
			Description:    "Get train ticket order details, including order ID, order type, user ID, train ID, order total price, order time, update time, order status and order train ticket detailed information (seat type, date, price, seat ID)",
			Preconditions:  "User requests train ticket order details, order ID is determined above",
			Postconditions: "Return order details",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order ID"},
			},
			Returns: "Order details",
		},
		"modify_train_order": {
			Description:    "Modify train ticket order, support changing departure date, automatically handle price difference compensation or refund",
			Preconditions:  "In train ticket query and purchase scenario, user requests to modify train ticket order, order ID is determined above",
			Postconditions: "Modify order and update order status, if price difference compensation is needed, order status changes to unpaid, otherwise maintains original status, if price difference compensation is needed, guide user to pay for current order",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order ID"},
				{Name: "user_id", Description: "User ID"},
				{Name: "new_date", Description: "New departure date, format: %Y-%m-%d"},
			},
			Returns: "(Modified order content, price difference, positive means need to compensate, negative means refund)",
		},
		"modify_flight_order": {
			Description:    "Modify flight order, support changing departure date, automatically handle price difference compensation or refund",
			Preconditions:  "In flight ticket query and purchase scenario, user requests to modify flight order, order ID is determined above",
			Postconditions: "Modify order and update order status, if price difference compensation is needed, order status changes to unpaid, otherwise maintains original status, if price difference compensation is needed, guide user to pay for current order",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order ID"},
				{Name: "user_id", Description: "User ID"},
				{Name: "new_date", Description: "New departure date, format: %Y-%m-%d"},
			},
			Returns: "(Modified order content, price difference, positive means need to compensate, negative means refund)",
		},
		"cancel_hotel_order": {
			Description:    "User cancels booked hotel order",
			Preconditions:  "In hotel query and booking scenario, user requests to cancel hotel order, order ID is determined above",
			Postconditions: "Cancel order and update order status, if refund is needed, inform user",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order ID"},
				{Name: "user_id", Description: "User ID"},
			},
			Returns: "Order cancellation refund amount",
		},
		"cancel_attraction_order": {
			Description:    "User cancels booked attraction ticket order",
			Preconditions:  "Order ID exists in conversation history or order query has been performed, user has permission to cancel this order",
			Postconditions: "If refund is needed, inform user",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order ID"},
				{Name: "user_id", Description: "User ID"},
			},
			Returns: "Order cancellation refund amount",
		},
		"cancel_flight_order": {
			Description:    "User cancels booked flight order",
			Preconditions:  "Order ID exists in conversation history or order query has been performed, user has permission to cancel this order",
			Postconditions: "If refund is needed, inform user",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order ID"},
				{Name: "user_id", Description: "User ID"},
			},
			Returns: "Order cancellation refund amount",
		},
		"cancel_train_order": {
			Description:    "User cancels booked train ticket order",
			Preconditions:  "Order ID exists in conversation history or order query has been performed, user has permission to cancel this order",
			Postconditions: "If refund is needed, inform user",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "Order ID"},
				{Name: "user_id", Description: "User ID"},
			},
			Returns: "Order cancellation refund amount",
		},
	},
	Chinese: map[string]environment.ToolDescription{
		"get_ota_hotel_info": {
			Description:    "获取酒店信息，包含酒店id、名称、评分、星级、地址、标签、房间列表",
			Preconditions:  "在酒店查询预订场景，需要获取酒店的详细信息",
			Postconditions: "返回酒店的详细信息，引导用户选择房间并下单",
			Args: []environment.ArgDescription{
				{Name: "hotel_id", Description: "酒店id"},
			},
			Returns: "酒店信息",
		},
		"get_ota_attraction_info": {
			Description:    "获取景点信息，包含景点id、名称、地址、描述、评分、开放时间、门票价格、票种列表",
			Preconditions:  "在景点旅游场景，需要获取景点的详细信息",
			Postconditions: "返回景点的详细信息，引导用户选择门票并下单",
			Args: []environment.ArgDescription{
				{Name: "attraction_id", Description: "景点id"},
			},
			Returns: "景点信息",
		},
		"get_ota_flight_info": {
			Description:    "获取航班信息，包含航班id、航班号、出发城市、到达城市、出发机场位置、到达机场位置、出发时间、到达时间、航班标签、座位类型列表",
			Preconditions:  "在机票查询购买场景，需要获取航班的详细信息",
			Postconditions: "返回航班的详细信息，引导用户选择座位并下单",
			Args: []environment.ArgDescription{
				{Name: "flight_id", Description: "航班id"},
			},
			Returns: "航班信息",
		},
		"get_ota_train_info": {
			Description:    "获取火车信息，包含火车id、车次、出发城市、到达城市、出发车站位置、到达车站位置、出发时间、到达时间、火车标签、座位类型列表",
			Preconditions:  "在火车票查询购买场景，需要获取火车的详细信息",
			Postconditions: "返回火车的详细信息，引导用户选择座位并下单",
			Args: []environment.ArgDescription{
				{Name: "train_id", Description: "火车id"},
			},
			Returns: "火车信息",
		},
		"hotel_search_recommend": {
			Description:    "酒旅场景下，基于用户的地点需求和偏好，推荐合适的酒店选项，提供酒店的基础信息，包含酒店id、名称、评分、星级、地址、标签",
			Preconditions:  "用户请求预定酒店，给出了酒店相关的关键词或地点",
			Postconditions: "返回符合条件的酒店列表，如需查看酒店详情（房间列表、价格等）需要使用酒店详情查询工具，引导用户选择酒店",
			Args: []environment.ArgDescription{
				{Name: "city_name", Description: "城市名称"},
				{Name: "key_words", Description: "搜索关键词(匹配酒店名称、酒店介绍等)"},
			},
			Returns: "结构化输出酒店基础信息",
		},
		"attractions_search_recommend": {
			Description:    "基于用户的地点需求和偏好，推荐合适的景点选项，提供景点的基础信息，包含景点id、名称、地址、描述、评分、开放时间",
			Preconditions:  "用户请求预定景点，给出了景点相关的关键词或地点",
			Postconditions: "返回符合条件的景点列表，如需查看景点详情（门票列表、价格等）需要使用景点详情查询工具，引导用户选择景点",
			Args: []environment.ArgDescription{
				{Name: "city_name", Description: "城市名称"},
				{Name: "key_words", Description: "搜索关键词(匹配景点名称、位置、地址、特色等)"},
			},
			Returns: "结构化输出景点基础信息",
		},
		"flight_search_recommend": {
			Description:    "基于用户的地点需求和偏好，推荐合适的航班选项，提供航班的基础信息，包含航班id、航班号、出发城市、到达城市、出发机场位置、到达机场位置、出发时间、到达时间、航班标签",
			Preconditions:  "用户请求预定航班，给出了航班相关的关键词或地点",
			Postconditions: "返回符合条件的航班列表，如需查看航班详情（座位类型列表、价格、日期等）需要使用航班详情查询工具，引导用户选择航班",
			Args: []environment.ArgDescription{
				{Name: "departure", Description: "出发城市"},
				{Name: "destination", Description: "目的城市"},
			},
			Returns: "结构化输出航班基础信息",
		},
		"train_ticket_search": {
			Description:    "基于用户的地点需求和偏好，推荐合适的火车选项，提供火车票的基础信息，包含火车id、车次、出发城市、到达城市、出发车站位置、到达车站位置、出发时间、到达时间、火车标签",
			Preconditions:  "用户请求预定火车，给出了火车相关的关键词或地点",
			Postconditions: "返回符合条件的火车票列表，如需查看火车票详情（座位类型列表、价格、日期等）需要使用火车票详情查询工具，引导用户选择火车票",
			Args: []environment.ArgDescription{
				{Name: "departure", Description: "出发城市"},
				{Name: "destination", Description: "目的城市"},
				{Name: "date", Description: "出发日期"},
			},
			Returns: "结构化输出火车基础信息",
		},
		"create_hotel_order": {
			Description:    "用户预订酒店时，系统根据用户的需求（如酒店名称、入住日期、人数等）生成订单",
			Preconditions:  "用户已登录并提供有效的身份标识（user_id），用户提供了有效的酒店名称（hotel_name）和房间类型（room_type），系统有关于目标酒店的信息，并且该酒店在所请求的日期内有房间",
			Postconditions: "生成订单，请用户确认支付",
			Args: []environment.ArgDescription{
				{Name: "hotel_id", Description: "酒店ID"},
				{Name: "room_id", Description: "房间ID"},
				{Name: "user_id", Description: "用户ID"},
			},
			Returns: "创建订单操作的反馈输出",
		},
		"create_attraction_order": {
			Description:    "用户根据景点和日期购买门票，系统返回门票的相关信息并进行下单",
			Preconditions:  "在景点旅游场景，用户请求预定景点，给出了预定相关必要信息",
			Postconditions: "生成订单，请用户确认支付",
			Args: []environment.ArgDescription{
				{Name: "attraction_id", Description: "景点ID"},
				{Name: "ticket_id", Description: "门票ID"},
				{Name: "user_id", Description: "用户ID"},
				{Name: "date", Description: "参观日期，格式为 %Y-%m-%d"},
				{Name: "quantity", Description: "数量"},
			},
			Returns: "创建订单操作的反馈输出",
		},
		"create_flight_order": {
			Description:    "用户根据航班号、日期、座位类型、数量购买机票，系统返回机票的相关信息并进行下单",
			Preconditions:  "在机票查询购买场景，用户请求预定航班，给出了预定相关必要信息",
			Postconditions: "生成订单，请用户确认支付",
			Args: []environment.ArgDescription{
				{Name: "flight_id", Description: "航班ID"},
				{Name: "seat_id", Description: "座位ID"},
				{Name: "user_id", Description: "用户ID"},
				{Name: "date", Description: "出发日期"},
				{Name: "quantity", Description: "数量"},
			},
			Returns: "创建订单操作的反馈输出",
		},
		"create_train_order": {
			Description:    "用户根据车次、日期、座位类型、数量购买火车票，系统返回火车票的相关信息并进行下单",
			Preconditions:  "在火车票查询购买场景，用户请求预定火车，给出了预定相关必要信息",
			Postconditions: "生成订单，请用户确认支付",
			Args: []environment.ArgDescription{
				{Name: "train_id", Description: "火车ID"},
				{Name: "seat_id", Description: "座位ID"},
				{Name: "user_id", Description: "用户ID"},
				{Name: "date", Description: "出发日期"},
				{Name: "quantity", Description: "数量"},
			},
			Returns: "创建订单操作的反馈输出",
		},
		"pay_hotel_order": {
			Description:    "用户进行酒店订单支付",
			Preconditions:  "在酒店查询预订场景，用户请求支付酒店订单，上文确定了订单ID",
			Postconditions: "确认支付并更新订单状态为已支付",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单ID"},
			},
			Returns: "支付结果信息",
		},
		"pay_attraction_order": {
			Description:    "用户进行门票订单支付",
			Preconditions:  "在景点旅游场景，用户请求支付景点门票订单，上文确定了订单ID",
			Postconditions: "确认支付并更新订单状态为已支付",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单ID"},
			},
			Returns: "支付结果信息",
		},
		"pay_flight_order": {
			Description:    "用户进行机票订单支付",
			Preconditions:  "在机票查询购买场景，用户请求支付航班订单，上文确定了订单ID",
			Postconditions: "确认支付并更新订单状态为已支付",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单ID"},
			},
			Returns: "支付结果信息",
		},
		"pay_train_order": {
			Description:    "用户进行火车票订单支付",
			Preconditions:  "在火车票查询购买场景，用户请求支付火车票订单，上文确定了订单ID",
			Postconditions: "确认支付并更新订单状态为已支付",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单ID"},
			},
			Returns: "支付结果信息",
		},
		"search_hotel_order": {
			Description:    "根据用户ID，查询用户的酒店订单，返回包含订单ID、订单类型、用户ID、酒店ID、订单总价、下单时间、更新时间和订单状态",
			Preconditions:  "用户需求为查询酒店订单",
			Postconditions: "返回订单信息，方便之后进行修改/取消",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "用户ID"},
				{Name: "date", Description: "日期"},
				{Name: "status", Description: "订单状态"},
			},
			Returns: "指定用户的酒店订单信息",
		},
		"search_attraction_order": {
			Description:    "根据用户ID，查询用户的景点门票订单，返回包含订单ID、订单类型、用户ID、景点ID、订单总价、下单时间、更新时间和订单状态",
			Preconditions:  "用户需求为查询景点门票订单",
			Postconditions: "返回订单信息，方便之后进行修改/取消",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "用户ID"},
				{Name: "date", Description: "日期"},
				{Name: "status", Description: "订单状态"},
			},
			Returns: "指定用户的景点门票订单信息",
		},
		"search_flight_order": {
			Description:    "根据用户ID，查询用户的机票订单，返回包含订单ID、订单类型、用户ID、航班ID、订单总价、下单时间、更新时间和订单状态",
			Preconditions:  "用户需求为查询机票订单",
			Postconditions: "返回订单信息，方便之后进行修改/取消",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "用户ID"},
				{Name: "date", Description: "日期"},
				{Name: "status", Description: "订单状态"},
			},
			Returns: "指定用户的机票订单信息",
		},
		"search_train_order": {
			Description:    "根据用户ID，查询用户的火车票订单，返回包含订单ID、订单类型、用户ID、火车ID、订单总价、下单时间、更新时间和订单状态",
			Preconditions:  "用户需求为查询火车票订单",
			Postconditions: "返回订单信息，方便之后进行修改/取消",
			Args: []environment.ArgDescription{
				{Name: "user_id", Description: "用户ID"},
				{Name: "date", Description: "日期"},
				{Name: "status", Description: "订单状态"},
			},
			Returns: "指定用户的火车票订单信息",
		},
		"get_hotel_order_detail": {
			Description:    "获取酒店订单详情，包含订单ID、订单类型、用户ID、酒店ID、订单总价、下单时间、更新时间、订单状态和订单房间详细信息（房间类型、入住日期、价格、房间ID）",
			Preconditions:  "用户请求获取酒店订单详情，上文确定了订单ID",
			Postconditions: "返回订单详情",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单ID"},
			},
			Returns: "订单详情",
		},
		"get_attraction_order_detail": {
			Description:    "获取景点门票订单详情，包含订单ID、订单类型、用户ID、景点ID、订单总价、下单时间、更新时间、订单状态和订单景点详细信息（门票类型、日期、价格、门票ID）",
			Preconditions:  "用户请求获取景点门票订单详情，上文确定了订单ID",
			Postconditions: "返回订单详情",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单ID"},
			},
			Returns: "订单详情",
		},
		"get_flight_order_detail": {
			Description:    "获取机票订单详情，包含订单ID、订单类型、用户ID、航班ID、订单总价、下单时间、更新时间、订单状态和订单机票详细信息（座位类型、日期、价格、座位ID）",
			Preconditions:  "用户请求获取机票订单详情，上文确定了订单ID",
			Postconditions: "返回订单详情",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单ID"},
			},
			Returns: "订单详情",
		},
		"get_train_order_detail": {
			Description:    "获取火车票订单详情，包含订单ID、订单类型、用户ID、火车ID、订单总价、下单时间、更新时间、订单状态和订单火车票详细信息（座位类型、日期、价格、座位ID）",
			Preconditions:  "用户请求获取火车票订单详情，上文确定了订单ID",
			Postconditions: "返回订单详情",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单ID"},
			},
			Returns: "订单详情",
		},
		"modify_train_order": {
			Description:    "修改火车票订单，支持更改出发日期，自动处理补差价或退差价。",
			Preconditions:  "在火车票查询购买场景，用户请求修改火车票订单，上文确定了订单ID",
			Postconditions: "修改订单并更新订单状态，若需补差价，订单状态改为unpaid，否则保持原状态，如需补差价，需引导用户支付当笔订单",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单ID"},
				{Name: "user_id", Description: "用户ID"},
				{Name: "new_date", Description: "新的出发日期，格式为 %Y-%m-%d"},
			},
			Returns: "(修改后的订单内容, 差价，正为需补差价，负为退差价)",
		},
		"modify_flight_order": {
			Description:    "修改机票订单，支持更改出发日期，自动处理补差价或退差价。",
			Preconditions:  "在机票查询购买场景，用户请求修改机票订单，上文确定了订单ID",
			Postconditions: "修改订单并更新订单状态，若需补差价，订单状态改为unpaid，否则保持原状态，如需补差价，需引导用户支付当笔订单",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单ID"},
				{Name: "user_id", Description: "用户ID"},
				{Name: "new_date", Description: "新的出发日期，格式为 %Y-%m-%d"},
			},
			Returns: "(修改后的订单内容, 差价，正为需补差价，负为退差价)",
		},
		"cancel_hotel_order": {
			Description:    "用户取消已预订的酒店订单",
			Preconditions:  "在酒店查询预订场景，用户请求取消酒店订单，上文确定了订单ID",
			Postconditions: "取消订单并更新订单状态，若需退差价，告知用户即可",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单ID"},
				{Name: "user_id", Description: "用户ID"},
			},
			Returns: "取消订单的退款金额",
		},
		"cancel_attraction_order": {
			Description:    "用户取消已预订的景点门票订单",
			Preconditions:  "历史对话中有订单id或者已经进行过订单查询，用户有权限取消该订单",
			Postconditions: "如果退差价，告知用户即可",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单ID"},
				{Name: "user_id", Description: "用户ID"},
			},
			Returns: "取消订单的退款金额",
		},
		"cancel_flight_order": {
			Description:    "用户取消已预订的机票订单",
			Preconditions:  "历史对话中有订单id或者已经进行过订单查询，用户有权限取消该订单",
			Postconditions: "如果退差价，告知用户即可",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单ID"},
				{Name: "user_id", Description: "用户ID"},
			},
			Returns: "取消订单的退款金额",
		},
		"cancel_train_order": {
			Description:    "用户取消已预订的火车票订单",
			Preconditions:  "历史对话中有订单id或者已经进行过订单查询，用户有权限取消该订单",
			Postconditions: "如果退差价，告知用户即可",
			Args: []environment.ArgDescription{
				{Name: "order_id", Description: "订单ID"},
				{Name: "user_id", Description: "用户ID"},
			},
			Returns: "取消订单的退款金额",
		},
	},
}
