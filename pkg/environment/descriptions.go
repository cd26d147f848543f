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

package environment

import "strings"

// ArgDescription documents one tool argument in declaration order.
type ArgDescription struct {
	Name        string
	Description string
}

// ToolDescription is the localized documentation of one tool, rendered into
// the docstring the model sees.
type ToolDescription struct {
	Description    string
	Preconditions  string
	Postconditions string
	Args           []ArgDescription
	Returns        string
}

// Docstring renders the description block sent to the model.
func (d ToolDescription) Docstring() string {
	parts := []string{
		d.Description,
		"Preconditions:",
		"    - " + d.Preconditions,
		"Postconditions:",
		"    - " + d.Postconditions,
		"",
		"Args:",
	}
	for _, arg := range d.Args {
		parts = append(parts, "    "+arg.Name+": "+arg.Description)
	}
	parts = append(parts, "", "Returns:", "    "+d.Returns)
	return strings.Join(parts, "\n")
}

// DescriptionTable holds one domain's tool documentation per locale.
type DescriptionTable struct {
	English map[string]ToolDescription
	Chinese map[string]ToolDescription
}

// Lookup returns the localized description of a tool.
func (t DescriptionTable) Lookup(name, language string) (ToolDescription, bool) {
	table := t.Chinese
	if language == "english" {
		table = t.English
	}
	desc, ok := table[name]
	return desc, ok
}

// Merge overlays other's entries on top of t, returning a new table. Shared
// world tools get merged with each domain's own this way.
func (t DescriptionTable) Merge(other DescriptionTable) DescriptionTable {
	merged := DescriptionTable{
		English: make(map[string]ToolDescription, len(t.English)+len(other.English)),
		Chinese: make(map[string]ToolDescription, len(t.Chinese)+len(other.Chinese)),
	}
	for name, desc := range t.English {
		merged.English[name] = desc
	}
	for name, desc := range t.Chinese {
		merged.Chinese[name] = desc
	}
	for name, desc := range other.English {
		merged.English[name] = desc
	}
	for name, desc := range other.Chinese {
		merged.Chinese[name] = desc
	}
	return merged
}

// BaseDescriptions documents the shared world tools.
var BaseDescriptions = DescriptionTable{
	English: map[string]ToolDescription{
		"longitude_latitude_to_distance": {
			Description:    "Calculate distance between two points based on longitude and latitude (in meters)",
			Preconditions:  "Calculate distance between two points based on their longitude and latitude",
			Postconditions: "Return distance between two points (integer, in meters)",
			Args: []ArgDescription{
				{"longitude1", "Longitude of first point"},
				{"latitude1", "Latitude of first point"},
				{"longitude2", "Longitude of second point"},
				{"latitude2", "Latitude of second point"},
			},
			Returns: "Distance between two points (integer, in meters)",
		},
		"weather": {
			Description:    "Query weather information for specified address during date_start to date_end period",
			Preconditions:  "Query weather information for specified address within specified date range",
			Postconditions: "Return weather information",
			Args: []ArgDescription{
				{"address", "Address to query"},
				{"date_start", "Start time, format: yyyy-mm-dd"},
				{"date_end", "End time, format: yyyy-mm-dd"},
			},
			Returns: "Weather information",
		},
		"address_to_longitude_latitude": {
			Description:    "Get longitude and latitude based on address",
			Preconditions:  "Get corresponding longitude and latitude coordinates based on address",
			Postconditions: "Return longitude and latitude coordinates",
			Args: []ArgDescription{
				{"address", "Address to query"},
			},
			Returns: "[Longitude, Latitude]",
		},
		"get_date_holiday_info": {
			Description:    "Determine if a date is a Chinese holiday; if so, return the Chinese holiday name",
			Preconditions:  "Determine if it's a holiday based on date, if so return holiday name",
			Postconditions: "Return holiday information",
			Args: []ArgDescription{
				{"date", "Date, format: yyyy-mm-dd"},
			},
			Returns: "Holiday information determination result",
		},
		"get_holiday_date": {
			Description:    "Get the specific date corresponding to a holiday in a specified year",
			Preconditions:  "Get the specific date of a holiday in a specified year",
			Postconditions: "Return the holiday date",
			Args: []ArgDescription{
				{"year", "Year"},
				{"holiday_name", "Holiday name, only supports English expressions"},
			},
			Returns: "Holiday date",
		},
		"get_user_historical_behaviors": {
			Description:    "Get user basic information and historical behavior preference data, including user ID, home address, work address and other basic information, as well as detailed consumption habits, preferred categories, price ranges, rating requirements, time preferences and other information for various scenarios, used for personalized recommendations and service optimization",
			Preconditions:  "Get user historical behavior data",
			Postconditions: "Return user historical behavior information",
			Returns:        "User historical behavior information summary",
		},
		"get_user_all_orders": {
			Description:    "Get all order information for user",
			Preconditions:  "Get all order information for user",
			Postconditions: "Return all order information for user",
			Returns:        "Summary of all order information for user",
		},
		"get_nearby": {
			Description:    "Get information about all nearby stores/commercial establishments",
			Preconditions:  "Get information about all commercial establishments (stores, airports or train stations, hotels, attractions, shops, etc.) within specified range (in meters)",
			Postconditions: "Return commercial establishment information",
			Args: []ArgDescription{
				{"longitude", "Longitude"},
				{"latitude", "Latitude"},
				{"range", "Range (in meters)"},
			},
			Returns: "Store/commercial establishment information",
		},
	},
	Chinese: map[string]ToolDescription{
		"longitude_latitude_to_distance": {
			Description:    "根据经纬度计算两点之间的距离（以米为单位）",
			Preconditions:  "根据两个点的经纬度计算它们之间的距离",
			Postconditions: "返回两点之间的距离（整数，以米为单位）",
			Args: []ArgDescription{
				{"longitude1", "第一个点的经度"},
				{"latitude1", "第一个点的纬度"},
				{"longitude2", "第二个点的经度"},
				{"latitude2", "第二个点的纬度"},
			},
			Returns: "两点之间的距离（整数，以米为单位）",
		},
		"weather": {
			Description:    "查询指定地址在date_start到date_end期间的天气信息",
			Preconditions:  "查询指定地址在指定日期范围内的天气信息",
			Postconditions: "返回天气信息",
			Args: []ArgDescription{
				{"address", "要查询的地址"},
				{"date_start", "开始时间，格式为 yyyy-mm-dd"},
				{"date_end", "结束时间，格式为 yyyy-mm-dd"},
			},
			Returns: "天气信息",
		},
		"address_to_longitude_latitude": {
			Description:    "根据地址获取经纬度",
			Preconditions:  "根据地址获取对应的经纬度坐标",
			Postconditions: "返回经纬度坐标",
			Args: []ArgDescription{
				{"address", "要查询的地址"},
			},
			Returns: "[经度, 纬度]",
		},
		"get_date_holiday_info": {
			Description:    "判断某日期是否为中国节假日；如果是则返回节假日中文名称",
			Preconditions:  "根据日期判断是否为节假日，如果是则返回节假日名称",
			Postconditions: "返回节假日信息",
			Args: []ArgDescription{
				{"date", "日期，格式为 yyyy-mm-dd"},
			},
			Returns: "节假日信息判断结果",
		},
		"get_holiday_date": {
			Description:    "获取指定年份中某个节假日对应的具体日期",
			Preconditions:  "获取指定年份中某个节假日的具体日期",
			Postconditions: "返回节假日的日期",
			Args: []ArgDescription{
				{"year", "年份"},
				{"holiday_name", "节假日名称，仅支持中文表述"},
			},
			Returns: "节假日的日期",
		},
		"get_user_historical_behaviors": {
			Description:    "获取用户基本信息和历史行为偏好数据，包括用户ID、家庭住址、工作地址等基本信息，以及各场景的详细消费习惯、偏好品类、价格区间、评分要求、时间偏好等信息，用于个性化推荐和服务优化",
			Preconditions:  "获取用户历史行为数据",
			Postconditions: "返回用户历史行为信息",
			Returns:        "用户历史行为信息摘要",
		},
		"get_user_all_orders": {
			Description:    "获取用户所有订单信息",
			Preconditions:  "获取用户的所有订单信息",
			Postconditions: "返回用户所有订单信息",
			Returns:        "用户所有订单信息摘要",
		},
		"get_nearby": {
			Description:    "获取附近所有商店/商业场所的信息",
			Preconditions:  "获取指定范围内（米）的所有商业场所（商店、机场或火车站、酒店、景点、商铺等）的信息",
			Postconditions: "返回商业场所信息",
			Args: []ArgDescription{
				{"longitude", "经度"},
				{"latitude", "纬度"},
				{"range", "范围（以米为单位）"},
			},
			Returns: "商店/商业场所信息",
		},
	},
}
