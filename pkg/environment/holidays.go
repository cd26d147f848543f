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

// holiday is a festival name paired with its date within one year.
type holiday struct {
	Name string
	Date string
}

// holidayTable returns the per-year festival lookup for the locale.
func holidayTable(language string) map[string][]holiday {
	if language == "english" {
		return holidaysEN
	}
	return holidaysZH
}

var holidaysEN = map[string][]holiday{
	"2025": {
		{"New Year's Day", "2025-01-01"},
		{"Start of Autumn", "2025-08-07"},
		{"Women's Day", "2025-03-08"},
		{"Laba Festival", "2025-01-07"},
		{"Dragon Head Festival", "2025-03-01"},
		{"Party Founding Day", "2025-07-01"},
		{"Qingming Festival", "2025-04-04"},
		{"Double Ninth Festival", "2025-10-29"},
		{"Dragon Boat Festival", "2025-05-31"},
		{"Mother's Day", "2025-05-11"},
		{"Lantern Festival", "2025-02-15"},
		{"Labor Day", "2025-05-01"},
		{"Qixi Festival", "2025-08-29"},
		{"Winter Solstice", "2025-12-21"},
		{"Christmas Day", "2025-12-25"},
		{"National Day", "2025-10-01"},
		{"Mid-Autumn Festival", "2025-10-06"},
	},
	"2024": {
		{"Double Ninth Festival", "2024-10-11"},
		{"Qixi Festival", "2024-08-10"},
		{"Valentine's Day", "2024-02-14"},
		{"Qingming Festival", "2024-04-04"},
		{"Dragon Boat Festival", "2024-06-10"},
		{"Lantern Festival", "2024-02-24"},
		{"Mid-Autumn Festival", "2024-09-17"},
	},
	"2023": {
		{"National Day", "2023-10-01"},
		{"Dragon Boat Festival", "2023-06-22"},
		{"Mid-Autumn Festival", "2023-09-29"},
		{"Qingming Festival", "2023-04-05"},
		{"Double Ninth Festival", "2023-10-23"},
		{"Father's Day", "2023-06-18"},
	},
}

var holidaysZH = map[string][]holiday{
	"2025": {
		{"元旦节", "2025-01-01"},
		{"立秋", "2025-08-07"},
		{"妇女节", "2025-03-08"},
		{"腊八节", "2025-01-07"},
		{"龙头节", "2025-03-01"},
		{"建党节", "2025-07-01"},
		{"清明节", "2025-04-04"},
		{"重阳节", "2025-10-29"},
		{"端午节", "2025-05-31"},
		{"母亲节", "2025-05-11"},
		{"元宵节", "2025-02-15"},
		{"劳动节", "2025-05-01"},
		{"七夕节", "2025-08-29"},
		{"冬至", "2025-12-21"},
		{"圣诞节", "2025-12-25"},
		{"国庆节", "2025-10-01"},
		{"中秋节", "2025-10-06"},
	},
	"2024": {
		{"重阳节", "2024-10-11"},
		{"七夕节", "2024-08-10"},
		{"情人节", "2024-02-14"},
		{"清明节", "2024-04-04"},
		{"端午节", "2024-06-10"},
		{"元宵节", "2024-02-24"},
		{"中秋节", "2024-09-17"},
	},
	"2023": {
		{"国庆节", "2023-10-01"},
		{"端午节", "2023-06-22"},
		{"中秋节", "2023-09-29"},
		{"清明节", "2023-04-05"},
		{"重阳节", "2023-10-23"},
		{"父亲节", "2023-06-18"},
	},
}

// chinesePublicHolidays maps dates to statutory holiday names for the years
// tasks are set in.
var chinesePublicHolidays = map[string]string{
	"2023-01-01": "New Year's Day",
	"2023-01-22": "Chinese New Year (Spring Festival)",
	"2023-01-23": "Chinese New Year (Spring Festival)",
	"2023-01-24": "Chinese New Year (Spring Festival)",
	"2023-04-05": "Tomb-Sweeping Day",
	"2023-05-01": "Labor Day",
	"2023-06-22": "Dragon Boat Festival",
	"2023-09-29": "Mid-Autumn Festival",
	"2023-10-01": "National Day",
	"2023-10-02": "National Day",
	"2023-10-03": "National Day",

	"2024-01-01": "New Year's Day",
	"2024-02-10": "Chinese New Year (Spring Festival)",
	"2024-02-11": "Chinese New Year (Spring Festival)",
	"2024-02-12": "Chinese New Year (Spring Festival)",
	"2024-04-04": "Tomb-Sweeping Day",
	"2024-05-01": "Labor Day",
	"2024-06-10": "Dragon Boat Festival",
	"2024-09-17": "Mid-Autumn Festival",
	"2024-10-01": "National Day",
	"2024-10-02": "National Day",
	"2024-10-03": "National Day",

	"2025-01-01": "New Year's Day",
	"2025-01-28": "Chinese New Year's Eve",
	"2025-01-29": "Chinese New Year (Spring Festival)",
	"2025-01-30": "Chinese New Year (Spring Festival)",
	"2025-01-31": "Chinese New Year (Spring Festival)",
	"2025-04-04": "Tomb-Sweeping Day",
	"2025-05-01": "Labor Day",
	"2025-05-02": "Labor Day",
	"2025-05-31": "Dragon Boat Festival",
	"2025-10-01": "National Day",
	"2025-10-02": "National Day",
	"2025-10-03": "National Day",
	"2025-10-06": "Mid-Autumn Festival",
}
