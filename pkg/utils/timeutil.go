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

package utils

import (
	"fmt"
	"time"
)

const (
	// DateTimeLayout is the canonical simulated wall-clock format.
	DateTimeLayout = "2006-01-02 15:04:05"
	// DateLayout is the canonical date-only format.
	DateLayout = "2006-01-02"
	// TimestampLayout is the run timestamp format used in result files.
	TimestampLayout = "20060102_150405"
)

// ParseDateTime parses a "yyyy-mm-dd hh:mm:ss" string.
func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(DateTimeLayout, s)
}

// ParseDate parses a "yyyy-mm-dd" string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// CheckTimeFormat reports whether s is a valid "yyyy-mm-dd hh:mm:ss" value.
func CheckTimeFormat(s string) bool {
	_, err := ParseDateTime(s)
	return err == nil
}

// CheckDateFormat reports whether s is a valid "yyyy-mm-dd" value.
func CheckDateFormat(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// Now returns the current time formatted as a run timestamp.
func Now() string {
	return time.Now().Format(TimestampLayout)
}

var weekdaysEN = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
var weekdaysZH = [7]string{"日", "一", "二", "三", "四", "五", "六"}

// Weekday returns the localized weekday name of a "yyyy-mm-dd hh:mm:ss"
// datetime. English yields e.g. "Monday", Chinese yields e.g. "星期一".
func Weekday(datetime, language string) (string, error) {
	t, err := ParseDateTime(datetime)
	if err != nil {
		return "", fmt.Errorf("invalid datetime %q: %w", datetime, err)
	}
	if language == "english" {
		return weekdaysEN[t.Weekday()], nil
	}
	return "星期" + weekdaysZH[t.Weekday()], nil
}

