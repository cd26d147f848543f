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

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitabench/vita/pkg/model"
)

type testDB struct {
	DB
}

func (db *testDB) Statistics() map[string]any { return map[string]any{"num_entities": 0} }
func (db *testDB) Nearby(longitude, latitude, rng float64) []string {
	return nil
}
func (db *testDB) Hash() string { return "test" }

func newTestToolkit() (*Toolkit, *testDB) {
	db := &testDB{DB: DB{
		Time:   "2025-07-05 10:00:00",
		UserID: "u1",
		Weather: []model.Weather{
			{City: "Hangzhou", Category: "Sunny", Datetime: "2025-07-05", Temperature: [2]float64{22, 30}, Humidity: 40},
			{City: "Hangzhou", Category: "Rainy", Datetime: "2025-07-06", Temperature: [2]float64{20, 25}, Humidity: 80},
			{City: "Beijing", Category: "Cloudy", Datetime: "2025-07-05", Temperature: [2]float64{18, 26}, Humidity: 35},
		},
		Locations: []model.Location{
			{Address: "No. 1 West Lake Road, Hangzhou", Longitude: 120.15, Latitude: 30.28},
		},
	}}
	return NewToolkit(db, "english"), db
}

func TestUseUnknownTool(t *testing.T) {
	tk, _ := newTestToolkit()
	_, err := tk.Use("teleport", nil)
	require.Error(t, err)
	assert.Equal(t, "Tool 'teleport' not found.", err.Error())
}

func TestPreconditionSurfacesAsResult(t *testing.T) {
	tk, _ := newTestToolkit()
	result, err := tk.Use("address_to_longitude_latitude", map[string]any{"address": "  "})
	require.NoError(t, err)
	assert.Equal(t, "Address cannot be empty", result)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 0.0, Distance(120, 30, 120, 30))
	// One degree of latitude is roughly 111 km.
	d := Distance(120, 30, 120, 31)
	assert.InDelta(t, 111195, d, 100)
}

func TestDistanceTool(t *testing.T) {
	tk, _ := newTestToolkit()
	result, err := tk.Use("longitude_latitude_to_distance", map[string]any{
		"longitude1": 120.0, "latitude1": 30.0, "longitude2": 120.0, "latitude2": 30.0,
	})
	require.NoError(t, err)
	assert.Equal(t, "0.0", result)
}

func TestWeatherTool(t *testing.T) {
	tk, _ := newTestToolkit()
	result, err := tk.Use("weather", map[string]any{
		"address": "Hangzhou", "date_start": "2025-07-05", "date_end": "2025-07-06",
	})
	require.NoError(t, err)
	lines := strings.Split(result, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "2025-07-05")
	assert.Contains(t, lines[1], "2025-07-06")

	result, err = tk.Use("weather", map[string]any{
		"address": "Hangzhou", "date_start": "bad", "date_end": "2025-07-06",
	})
	require.NoError(t, err)
	assert.Equal(t, "Invalid date_start format. Expected yyyy-mm-dd, got: bad", result)
}

func TestGeocodeTool(t *testing.T) {
	tk, _ := newTestToolkit()
	result, err := tk.Use("address_to_longitude_latitude", map[string]any{
		"address": "No. 1 West Lake Road, Hangzhou",
	})
	require.NoError(t, err)
	assert.Equal(t, "[120.15, 30.28]", result)

	_, err = tk.Use("address_to_longitude_latitude", map[string]any{"address": "qqqqqqqq"})
	assert.Error(t, err)
}

func TestHolidayInfoTool(t *testing.T) {
	tk, _ := newTestToolkit()
	result, err := tk.Use("get_date_holiday_info", map[string]any{"date": "2025-07-07"})
	require.NoError(t, err)
	assert.Equal(t, "Date 2025-07-07 is not a holiday", result)

	result, err = tk.Use("get_date_holiday_info", map[string]any{"date": "07/07/2025"})
	require.NoError(t, err)
	assert.Contains(t, result, "Date format error")
}

func TestGetUserAllOrdersEmpty(t *testing.T) {
	tk, _ := newTestToolkit()
	result, err := tk.Use("get_user_all_orders", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "User currently has no order information", result)
}

func TestRegisterReplacesInPlace(t *testing.T) {
	tk, _ := newTestToolkit()
	before := len(tk.Tools())
	tk.Register(NewTool("weather", ToolTypeGeneric, func(struct{}) (string, error) {
		return "stub", nil
	}))
	assert.Len(t, tk.Tools(), before)
	result, err := tk.Use("weather", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "stub", result)
}

func TestAssignOrderID(t *testing.T) {
	db := &DB{}
	id, err := db.AssignOrderID("delivery", "u1", nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "OT"))
	assert.Len(t, id, 12)

	id, err = db.AssignOrderID("hotel", "u1", map[string]string{"hotel_id": "h1", "product_id": "p1"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "OO"))

	_, err = db.AssignOrderID("hotel", "u1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required parameter")

	_, err = db.AssignOrderID("spaceship", "u1", nil)
	require.Error(t, err)
	assert.Equal(t, "unsupported scenario type: spaceship", err.Error())
}
