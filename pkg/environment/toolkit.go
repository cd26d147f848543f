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
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/vitabench/vita/pkg/model"
	"github.com/vitabench/vita/pkg/utils"
)

// Toolkit is an ordered registry of tools bound to one domain database.
// Every toolkit starts with the shared world tools; domains register their
// own on top.
type Toolkit struct {
	db       Database
	language string
	names    []string
	tools    map[string]*Tool
}

// NewToolkit creates a toolkit over db with the shared tools registered.
func NewToolkit(db Database, language string) *Toolkit {
	tk := &Toolkit{
		db:       db,
		language: language,
		tools:    make(map[string]*Tool),
	}
	tk.registerBaseTools()
	return tk
}

// Register adds a tool. A tool registered under an existing name replaces
// it in place, keeping the original position.
func (tk *Toolkit) Register(tool *Tool) {
	if _, ok := tk.tools[tool.Name]; !ok {
		tk.names = append(tk.names, tool.Name)
	}
	tk.tools[tool.Name] = tool
}

// DB returns the bound domain database.
func (tk *Toolkit) DB() Database { return tk.db }

// Language returns the toolkit's locale.
func (tk *Toolkit) Language() string { return tk.language }

// Tools lists the registered tools in registration order.
func (tk *Toolkit) Tools() []*Tool {
	tools := make([]*Tool, len(tk.names))
	for i, name := range tk.names {
		tools[i] = tk.tools[name]
	}
	return tools
}

// Tool looks up a tool by name.
func (tk *Toolkit) Tool(name string) (*Tool, bool) {
	tool, ok := tk.tools[name]
	return tool, ok
}

// Use dispatches one tool call by name.
func (tk *Toolkit) Use(name string, args map[string]any) (string, error) {
	tool, ok := tk.tools[name]
	if !ok {
		return "", fmt.Errorf("Tool '%s' not found.", name)
	}
	return tool.Call(args)
}

// Statistics counts the registered tools by type.
func (tk *Toolkit) Statistics() map[string]any {
	counts := map[ToolType]int{}
	for _, tool := range tk.tools {
		counts[tool.Type]++
	}
	return map[string]any{
		"num_tools":         len(tk.tools),
		"num_read_tools":    counts[ToolTypeRead],
		"num_write_tools":   counts[ToolTypeWrite],
		"num_think_tools":   counts[ToolTypeThink],
		"num_generic_tools": counts[ToolTypeGeneric],
	}
}

// Now returns the simulated time, falling back to the wall clock.
func (tk *Toolkit) Now() string {
	return tk.db.Core().Now()
}

// earthRadiusMeters is the sphere radius used for haversine distances.
const earthRadiusMeters = 6371000

// Distance computes the haversine distance in meters between two
// coordinates, rounded to whole meters.
func Distance(longitude1, latitude1, longitude2, latitude2 float64) float64 {
	if longitude1 == longitude2 && latitude1 == latitude2 {
		return 0.0
	}
	lon1 := longitude1 * math.Pi / 180
	lat1 := latitude1 * math.Pi / 180
	lon2 := longitude2 * math.Pi / 180
	lat2 := latitude2 * math.Pi / 180
	dlon := lon2 - lon1
	dlat := lat2 - lat1
	a := math.Pow(math.Sin(dlat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	return math.Round(earthRadiusMeters * 2 * math.Asin(math.Sqrt(a)))
}

// Geocode resolves an address against the world's location table with fuzzy
// matching.
func Geocode(db *DB, address string) (model.Location, error) {
	docs := make([]utils.Doc, 0, len(db.Locations))
	byAddress := make(map[string]model.Location, len(db.Locations))
	for _, loc := range db.Locations {
		if _, ok := byAddress[loc.Address]; ok {
			continue
		}
		byAddress[loc.Address] = loc
		docs = append(docs, utils.Doc{ID: loc.Address, Text: loc.Address})
	}
	ranked := utils.Rerank(address, docs)
	if len(ranked) == 0 || ranked[0].Score < 30 || !utils.FuzzyRatioMatch(address, ranked[0].ID) {
		return model.Location{}, fmt.Errorf("Longitude and latitude not found for address %s", address)
	}
	return byAddress[ranked[0].ID], nil
}

type distanceArgs struct {
	Longitude1 float64 `json:"longitude1" jsonschema:"required"`
	Latitude1  float64 `json:"latitude1" jsonschema:"required"`
	Longitude2 float64 `json:"longitude2" jsonschema:"required"`
	Latitude2  float64 `json:"latitude2" jsonschema:"required"`
}

type weatherArgs struct {
	Address   string `json:"address" jsonschema:"required"`
	DateStart string `json:"date_start" jsonschema:"required"`
	DateEnd   string `json:"date_end" jsonschema:"required"`
}

type geocodeArgs struct {
	Address string `json:"address" jsonschema:"required"`
}

type holidayInfoArgs struct {
	Date string `json:"date" jsonschema:"required"`
}

type holidayDateArgs struct {
	Year        string `json:"year" jsonschema:"required"`
	HolidayName string `json:"holiday_name" jsonschema:"required"`
}

type emptyArgs struct{}

type nearbyArgs struct {
	Longitude float64 `json:"longitude" jsonschema:"required"`
	Latitude  float64 `json:"latitude" jsonschema:"required"`
	Range     float64 `json:"range" jsonschema:"required"`
}

func (tk *Toolkit) registerBaseTools() {
	tk.Register(NewTool("longitude_latitude_to_distance", ToolTypeGeneric, func(args distanceArgs) (string, error) {
		return model.FormatFloat(Distance(args.Longitude1, args.Latitude1, args.Longitude2, args.Latitude2)), nil
	}))

	tk.Register(NewTool("weather", ToolTypeGeneric, tk.weather))

	tk.Register(NewTool("address_to_longitude_latitude", ToolTypeGeneric, func(args geocodeArgs) (string, error) {
		if strings.TrimSpace(args.Address) == "" {
			return "", Preconditionf("Address cannot be empty")
		}
		loc, err := Geocode(tk.db.Core(), args.Address)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[%s, %s]", model.FormatFloat(loc.Longitude), model.FormatFloat(loc.Latitude)), nil
	}))

	tk.Register(NewTool("get_date_holiday_info", ToolTypeGeneric, func(args holidayInfoArgs) (string, error) {
		if !utils.CheckDateFormat(args.Date) {
			return "", Preconditionf("Date format error, should be yyyy-mm-dd, actual: %s", args.Date)
		}
		if name, ok := chinesePublicHolidays[args.Date]; ok {
			return name, nil
		}
		return fmt.Sprintf("Date %s is not a holiday", args.Date), nil
	}))

	tk.Register(NewTool("get_holiday_date", ToolTypeGeneric, tk.holidayDate))

	tk.Register(NewTool("get_user_historical_behaviors", ToolTypeRead, func(emptyArgs) (string, error) {
		encoded, err := json.Marshal(tk.db.Core().UserHistoricalBehaviors)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}))

	tk.Register(NewTool("get_user_all_orders", ToolTypeRead, func(emptyArgs) (string, error) {
		db := tk.db.Core()
		if db.Orders == nil {
			return "User currently has no order information", nil
		}
		lines := make([]string, 0, len(db.Orders))
		for _, id := range db.OrderIDs() {
			lines = append(lines, db.Orders[id].String())
		}
		return strings.Join(lines, "\n"), nil
	}))

	tk.Register(NewTool("get_nearby", ToolTypeRead, func(args nearbyArgs) (string, error) {
		matches := tk.db.Nearby(args.Longitude, args.Latitude, args.Range)
		if len(matches) == 0 {
			return "No search results found", nil
		}
		return strings.Join(matches, "\n"), nil
	}))
}

func (tk *Toolkit) weather(args weatherArgs) (string, error) {
	if !utils.CheckDateFormat(args.DateStart) {
		return "", Preconditionf("Invalid date_start format. Expected yyyy-mm-dd, got: %s", args.DateStart)
	}
	if !utils.CheckDateFormat(args.DateEnd) {
		return "", Preconditionf("Invalid date_end format. Expected yyyy-mm-dd, got: %s", args.DateEnd)
	}
	if strings.TrimSpace(args.Address) == "" {
		return "", Preconditionf("Address cannot be empty")
	}

	db := tk.db.Core()
	seen := make(map[string]bool)
	var docs []utils.Doc
	for _, w := range db.Weather {
		if seen[w.City] {
			continue
		}
		seen[w.City] = true
		docs = append(docs, utils.Doc{ID: w.City, Text: w.City})
	}
	ranked := utils.Rerank(args.Address, docs)
	if len(ranked) == 0 || ranked[0].Score < 50 {
		return "", fmt.Errorf("Weather information not found for %s", args.Address)
	}
	city := ranked[0].ID

	startDate, _ := utils.ParseDate(args.DateStart)
	endDate, _ := utils.ParseDate(args.DateEnd)
	var matched []model.Weather
	for _, w := range db.Weather {
		if w.City != city {
			continue
		}
		date, err := utils.ParseDate(w.Datetime)
		if err != nil {
			continue
		}
		if !date.Before(startDate) && !date.After(endDate) {
			matched = append(matched, w)
		}
	}
	if len(matched) == 0 {
		return fmt.Sprintf("No weather information found for %s between %s and %s", city, args.DateStart, args.DateEnd), nil
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].Datetime < matched[j].Datetime })
	lines := make([]string, len(matched))
	for i, w := range matched {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n"), nil
}

func (tk *Toolkit) holidayDate(args holidayDateArgs) (string, error) {
	yearHolidays, ok := holidayTable(tk.language)[args.Year]
	if !ok {
		return fmt.Sprintf("Holiday data for year %s not found", args.Year), nil
	}
	if strings.TrimSpace(args.HolidayName) == "" {
		return "", Preconditionf("Holiday name cannot be empty")
	}

	best, bestScore := "", -1
	for _, h := range yearHolidays {
		if score := fuzzy.PartialRatio(args.HolidayName, h.Name); score > bestScore {
			best, bestScore = h.Date, score
		}
	}
	if bestScore >= 80 {
		return best, nil
	}
	return fmt.Sprintf("Holiday named '%s' not found in year %s", args.HolidayName, args.Year), nil
}
