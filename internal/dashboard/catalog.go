// Package dashboard implements the user-customizable widget layout: an
// ordered sequence of typed widget cards that can be added, removed and
// reordered by drag gestures, persisted locally between sessions. It is
// purely client-side state and never touches the entity store.
package dashboard

// WidgetType identifies one kind of widget card from the fixed catalog.
type WidgetType string

const (
	WidgetKPI      WidgetType = "kpi"
	WidgetTrend    WidgetType = "trend"
	WidgetDonut    WidgetType = "donut"
	WidgetTable    WidgetType = "table"
	WidgetBar      WidgetType = "bar"
	WidgetMap      WidgetType = "map"
	WidgetCalendar WidgetType = "calendar"
	WidgetActivity WidgetType = "activity"
	WidgetTeam     WidgetType = "team"
	WidgetNotes    WidgetType = "notes"
	WidgetWeather  WidgetType = "weather"
)

// Catalog maps every widget kind to its default card title. Adding a
// widget of a kind not present here fails.
var Catalog = map[WidgetType]string{
	WidgetKPI:      "Key Metrics",
	WidgetTrend:    "Production Trend",
	WidgetDonut:    "Project Status",
	WidgetTable:    "New Projects",
	WidgetBar:      "Monthly Output",
	WidgetMap:      "Installation Map",
	WidgetCalendar: "Schedule",
	WidgetActivity: "Recent Activity",
	WidgetTeam:     "Team",
	WidgetNotes:    "Notes",
	WidgetWeather:  "Weather",
}

// Item is one widget instance in the layout sequence. Its position in the
// containing slice is significant and is the thing being edited.
type Item struct {
	ID    string     `json:"id"`
	Type  WidgetType `json:"type"`
	Title string     `json:"title"`
}

// DefaultLayout returns the fixed four-card sequence used on first run and
// whenever persisted state cannot be read.
func DefaultLayout() []Item {
	return []Item{
		{ID: "kpi-1", Type: WidgetKPI, Title: Catalog[WidgetKPI]},
		{ID: "trend-1", Type: WidgetTrend, Title: Catalog[WidgetTrend]},
		{ID: "donut-1", Type: WidgetDonut, Title: Catalog[WidgetDonut]},
		{ID: "table-1", Type: WidgetTable, Title: Catalog[WidgetTable]},
	}
}
