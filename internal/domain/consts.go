package domain

// Weekday names as they appear as keys in the timetable document. They match
// Go's time.Weekday.String() values, so no translation layer is needed.
const (
	Monday    = "Monday"
	Tuesday   = "Tuesday"
	Wednesday = "Wednesday"
	Thursday  = "Thursday"
	Friday    = "Friday"
	Saturday  = "Saturday"
	Sunday    = "Sunday"
)

// WeekdayOrder is the canonical rendering order for the weekly view.
var WeekdayOrder = []string{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

// ValidWeekdays allows the timetable loader to reject misspelled day keys.
var ValidWeekdays = map[string]bool{
	Monday:    true,
	Tuesday:   true,
	Wednesday: true,
	Thursday:  true,
	Friday:    true,
	Saturday:  true,
	Sunday:    true,
}
