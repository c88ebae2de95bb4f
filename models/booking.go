package models

// Customer holds the contact details embedded in a reservation event.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SearchRequest asks for free slots on any fleet unit serving the origin city.
type SearchRequest struct {
	Date        string  `json:"date"` // YYYY-MM-DD, required
	OriginCity  string  `json:"originCity"`
	Volume      float64 `json:"volume"`
	ServiceType string  `json:"serviceType"`
}

// AvailableCalendar describes the first fleet unit with free slots on the
// requested day, along with every surviving candidate start time.
type AvailableCalendar struct {
	CalendarID     string   `json:"calendarId"`
	CalendarCode   string   `json:"calendarCode"`
	VehicleType    string   `json:"vehicleType"`
	MaxVolume      float64  `json:"maxVolume,omitempty"`
	AvailableSlots []string `json:"availableSlots"` // RFC 3339
}

// SearchResult is the search response body. Calendar is nil when no unit has
// a free slot.
type SearchResult struct {
	Available bool               `json:"available"`
	Calendar  *AvailableCalendar `json:"calendar,omitempty"`
}

// ReserveRequest books a previously searched slot on a specific calendar.
type ReserveRequest struct {
	CalendarID  string   `json:"calendarId"` // required
	Date        string   `json:"date"`       // YYYY-MM-DD, required
	SlotStart   string   `json:"slotStart"`  // RFC 3339, required
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	ServiceType string   `json:"serviceType"`
	Volume      float64  `json:"volume"`
	DistanceKm  *float64 `json:"distanceKm"`
	Customer    Customer `json:"customer"`
}

// Reservation is the created booking as returned to the caller. Reference is
// our own identifier; EventID and Link belong to the calendar service.
type Reservation struct {
	CalendarID string `json:"calendarId"`
	Reference  string `json:"reference"`
	Start      string `json:"start"`
	End        string `json:"end"`
	EventID    string `json:"eventId"`
	Link       string `json:"link"`
}
