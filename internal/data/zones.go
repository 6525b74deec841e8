package data

// Zone is a day-ahead market bidding zone supported by the Energy-Charts
// price API.
type Zone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BiddingZones lists the zones exposed through the API and CLI. The price
// API accepts more; these are the ones we have verified hourly coverage for.
var BiddingZones = []Zone{
	{ID: "PL", Name: "Poland"},
	{ID: "DE-LU", Name: "Germany / Luxembourg"},
	{ID: "FR", Name: "France"},
	{ID: "ES", Name: "Spain"},
	{ID: "AT", Name: "Austria"},
	{ID: "NL", Name: "Netherlands"},
	{ID: "BE", Name: "Belgium"},
	{ID: "CZ", Name: "Czechia"},
	{ID: "SE4", Name: "Sweden (SE4)"},
	{ID: "NO2", Name: "Norway (NO2)"},
}

// KnownZone reports whether id is in BiddingZones.
func KnownZone(id string) bool {
	for _, z := range BiddingZones {
		if z.ID == id {
			return true
		}
	}
	return false
}
