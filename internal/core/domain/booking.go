package domain

// TravelCategory is a bookable travel category that redirects to an external
// partner site. The system owns no booking protocol; the contract is only
// "navigate to URL".
type TravelCategory string

const (
	CategoryFlights   TravelCategory = "FLIGHTS"
	CategoryHotels    TravelCategory = "HOTELS"
	CategoryCars      TravelCategory = "CARS"
	CategoryTrains    TravelCategory = "TRAINS"
	CategoryBuses     TravelCategory = "BUSES"
	CategoryCruises   TravelCategory = "CRUISES"
	CategoryEvents    TravelCategory = "EVENTS"
	CategoryPackages  TravelCategory = "PACKAGES"
	CategoryInsurance TravelCategory = "INSURANCE"
)

// BookingLink maps a travel category to its external partner URL.
type BookingLink struct {
	Category TravelCategory `json:"category"`
	Label    string         `json:"label"`
	URL      string         `json:"url"`
}

// BookingLinks is the fixed redirect table served to the landing page, in
// display order.
var BookingLinks = []BookingLink{
	{Category: CategoryFlights, Label: "Flights", URL: "https://www.makemytrip.com"},
	{Category: CategoryHotels, Label: "Hotels", URL: "https://www.booking.com"},
	{Category: CategoryCars, Label: "Cars", URL: "https://www.zoomcar.com"},
	{Category: CategoryTrains, Label: "Trains", URL: "https://www.irctc.co.in"},
	{Category: CategoryBuses, Label: "Buses", URL: "https://www.redbus.in"},
	{Category: CategoryCruises, Label: "Cruises", URL: "https://www.gocruise.co.in"},
	{Category: CategoryEvents, Label: "Events", URL: "https://in.bookmyshow.com"},
	{Category: CategoryPackages, Label: "Holiday Packages", URL: "https://www.yatra.com"},
	{Category: CategoryInsurance, Label: "Travel Insurance", URL: "https://www.policybazaar.com"},
}
