package domain

// Place holds the fully resolved details for a selected suggestion.
// Unlike Suggestion, a Place is only ever produced by a successful
// resolve call - there is no degraded substitute.
type Place struct {
	// PlaceID uniquely identifies the place.
	PlaceID string `json:"place_id"`

	// Name is the display name.
	Name string `json:"name"`

	// Address is the full formatted address.
	Address string `json:"address,omitempty"`

	// Latitude and Longitude are the precise coordinates.
	Latitude  float64 `json:"lat,omitempty"`
	Longitude float64 `json:"lng,omitempty"`

	// Types lists the place categories.
	Types []string `json:"types,omitempty"`

	// Rating is the aggregate user rating, if available.
	Rating float64 `json:"rating,omitempty"`

	// Phone is the contact number, if available.
	Phone string `json:"phone,omitempty"`

	// Website is the official website URL, if available.
	Website string `json:"website,omitempty"`

	// OpeningHours describes opening times, if available.
	OpeningHours []string `json:"opening_hours,omitempty"`

	// PhotoURLs lists photo references, if available.
	PhotoURLs []string `json:"photo_urls,omitempty"`
}
