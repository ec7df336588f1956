package domain

// MapMarker is a labeled coordinate handed to the external map delegate.
type MapMarker struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// MapConfig describes what the client-side map delegate should render.
// Enabled is false when no API credential is configured; the client renders
// a placeholder in that case, this is a supported degraded state.
type MapConfig struct {
	Enabled bool        `json:"enabled"`
	APIKey  string      `json:"apiKey,omitempty"`
	Center  MapMarker   `json:"center"`
	Markers []MapMarker `json:"markers"`
}

// MarkersFromTrips builds map markers from trips that carry coordinates.
func MarkersFromTrips(trips []Trip) []MapMarker {
	markers := make([]MapMarker, 0, len(trips))
	for _, t := range trips {
		if t.Lat == 0 && t.Lng == 0 {
			continue
		}
		markers = append(markers, MapMarker{Label: t.Destination, Lat: t.Lat, Lng: t.Lng})
	}
	return markers
}

// BoundsCenter returns the midpoint of the markers' bounding box, so the
// delegate can center its viewport before fitting to bounds. With no markers
// it falls back to a neutral default.
func BoundsCenter(markers []MapMarker) MapMarker {
	if len(markers) == 0 {
		// Bengaluru, the demo's home base
		return MapMarker{Lat: 12.9716, Lng: 77.5946}
	}
	minLat, maxLat := markers[0].Lat, markers[0].Lat
	minLng, maxLng := markers[0].Lng, markers[0].Lng
	for _, m := range markers[1:] {
		if m.Lat < minLat {
			minLat = m.Lat
		}
		if m.Lat > maxLat {
			maxLat = m.Lat
		}
		if m.Lng < minLng {
			minLng = m.Lng
		}
		if m.Lng > maxLng {
			maxLng = m.Lng
		}
	}
	return MapMarker{Lat: (minLat + maxLat) / 2, Lng: (minLng + maxLng) / 2}
}
