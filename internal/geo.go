package internal

import (
	"errors"
	"fmt"
	"math"
)

// Inspired by https://github.com/LucaTheHacker/go-haversine

const (
	earthRadiusKilometers float64 = 6371 // Radius of Earth in kilometers
	piHalf                float64 = math.Pi / 180
	// DefaultMapZoom is the initial zoom level of the launch map, continent scale.
	DefaultMapZoom = 4
	// compassSector is the angle covered by each of the 16 compass points.
	compassSector = 22.5
)

var ErrNoPlottablePoints = errors.New("no plottable points")

var compassPoints = []string{ //nolint: gochecknoglobals // lookup table
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// Coordinate type

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// NewCoordinates returns a coordinates struct based on parameters passed.
func NewCoordinates(latitude, longitude float64) Coordinates {
	return Coordinates{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// IsZero reports whether no location was configured. Null Island is not a launch site.
func (c Coordinates) IsZero() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

func (c Coordinates) toRadians() Coordinates {
	return Coordinates{
		Latitude:  c.Latitude * piHalf,
		Longitude: c.Longitude * piHalf,
	}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}

// DistanceKm calculates the great circle distance in kilometers using the haversine formula.
//
//nolint:mnd // readability of mathmatic formula
func DistanceKm(p, q Coordinates) float64 {
	fromPos := p.toRadians()
	toPos := q.toRadians()

	deltaLat := toPos.Latitude - fromPos.Latitude
	deltaLon := toPos.Longitude - fromPos.Longitude

	a := math.Pow(math.Sin(deltaLat/2), 2) +
		math.Cos(fromPos.Latitude)*
			math.Cos(toPos.Latitude)*
			math.Pow(math.Sin(deltaLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return c * earthRadiusKilometers
}

// Bearing calculates the initial bearing (forward azimuth) from p to q in degrees [0, 360).
func Bearing(p, q Coordinates) float64 {
	fromPos := p.toRadians()
	toPos := q.toRadians()

	dLon := toPos.Longitude - fromPos.Longitude

	y := math.Sin(dLon) * math.Cos(toPos.Latitude)
	x := math.Cos(fromPos.Latitude)*math.Sin(toPos.Latitude) -
		math.Sin(fromPos.Latitude)*math.Cos(toPos.Latitude)*math.Cos(dLon)

	// The result from Atan2 ranges from -180 to +180
	return math.Mod(math.Atan2(y, x)/piHalf+360.0, 360.0) //nolint: mnd // readability
}

// CompassDirection maps a bearing in degrees to one of 16 compass points.
func CompassDirection(bearing float64) string {
	sector := int(math.Floor(math.Mod(bearing+compassSector/2, 360.0) / compassSector)) //nolint: mnd // full circle
	return compassPoints[sector%len(compassPoints)]
}

// MapMarker is a single launch site on the map.
type MapMarker struct {
	Position  Coordinates
	Mission   string
	Rocket    string
	Location  string
	Popup     string
	Distance  float64 // distance to the observer in [km], only set if an observer is known
	Direction string  // compass direction as seen from the observer
}

// MapView is everything a map renderer needs: initial center and zoom plus the markers.
type MapView struct {
	Center  Coordinates
	Zoom    int
	Markers []MapMarker
}

// URL returns an OpenStreetMap link centered on the first launch site.
func (mv *MapView) URL() string {
	return fmt.Sprintf(
		"https://www.openstreetmap.org/?mlat=%.4f&mlon=%.4f#map=%d/%.4f/%.4f",
		mv.Center.Latitude,
		mv.Center.Longitude,
		mv.Zoom,
		mv.Center.Latitude,
		mv.Center.Longitude)
}

// PlottablePoints returns the records which have both coordinates, in their original order.
func PlottablePoints(records []LaunchRecord) []LaunchRecord {
	points := make([]LaunchRecord, 0, len(records))
	for i := range records {
		if records[i].HasCoordinates() {
			points = append(points, records[i])
		}
	}

	return points
}

// NewMapView builds the map for a query result. The first plottable record determines the center.
// Markers get distance and direction relative to observer unless observer is zero.
// Returns ErrNoPlottablePoints if no record has coordinates.
func NewMapView(records []LaunchRecord, observer Coordinates) (MapView, error) {
	points := PlottablePoints(records)
	if len(points) == 0 {
		return MapView{}, ErrNoPlottablePoints
	}

	markers := make([]MapMarker, 0, len(points))
	for i := range points {
		position := NewCoordinates(*points[i].Latitude, *points[i].Longitude)
		marker := MapMarker{
			Position:  position,
			Mission:   points[i].Mission,
			Rocket:    points[i].Rocket,
			Location:  points[i].Location,
			Popup:     markerPopup(&points[i]),
			Distance:  0,
			Direction: "",
		}

		if !observer.IsZero() {
			marker.Distance = DistanceKm(observer, position)
			marker.Direction = CompassDirection(Bearing(observer, position))
		}

		markers = append(markers, marker)
	}

	return MapView{
		Center:  markers[0].Position,
		Zoom:    DefaultMapZoom,
		Markers: markers,
	}, nil
}

func markerPopup(record *LaunchRecord) string {
	return fmt.Sprintf("Mission: %s\nRocket: %s\nLocation: %s",
		OrUnknown(record.Mission),
		OrUnknown(record.Rocket),
		OrUnknown(record.Location))
}
