// SPDX-License-Identifier: MIT

package citymap

import "math"

// RadiusEarth is the mean Earth radius in metres.
const RadiusEarth = 6371000.0

// ComputeDistance returns the great-circle (haversine) distance in metres
// between a and b.
// Complexity: O(1).
func ComputeDistance(a, b GeoLocation) float64 {
	lat1, lon1 := radians(a.Latitude), radians(a.Longitude)
	lat2, lon2 := radians(b.Latitude), radians(b.Longitude)
	dLat, dLon := lat2-lat1, lon2-lon1

	h := math.Pow(math.Sin(dLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	// clamp rounding noise so Asin never sees a value above 1
	h = math.Min(h, 1)

	return RadiusEarth * 2 * math.Asin(math.Sqrt(h))
}

// LatitudeDistance returns the north–south component of the great-circle
// distance between a and b, a lower bound on ComputeDistance.
func LatitudeDistance(a, b GeoLocation) float64 {
	return RadiusEarth * radians(math.Abs(a.Latitude-b.Latitude))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
