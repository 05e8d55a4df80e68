package model

import "math"

const BranchStatusActive = "active"

const earthRadiusKm = 6371.0

type Branch struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Status    string  `json:"status"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BranchShopMapping overrides a restaurant's default shop id for one branch.
type BranchShopMapping struct {
	BranchID     int64  `json:"branchId"`
	RestaurantID int64  `json:"restaurantId"`
	ShopID       string `json:"shopId"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// DistanceKm is the great-circle distance between two points, rounded to 2 decimals.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*100) / 100
}

// NearestBranch picks the closest active branch. ok is false when none is active.
func NearestBranch(branches []Branch, lat, lng float64) (nearest Branch, distance float64, ok bool) {
	for _, b := range branches {
		if b.Status != BranchStatusActive {
			continue
		}
		d := DistanceKm(lat, lng, b.Latitude, b.Longitude)
		if !ok || d < distance {
			nearest, distance, ok = b, d, true
		}
	}
	return nearest, distance, ok
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
