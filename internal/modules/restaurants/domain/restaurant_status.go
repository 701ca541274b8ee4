package domain

// RestaurantStatus captures whether the restaurant is currently serving.
type RestaurantStatus string

const (
	RestaurantStatusOpen   RestaurantStatus = "OPEN"
	RestaurantStatusClosed RestaurantStatus = "CLOSED"
)

func statusFor(open bool) RestaurantStatus {
	if open {
		return RestaurantStatusOpen
	}
	return RestaurantStatusClosed
}
