package travelerservice

// Known user roles on the platform
const (
	RoleTraveler        = "traveler"
	RoleGuide           = "guide"
	RoleRestaurantOwner = "restaurant_owner"
	RoleHotelOwner      = "hotel_owner"
	RoleAdmin           = "admin"
)

// User is the profile record as served by the user service
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsTraveler reports whether the user holds the traveler role.
func (u *User) IsTraveler() bool {
	return u.Role == RoleTraveler
}

// ErrorResponse is the error payload returned by the user service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
