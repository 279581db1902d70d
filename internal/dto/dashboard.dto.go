package dto

// Query projections for the dashboard views.

// CatalogItem is a hairstyle joined with its shop's name; only styles of
// active shops ever reach customers.
type CatalogItem struct {
	ID          uint   `json:"id"`
	OwnerID     uint   `json:"owner_id"`
	Name        string `json:"name"`
	ImagePath   string `json:"image_path"`
	Description string `json:"description"`
	ShopName    string `json:"shop_name"`
}

// OwnerOption is the minimal shop listing customers pick a booking target from.
type OwnerOption struct {
	ID       uint   `json:"id"`
	ShopName string `json:"shop_name"`
}

// CustomerBooking is a booking joined with the shop it targets.
type CustomerBooking struct {
	ID       uint   `json:"id"`
	OwnerID  uint   `json:"owner_id"`
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	TimeSlot string `json:"time_slot"`
	Status   string `json:"status"`
	ShopName string `json:"shop_name"`
}

// OwnerBooking is a booking joined with the registered customer's name.
type OwnerBooking struct {
	ID           uint   `json:"id"`
	CustomerID   uint   `json:"customer_id"`
	Name         string `json:"name"`
	Mobile       string `json:"mobile"`
	TimeSlot     string `json:"time_slot"`
	Status       string `json:"status"`
	CustomerName string `json:"customer_name"`
}
