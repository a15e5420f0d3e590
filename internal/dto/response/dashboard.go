package response

// AdminDashboardResponse carries the platform-wide counters for the
// admin home screen.
type AdminDashboardResponse struct {
	TotalUsers     int64   `json:"total_users"`
	ActiveVendors  int64   `json:"active_vendors"`
	TodaysOrders   int64   `json:"todays_orders"`
	TodaysGMV      float64 `json:"todays_gmv"`
	OnlineVendors  int64   `json:"online_vendors"`
	OfflineVendors int64   `json:"offline_vendors"`
}

type TopItemResponse struct {
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type VendorAnalyticsResponse struct {
	TotalRevenue    float64           `json:"total_revenue"`
	TotalOrders     int64             `json:"total_orders"`
	AverageRating   float64           `json:"average_rating"`
	UniqueCustomers int64             `json:"unique_customers"`
	TopItems        []TopItemResponse `json:"top_items"`
}
