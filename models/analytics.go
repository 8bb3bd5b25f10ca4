package models

// SalesDataPoint is one day (or week) of aggregated sales.
type SalesDataPoint struct {
	Date       string  `json:"date" bson:"date"`
	TotalSales float64 `json:"totalSales" bson:"totalSales"`
	OrderCount int     `json:"orderCount" bson:"orderCount"`
}

type ItemSalesDataPoint struct {
	ItemName     string  `json:"itemName" bson:"itemName"`
	QuantitySold int     `json:"quantitySold" bson:"quantitySold"`
	TotalRevenue float64 `json:"totalRevenue" bson:"totalRevenue"`
}

type CategorySalesDataPoint struct {
	CategoryName string  `json:"categoryName" bson:"categoryName"`
	TotalRevenue float64 `json:"totalRevenue" bson:"totalRevenue"`
}

type PeakHourDataPoint struct {
	Hour       int `json:"hour" bson:"hour"`
	OrderCount int `json:"orderCount" bson:"orderCount"`
}

// AnalyticsData is the dashboard payload.
type AnalyticsData struct {
	DailySales        []SalesDataPoint         `json:"dailySales"`
	WeeklySales       []SalesDataPoint         `json:"weeklySales,omitempty"`
	MostOrderedDishes []ItemSalesDataPoint     `json:"mostOrderedDishes"`
	CategoryRevenue   []CategorySalesDataPoint `json:"categoryRevenue,omitempty"`
	PeakOrderingHours []PeakHourDataPoint      `json:"peakOrderingHours"`
	TotalOrdersCount  int                      `json:"totalOrdersCount"`
}
