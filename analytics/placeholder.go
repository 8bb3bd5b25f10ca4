package analytics

import (
	"time"

	"eatkwik/models"
)

// PlaceholderData is the canned dashboard shown while the developer toggle
// is on, sized to look like a moderately busy week.
func PlaceholderData() *models.AnalyticsData {
	daily := make([]models.SalesDataPoint, 0, 7)
	sales := []float64{18200, 24500, 31000, 27800, 42100, 55600, 48900}
	counts := []int{23, 31, 38, 35, 52, 68, 61}
	for i := 6; i >= 0; i-- {
		daily = append(daily, models.SalesDataPoint{
			Date:       time.Now().AddDate(0, 0, -i).Format("2006-01-02"),
			TotalSales: sales[6-i],
			OrderCount: counts[6-i],
		})
	}

	weekly := make([]models.SalesDataPoint, 0, 4)
	weeklySales := []float64{148000, 176000, 201000, 232000}
	weeklyCounts := []int{196, 221, 254, 287}
	for i := 3; i >= 0; i-- {
		weekly = append(weekly, models.SalesDataPoint{
			Date:       time.Now().AddDate(0, 0, -7*i).Format("2006-01-02"),
			TotalSales: weeklySales[3-i],
			OrderCount: weeklyCounts[3-i],
		})
	}

	// Lunch and dinner humps
	peak := make([]models.PeakHourDataPoint, 0, 24)
	hourCounts := []int{
		0, 0, 0, 0, 0, 0, 1, 2, 4, 6, 9, 18,
		26, 22, 12, 7, 6, 8, 19, 31, 28, 15, 6, 2,
	}
	for hour, count := range hourCounts {
		peak = append(peak, models.PeakHourDataPoint{Hour: hour, OrderCount: count})
	}

	return &models.AnalyticsData{
		DailySales:  daily,
		WeeklySales: weekly,
		MostOrderedDishes: []models.ItemSalesDataPoint{
			{ItemName: "Margherita Pizza", QuantitySold: 142, TotalRevenue: 70858},
			{ItemName: "Butter Chicken", QuantitySold: 118, TotalRevenue: 64782},
			{ItemName: "Caesar Salad", QuantitySold: 96, TotalRevenue: 28704},
			{ItemName: "Masala Dosa", QuantitySold: 87, TotalRevenue: 17313},
			{ItemName: "Chocolate Lava Cake", QuantitySold: 74, TotalRevenue: 14726},
		},
		CategoryRevenue: []models.CategorySalesDataPoint{
			{CategoryName: "Main Courses", TotalRevenue: 182000},
			{CategoryName: "Appetizers", TotalRevenue: 54000},
			{CategoryName: "Desserts", TotalRevenue: 38000},
			{CategoryName: "Beverages", TotalRevenue: 27000},
		},
		PeakOrderingHours: peak,
		TotalOrdersCount:  1287,
	}
}
