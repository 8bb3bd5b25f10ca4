package analytics

import (
	"context"
	"net/http"
	"time"

	"eatkwik/db"
	"eatkwik/globals"
	"eatkwik/models"
	"eatkwik/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetDashboard aggregates order data for the admin dashboard. When the
// developer placeholder toggle is set in settings, the canned dataset is
// returned instead of hitting the order store.
func GetDashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var settings models.Settings
	err := db.SettingsCollection.FindOne(ctx, bson.M{"_id": globals.SettingsID}).Decode(&settings)
	if err == nil && settings.UsePlaceholderData {
		utils.RespondSuccess(w, http.StatusOK, PlaceholderData())
		return
	}

	data, err := liveDashboard(ctx)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error occurred while fetching live analytics data.")
		return
	}

	utils.RespondSuccess(w, http.StatusOK, data)
}

func liveDashboard(ctx context.Context) (*models.AnalyticsData, error) {
	dailySales, err := dailySalesLast7Days(ctx)
	if err != nil {
		return nil, err
	}

	peakHours, err := peakOrderingHours(ctx)
	if err != nil {
		return nil, err
	}

	topDishes, err := mostOrderedDishes(ctx)
	if err != nil {
		return nil, err
	}

	total, err := db.OrdersCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	return &models.AnalyticsData{
		DailySales:        dailySales,
		PeakOrderingHours: peakHours,
		MostOrderedDishes: topDishes,
		TotalOrdersCount:  int(total),
	}, nil
}

// dailySalesLast7Days groups sales by calendar day, zero-filling days with
// no orders so charts always have seven points.
func dailySalesLast7Days(ctx context.Context) ([]models.SalesDataPoint, error) {
	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	sevenDaysAgo = time.Date(sevenDaysAgo.Year(), sevenDaysAgo.Month(), sevenDaysAgo.Day(), 0, 0, 0, 0, sevenDaysAgo.Location())

	pipeline := []bson.M{
		{"$match": bson.M{"createdAt": bson.M{"$gte": sevenDaysAgo}}},
		{"$group": bson.M{
			"_id":        bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"totalSales": bson.M{"$sum": "$totalAmount"},
			"orderCount": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	cur, err := db.OrdersCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var raw []struct {
		Date       string  `bson:"_id"`
		TotalSales float64 `bson:"totalSales"`
		OrderCount int     `bson:"orderCount"`
	}
	if err := cur.All(ctx, &raw); err != nil {
		return nil, err
	}

	byDate := make(map[string]models.SalesDataPoint, len(raw))
	for _, p := range raw {
		byDate[p.Date] = models.SalesDataPoint{Date: p.Date, TotalSales: p.TotalSales, OrderCount: p.OrderCount}
	}

	points := make([]models.SalesDataPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i).Format("2006-01-02")
		if p, ok := byDate[date]; ok {
			points = append(points, p)
		} else {
			points = append(points, models.SalesDataPoint{Date: date})
		}
	}
	return points, nil
}

func peakOrderingHours(ctx context.Context) ([]models.PeakHourDataPoint, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":        bson.M{"$hour": "$createdAt"},
			"orderCount": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
		{"$project": bson.M{"_id": 0, "hour": "$_id", "orderCount": 1}},
	}

	cur, err := db.OrdersCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var points []models.PeakHourDataPoint
	if err := cur.All(ctx, &points); err != nil {
		return nil, err
	}
	if points == nil {
		points = []models.PeakHourDataPoint{}
	}
	return points, nil
}

func mostOrderedDishes(ctx context.Context) ([]models.ItemSalesDataPoint, error) {
	pipeline := []bson.M{
		{"$unwind": "$items"},
		{"$group": bson.M{
			"_id":          bson.M{"menuItemId": "$items.menuItemId", "itemName": "$items.name"},
			"quantitySold": bson.M{"$sum": "$items.quantity"},
			"totalRevenue": bson.M{"$sum": bson.M{"$multiply": []any{"$items.quantity", "$items.priceAtOrder"}}},
		}},
		{"$sort": bson.M{"quantitySold": -1}},
		{"$limit": 5},
		{"$project": bson.M{
			"_id":          0,
			"itemName":     "$_id.itemName",
			"quantitySold": 1,
			"totalRevenue": 1,
		}},
	}

	cur, err := db.OrdersCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var points []models.ItemSalesDataPoint
	if err := cur.All(ctx, &points); err != nil {
		return nil, err
	}
	if points == nil {
		points = []models.ItemSalesDataPoint{}
	}
	return points, nil
}
