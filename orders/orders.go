package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"eatkwik/db"
	"eatkwik/live"
	"eatkwik/models"
	"eatkwik/mq"
	"eatkwik/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetOrders returns orders newest first, paginated via page/limit query
// params.
func GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	skip, limit := utils.ParsePagination(r, 100, 500)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	orderList, err := utils.FindAndDecode[models.Order](ctx, db.OrdersCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error occurred while fetching orders.")
		return
	}
	if orderList == nil {
		orderList = []models.Order{}
	}

	utils.RespondSuccess(w, http.StatusOK, orderList)
}

// findOrder resolves id as an ObjectID hex first, then as an order number.
func findOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order

	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		err := db.OrdersCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
		if err == nil {
			return &order, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}

	err := db.OrdersCollection.FindOne(ctx, bson.M{"orderNumber": id}).Decode(&order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder validates and inserts a new order, then notifies the live
// order board.
func CreateOrder(hub *live.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx := r.Context()

		var payload CreatePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
			return
		}

		if issues := ValidateCreate(payload); len(issues) > 0 {
			utils.RespondIssues(w, "Invalid input data", issues)
			return
		}

		status := payload.Status
		if status == "" {
			status = models.StatusPlaced
		}

		now := time.Now()
		order := models.Order{
			ID:                    primitive.NewObjectID(),
			OrderNumber:           utils.GenerateOrderNumber(),
			Items:                 payload.Items,
			CustomerID:            payload.CustomerID,
			CustomerName:          payload.CustomerName,
			CustomerContact:       payload.CustomerContact,
			Status:                status,
			Notes:                 payload.Notes,
			TotalAmount:           ComputeTotal(payload.Items),
			DeliveryAddress:       payload.DeliveryAddress,
			EstimatedDeliveryTime: payload.EstimatedDeliveryTime,
			CreatedAt:             now,
			UpdatedAt:             now,
		}

		// The order number has millisecond granularity; retry with a random
		// suffix if the unique index rejects it.
		var insertErr error
		for attempt := 0; attempt < 3; attempt++ {
			if _, insertErr = db.OrdersCollection.InsertOne(ctx, order); insertErr == nil {
				break
			}
			if !mongo.IsDuplicateKeyError(insertErr) {
				break
			}
			order.OrderNumber = "EK" + utils.GenerateRandomDigitString(6)
		}
		if insertErr != nil {
			if strings.Contains(insertErr.Error(), "duplicate key") {
				utils.RespondError(w, http.StatusBadRequest, insertErr.Error())
				return
			}
			utils.RespondError(w, http.StatusInternalServerError, "Server error occurred while creating order.")
			return
		}

		go mq.Emit(ctx, "order-created", models.Index{
			EntityType: "order", EntityId: order.ID.Hex(), Method: "POST",
		})
		hub.PublishOrderEvent("order-created", &order)

		utils.RespondSuccess(w, http.StatusCreated, order)
	}
}

// GetOrder fetches a single order by internal id or order number.
func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	order, err := findOrder(r.Context(), ps.ByName("id"))
	if err == mongo.ErrNoDocuments {
		utils.RespondError(w, http.StatusNotFound, "Order not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.RespondSuccess(w, http.StatusOK, order)
}

// UpdateOrder applies a partial update. Status changes pass the lifecycle
// gate and totals are recomputed when the line items change.
func UpdateOrder(hub *live.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ctx := r.Context()
		id := ps.ByName("id")
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid Order ID format")
			return
		}

		var payload UpdatePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
			return
		}

		if issues := ValidateUpdate(payload); len(issues) > 0 {
			utils.RespondIssues(w, "Invalid input data", issues)
			return
		}

		var existing models.Order
		err = db.OrdersCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&existing)
		if err == mongo.ErrNoDocuments {
			utils.RespondError(w, http.StatusNotFound, "Order not found")
			return
		} else if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Server error")
			return
		}

		set := bson.M{"updatedAt": time.Now()}

		if payload.Status != nil {
			if err := CanTransition(existing.Status, *payload.Status); err != nil {
				utils.RespondIssues(w, "Invalid input data", map[string]string{"status": err.Error()})
				return
			}
			set["status"] = *payload.Status
		}
		if payload.CustomerName != nil {
			set["customerName"] = *payload.CustomerName
		}
		if payload.CustomerContact != nil {
			set["customerContact"] = *payload.CustomerContact
		}
		if payload.Notes != nil {
			set["notes"] = *payload.Notes
		}
		if payload.DeliveryAddress != nil {
			set["deliveryAddress"] = *payload.DeliveryAddress
		}
		if payload.EstimatedDeliveryTime != nil {
			set["estimatedDeliveryTime"] = *payload.EstimatedDeliveryTime
		}

		// totalAmount is derived from line items, never trusted from the
		// client. A submitted total must agree with the recomputation.
		items := existing.Items
		if payload.Items != nil {
			items = payload.Items
			set["items"] = payload.Items
		}
		computed := ComputeTotal(items)
		if payload.TotalAmount != nil && !TotalsMatch(*payload.TotalAmount, computed) {
			utils.RespondIssues(w, "Invalid input data", map[string]string{
				"totalAmount": "Total amount does not match sum of line items",
			})
			return
		}
		if payload.Items != nil || payload.TotalAmount != nil {
			set["totalAmount"] = computed
		}

		res := db.OrdersCollection.FindOneAndUpdate(
			ctx,
			bson.M{"_id": oid},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		)

		var updated models.Order
		if err := res.Decode(&updated); err == mongo.ErrNoDocuments {
			utils.RespondError(w, http.StatusNotFound, "Order not found")
			return
		} else if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Server error occurred while updating order.")
			return
		}

		go mq.Emit(ctx, "order-edited", models.Index{
			EntityType: "order", EntityId: id, Method: "PUT",
		})
		if payload.Status != nil {
			hub.PublishOrderEvent("order-status-changed", &updated)
		}

		utils.RespondSuccess(w, http.StatusOK, updated)
	}
}

// DeleteOrder removes an order entirely. Admin only on the UI side.
func DeleteOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	id := ps.ByName("id")
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid Order ID format")
		return
	}

	res, err := db.OrdersCollection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondError(w, http.StatusNotFound, "Order not found")
		return
	}

	go mq.Emit(ctx, "order-deleted", models.Index{
		EntityType: "order", EntityId: id, Method: "DELETE",
	})

	utils.RespondSuccess(w, http.StatusOK, utils.M{"message": "Order deleted successfully"})
}
