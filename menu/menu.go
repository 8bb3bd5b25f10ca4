package menu

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"eatkwik/db"
	"eatkwik/models"
	"eatkwik/mq"
	"eatkwik/rdx"
	"eatkwik/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listCacheKey = "menu:items:all"

// GetMenuItems returns the full catalog, newest first.
func GetMenuItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Check the list cache first
	if cached, err := rdx.RdxGet(listCacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	items, err := utils.FindAndDecode[models.MenuItem](ctx, db.MenuCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error occurred while fetching menu items.")
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}

	envelope := utils.Envelope{Success: true, Data: items}
	if data, err := json.Marshal(envelope); err == nil {
		rdx.RdxSet(listCacheKey, string(data))
	}

	utils.RespondWithJSON(w, http.StatusOK, envelope)
}

// CreateMenuItem validates and inserts a new catalog item.
func CreateMenuItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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

	availability := true
	if payload.Availability != nil {
		availability = *payload.Availability
	}
	tags := payload.Tags
	if tags == nil {
		tags = []string{}
	}
	imageURL := payload.ImageURL
	if imageURL == "" {
		imageURL = utils.PlaceholderImageURL(payload.Name)
	}

	now := time.Now()
	item := models.MenuItem{
		ID:            primitive.NewObjectID(),
		Name:          payload.Name,
		Category:      payload.Category,
		Price:         payload.Price,
		Description:   payload.Description,
		Ingredients:   payload.Ingredients,
		Tags:          tags,
		Availability:  availability,
		ImageURL:      imageURL,
		Feedbacks:     []models.Feedback{},
		AverageRating: 0,
		PrepTime:      payload.PrepTime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := db.MenuCollection.InsertOne(ctx, item); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error occurred while creating menu item.")
		return
	}

	rdx.RdxDel(listCacheKey)
	go mq.Emit(ctx, "menuitem-created", models.Index{
		EntityType: "menuitem", EntityId: item.ID.Hex(), Method: "POST",
	})

	utils.RespondSuccess(w, http.StatusCreated, item)
}

// GetMenuItem fetches a single catalog item by id.
func GetMenuItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid Menu Item ID format")
		return
	}

	var item models.MenuItem
	err = db.MenuCollection.FindOne(r.Context(), bson.M{"_id": oid}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		utils.RespondError(w, http.StatusNotFound, "Menu item not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.RespondSuccess(w, http.StatusOK, item)
}

// EditMenuItem applies a partial update to a catalog item.
func EditMenuItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	id := ps.ByName("id")
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid Menu Item ID format")
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

	set := BuildUpdate(payload)
	set["updatedAt"] = time.Now()

	res := db.MenuCollection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated models.MenuItem
	if err := res.Decode(&updated); err == mongo.ErrNoDocuments {
		utils.RespondError(w, http.StatusNotFound, "Menu item not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error occurred while updating menu item.")
		return
	}

	rdx.RdxDel(listCacheKey)
	go mq.Emit(ctx, "menuitem-edited", models.Index{
		EntityType: "menuitem", EntityId: id, Method: "PUT",
	})

	utils.RespondSuccess(w, http.StatusOK, updated)
}

// DeleteMenuItem removes a catalog item.
func DeleteMenuItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	id := ps.ByName("id")
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid Menu Item ID format")
		return
	}

	res, err := db.MenuCollection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	rdx.RdxDel(listCacheKey)
	go mq.Emit(ctx, "menuitem-deleted", models.Index{
		EntityType: "menuitem", EntityId: id, Method: "DELETE",
	})

	utils.RespondSuccess(w, http.StatusOK, utils.M{"message": "Menu item deleted successfully"})
}
