package menu

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"eatkwik/db"
	"eatkwik/models"
	"eatkwik/rdx"
	"eatkwik/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FeedbackPayload is the POST /api/menu-items/:id/feedback body.
type FeedbackPayload struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

func ValidateFeedback(p FeedbackPayload) map[string]string {
	issues := map[string]string{}
	if strings.TrimSpace(p.UserName) == "" {
		issues["userName"] = "Name is required"
	}
	if p.Rating < 1 || p.Rating > 5 {
		issues["rating"] = "Rating must be between 1 and 5"
	}
	if strings.TrimSpace(p.Comment) == "" {
		issues["comment"] = "Comment is required"
	}
	return issues
}

// AverageRating computes the mean rating; rounding is left to the client.
func AverageRating(feedbacks []models.Feedback) float64 {
	if len(feedbacks) == 0 {
		return 0
	}
	sum := 0
	for _, f := range feedbacks {
		sum += f.Rating
	}
	return float64(sum) / float64(len(feedbacks))
}

// AddFeedback appends a customer rating to an item and refreshes its average.
func AddFeedback(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	id := ps.ByName("id")
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid Menu Item ID format")
		return
	}

	var payload FeedbackPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if issues := ValidateFeedback(payload); len(issues) > 0 {
		utils.RespondIssues(w, "Invalid input data", issues)
		return
	}

	var item models.MenuItem
	err = db.MenuCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		utils.RespondError(w, http.StatusNotFound, "Menu item not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	feedback := models.Feedback{
		ID:        utils.GetUUID(),
		UserID:    payload.UserID,
		UserName:  payload.UserName,
		Rating:    payload.Rating,
		Comment:   payload.Comment,
		CreatedAt: time.Now(),
	}

	feedbacks := append(item.Feedbacks, feedback)
	_, err = db.MenuCollection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"feedbacks":     feedbacks,
		"averageRating": AverageRating(feedbacks),
		"updatedAt":     time.Now(),
	}})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error occurred while saving feedback.")
		return
	}

	rdx.RdxDel(listCacheKey)
	utils.RespondSuccess(w, http.StatusCreated, feedback)
}
