package menu

import (
	"net/http"
	"time"

	"eatkwik/db"
	"eatkwik/rdx"
	"eatkwik/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UploadMenuItemImage accepts a multipart image, stores it with a thumbnail
// under static/menupic, and points the item's imageUrl at it.
func UploadMenuItemImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	id := ps.ByName("id")
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid Menu Item ID format")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "File too large")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Error retrieving file")
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return
	}

	imageURL, err := utils.SaveImageWithThumbnail(file, "menupic", id+"_"+utils.GenerateRandomString(8))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to save image")
		return
	}

	res, err := db.MenuCollection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"imageUrl":  imageURL,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update menu item")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	rdx.RdxDel(listCacheKey)
	utils.RespondSuccess(w, http.StatusOK, utils.M{"imageUrl": imageURL})
}
