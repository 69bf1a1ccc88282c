package gymstats

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// DeleteResponse reports how many rows a delete removed; 0 means the row was
// missing or belongs to another user.
type DeleteResponse struct {
	Message string `json:"message"`
	Changes int64  `json:"changes"`
}

func NewDeleteResponse(changes int64) DeleteResponse {
	return DeleteResponse{
		Message: "Deleted",
		Changes: changes,
	}
}

// IDFromRequest reads the {id} route variable.
func IDFromRequest(r *http.Request) (int64, error) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		return 0, &ValidationError{Field: "id", Reason: "required"}
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, &ValidationError{Field: "id", Reason: "must be a positive integer"}
	}
	return id, nil
}
