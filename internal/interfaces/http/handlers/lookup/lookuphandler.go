package lookup

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/application/lookup/usecases"
	"bugtrail/internal/shared/utils"
)

type LookupHandler struct {
	listUC *usecases.ListLookupsUseCase
}

func NewLookupHandler(listUC *usecases.ListLookupsUseCase) *LookupHandler {
	return &LookupHandler{listUC: listUC}
}

// ListLookups handles GET /lookups and returns every lookup set in one
// payload for form population.
func (h *LookupHandler) ListLookups(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
