package dessert

import (
	"context"
	"net/http"

	"dessert-catalog/internal/core/mealdb"
	"dessert-catalog/internal/core/recipe"
	"dessert-catalog/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Catalog 甜點目錄服務
type Catalog interface {
	ListDesserts(ctx context.Context) ([]recipe.RecipeSummary, error)
	GetDessert(ctx context.Context, id string) (*recipe.RecipeDetail, error)
}

// Handler 甜點 API 處理器
type Handler struct {
	catalog Catalog
	debug   bool
}

// ListResponse 甜點列表回應
type ListResponse struct {
	Desserts []recipe.RecipeSummary `json:"desserts"`
	Count    int                    `json:"count"`
}

// detailRequest 路徑參數
type detailRequest struct {
	ID string `uri:"id" binding:"required"`
}

// NewHandler 創建甜點 API 處理器，debug 為 true 時錯誤回應附上原始錯誤
func NewHandler(catalog Catalog, debug bool) *Handler {
	return &Handler{
		catalog: catalog,
		debug:   debug,
	}
}

// HandleList 處理 GET /desserts
func (h *Handler) HandleList(c *gin.Context) {
	desserts, err := h.catalog.ListDesserts(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Desserts: desserts,
		Count:    len(desserts),
	})
}

// HandleDetail 處理 GET /desserts/:id
func (h *Handler) HandleDetail(c *gin.Context) {
	var req detailRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.writeError(c, common.ErrInvalidRequest.WithErr(err))
		return
	}

	detail, err := h.catalog.GetDessert(c.Request.Context(), req.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	apiErr := ToAPIError(err)
	_ = c.Error(err)

	common.LogWarn("甜點請求失敗",
		zap.String("request_id", requestid.Get(c)),
		zap.String("path", c.Request.URL.Path),
		zap.String("code", apiErr.Code),
		zap.String("kind", string(mealdb.KindOf(err))),
		zap.Error(err),
	)

	c.AbortWithStatusJSON(apiErr.Status, apiErr.Response(h.debug))
}

// ToAPIError 將目錄錯誤轉為 API 錯誤
func ToAPIError(err error) *common.CustomError {
	switch mealdb.KindOf(err) {
	case mealdb.KindInvalidArgument:
		return common.ErrInvalidRequest.WithErr(err)
	case mealdb.KindEmptyResult:
		return common.ErrNotFound.WithErr(err)
	case mealdb.KindTransport:
		return common.ErrUpstreamUnavailable.WithErr(err)
	case mealdb.KindDecode:
		return common.ErrUpstreamBadResponse.WithErr(err)
	case mealdb.KindCancelled:
		return common.ErrGatewayTimeout.WithErr(err)
	}
	return common.AsCustomError(err)
}
