package recipe

import (
	"context"
	"sort"
	"time"

	"dessert-catalog/internal/pkg/common"

	"go.uber.org/zap"
)

// Fetcher 甜點目錄的資料來源
type Fetcher interface {
	FetchSummaries(ctx context.Context) ([]RecipeSummary, error)
	FetchDetail(ctx context.Context, id string) (*RecipeDetail, error)
}

// Service 甜點目錄服務，供 HTTP API 與 CLI 使用
type Service struct {
	fetcher Fetcher
}

// NewService 創建甜點目錄服務
func NewService(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// ListDesserts 取得甜點列表，依名稱遞增排序（區分大小寫）
func (s *Service) ListDesserts(ctx context.Context) ([]RecipeSummary, error) {
	start := time.Now()
	summaries, err := s.fetcher.FetchSummaries(ctx)
	if err != nil {
		return nil, err
	}

	SortByName(summaries)

	common.LogDebug("甜點列表已取得",
		zap.Int("count", len(summaries)),
		zap.Duration("耗時", time.Since(start)),
	)
	return summaries, nil
}

// GetDessert 取得單一甜點詳細資料
func (s *Service) GetDessert(ctx context.Context, id string) (*RecipeDetail, error) {
	detail, err := s.fetcher.FetchDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	common.LogDebug("甜點詳細資料已取得",
		zap.String("id", detail.ID),
		zap.Int("ingredients", len(detail.Ingredients)),
		zap.Int("tags", len(detail.Tags)),
	)
	return detail, nil
}

// SortByName 依名稱以位元組順序遞增排序
func SortByName(summaries []RecipeSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})
}
