package mealdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"dessert-catalog/internal/core/recipe"
	"dessert-catalog/internal/infrastructure/config"
	"dessert-catalog/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	filterPath = "/filter.php"
	lookupPath = "/lookup.php"

	// 錯誤中保留的回應片段長度
	maxPayloadFragment = 512
)

// Client TheMealDB API 客戶端
// 不保存跨呼叫的可變狀態，可同時被多個 goroutine 使用
type Client struct {
	client  *resty.Client
	baseURL string
}

// envelope 上游回應的外層結構
// meals 保留原始 JSON 以區分欄位缺少與 null
type envelope struct {
	Meals json.RawMessage `json:"meals"`
}

// NewClient 創建 TheMealDB 客戶端
func NewClient(cfg config.MealDBConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &Client{
		client:  client,
		baseURL: baseURL,
	}
}

// BaseURL 回傳上游 API 位址
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchSummaries 取得甜點分類的食譜列表
// ID 或名稱為空的項目會被略過；回傳順序不保證
func (c *Client) FetchSummaries(ctx context.Context) ([]recipe.RecipeSummary, error) {
	const op = "FetchSummaries"

	body, err := c.get(ctx, op, filterPath, "c", recipe.DessertCategory)
	if err != nil {
		return nil, err
	}

	items, present, err := decodeMeals(body)
	if err != nil {
		return nil, decodeError(op, body, err)
	}
	if !present {
		return nil, decodeError(op, body, errors.New(`missing "meals" field`))
	}

	summaries := make([]recipe.RecipeSummary, 0, len(items))
	skipped := 0
	for _, item := range items {
		var raw recipe.RawSummary
		if err := common.ParseJSONBytes(item, &raw); err != nil {
			return nil, decodeError(op, item, err)
		}
		if raw.ID == nil || raw.Name == nil {
			return nil, decodeError(op, item, errors.New(`"idMeal" and "strMeal" are required`))
		}

		summary, ok := recipe.NormalizeSummary(raw)
		if !ok {
			skipped++
			continue
		}
		summaries = append(summaries, summary)
	}

	if skipped > 0 {
		common.LogDebug("略過缺少 ID 或名稱的食譜",
			zap.Int("skipped", skipped),
			zap.Int("kept", len(summaries)),
		)
	}

	return summaries, nil
}

// FetchDetail 取得單一食譜詳細資料
func (c *Client) FetchDetail(ctx context.Context, id string) (*recipe.RecipeDetail, error) {
	const op = "FetchDetail"

	if id == "" {
		return nil, &Error{Kind: KindInvalidArgument, Op: op, Err: errors.New("id is required")}
	}

	body, err := c.get(ctx, op, lookupPath, "i", id)
	if err != nil {
		return nil, err
	}

	items, present, err := decodeMeals(body)
	if err != nil {
		return nil, decodeError(op, body, err)
	}
	if !present {
		return nil, decodeError(op, body, errors.New(`missing "meals" field`))
	}

	switch len(items) {
	case 0:
		return nil, &Error{
			Kind:    KindEmptyResult,
			Op:      op,
			Payload: common.Fragment(body, maxPayloadFragment),
			Err:     fmt.Errorf("no meal matches id %q", id),
		}
	case 1:
	default:
		return nil, decodeError(op, body, fmt.Errorf("expected 1 meal, got %d", len(items)))
	}

	var raw recipe.RawMeal
	if err := common.ParseJSONBytes(items[0], &raw); err != nil {
		return nil, decodeError(op, items[0], err)
	}
	if raw.ID == nil || raw.Name == nil {
		return nil, decodeError(op, items[0], errors.New(`"idMeal" and "strMeal" are required`))
	}

	detail := recipe.Normalize(raw)
	return &detail, nil
}

// Close 釋放閒置連線
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}

// get 發送 GET 請求，只接受 200 回應
func (c *Client) get(ctx context.Context, op, path, key, value string) ([]byte, error) {
	start := time.Now()

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam(key, value).
		Get(path)

	if err != nil {
		kind := KindTransport
		if ctx.Err() != nil {
			// 呼叫端取消，不視為上游失敗
			kind = KindCancelled
			err = ctx.Err()
		}
		e := &Error{Kind: kind, Op: op, Err: err}
		common.LogUpstreamCall(op, time.Since(start), e, zap.String("path", path))
		return nil, e
	}

	body := resp.Body()
	if resp.StatusCode() != http.StatusOK {
		e := &Error{
			Kind:       KindTransport,
			Op:         op,
			StatusCode: resp.StatusCode(),
			Payload:    common.Fragment(body, maxPayloadFragment),
			Err:        fmt.Errorf("unexpected status %s", resp.Status()),
		}
		common.LogUpstreamCall(op, time.Since(start), e, zap.String("path", path))
		return nil, e
	}

	common.LogUpstreamCall(op, time.Since(start), nil,
		zap.String("path", path),
		zap.Int("bytes", len(body)),
	)
	return body, nil
}

// decodeMeals 解析外層結構
// present 為 false 表示沒有 meals 欄位；meals 為 null 時回傳空陣列
func decodeMeals(body []byte) (items []json.RawMessage, present bool, err error) {
	var env envelope
	if err := common.ParseJSONBytes(body, &env); err != nil {
		return nil, false, err
	}
	if len(env.Meals) == 0 {
		return nil, false, nil
	}
	if string(env.Meals) == "null" {
		return nil, true, nil
	}
	if err := common.ParseJSONBytes(env.Meals, &items); err != nil {
		return nil, true, err
	}
	return items, true, nil
}

func decodeError(op string, payload []byte, err error) *Error {
	return &Error{
		Kind:    KindDecode,
		Op:      op,
		Payload: common.Fragment(payload, maxPayloadFragment),
		Err:     err,
	}
}
