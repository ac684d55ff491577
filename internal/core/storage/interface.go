// Package storage 定義引擎外部協作者的介面
// 持久化、照片簽名網址、推播與 AI 建議都由外部系統實作，
// 引擎只進出純資料結構，不在此呼叫任何實作
package storage

import (
	"context"

	"recipe-scaler/internal/pkg/common"
)

// RecipeStore 食譜與變體的持久化
type RecipeStore interface {
	// SaveIngredients 保存一份解析結果
	SaveIngredients(ctx context.Context, recipeID string, ingredients []common.ParsedIngredientLine) error

	// LoadIngredients 讀取一份食譜的食材
	LoadIngredients(ctx context.Context, recipeID string) ([]common.Ingredient, error)
}

// PhotoStore 照片上傳／下載網址簽名
type PhotoStore interface {
	// SignedUploadURL 取得上傳網址
	SignedUploadURL(ctx context.Context, recipeID string) (string, error)

	// SignedDownloadURL 取得下載網址
	SignedDownloadURL(ctx context.Context, photoID string) (string, error)
}

// Notifier 推播與計時提醒
type Notifier interface {
	// NotifyTimer 送出烘焙計時提醒
	NotifyTimer(ctx context.Context, userID string, message string) error
}

// AdvisoryProvider AI 烘焙建議
type AdvisoryProvider interface {
	// Advise 以結構化食材換取建議文字
	Advise(ctx context.Context, ingredients []common.Ingredient, question string) (string, error)
}
