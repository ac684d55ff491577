package scaling

import (
	"context"

	"recipe-scaler/internal/core/cache"
	"recipe-scaler/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 縮放引擎的服務門面
// 引擎本體是純函數；日誌與緩存只在這一層，引擎維持可重入、無副作用
type Service struct {
	cache cache.Cache
}

// NewService 創建縮放服務，cache 可為 nil
func NewService(c cache.Cache) *Service {
	return &Service{cache: c}
}

// ParseIngredients 解析自由輸入的食材文字，結果依文字哈希緩存
func (s *Service) ParseIngredients(ctx context.Context, text string) []common.ParsedIngredientLine {
	key := cache.Key("parse", text)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			var parsed []common.ParsedIngredientLine
			if err := common.ParseJSON(cached, &parsed); err == nil {
				return parsed
			}
			// 緩存內容壞掉就重算
			common.LogWarn("快取內容解析失敗", zap.String("鍵", key))
		}
	}

	parsed := ParseIngredients(text)

	common.LogInfo("食材文字解析完成",
		zap.Int("lines_parsed", len(parsed)),
	)

	if s.cache != nil && len(parsed) > 0 {
		if data, err := common.ToJSON(parsed); err == nil {
			if err := s.cache.Set(ctx, key, data); err != nil {
				common.LogWarn("快取寫入失敗", zap.Error(err))
			}
		}
	}

	return parsed
}

// ScaleRecipe 以指定倍率縮放食材列表
func (s *Service) ScaleRecipe(ctx context.Context, ingredients []common.Ingredient, factor float64) ([]common.Ingredient, error) {
	scaled, err := ScaleIngredients(ingredients, factor)
	if err != nil {
		common.LogWarn("縮放倍率不合法",
			zap.Float64("factor", factor),
			zap.Error(err),
		)
		return nil, err
	}

	common.LogInfo("食譜縮放完成",
		zap.Float64("factor", factor),
		zap.Int("ingredient_count", len(scaled)),
	)
	common.LogDebug("縮放結果",
		zap.String("ingredients", common.FormatIngredients(scaled)),
	)
	return scaled, nil
}

// ScaleRecipeByAmount 由可用食材量推導倍率並縮放整份食譜
func (s *Service) ScaleRecipeByAmount(ctx context.Context, ingredients []common.Ingredient, originalQuantity, availableQuantity float64) (float64, []common.Ingredient, error) {
	factor, err := ScaleFactorFromAmount(originalQuantity, availableQuantity)
	if err != nil {
		common.LogWarn("原始數量不合法",
			zap.Float64("original_quantity", originalQuantity),
			zap.Error(err),
		)
		return 0, nil, err
	}

	scaled, err := ScaleIngredients(ingredients, factor)
	if err != nil {
		return 0, nil, err
	}

	common.LogInfo("依可用量縮放完成",
		zap.Float64("factor", factor),
		zap.Int("ingredient_count", len(scaled)),
	)
	return factor, scaled, nil
}

// ContainerVolume 計算容器總容量（杯）
func (s *Service) ContainerVolume(ctx context.Context, container common.Container) float64 {
	volume := ContainerVolume(container)

	common.LogDebug("容器容量計算完成",
		zap.Float64("volume_cups", volume),
	)
	return volume
}

// ContainerScale 計算來源到目標容器的縮放倍率
func (s *Service) ContainerScale(ctx context.Context, source, target common.Container) common.ScaleResult {
	result := ContainerScaleFactor(source, target)

	common.LogInfo("容器縮放計算完成",
		zap.Float64("factor", result.Factor),
		zap.String("display", result.Display),
	)
	return result
}
