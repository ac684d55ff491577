package scaling

import (
	"math"

	"recipe-scaler/internal/pkg/common"
)

// ScaleIngredients 將每個食材的數量乘上倍率，名稱與單位原樣帶過
// 倍率必須大於 0；小於等於 0 是呼叫端錯誤，直接拒絕而不是默默修正
func ScaleIngredients(ingredients []common.Ingredient, factor float64) ([]common.Ingredient, error) {
	if factor <= 0 {
		return nil, common.NewValidationError("scale factor must be greater than 0")
	}

	scaled := make([]common.Ingredient, len(ingredients))
	for i, ing := range ingredients {
		scaled[i] = common.Ingredient{
			Name:     ing.Name,
			Quantity: round2(ing.Quantity * factor),
			Unit:     ing.Unit,
		}
	}
	return scaled, nil
}

// ScaleFactorFromAmount 由「我只有 X 份的某食材」推導整體縮放倍率
// 兩個數量都必須大於 0，否則推導出的倍率本身就不合法
func ScaleFactorFromAmount(originalQuantity, availableQuantity float64) (float64, error) {
	if originalQuantity <= 0 {
		return 0, common.NewValidationError("original quantity must be greater than 0")
	}
	if availableQuantity <= 0 {
		return 0, common.NewValidationError("available quantity must be greater than 0")
	}
	return availableQuantity / originalQuantity, nil
}

// round2 四捨五入到小數點後兩位，只在最終輸出時使用
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
