package scaling

import "strings"

// unitSynonyms 單位同義詞對照表：小寫拼法 → 標準符號
// 啟動時建立後只讀，不在執行期修改
var unitSynonyms = map[string]string{
	// 重量
	"g":         "g",
	"gram":      "g",
	"grams":     "g",
	"kg":        "kg",
	"kilogram":  "kg",
	"kilograms": "kg",
	"oz":        "oz",
	"ounce":     "oz",
	"ounces":    "oz",
	"lb":        "lb",
	"lbs":       "lb",
	"pound":     "lb",
	"pounds":    "lb",

	// 容量
	"l":           "L",
	"liter":       "L",
	"litre":       "L",
	"liters":      "L",
	"litres":      "L",
	"ml":          "ml",
	"milliliter":  "ml",
	"millilitre":  "ml",
	"milliliters": "ml",
	"millilitres": "ml",

	// 廚房量具
	"tsp":         "tsp",
	"teaspoon":    "tsp",
	"teaspoons":   "tsp",
	"tbsp":        "tbsp",
	"tablespoon":  "tbsp",
	"tablespoons": "tbsp",
	"cup":         "cup",
	"cups":        "cup",
}

// presetUnits 沒有同義詞但仍視為已知單位的 token
var presetUnits = map[string]bool{
	"unit": true,
}

// sizeWords 尺寸詞：當作有效「單位」解析，但不做數值正規化
// 對所有食材一視同仁（2 large Eggs 與 2 large Lemons 處理方式相同）
var sizeWords = map[string]bool{
	"large":       true,
	"medium":      true,
	"small":       true,
	"extra-large": true,
	"xl":          true,
}

// knownUnits 解析器用來判斷某個字是單位還是食材名稱的一部分
var knownUnits = buildKnownUnits()

func buildKnownUnits() map[string]bool {
	known := make(map[string]bool, len(unitSynonyms)+len(presetUnits))
	for token := range unitSynonyms {
		known[token] = true
	}
	for token := range presetUnits {
		known[token] = true
	}
	return known
}

// NormalizeUnit 將單位 token 正規化為標準符號
// 未知 token 原樣回傳，不視為錯誤（很多合法單位沒有同義詞）
func NormalizeUnit(token string) string {
	if canonical, ok := unitSynonyms[strings.ToLower(token)]; ok {
		return canonical
	}
	return token
}

// IsKnownUnit 檢查小寫 token 是否為已知單位
func IsKnownUnit(token string) bool {
	return knownUnits[token]
}

// IsSizeWord 檢查小寫 token 是否為尺寸詞
func IsSizeWord(token string) bool {
	return sizeWords[token]
}
