package scaling

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"recipe-scaler/internal/pkg/common"
)

// decimalPattern 行首的十進位或整數數量
var decimalPattern = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?`)

// stuckUnitPattern 黏在數字後面的單位：連續字母緊接空白與後續文字（600g Flour）
var stuckUnitPattern = regexp.MustCompile(`^([A-Za-z]+)\s+(\S.*)$`)

// ParseIngredients 將多行自由輸入的食材文字逐行解析為結構化記錄
// 解析失敗的行直接略過，不回報錯誤：使用者手打的文字本來就會夾雜雜行
func ParseIngredients(text string) []common.ParsedIngredientLine {
	var parsed []common.ParsedIngredientLine
	for _, line := range strings.Split(text, "\n") {
		if ingredient, ok := parseLine(line); ok {
			parsed = append(parsed, ingredient)
		}
	}
	return parsed
}

// parseLine 解析單一行，無法取出名稱時回傳 ok=false
func parseLine(line string) (common.ParsedIngredientLine, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return common.ParsedIngredientLine{}, false
	}

	quantity, rest := extractQuantity(trimmed)

	// 只有數量、沒有名稱的行不算食材
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return common.ParsedIngredientLine{}, false
	}

	unit, name := detectUnit(rest, quantity)

	name = titleCaseWords(name)
	if name == "" {
		return common.ParsedIngredientLine{}, false
	}

	return common.ParsedIngredientLine{
		Ingredient: common.Ingredient{
			Name:     name,
			Quantity: quantity,
			Unit:     unit,
		},
		OriginalLine: line,
	}, true
}

// extractQuantity 從行首貪婪取出數量，剩餘文字一併回傳
// 先嘗試分數（含帶分數），再退回純十進位；順序刻意如此，
// 否則 "1 1/2 cups Flour" 會被誤拆成數量 1 加上以 "1/2" 開頭的名稱
func extractQuantity(s string) (float64, string) {
	if value, consumed, ok := ParseFraction(s); ok {
		return value, s[consumed:]
	}

	if match := decimalPattern.FindString(s); match != "" {
		value, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return 0, s
		}
		rest := s[len(match):]

		// 十進位後緊貼 unicode 分數字符也視為帶分數
		if r, size := utf8.DecodeRuneInString(rest); r != utf8.RuneError {
			if frac, found := unicodeFractions[r]; found {
				return value + frac, rest[size:]
			}
		}
		return value, rest
	}

	// 沒有數量，整行都是剩餘文字
	return 0, s
}

// detectUnit 依序嘗試三種單位形式，先中先贏
func detectUnit(rest string, quantity float64) (unit, name string) {
	// 黏著單位：600g Self Raising Flour
	if m := stuckUnitPattern.FindStringSubmatch(rest); m != nil {
		if IsKnownUnit(strings.ToLower(m[1])) {
			return NormalizeUnit(m[1]), m[2]
		}
	}

	// 行首單字是單位或尺寸詞，且後面還有字
	// 單字行永遠不會被拆成「數量＋單位、沒有名稱」
	fields := strings.Fields(rest)
	if len(fields) >= 2 {
		first := strings.ToLower(fields[0])
		if IsKnownUnit(first) {
			return NormalizeUnit(first), strings.Join(fields[1:], " ")
		}
		if IsSizeWord(first) {
			// 尺寸詞小寫保留，不做數值正規化
			return first, strings.Join(fields[1:], " ")
		}
	}

	// 找不到單位：整段剩餘文字是名稱
	if quantity > 0 {
		return "unit", rest
	}
	return "", rest
}

// titleCaseWords 每個字首字母大寫，其餘字元保持原樣
// 刻意不處理字中間的大寫（Self Raising → Self Raising）
func titleCaseWords(s string) string {
	fields := strings.Fields(s)
	for i, word := range fields {
		r, size := utf8.DecodeRuneInString(word)
		if r != utf8.RuneError {
			fields[i] = string(unicode.ToUpper(r)) + word[size:]
		}
	}
	return strings.Join(fields, " ")
}
