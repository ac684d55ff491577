package scaling

import (
	"unicode/utf8"
)

// unicodeFractions 單一 unicode 分數字符對應的精確十進位值
var unicodeFractions = map[rune]float64{
	'½': 0.5,
	'⅓': 1.0 / 3.0,
	'⅔': 2.0 / 3.0,
	'¼': 0.25,
	'¾': 0.75,
	'⅕': 0.2,
	'⅖': 0.4,
	'⅗': 0.6,
	'⅘': 0.8,
	'⅙': 1.0 / 6.0,
	'⅚': 5.0 / 6.0,
	'⅛': 0.125,
	'⅜': 0.375,
	'⅝': 0.625,
	'⅞': 0.875,
}

// ParseFraction 解析字串開頭的分數，回傳數值與消耗的位元組長度
// 支援 unicode 分數字符（½）、ASCII 分數（1/4）以及帶分數（1 1/2、1½）
// 分母為 0 視為找不到分數，不會除以零
// 此層不做四捨五入，縮放輸出時才處理
func ParseFraction(s string) (value float64, consumed int, ok bool) {
	if s == "" {
		return 0, 0, false
	}

	// 開頭直接是 unicode 分數字符
	if r, size := utf8.DecodeRuneInString(s); r != utf8.RuneError {
		if v, found := unicodeFractions[r]; found {
			return v, size, true
		}
	}

	// 開頭是整數，檢查後面是否接著分數部分
	intLen := leadingDigits(s)
	if intLen == 0 {
		return 0, 0, false
	}
	whole := parseDigits(s[:intLen])
	rest := s[intLen:]

	// 整數緊貼 unicode 分數字符（無空格）：1½
	if r, size := utf8.DecodeRuneInString(rest); r != utf8.RuneError {
		if v, found := unicodeFractions[r]; found {
			return whole + v, intLen + size, true
		}
	}

	// 純 ASCII 分數：1/4（開頭整數其實是分子）
	if len(rest) > 0 && rest[0] == '/' {
		denomLen := leadingDigits(rest[1:])
		if denomLen == 0 {
			return 0, 0, false
		}
		denom := parseDigits(rest[1 : 1+denomLen])
		if denom == 0 {
			return 0, 0, false
		}
		return whole / denom, intLen + 1 + denomLen, true
	}

	// 帶分數（空格分隔）：1 1/2 或 1 ½
	spaceLen := leadingSpaces(rest)
	if spaceLen > 0 {
		after := rest[spaceLen:]
		if num, denom, fracLen := parseASCIIFraction(after); fracLen > 0 && denom != 0 {
			return whole + num/denom, intLen + spaceLen + fracLen, true
		}
		if r, size := utf8.DecodeRuneInString(after); r != utf8.RuneError {
			if v, found := unicodeFractions[r]; found {
				return whole + v, intLen + spaceLen + size, true
			}
		}
	}

	// 單獨的整數不是分數
	return 0, 0, false
}

// parseASCIIFraction 解析 "<int>/<int>" 形式，回傳分子、分母與消耗長度
// 分母為 0 時 fracLen 回傳 0
func parseASCIIFraction(s string) (num, denom float64, fracLen int) {
	numLen := leadingDigits(s)
	if numLen == 0 || numLen >= len(s) || s[numLen] != '/' {
		return 0, 0, 0
	}
	denomLen := leadingDigits(s[numLen+1:])
	if denomLen == 0 {
		return 0, 0, 0
	}
	num = parseDigits(s[:numLen])
	denom = parseDigits(s[numLen+1 : numLen+1+denomLen])
	if denom == 0 {
		return 0, 0, 0
	}
	return num, denom, numLen + 1 + denomLen
}

// leadingDigits 回傳開頭連續數字的長度
func leadingDigits(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// leadingSpaces 回傳開頭連續空白的長度
func leadingSpaces(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// parseDigits 將純數字字串轉為浮點數，呼叫端保證輸入只含數字
func parseDigits(s string) float64 {
	var v float64
	for i := 0; i < len(s); i++ {
		v = v*10 + float64(s[i]-'0')
	}
	return v
}
