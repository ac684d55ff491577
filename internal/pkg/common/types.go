package common

import (
	"fmt"
	"strings"
)

// Ingredient 結構化食材
// 由 RecipeScaler 縮放時產生新值，不就地修改
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// ParsedIngredientLine 解析後的食材行，保留原始輸入行方便比對
type ParsedIngredientLine struct {
	Ingredient
	OriginalLine string `json:"original_line"`
}

// ScaleResult 容器縮放結果
type ScaleResult struct {
	Factor  float64 `json:"factor"`
	Display string  `json:"display"`
}

// MuffinCupSize 瑪芬杯尺寸
type MuffinCupSize string

const (
	MuffinCupMini     MuffinCupSize = "mini"
	MuffinCupStandard MuffinCupSize = "standard"
	MuffinCupJumbo    MuffinCupSize = "jumbo"
)

// Container 烘焙容器（六種幾何形狀的密封聯集）
// 以介面加私有方法實作，避免單一結構塞滿互斥欄位
type Container interface {
	containerVariant()
}

// RoundTin 圓形烤模
type RoundTin struct {
	Size  float64 // 直徑（吋）
	Count int
}

// SquareTin 方形烤模
type SquareTin struct {
	Size  float64 // 邊長（吋）
	Count int
}

// LoafTin 吐司模
type LoafTin struct {
	Length float64
	Width  float64
	Count  int
}

// SheetPan 烤盤
type SheetPan struct {
	Length float64
	Width  float64
	Count  int
}

// BundtTin 邦特模
type BundtTin struct {
	Capacity float64 // 容量（杯）
	Count    int
}

// MuffinTin 瑪芬模
type MuffinTin struct {
	CupSize     MuffinCupSize
	CupsPerTray int
	Count       int // 烤盤數
}

func (RoundTin) containerVariant()  {}
func (SquareTin) containerVariant() {}
func (LoafTin) containerVariant()   {}
func (SheetPan) containerVariant()  {}
func (BundtTin) containerVariant()  {}
func (MuffinTin) containerVariant() {}

// 容器類型判別字串（對應 ContainerSpec.Type）
const (
	ContainerTypeRound  = "round"
	ContainerTypeSquare = "square"
	ContainerTypeLoaf   = "loaf"
	ContainerTypeSheet  = "sheet"
	ContainerTypeBundt  = "bundt"
	ContainerTypeMuffin = "muffin"
)

// ContainerSpec API 傳輸用的容器描述
// type 為判別欄位，其餘欄位依類型選填；缺少的尺寸由計算端補預設值
type ContainerSpec struct {
	Type        string  `json:"type" binding:"required"`
	Size        float64 `json:"size,omitempty"`          // round/square：直徑或邊長
	Length      float64 `json:"length,omitempty"`        // loaf/sheet
	Width       float64 `json:"width,omitempty"`         // loaf/sheet
	Capacity    float64 `json:"capacity,omitempty"`      // bundt：杯
	CupSize     string  `json:"cup_size,omitempty"`      // muffin：mini/standard/jumbo
	CupsPerTray int     `json:"cups_per_tray,omitempty"` // muffin
	Count       int     `json:"count,omitempty"`
}

// ToContainer 轉換為密封聯集，未知類型回傳錯誤
func (s ContainerSpec) ToContainer() (Container, error) {
	switch strings.ToLower(strings.TrimSpace(s.Type)) {
	case ContainerTypeRound:
		return RoundTin{Size: s.Size, Count: s.Count}, nil
	case ContainerTypeSquare:
		return SquareTin{Size: s.Size, Count: s.Count}, nil
	case ContainerTypeLoaf:
		return LoafTin{Length: s.Length, Width: s.Width, Count: s.Count}, nil
	case ContainerTypeSheet:
		return SheetPan{Length: s.Length, Width: s.Width, Count: s.Count}, nil
	case ContainerTypeBundt:
		return BundtTin{Capacity: s.Capacity, Count: s.Count}, nil
	case ContainerTypeMuffin:
		return MuffinTin{
			CupSize:     MuffinCupSize(strings.ToLower(s.CupSize)),
			CupsPerTray: s.CupsPerTray,
			Count:       s.Count,
		}, nil
	default:
		return nil, fmt.Errorf("unknown container type: %q", s.Type)
	}
}

// FormatIngredients 格式化食材列表（記錄用）
func FormatIngredients(ingredients []Ingredient) string {
	var sb strings.Builder
	for _, ing := range ingredients {
		if ing.Unit != "" {
			sb.WriteString(fmt.Sprintf("- %s: %g %s\n", ing.Name, ing.Quantity, ing.Unit))
			continue
		}
		sb.WriteString(fmt.Sprintf("- %s\n", ing.Name))
	}
	return sb.String()
}
