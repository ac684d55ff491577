package scaling

import (
	"math"

	"recipe-scaler/internal/pkg/common"
)

const (
	// cubicInchesPerCup 立方吋換算杯
	cubicInchesPerCup = 14.4
	// standardTinDepth 公式退路假設的烤模深度（吋）
	standardTinDepth = 2.0
)

// 缺少尺寸時補上該幾何形狀最常見的規格，不直接失敗
// 與解析器同一套寬容策略，互動編輯時輸入常常不完整
const (
	defaultRoundSize     = 8.0
	defaultSquareSize    = 8.0
	defaultLoafLength    = 9.0
	defaultLoafWidth     = 5.0
	defaultSheetLength   = 9.0
	defaultSheetWidth    = 13.0
	defaultMuffinCups    = 12
	defaultBundtCapacity = 10.0
)

// roundTinCups 圓模容量表（杯），以直徑為鍵
// 廠商標示容量與純幾何略有出入，已知尺寸查表優先，未知尺寸才用公式
var roundTinCups = map[float64]float64{
	6:  4,
	7:  5.5,
	8:  6,
	9:  8,
	10: 11,
	12: 15.5,
}

// squareTinCups 方模容量表（杯），以邊長為鍵
var squareTinCups = map[float64]float64{
	8:  8,
	9:  10,
	10: 12,
}

// muffinCupVolumes 每個瑪芬杯的容量（杯）
var muffinCupVolumes = map[common.MuffinCupSize]float64{
	common.MuffinCupMini:     0.125,
	common.MuffinCupStandard: 0.5,
	common.MuffinCupJumbo:    0.625,
}

// ContainerVolume 計算容器的總容量，統一以杯為單位
// 除瑪芬模（count 代表烤盤數，直接乘進每盤杯數）外，結果一律乘上容器數
func ContainerVolume(c common.Container) float64 {
	switch v := c.(type) {
	case common.RoundTin:
		size := v.Size
		if size <= 0 {
			size = defaultRoundSize
		}
		cups, ok := roundTinCups[size]
		if !ok {
			radius := size / 2
			cups = math.Pi * radius * radius * standardTinDepth / cubicInchesPerCup
		}
		return cups * float64(countOrOne(v.Count))

	case common.SquareTin:
		size := v.Size
		if size <= 0 {
			size = defaultSquareSize
		}
		cups, ok := squareTinCups[size]
		if !ok {
			cups = size * size * standardTinDepth / cubicInchesPerCup
		}
		return cups * float64(countOrOne(v.Count))

	case common.LoafTin:
		length, width := v.Length, v.Width
		if length <= 0 {
			length = defaultLoafLength
		}
		if width <= 0 {
			width = defaultLoafWidth
		}
		// 三段固定級距
		var cups float64
		switch {
		case length <= 8 && width <= 4:
			cups = 4
		case length <= 8.5 && width <= 4.5:
			cups = 6
		default:
			cups = 8
		}
		return cups * float64(countOrOne(v.Count))

	case common.SheetPan:
		length, width := v.Length, v.Width
		if length <= 0 {
			length = defaultSheetLength
		}
		if width <= 0 {
			width = defaultSheetWidth
		}
		// 三段固定級距，最後一段是半盤
		var cups float64
		switch {
		case length <= 9 && width <= 13:
			cups = 14
		case length <= 11 && width <= 7:
			cups = 10
		default:
			cups = 24
		}
		return cups * float64(countOrOne(v.Count))

	case common.BundtTin:
		capacity := v.Capacity
		if capacity <= 0 {
			capacity = defaultBundtCapacity
		}
		return capacity * float64(countOrOne(v.Count))

	case common.MuffinTin:
		perCup, ok := muffinCupVolumes[v.CupSize]
		if !ok {
			perCup = muffinCupVolumes[common.MuffinCupStandard]
		}
		cupsPerTray := v.CupsPerTray
		if cupsPerTray <= 0 {
			cupsPerTray = defaultMuffinCups
		}
		return perCup * float64(cupsPerTray) * float64(countOrOne(v.Count))
	}

	return 0
}

// countOrOne 容器數至少為 1
func countOrOne(count int) int {
	if count < 1 {
		return 1
	}
	return count
}
