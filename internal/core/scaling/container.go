package scaling

import (
	"fmt"
	"math"

	"recipe-scaler/internal/pkg/common"
)

// displayTolerance 數值與分數標籤的容許誤差
const displayTolerance = 0.05

// factorLabel 倍率的分數顯示標籤
type factorLabel struct {
	value float64
	label string
}

// factorLabels 依序比對，第一個落在容差內的標籤勝出
var factorLabels = []factorLabel{
	{0.25, "¼×"},
	{1.0 / 3.0, "⅓×"},
	{0.5, "½×"},
	{2.0 / 3.0, "⅔×"},
	{0.75, "¾×"},
	{1.5, "1½×"},
	{2, "2×"},
	{2.25, "2¼×"},
	{2.5, "2½×"},
	{3, "3×"},
	{4, "4×"},
}

// ContainerScaleFactor 計算來源容器換到目標容器的建議縮放倍率
// 兩邊都是平底烤模（圓/方任意組合）時用截面積比：同深度慣例下面積縮放可靠；
// 其他組合沒有共同深度慣例，只能比總容量
func ContainerScaleFactor(source, target common.Container) common.ScaleResult {
	var factor float64

	sourceArea, sourceFlat := flatTinArea(source)
	targetArea, targetFlat := flatTinArea(target)

	if sourceFlat && targetFlat {
		countRatio := float64(containerCount(target)) / float64(containerCount(source))
		factor = round2(targetArea / sourceArea * countRatio)
	} else {
		// 容量比已含容器數（ContainerVolume 乘過 count）
		factor = round2(ContainerVolume(target) / ContainerVolume(source))
	}

	return common.ScaleResult{
		Factor:  factor,
		Display: formatFactor(factor),
	}
}

// flatTinArea 平底烤模的截面積；非圓/方回傳 ok=false
func flatTinArea(c common.Container) (area float64, ok bool) {
	switch v := c.(type) {
	case common.RoundTin:
		size := v.Size
		if size <= 0 {
			size = defaultRoundSize
		}
		radius := size / 2
		return math.Pi * radius * radius, true
	case common.SquareTin:
		size := v.Size
		if size <= 0 {
			size = defaultSquareSize
		}
		return size * size, true
	}
	return 0, false
}

// containerCount 取出容器數，至少為 1
func containerCount(c common.Container) int {
	switch v := c.(type) {
	case common.RoundTin:
		return countOrOne(v.Count)
	case common.SquareTin:
		return countOrOne(v.Count)
	case common.LoafTin:
		return countOrOne(v.Count)
	case common.SheetPan:
		return countOrOne(v.Count)
	case common.BundtTin:
		return countOrOne(v.Count)
	case common.MuffinTin:
		return countOrOne(v.Count)
	}
	return 1
}

// formatFactor 將倍率轉成人類可讀標籤
// 恰好 1.0 顯示 same；接近常見分數顯示分數標籤；其餘顯示原始小數
func formatFactor(factor float64) string {
	if factor == 1 {
		return "same"
	}
	for _, fl := range factorLabels {
		if math.Abs(factor-fl.value) <= displayTolerance {
			return fl.label
		}
	}
	return fmt.Sprintf("%g×", factor)
}
