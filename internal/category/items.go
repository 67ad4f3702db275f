package category

import "strings"

// itemKeywords drives CategorizeItem: per-category keyword dictionaries
// scanned in declaration order with a substring match against the item name.
var itemKeywords = []struct {
	category string
	keywords []string
}{
	{"食費", []string{
		"おにぎり", "お茶", "弁当", "パン", "サンドイッチ", "コーヒー", "ジュース",
		"牛乳", "卵", "肉", "魚", "野菜", "米", "麺", "惣菜", "菓子", "チョコ",
		"アイス", "ビール", "酒", "水", "飲料", "デザート", "ヨーグルト",
	}},
	{"日用品", []string{
		"ティッシュ", "トイレットペーパー", "洗剤", "シャンプー", "石鹸", "歯磨",
		"歯ブラシ", "ゴミ袋", "電池", "マスク", "ラップ", "スポンジ", "柔軟剤",
	}},
	{"医療費", []string{
		"薬", "絆創膏", "包帯", "湿布", "目薬", "ビタミン", "サプリ", "体温計",
	}},
	{"衣服", []string{
		"シャツ", "パンツ", "靴下", "下着", "タオル", "ハンカチ",
	}},
	{"教育", []string{
		"本", "ノート", "ペン", "文具", "雑誌",
	}},
}

// dailyGoodsHints override a pharmacy store bias: drugstores sell household
// goods alongside medicine, and the item name decides which it was.
var dailyGoodsHints = []string{
	"ティッシュ", "洗剤", "シャンプー", "トイレットペーパー", "石鹸", "ゴミ袋", "電池", "マスク",
}

var pharmacyStoreHints = []string{
	"薬局", "ドラッグ", "マツモトキヨシ", "ウエルシア", "スギ薬局", "ツルハ", "ココカラ",
}

// CategorizeItem classifies a single receipt line item. The store name, when
// supplied, acts as a context hint before the keyword dictionaries run: a
// pharmacy-like store biases toward 医療費 unless the item name itself
// names a household product. Unmatched items resolve Other.
func CategorizeItem(name, store string) string {
	item := strings.ToLower(strings.TrimSpace(name))
	if item == "" {
		return Other
	}

	if store != "" {
		storeName := strings.ToLower(store)
		for _, hint := range pharmacyStoreHints {
			if strings.Contains(storeName, strings.ToLower(hint)) {
				for _, d := range dailyGoodsHints {
					if strings.Contains(item, strings.ToLower(d)) {
						return "日用品"
					}
				}
				return "医療費"
			}
		}
	}

	for _, entry := range itemKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(item, strings.ToLower(kw)) {
				return entry.category
			}
		}
	}
	return Other
}
