package category

// Alias maps one free-text synonym onto exactly one canonical label.
// The table is many-to-one and unambiguous: an alias appears under a single
// canonical label only. Matching is a substring test against the normalized
// input, in table order, first match wins.
type Alias struct {
	Alias    string
	Category string
}

// aliasTable covers the synonyms seen in user input, AI-suggested labels,
// and legacy data. Keep entries lower-case; the matcher normalizes both
// sides. Order is significant.
var aliasTable = []Alias{
	{"食べ物", "食費"},
	{"食事", "食費"},
	{"飲食", "食費"},
	{"ごはん", "食費"},
	{"ご飯", "食費"},
	{"外食", "食費"},
	{"フード", "食費"},
	{"food", "食費"},
	{"grocery", "食費"},
	{"groceries", "食費"},

	{"生活用品", "日用品"},
	{"消耗品", "日用品"},
	{"雑貨", "日用品"},
	{"daily goods", "日用品"},
	{"household", "日用品"},

	{"乗り物", "交通費"},
	{"移動", "交通費"},
	{"交通", "交通費"},
	{"transport", "交通費"},
	{"transportation", "交通費"},

	{"遊び", "娯楽"},
	{"レジャー", "娯楽"},
	{"趣味", "娯楽"},
	{"エンタメ", "娯楽"},
	{"entertainment", "娯楽"},

	{"病院", "医療費"},
	{"医療", "医療費"},
	{"薬", "医療費"},
	{"通院", "医療費"},
	{"health", "医療費"},
	{"medical", "医療費"},

	{"洋服", "衣服"},
	{"ファッション", "衣服"},
	{"被服", "衣服"},
	{"clothing", "衣服"},
	{"clothes", "衣服"},

	{"勉強", "教育"},
	{"学習", "教育"},
	{"学費", "教育"},
	{"書籍", "教育"},
	{"education", "教育"},

	{"光熱", "水道光熱費"},
	{"電気", "水道光熱費"},
	{"ガス", "水道光熱費"},
	{"水道", "水道光熱費"},
	{"utilities", "水道光熱費"},
	{"utility", "水道光熱費"},

	{"通信", "通信費"},
	{"携帯", "通信費"},
	{"スマホ", "通信費"},
	{"ネット回線", "通信費"},
	{"internet", "通信費"},

	{"家賃", "住居費"},
	{"住まい", "住居費"},
	{"住宅", "住居費"},
	{"housing", "住居費"},
	{"rent", "住居費"},

	{"保険料", "保険"},
	{"insurance", "保険"},

	{"税", "税金"},
	{"tax", "税金"},

	{"化粧", "美容"},
	{"コスメ", "美容"},
	{"beauty", "美容"},

	{"サブスクリプション", "サブスク"},
	{"定額サービス", "サブスク"},
	{"subscription", "サブスク"},

	{"プレゼント", "交際費"},
	{"ギフト", "交際費"},
	{"飲み会", "交際費"},
	{"お祝い", "交際費"},
	{"gift", "交際費"},

	{"旅", "旅行"},
	{"観光", "旅行"},
	{"travel", "旅行"},

	{"ペット用品", "ペット"},
	{"pet", "ペット"},

	{"資産運用", "投資"},
	{"貯金", "投資"},
	{"貯蓄", "投資"},
	{"investment", "投資"},
	{"savings", "投資"},

	{"雑費", Other},
	{"other", Other},
	{"misc", Other},
	{"不明", Other},
}
