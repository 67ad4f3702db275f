package category

import "regexp"

// fallbackRule maps a topical keyword set onto one canonical label. Rules
// run after the alias table, in declaration order, first match wins. They
// catch merchant names and activity words that are too broad for the
// one-to-one alias table.
type fallbackRule struct {
	pattern  *regexp.Regexp
	category string
}

var fallbackRules = []fallbackRule{
	{regexp.MustCompile(`映画|シネマ|ゲーム|カラオケ|ボウリング|ライブ|コンサート|遊園地|漫画|アニメ`), "娯楽"},
	{regexp.MustCompile(`薬局|ドラッグ|病院|クリニック|歯科|歯医者|診療|整骨|マッサージ|処方`), "医療費"},
	{regexp.MustCompile(`電車|バス|タクシー|ガソリン|給油|高速|駐車|新幹線|航空|定期券|jr|メトロ|suica|pasmo`), "交通費"},
	{regexp.MustCompile(`ユニクロ|uniqlo|しまむら|zara|gu|服|シャツ|ズボン|スカート|靴|スニーカー|コート`), "衣服"},
	{regexp.MustCompile(`本屋|書店|参考書|教科書|講座|塾|セミナー|資格|検定`), "教育"},
	{regexp.MustCompile(`電力|電灯|光熱|でんき`), "水道光熱費"},
	{regexp.MustCompile(`wifi|wi-fi|sim|ドコモ|docomo|ソフトバンク|softbank|楽天モバイル|povo|ahamo`), "通信費"},
	{regexp.MustCompile(`ランチ|ディナー|朝食|昼食|夕食|夜食|弁当|カフェ|レストラン|食堂|居酒屋|焼肉|寿司|ラーメン|マクドナルド|マック|スタバ|すき家|吉野家|松屋|コンビニ|セブン|ファミマ|ローソン|スーパー|食`), "食費"},
	{regexp.MustCompile(`マンション|アパート|引越|引っ越し|リフォーム|管理費|共益費`), "住居費"},
	{regexp.MustCompile(`保険`), "保険"},
	{regexp.MustCompile(`税|年金|国保`), "税金"},
	{regexp.MustCompile(`美容|サロン|ネイル|エステ|理髪|床屋|カット|パーマ`), "美容"},
	{regexp.MustCompile(`netflix|ネットフリックス|spotify|hulu|prime|プライム|youtube|サブスク|月額`), "サブスク"},
	{regexp.MustCompile(`祝い|香典|結婚式|誕生日|手土産|お歳暮|お中元|ご祝儀`), "交際費"},
	{regexp.MustCompile(`ホテル|旅館|温泉|ツアー|航空券|民泊|宿泊`), "旅行"},
	{regexp.MustCompile(`ペット|動物病院|トリミング|ペットフード`), "ペット"},
	{regexp.MustCompile(`投資|証券|株式|積立|nisa|ideco|つみたて`), "投資"},
}
