package hanja

// AntonymPair holds two characters with opposite meanings.
type AntonymPair struct {
	A string
	B string
}

// Idiom is a four-character idiom (사자성어).
type Idiom struct {
	Text    string
	Reading string
	Meaning string
}

// Characters returns the idiom's characters in order.
func (i Idiom) Characters() []string {
	var out []string
	for _, r := range i.Text {
		out = append(out, string(r))
	}
	return out
}

var antonymPairs = []AntonymPair{
	{"大", "小"}, {"上", "下"}, {"左", "右"}, {"日", "月"}, {"天", "地"},
	{"出", "入"}, {"男", "女"}, {"父", "母"}, {"東", "西"}, {"南", "北"},
	{"兄", "弟"}, {"水", "火"}, {"古", "今"}, {"春", "秋"}, {"夏", "冬"},
	{"山", "川"}, {"手", "足"}, {"多", "少"}, {"長", "短"}, {"先", "後"},
	{"內", "外"}, {"生", "死"}, {"老", "少"}, {"問", "答"}, {"苦", "樂"},
	{"勝", "敗"}, {"寒", "暑"}, {"損", "益"}, {"貴", "賤"}, {"盛", "衰"},
	{"晝", "夜"}, {"往", "來"}, {"始", "終"}, {"得", "失"}, {"送", "迎"},
	{"需", "給"}, {"攻", "守"}, {"腹", "背"}, {"矛", "盾"}, {"喜", "哀"},
}

var idioms = []Idiom{
	{"一日三秋", "일일삼추", "하루가 삼 년처럼 길게 느껴짐"},
	{"十中八九", "십중팔구", "열 가운데 여덟이나 아홉, 거의 대부분"},
	{"三三五五", "삼삼오오", "서넛 또는 대여섯 명씩 무리를 지음"},
	{"人山人海", "인산인해", "사람이 산과 바다를 이룰 만큼 많이 모임"},
	{"生年月日", "생년월일", "태어난 해와 달과 날"},
	{"東西古今", "동서고금", "동양과 서양, 옛날과 지금"},
	{"一口二言", "일구이언", "한 입으로 두 말을 함"},
	{"三日天下", "삼일천하", "아주 짧은 동안 권세를 잡음"},
	{"山川草木", "산천초목", "산과 내와 풀과 나무, 곧 자연"},
	{"東西南北", "동서남북", "동쪽과 서쪽과 남쪽과 북쪽, 모든 방향"},
	{"八方美人", "팔방미인", "여러 방면에 두루 능통한 사람"},
	{"大同小異", "대동소이", "크게 보면 같고 작은 차이만 있음"},
	{"九死一生", "구사일생", "여러 번 죽을 고비를 넘기고 살아남음"},
	{"自問自答", "자문자답", "스스로 묻고 스스로 대답함"},
	{"男女老少", "남녀노소", "남자와 여자, 늙은이와 젊은이"},
	{"自手成家", "자수성가", "물려받은 재산 없이 스스로 집안을 일으킴"},
	{"百戰百勝", "백전백승", "싸울 때마다 모두 이김"},
	{"一長一短", "일장일단", "장점과 단점이 함께 있음"},
	{"東問西答", "동문서답", "묻는 말에 엉뚱한 대답을 함"},
	{"同苦同樂", "동고동락", "괴로움과 즐거움을 함께 함"},
	{"喜怒哀樂", "희로애락", "기쁨과 노여움과 슬픔과 즐거움"},
	{"右往左往", "우왕좌왕", "이리저리 오락가락하며 갈피를 잡지 못함"},
}

// ExtraIdiomMeanings are distractor meanings that belong to no idiom in the set.
var ExtraIdiomMeanings = []string{
	"물과 불처럼 맞지 않음",
	"서로 힘을 합침",
	"옛것을 배워 새것을 앎",
	"마음을 하나로 모음",
	"하루가 천년 같음",
	"어려운 일을 해냄",
}

// AntonymPairs returns every antonym pair.
func AntonymPairs() []AntonymPair {
	out := make([]AntonymPair, len(antonymPairs))
	copy(out, antonymPairs)
	return out
}

// Idioms returns every idiom.
func Idioms() []Idiom {
	out := make([]Idiom, len(idioms))
	copy(out, idioms)
	return out
}

// AntonymsFor keeps the pairs whose both characters are in pool.
func AntonymsFor(pool []Entry) []AntonymPair {
	allowed := symbolSet(pool)
	var out []AntonymPair
	for _, p := range antonymPairs {
		if allowed[p.A] && allowed[p.B] {
			out = append(out, p)
		}
	}
	return out
}

// IdiomsFor keeps the idioms whose every character is in pool.
func IdiomsFor(pool []Entry) []Idiom {
	allowed := symbolSet(pool)
	var out []Idiom
	for _, id := range idioms {
		ok := true
		for _, c := range id.Characters() {
			if !allowed[c] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, id)
		}
	}
	return out
}

func symbolSet(pool []Entry) map[string]bool {
	set := make(map[string]bool, len(pool))
	for _, e := range pool {
		set[e.Symbol] = true
	}
	return set
}
