package hanja

// coreEntries are the 8급 characters every learner starts with.
var coreEntries = []Entry{
	NewEntry("一", "한", "일", "숫자", Grade8),
	NewEntry("二", "두", "이", "숫자", Grade8),
	NewEntry("三", "석", "삼", "숫자", Grade8),
	NewEntry("四", "넉", "사", "숫자", Grade8),
	NewEntry("五", "다섯", "오", "숫자", Grade8),
	NewEntry("六", "여섯", "육", "숫자", Grade8),
	NewEntry("七", "일곱", "칠", "숫자", Grade8),
	NewEntry("八", "여덟", "팔", "숫자", Grade8),
	NewEntry("九", "아홉", "구", "숫자", Grade8),
	NewEntry("十", "열", "십", "숫자", Grade8),
	NewEntry("百", "일백", "백", "숫자", Grade8),
	NewEntry("千", "일천", "천", "숫자", Grade8),
	NewEntry("萬", "일만", "만", "숫자", Grade8),

	NewEntry("日", "날", "일", "자연", Grade8),
	NewEntry("月", "달", "월", "자연", Grade8),
	NewEntry("火", "불", "화", "자연", Grade8),
	NewEntry("水", "물", "수", "자연", Grade8),
	NewEntry("木", "나무", "목", "자연", Grade8),
	NewEntry("金", "쇠", "금", "자연", Grade8),
	NewEntry("土", "흙", "토", "자연", Grade8),
	NewEntry("山", "뫼", "산", "자연", Grade8),
	NewEntry("川", "내", "천", "자연", Grade8),

	NewEntry("大", "큰", "대", "크기/방향", Grade8),
	NewEntry("小", "작을", "소", "크기/방향", Grade8),
	NewEntry("中", "가운데", "중", "크기/방향", Grade8),
	NewEntry("上", "위", "상", "크기/방향", Grade8),
	NewEntry("下", "아래", "하", "크기/방향", Grade8),
	NewEntry("左", "왼", "좌", "크기/방향", Grade8),
	NewEntry("右", "오른", "우", "크기/방향", Grade8),

	NewEntry("人", "사람", "인", "사람", Grade8),
	NewEntry("女", "계집", "여", "사람", Grade8),
	NewEntry("子", "아들", "자", "사람", Grade8),
	NewEntry("王", "임금", "왕", "사람", Grade8),
	NewEntry("兄", "형", "형", "사람", Grade8),
	NewEntry("弟", "아우", "제", "사람", Grade8),

	NewEntry("玉", "구슬", "옥", "개념", Grade8),
	NewEntry("白", "흰", "백", "개념", Grade8),
	NewEntry("天", "하늘", "천", "개념", Grade8),
	NewEntry("地", "땅", "지", "개념", Grade8),
	NewEntry("正", "바를", "정", "개념", Grade8),
	NewEntry("出", "날", "출", "개념", Grade8),
	NewEntry("生", "날", "생", "개념", Grade8),
	NewEntry("年", "해", "년", "개념", Grade8),
	NewEntry("名", "이름", "명", "개념", Grade8),
	NewEntry("門", "문", "문", "개념", Grade8),
	NewEntry("文", "글월", "문", "개념", Grade8),
	NewEntry("字", "글자", "자", "개념", Grade8),
	NewEntry("休", "쉴", "휴", "개념", Grade8),
	NewEntry("足", "발", "족", "개념", Grade8),
	NewEntry("向", "향할", "향", "개념", Grade8),
}

// extraEntries extend the pool through 준5급.
var extraEntries = []Entry{
	NewEntry("父", "아비", "부", "가족", Grade7),
	NewEntry("母", "어미", "모", "가족", Grade7),
	NewEntry("男", "사내", "남", "가족", Grade7),

	NewEntry("東", "동녘", "동", "방위", Grade7),
	NewEntry("西", "서녘", "서", "방위", Grade7),
	NewEntry("南", "남녘", "남", "방위", Grade7),
	NewEntry("北", "북녘", "북", "방위", Grade7),

	NewEntry("江", "강", "강", "자연", Grade7),
	NewEntry("林", "수풀", "림", "자연", Grade7),
	NewEntry("石", "돌", "석", "자연", Grade7),
	NewEntry("草", "풀", "초", "자연", Grade7),

	NewEntry("馬", "말", "마", "동물", Grade7),
	NewEntry("牛", "소", "우", "동물", Grade7),
	NewEntry("魚", "물고기", "어", "동물", Grade7),
	NewEntry("羊", "양", "양", "동물", Grade7),

	NewEntry("口", "입", "구", "신체", Grade6),
	NewEntry("目", "눈", "목", "신체", Grade6),
	NewEntry("耳", "귀", "이", "신체", Grade6),
	NewEntry("手", "손", "수", "신체", Grade6),
	NewEntry("心", "마음", "심", "신체", Grade6),

	NewEntry("國", "나라", "국", "생활", Grade6),
	NewEntry("市", "저자", "시", "생활", Grade6),
	NewEntry("車", "수레", "차", "생활", Grade6),
	NewEntry("食", "밥", "식", "생활", Grade6),
	NewEntry("衣", "옷", "의", "생활", Grade6),
	NewEntry("光", "빛", "광", "생활", Grade6),

	NewEntry("古", "예", "고", "기타", Grade6),
	NewEntry("今", "이제", "금", "기타", Grade6),
	NewEntry("太", "클", "태", "기타", Grade6),
	NewEntry("少", "적을", "소", "기타", Grade6),
	NewEntry("力", "힘", "력", "기타", Grade6),

	NewEntry("本", "근본", "본", "기타", GradeSemi5),
	NewEntry("方", "모", "방", "기타", GradeSemi5),
	NewEntry("外", "바깥", "외", "기타", GradeSemi5),
	NewEntry("世", "인간", "세", "기타", GradeSemi5),
	NewEntry("合", "합할", "합", "기타", GradeSemi5),
	NewEntry("先", "먼저", "선", "기타", GradeSemi5),
	NewEntry("立", "설", "립", "기타", GradeSemi5),
	NewEntry("長", "긴", "장", "기타", GradeSemi5),
	NewEntry("靑", "푸를", "청", "기타", GradeSemi5),
	NewEntry("不", "아닐", "불", "기타", GradeSemi5),
	NewEntry("入", "들", "입", "기타", GradeSemi5),

	NewEntry("春", "봄", "춘", "계절", GradeSemi5),
	NewEntry("夏", "여름", "하", "계절", GradeSemi5),
	NewEntry("秋", "가을", "추", "계절", GradeSemi5),
	NewEntry("冬", "겨울", "동", "계절", GradeSemi5),
}
