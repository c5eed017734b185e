package hanja

// expandedCategory is used for every character above 준5급.
const expandedCategory = "일반"

func x(symbol, meaning, pronunciation string, grade Grade) Entry {
	return NewEntry(symbol, meaning, pronunciation, expandedCategory, grade)
}

// expandedEntries cover 5급 through 1급.
var expandedEntries = []Entry{
	x("多", "많을", "다", Grade5),
	x("短", "짧을", "단", Grade5),
	x("後", "뒤", "후", Grade5),
	x("內", "안", "내", Grade5),
	x("同", "한가지", "동", Grade5),
	x("學", "배울", "학", Grade5),
	x("校", "학교", "교", Grade5),
	x("家", "집", "가", Grade5),
	x("道", "길", "도", Grade5),
	x("自", "스스로", "자", Grade5),
	x("前", "앞", "전", Grade5),
	x("老", "늙을", "로", Grade5),
	x("海", "바다", "해", Grade5),
	x("言", "말씀", "언", Grade5),

	x("死", "죽을", "사", GradeSemi4),
	x("問", "물을", "문", GradeSemi4),
	x("答", "대답", "답", GradeSemi4),
	x("安", "편안", "안", GradeSemi4),
	x("命", "목숨", "명", GradeSemi4),
	x("樂", "즐길", "락", GradeSemi4),

	x("美", "아름다울", "미", Grade4),
	x("成", "이룰", "성", Grade4),
	x("計", "셀", "계", Grade4),
	x("苦", "쓸", "고", Grade4),
	x("勝", "이길", "승", Grade4),
	x("鳥", "새", "조", Grade4),

	x("異", "다를", "이", GradeSemi3),
	x("流", "흐를", "류", GradeSemi3),
	x("堂", "집", "당", GradeSemi3),
	x("戰", "싸움", "전", GradeSemi3),
	x("敗", "패할", "패", GradeSemi3),
	x("寒", "찰", "한", GradeSemi3),

	x("暑", "더울", "서", Grade3),
	x("損", "덜", "손", Grade3),
	x("益", "더할", "익", Grade3),
	x("貴", "귀할", "귀", Grade3),
	x("賤", "천할", "천", Grade3),
	x("起", "일어날", "기", Grade3),

	x("哀", "슬플", "애", GradeSemi2),
	x("喜", "기쁠", "희", GradeSemi2),
	x("怒", "성낼", "노", GradeSemi2),
	x("盛", "성할", "성", GradeSemi2),
	x("衰", "쇠할", "쇠", GradeSemi2),
	x("晝", "낮", "주", GradeSemi2),

	x("夜", "밤", "야", Grade2),
	x("往", "갈", "왕", Grade2),
	x("來", "올", "래", Grade2),
	x("始", "비로소", "시", Grade2),
	x("終", "마칠", "종", Grade2),
	x("得", "얻을", "득", Grade2),

	x("失", "잃을", "실", GradeSemi1),
	x("送", "보낼", "송", GradeSemi1),
	x("迎", "맞을", "영", GradeSemi1),
	x("需", "쓰일", "수", GradeSemi1),
	x("給", "줄", "급", GradeSemi1),
	x("添", "더할", "첨", GradeSemi1),

	x("攻", "칠", "공", Grade1),
	x("守", "지킬", "수", Grade1),
	x("腹", "배", "복", Grade1),
	x("背", "등", "배", Grade1),
	x("矛", "창", "모", Grade1),
	x("盾", "방패", "순", Grade1),
}
