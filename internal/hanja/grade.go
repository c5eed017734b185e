package hanja

// Grade is a difficulty tier label from the national Hanja proficiency exam.
type Grade string

const (
	Grade8     Grade = "8급"
	Grade7     Grade = "7급"
	Grade6     Grade = "6급"
	GradeSemi5 Grade = "준5급"
	Grade5     Grade = "5급"
	GradeSemi4 Grade = "준4급"
	Grade4     Grade = "4급"
	GradeSemi3 Grade = "준3급"
	Grade3     Grade = "3급"
	GradeSemi2 Grade = "준2급"
	Grade2     Grade = "2급"
	GradeSemi1 Grade = "준1급"
	Grade1     Grade = "1급"
)

// DefaultGrade is used when a learner has not picked a grade yet.
const DefaultGrade = Grade8

var gradeHierarchy = [...]Grade{
	Grade8, Grade7, Grade6, GradeSemi5, Grade5, GradeSemi4, Grade4,
	GradeSemi3, Grade3, GradeSemi2, Grade2, GradeSemi1, Grade1,
}

// GradeHierarchy returns all grades ordered from easiest to hardest.
func GradeHierarchy() []Grade {
	out := make([]Grade, len(gradeHierarchy))
	copy(out, gradeHierarchy[:])
	return out
}

// GradeIndex returns the position of g in the hierarchy, or -1 if unknown.
func GradeIndex(g Grade) int {
	for i, h := range gradeHierarchy {
		if h == g {
			return i
		}
	}
	return -1
}

// ParseGrade converts a label into a Grade. The second result is false
// when the label is not one of the 13 grades.
func ParseGrade(s string) (Grade, bool) {
	g := Grade(s)
	return g, GradeIndex(g) >= 0
}

// LabelOrDefault returns g, or DefaultGrade when g is empty.
func LabelOrDefault(g Grade) Grade {
	if g == "" {
		return DefaultGrade
	}
	return g
}

// Easier reports whether g sits strictly below than in the hierarchy.
func (g Grade) Easier(than Grade) bool {
	i, j := GradeIndex(g), GradeIndex(than)
	return i >= 0 && j >= 0 && i < j
}

func (g Grade) String() string {
	return string(g)
}
