package matching

import "strings"

type SelectMode int

const (
	SingleSelect SelectMode = iota
	MultiSelect
)

type Tag struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type Category struct {
	Key    string     `json:"key"`
	Label  string     `json:"label"`
	Weight int        `json:"weight"`
	Mode   SelectMode `json:"-"`
	Tags   []Tag      `json:"tags"`
}

func (c Category) Multi() bool {
	return c.Mode == MultiSelect
}

// categories is the fixed tag dictionary, in display and tie-break order.
var categories = []Category{
	{
		Key: "subject", Label: "과목", Weight: 30, Mode: MultiSelect,
		Tags: []Tag{
			{"subject:korean", "국어"},
			{"subject:math", "수학"},
			{"subject:english", "영어"},
			{"subject:science", "과학"},
			{"subject:social", "사회"},
			{"subject:essay", "논술"},
			{"subject:coding", "코딩"},
			{"subject:art", "미술"},
			{"subject:music", "음악"},
		},
	},
	{
		Key: "grade", Label: "학년", Weight: 20, Mode: SingleSelect,
		Tags: []Tag{
			{"grade:preschool", "미취학"},
			{"grade:elementary_low", "초등 저학년"},
			{"grade:elementary_high", "초등 고학년"},
			{"grade:middle", "중등"},
			{"grade:high", "고등"},
			{"grade:retake", "재수"},
		},
	},
	{
		Key: "style", Label: "수업 방식", Weight: 15, Mode: MultiSelect,
		Tags: []Tag{
			{"style:lecture", "강의식"},
			{"style:discussion", "토론식"},
			{"style:self_study", "자기주도"},
			{"style:one_on_one", "1:1 맞춤"},
			{"style:project", "프로젝트"},
		},
	},
	{
		Key: "class_size", Label: "수업 규모", Weight: 15, Mode: SingleSelect,
		Tags: []Tag{
			{"class_size:private", "개인"},
			{"class_size:small", "소수정예"},
			{"class_size:medium", "중규모"},
			{"class_size:large", "대형"},
		},
	},
	{
		Key: "schedule", Label: "수업 시간대", Weight: 10, Mode: MultiSelect,
		Tags: []Tag{
			{"schedule:weekday_afternoon", "평일 오후"},
			{"schedule:weekday_evening", "평일 저녁"},
			{"schedule:weekend_morning", "주말 오전"},
			{"schedule:weekend_afternoon", "주말 오후"},
		},
	},
	{
		Key: "goal", Label: "목표", Weight: 10, Mode: MultiSelect,
		Tags: []Tag{
			{"goal:school_grades", "내신 대비"},
			{"goal:entrance_exam", "입시 대비"},
			{"goal:foundation", "기초 다지기"},
			{"goal:advanced", "선행 학습"},
			{"goal:competition", "경시 대회"},
			{"goal:hobby", "취미"},
		},
	},
}

var (
	categoryByKey = map[string]int{}
	tagByCode     = map[string]Tag{}
	tagOrder      = map[string]int{}
)

func init() {
	for i, c := range categories {
		categoryByKey[c.Key] = i
		for j, t := range c.Tags {
			tagByCode[t.Code] = t
			tagOrder[t.Code] = j
		}
	}
}

// Categories returns a copy of the tag dictionary.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		c.Tags = append([]Tag(nil), c.Tags...)
		out[i] = c
	}
	return out
}

func LookupCategory(key string) (Category, bool) {
	i, ok := categoryByKey[key]
	if !ok {
		return Category{}, false
	}
	return categories[i], true
}

func LookupTag(code string) (Tag, bool) {
	t, ok := tagByCode[code]
	return t, ok
}

// Label returns the display label for code, or the raw value part when the
// code is not in the dictionary.
func Label(code string) string {
	if t, ok := tagByCode[code]; ok {
		return t.Label
	}
	if _, value, ok := SplitTag(code); ok {
		return value
	}
	return code
}

// SplitTag splits "subject:math" into ("subject", "math").
func SplitTag(code string) (category, value string, ok bool) {
	category, value, ok = strings.Cut(code, ":")
	if !ok || category == "" || value == "" {
		return "", "", false
	}
	return category, value, true
}

// ValidateTags returns the first code that is not in the dictionary.
func ValidateTags(codes []string) (string, bool) {
	for _, c := range codes {
		if _, ok := tagByCode[c]; !ok {
			return c, false
		}
	}
	return "", true
}
