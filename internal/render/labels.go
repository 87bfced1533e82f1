package render

// Labels holds the user-visible strings of a rendered document.
type Labels struct {
	Education  string
	Skills     string
	Experience string
	Projects   string
	Contact    string
	TechStack  string

	// Date range formats; %s is a formatted bound.
	RangeBoth      string
	RangeStartOnly string
	RangeEndOnly   string
}

var EnglishLabels = Labels{
	Education:      "Education",
	Skills:         "Skills",
	Experience:     "Experience",
	Projects:       "Projects",
	Contact:        "Contact",
	TechStack:      "Tech stack",
	RangeBoth:      "%s – %s",
	RangeStartOnly: "%s – present",
	RangeEndOnly:   "through %s",
}

var ChineseLabels = Labels{
	Education:      "教育背景",
	Skills:         "技能特长",
	Experience:     "工作经历",
	Projects:       "项目经验",
	Contact:        "联系方式",
	TechStack:      "技术栈",
	RangeBoth:      "%s – %s",
	RangeStartOnly: "%s 至今",
	RangeEndOnly:   "至 %s",
}

// LabelsFor returns the label set for a language tag, English by default.
func LabelsFor(lang string) Labels {
	switch lang {
	case "zh", "zh-CN", "zh_CN", "chinese":
		return ChineseLabels
	default:
		return EnglishLabels
	}
}
