package rule

// Round 定义对局轮次，决定首次亮牌的分数门槛
type Round int

const (
	RoundOne Round = iota + 1
	RoundTwo
	RoundThree
	RoundFour
)

// meldThresholds 各轮次首次亮牌的分数门槛映射表
var meldThresholds = map[Round]int{
	RoundOne:   90,
	RoundTwo:   120,
	RoundThree: 150,
	RoundFour:  180,
}

// roundNames 轮次名称映射表
var roundNames = map[Round]string{
	RoundOne:   "One",
	RoundTwo:   "Two",
	RoundThree: "Three",
	RoundFour:  "Four",
}

// MeldThreshold 返回本轮首次亮牌所需的最低分数
func (r Round) MeldThreshold() int {
	if threshold, ok := meldThresholds[r]; ok {
		return threshold
	}
	return meldThresholds[RoundFour]
}

func (r Round) String() string {
	if name, ok := roundNames[r]; ok {
		return name
	}
	return "Unknown"
}
