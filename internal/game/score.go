package game

// 计分常量
const (
	CleanBookValue = 500  // 无万能牌组
	DirtyBookValue = 300  // 含万能牌组
	SevenBookValue = 1500 // 纯 7 组
	RedThreeValue  = 100  // 每张红 3
)

// Score 计算每名玩家的当前得分（可为负），不修改任何状态。
// 得分 = 组的奖励分 + 已亮出牌的分值 + 红 3 奖励 − 手牌和脚牌剩余分值
func (g *Game) Score() []int {
	scores := make([]int, len(g.Players))
	for i, p := range g.Players {
		scores[i] = CleanBookValue*p.CleanBooks() +
			DirtyBookValue*p.DirtyBooks() +
			SevenBookValue*p.SevenBooks() +
			p.MeldedPoints() +
			RedThreeValue*p.RedThrees -
			p.UnplayedPoints()
	}
	return scores
}
