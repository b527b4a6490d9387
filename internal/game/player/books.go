package player

import "github.com/palemoky/hand-and-foot/internal/game/card"

// bookRank 返回牌组的锚定点数，即组内第一张普通牌的点数
func bookRank(book []card.Card) card.Rank {
	for _, c := range book {
		if !c.IsWild() {
			return c.Rank
		}
	}
	// 万能牌少数规则保证不会出现全万能牌的组
	return book[0].Rank
}

// CleanBooks 统计无万能牌的完成组数量，7 点数的组单独计（见 SevenBooks）
func (p *PlayerCards) CleanBooks() int {
	count := 0
	for _, book := range p.Books {
		if countWilds(book) == 0 && bookRank(book) != card.RankSeven {
			count++
		}
	}
	return count
}

// DirtyBooks 统计含至少一张万能牌的完成组数量
func (p *PlayerCards) DirtyBooks() int {
	count := 0
	for _, book := range p.Books {
		if countWilds(book) > 0 {
			count++
		}
	}
	return count
}

// SevenBooks 统计锚定在 7 上且无万能牌的完成组数量
func (p *PlayerCards) SevenBooks() int {
	count := 0
	for _, book := range p.Books {
		if countWilds(book) == 0 && bookRank(book) == card.RankSeven {
			count++
		}
	}
	return count
}

// CanGoOut 判断玩家当前能否收牌结束：至少一个无万能牌组和一个含万能牌组
func (p *PlayerCards) CanGoOut() bool {
	return p.CleanBooks() > 0 && p.DirtyBooks() > 0
}

// MeldedPoints 统计完成组与进行中牌组里所有牌的分值之和
func (p *PlayerCards) MeldedPoints() int {
	total := 0
	for _, book := range p.Books {
		total += sumPoints(book)
	}
	for _, cards := range p.PlayArea {
		total += sumPoints(cards)
	}
	return total
}

// UnplayedPoints 统计手牌与脚牌里所有牌的分值之和
func (p *PlayerCards) UnplayedPoints() int {
	return sumPoints(p.Hand) + sumPoints(p.Foot)
}

// CardCount 统计玩家所有区域的牌数，收走的红 3 也算在内
func (p *PlayerCards) CardCount() int {
	count := len(p.Hand) + len(p.Foot) + p.RedThrees
	for _, book := range p.Books {
		count += len(book)
	}
	for _, cards := range p.PlayArea {
		count += len(cards)
	}
	return count
}
