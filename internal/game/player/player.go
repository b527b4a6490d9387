package player

import (
	"maps"

	"github.com/palemoky/hand-and-foot/internal/game/card"
)

// BookSize 一组牌完成所需的张数
const BookSize = 7

// MinBookStart 新开一组牌的最少张数
const MinBookStart = 3

// PlayerCards 定义一名玩家的全部牌面状态
type PlayerCards struct {
	Hand      []card.Card               // 手牌
	Foot      []card.Card               // 脚牌，并入手牌后为 nil
	PlayArea  map[card.Rank][]card.Card // 进行中的牌组，按点数归档
	Books     [][]card.Card             // 已完成的牌组，每组恰好 7 张
	RedThrees int                       // 已收入的红 3 数量
}

// New 创建一名玩家的牌面状态
func New(hand, foot []card.Card) *PlayerCards {
	return &PlayerCards{
		Hand:     hand,
		Foot:     foot,
		PlayArea: make(map[card.Rank][]card.Card),
	}
}

// HasFoot 判断脚牌是否还未并入手牌
func (p *PlayerCards) HasFoot() bool {
	return p.Foot != nil
}

// HasMelded 判断玩家是否已经亮过牌（有进行中或已完成的牌组）
func (p *PlayerCards) HasMelded() bool {
	return len(p.PlayArea) > 0 || len(p.Books) > 0
}

// TakeRedThrees 移出手牌中的所有红 3 并计入红 3 数量，返回移出张数
func (p *PlayerCards) TakeRedThrees() int {
	kept := make([]card.Card, 0, len(p.Hand))
	removed := 0
	for _, c := range p.Hand {
		if c.IsRedThree() {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	p.Hand = kept
	p.RedThrees += removed
	return removed
}

// snapshot 保存可被 Play 回滚的全部字段
type snapshot struct {
	hand     []card.Card
	foot     []card.Card
	playArea map[card.Rank][]card.Card
	books    [][]card.Card
}

func (p *PlayerCards) save() snapshot {
	area := make(map[card.Rank][]card.Card, len(p.PlayArea))
	maps.Copy(area, p.PlayArea)
	return snapshot{hand: p.Hand, foot: p.Foot, playArea: area, books: p.Books}
}

func (p *PlayerCards) restore(s snapshot) {
	p.Hand = s.hand
	p.Foot = s.foot
	p.PlayArea = s.playArea
	p.Books = s.books
}

// removeCards 从 hand 中逐张移除 group 里的牌（每张只消耗一次），
// 返回剩余手牌；有任何一张不在手牌中则返回 false
func removeCards(hand, group []card.Card) ([]card.Card, bool) {
	remaining := make([]card.Card, len(hand))
	copy(remaining, hand)
	for _, c := range group {
		found := -1
		for i, h := range remaining {
			if h == c {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, false
		}
		remaining = append(remaining[:found], remaining[found+1:]...)
	}
	return remaining, true
}

func countWilds(cards []card.Card) int {
	wilds := 0
	for _, c := range cards {
		if c.IsWild() {
			wilds++
		}
	}
	return wilds
}

func sumPoints(cards []card.Card) int {
	total := 0
	for _, c := range cards {
		total += c.Points()
	}
	return total
}
