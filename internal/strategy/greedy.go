package strategy

import (
	"maps"
	"slices"

	"github.com/palemoky/hand-and-foot/internal/game"
	"github.com/palemoky/hand-and-foot/internal/game/card"
	"github.com/palemoky/hand-and-foot/internal/game/player"
	"github.com/palemoky/hand-and-foot/internal/game/rule"
)

// Greedy 简单进取策略：已亮过牌后尝试带对子去拿弃牌堆，
// 每回合亮出所有够张数的同点数组，弃掉分值最低的非万能牌
type Greedy struct{}

// NewGreedy 创建进取策略
func NewGreedy() *Greedy {
	return &Greedy{}
}

// naturalGroups 按点数归集手牌中可入组的普通牌
func naturalGroups(hand []card.Card) map[card.Rank][]card.Card {
	groups := make(map[card.Rank][]card.Card)
	for _, c := range hand {
		if !c.IsWild() && c.CanBeBooked() {
			groups[c.Rank] = append(groups[c.Rank], c)
		}
	}
	return groups
}

func (s *Greedy) ChooseDraw(_ rule.Round, p *player.PlayerCards) game.DrawDecision {
	// 看不到堆顶牌，只在已亮牌后带上最长的对子碰运气，失败引擎会退回抽牌
	if !p.HasMelded() {
		return game.DrawDecision{Action: game.ActionDraw}
	}
	var best card.Rank
	bestLen := 0
	groups := naturalGroups(p.Hand)
	for _, rank := range slices.Sorted(maps.Keys(groups)) {
		if len(groups[rank]) > bestLen {
			best, bestLen = rank, len(groups[rank])
		}
	}
	if bestLen < 2 {
		return game.DrawDecision{Action: game.ActionDraw}
	}
	return game.DrawDecision{
		Action:     game.ActionPickup,
		MeldGroups: map[card.Rank][]card.Card{best: groups[best][:2]},
	}
}

func (s *Greedy) ChoosePlay(round rule.Round, p *player.PlayerCards) {
	groups := make(map[card.Rank][]card.Card)
	total := 0
	for rank, cards := range naturalGroups(p.Hand) {
		room := player.BookSize - len(p.PlayArea[rank])
		if len(cards) > room {
			cards = cards[:room]
		}
		if len(p.PlayArea[rank]) == 0 && len(cards) < player.MinBookStart {
			continue
		}
		if len(cards) == 0 {
			continue
		}
		groups[rank] = cards
		for _, c := range cards {
			total += c.Points()
		}
	}
	if len(groups) == 0 {
		return
	}
	if !p.HasMelded() && total < round.MeldThreshold() {
		return
	}
	// 整体亮出失败就算了，下回合再说
	_ = p.Play(round, groups)
}

func (s *Greedy) ChooseDiscard(_ rule.Round, p *player.PlayerCards) card.Card {
	best := p.Hand[0]
	for _, c := range p.Hand[1:] {
		if best.IsWild() && !c.IsWild() {
			best = c
			continue
		}
		if !c.IsWild() && c.Points() < best.Points() {
			best = c
		}
	}
	return best
}
