package player

import (
	"maps"
	"slices"

	"github.com/palemoky/hand-and-foot/internal/apperrors"
	"github.com/palemoky/hand-and-foot/internal/game/card"
	"github.com/palemoky/hand-and-foot/internal/game/rule"
)

// CanPlayRank 校验一组牌能否加入指定点数的牌组，不修改任何状态。
// 规则按固定顺序判定：点数匹配 → 牌在手中 → 组内不超 7 张 →
// 新组不少于 3 张 → 万能牌严格少于普通牌。
func (p *PlayerCards) CanPlayRank(rank card.Rank, cards []card.Card) error {
	_, err := p.checkRank(rank, cards, p.Hand)
	return err
}

// checkRank 对单组牌做全部校验，成功时返回扣除这组牌后的剩余手牌
func (p *PlayerCards) checkRank(rank card.Rank, group, hand []card.Card) ([]card.Card, error) {
	for _, c := range group {
		if c.IsWild() {
			continue
		}
		if c.Rank != rank || !c.CanBeBooked() {
			return nil, apperrors.ErrNotAllCardsMatchRank
		}
	}
	remaining, ok := removeCards(hand, group)
	if !ok {
		return nil, apperrors.ErrNotAllCardsInHand
	}
	existing := p.PlayArea[rank]
	total := len(existing) + len(group)
	if total > BookSize {
		return nil, apperrors.ErrTooManyCardsInBook
	}
	if len(existing) == 0 && total < MinBookStart {
		return nil, apperrors.ErrTooFewCardsInBook
	}
	wilds := countWilds(existing) + countWilds(group)
	if wilds >= total-wilds {
		return nil, apperrors.ErrTooManyWildsInBook
	}
	return remaining, nil
}

// CanPlay 校验一次完整的亮牌动作。首次亮牌时所有组的总分
// 必须达到本轮门槛；各组的手牌消耗跨组累计，不允许一牌两用。
func (p *PlayerCards) CanPlay(round rule.Round, groups map[card.Rank][]card.Card) error {
	if !p.HasMelded() {
		total := 0
		for _, group := range groups {
			total += sumPoints(group)
		}
		if total < round.MeldThreshold() {
			return apperrors.ErrNotEnoughMeld
		}
	}
	hand := p.Hand
	for _, rank := range sortedRanks(groups) {
		remaining, err := p.checkRank(rank, groups[rank], hand)
		if err != nil {
			return err
		}
		hand = remaining
	}
	return nil
}

// Play 先整体校验再逐组提交，任何一组提交失败时回滚全部已提交的组
func (p *PlayerCards) Play(round rule.Round, groups map[card.Rank][]card.Card) error {
	if err := p.CanPlay(round, groups); err != nil {
		return err
	}
	saved := p.save()
	for _, rank := range sortedRanks(groups) {
		if err := p.PlayRank(rank, groups[rank]); err != nil {
			p.restore(saved)
			return err
		}
	}
	return nil
}

// PlayRank 把一组牌从手牌提交到对应点数的牌组，满 7 张时归档为完成的牌组。
// 提交会使手牌只剩一张或清空且没有脚牌时，仅在玩家此后能收牌结束时放行，
// 否则返回 ErrMustKeepOneCardInHand 且状态保持原样。
func (p *PlayerCards) PlayRank(rank card.Rank, cards []card.Card) error {
	remaining, err := p.checkRank(rank, cards, p.Hand)
	if err != nil {
		return err
	}
	if len(remaining) <= 1 && p.Foot == nil && !p.canGoOutAfter(rank, cards) {
		return apperrors.ErrMustKeepOneCardInHand
	}

	p.Hand = remaining
	entry := append(p.PlayArea[rank], cards...)
	if len(entry) == BookSize {
		p.Books = append(p.Books, entry)
		delete(p.PlayArea, rank)
	} else {
		p.PlayArea[rank] = entry
	}

	if len(p.Hand) == 0 && p.Foot != nil {
		p.Hand = p.Foot
		p.Foot = nil
	}
	return nil
}

// canGoOutAfter 判断这组牌提交之后玩家能否收牌结束，
// 若这组牌恰好凑满 7 张，则把新完成的组也计入
func (p *PlayerCards) canGoOutAfter(rank card.Rank, cards []card.Card) bool {
	clean := p.CleanBooks()
	dirty := p.DirtyBooks()
	existing := p.PlayArea[rank]
	if len(existing)+len(cards) == BookSize {
		switch {
		case countWilds(existing)+countWilds(cards) > 0:
			dirty++
		case rank != card.RankSeven:
			clean++
		}
	}
	return clean > 0 && dirty > 0
}

func sortedRanks(groups map[card.Rank][]card.Card) []card.Rank {
	return slices.Sorted(maps.Keys(groups))
}
