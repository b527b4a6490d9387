package game

import (
	"github.com/palemoky/hand-and-foot/internal/game/card"
	"github.com/palemoky/hand-and-foot/internal/game/player"
	"github.com/palemoky/hand-and-foot/internal/game/rule"
)

// DrawAction 抽牌阶段的选择
type DrawAction int

const (
	ActionDraw   DrawAction = iota // 从牌堆抽两张
	ActionPickup                   // 尝试拿弃牌堆
)

// DrawDecision 抽牌阶段的完整决定。选择 Pickup 时，
// MeldGroups 是准备与弃牌堆顶牌合并亮出的牌组
type DrawDecision struct {
	Action     DrawAction
	MeldGroups map[card.Rank][]card.Card
}

// Strategy 出牌决策接口，引擎在每回合的三个决策点回调。
// ChooseDraw 与 ChooseDiscard 只应读取玩家状态；
// ChoosePlay 可以调用任意次 Play，失败由策略自行处理。
type Strategy interface {
	ChooseDraw(round rule.Round, p *player.PlayerCards) DrawDecision
	ChoosePlay(round rule.Round, p *player.PlayerCards)
	ChooseDiscard(round rule.Round, p *player.PlayerCards) card.Card
}

// Funcs 用函数字段实现 Strategy，便于测试与临时策略
type Funcs struct {
	Draw    func(round rule.Round, p *player.PlayerCards) DrawDecision
	Play    func(round rule.Round, p *player.PlayerCards)
	Discard func(round rule.Round, p *player.PlayerCards) card.Card
}

func (f Funcs) ChooseDraw(round rule.Round, p *player.PlayerCards) DrawDecision {
	if f.Draw == nil {
		return DrawDecision{Action: ActionDraw}
	}
	return f.Draw(round, p)
}

func (f Funcs) ChoosePlay(round rule.Round, p *player.PlayerCards) {
	if f.Play != nil {
		f.Play(round, p)
	}
}

func (f Funcs) ChooseDiscard(round rule.Round, p *player.PlayerCards) card.Card {
	if f.Discard == nil {
		return card.Card{}
	}
	return f.Discard(round, p)
}
