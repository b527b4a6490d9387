// Package strategy 提供示例驱动与集成测试使用的参考策略
package strategy

import (
	"math/rand/v2"

	"github.com/palemoky/hand-and-foot/internal/game"
	"github.com/palemoky/hand-and-foot/internal/game/card"
	"github.com/palemoky/hand-and-foot/internal/game/player"
	"github.com/palemoky/hand-and-foot/internal/game/rule"
)

// Random 基线策略：总是抽牌、从不亮牌、随机弃一张手牌
type Random struct {
	rng *rand.Rand
}

// NewRandom 创建随机策略
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (s *Random) ChooseDraw(_ rule.Round, _ *player.PlayerCards) game.DrawDecision {
	return game.DrawDecision{Action: game.ActionDraw}
}

func (s *Random) ChoosePlay(_ rule.Round, _ *player.PlayerCards) {}

func (s *Random) ChooseDiscard(_ rule.Round, p *player.PlayerCards) card.Card {
	return p.Hand[s.rng.IntN(len(p.Hand))]
}
