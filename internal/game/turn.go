package game

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/palemoky/hand-and-foot/internal/apperrors"
)

// TurnResult 一个回合的结果
type TurnResult int

const (
	TurnOver TurnResult = iota // 回合正常结束
	TurnOut                    // 玩家收牌，本轮结束
)

// turnResultNames 回合结果名称映射表
var turnResultNames = map[TurnResult]string{
	TurnOver: "Over",
	TurnOut:  "Out",
}

func (r TurnResult) String() string {
	if name, ok := turnResultNames[r]; ok {
		return name
	}
	return "Unknown"
}

// maxDiscardAttempts 弃牌阶段允许策略重试的次数上限，
// 防止始终给不出手中牌的策略造成死循环
const maxDiscardAttempts = 32

// TakeTurn 执行指定玩家的一个完整回合：
// 收红 3 → 抽牌或拿弃牌堆 → 再收红 3 → 亮牌 → 弃牌 → 脚牌检查。
// 轮转顺序由调用方决定，引擎不做强制
func (g *Game) TakeTurn(playerIdx int, s Strategy) (TurnResult, error) {
	p := g.Players[playerIdx]

	if err := g.resolveRedThrees(playerIdx); err != nil {
		return TurnOver, err
	}

	decision := s.ChooseDraw(g.Round, p)
	switch decision.Action {
	case ActionPickup:
		// 拿弃牌堆失败时退回为普通抽牌
		if err := g.pickup(playerIdx, decision.MeldGroups); err != nil {
			g.logger().WithFields(logrus.Fields{"player": playerIdx}).WithError(err).Debug("拿弃牌堆失败，改为抽牌")
			if err := g.draw(playerIdx); err != nil {
				return TurnOver, err
			}
		}
	default:
		if err := g.draw(playerIdx); err != nil {
			return TurnOver, err
		}
	}

	if err := g.resolveRedThrees(playerIdx); err != nil {
		return TurnOver, err
	}

	s.ChoosePlay(g.Round, p)

	if len(p.Hand) > 0 {
		discarded := false
		for range maxDiscardAttempts {
			c := s.ChooseDiscard(g.Round, p)
			pos := slices.Index(p.Hand, c)
			if pos < 0 {
				continue
			}
			p.Hand = slices.Delete(p.Hand, pos, pos+1)
			g.DiscardPile.Push(c)
			if c.IsWild() {
				g.Locked = true
			}
			discarded = true
			break
		}
		if !discarded {
			return TurnOver, apperrors.ErrDiscardNotInHand
		}
	}

	if len(p.Hand) == 0 {
		if p.Foot != nil {
			p.Hand = p.Foot
			p.Foot = nil
		} else {
			g.logger().WithFields(logrus.Fields{"player": playerIdx}).Info("玩家收牌，本轮结束")
			return TurnOut, nil
		}
	}
	return TurnOver, nil
}
