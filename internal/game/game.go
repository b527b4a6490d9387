package game

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/palemoky/hand-and-foot/internal/apperrors"
	"github.com/palemoky/hand-and-foot/internal/game/card"
	"github.com/palemoky/hand-and-foot/internal/game/player"
	"github.com/palemoky/hand-and-foot/internal/game/rule"
)

const (
	HandSize = 11 // 起始手牌张数
	FootSize = 11 // 脚牌张数

	drawCount  = 2 // 每次抽牌张数
	pickupSize = 7 // 拿弃牌堆所需的最少张数（堆顶 1 张 + 随拿 6 张）
)

// Game 定义一局（一轮）游戏的完整状态
type Game struct {
	ID          string
	Players     []*player.PlayerCards
	Round       rule.Round
	Deck        card.Deck // 抽牌堆
	DiscardPile card.Deck // 弃牌堆
	Locked      bool      // 弃牌堆是否锁定

	log *logrus.Entry
}

// Deal 洗匀 (numPlayers+1) 副牌并开出一局新游戏，
// 每名玩家各发 11 张手牌和 11 张脚牌。相同 seed 产生相同的牌序
func Deal(numPlayers int, round rule.Round, seed uint64) (*Game, error) {
	if numPlayers < 2 {
		return nil, fmt.Errorf("至少需要 2 名玩家，收到 %d", numPlayers)
	}

	rng := rand.New(rand.NewPCG(seed, uint64(numPlayers)))
	deck := card.DealDeck(numPlayers, rng)

	players := make([]*player.PlayerCards, 0, numPlayers)
	for range numPlayers {
		hand, err := deck.Take(HandSize)
		if err != nil {
			return nil, err
		}
		foot, err := deck.Take(FootSize)
		if err != nil {
			return nil, err
		}
		players = append(players, player.New(hand, foot))
	}

	id := uuid.NewString()
	return &Game{
		ID:          id,
		Players:     players,
		Round:       round,
		Deck:        deck,
		DiscardPile: card.Deck{},
		log:         logrus.WithFields(logrus.Fields{"game": id, "round": round.String()}),
	}, nil
}

// logger 返回本局的日志入口，字面量构造的 Game 也能安全使用
func (g *Game) logger() *logrus.Entry {
	if g.log == nil {
		g.log = logrus.WithField("game", g.ID)
	}
	return g.log
}

// resolveRedThrees 反复收走手牌中的红 3 并从牌堆补牌，
// 直到手牌中不再有红 3（补到的牌可能又是红 3）
func (g *Game) resolveRedThrees(playerIdx int) error {
	p := g.Players[playerIdx]
	for {
		removed := p.TakeRedThrees()
		if removed == 0 {
			return nil
		}
		g.logger().WithFields(logrus.Fields{"player": playerIdx, "count": removed}).Debug("收入红 3")
		drawn, err := g.Deck.Take(removed)
		if err != nil {
			return err
		}
		p.Hand = append(p.Hand, drawn...)
	}
}

// draw 从牌堆抽两张牌进手牌
func (g *Game) draw(playerIdx int) error {
	drawn, err := g.Deck.Take(drawCount)
	if err != nil {
		return err
	}
	g.Players[playerIdx].Hand = append(g.Players[playerIdx].Hand, drawn...)
	return nil
}

// pickup 尝试拿弃牌堆。整个过程是事务性的：
// 任何一步失败都把手牌和弃牌堆恢复到尝试之前的状态
func (g *Game) pickup(playerIdx int, meldGroups map[card.Rank][]card.Card) error {
	p := g.Players[playerIdx]

	if g.DiscardPile.Len() < pickupSize {
		return apperrors.ErrNotEnoughCards
	}

	taken, err := g.DiscardPile.Take(1)
	if err != nil {
		return err
	}
	top := taken[0]

	if !top.CanBeBooked() {
		g.DiscardPile.Push(top)
		return apperrors.ErrCanOnlyPickupBookable
	}
	if g.Locked && countRank(p.Hand, top.Rank) < 2 {
		g.DiscardPile.Push(top)
		return apperrors.ErrDeckIsLockedNeedTwoInHand
	}

	// 堆顶牌临时入手，与玩家给出的组在其点数处合并后必须能成功亮出
	p.Hand = append(p.Hand, top)
	merged := make(map[card.Rank][]card.Card, len(meldGroups)+1)
	maps.Copy(merged, meldGroups)
	merged[top.Rank] = append(slices.Clone(merged[top.Rank]), top)

	if err := p.Play(g.Round, merged); err != nil {
		p.Hand = p.Hand[:len(p.Hand)-1]
		g.DiscardPile.Push(top)
		return err
	}

	rest, err := g.DiscardPile.Take(pickupSize - 1)
	if err != nil {
		return err
	}
	p.Hand = append(p.Hand, rest...)
	g.Locked = false
	g.logger().WithFields(logrus.Fields{"player": playerIdx, "top": top.String()}).Debug("拿下弃牌堆")
	return nil
}

// countRank 统计手牌中指定点数的张数
func countRank(hand []card.Card, rank card.Rank) int {
	count := 0
	for _, c := range hand {
		if c.Rank == rank {
			count++
		}
	}
	return count
}

// CardCount 统计全场（抽牌堆、弃牌堆和所有玩家）的总牌数
func (g *Game) CardCount() int {
	count := g.Deck.Len() + g.DiscardPile.Len()
	for _, p := range g.Players {
		count += p.CardCount()
	}
	return count
}
