package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/hand-and-foot/internal/game/card"
	"github.com/palemoky/hand-and-foot/internal/game/player"
)

func TestScore(t *testing.T) {
	t.Parallel()

	p := player.New(
		[]card.Card{reg(card.RankAce, card.Heart)}, // 手牌剩 20 分
		[]card.Card{card.Joker()},                  // 脚牌剩 50 分
	)
	p.Books = [][]card.Card{
		{ // 干净组：7 张 9，70 分
			reg(card.RankNine, card.Diamond), reg(card.RankNine, card.Club), reg(card.RankNine, card.Heart),
			reg(card.RankNine, card.Spade), reg(card.RankNine, card.Diamond), reg(card.RankNine, card.Club),
			reg(card.RankNine, card.Heart),
		},
		{ // 含万能牌组：4 张 10 + 3 张 2，100 分
			reg(card.RankTen, card.Diamond), reg(card.RankTen, card.Club), reg(card.RankTen, card.Heart),
			reg(card.RankTen, card.Spade), reg(card.RankTwo, card.Heart), reg(card.RankTwo, card.Spade),
			reg(card.RankTwo, card.Club),
		},
		{ // 纯 7 组：7 张 7，35 分
			reg(card.RankSeven, card.Diamond), reg(card.RankSeven, card.Club), reg(card.RankSeven, card.Heart),
			reg(card.RankSeven, card.Spade), reg(card.RankSeven, card.Diamond), reg(card.RankSeven, card.Club),
			reg(card.RankSeven, card.Heart),
		},
	}
	p.PlayArea[card.RankFive] = []card.Card{ // 进行中 15 分
		reg(card.RankFive, card.Heart), reg(card.RankFive, card.Spade), reg(card.RankFive, card.Diamond),
	}
	p.RedThrees = 2

	empty := player.New(nil, nil)
	g := newTestGame(p, empty)

	// 500 + 300 + 1500 + (70+100+35+15) + 200 − (20+50) = 2650
	assert.Equal(t, []int{2650, 0}, g.Score())
}

func TestScoreNegative(t *testing.T) {
	t.Parallel()

	p := player.New(
		[]card.Card{card.Joker(), reg(card.RankAce, card.Spade)},
		[]card.Card{reg(card.RankThree, card.Heart)}, // 留在脚牌里的红 3 扣 100 分
	)
	g := newTestGame(p)

	assert.Equal(t, []int{-170}, g.Score())
}
