package game

import (
	"slices"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/hand-and-foot/internal/apperrors"
	"github.com/palemoky/hand-and-foot/internal/game/card"
	"github.com/palemoky/hand-and-foot/internal/game/player"
	"github.com/palemoky/hand-and-foot/internal/game/rule"
)

func reg(r card.Rank, s card.Suit) card.Card {
	return card.Regular(r, s)
}

// newTestGame 构造一个手工布置的对局
func newTestGame(players ...*player.PlayerCards) *Game {
	return &Game{
		ID:      "test",
		Players: players,
		Round:   rule.RoundOne,
		log:     logrus.NewEntry(logrus.StandardLogger()),
	}
}

func TestDeal(t *testing.T) {
	t.Parallel()

	g, err := Deal(4, rule.RoundOne, 42)
	require.NoError(t, err)

	assert.Len(t, g.Players, 4)
	for _, p := range g.Players {
		assert.Len(t, p.Hand, HandSize)
		assert.Len(t, p.Foot, FootSize)
		assert.Empty(t, p.PlayArea)
		assert.Empty(t, p.Books)
		assert.Equal(t, 0, p.RedThrees)
	}
	assert.Equal(t, 5*54-4*(HandSize+FootSize), g.Deck.Len())
	assert.Equal(t, 0, g.DiscardPile.Len())
	assert.False(t, g.Locked)
	assert.Equal(t, 5*54, g.CardCount())
	assert.NotEmpty(t, g.ID)
}

func TestDealDeterministic(t *testing.T) {
	t.Parallel()

	a, err := Deal(4, rule.RoundTwo, 7)
	require.NoError(t, err)
	b, err := Deal(4, rule.RoundTwo, 7)
	require.NoError(t, err)
	assert.Equal(t, a.Deck, b.Deck)
	assert.Equal(t, a.Players[0].Hand, b.Players[0].Hand)
}

func TestDealTooFewPlayers(t *testing.T) {
	t.Parallel()

	_, err := Deal(1, rule.RoundOne, 1)
	assert.Error(t, err)
}

func TestResolveRedThrees(t *testing.T) {
	t.Parallel()

	t.Run("Replacements can be red threes too", func(t *testing.T) {
		t.Parallel()
		p := player.New([]card.Card{
			reg(card.RankThree, card.Heart),
			reg(card.RankThree, card.Diamond),
			reg(card.RankFour, card.Spade),
		}, nil)
		g := newTestGame(p)
		// 牌顶在切片末尾：第一次补牌会再补进一张红 3
		g.Deck = card.Deck{reg(card.RankSeven, card.Club), reg(card.RankSix, card.Spade), reg(card.RankThree, card.Heart)}

		require.NoError(t, g.resolveRedThrees(0))
		assert.Equal(t, 3, p.RedThrees)
		assert.Equal(t, 0, g.Deck.Len())
		assert.ElementsMatch(t, []card.Card{
			reg(card.RankFour, card.Spade),
			reg(card.RankSix, card.Spade),
			reg(card.RankSeven, card.Club),
		}, p.Hand)
		for _, c := range p.Hand {
			assert.False(t, c.IsRedThree())
		}
	})

	t.Run("No red threes is a no-op", func(t *testing.T) {
		t.Parallel()
		p := player.New([]card.Card{reg(card.RankFour, card.Spade)}, nil)
		g := newTestGame(p)
		require.NoError(t, g.resolveRedThrees(0))
		assert.Equal(t, 0, p.RedThrees)
	})

	t.Run("Empty deck fails", func(t *testing.T) {
		t.Parallel()
		p := player.New([]card.Card{reg(card.RankThree, card.Heart)}, nil)
		g := newTestGame(p)
		err := g.resolveRedThrees(0)
		assert.ErrorIs(t, err, apperrors.ErrNotEnoughCards)
	})
}

func TestDraw(t *testing.T) {
	t.Parallel()

	p := player.New(nil, nil)
	g := newTestGame(p)
	g.Deck = card.Deck{reg(card.RankSix, card.Spade), reg(card.RankSeven, card.Club)}

	require.NoError(t, g.draw(0))
	assert.Len(t, p.Hand, 2)

	err := g.draw(0)
	assert.ErrorIs(t, err, apperrors.ErrNotEnoughCards)
}

// pickupPile 构造一个 7 张的弃牌堆，top 放在堆顶
func pickupPile(top card.Card) card.Deck {
	return card.Deck{
		reg(card.RankEight, card.Club), reg(card.RankNine, card.Club), reg(card.RankTen, card.Club),
		reg(card.RankJack, card.Club), reg(card.RankQueen, card.Club), reg(card.RankKing, card.Club),
		top,
	}
}

// meldedPlayer 构造一名已亮过牌、手持两张 5 和一张 2 的玩家
func meldedPlayer() *player.PlayerCards {
	p := player.New([]card.Card{
		reg(card.RankFive, card.Spade), reg(card.RankFive, card.Diamond), reg(card.RankTwo, card.Club),
		reg(card.RankNine, card.Club), reg(card.RankNine, card.Diamond), reg(card.RankKing, card.Club),
	}, nil)
	p.PlayArea[card.RankNine] = []card.Card{
		reg(card.RankNine, card.Heart), reg(card.RankNine, card.Spade), reg(card.RankNine, card.Diamond),
	}
	return p
}

func fiveGroups() map[card.Rank][]card.Card {
	return map[card.Rank][]card.Card{
		card.RankFive: {reg(card.RankFive, card.Spade), reg(card.RankFive, card.Diamond), reg(card.RankTwo, card.Club)},
	}
}

func TestPickup(t *testing.T) {
	t.Parallel()

	t.Run("Success forms a book and moves six more cards", func(t *testing.T) {
		t.Parallel()
		p := meldedPlayer()
		g := newTestGame(p)
		g.DiscardPile = pickupPile(reg(card.RankFive, card.Heart))

		require.NoError(t, g.pickup(0, fiveGroups()))
		assert.Equal(t, 0, g.DiscardPile.Len())
		// 堆顶 5 与两张 5、一张 2 合并成 4 张的组，恰好一张万能牌
		assert.Len(t, p.PlayArea[card.RankFive], 4)
		// 手牌：原 6 张 − 亮出 3 张 + 随拿 6 张
		assert.Len(t, p.Hand, 9)
		assert.False(t, g.Locked)
	})

	t.Run("Pile shorter than seven", func(t *testing.T) {
		t.Parallel()
		p := meldedPlayer()
		g := newTestGame(p)
		g.DiscardPile = pickupPile(reg(card.RankFive, card.Heart))[1:]

		err := g.pickup(0, fiveGroups())
		assert.ErrorIs(t, err, apperrors.ErrNotEnoughCards)
	})

	t.Run("Unbookable top rolls back", func(t *testing.T) {
		t.Parallel()
		p := meldedPlayer()
		g := newTestGame(p)
		pile := pickupPile(reg(card.RankTwo, card.Spade))
		g.DiscardPile = slices.Clone(pile)
		hand := slices.Clone(p.Hand)

		err := g.pickup(0, fiveGroups())
		assert.ErrorIs(t, err, apperrors.ErrCanOnlyPickupBookable)
		assert.Equal(t, pile, g.DiscardPile)
		assert.ElementsMatch(t, hand, p.Hand)
	})

	t.Run("Locked pile needs two of the top rank", func(t *testing.T) {
		t.Parallel()
		p := meldedPlayer()
		g := newTestGame(p)
		pile := pickupPile(reg(card.RankKing, card.Heart))
		g.DiscardPile = slices.Clone(pile)
		g.Locked = true
		hand := slices.Clone(p.Hand)

		// 手中只有一张 K
		err := g.pickup(0, map[card.Rank][]card.Card{})
		assert.ErrorIs(t, err, apperrors.ErrDeckIsLockedNeedTwoInHand)
		assert.Equal(t, pile, g.DiscardPile)
		assert.ElementsMatch(t, hand, p.Hand)
	})

	t.Run("Locked pile opens with two in hand", func(t *testing.T) {
		t.Parallel()
		p := meldedPlayer()
		g := newTestGame(p)
		g.DiscardPile = pickupPile(reg(card.RankFive, card.Heart))
		g.Locked = true

		require.NoError(t, g.pickup(0, fiveGroups()))
		assert.False(t, g.Locked)
	})

	t.Run("Failed meld restores hand and pile", func(t *testing.T) {
		t.Parallel()
		p := meldedPlayer()
		g := newTestGame(p)
		pile := pickupPile(reg(card.RankFive, card.Heart))
		g.DiscardPile = slices.Clone(pile)
		hand := slices.Clone(p.Hand)

		// 不带组：堆顶 5 只能单独成组，不足 3 张
		err := g.pickup(0, nil)
		assert.ErrorIs(t, err, apperrors.ErrTooFewCardsInBook)
		assert.Equal(t, pile, g.DiscardPile)
		assert.ElementsMatch(t, hand, p.Hand)
	})

	t.Run("First meld via pickup must reach the threshold", func(t *testing.T) {
		t.Parallel()
		p := player.New([]card.Card{
			reg(card.RankFive, card.Spade), reg(card.RankFive, card.Diamond), reg(card.RankTwo, card.Club),
			reg(card.RankNine, card.Club), reg(card.RankNine, card.Diamond), reg(card.RankKing, card.Club),
		}, nil)
		g := newTestGame(p)
		pile := pickupPile(reg(card.RankFive, card.Heart))
		g.DiscardPile = slices.Clone(pile)
		hand := slices.Clone(p.Hand)

		// 35 分，未达第一轮 90 分门槛
		err := g.pickup(0, fiveGroups())
		assert.ErrorIs(t, err, apperrors.ErrNotEnoughMeld)
		assert.Equal(t, pile, g.DiscardPile)
		assert.ElementsMatch(t, hand, p.Hand)
	})
}
