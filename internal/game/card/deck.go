package card

import (
	"math/rand/v2"

	"github.com/palemoky/hand-and-foot/internal/apperrors"
)

// Deck 定义一叠牌，切片末尾为牌顶
type Deck []Card

// NewDeck 创建一副 54 张的标准牌（13 点数 × 4 花色 + 2 张王牌）
func NewDeck() Deck {
	deck := make(Deck, 0, 54)
	for s := Diamond; s <= Spade; s++ {
		for r := RankThree; r <= RankTwo; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	deck = append(deck, Joker(), Joker())
	return deck
}

// DealDeck 创建并洗匀 (numPlayers+1) 副牌
func DealDeck(numPlayers int, rng *rand.Rand) Deck {
	deck := make(Deck, 0, 54*(numPlayers+1))
	for range numPlayers + 1 {
		deck = append(deck, NewDeck()...)
	}
	deck.Shuffle(rng)
	return deck
}

// Shuffle 洗牌
func (d Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Take 从牌顶取出 n 张牌，牌不足时返回 ErrNotEnoughCards
func (d *Deck) Take(n int) ([]Card, error) {
	if len(*d) < n {
		return nil, apperrors.ErrNotEnoughCards
	}
	taken := make([]Card, 0, n)
	for range n {
		top := (*d)[len(*d)-1]
		*d = (*d)[:len(*d)-1]
		taken = append(taken, top)
	}
	return taken, nil
}

// Push 把一张牌放到牌顶
func (d *Deck) Push(c Card) {
	*d = append(*d, c)
}

// Len 返回剩余牌数
func (d Deck) Len() int {
	return len(d)
}

// Top 查看牌顶的牌，不移除
func (d Deck) Top() (Card, bool) {
	if len(d) == 0 {
		return Card{}, false
	}
	return d[len(d)-1], true
}
