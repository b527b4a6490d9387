package card

import "strconv"

// Suit 定义花色
type Suit int

// Rank 定义点数
type Rank int

// Color 定义牌的颜色
type Color int

const (
	Black Color = iota
	Red
)

const (
	Diamond Suit = iota // 方块
	Club                // 梅花
	Heart               // 红心
	Spade               // 黑桃
	None                // 王牌无花色
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Diamond: "♦",
	Club:    "♣",
	Heart:   "♥",
	Spade:   "♠",
	None:    "",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// Color 返回花色对应的颜色
func (s Suit) Color() Color {
	if s == Heart || s == Diamond {
		return Red
	}
	return Black
}

// 点数从 3 开始递增，排序顺序即展示顺序：3 最小，2 最大，王牌单独最高
const (
	RankThree Rank = iota + 3
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
	RankAce
	RankTwo
	RankJoker
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	RankThree: "3",
	RankFour:  "4",
	RankFive:  "5",
	RankSix:   "6",
	RankSeven: "7",
	RankEight: "8",
	RankNine:  "9",
	RankTen:   "10",
	RankJack:  "J",
	RankQueen: "Q",
	RankKing:  "K",
	RankAce:   "A",
	RankTwo:   "2",
	RankJoker: "Joker",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// rankPoints 各点数的基础分值映射表
var rankPoints = map[Rank]int{
	RankThree: 0,
	RankFour:  5,
	RankFive:  5,
	RankSix:   5,
	RankSeven: 5,
	RankEight: 10,
	RankNine:  10,
	RankTen:   10,
	RankJack:  10,
	RankQueen: 10,
	RankKing:  10,
	RankAce:   20,
	RankTwo:   20,
	RankJoker: 50,
}

// Card 定义一张牌
type Card struct {
	Suit Suit
	Rank Rank
}

// Regular 创建一张普通牌
func Regular(r Rank, s Suit) Card {
	return Card{Suit: s, Rank: r}
}

// Joker 创建一张王牌
func Joker() Card {
	return Card{Suit: None, Rank: RankJoker}
}

// Color 返回牌的颜色
func (c Card) Color() Color {
	return c.Suit.Color()
}

// Points 返回牌的分值，红 3 特殊计为 100 分
func (c Card) Points() int {
	if c.IsRedThree() {
		return 100
	}
	return rankPoints[c.Rank]
}

// IsWild 判断是否为万能牌（王牌或任意花色的 2）
func (c Card) IsWild() bool {
	return c.Rank == RankJoker || c.Rank == RankTwo
}

// CanBeBooked 判断能否入组：王牌、2 和 3 均不可
func (c Card) CanBeBooked() bool {
	switch c.Rank {
	case RankJoker, RankTwo, RankThree:
		return false
	}
	return true
}

// IsRedThree 判断是否为红 3
func (c Card) IsRedThree() bool {
	return c.Rank == RankThree && c.Color() == Red
}

func (c Card) String() string {
	if c.Rank == RankJoker {
		return rankNames[RankJoker]
	}
	return c.Suit.String() + c.Rank.String()
}
