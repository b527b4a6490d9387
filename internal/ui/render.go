package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/palemoky/hand-and-foot/internal/game/card"
)

// RenderCard 按牌的颜色渲染单张牌
func RenderCard(c card.Card) string {
	if c.Color() == card.Red {
		return RedStyle.Render(c.String())
	}
	return BlackStyle.Render(c.String())
}

// SortForDisplay 返回按展示顺序（点数升序，同点数按花色）排序的副本
func SortForDisplay(cards []card.Card) []card.Card {
	sorted := slices.Clone(cards)
	slices.SortFunc(sorted, func(a, b card.Card) int {
		if a.Rank != b.Rank {
			return int(a.Rank) - int(b.Rank)
		}
		return int(a.Suit) - int(b.Suit)
	})
	return sorted
}

// RenderHand 渲染一手牌
func RenderHand(cards []card.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range SortForDisplay(cards) {
		parts = append(parts, RenderCard(c))
	}
	return strings.Join(parts, " ")
}

// RenderScores 渲染得分表
func RenderScores(scores []int) string {
	lines := make([]string, 0, len(scores))
	for i, s := range scores {
		lines = append(lines, fmt.Sprintf("Player %d: %6d", i+1, s))
	}
	return BoxStyle.Render(strings.Join(lines, "\n"))
}
