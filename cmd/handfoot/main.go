package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/palemoky/hand-and-foot/internal/apperrors"
	"github.com/palemoky/hand-and-foot/internal/config"
	"github.com/palemoky/hand-and-foot/internal/game"
	"github.com/palemoky/hand-and-foot/internal/game/rule"
	"github.com/palemoky/hand-and-foot/internal/logger"
	"github.com/palemoky/hand-and-foot/internal/strategy"
	"github.com/palemoky/hand-and-foot/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Warn("加载配置文件失败，使用默认配置")
		cfg = config.Default()
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		logrus.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Close()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logrus.WithFields(logrus.Fields{"players": cfg.Game.Players, "seed": seed}).Info("开始对局")

	lastRound := rule.Round(min(cfg.Game.Rounds, int(rule.RoundFour)))
	totals := make([]int, cfg.Game.Players)

	for r := rule.RoundOne; r <= lastRound; r++ {
		scores, err := playRound(cfg, r, seed)
		if err != nil {
			logrus.Fatalf("第 %s 轮失败: %v", r, err)
		}
		fmt.Println(ui.TitleStyle.Render("Round " + r.String()))
		fmt.Println(ui.RenderScores(scores))
		for i, s := range scores {
			totals[i] += s
		}
	}

	fmt.Println(ui.TitleStyle.Render("Totals"))
	fmt.Println(ui.RenderScores(totals))
}

// playRound 用参考策略把一轮打到有人收牌或抽牌堆耗尽
func playRound(cfg *config.Config, round rule.Round, seed uint64) ([]int, error) {
	g, err := game.Deal(cfg.Game.Players, round, seed+uint64(round))
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(seed, uint64(round)))
	strategies := make([]game.Strategy, cfg.Game.Players)
	for i := range strategies {
		// 一半玩家进取，一半随机
		if i%2 == 0 {
			strategies[i] = strategy.NewGreedy()
		} else {
			strategies[i] = strategy.NewRandom(rng)
		}
	}

	for turn := 0; ; turn++ {
		idx := turn % cfg.Game.Players
		result, err := g.TakeTurn(idx, strategies[idx])
		if errors.Is(err, apperrors.ErrNotEnoughCards) {
			// 抽牌堆耗尽，本轮就地计分
			logrus.WithField("turn", turn).Info("抽牌堆耗尽，本轮结束")
			break
		}
		if err != nil {
			return nil, err
		}
		if result == game.TurnOut {
			break
		}
	}
	return g.Score(), nil
}
