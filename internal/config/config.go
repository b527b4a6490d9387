package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config 示例驱动配置
type Config struct {
	Game GameConfig `yaml:"game"`
	Log  LogConfig  `yaml:"log"`
}

// GameConfig 对局配置
type GameConfig struct {
	Players int    `yaml:"players"` // 玩家人数
	Rounds  int    `yaml:"rounds"`  // 进行的轮数（1-4）
	Seed    uint64 `yaml:"seed"`    // 洗牌种子，0 表示随机
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 设置默认值
	if cfg.Game.Players == 0 {
		cfg.Game.Players = 4
	}
	if cfg.Game.Rounds == 0 {
		cfg.Game.Rounds = 4
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Players: 4,
			Rounds:  4,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
