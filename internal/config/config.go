package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（5000）

	CartTTL        time.Duration // 放置カートを破棄するまでの時間（0で無効）
	CartSweepEvery time.Duration // 破棄チェックの間隔
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port:           getenv("PORT", "5000"),
		CartTTL:        30 * time.Minute,
		CartSweepEvery: time.Minute,
	}

	if v := os.Getenv("CART_TTL_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("CART_TTL_MINUTES must be a number >= 0")
		}
		cfg.CartTTL = time.Duration(n) * time.Minute
	}

	if v := os.Getenv("CART_SWEEP_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("CART_SWEEP_SECONDS must be a number >= 1")
		}
		cfg.CartSweepEvery = time.Duration(n) * time.Second
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
