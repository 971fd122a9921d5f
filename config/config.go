package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/player"
)

const (
	ModeServer  = "server"
	ModeConsole = "console"
)

const (
	envMode        = "EIGHTS_MODE"
	envTcpAddr     = "EIGHTS_TCP_ADDR"
	envWsAddr      = "EIGHTS_WS_ADDR"
	envDifficulty  = "EIGHTS_DIFFICULTY"
	envPlayTimeout = "EIGHTS_PLAY_TIMEOUT"
	envSeed        = "EIGHTS_SEED"
)

type Config struct {
	Mode        string
	TcpAddr     string
	WsAddr      string
	Difficulty  game.Difficulty
	PlayTimeout time.Duration
	// Seed 0 seeds every game from the clock.
	Seed int64
}

func Default() Config {
	return Config{
		Mode:        ModeServer,
		TcpAddr:     ":9999",
		WsAddr:      ":9998",
		Difficulty:  game.Medium,
		PlayTimeout: consts.PlayTimeout,
	}
}

// Load reads the environment after merging the given .env files (".env" when
// none are named). Missing files are ignored; variables already set win.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Default()
	if v, ok := lookup(envMode); ok {
		mode := strings.ToLower(v)
		if mode != ModeServer && mode != ModeConsole {
			return Config{}, fmt.Errorf("%s: unknown mode '%s'", envMode, v)
		}
		cfg.Mode = mode
	}
	if v, ok := lookup(envTcpAddr); ok {
		cfg.TcpAddr = v
	}
	// an explicitly empty address disables the websocket listener
	if v, ok := os.LookupEnv(envWsAddr); ok {
		cfg.WsAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup(envDifficulty); ok {
		difficulty, err := game.ParseDifficulty(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envDifficulty, err)
		}
		if _, err := player.NewStrategy(difficulty); err != nil {
			return Config{}, fmt.Errorf("%s: %w", envDifficulty, err)
		}
		cfg.Difficulty = difficulty
	}
	if v, ok := lookup(envPlayTimeout); ok {
		timeout, err := time.ParseDuration(v)
		if err != nil || timeout <= 0 {
			return Config{}, fmt.Errorf("%s: invalid duration '%s'", envPlayTimeout, v)
		}
		cfg.PlayTimeout = timeout
	}
	if v, ok := lookup(envSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envSeed, err)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}

func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}
