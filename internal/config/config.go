package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"log"
)

type Config struct {
	Task Task
}

type Task struct {
	Interpreter  string        `env:"Task_Interpreter" envDefault:"python"`
	Script       string        `env:"Task_Script"`
	WorkDir      string        `env:"Task_WorkDir"`
	Label        string        `env:"Task_Label" envDefault:"IPTV Updater"`
	Interval     time.Duration `env:"Task_Interval"`
	HistoryDepth int           `env:"Task_HistoryDepth" envDefault:"32"`
	StatusPort   int           `env:"Task_StatusPort"`
}

func Load() *Config {
	_ = godotenv.Load()

	var c Config
	if err := env.Parse(&c); err != nil {
		log.Fatal(err)
	}

	return &c
}
