package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", true)
	Conf.SetDefault("appName", "SWK211")
	Conf.SetDefault("address", ":8050")
	Conf.SetDefault("build", "dev")
	Conf.SetDefault("disableReqLogs", false)
	Conf.SetDefault("figureWidth", 640)
	Conf.SetDefault("figureHeight", 480)
	Conf.SetDefault("rollbarToken", "")
	Conf.SetDefault("otlpEndpoint", "")
	Conf.SetDefault("debugAddress", "") // expvar on /debug/vars; off when empty
	Conf.SetDefault("shutdownTimeout", 10*time.Second)

	env := deployEnv(os.Getenv("ENV"))
	Conf.SetDefault("testMode", env == "TEST")
	Conf.SetDefault("env", env)
	Conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	Conf.AutomaticEnv()
}

// deployEnv normalises $ENV: DEV (local; default), TEST, QA or PROD.
func deployEnv(raw string) string {
	if env := strings.ToUpper(strings.TrimSpace(raw)); env != "" {
		return env
	}
	return "DEV"
}
