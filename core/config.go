package core

import (
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string // DEV (local; default), TEST, QA, PROD
		Build    string
		AppName  string

		Server       ServerConfig
		Database     DatabaseConfig
		RollbarToken string
	}

	ServerConfig struct {
		Host            string
		Addr            string
		DebugHost       string
		ShutdownTimeout time.Duration
	}

	DatabaseConfig struct {
		Engine        string
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		Host          string
		Port          string
		DisableTLS    bool
	}
)

func (c DatabaseConfig) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func NewConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Attendance API")
	conf.SetDefault("build", "dev")
	conf.SetDefault("server.host", "localhost")
	conf.SetDefault("server.addr", ":8000")
	conf.SetDefault("server.debugHost", ":4000")
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("database.engine", "postgres")
	conf.SetDefault("database.name", "attendance")
	conf.SetDefault("database.host", "localhost")
	conf.SetDefault("database.port", "5432")
	conf.SetDefault("database.disableTLS", true)

	env := os.Getenv("ENV")
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	c := &Config{
		Debug:        conf.GetBool("debug"),
		TestMode:     env == "TEST",
		Env:          env,
		Build:        conf.GetString("build"),
		AppName:      conf.GetString("appName"),
		RollbarToken: conf.GetString("rollbarToken"),
	}
	c.Server = ServerConfig{
		Host:            conf.GetString("server.host"),
		Addr:            conf.GetString("server.addr"),
		DebugHost:       conf.GetString("server.debugHost"),
		ShutdownTimeout: conf.GetDuration("server.shutdownTimeout"),
	}
	c.Database = DatabaseConfig{
		Engine:        conf.GetString("database.engine"),
		Name:          conf.GetString("database.name"),
		User:          conf.GetString("database.user"),
		Password:      conf.GetString("database.password"),
		AdminUser:     conf.GetString("database.adminUser"),
		AdminPassword: conf.GetString("database.adminPassword"),
		Host:          conf.GetString("database.host"),
		Port:          conf.GetString("database.port"),
		DisableTLS:    conf.GetBool("database.disableTLS"),
	}
	return c
}
