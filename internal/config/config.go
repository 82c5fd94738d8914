// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Auth struct {
		// 管理APIのJWT署名に使う共有シークレット
		Secret string `mapstructure:"secret"`
	} `mapstructure:"auth"`
	LLM struct {
		APIKey string `mapstructure:"api_key"`
		// OpenAI互換のChat CompletionsエンドポイントURL
		APIURL string `mapstructure:"api_url"`
		Model  string `mapstructure:"model"`
		// 1リクエストのタイムアウト（秒）。ハングさせずfail fastする
		TimeoutSeconds int `mapstructure:"timeout_seconds"`
		// 同一コンテンツ内の連続生成コール間に挟む待ち時間（秒）
		RequestIntervalSeconds int `mapstructure:"request_interval_seconds"`
	} `mapstructure:"llm"`
	TTS struct {
		APIKey       string `mapstructure:"api_key"`
		LanguageCode string `mapstructure:"language_code"`
	} `mapstructure:"tts"`
	Mailer struct {
		// "ses" / "smtp" / "noop"
		Type string `mapstructure:"type"`
		From string `mapstructure:"from"`
		To   string `mapstructure:"to"`
		SMTP struct {
			Host     string `mapstructure:"host"`
			Port     string `mapstructure:"port"`
			Username string `mapstructure:"username"`
			Password string `mapstructure:"password"`
		} `mapstructure:"smtp"`
	} `mapstructure:"mailer"`
	SES struct {
		Region          string `mapstructure:"region"`
		AuthType        string `mapstructure:"auth_type"` // "static_credentials" or "iam_role"
		AccessKeyID     string `mapstructure:"access_key_id"`
		SecretAccessKey string `mapstructure:"secret_access_key"`
	} `mapstructure:"ses"`
	Scheduler struct {
		Enabled         bool `mapstructure:"enabled"`
		IntervalMinutes int  `mapstructure:"interval_minutes"`
	} `mapstructure:"scheduler"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数からの上書き (例: APP_LLM_API_KEY)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("llm.api_key", "OPENAI_API_KEY")
	viper.BindEnv("tts.api_key", "GOOGLE_TTS_API_KEY")
	viper.BindEnv("auth.secret", "ADMIN_JWT_SECRET")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.LLM.APIURL == "" {
		Cfg.LLM.APIURL = DefaultLLMAPIURL
	}
	if Cfg.LLM.Model == "" {
		Cfg.LLM.Model = DefaultLLMModel
	}
	if Cfg.LLM.TimeoutSeconds <= 0 {
		Cfg.LLM.TimeoutSeconds = DefaultLLMTimeoutSeconds
	}
	if Cfg.LLM.RequestIntervalSeconds <= 0 {
		Cfg.LLM.RequestIntervalSeconds = DefaultLLMRequestIntervalSeconds
	}
	if Cfg.TTS.LanguageCode == "" {
		Cfg.TTS.LanguageCode = DefaultTTSLanguageCode
	}
	if Cfg.Mailer.Type == "" {
		Cfg.Mailer.Type = "noop"
	}
	if Cfg.Scheduler.IntervalMinutes <= 0 {
		Cfg.Scheduler.IntervalMinutes = DefaultSchedulerIntervalMinutes
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.Auth.Secret == "" {
		log.Println("Warning: Auth secret is not set. Admin API will reject all requests.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("LLM Model: %s", Cfg.LLM.Model)
	log.Printf("Scheduler Enabled: %t", Cfg.Scheduler.Enabled)

	return nil
}
