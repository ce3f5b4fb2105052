package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Admin struct {
		Token string `mapstructure:"token"`
	} `mapstructure:"admin"`
	Storage struct {
		// Driver selects the content store backend: "file", "cloudinary",
		// or "auto" (cloudinary when credentials are present and the
		// deployment is cloud-hosted, file otherwise).
		Driver          string `mapstructure:"driver"`
		DataDir         string `mapstructure:"data_dir"`
		CloudDeployment bool   `mapstructure:"cloud_deployment"`
	} `mapstructure:"storage"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Mail struct {
		SMTPHost string `mapstructure:"smtp_host"`
		SMTPPort string `mapstructure:"smtp_port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		To       string `mapstructure:"to"`
	} `mapstructure:"mail"`
	Feeds struct {
		GitHubUsername      string        `mapstructure:"github_username"`
		HuggingFaceUsername string        `mapstructure:"huggingface_username"`
		CacheTTL            time.Duration `mapstructure:"cache_ttl"`
	} `mapstructure:"feeds"`
	Poll struct {
		Interval time.Duration `mapstructure:"interval"`
	} `mapstructure:"poll"`
}

func LoadConfig(paths ...string) (cfg Config, err error) {

	err = godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		viper.AddConfigPath(p)
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err = viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("storage.driver", "auto")
	viper.SetDefault("storage.data_dir", "data")
	viper.SetDefault("feeds.github_username", "Vedag812")
	viper.SetDefault("feeds.huggingface_username", "Vedag812")
	viper.SetDefault("feeds.cache_ttl", time.Hour)
	viper.SetDefault("poll.interval", 3*time.Second)

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("admin.token", "ADMIN_TOKEN")
	viper.BindEnv("storage.driver", "STORAGE_DRIVER")
	viper.BindEnv("storage.data_dir", "DATA_DIR")
	viper.BindEnv("storage.cloud_deployment", "CLOUD_DEPLOYMENT")
	viper.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	viper.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	viper.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	viper.BindEnv("mail.smtp_host", "SMTP_HOST")
	viper.BindEnv("mail.smtp_port", "SMTP_PORT")
	viper.BindEnv("mail.user", "SMTP_USER")
	viper.BindEnv("mail.password", "SMTP_PASSWORD")
	viper.BindEnv("mail.to", "CONTACT_TO")
	viper.BindEnv("feeds.github_username", "GITHUB_USERNAME")
	viper.BindEnv("feeds.huggingface_username", "HUGGINGFACE_USERNAME")
	viper.BindEnv("feeds.cache_ttl", "FEED_CACHE_TTL")
	viper.BindEnv("poll.interval", "POLL_INTERVAL")

	err = viper.Unmarshal(&cfg)
	return
}

// BlobConfigured reports whether the Cloudinary mirror can be used at all.
func (c Config) BlobConfigured() bool {
	return c.Cloudinary.CloudName != "" && c.Cloudinary.ApiKey != "" && c.Cloudinary.ApiSecret != ""
}
