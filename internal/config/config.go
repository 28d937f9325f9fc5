package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                  `mapstructure:",squash"`
	Server              Server               `mapstructure:",squash"`
	Database            Database             `mapstructure:",squash"`
	Auth                Auth                 `mapstructure:",squash"`
	AnalyticsCache      AnalyticsCacheConfig `mapstructure:",squash"`
	EngagementGenerator EngagementGenerator  `mapstructure:",squash"`
	Retention           Retention            `mapstructure:",squash"`
	SecretKey           string               `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// AnalyticsCacheConfig define, em segundos, o TTL de cada família de
// consulta do motor de análise
type AnalyticsCacheConfig struct {
	PerformanceSeconds  int `mapstructure:"cache_ttl_performance_seconds"`
	OptimalTimesSeconds int `mapstructure:"cache_ttl_optimal_times_seconds"`
	TrendsSeconds       int `mapstructure:"cache_ttl_trends_seconds"`
	PlatformsSeconds    int `mapstructure:"cache_ttl_platforms_seconds"`
	TopPostsSeconds     int `mapstructure:"cache_ttl_top_posts_seconds"`
	ComparisonSeconds   int `mapstructure:"cache_ttl_comparison_seconds"`
	DashboardSeconds    int `mapstructure:"cache_ttl_dashboard_seconds"`
}

func (c AnalyticsCacheConfig) PerformanceTTL() time.Duration {
	return time.Duration(c.PerformanceSeconds) * time.Second
}

func (c AnalyticsCacheConfig) OptimalTimesTTL() time.Duration {
	return time.Duration(c.OptimalTimesSeconds) * time.Second
}

func (c AnalyticsCacheConfig) TrendsTTL() time.Duration {
	return time.Duration(c.TrendsSeconds) * time.Second
}

func (c AnalyticsCacheConfig) PlatformsTTL() time.Duration {
	return time.Duration(c.PlatformsSeconds) * time.Second
}

func (c AnalyticsCacheConfig) TopPostsTTL() time.Duration {
	return time.Duration(c.TopPostsSeconds) * time.Second
}

func (c AnalyticsCacheConfig) ComparisonTTL() time.Duration {
	return time.Duration(c.ComparisonSeconds) * time.Second
}

func (c AnalyticsCacheConfig) DashboardTTL() time.Duration {
	return time.Duration(c.DashboardSeconds) * time.Second
}

// EngagementGenerator configura o gerador de engajamento sintético
type EngagementGenerator struct {
	IntervalSeconds int  `mapstructure:"engagement_generator_interval_seconds"`
	MaxPostsPerTick int  `mapstructure:"engagement_generator_max_posts_per_tick"`
	Enabled         bool `mapstructure:"engagement_generator_enabled"`
}

// Retention configura a limpeza diária de eventos antigos
type Retention struct {
	CronSchedule string `mapstructure:"retention_cron"`
	Days         int    `mapstructure:"retention_days"`
	Enabled      bool   `mapstructure:"retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/engagement")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// TTLs por família de consulta, em segundos
	viper.SetDefault("CACHE_TTL_PERFORMANCE_SECONDS", 600)
	viper.SetDefault("CACHE_TTL_OPTIMAL_TIMES_SECONDS", 3600)
	viper.SetDefault("CACHE_TTL_TRENDS_SECONDS", 900)
	viper.SetDefault("CACHE_TTL_PLATFORMS_SECONDS", 900)
	viper.SetDefault("CACHE_TTL_TOP_POSTS_SECONDS", 300)
	viper.SetDefault("CACHE_TTL_COMPARISON_SECONDS", 300)
	viper.SetDefault("CACHE_TTL_DASHBOARD_SECONDS", 300)

	// Defaults do gerador de engajamento sintético
	viper.SetDefault("ENGAGEMENT_GENERATOR_INTERVAL_SECONDS", 30)
	viper.SetDefault("ENGAGEMENT_GENERATOR_MAX_POSTS_PER_TICK", 1000)
	viper.SetDefault("ENGAGEMENT_GENERATOR_ENABLED", true)

	// Defaults da retenção de eventos
	viper.SetDefault("RETENTION_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("RETENTION_DAYS", 90)
	viper.SetDefault("RETENTION_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
