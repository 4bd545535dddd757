package config

// Config 配置主体
type Config struct {
	Server             ServerConfig        `mapstructure:"server"`
	DB                 DBConfig            `mapstructure:"database"`
	Redis              RedisConfig         `mapstructure:"redis"`
	JWT                JWTConfig           `mapstructure:"jwt"`
	OAuth              OAuthConfig         `mapstructure:"oauth"`
	Admin              AdminConfig         `mapstructure:"admin"`
	Collector          CollectorConfig     `mapstructure:"collector"`
	Kafka              KafkaConfig         `mapstructure:"kafka"`
	KafkaPostConsumer  KafkaPostConsumer   `mapstructure:"kafka_engagement_consumer"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// JWTConfig 会话令牌配置
type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// OAuthConfig linux.do OAuth2 配置
type OAuthConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	AuthorizeURL string `mapstructure:"authorize_url"`
	TokenURL     string `mapstructure:"token_url"`
	UserInfoURL  string `mapstructure:"user_info_url"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

// AdminConfig 管理员名单（用户名或用户 ID 命中任一即视为管理员）
type AdminConfig struct {
	Usernames []string `mapstructure:"usernames"`
	UserIDs   []uint64 `mapstructure:"user_ids"`
}

// CollectorConfig 帖子采集配置
type CollectorConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent"`
	Version        string `mapstructure:"version"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaPostConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}
