package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host      string `envconfig:"HOST"`
	Port      string `envconfig:"PORT"`
	Domain    string `envconfig:"DOMAIN"`
	Prefix    string `envconfig:"PREFIX"`
	Mode      Mode   `envconfig:"MODE"`
	Mysql     Mysql
	Redis     Redis
	JWT       JWT
	Google    Google
	Challenge Challenge
	Log       Log `mapstructure:"Log"`
}

type Mysql struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
}

type Redis struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWT struct {
	AccessSecret string `envconfig:"ACCESS_SECRET"`
	AccessExpire int64  `envconfig:"ACCESS_EXPIRE"`
}

// Google Google OAuth 相关配置
type Google struct {
	ClientID     string `envconfig:"CLIENT_ID" mapstructure:"client_id"`
	ClientSecret string `envconfig:"CLIENT_SECRET" mapstructure:"client_secret"`
	// TokenURL 和 UserInfoURL 可被覆盖，便于测试时指向本地 mock
	TokenURL    string   `envconfig:"TOKEN_URL" mapstructure:"token_url"`
	UserInfoURL string   `envconfig:"USERINFO_URL" mapstructure:"userinfo_url"`
	AdminEmails []string `envconfig:"ADMIN_EMAILS" mapstructure:"admin_emails"` // 管理员邮箱白名单
}

// Challenge 挑战相关的数值配置，注入而非散落在代码里
type Challenge struct {
	LengthDays   int `envconfig:"LENGTH_DAYS" mapstructure:"length_days"`     // 挑战周期天数，默认30
	LookbackDays int `envconfig:"LOOKBACK_DAYS" mapstructure:"lookback_days"` // 进度接口回看天数，默认7
	MaxHabits    int `envconfig:"MAX_HABITS" mapstructure:"max_habits"`       // 每个挑战的最大习惯数，默认10
	CacheTTL     int `envconfig:"CACHE_TTL" mapstructure:"cache_ttl"`         // 进度缓存秒数，默认300
}

type Log struct {
	FilePath   string `envconfig:"LOG_FILE_PATH" mapstructure:"file_path"`     // 日志文件路径
	Level      string `envconfig:"LOG_LEVEL" mapstructure:"level"`             // 日志级别：debug, info, warn, error
	MaxSize    int    `envconfig:"LOG_MAX_SIZE" mapstructure:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `envconfig:"LOG_MAX_AGE" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `envconfig:"LOG_COMPRESS" mapstructure:"compress"`       // 是否压缩旧日志文件
}
