package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testSecret = "config-test-secret-0123456789"

func TestLoad_DefaultsWithEnvSecret(t *testing.T) {
	t.Setenv("CGPA_AUTH_JWT_SECRET", testSecret)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("默认端口应为 5000，实际 %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("默认驱动应为 postgres，实际 %s", cfg.Database.Driver)
	}
	if cfg.Auth.AccessTokenTTL != time.Hour {
		t.Errorf("默认 access ttl 应为 1h，实际 %v", cfg.Auth.AccessTokenTTL)
	}
	if cfg.RateLimit.LoginWindow != time.Minute || cfg.RateLimit.LoginLimit != 10 {
		t.Errorf("默认限流配置错误: %+v", cfg.RateLimit)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := strings.Join([]string{
		"server:",
		"  port: 8080",
		"db:",
		"  driver: sqlite",
		"  sqlite_path: test.db",
		"auth:",
		"  jwt_secret: " + testSecret,
		"  access_token_ttl: 30m",
		"log:",
		"  level: debug",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}
	t.Setenv("CGPA_SERVER_PORT", "9090")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("环境变量应覆盖配置文件端口，实际 %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverSQLite || cfg.Database.SQLitePath != "test.db" {
		t.Errorf("数据库配置读取错误: %+v", cfg.Database)
	}
	if cfg.Auth.AccessTokenTTL != 30*time.Minute {
		t.Errorf("access ttl 应为 30m，实际 %v", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("日志级别应为 debug，实际 %s", cfg.Log.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CGPA_AUTH_JWT_SECRET", testSecret)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("显式指定的配置文件不存在时应返回错误")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 5000},
			Database: DatabaseConfig{Driver: DriverPostgres},
			Auth:     AuthConfig{JWTSecret: testSecret},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty secret", func(c *Config) { c.Auth.JWTSecret = "" }, true},
		{"short secret", func(c *Config) { c.Auth.JWTSecret = "short" }, true},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, true},
		{"sqlite", func(c *Config) { c.Database.Driver = DriverSQLite }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDSN(t *testing.T) {
	c := &DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable", Timezone: "UTC"}
	want := "host=db port=5432 user=u password=p dbname=n sslmode=disable TimeZone=UTC"
	if got := c.DSN(); got != want {
		t.Errorf("DSN() = %q，期望 %q", got, want)
	}
}
