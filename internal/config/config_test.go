package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/smartystreets/goconvey/convey"
)

var configEnvVars = []string{
	"APP_PORT", "APP_HOST", "APP_ENV", "APP_GIN_MODE", "APP_CORS_ORIGINS",
	"APP_DATABASE_URL", "APP_DATABASE_DRIVER", "APP_SEED", "APP_LOG_LEVEL",
	"APP_AUTH_ENABLED", "APP_JWT_SECRET", "APP_CONFIG", "DB_URI",
}

func clearConfigEnvVars() {
	for _, v := range configEnvVars {
		_ = os.Unsetenv(v)
	}
}

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	convey.Convey("Given the configuration loader", t, func() {
		clearConfigEnvVars()
		convey.Reset(clearConfigEnvVars)

		convey.Convey("When nothing is set", func() {
			cfg, err := LoadConfig()

			convey.Convey("Then the defaults are used", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, 5555)
				convey.So(cfg.Host, convey.ShouldEqual, "localhost")
				convey.So(cfg.DatabaseURL, convey.ShouldEqual, DefaultDatabaseURL)
				convey.So(cfg.Seed, convey.ShouldBeTrue)
				convey.So(cfg.AuthEnabled, convey.ShouldBeFalse)
				convey.So(cfg.AllowedOrigins(), convey.ShouldResemble, []string{"*"})
			})
		})

		convey.Convey("When APP_ variables are set", func() {
			os.Setenv("APP_PORT", "9000")
			os.Setenv("APP_HOST", "0.0.0.0")
			os.Setenv("APP_LOG_LEVEL", "warn")
			os.Setenv("APP_SEED", "false")
			os.Setenv("APP_CORS_ORIGINS", "http://a.test, http://b.test")

			cfg, err := LoadConfig()

			convey.Convey("Then they override the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, 9000)
				convey.So(cfg.Host, convey.ShouldEqual, "0.0.0.0")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.Seed, convey.ShouldBeFalse)
				convey.So(cfg.Addr(), convey.ShouldEqual, "0.0.0.0:9000")
				convey.So(cfg.AllowedOrigins(), convey.ShouldResemble, []string{"http://a.test", "http://b.test"})
			})
		})

		convey.Convey("When DB_URI and APP_DATABASE_URL are both set", func() {
			os.Setenv("APP_DATABASE_URL", "sqlite:///other.db")
			os.Setenv("DB_URI", "postgres://pizza:secret@db:5432/pizza")

			cfg, err := LoadConfig()

			convey.Convey("Then DB_URI wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.DatabaseURL, convey.ShouldEqual, "postgres://pizza:secret@db:5432/pizza")
				convey.So(cfg.String(), convey.ShouldNotContainSubstring, "secret")
			})
		})

		convey.Convey("When a YAML file is given", func() {
			path := filepath.Join(t.TempDir(), "config.yaml")
			content := "port: 7000\nenv: production\nauth_enabled: true\njwt_secret: 0123456789abcdef0123456789abcdef\n"
			convey.So(os.WriteFile(path, []byte(content), 0o600), convey.ShouldBeNil)
			os.Setenv("APP_CONFIG", path)
			os.Setenv("APP_PORT", "7001")

			cfg, err := LoadConfig()

			convey.Convey("Then the file is applied below the environment", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, 7001)
				convey.So(cfg.Env, convey.ShouldEqual, "production")
				convey.So(cfg.AuthEnabled, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the config file does not exist", func() {
			os.Setenv("APP_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

			cfg, err := LoadConfig()

			convey.Convey("Then loading fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the port is not a number", func() {
			os.Setenv("APP_PORT", "not_a_number")

			cfg, err := LoadConfig()

			convey.Convey("Then loading fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When auth is enabled without a long enough secret", func() {
			os.Setenv("APP_AUTH_ENABLED", "true")
			os.Setenv("APP_JWT_SECRET", "short")

			_, err := LoadConfig()

			convey.Convey("Then validation rejects it", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "jwt_secret")
			})
		})

		convey.Convey("When the driver is unknown", func() {
			os.Setenv("APP_DATABASE_DRIVER", "oracle")

			_, err := LoadConfig()

			convey.Convey("Then validation rejects it", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestLevelForEnvironment(t *testing.T) {
	cases := map[string]logrus.Level{
		"development": logrus.DebugLevel,
		"production":  logrus.ErrorLevel,
		"staging":     logrus.InfoLevel,
	}
	for env, want := range cases {
		if got := LevelForEnvironment(env); got != want {
			t.Errorf("LevelForEnvironment(%q) = %v, expected %v", env, got, want)
		}
	}
}

func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
