package repo

import (
	"encoding/json"
	"os"
	"path"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

type Duration time.Duration

func (d *Duration) MarshalText() (text []byte, err error) {
	return []byte(time.Duration(*d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	x, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(x)
	return nil
}

func StringToTimeDurationHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(Duration(5)) {
			return data, nil
		}

		d, err := time.ParseDuration(data.(string))
		if err != nil {
			return nil, err
		}
		return Duration(d), nil
	}
}

func (d *Duration) ToDuration() time.Duration {
	return time.Duration(*d)
}

func (d *Duration) String() string {
	return time.Duration(*d).String()
}

type Config struct {
	Ulimit  uint64  `mapstructure:"ulimit" toml:"ulimit"`
	Port    Port    `mapstructure:"port" toml:"port"`
	Storage Storage `mapstructure:"storage" toml:"storage"`
	Monitor Monitor `mapstructure:"monitor" toml:"monitor"`
	Log     Log     `mapstructure:"log" toml:"log"`
}

type Port struct {
	HTTP    int64 `mapstructure:"http" toml:"http"`
	Monitor int64 `mapstructure:"monitor" toml:"monitor"`
}

type Storage struct {
	KvType      string `mapstructure:"kv_type" toml:"kv_type"`
	KvCacheSize int    `mapstructure:"kv_cache_size" toml:"kv_cache_size"`
	Sync        bool   `mapstructure:"sync" toml:"sync"`
}

type Monitor struct {
	Enable bool `mapstructure:"enable" toml:"enable"`
}

type Log struct {
	Level            string `mapstructure:"level" toml:"level"`
	Filename         string `mapstructure:"filename" toml:"filename"`
	ReportCaller     bool   `mapstructure:"report_caller" toml:"report_caller"`
	EnableColor      bool   `mapstructure:"enable_color" toml:"enable_color"`
	DisableTimestamp bool   `mapstructure:"disable_timestamp" toml:"disable_timestamp"`

	// unit: day
	MaxAge uint `mapstructure:"max_age" toml:"max_age"`

	RotationTime Duration  `mapstructure:"rotation_time" toml:"rotation_time"`
	Module       LogModule `mapstructure:"module" toml:"module"`
}

type LogModule struct {
	API            string `mapstructure:"api" toml:"api"`
	Executor       string `mapstructure:"executor" toml:"executor"`
	Genesis        string `mapstructure:"genesis" toml:"genesis"`
	Storage        string `mapstructure:"storage" toml:"storage"`
	SystemContract string `mapstructure:"system_contract" toml:"system_contract"`
}

func (c *Config) Bytes() ([]byte, error) {
	ret, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}

	return ret, nil
}

func DefaultConfig() *Config {
	return &Config{
		Ulimit: 65535,
		Port: Port{
			HTTP:    8881,
			Monitor: 40011,
		},
		Storage: Storage{
			KvType:      KVStorageTypePebble,
			KvCacheSize: 128,
			Sync:        true,
		},
		Monitor: Monitor{
			Enable: true,
		},
		Log: Log{
			Level:            "info",
			Filename:         "token-ledger",
			ReportCaller:     false,
			EnableColor:      true,
			DisableTimestamp: false,
			MaxAge:           30,
			RotationTime:     Duration(24 * time.Hour),
			Module: LogModule{
				API:            "info",
				Executor:       "info",
				Genesis:        "info",
				Storage:        "info",
				SystemContract: "info",
			},
		},
	}
}

func LoadConfig(repoRoot string) (*Config, error) {
	cfg, err := func() (*Config, error) {
		cfg := DefaultConfig()
		cfgPath := path.Join(repoRoot, CfgFileName)
		if !FileExist(cfgPath) {
			err := os.MkdirAll(repoRoot, 0755)
			if err != nil {
				return nil, errors.Wrap(err, "failed to build default config")
			}

			if err := writeConfigWithEnv(cfgPath, cfg); err != nil {
				return nil, errors.Wrap(err, "failed to build default config")
			}
		} else {
			if err := CheckWritable(repoRoot); err != nil {
				return nil, err
			}
			if err := readConfigFromFile(cfgPath, cfg); err != nil {
				return nil, err
			}
		}

		return cfg, nil
	}()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	return cfg, nil
}
