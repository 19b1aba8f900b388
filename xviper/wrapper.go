// Package xviper keeps one process wide viper instance behind a lock.
package xviper

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joshyorko/rpms2sbom/common"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "RPMS2SBOM"

type config struct {
	sync.Mutex
	engine *viper.Viper
	loaded string
}

var (
	guarded = newConfig()
)

func newConfig() *config {
	engine := viper.New()
	engine.SetEnvPrefix(EnvPrefix)
	engine.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	engine.AutomaticEnv()
	engine.SetConfigType("yaml")
	return &config{engine: engine}
}

// Reset drops every binding and loaded value. Tests use it between cases.
func Reset() {
	guarded.Lock()
	defer guarded.Unlock()
	guarded.engine = newConfig().engine
	guarded.loaded = ""
}

// Load reads filename into the configuration. A missing file is not an
// error unless explicit is set.
func Load(filename string, explicit bool) error {
	guarded.Lock()
	defer guarded.Unlock()

	_, err := os.Stat(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			common.Trace("no settings file at %q", filename)
			return nil
		}
		return err
	}
	guarded.engine.SetConfigFile(filename)
	err = guarded.engine.ReadInConfig()
	if err != nil {
		return err
	}
	guarded.loaded = filename
	common.Debug("loaded settings from %q", filename)
	return nil
}

func ConfigFileUsed() string {
	guarded.Lock()
	defer guarded.Unlock()
	return guarded.loaded
}

func SetDefault(key string, value interface{}) {
	guarded.Lock()
	defer guarded.Unlock()
	guarded.engine.SetDefault(key, value)
}

// BindFlag makes a changed command line flag win over file and environment.
func BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return nil
	}
	guarded.Lock()
	defer guarded.Unlock()
	return guarded.engine.BindPFlag(key, flag)
}

func GetString(key string) string {
	guarded.Lock()
	defer guarded.Unlock()
	return guarded.engine.GetString(key)
}

func GetBool(key string) bool {
	guarded.Lock()
	defer guarded.Unlock()
	return guarded.engine.GetBool(key)
}

func GetInt(key string) int {
	guarded.Lock()
	defer guarded.Unlock()
	return guarded.engine.GetInt(key)
}

func GetDuration(key string) time.Duration {
	guarded.Lock()
	defer guarded.Unlock()
	return guarded.engine.GetDuration(key)
}
