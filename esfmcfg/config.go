// Package esfmcfg loads and saves host-side playback configuration for
// tools built on top of the esfm core (host sample rate, stereo output,
// native-mode flag), following the teacher's TOML config-directory
// convention.
package esfmcfg

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"

	"esfm/log"
)

type Config struct {
	Output  OutputConfig  `toml:"output"`
	General GeneralConfig `toml:"general"`
}

type OutputConfig struct {
	HostSampleRate int  `toml:"host_sample_rate"`
	Stereo         bool `toml:"stereo"`
}

type GeneralConfig struct {
	NativeMode bool `toml:"native_mode"`
}

var ConfigDir string = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("esfm")
	if err := configdir.MakePath(dir); err != nil {
		log.ModCore.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})()

const cfgFilename = "config.toml"

// LoadOrDefault loads the configuration from the esfm config directory,
// or returns a usable default one if none exists yet.
func LoadOrDefault() Config {
	var cfg Config
	_, err := toml.DecodeFile(filepath.Join(ConfigDir, cfgFilename), &cfg)
	if err != nil {
		return Config{
			Output: OutputConfig{
				HostSampleRate: 48000,
				Stereo:         true,
			},
			General: GeneralConfig{
				NativeMode: true,
			},
		}
	}
	return cfg
}

// Save writes cfg into the esfm config directory.
func Save(cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(ConfigDir, cfgFilename), buf, 0644)
}
