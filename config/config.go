package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// FileName is the configuration file looked up by Load, without extension.
const FileName = "obstaclesync"

// ServerConfig selects the game server to subscribe to.
type ServerConfig struct {
	Address    string `mapstructure:"address"`
	Version    string `mapstructure:"version"`
	PlayerName string `mapstructure:"playerName"`
}

// DefinitionsConfig points at a Tiled map holding obstacle definitions. An
// empty path selects the built-in catalog.
type DefinitionsConfig struct {
	Path string `mapstructure:"path"`
}

// SyncConfig sizes the client collision space the sync system maintains.
type SyncConfig struct {
	SpaceWidth  int `mapstructure:"spaceWidth"`
	SpaceHeight int `mapstructure:"spaceHeight"`
	CellSize    int `mapstructure:"cellSize"`
	// TickRate is the update loop frequency of headless runs, in Hz.
	TickRate int `mapstructure:"tickRate"`
}

// DoorConfig tunes the door leaf animation.
type DoorConfig struct {
	SwingDuration float64 `mapstructure:"swingDuration"` // seconds
}

// ReplayConfig controls capture files.
type ReplayConfig struct {
	// Record is the capture file written by a live session. Empty disables it.
	Record string `mapstructure:"record"`
}

// ViewerConfig sizes the debug viewer window.
type ViewerConfig struct {
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
	FontPath string `mapstructure:"fontPath"`
}

// Config is the full runtime configuration.
type Config struct {
	LogLevel    string            `mapstructure:"logLevel"`
	LogFormat   string            `mapstructure:"logFormat"`
	Server      ServerConfig      `mapstructure:"server"`
	Definitions DefinitionsConfig `mapstructure:"definitions"`
	Sync        SyncConfig        `mapstructure:"sync"`
	Door        DoorConfig        `mapstructure:"door"`
	Audio       AudioConfig       `mapstructure:"audio"`
	Replay      ReplayConfig      `mapstructure:"replay"`
	Viewer      ViewerConfig      `mapstructure:"viewer"`
}

// C is the loaded configuration. It holds the defaults until Load succeeds.
var C = Defaults()

// Defaults returns the configuration used when no file overrides it.
func Defaults() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "console",
		Server: ServerConfig{
			Address:    "localhost:7373",
			Version:    "dev",
			PlayerName: "observer",
		},
		Sync: SyncConfig{
			SpaceWidth:  1024,
			SpaceHeight: 1024,
			CellSize:    16,
			TickRate:    30,
		},
		Door: DoorConfig{
			SwingDuration: 0.2,
		},
		Audio: Audio,
		Viewer: ViewerConfig{
			Width:  1280,
			Height: 720,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("logFormat", d.LogFormat)

	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("server.version", d.Server.Version)
	v.SetDefault("server.playerName", d.Server.PlayerName)

	v.SetDefault("definitions.path", d.Definitions.Path)

	v.SetDefault("sync.spaceWidth", d.Sync.SpaceWidth)
	v.SetDefault("sync.spaceHeight", d.Sync.SpaceHeight)
	v.SetDefault("sync.cellSize", d.Sync.CellSize)
	v.SetDefault("sync.tickRate", d.Sync.TickRate)

	v.SetDefault("door.swingDuration", d.Door.SwingDuration)

	v.SetDefault("audio.hitVolume", d.Audio.HitVolume)
	v.SetDefault("audio.doorVolume", d.Audio.DoorVolume)
	v.SetDefault("audio.destroyedVolume", d.Audio.DestroyedVolume)

	v.SetDefault("replay.record", d.Replay.Record)

	v.SetDefault("viewer.width", d.Viewer.Width)
	v.SetDefault("viewer.height", d.Viewer.Height)
	v.SetDefault("viewer.fontPath", d.Viewer.FontPath)
}

// Load reads obstaclesync.json from configDir on top of the defaults and
// stores the result in C. A missing file is not an error.
func Load(configDir string) error {
	setDefaults(viper.GetViper())

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	C = cfg
	return nil
}

func (c Config) validate() error {
	if c.Sync.CellSize <= 0 || c.Sync.SpaceWidth <= 0 || c.Sync.SpaceHeight <= 0 {
		return fmt.Errorf("invalid config: sync space %dx%d cell %d",
			c.Sync.SpaceWidth, c.Sync.SpaceHeight, c.Sync.CellSize)
	}
	if c.Sync.TickRate <= 0 {
		return fmt.Errorf("invalid config: sync.tickRate %d", c.Sync.TickRate)
	}
	if c.Door.SwingDuration < 0 {
		return fmt.Errorf("invalid config: door.swingDuration %v", c.Door.SwingDuration)
	}
	return nil
}
