package main

import (
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultBasename = "results3"

// Config selects the input file, the outputs and the rendering options.
type Config struct {
	Basename string
	Dir      string
	DPI      int
	Formats  []string
	Seed     int64
	Show     bool
	Debug    bool
}

var vectorFormats = map[string]bool{
	"svg": true,
	"pdf": true,
	"eps": true,
}

// InputPath is <dir>/<basename>.csv.
func (c Config) InputPath() string {
	return filepath.Join(c.Dir, c.Basename+".csv")
}

// OutputPath is <dir>/<basename>.<ext>.
func (c Config) OutputPath(ext string) string {
	return filepath.Join(c.Dir, c.Basename+"."+ext)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("basename", defaultBasename)
	v.SetDefault("dir", ".")
	v.SetDefault("dpi", 200)
	v.SetDefault("formats", []string{})
	v.SetDefault("seed", 0)
	v.SetDefault("show", true)
	v.SetDefault("debug", false)
}

func bindFlags(fs *pflag.FlagSet, v *viper.Viper) {
	fs.String("dir", ".", "directory holding <basename>.csv and the plots")
	fs.Int("dpi", 200, "resolution of the PNG output")
	fs.StringSlice("format", nil, "extra output formats: svg, pdf, eps")
	fs.Int64("seed", 0, "jitter seed (0 picks one from the clock)")
	fs.Bool("show", true, "open the plot in gnuplot when a display is available")
	fs.Bool("debug", false, "debug logging")

	v.BindPFlag("dir", fs.Lookup("dir"))
	v.BindPFlag("dpi", fs.Lookup("dpi"))
	v.BindPFlag("formats", fs.Lookup("format"))
	v.BindPFlag("seed", fs.Lookup("seed"))
	v.BindPFlag("show", fs.Lookup("show"))
	v.BindPFlag("debug", fs.Lookup("debug"))
}

// loadConfig merges defaults, an optional config file, .env and
// BENCHPLOT_* environment variables, and any flags bound to v.
func loadConfig(v *viper.Viper, cfgFile string) (Config, error) {

	// A missing .env is fine.
	_ = godotenv.Load()

	setDefaults(v)

	v.SetEnvPrefix("BENCHPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", cfgFile)
		}
	} else {
		v.SetConfigName("benchplot")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, errors.Wrap(err, "read benchplot.yaml")
			}
		}
	}

	cfg := Config{
		Basename: strings.TrimSpace(v.GetString("basename")),
		Dir:      v.GetString("dir"),
		DPI:      v.GetInt("dpi"),
		Formats:  splitFormats(v.GetStringSlice("formats")),
		Seed:     v.GetInt64("seed"),
		Show:     v.GetBool("show"),
		Debug:    v.GetBool("debug"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Basename == "" {
		return errors.New("basename must not be empty")
	}
	if c.DPI <= 0 {
		return errors.Errorf("dpi must be positive, got %d", c.DPI)
	}
	for _, f := range c.Formats {
		if !vectorFormats[f] {
			return errors.Errorf("unsupported output format %q", f)
		}
	}
	return nil
}

// splitFormats accepts both repeated values and comma separated lists,
// lower-cases them and drops png, which is always written.
func splitFormats(in []string) []string {
	var out []string
	seen := map[string]bool{"png": true}
	for _, s := range in {
		for _, f := range strings.Split(s, ",") {
			f = strings.ToLower(strings.TrimSpace(f))
			if f == "" || seen[f] {
				continue
			}
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
