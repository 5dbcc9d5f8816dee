package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Renegatto/line-chart-test-task/pkg/zscore"
)

const envPrefix = "ZSCORECHART"

// optionFlags maps option keys to flag names.
var optionFlags = []struct {
	key  string
	flag string
}{
	{"sheet", "sheet"},
	{"field", "field"},
	{"label", "label"},
	{"primary", "primary"},
	{"highlight", "highlight"},
	{"deviant", "deviant"},
	{"normal_fill", "normal-fill"},
	{"normal_stroke", "normal-stroke"},
	{"active_fill", "active-fill"},
	{"gradient_id", "gradient-id"},
	{"deviation", "deviation"},
	{"format", "format"},
	{"log_level", "log-level"},
}

// addOptionFlags registers the highlighting flags with defaults from
// zscore.DefaultOptions.
func addOptionFlags(fs *pflag.FlagSet) {
	d := zscore.DefaultOptions()
	fs.String("sheet", d.Sheet, "Sheet to read (default: first sheet)")
	fs.String("field", d.Field, "Numeric field (header name) to highlight")
	fs.String("label", d.LabelField, "Field used as category label")
	fs.String("primary", d.PrimaryColor, "Line color outside the one-sigma band")
	fs.String("highlight", d.HighlightColor, "Line color inside the one-sigma band")
	fs.String("deviant", d.DeviantColor, "Marker color of deviant points")
	fs.String("normal-fill", d.NormalFill, "Marker fill of normal points")
	fs.String("normal-stroke", d.NormalStroke, "Marker stroke of normal points (empty: primary color)")
	fs.String("active-fill", d.ActiveFill, "Hovered marker fill of normal points")
	fs.String("gradient-id", d.GradientID, "Gradient identifier (default: derived from field)")
	fs.String("deviation", string(d.Deviation), "Standard deviation: population or sample")
	fs.String("format", string(d.Format), "Report format: json or yaml")
	fs.String("log-level", "info", "Log level: debug, info, warn, error")
}

// loadOptions layers defaults, the config file, ZSCORECHART_* environment
// variables and flags, in increasing precedence.
func loadOptions(fs *pflag.FlagSet, configFile string) (zscore.Options, *viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, o := range optionFlags {
		if err := v.BindPFlag(o.key, fs.Lookup(o.flag)); err != nil {
			return zscore.Options{}, nil, fmt.Errorf("binding flag %s: %w", o.flag, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return zscore.Options{}, nil, fmt.Errorf("reading config %s: %w", configFile, err)
		}
	}

	var opts zscore.Options
	if err := v.Unmarshal(&opts); err != nil {
		return zscore.Options{}, nil, fmt.Errorf("decoding options: %w", err)
	}
	return opts, v, nil
}
