package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/commitwiz/commitwiz/internal/log"
	"github.com/commitwiz/commitwiz/pkg/convcommit"
)

// applyEnv folds COMMITWIZ_* environment variables over cfg as the final
// layer. Only scalar keys can come from the environment; scope and custom
// type lists are file-only.
func applyEnv(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix("commitwiz")
	v.AutomaticEnv()

	if s := v.GetString(strings.ToLower(keyEmojiFormat)); s != "" {
		format := convcommit.EmojiFormat(s)
		if format.IsValid() {
			cfg.EmojiFormat = format
		} else {
			log.Debug("ignoring invalid COMMITWIZ_%s=%q", keyEmojiFormat, s)
		}
	}

	envBool(v, keyIncludeJira, &cfg.IncludeJiraSlug)
	envBool(v, keyVSCodeCompat, &cfg.VSCodeCompat)
	envBool(v, keyCheckUnstaged, &cfg.CheckUnstaged)
	envBool(v, keyShowEditor, &cfg.ShowEditor)
	envBool(v, keyAutoCommit, &cfg.AutoCommit)
}

// envBool applies one boolean override, leaving dst untouched when the
// variable is unset or not a parseable boolean.
func envBool(v *viper.Viper, key string, dst *bool) {
	s := v.GetString(strings.ToLower(key))
	if s == "" {
		return
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		log.Debug("ignoring invalid COMMITWIZ_%s=%q", key, s)
		return
	}
	*dst = b
}
