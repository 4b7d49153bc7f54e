package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/jamesainslie/go-datetok"
	"github.com/jamesainslie/go-datetok/locale"
	"github.com/jamesainslie/go-datetok/pattern"
	"github.com/jamesainslie/go-datetok/settings"
	"github.com/jamesainslie/go-datetok/table"
)

var errLocaleRequired = errors.New("--locale is required")

type globalFlags struct {
	locale    string
	settings  string
	normalize string
	logLevel  string
}

type commandContext struct {
	flags  *globalFlags
	logger *slog.Logger
	cache  *pattern.Cache

	dictOnce sync.Once
	dict     *datetok.Dictionary
	dictErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags, logger: slog.Default(), cache: pattern.Shared()}
}

// setupLogger installs a text handler on w. The level comes from --log-level,
// then the settings profile, then info. The pattern cache logs through the
// same handler.
func (c *commandContext) setupLogger(w io.Writer) error {
	level := slog.LevelInfo
	if path := strings.TrimSpace(c.flags.settings); path != "" && c.flags.logLevel == "" {
		cfg, err := settings.Load(path)
		if err != nil {
			return err
		}
		if level, err = cfg.Level(); err != nil {
			return err
		}
	}
	if c.flags.logLevel != "" {
		if err := level.UnmarshalText([]byte(c.flags.logLevel)); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", c.flags.logLevel, err)
		}
	}

	c.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	c.cache = pattern.NewCache(pattern.WithLogger(c.logger))
	return nil
}

// ensureDictionary builds the dictionary selected by the global flags once.
func (c *commandContext) ensureDictionary() (*datetok.Dictionary, error) {
	c.dictOnce.Do(func() {
		path := strings.TrimSpace(c.flags.locale)
		if path == "" {
			c.dictErr = errLocaleRequired
			return
		}
		c.dict, c.dictErr = c.buildDictionary(path, strings.TrimSpace(c.flags.settings))
	})
	return c.dict, c.dictErr
}

func (c *commandContext) buildDictionary(localePath, settingsPath string) (*datetok.Dictionary, error) {
	form, err := table.ParseForm(c.flags.normalize)
	if err != nil {
		return nil, err
	}

	info, err := locale.Load(localePath)
	if err != nil {
		return nil, err
	}

	var cfg datetok.Config
	if settingsPath != "" {
		s, err := settings.Load(settingsPath)
		if err != nil {
			return nil, err
		}
		cfg = s
	}

	c.logger.Debug("building dictionary", "locale", info.Name, "settings", settingsPath, "form", form)
	return datetok.New(info, cfg,
		datetok.WithLogger(c.logger),
		datetok.WithCache(c.cache),
		datetok.WithNormalizationForm(form),
	)
}
