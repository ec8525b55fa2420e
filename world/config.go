// This file is part of nadia - https://github.com/db47h/nadia
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package world

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Check is a level completion requirement.
type Check string

// Supported checks.
const (
	CheckAllDevices Check = "player-powers-all-devices"
	CheckAtExit     Check = "player-at-exit"
)

// Bug is an intentional flaw of a level that players have to work around.
type Bug string

// Supported bugs.
const (
	BugMissingBind Bug = "missing-poweron-bind"
	BugNoCollision Bug = "collision-checks-fail"
	BugRandomExit  Bug = "exit-changes-randomly"
)

// ConfigError is returned when a level configuration is incomplete or
// contains unknown values.
type ConfigError struct {
	Key string
	Msg string
}

func (e *ConfigError) Error() string {
	return "level configuration: " + e.Key + ": " + e.Msg
}

// Config is a level configuration.
//
// Level files are TOML documents like:
//
//	[level.config]
//	name = "A Warm Welcome"
//	check = ["player-at-exit"]
//	bug = ["collision-checks-fail"]
//
//	[level.map]
//	layout = """
//	%%%%%
//	%P.E%
//	%%%%%
//	"""
type Config struct {
	Name          string
	Checks        []Check
	Bugs          []Bug
	AllowedBlocks []string
	Data          *Data
}

type levelFile struct {
	Level struct {
		Config struct {
			Name          string   `toml:"name"`
			Check         []string `toml:"check"`
			Bug           []string `toml:"bug"`
			AllowedBlocks []string `toml:"allowed_blocks"`
		} `toml:"config"`
		Map struct {
			Layout string `toml:"layout"`
		} `toml:"map"`
	} `toml:"level"`
}

// LoadConfig reads a level configuration from r.
func LoadConfig(r io.Reader) (*Config, error) {
	var lf levelFile
	md, err := toml.NewDecoder(r).Decode(&lf)
	if err != nil {
		return nil, errors.Wrap(err, "level configuration")
	}
	for _, k := range [][]string{
		{"level", "config", "name"},
		{"level", "config", "check"},
		{"level", "map", "layout"},
	} {
		if !md.IsDefined(k...) {
			return nil, &ConfigError{strings.Join(k, "."), "missing key"}
		}
	}
	for _, k := range md.Undecoded() {
		log.Warn().Str("key", k.String()).Msg("unknown level configuration key")
	}

	lc := lf.Level.Config
	cfg := &Config{Name: lc.Name, AllowedBlocks: lc.AllowedBlocks}
	if md.IsDefined("level", "config", "allowed_blocks") {
		log.Warn().Str("level", lc.Name).Msg("allowed_blocks is deprecated")
	}
	for _, c := range lc.Check {
		switch ck := Check(c); ck {
		case CheckAllDevices, CheckAtExit:
			cfg.Checks = append(cfg.Checks, ck)
		default:
			return nil, &ConfigError{"level.config.check", "unknown check " + c}
		}
	}
	for _, b := range lc.Bug {
		switch bug := Bug(b); bug {
		case BugMissingBind, BugNoCollision, BugRandomExit:
			cfg.Bugs = append(cfg.Bugs, bug)
		default:
			return nil, &ConfigError{"level.config.bug", "unknown bug " + b}
		}
	}
	if cfg.Data, err = ParseLayout(lf.Level.Map.Layout); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigFile reads a level configuration from the named file.
func LoadConfigFile(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	cfg, err := LoadConfig(f)
	return cfg, errors.Wrap(err, name)
}

// HasCheck returns true if the level requires ck.
func (c *Config) HasCheck(ck Check) bool {
	for _, v := range c.Checks {
		if v == ck {
			return true
		}
	}
	return false
}

// HasBug returns true if the level has the bug b.
func (c *Config) HasBug(b Bug) bool {
	for _, v := range c.Bugs {
		if v == b {
			return true
		}
	}
	return false
}
