// Package siteconfig compiles a Definition into an immutable
// SiteConfig: the root of the compiled structure tree plus the handful
// of top-level crawl parameters.
package siteconfig

import (
	"github.com/TheSnook/mediaspider/mserrors"
	"github.com/TheSnook/mediaspider/sitetree"
)

// LoginDefinition is the raw login form the site config declares.
type LoginDefinition struct {
	URL      string            `yaml:"url"`
	FormData map[string]string `yaml:"formdata"`
}

// Definition is the uncompiled site-configuration record. Structure
// mixes strings, option maps, and branch lists exactly as
// decoded from YAML by gopkg.in/yaml.v3 into []any/map[string]any
// (or assembled directly by Go code building a config programmatically).
type Definition struct {
	StartURL  string           `yaml:"start_url"`
	SaveDir   string           `yaml:"save_dir"`
	Structure []any            `yaml:"structure"`
	Login     *LoginDefinition `yaml:"login,omitempty"`
}

// LoginConfig is the compiled login step.
type LoginConfig struct {
	URL      string
	FormData map[string]string
}

// SiteConfig is the immutable compiled configuration. Created once from
// a Definition; never mutated afterward.
type SiteConfig struct {
	StartURL   string
	SaveDir    string
	NeedsLogin bool
	Login      *LoginConfig
	Root       *sitetree.Node
}

// New compiles a Definition into a SiteConfig, building and validating
// the structure tree.
func New(def *Definition) (*SiteConfig, error) {
	if def.StartURL == "" {
		return nil, &mserrors.ConfigError{Message: "start_url is required", Source: "<site config>"}
	}
	if def.SaveDir == "" {
		return nil, &mserrors.ConfigError{Message: "save_dir is required", Source: "<site config>"}
	}

	root, err := sitetree.Build(def.Structure)
	if err != nil {
		return nil, err
	}

	cfg := &SiteConfig{
		StartURL: def.StartURL,
		SaveDir:  def.SaveDir,
		Root:     root,
	}

	if def.Login != nil {
		cfg.NeedsLogin = true
		cfg.Login = &LoginConfig{URL: def.Login.URL, FormData: def.Login.FormData}
	}

	return cfg, nil
}
