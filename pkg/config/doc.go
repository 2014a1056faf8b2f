// Package config handles configuration management for ssmuse.
// It layers the embedded defaults, system and user TOML/YAML files, an
// explicit file named by SSMUSE_CONFIG and SSMUSE_CONF_* environment
// variables, in that order.
package config
