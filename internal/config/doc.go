// Package config provides configuration management for the slotcheck CLI.
//
// Configuration is read with Viper from config.yaml in the current
// directory or in the slotcheck configuration directory (see package
// paths). Environment variables prefixed with SLOTCHECK_ override file
// values, e.g. SLOTCHECK_DEFAULT_SET=digit.
//
// # Configuration File
//
//	version: 1
//	format: text          # text or json
//	default_set: phone    # set used by "slotcheck check" without --set
//	sets:
//	  phone:
//	    - kind: masked_digit
//	      placeholders: "Xx*"
//	  initials:
//	    - kind: letter
//	      english: true
//	      russian: false
//
// Set names are case-insensitive and stored in lower case. Placeholder
// strings should be quoted, since YAML treats a leading * as an alias.
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("") // search default locations
//	if err != nil {
//	    return err
//	}
//	registry, err := cfg.Registry(ctx)
//
// Loaded configurations are validated automatically; see [Validate].
package config
