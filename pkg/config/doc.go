// Package config loads configuration structs from environment variables.
//
// Load parses `env` struct tags via github.com/caarlos0/env, after loading
// a .env file once per process if one exists (development convenience; the
// file is optional and its absence is not an error).
//
//	type ServerConfig struct {
//	    Addr string `env:"ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil { ... }
package config
