// Package config handles configuration management for csvexport.
// It layers embedded defaults, the user config file, a project file in the
// working directory, CSVEXPORT_* environment variables and command-line
// flags, in that order, using koanf.
package config
