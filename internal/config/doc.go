// Package config defines the counter's runtime settings and loads them from
// an optional YAML file, then from environment variables. With neither
// present every field keeps its default.
package config
