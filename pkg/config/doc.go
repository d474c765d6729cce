// Package config loads the renderer configuration and the user's cluster
// data files.
//
// Configuration is layered with koanf: embedded defaults, then
// clustertemplate.toml in the working directory, then an explicit config
// file, then CLUSTERTEMPLATE_* environment variables, then command-line
// overrides. Data files are YAML and are merged in the order given, later
// files winning on conflicting keys.
package config
