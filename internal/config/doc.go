// Package config provides the configuration registry and the command line
// configuration for finreport.
//
// Registry is the process-wide store of dot-namespaced settings such as the
// company name and per-country report formats. Config carries the options of
// a single CLI invocation, and File is the optional .finreport YAML file
// whose registry overrides and report defaults complete it.
package config
