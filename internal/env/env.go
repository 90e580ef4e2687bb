// Package env captures details about the birb environment, such as where the
// sources configuration file lives.
package env

import "os"

// DefaultSourcesConfig is the path of the sources configuration file unless
// overridden with BIRB_SOURCES.
const DefaultSourcesConfig = "/etc/birb-sources.conf"

// SourcesConfig is the path of the sources configuration file, one
// name;url;path line per package repository.
var SourcesConfig = findSourcesConfig()

func findSourcesConfig() string {
	if env := os.Getenv("BIRB_SOURCES"); env != "" {
		return env
	}
	return DefaultSourcesConfig
}
