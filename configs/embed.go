// Package configs ships the default configuration files inside the binary.
package configs

import _ "embed"

// Directives is the default system directive registry, used when
// DIRECTIVES_CONFIG_PATH is not set.
//
//go:embed directives.yaml
var Directives []byte
