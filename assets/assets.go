// Package assets embeds the default configuration and level so the
// binaries run without any files next to them.
package assets

import _ "embed"

//go:embed config.yaml
var DefaultConfig []byte

//go:embed maps/default.map
var DefaultMap string
