package shaders

import (
	_ "embed"
)

//go:embed lines.wgsl
var LinesWGSL string
