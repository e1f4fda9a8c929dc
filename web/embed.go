package web

import "embed"

//go:embed templates/index.html
var Index []byte

//go:embed static/css/*.css
var Static embed.FS
