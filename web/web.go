package web

import _ "embed"

// IndexHTML landing page served at root path
//
//go:embed index.html
var IndexHTML []byte
