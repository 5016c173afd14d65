package static

import "embed"

// FS holds the stylesheet, script and images served under /static
//
//go:embed css js images
var FS embed.FS
