// Package scaffold provides embedded template files for the staticpress
// new command.
package scaffold

import "embed"

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix. A leading
// "dot" in a file name becomes ".".
//
//go:embed all:templates
var Templates embed.FS
