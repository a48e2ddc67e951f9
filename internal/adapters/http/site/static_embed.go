package site

import (
	"embed"
	"io/fs"
)

//go:embed static
var embedded embed.FS

// staticFiles is the embedded static directory served at "/".
var staticFiles = mustSub(embedded, "static") //nolint:gochecknoglobals // compiled-in assets

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
