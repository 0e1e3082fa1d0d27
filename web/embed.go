package web

import "embed"

//go:embed index.html.tmpl
var IndexTemplate string

//go:embed static/*
var StaticFS embed.FS
