// Package pkg provides the libraries behind gitsocial, a renderer for
// GitHub repository social cards.
//
// # Overview
//
// gitsocial turns a repository's metadata (name, owner, description,
// language, stars, forks, topics, contributors) into 1200×600 preview
// images. The pkg directory is organized into these areas:
//
//  1. [card] - The repository record and the style/theme identifiers
//  2. [render] - Layout generators, drawing commands and the raster surface
//  3. [integrations] - The GitHub REST client that fetches records
//  4. [pipeline] - Orchestration (fetch → render → export)
//  5. [recordio] - JSON/YAML persistence of repository records
//
// # Architecture
//
// The typical data flow through gitsocial:
//
//	GitHub API or record file
//	         ↓
//	    [integrations/github] or [recordio] (RepositoryRecord)
//	         ↓
//	    [render/layout] (style generator → draw.Scene)
//	         ↓
//	    [render/surface] (rasterize, composite avatars)
//	         ↓
//	    PNG output
//
// # Quick Start
//
// Fetch a repository and render every style:
//
//	import (
//	    "context"
//	    "github.com/jasonlovesdoggo/gitsocial/pkg/avatar"
//	    "github.com/jasonlovesdoggo/gitsocial/pkg/cache"
//	    "github.com/jasonlovesdoggo/gitsocial/pkg/card"
//	    "github.com/jasonlovesdoggo/gitsocial/pkg/fonts"
//	    "github.com/jasonlovesdoggo/gitsocial/pkg/integrations/github"
//	    "github.com/jasonlovesdoggo/gitsocial/pkg/pipeline"
//	    "github.com/jasonlovesdoggo/gitsocial/pkg/render"
//	)
//
//	gh := github.NewClient(cache.NewNullCache(), token, 0)
//	r := render.New(fonts.Default(), avatar.NewLoader(cache.NewNullCache()), nil)
//	runner := pipeline.NewRunner(gh, r, nil)
//
//	res, _ := runner.Execute(ctx, pipeline.Options{Owner: "golang", Repo: "go"})
//	png := res.Artifacts[card.StyleClassic]
//
// # Main Packages
//
// ## Domain
//
//   - [card]: RepositoryRecord, StyleID and ThemeID
//   - [palette]: The four Catppuccin flavors used as card themes
//   - [fonts]: Embedded fonts and text measurement
//
// ## Rendering
//
//   - [render]: Renderer that applies a style to a surface
//   - [render/layout]: One generator per card style
//   - [render/draw]: Drawing commands and scenes
//   - [render/surface]: gg-backed raster surface
//   - [render/textlayout]: Word wrapping and ellipsis truncation
//   - [avatar]: Contributor avatar download and circular cropping
//
// ## Infrastructure
//
//   - [cache]: File, Redis and null caches for HTTP responses and avatars
//   - [httputil]: Retry helpers for transient failures
//   - [observability]: Hooks for fetch, render and export events
//   - [errors]: Coded errors and input validation
//   - [buildinfo]: Version information injected at build time
//
// [card]: github.com/jasonlovesdoggo/gitsocial/pkg/card
// [palette]: github.com/jasonlovesdoggo/gitsocial/pkg/palette
// [fonts]: github.com/jasonlovesdoggo/gitsocial/pkg/fonts
// [render]: github.com/jasonlovesdoggo/gitsocial/pkg/render
// [render/layout]: github.com/jasonlovesdoggo/gitsocial/pkg/render/layout
// [render/draw]: github.com/jasonlovesdoggo/gitsocial/pkg/render/draw
// [render/surface]: github.com/jasonlovesdoggo/gitsocial/pkg/render/surface
// [render/textlayout]: github.com/jasonlovesdoggo/gitsocial/pkg/render/textlayout
// [avatar]: github.com/jasonlovesdoggo/gitsocial/pkg/avatar
// [integrations]: github.com/jasonlovesdoggo/gitsocial/pkg/integrations
// [integrations/github]: github.com/jasonlovesdoggo/gitsocial/pkg/integrations/github
// [pipeline]: github.com/jasonlovesdoggo/gitsocial/pkg/pipeline
// [recordio]: github.com/jasonlovesdoggo/gitsocial/pkg/recordio
// [cache]: github.com/jasonlovesdoggo/gitsocial/pkg/cache
// [httputil]: github.com/jasonlovesdoggo/gitsocial/pkg/httputil
// [observability]: github.com/jasonlovesdoggo/gitsocial/pkg/observability
// [errors]: github.com/jasonlovesdoggo/gitsocial/pkg/errors
// [buildinfo]: github.com/jasonlovesdoggo/gitsocial/pkg/buildinfo
package pkg
