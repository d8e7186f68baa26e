// Package render draws repository cards onto surfaces.
//
// # Overview
//
// Rendering is split into layers:
//
//   - [draw]: the command model (paths, paints, text, avatar slots)
//   - [textlayout]: truncation, wrapping, and rounded rectangles
//   - [layout]: one generator per card style, producing a [draw.Scene]
//   - [surface]: the gg-backed raster that executes scenes
//
// [Renderer.Render] ties them together: it resets the surface, resolves the
// style's generator, applies the synchronous commands, and schedules avatar
// loads that composite into the surface when they finish.
//
//	s := surface.New(0, 0, fonts.Default())
//	r := render.New(fonts.Default(), avatar.NewLoader(c), logger)
//	if err := r.Render(ctx, s, rec, card.RenderOptions{Theme: palette.Mocha, Style: card.StyleClassic}); err != nil {
//	    return err
//	}
//	_ = s.Wait(ctx)        // let avatars land
//	_ = s.EncodePNG(w)
//
// # Avatars
//
// Each avatar load captures the surface generation at scheduling time. If the
// surface is rendered again before the load completes, the stale image is
// discarded. A failed load leaves its slot empty; it is logged at debug level
// and reported to the render hooks but never fails the render.
//
// [draw]: github.com/jasonlovesdoggo/gitsocial/pkg/render/draw
// [textlayout]: github.com/jasonlovesdoggo/gitsocial/pkg/render/textlayout
// [layout]: github.com/jasonlovesdoggo/gitsocial/pkg/render/layout
// [surface]: github.com/jasonlovesdoggo/gitsocial/pkg/render/surface
// [draw.Scene]: github.com/jasonlovesdoggo/gitsocial/pkg/render/draw.Scene
package render
