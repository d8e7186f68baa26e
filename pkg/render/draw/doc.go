// Package draw is the drawing command model shared by layout generators and
// surfaces.
//
// Generators never touch a raster. They append [Command] values to a [Scene]
// in paint order; a surface executes the scene later. This keeps layout code
// testable without a canvas and lets tests inspect exactly what would be
// drawn.
//
// Commands:
//   - [Fill]: fill a [Path] with a solid color or a [LinearGradient]
//   - [Stroke]: outline a [Path]
//   - [Text]: draw a string with its baseline at (X, Y)
//   - [Avatar]: composite a contributor image asynchronously into a circle
//
// Avatar commands are not drawn synchronously; the dispatcher schedules an
// image load for each one and composites it when the load completes.
package draw
