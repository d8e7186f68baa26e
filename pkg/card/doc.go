// Package card defines the data a preview card is rendered from.
//
// A [RepositoryRecord] is produced by a data source (the GitHub client or a
// record file) and is read-only to the renderer. [RenderOptions] selects the
// theme, style, and output dimensions for one render call.
//
// Every field of a record may be absent. Generators never branch on absence
// themselves; they call [Resolve], which applies the single fallback policy
// in [DefaultFallbacks] so that all styles use the same wording.
package card
