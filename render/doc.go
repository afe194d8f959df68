// Package render prints alignment results for terminals: the DTW cost
// matrix as a tab-aligned table with the optimal path marked, and the
// alignment itself as a per-syllable listing of unit operations.
//
// It is a pure consumer of align.Result and plugs into align.Options as
// the Renderer collaborator:
//
//	opts := align.DefaultOptions()
//	opts.RenderAlignment = true
//	opts.Renderer = render.New(os.Stdout)
//
//	_, err := align.Align(gt, raw, &opts)
//
// Rendering never changes the data returned by Align.
package render
