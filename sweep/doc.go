// Package sweep is the radar model: a rotating beam with a fading trail and a set of plotted points.
//
// The beam is made of evenly staggered indicators that rotate with a fixed period. Each indicator's
// rotation is computed from elapsed time rather than sampled from a renderer, turned into the transform
// a renderer would report, and read back as a compass bearing. On every tick the trailing and leading
// indicators bound the sweep window; points whose bearing falls strictly inside it flash to full opacity
// and then fade.
//
// A Radar is owned by its caller. Start launches the tick task and returns a handle whose Stop ends it.
// Renderers never touch the radar's state directly, they draw a Frame taken with Snapshot.
package sweep
