// Package particles implements the ambient backdrop: a fixed set of slowly
// drifting points that bounce off the viewport edges, drawn with faint links
// between neighbours.
//
// The Field owns the simulation (Initialize, Advance, Render, Resize). A
// Backdrop binds a Field to a drawing Surface and serialises access to both,
// and a Loop drives Backdrop.Frame once per animation frame until it is
// cancelled.
package particles
