// Package widget provides the live tree a UI description is loaded into.
//
// Containers stack children along a direction; Label, Image, Button, and
// Slider are leaves. Every widget implements layout.Layoutable, so the layout
// engine positions the whole tree, and Paint, which draws onto the Surface
// the host hands the shell on redraw.
//
// Widgets carry no input handling: paint and resize are the only host
// callbacks this library services.
package widget
