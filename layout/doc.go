// Package layout resolves abstract size and anchor rules into screen-space
// rectangles.
//
// A [Size] is a length rule (pixels, a ratio of the parent or screen extent,
// or a flex weight). An [Anchor] places a child along one axis of its parent
// and a [Position] combines two anchors. [Distribute] partitions a parent
// rectangle among weighted and fixed children along one axis.
//
// Resolved rectangles may carry negative widths or heights; callers clamp
// them with [Rect.Clamped] only when handing them to a painter.
package layout
