package render

import (
	"fmt"
	"log/slog"

	"github.com/waozixyz/guiug/internal/logx"
	"github.com/waozixyz/guiug/layout"
	"github.com/waozixyz/guiug/scene"
)

// BrokenReferenceError is returned in strict mode when the tree refers to a
// node that is not in the scene.
type BrokenReferenceError struct {
	ID scene.NodeID
}

func (e *BrokenReferenceError) Error() string {
	return fmt.Sprintf("render: node %d is not in the scene", e.ID)
}

type options struct {
	strict bool
	logger *slog.Logger
}

// Option configures Visit.
type Option func(*options)

// WithStrict makes Visit fail with a *BrokenReferenceError on a reference to
// a missing node instead of skipping it.
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// WithLogger sets the logger used to trace skipped references.
// Defaults to the shared guiug logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// nodeVisitor carries the state of a single traversal. It must not be reused
// across frames.
type nodeVisitor struct {
	scene  *scene.Scene
	screen layout.Dimension
	opts   options
	frame  *Frame
	zIndex int
}

// Visit resolves the scene for the given screen extent and collects its draw
// primitives.
//
// The tree is walked depth-first from the root, which covers the whole
// screen. Each Layer child advances the draw-order counter by one once its
// subtree has been visited; Row and Column children do not. A scene without
// a root yields an empty frame.
func Visit(sc *scene.Scene, screen layout.Dimension, opts ...Option) (*Frame, error) {
	v := &nodeVisitor{
		scene:  sc,
		screen: screen,
		opts:   options{logger: logx.Logger()},
		frame:  &Frame{Screen: screen},
	}
	for _, opt := range opts {
		opt(&v.opts)
	}
	if sc == nil {
		return v.frame, nil
	}
	if root, ok := sc.Root(); ok {
		if err := v.visit(root, screen.Rect()); err != nil {
			return nil, err
		}
	}
	v.frame.ZIndex = v.zIndex
	return v.frame, nil
}

func (v *nodeVisitor) visit(id scene.NodeID, rect layout.Rect) error {
	node, ok := v.scene.Get(id)
	if !ok {
		if v.opts.strict {
			return &BrokenReferenceError{ID: id}
		}
		v.opts.logger.Debug("skipping missing node", "id", id, "rect", rect)
		return nil
	}

	switch n := node.(type) {
	case scene.Layer:
		for _, child := range n.Children {
			childRect := child.Position.Resolve(rect, v.screen)
			if err := v.visit(child.ID, childRect); err != nil {
				return err
			}
			v.zIndex++
		}
	case scene.Row:
		return v.distribute(id, layout.Vertical, n.Children, rect)
	case scene.Column:
		return v.distribute(id, layout.Horizontal, n.Children, rect)
	case scene.Rect:
		r := rect.Clamped()
		v.frame.Flat = append(v.frame.Flat, FlatInstance{
			X: r.X, Y: r.Y, Z: v.zIndex,
			Width: r.Width, Height: r.Height,
			Color: n.Color,
		})
	case scene.Texture:
		r := rect.Clamped()
		v.frame.Textured = append(v.frame.Textured, TextureInstance{
			X: r.X, Y: r.Y, Z: v.zIndex,
			Width: r.Width, Height: r.Height,
			Texture: n.ID,
		})
	case scene.Empty:
	default:
		return fmt.Errorf("render: node %d has unsupported kind %s", id, scene.Kind(node))
	}
	return nil
}

func (v *nodeVisitor) distribute(id scene.NodeID, axis layout.Axis, children []scene.Sized, rect layout.Rect) error {
	sizes := make([]layout.Size, len(children))
	for i, child := range children {
		sizes[i] = child.Size
	}
	rects, err := layout.Distribute(axis, sizes, rect, v.screen)
	if err != nil {
		return fmt.Errorf("render: node %d: %w", id, err)
	}
	for i, child := range children {
		if err := v.visit(child.ID, rects[i]); err != nil {
			return err
		}
	}
	return nil
}
