// Package lottie provides data structures and a parser for Lottie (Bodymovin) JSON animations.
// Only the document header and layer list are modeled: the player needs timing
// (frame rate, in/out points) and canvas size, not vector shape data.
package lottie

import "time"

// Animation is the root object of a Lottie document.
type Animation struct {
	// Version is the Bodymovin exporter version, e.g. "5.7.4"
	Version string `json:"v"`

	// Name is the composition name
	Name string `json:"nm"`

	// FrameRate is the number of frames per second
	FrameRate float64 `json:"fr"`

	// InPoint is the first frame of the animation
	InPoint float64 `json:"ip"`

	// OutPoint is the frame where the animation ends (exclusive)
	OutPoint float64 `json:"op"`

	// Width and Height are the composition size in pixels
	Width  int `json:"w"`
	Height int `json:"h"`

	// Layers is the layer list, topmost first
	Layers []Layer `json:"layers"`

	// Assets holds precompositions and images referenced by layers
	Assets []Asset `json:"assets,omitempty"`
}

// Layer is a single composition layer. Shape and transform data are kept raw.
type Layer struct {
	// Index is the layer index used for parenting
	Index int `json:"ind"`

	// Name is the layer name
	Name string `json:"nm"`

	// Type is the layer type: 0 precomp, 1 solid, 2 image, 3 null, 4 shape, 5 text
	Type int `json:"ty"`

	// InPoint and OutPoint bound the frames where the layer is visible
	InPoint  float64 `json:"ip"`
	OutPoint float64 `json:"op"`

	// RefID references an entry in Animation.Assets (precomp and image layers)
	RefID string `json:"refId,omitempty"`
}

// Asset is a precomposition or image referenced by a layer.
type Asset struct {
	ID     string  `json:"id"`
	Name   string  `json:"nm,omitempty"`
	Width  int     `json:"w,omitempty"`
	Height int     `json:"h,omitempty"`
	Path   string  `json:"p,omitempty"`
	Layers []Layer `json:"layers,omitempty"`
}

// Layer type constants
const (
	LayerPrecomp = 0
	LayerSolid   = 1
	LayerImage   = 2
	LayerNull    = 3
	LayerShape   = 4
	LayerText    = 5
)

// FrameCount returns the number of frames between InPoint and OutPoint.
func (a *Animation) FrameCount() float64 {
	return a.OutPoint - a.InPoint
}

// Duration returns the playback length of the animation.
func (a *Animation) Duration() time.Duration {
	if a.FrameRate <= 0 {
		return 0
	}
	seconds := a.FrameCount() / a.FrameRate
	return time.Duration(seconds * float64(time.Second))
}

// FrameAt converts a progress value in [0, 1] to an absolute frame number.
func (a *Animation) FrameAt(progress float64) float64 {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return a.InPoint + progress*a.FrameCount()
}

// VisibleLayers returns the layers whose [InPoint, OutPoint) range contains frame.
func (a *Animation) VisibleLayers(frame float64) []Layer {
	var visible []Layer
	for _, layer := range a.Layers {
		if frame >= layer.InPoint && frame < layer.OutPoint {
			visible = append(visible, layer)
		}
	}
	return visible
}
