package dto

// Preview is the decoded representation of a selected file: retained
// bytes plus the image's native pixel dimensions. Producing it is the
// pipeline's first suspension point.
type Preview struct {
	Data        []byte
	ContentType string
	NativeW     int
	NativeH     int
}

// Payload is the rasterized crop result, produced exactly once per
// confirmed crop. The content type is inherited from the selected file.
type Payload struct {
	Data        []byte
	ContentType string
}

// CropShape only constrains the crop UI; the rasterized output is
// always rectangular.
type CropShape string

const (
	ShapeRect  CropShape = "rect"
	ShapeRound CropShape = "round"
)
