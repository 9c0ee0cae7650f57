// Package track is a multi-object tracker for convex contours. It is
// the rotated-shape counterpart of the usual bounding-box MOT loop:
// detections are matched to existing tracks by the IoU of their convex
// outlines, and track centers are smoothed with a Kalman filter.
package track

import (
	"github.com/google/uuid"

	"github.com/xychen9459/IoU/iou"
)

// Blob is the interface for tracked objects.
// Self is the concrete type implementing this interface (e.g., *ContourBlob).
// This enables type-safe generic trackers.
type Blob[Self any] interface {
	// Identity
	GetID() uuid.UUID
	SetID(newID uuid.UUID)

	// Geometry
	GetCenter() iou.Point
	GetContour() iou.Polygon
	GetPredictedContour() iou.Polygon
	GetDiagonal() float64

	// Track history
	GetTrack() []iou.Point
	GetMaxTrackLen() int
	SetMaxTrackLen(newMaxTrackLen int)

	// Lifecycle
	Activate()
	Deactivate()

	// Match tracking
	GetNoMatchTimes() int
	IncNoMatch()
	ResetNoMatch()

	// Kalman operations
	PredictNextPosition()
	Update(measurement Self) error

	// Distance calculations
	DistanceTo(other Self) float64
	DistanceToPredicted(other Self) float64
}
