package track

import (
	"math"

	kalman_filter "github.com/LdDl/kalman-filter"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/xychen9459/IoU/iou"
)

// ContourBlob is a tracked object described by a convex contour. The
// contour's centroid is smoothed with a 2D Kalman filter and the whole
// contour rides along with the filtered center, so rotated bounding
// quads keep their shape between frames.
// It implements Blob[*ContourBlob] interface.
type ContourBlob struct {
	id              uuid.UUID
	contour         iou.Polygon
	center          iou.Point
	predictedCenter iou.Point
	track           []iou.Point
	maxTrackLen     int
	active          bool
	noMatchTimes    int
	diagonal        float64
	tracker         *kalman_filter.Kalman2D
}

// NewContourBlobWithTime creates a new ContourBlob with specified time step.
// The contour is copied, so the caller keeps ownership of its slice.
func NewContourBlobWithTime(contour iou.Polygon, dt float64) *ContourBlob {
	center := contour.Centroid()
	bounds := iou.BoundingRect(contour)
	diagonal := math.Sqrt(bounds.Width*bounds.Width + bounds.Height*bounds.Height)

	/* Kalman filter props */
	ux := 1.0
	uy := 1.0
	stdDevA := 2.0
	stdDevMx := 0.1
	stdDevMy := 0.1
	kf := kalman_filter.NewKalman2D(dt, ux, uy, stdDevA, stdDevMx, stdDevMy, kalman_filter.WithState2D(center.X, center.Y))

	blob := ContourBlob{
		id:              uuid.New(),
		contour:         append(iou.Polygon(nil), contour...),
		center:          center,
		predictedCenter: center,
		track:           make([]iou.Point, 0, 150),
		maxTrackLen:     150,
		active:          false,
		noMatchTimes:    0,
		diagonal:        diagonal,
		tracker:         kf,
	}
	blob.track = append(blob.track, center)
	return &blob
}

// NewContourBlob creates a new ContourBlob with default time step of 1.0.
func NewContourBlob(contour iou.Polygon) *ContourBlob {
	return NewContourBlobWithTime(contour, 1.0)
}

// NewContourBlobFromRect creates a ContourBlob from an axis-aligned
// rectangle, for detectors that emit plain bounding boxes.
func NewContourBlobFromRect(rect iou.Rectangle, dt float64) *ContourBlob {
	return NewContourBlobWithTime(rect.Quad().Vertices(), dt)
}

// Activate activates blob
func (blob *ContourBlob) Activate() {
	blob.active = true
}

// Deactivate deactivates blob
func (blob *ContourBlob) Deactivate() {
	blob.active = false
}

// GetID returns blob's identifier
func (blob *ContourBlob) GetID() uuid.UUID {
	return blob.id
}

// SetID sets blob's identifier
func (blob *ContourBlob) SetID(newID uuid.UUID) {
	blob.id = newID
}

// GetCenter returns blob's current center
func (blob *ContourBlob) GetCenter() iou.Point {
	return blob.center
}

// GetContour returns blob's current contour. Be careful: this is not copy of contour, but reference to it
func (blob *ContourBlob) GetContour() iou.Polygon {
	return blob.contour
}

// GetPredictedContour returns the contour translated onto the Kalman
// filter's predicted center.
func (blob *ContourBlob) GetPredictedContour() iou.Polygon {
	return translated(blob.contour, blob.predictedCenter.Sub(blob.center))
}

// GetDiagonal returns the diagonal of the contour's bounding rectangle
func (blob *ContourBlob) GetDiagonal() float64 {
	return blob.diagonal
}

// GetTrack returns blob's current track. Be careful: this is not copy of track, but reference to it
func (blob *ContourBlob) GetTrack() []iou.Point {
	return blob.track
}

// GetMaxTrackLen returns blob's max track length
func (blob *ContourBlob) GetMaxTrackLen() int {
	return blob.maxTrackLen
}

// SetMaxTrackLen sets blob's max track length
func (blob *ContourBlob) SetMaxTrackLen(newMaxTrackLen int) {
	blob.maxTrackLen = newMaxTrackLen
}

// GetNoMatchTimes returns blob's no match times
func (blob *ContourBlob) GetNoMatchTimes() int {
	return blob.noMatchTimes
}

// IncNoMatch increases blob's no match times
func (blob *ContourBlob) IncNoMatch() {
	blob.noMatchTimes++
}

// ResetNoMatch resets blob's no match times
func (blob *ContourBlob) ResetNoMatch() {
	blob.noMatchTimes = 0
}

// DistanceTo returns distance to other blob (center to center)
func (blob *ContourBlob) DistanceTo(otherBlob *ContourBlob) float64 {
	return blob.center.Distance(otherBlob.center)
}

// DistanceToPredicted returns distance to other blob (predicted center to predicted center)
func (blob *ContourBlob) DistanceToPredicted(otherBlob *ContourBlob) float64 {
	return blob.predictedCenter.Distance(otherBlob.predictedCenter)
}

// PredictNextPosition executes the Kalman filter prediction step and
// stores the predicted center.
func (blob *ContourBlob) PredictNextPosition() {
	blob.tracker.Predict()
	stateX, stateY := blob.tracker.GetState()
	blob.predictedCenter = iou.Point{X: stateX, Y: stateY}
}

// Update replaces the contour with the measured one, runs the Kalman
// filter update step on its centroid and shifts the contour onto the
// smoothed center.
func (blob *ContourBlob) Update(newBlob *ContourBlob) error {
	blob.contour = append(blob.contour[:0], newBlob.contour...)
	blob.center = newBlob.center

	err := blob.tracker.Update(blob.center.X, blob.center.Y)
	if err != nil {
		return errors.Wrap(err, "Can't update object tracker")
	}
	stateX, stateY := blob.tracker.GetState()
	smoothed := iou.Point{X: stateX, Y: stateY}
	blob.contour = translated(blob.contour, smoothed.Sub(blob.center))
	blob.center = smoothed

	// Update remaining properties
	blob.diagonal = newBlob.diagonal
	blob.active = true
	blob.noMatchTimes = 0

	// Update track
	blob.track = append(blob.track, blob.center)
	if len(blob.track) > blob.maxTrackLen {
		blob.track = blob.track[1:]
	}
	return nil
}

// translated returns a copy of the contour shifted by d.
func translated(c iou.Polygon, d iou.Point) iou.Polygon {
	out := make(iou.Polygon, len(c))
	for i, p := range c {
		out[i] = p.Add(d)
	}
	return out
}
