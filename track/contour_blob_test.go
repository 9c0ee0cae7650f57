package track

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/xychen9459/IoU/iou"
)

const (
	eps = 0.00001
)

func squareContour(x, y, side float64) iou.Polygon {
	return iou.Polygon{
		{X: x, Y: y},
		{X: x + side, Y: y},
		{X: x + side, Y: y + side},
		{X: x, Y: y + side},
	}
}

func TestNewContourBlob(t *testing.T) {
	contour := squareContour(10, 20, 30)
	blob := NewContourBlob(contour)

	if blob == nil {
		t.Fatal("NewContourBlob returned nil")
	}

	if blob.id == uuid.Nil {
		t.Error("Blob ID should not be nil")
	}

	expectedCenter := iou.Point{X: 25, Y: 35}
	if center := blob.GetCenter(); !center.Equal(expectedCenter) {
		t.Errorf("Expected center %v, got %v", expectedCenter, center)
	}

	expectedDiagonal := math.Sqrt(30*30 + 30*30)
	if math.Abs(blob.GetDiagonal()-expectedDiagonal) > eps {
		t.Errorf("Expected diagonal %f, got %f", expectedDiagonal, blob.GetDiagonal())
	}

	if len(blob.GetTrack()) != 1 {
		t.Errorf("Expected track length 1, got %d", len(blob.GetTrack()))
	}

	// The blob copies the contour
	contour[0] = iou.Point{X: -100, Y: -100}
	if blob.GetContour()[0].Equal(contour[0]) {
		t.Error("Blob should own a copy of the contour")
	}
}

func TestNewContourBlobFromRect(t *testing.T) {
	blob := NewContourBlobFromRect(iou.NewRect(0, 0, 10, 10), 1.0)
	if got := blob.GetContour().Area(); math.Abs(got-100) > eps {
		t.Errorf("Expected contour area 100, got %f", got)
	}
	if center := blob.GetCenter(); !center.Equal(iou.NewPoint(5, 5)) {
		t.Errorf("Expected center (5,5), got %v", center)
	}
}

func TestContourBlobActivateDeactivate(t *testing.T) {
	blob := NewContourBlob(squareContour(0, 0, 10))

	if blob.active {
		t.Error("Blob should be inactive by default")
	}

	blob.Activate()
	if !blob.active {
		t.Error("Blob should be active after Activate()")
	}

	blob.Deactivate()
	if blob.active {
		t.Error("Blob should be inactive after Deactivate()")
	}
}

func TestContourBlobNoMatchTimes(t *testing.T) {
	blob := NewContourBlob(squareContour(0, 0, 10))

	if blob.GetNoMatchTimes() != 0 {
		t.Errorf("Expected 0 no match times, got %d", blob.GetNoMatchTimes())
	}

	blob.IncNoMatch()
	blob.IncNoMatch()
	if blob.GetNoMatchTimes() != 2 {
		t.Errorf("Expected 2 no match times, got %d", blob.GetNoMatchTimes())
	}

	blob.ResetNoMatch()
	if blob.GetNoMatchTimes() != 0 {
		t.Errorf("Expected 0 no match times after reset, got %d", blob.GetNoMatchTimes())
	}
}

func TestContourBlobUpdate(t *testing.T) {
	blob := NewContourBlob(squareContour(0, 0, 10))
	measurement := NewContourBlob(squareContour(2, 2, 10))

	err := blob.Update(measurement)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if !blob.active {
		t.Error("Blob should be active after update")
	}
	if len(blob.GetTrack()) != 2 {
		t.Errorf("Expected track length 2, got %d", len(blob.GetTrack()))
	}

	// The contour rides on the smoothed center but keeps its shape
	if got := blob.GetContour().Area(); math.Abs(got-100) > eps {
		t.Errorf("Expected contour area 100 after update, got %f", got)
	}
	if got := blob.GetContour().Centroid(); !got.Equal(blob.GetCenter()) {
		t.Errorf("Contour centroid %v should match blob center %v", got, blob.GetCenter())
	}
}

func TestContourBlobPredictedContour(t *testing.T) {
	blob := NewContourBlobWithTime(squareContour(0, 0, 10), 1.0)
	blob.PredictNextPosition()

	predicted := blob.GetPredictedContour()
	if got := predicted.Area(); math.Abs(got-100) > eps {
		t.Errorf("Expected predicted contour area 100, got %f", got)
	}
	if got := predicted.Centroid(); !got.Equal(blob.predictedCenter) {
		t.Errorf("Predicted contour centroid %v should match predicted center %v", got, blob.predictedCenter)
	}
}

func TestContourBlobMaxTrackLen(t *testing.T) {
	blob := NewContourBlob(squareContour(0, 0, 10))
	blob.SetMaxTrackLen(3)

	for i := 0; i < 10; i++ {
		m := NewContourBlob(squareContour(float64(i), 0, 10))
		if err := blob.Update(m); err != nil {
			t.Fatalf("Update %d failed: %v", i, err)
		}
	}

	if len(blob.GetTrack()) != 3 {
		t.Errorf("Expected track capped at 3, got %d", len(blob.GetTrack()))
	}
}
