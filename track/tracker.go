package track

import (
	"github.com/arthurkushman/go-hungarian"
	"github.com/google/uuid"

	"github.com/xychen9459/IoU/iou"
)

// MatchingAlgorithm is for algorithm type for matching detections to tracks
type MatchingAlgorithm uint16

const (
	// MatchingAlgorithmGreedy assigns detections in descending score
	// order via a max-heap; fast and usually good enough
	MatchingAlgorithmGreedy MatchingAlgorithm = iota
	// MatchingAlgorithmHungarian uses the Hungarian algorithm (Kuhn-Munkres) for optimal assignment
	MatchingAlgorithmHungarian
)

// IoUTracker is a Multi-object tracker (MOT) matching convex-contour
// detections to existing tracks by polygon IoU, with a distance-based
// fallback for recovery when IoU is zero.
type IoUTracker[B Blob[B]] struct {
	// Max no match (max number of frames when object could not be found again)
	maxNoMatch int
	// IoU threshold for matching
	iouThreshold float64
	// Algorithm to use for matching
	algorithm MatchingAlgorithm
	// Storage for tracked objects
	Objects map[uuid.UUID]B
}

// NewDefaultIoUTracker creates a default instance of IoUTracker.
// Default values: maxNoMatch=75, iouThreshold=0.0, greedy matching
func NewDefaultIoUTracker[B Blob[B]]() *IoUTracker[B] {
	return &IoUTracker[B]{
		maxNoMatch:   75,
		iouThreshold: 0.0,
		algorithm:    MatchingAlgorithmGreedy,
		Objects:      make(map[uuid.UUID]B),
	}
}

// NewIoUTracker creates a new instance of IoUTracker with specified parameters.
func NewIoUTracker[B Blob[B]](maxNoMatch int, iouThreshold float64, algorithm MatchingAlgorithm) *IoUTracker[B] {
	return &IoUTracker[B]{
		maxNoMatch:   maxNoMatch,
		iouThreshold: iouThreshold,
		algorithm:    algorithm,
		Objects:      make(map[uuid.UUID]B),
	}
}

// contourIoU is the matching metric: IoU of the detection contour
// against the track's predicted contour. Bounding rectangles are
// compared first, skipping the polygon clip when even the boxes do not
// overlap.
func contourIoU(detection, predicted iou.Polygon) float64 {
	if iou.BoundingRect(detection).IoU(iou.BoundingRect(predicted)) == 0 {
		return 0
	}
	return iou.IoU(detection, predicted)
}

// matchScore blends contour IoU with a center-distance similarity so a
// fast-moving object whose contours no longer overlap can still be
// recovered.
func matchScore[B Blob[B]](detection B, object B) float64 {
	predicted := object.GetPredictedContour()
	iouValue := contourIoU(detection.GetContour(), predicted)

	distance := predicted.Centroid().Distance(detection.GetCenter())
	distanceScore := 1.0 / (1.0 + distance*0.01)

	// Favor IoU when available, fallback to distance
	if iouValue > 0.05 {
		return iouValue*0.8 + distanceScore*0.2
	}
	return distanceScore * 0.5
}

// MatchObjects matches new detections to existing tracked objects.
func (tracker *IoUTracker[B]) MatchObjects(newObjects []B) error {
	// Mark all existing objects as deactivated
	for _, object := range tracker.Objects {
		object.Deactivate()
	}

	var matched map[uuid.UUID]struct{}
	var err error
	switch tracker.algorithm {
	case MatchingAlgorithmHungarian:
		matched, err = tracker.matchHungarian(newObjects)
	default:
		matched, err = tracker.matchGreedy(newObjects)
	}
	if err != nil {
		return err
	}

	// Handle unmatched objects (predict forward for track maintenance)
	for id, object := range tracker.Objects {
		if _, ok := matched[id]; !ok {
			object.PredictNextPosition()
			object.IncNoMatch()
		}
	}

	// Clean up existing data - remove objects not found for a long time
	for id, object := range tracker.Objects {
		if object.GetNoMatchTimes() > tracker.maxNoMatch {
			delete(tracker.Objects, id)
		}
	}

	return nil
}

// matchGreedy processes detections from highest match score to lowest.
func (tracker *IoUTracker[B]) matchGreedy(newObjects []B) (map[uuid.UUID]struct{}, error) {
	blobsToRegister := make(map[uuid.UUID]B)

	priorityQueue := make(scoreHeap[B], 0, len(newObjects))
	for i := range newObjects {
		newObject := newObjects[i]
		var maxID uuid.UUID
		maxScore := 0.0
		for objectID, object := range tracker.Objects {
			score := matchScore(newObject, object)
			if score > maxScore {
				maxScore = score
				maxID = objectID
			}
		}
		priorityQueue.Push(&scoredBlob[B]{
			underlying: newObject,
			id:         maxID,
			score:      maxScore,
		})
	}

	// We need to prevent double update of objects
	reservedObjects := make(map[uuid.UUID]struct{})

	for priorityQueue.Len() > 0 {
		item := priorityQueue.Pop()
		// Check if object is already reserved. The max-heap guarantees
		// each track goes to the detection with the best score; later
		// detections pointing at the same track become new objects.
		if _, ok := reservedObjects[item.id]; ok {
			blobsToRegister[item.underlying.GetID()] = item.underlying
			continue
		}
		if item.score > tracker.iouThreshold {
			if existingObject, ok := tracker.Objects[item.id]; ok {
				// Advance time and update in correct order
				existingObject.PredictNextPosition()
				err := existingObject.Update(item.underlying)
				if err != nil {
					return nil, err
				}
				existingObject.ResetNoMatch()
				// Update ID of new object to match existing one
				item.underlying.SetID(item.id)
				reservedObjects[item.id] = struct{}{}
				continue
			}
		}
		// Register object as a new one
		blobsToRegister[item.underlying.GetID()] = item.underlying
	}

	for id, blob := range blobsToRegister {
		tracker.Objects[id] = blob
	}
	return reservedObjects, nil
}

// matchHungarian solves the track/detection assignment optimally over
// the full score matrix.
func (tracker *IoUTracker[B]) matchHungarian(newObjects []B) (map[uuid.UUID]struct{}, error) {
	trackIDs := make([]uuid.UUID, 0, len(tracker.Objects))
	for id := range tracker.Objects {
		trackIDs = append(trackIDs, id)
	}

	reservedObjects := make(map[uuid.UUID]struct{})
	matchedDetections := make(map[int]struct{})

	if len(trackIDs) > 0 && len(newObjects) > 0 {
		scores := make([][]float64, len(trackIDs))
		for i, id := range trackIDs {
			row := make([]float64, len(newObjects))
			for j := range newObjects {
				row[j] = matchScore(newObjects[j], tracker.Objects[id])
			}
			scores[i] = row
		}

		for _, match := range solveAssignment(scores) {
			trackIdx, detIdx := match[0], match[1]
			if scores[trackIdx][detIdx] <= tracker.iouThreshold {
				continue
			}
			id := trackIDs[trackIdx]
			existingObject := tracker.Objects[id]
			existingObject.PredictNextPosition()
			err := existingObject.Update(newObjects[detIdx])
			if err != nil {
				return nil, err
			}
			existingObject.ResetNoMatch()
			newObjects[detIdx].SetID(id)
			reservedObjects[id] = struct{}{}
			matchedDetections[detIdx] = struct{}{}
		}
	}

	// Register unmatched detections as new objects
	for i, newObject := range newObjects {
		if _, ok := matchedDetections[i]; !ok {
			tracker.Objects[newObject.GetID()] = newObject
		}
	}
	return reservedObjects, nil
}

// solveAssignment runs the Hungarian algorithm on the score matrix and
// returns {row, column} pairs. Rectangular matrices are zero-padded to
// square first; assignments landing in the padding are dropped.
func solveAssignment(scores [][]float64) [][2]int {
	rows := len(scores)
	if rows == 0 {
		return nil
	}
	cols := len(scores[0])
	if cols == 0 {
		return nil
	}

	padded := scores
	if rows != cols {
		size := rows
		if cols > size {
			size = cols
		}
		padded = make([][]float64, size)
		for i := 0; i < size; i++ {
			padded[i] = make([]float64, size)
			if i < rows {
				copy(padded[i], scores[i])
			}
		}
	}

	assignments := hungarian.SolveMax(padded)
	matches := make([][2]int, 0, len(assignments))
	for row, colMap := range assignments {
		for col := range colMap {
			if row < rows && col < cols {
				matches = append(matches, [2]int{row, col})
			}
			break
		}
	}
	return matches
}
