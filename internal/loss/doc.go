// Package loss implements regression loss layers over (N, C, 1, 1) coordinate
// blobs with explicit forward and backward passes.
//
// RelevantLoss compares the relative geometry of predicted keypoints against
// the ground truth. Channels [0, C/2) hold x-coordinates and [C/2, C) hold
// y-coordinates. For every unordered pair (i, j) inside a group it accumulates
//
//	dist = (pred[i] - pred[j]) - (truth[i] - truth[j])
//	loss += dist²
//
// and reports loss / N / 2. A uniform translation of all points in a group
// leaves the loss unchanged.
//
// Layers are driven by a host framework:
//
//	l := loss.NewRelevantLoss(loss.DefaultConfig())
//	out, err := l.Forward(pred, truth)
//	grads, err := l.Backward(outGrad, []bool{true, false}, pred, truth)
//
// Forward must precede Backward on the same shapes; Backward can be called
// any number of times after a Forward.
package loss
