// Package tracking turns skeleton frames from the sensor bridge into the single joint the game
// consumes, and maps that joint from sensor space into colour-image screen space.
//
// Frames without a tracked skeleton are routine and are dropped here, so the game only ever sees
// frames that carry a joint. Mapping never fails with an error: a joint that cannot be projected
// comes back as core.Unresolved.
package tracking
