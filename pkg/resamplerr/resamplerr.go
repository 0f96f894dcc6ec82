/*****************************************************************************************************************/

// Package resamplerr defines the sentinel error kinds shared across the projection, FSMR and
// viewport-adaptive-resampling packages, so that callers can branch on kind with errors.Is while
// each wrapped message still names the offending parameter.
package resamplerr

/*****************************************************************************************************************/

import "errors"

/*****************************************************************************************************************/

// ErrInvalidConfig marks a rejected construction-time configuration, e.g. a target size not
// divisible by the blocksize, a malformed cubemap canvas, or a degenerate cubemap region.
var ErrInvalidConfig = errors.New("invalid config")

/*****************************************************************************************************************/

// ErrDimensionMismatch marks mismatched array lengths/shapes, e.g. an image whose shape does not
// match its configured size, or FSMR inputs of disagreeing lengths.
var ErrDimensionMismatch = errors.New("dimension mismatch")

/*****************************************************************************************************************/

// ErrIncidentAngleTooLarge marks a block whose expanded incident angle window exceeds pi/2.
var ErrIncidentAngleTooLarge = errors.New("incident angle too large")

/*****************************************************************************************************************/

// ErrNumericDomain marks an out-of-domain numeric parameter, e.g. a non-positive transform
// length or a non-finite input where a finite one is required.
var ErrNumericDomain = errors.New("numeric domain error")

/*****************************************************************************************************************/
