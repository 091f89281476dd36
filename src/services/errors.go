package services

import "errors"

var (
	// ErrUnknownSeason is returned by operations that must not fall back
	// to the default season (uploads, exports).
	ErrUnknownSeason = errors.New("unknown season")
	// ErrUnknownDatasetKind is returned for upload kinds other than
	// tickets, advances or fuel.
	ErrUnknownDatasetKind = errors.New("unknown dataset kind")
	// ErrParsingFailed wraps malformed upload payloads.
	ErrParsingFailed = errors.New("parsing failed")
	// ErrStorageFailed wraps data-directory read/write problems.
	ErrStorageFailed = errors.New("storage failed")
	// ErrDatasetDisabled is returned when uploading advances or fuel to a
	// season that does not track them.
	ErrDatasetDisabled = errors.New("dataset not tracked for this season")
)
