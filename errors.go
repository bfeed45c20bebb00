// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

import "errors"

// Sentinel errors returned by the lifecycle and setup APIs. Precondition
// violations encountered deep in the ingress/registry paths are not
// returned as errors (per the neutral-return convention in pal.go);
// these sentinels cover only the fallible setup operations.
var (
	ErrAlreadyInit         = errors.New("input: context already initialized")
	ErrNotInit             = errors.New("input: context not initialized")
	ErrInvalidFramebuffers = errors.New("input: framebufferCount must be >= 1")
	ErrNoDatabase          = errors.New("input: database callbacks not set")
	ErrQueryNotImplemented = errors.New("input: query evaluation is not implemented")
)
