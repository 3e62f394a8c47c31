package report

import (
	"go.uber.org/atomic"
)

type RunState struct {
	StartTimestamp atomic.Int64 `json:"start_timestamp"`
	UpForSeconds   atomic.Int64 `json:"up_for_seconds"`
}

type RunReport struct {
	State RunState `json:"state"`
}

type Report struct {
	Run      *RunReport      `json:"run,omitempty"`
	Archiver *ArchiverReport `json:"archiver,omitempty"`
	Gateway  *GatewayReport  `json:"gateway,omitempty"`
}
