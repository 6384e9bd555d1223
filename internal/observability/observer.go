// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"io"
	"time"
)

// StandardObserver implements observability for all components. Records go
// to the configured writer (stderr in practice) so the report stream on
// stdout stays clean.
type StandardObserver struct {
	level         ObservabilityLevel
	writer        io.Writer
	DebugObserver *DebugObserver // Reference to debug observer when in debug mode
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates observability component
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
	}
}

// StartTiming returns a function to complete timing for one host operation
func (o *StandardObserver) StartTiming(component, operation, filePath string) func(success bool, detail map[string]interface{}) {
	start := time.Now()

	return func(success bool, detail map[string]interface{}) {
		duration := time.Since(start)

		o.LogOperation(OperationRecord{
			Component:  component,
			Operation:  operation,
			FilePath:   filePath,
			DurationMs: duration.Milliseconds(),
			Success:    success,
			Detail:     detail,
		})
	}
}

// LogOperation logs one operation record
func (o *StandardObserver) LogOperation(record OperationRecord) {
	if o.level == ObservabilityOff {
		return
	}

	record.RequestID = "req-" + time.Now().Format("20060102-150405")

	// Only log JSON in debug mode
	if o.level == ObservabilityDebug {
		json.NewEncoder(o.writer).Encode(record)
	}
}

// OperationRecord describes one automation call or extraction stage
type OperationRecord struct {
	Component  string                 `json:"component"`
	Operation  string                 `json:"operation"`
	RequestID  string                 `json:"request_id"`
	FilePath   string                 `json:"file_path,omitempty"`
	DurationMs int64                  `json:"duration_ms,omitempty"`
	Success    bool                   `json:"success"`
	Error      string                 `json:"error,omitempty"`
	FieldCount int                    `json:"field_count,omitempty"`
	Detail     map[string]interface{} `json:"detail,omitempty"`
}
