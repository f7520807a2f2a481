package loader

import (
	"context"

	"grantbook/internal/core"
)

// Memory is an in-process source for tests and demos.
type Memory struct {
	records []core.Record
}

func NewMemory(records []core.Record) *Memory {
	return &Memory{records: records}
}

func (s *Memory) Load(_ context.Context) ([]core.Record, error) {
	out := make([]core.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}
