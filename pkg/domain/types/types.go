package types

import "github.com/google/uuid"

type (
	RequestID    string
	SequenceName string

	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
)

const (
	SequenceRepository SequenceName = "repo_id"
	SequenceUser       SequenceName = "user_id"
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }
