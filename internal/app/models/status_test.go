package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectStatusValid(t *testing.T) {
	for _, status := range []ProjectStatus{ProjectPlanning, ProjectInProgress, ProjectCompleted, ProjectSubmitted} {
		assert.True(t, status.Valid(), "expected %q to be valid", status)
	}
	assert.False(t, ProjectStatus("archived").Valid())
	assert.False(t, ProjectStatus("").Valid())
}

func TestSubmissionStatusValid(t *testing.T) {
	for _, status := range []SubmissionStatus{SubmissionSubmitted, SubmissionPending, SubmissionGraded} {
		assert.True(t, status.Valid(), "expected %q to be valid", status)
	}
	assert.False(t, SubmissionStatus("late").Valid())
	assert.False(t, SubmissionStatus("").Valid())
}
