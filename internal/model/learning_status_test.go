package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLearningStatusValid(t *testing.T) {
	assert.True(t, StatusNotStarted.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, LearningStatus("done").Valid())
	assert.False(t, LearningStatus("").Valid())
}

func TestAllowedNextStatuses(t *testing.T) {
	assert.Equal(t, []LearningStatus{StatusInProgress}, AllowedNextStatuses(StatusNotStarted))
	assert.Equal(t, []LearningStatus{StatusCompleted, StatusNotStarted}, AllowedNextStatuses(StatusInProgress))
	assert.Equal(t, []LearningStatus{StatusInProgress}, AllowedNextStatuses(StatusCompleted))
	assert.Nil(t, AllowedNextStatuses(LearningStatus("bogus")))
}

func TestActionForStatus(t *testing.T) {
	assert.Equal(t, ActionStart, ActionForStatus(StatusInProgress))
	assert.Equal(t, ActionComplete, ActionForStatus(StatusCompleted))
	assert.Equal(t, ActionView, ActionForStatus(StatusNotStarted))
}

func TestQuestionTypeValid(t *testing.T) {
	assert.True(t, QuestionImplementation.Valid())
	assert.True(t, QuestionAdvanced.Valid())
	assert.False(t, QuestionType("basic").Valid())
}
