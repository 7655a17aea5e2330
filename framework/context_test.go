package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runNoFilter(action func(*Context)) Results {
	return Run(nil, nil, action)
}

func TestRunRecordsSuccessfulTests(t *testing.T) {
	results := runNoFilter(func(c *Context) {
		c.Run("first", func(c *Context) {})
		c.Run("second", func(c *Context) {})
	})

	assert.True(t, results.OK())
	require.Len(t, results.Tests, 3) // two tests plus the root context
	assert.Equal(t, "first", results.Tests[0].TestID.String())
	assert.Equal(t, "second", results.Tests[1].TestID.String())
}

func TestErrorfRecordsFailureAndContinues(t *testing.T) {
	reached := false
	results := runNoFilter(func(c *Context) {
		c.Run("failing", func(c *Context) {
			c.Errorf("value was %d", 3)
			reached = true
		})
	})

	assert.True(t, reached, "Errorf should not stop the test")
	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "failing", results.Failures[0].TestID.String())
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Equal(t, "value was 3", results.Failures[0].Errors[0].Error())
}

func TestFailNowStopsTestImmediately(t *testing.T) {
	reached := false
	results := runNoFilter(func(c *Context) {
		c.Run("failing", func(c *Context) {
			c.Errorf("something went wrong")
			c.FailNow()
			reached = true
		})
	})

	assert.False(t, reached)
	assert.False(t, results.OK())
}

func TestFailNowWithNoMessageStillRecordsAnError(t *testing.T) {
	results := runNoFilter(func(c *Context) {
		c.Run("failing", func(c *Context) {
			c.FailNow()
		})
	})

	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "no failure message")
}

func TestUnexpectedPanicBecomesFailure(t *testing.T) {
	results := runNoFilter(func(c *Context) {
		c.Run("panicking", func(c *Context) {
			panic(errors.New("sorry"))
		})
		c.Run("subsequent", func(c *Context) {})
	})

	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic")
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "sorry")
	require.Len(t, results.Tests, 3, "suite should continue after a panicking test")
}

func TestSkippedTestIsNotRecordedAsFailure(t *testing.T) {
	reached := false
	results := runNoFilter(func(c *Context) {
		c.Run("skipping", func(c *Context) {
			c.SkipWithReason("not applicable here")
			reached = true
		})
	})

	assert.False(t, reached)
	assert.True(t, results.OK())
}

func TestFilterExcludesTestsByID(t *testing.T) {
	var ran []string
	filter := func(id TestID) bool { return id.String() != "unwanted" }
	results := Run(filter, nil, func(c *Context) {
		c.Run("wanted", func(c *Context) { ran = append(ran, "wanted") })
		c.Run("unwanted", func(c *Context) { ran = append(ran, "unwanted") })
	})

	assert.Equal(t, []string{"wanted"}, ran)
	assert.True(t, results.OK())
}

func TestSubtestIDsAreSlashJoinedPaths(t *testing.T) {
	var ids []string
	_ = runNoFilter(func(c *Context) {
		c.Run("group", func(c *Context) {
			c.Run("case", func(c *Context) {
				ids = append(ids, c.ID().String())
			})
		})
	})

	assert.Equal(t, []string{"group/case"}, ids)
}

func TestSiblingSubtestsDoNotShareIDPath(t *testing.T) {
	var ids []string
	_ = runNoFilter(func(c *Context) {
		c.Run("group", func(c *Context) {
			c.Run("a", func(c *Context) { ids = append(ids, c.ID().String()) })
			c.Run("b", func(c *Context) { ids = append(ids, c.ID().String()) })
		})
	})

	assert.Equal(t, []string{"group/a", "group/b"}, ids)
}

func TestDebugOutputIsDeliveredToTestLogger(t *testing.T) {
	logger := &recordingTestLogger{}
	_ = Run(nil, logger, func(c *Context) {
		c.Run("chatty", func(c *Context) {
			c.Debug("saw %d", 42)
		})
	})

	require.Len(t, logger.finished, 1)
	require.Len(t, logger.finished[0].debugOutput, 1)
	assert.Equal(t, "saw 42", logger.finished[0].debugOutput[0].Message)
}

type finishedEvent struct {
	id          TestID
	failed      bool
	debugOutput CapturedOutput
}

type recordingTestLogger struct {
	started  []TestID
	errors   []error
	finished []finishedEvent
	skipped  []TestID
}

func (l *recordingTestLogger) TestStarted(id TestID) { l.started = append(l.started, id) }
func (l *recordingTestLogger) TestError(id TestID, err error) {
	l.errors = append(l.errors, err)
}
func (l *recordingTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	l.finished = append(l.finished, finishedEvent{id, failed, debugOutput})
}
func (l *recordingTestLogger) TestSkipped(id TestID, reason string) {
	l.skipped = append(l.skipped, id)
}
