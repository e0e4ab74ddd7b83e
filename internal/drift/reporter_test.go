package drift

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/birbparty/perch/sdk"
	"github.com/birbparty/perch/sdk/testdata"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, r *Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func decodeErr(field string) *sdk.DecodeError {
	return &sdk.DecodeError{Type: "GetSiteResponse", Field: field, Err: errors.New("missing field")}
}

func closeReporter(t *testing.T, r *Reporter) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, r.Close(ctx))
}

func TestReporter_PublishesDecodeErrors(t *testing.T) {
	pub := new(MockPublisher)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(r *Report) bool {
		return r.Instance == "lemmy.ml" && r.Endpoint == "GET site"
	})).Return(nil)

	logger, _ := test.NewNullLogger()
	r := NewReporter(pub, "lemmy.ml", 4, time.Second, logger)

	r.OnDecodeError(sdk.GetOps().Site, decodeErr("version"))
	r.OnDecodeError(sdk.GetOps().Site, decodeErr("site_view"))
	closeReporter(t, r)

	pub.AssertNumberOfCalls(t, "Publish", 2)
	fields := []string{
		pub.Calls[0].Arguments.Get(1).(*Report).Field,
		pub.Calls[1].Arguments.Get(1).(*Report).Field,
	}
	assert.Equal(t, []string{"version", "site_view"}, fields)

	stats := r.Stats()
	assert.Equal(t, int64(2), stats.Published)
	assert.Zero(t, stats.Failed)
	assert.Zero(t, stats.Dropped)
	assert.Equal(t, 4, stats.QueueCapacity)
}

func TestReporter_PublishTimeout(t *testing.T) {
	pub := new(MockPublisher)
	pub.On("Publish", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		_, ok := ctx.Deadline()
		assert.True(t, ok)
	})

	r := NewReporter(pub, "lemmy.ml", 1, 50*time.Millisecond, nil)
	r.OnDecodeError(sdk.GetOps().Site, decodeErr("version"))
	closeReporter(t, r)
	pub.AssertExpectations(t)
}

func TestReporter_FailuresAreLogged(t *testing.T) {
	pub := new(MockPublisher)
	pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("no responders"))

	logger, hook := test.NewNullLogger()
	r := NewReporter(pub, "lemmy.ml", 2, time.Second, logger)
	r.OnDecodeError(sdk.GetOps().Post, decodeErr("post_view"))
	closeReporter(t, r)

	assert.Equal(t, int64(1), r.Stats().Failed)
	assert.Zero(t, r.Stats().Published)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "drift", entry.Data["component"])
	assert.Equal(t, "GET post", entry.Data["endpoint"])
	assert.Equal(t, "post_view", entry.Data["field"])
}

func TestReporter_DropsWhenFull(t *testing.T) {
	started := make(chan struct{}, 1)
	release := make(chan struct{})

	pub := new(MockPublisher)
	pub.On("Publish", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
	})

	logger, hook := test.NewNullLogger()
	r := NewReporter(pub, "lemmy.ml", 1, 0, logger)

	// the first report occupies the worker, the second fills the queue
	r.OnDecodeError(sdk.GetOps().Site, decodeErr("a"))
	<-started
	r.OnDecodeError(sdk.GetOps().Site, decodeErr("b"))
	r.OnDecodeError(sdk.GetOps().Site, decodeErr("c"))

	assert.Equal(t, int64(1), r.Stats().Dropped)
	assert.Equal(t, 1, r.Stats().QueueDepth)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	close(release)
	closeReporter(t, r)
	assert.Equal(t, int64(2), r.Stats().Published)
}

func TestReporter_Close(t *testing.T) {
	t.Run("reports after close are dropped", func(t *testing.T) {
		pub := new(MockPublisher)
		r := NewReporter(pub, "lemmy.ml", 1, time.Second, nil)
		closeReporter(t, r)
		closeReporter(t, r)

		r.OnDecodeError(sdk.GetOps().Site, decodeErr("version"))
		assert.Equal(t, int64(1), r.Stats().Dropped)
		pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("gives up when the context expires", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)

		pub := new(MockPublisher)
		pub.On("Publish", mock.Anything, mock.Anything).Return(nil).Run(func(mock.Arguments) { <-release })

		r := NewReporter(pub, "lemmy.ml", 1, 0, nil)
		r.OnDecodeError(sdk.GetOps().Site, decodeErr("version"))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, r.Close(ctx), context.DeadlineExceeded)
	})
}

func TestReporter_ObservesClientDecodeFailures(t *testing.T) {
	ms := testdata.NewMockServer()
	defer ms.Close()
	ms.RegisterHandler("GET /api/v3/site", func(w http.ResponseWriter, r *http.Request) (int, interface{}) {
		return http.StatusOK, testdata.Without(testdata.SiteResponse(), "version")
	})

	pub := new(MockPublisher)
	pub.On("Publish", mock.Anything, mock.Anything).Return(nil)
	r := NewReporter(pub, "mock", 4, time.Second, nil)

	logger, _ := test.NewNullLogger()
	client, err := sdk.NewClient(sdk.DefaultConfig().
		WithBaseURL(ms.URL).
		WithTimeout(2 * time.Second).
		WithLogger(logger).
		WithObserver(r))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.GetSite(context.Background(), client.BuildURL(sdk.GetOps().Site, sdk.GetSite{}))
	require.Error(t, err)
	closeReporter(t, r)

	pub.AssertNumberOfCalls(t, "Publish", 1)
	report := pub.Calls[0].Arguments.Get(1).(*Report)
	assert.Equal(t, "mock", report.Instance)
	assert.Equal(t, "GET site", report.Endpoint)
	assert.Equal(t, "GetSiteResponse", report.Type)
	assert.Equal(t, "version", report.Field)
	assert.Contains(t, report.Snippet, `"admins"`)
}
