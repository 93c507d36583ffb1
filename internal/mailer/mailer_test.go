package mailer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"labreport/internal/models"
)

// stubTransport fails for the addresses in fail and records delivery order.
type stubTransport struct {
	fail map[string]error
	sent []string
}

func (s *stubTransport) Send(job models.EmailJob) error {
	if err := s.fail[job.To]; err != nil {
		return err
	}
	s.sent = append(s.sent, job.To)
	return nil
}

func jobs(addrs ...string) []models.EmailJob {
	out := make([]models.EmailJob, 0, len(addrs))
	for i, a := range addrs {
		out = append(out, models.EmailJob{ID: string(rune('a' + i)), To: a, Subject: "Lab Grade"})
	}
	return out
}

func TestSendBatchAllSucceed(t *testing.T) {
	tr := &stubTransport{}
	results := SendBatch(tr, jobs("a@x.com", "b@x.com"), zap.NewNop())

	require.Len(t, results, 2)
	require.Equal(t, 2, Sent(results))
	require.Equal(t, []string{"a@x.com", "b@x.com"}, tr.sent)
}

func TestSendBatchFailureDoesNotAbort(t *testing.T) {
	boom := errors.New("mailbox unavailable")
	tr := &stubTransport{fail: map[string]error{"b@x.com": boom}}
	results := SendBatch(tr, jobs("a@x.com", "b@x.com", "c@x.com"), zap.NewNop())

	require.Len(t, results, 3)
	require.Equal(t, 2, Sent(results))
	require.NoError(t, results[0].Err)
	require.ErrorIs(t, results[1].Err, boom)
	require.NoError(t, results[2].Err)
	// the failure did not stop the job after it
	require.Equal(t, []string{"a@x.com", "c@x.com"}, tr.sent)
}

func TestSendBatchEmpty(t *testing.T) {
	results := SendBatch(&stubTransport{}, nil, zap.NewNop())
	require.Empty(t, results)
	require.Zero(t, Sent(results))
}

func TestSendBatchResultsKeepJobOrder(t *testing.T) {
	tr := &stubTransport{fail: map[string]error{"a@x.com": errors.New("x")}}
	results := SendBatch(tr, jobs("a@x.com", "b@x.com"), zap.NewNop())

	require.Equal(t, "a@x.com", results[0].Job.To)
	require.Equal(t, "b@x.com", results[1].Job.To)
}
