package services

import (
	"context"
	"errors"
	"net"

	apperrors "github.com/amaumene/nzbio/internal/errors"
	"github.com/amaumene/nzbio/internal/metrics"
)

// isTimeout reports whether err came from a deadline rather than a refused or broken connection.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// transportError classifies a failed outbound call and records its outcome.
func transportError(m *metrics.Metrics, upstream, operation string, err error, wrap func(string, error) *apperrors.StreamError) error {
	if isTimeout(err) {
		m.ObserveUpstream(upstream, metrics.OutcomeTimeout)
		return apperrors.NewTimeoutError(operation, err)
	}
	m.ObserveUpstream(upstream, metrics.OutcomeError)
	return wrap(operation+" failed", err)
}
