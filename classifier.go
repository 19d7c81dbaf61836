package riptide

import (
	"context"
	"errors"
	"io"
	"net"
	"syscall"
)

// Predicate is a single test over a transport error. Classifier OR-combines
// a slice of Predicates, the same shape as the teacher's discriminator.Or
// combinator, applied to errors instead of message Views.
type Predicate func(err error) bool

// Classifier is an immutable, OR-combined list of Predicates. A successful
// match causes TemporaryExceptionPlugin to re-wrap the error as a
// *TemporaryException.
type Classifier struct {
	predicates []Predicate
}

// Match reports whether any predicate in c matches err. An empty
// Classifier never matches.
func (c Classifier) Match(err error) bool {
	for _, p := range c.predicates {
		if p(err) {
			return true
		}
	}
	return false
}

// NewClassifier builds a Classifier from the default transient-network
// predicate set plus any caller-supplied extras, OR-combined -- the spec's
// "create(p1, p2, …)" additive builder.
func NewClassifier(extra ...Predicate) Classifier {
	predicates := append(defaultPredicates(), extra...)
	return Classifier{predicates: predicates}
}

// DefaultClassifier returns a Classifier recognizing only the built-in
// transient-network predicates, with no caller extras.
func DefaultClassifier() Classifier {
	return Classifier{predicates: defaultPredicates()}
}

func defaultPredicates() []Predicate {
	return []Predicate{
		isTimeout,
		isConnectionFailure,
		isDNSFailure,
		isUnexpectedEOF,
	}
}

// isTimeout matches socket read/connect timeouts, surfaced by the net
// package as an error implementing net.Error with Timeout() == true. It
// excludes context.DeadlineExceeded/context.Canceled first: those are the
// caller's own ctx.WithTimeout/WithCancel around the whole Send call
// unwinding, a deliberate cancellation, not a transport-level dial/read
// deadline -- the resolved Open Question on this point (DESIGN.md) is that
// a caller's own timeout must never be silently reclassified as "safe to
// retry".
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}

// isConnectionFailure matches connection refused, reset, and aborted
// conditions, surfaced as *net.OpError wrapping a syscall errno.
func isConnectionFailure(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNABORTED)
}

// isDNSFailure matches DNS resolution failures.
func isDNSFailure(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isUnexpectedEOF matches a connection that closed mid-response, a
// transient condition worth retrying.
func isUnexpectedEOF(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.ErrClosedPipe)
}

// TemporaryExceptionPlugin attaches a Classifier to a pipeline. On
// failure, it unwraps one level of *TransportFailure (the core's own
// completion wrapper) so the classifier sees the underlying cause, then
// re-wraps a matching cause as *TemporaryException. A non-matching
// failure propagates unchanged. Applying this plugin twice is a no-op the
// second time: if the cause already is a *TemporaryException, it is
// returned as-is, so the wrap depth never exceeds one.
func TemporaryExceptionPlugin(c Classifier) Plugin {
	return func(args RequestArguments, next Supplier[*Response]) Supplier[*Response] {
		return func(ctx context.Context) *Future[*Response] {
			return Catch(next(ctx), func(ctx context.Context, err error) (*Response, error) {
				var already *TemporaryException
				if errors.As(err, &already) {
					return nil, err
				}

				cause := err
				var tf *TransportFailure
				if errors.As(err, &tf) {
					cause = tf.Cause
				}

				if c.Match(cause) {
					return nil, &TemporaryException{Cause: cause}
				}
				return nil, err
			})
		}
	}
}
