package mailer

import (
	"context"
	"log/slog"
	"time"

	"coachdesk/internal/domain/notification"
	"coachdesk/internal/pkg/clock"
	"coachdesk/internal/pkg/config"
	"coachdesk/internal/pkg/errs"
	"coachdesk/internal/usecase/shared"

	"golang.org/x/time/rate"
)

var ErrUnsupportedProvider = errs.New("no sender registered for provider")

// Router dispatches each send to the sender registered for the channel's
// provider.
type Router struct {
	senders map[notification.Provider]shared.EmailTransport
}

func NewRouter(senders map[notification.Provider]shared.EmailTransport) *Router {
	return &Router{senders: senders}
}

func (r *Router) Send(ctx context.Context, ch notification.Channel, msg shared.OutboundEmail) error {
	sender, ok := r.senders[ch.Provider]
	if !ok {
		return errs.Wrap(ErrUnsupportedProvider, string(ch.Provider))
	}
	return sender.Send(ctx, ch, msg)
}

// RateLimited bounds the send rate and gives every attempt its own timeout,
// which also covers the time spent waiting for a token.
type RateLimited struct {
	next    shared.EmailTransport
	limiter *rate.Limiter
	timeout time.Duration
}

func NewRateLimited(next shared.EmailTransport, perSec float64, burst int, timeout time.Duration) *RateLimited {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Inf
	if perSec > 0 {
		limit = rate.Limit(perSec)
	}
	return &RateLimited{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
		timeout: timeout,
	}
}

func (r *RateLimited) Send(ctx context.Context, ch notification.Channel, msg shared.OutboundEmail) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	if err := r.limiter.Wait(ctx); err != nil {
		return errs.Wrap(err, "send rate limit wait aborted")
	}
	return r.next.Send(ctx, ch, msg)
}

// NewTransport assembles the rate-limited router with every provider.
func NewTransport(ctx context.Context, cfg config.MailConfig, clk clock.Clock, logger *slog.Logger) (*RateLimited, error) {
	signer, err := LoadDKIMSigner(cfg)
	if err != nil {
		return nil, err
	}
	sesClient, err := NewSESClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	router := NewRouter(map[notification.Provider]shared.EmailTransport{
		notification.ProviderSES:  NewSESSender(sesClient),
		notification.ProviderSMTP: NewSMTPSender(cfg, signer, clk),
		notification.ProviderLog:  NewLogSender(logger),
	})
	return NewRateLimited(router, cfg.RatePerSec, cfg.Burst, cfg.SendTimeout), nil
}
