package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Mailer delivers a single email. Implementations live in internal/mail.
type Mailer interface {
	Send(ctx context.Context, email domain.Email) error
}

// defaultSendLimit caps how many messages a fan-out sends at once.
const defaultSendLimit = 8

// Notifier renders and delivers the trip confirmation emails.
// Delivery is best-effort: failures are logged and reported, never retried.
type Notifier struct {
	mailer     Mailer
	apiBaseURL string
	log        *slog.Logger
	sendLimit  int
}

// NewNotifier constructs a Notifier. apiBaseURL is the public base URL of this
// API and prefixes every confirmation link.
func NewNotifier(mailer Mailer, apiBaseURL string, log *slog.Logger) *Notifier {
	if log == nil {
		log = slog.Default()
	}
	return &Notifier{mailer: mailer, apiBaseURL: apiBaseURL, log: log, sendLimit: defaultSendLimit}
}

// TripCreated asks the owner to confirm a newly created trip. Every failure
// is logged here, so callers that keep the trip regardless may drop the error.
func (n *Notifier) TripCreated(ctx context.Context, trip domain.Trip, owner domain.Participant) error {
	email, err := n.ownerConfirmation(trip, owner)
	if err != nil {
		n.logFailure(ctx, "confirmation email not built", trip.ID, owner.ID, owner.Email, err)
		return fmt.Errorf("service.Notifier.TripCreated: %w", err)
	}
	return n.deliver(ctx, trip.ID, owner.ID, email)
}

// Invite asks a single participant to confirm their attendance. Failures are
// logged the same way as in TripCreated.
func (n *Notifier) Invite(ctx context.Context, trip domain.Trip, p domain.Participant) error {
	email, err := n.invitation(trip, p)
	if err != nil {
		n.logFailure(ctx, "invitation email not built", trip.ID, p.ID, p.Email, err)
		return fmt.Errorf("service.Notifier.Invite: %w", err)
	}
	return n.deliver(ctx, trip.ID, p.ID, email)
}

// InviteAll sends an invitation to every participant concurrently and waits
// for all of them. One failed send never stops the others; every outcome is
// recorded in the returned report in input order.
func (n *Notifier) InviteAll(ctx context.Context, trip domain.Trip, ps []domain.Participant) domain.DeliveryReport {
	report := domain.DeliveryReport{Deliveries: make([]domain.Delivery, len(ps))}

	var g errgroup.Group
	g.SetLimit(n.sendLimit)
	for i, p := range ps {
		report.Deliveries[i] = domain.Delivery{ParticipantID: p.ID, Address: p.Email}
		g.Go(func() error {
			email, err := n.invitation(trip, p)
			if err == nil {
				err = n.mailer.Send(ctx, email)
			}
			report.Deliveries[i].Err = err
			return nil
		})
	}
	_ = g.Wait()

	if err := reportErr(report); err != nil {
		n.log.WarnContext(ctx, "trip confirmation emails partially failed",
			"trip_id", trip.ID,
			"sent", report.Sent(),
			"failed", len(report.Failed()),
			"error", err,
		)
	}
	return report
}

func (n *Notifier) ownerConfirmation(trip domain.Trip, owner domain.Participant) (domain.Email, error) {
	link, err := url.JoinPath(n.apiBaseURL, "trips", trip.ID.String(), "confirm")
	if err != nil {
		return domain.Email{}, err
	}
	html, err := render(ownerConfirmationTmpl, newEmailData(trip, link))
	if err != nil {
		return domain.Email{}, err
	}
	return domain.Email{
		ToName:    derefName(owner.Name),
		ToAddress: owner.Email,
		Subject:   subjectFor(trip),
		HTML:      html,
	}, nil
}

func (n *Notifier) invitation(trip domain.Trip, p domain.Participant) (domain.Email, error) {
	link, err := url.JoinPath(n.apiBaseURL, "participants", p.ID.String(), "confirm")
	if err != nil {
		return domain.Email{}, err
	}
	html, err := render(participantInvitationTmpl, newEmailData(trip, link))
	if err != nil {
		return domain.Email{}, err
	}
	return domain.Email{
		ToName:    derefName(p.Name),
		ToAddress: p.Email,
		Subject:   subjectFor(trip),
		HTML:      html,
	}, nil
}

func (n *Notifier) deliver(ctx context.Context, tripID, participantID uuid.UUID, email domain.Email) error {
	if err := n.mailer.Send(ctx, email); err != nil {
		n.logFailure(ctx, "email delivery failed", tripID, participantID, email.ToAddress, err)
		return err
	}
	return nil
}

func (n *Notifier) logFailure(ctx context.Context, msg string, tripID, participantID uuid.UUID, to string, err error) {
	n.log.WarnContext(ctx, msg,
		"trip_id", tripID,
		"participant_id", participantID,
		"to", to,
		"error", err,
	)
}

// reportErr folds every failed delivery into one error, or nil.
func reportErr(r domain.DeliveryReport) error {
	var err error
	for _, d := range r.Failed() {
		err = multierr.Append(err, fmt.Errorf("%s: %w", d.Address, d.Err))
	}
	return err
}

func derefName(name *string) string {
	if name == nil {
		return ""
	}
	return *name
}
