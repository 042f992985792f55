package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"poap-drops/internal/clients/poap"
	"poap-drops/internal/events"
	"poap-drops/internal/instagram/responder"
	"poap-drops/internal/ledger"
	"poap-drops/internal/observability"
	"poap-drops/internal/recipient"
	"poap-drops/internal/store"
)

// claimLinkBase builds a claim link when the POAP API returns no claim URL
const claimLinkBase = "https://poap.xyz/claim/"

// DefaultMessageDelay spaces out backfilled messages
const DefaultMessageDelay = 100 * time.Millisecond

// Dependencies are the collaborators a Processor drives
type Dependencies struct {
	Store     MessageStore
	Ledger    DeliveryLedger
	Claims    ClaimClient
	Ownership OwnershipChecker
	Users     UserLookup
	Replier   Replier
	Events    EventEmitter
	Alerts    AlertNotifier
}

// Processor turns a stored story reply into at most one POAP delivery
type Processor struct {
	store        MessageStore
	ledger       DeliveryLedger
	claims       ClaimClient
	ownership    OwnershipChecker
	users        UserLookup
	replier      Replier
	events       EventEmitter
	alerts       AlertNotifier
	logger       *observability.Logger
	messageDelay time.Duration
}

// New creates a Processor. A non-positive messageDelay uses DefaultMessageDelay.
func New(deps Dependencies, messageDelay time.Duration, logger *observability.Logger) *Processor {
	if messageDelay <= 0 {
		messageDelay = DefaultMessageDelay
	}
	return &Processor{
		store:        deps.Store,
		ledger:       deps.Ledger,
		claims:       deps.Claims,
		ownership:    deps.Ownership,
		users:        deps.Users,
		replier:      deps.Replier,
		events:       deps.Events,
		alerts:       deps.Alerts,
		logger:       logger,
		messageDelay: messageDelay,
	}
}

// ProcessMessage runs one message through extraction, duplicate checks and the
// claim. Every handled message is marked processed whatever the outcome. An
// unexpected failure leaves it unprocessed so a later run retries it.
func (p *Processor) ProcessMessage(ctx context.Context, msg store.InstagramMessage, drop store.DropDetails) ProcessResult {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "instagram_message_id", Value: msg.MessageID},
		observability.Field{Key: "drop_id", Value: drop.Drop.ID.String()},
		observability.Field{Key: "instagram_sender_id", Value: msg.SenderID},
	)

	p.resolveUsername(ctx, &msg, drop.Account)

	result, err := p.handle(ctx, msg, drop)
	if err != nil {
		p.logger.Error(ctx, "failed to process instagram message", err)
		observability.RecordMessageOutcome(string(OutcomeError))
		return ProcessResult{Processed: false, Outcome: OutcomeError, Error: err}
	}

	if err := p.store.MarkInstagramMessageProcessed(ctx, msg.ID, drop.Drop.ID); err != nil {
		p.logger.Error(ctx, "failed to mark instagram message processed", err)
		observability.RecordMessageOutcome(string(OutcomeError))
		return ProcessResult{Processed: false, Outcome: result.Outcome, Error: err, PoapLink: result.PoapLink}
	}

	result.Processed = true
	observability.RecordMessageOutcome(string(result.Outcome))
	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "outcome", Value: string(result.Outcome)},
	), "processed instagram message")
	return result
}

// resolveUsername fills in the sender handle. Failures only get logged.
func (p *Processor) resolveUsername(ctx context.Context, msg *store.InstagramMessage, account store.InstagramAccount) {
	if msg.SenderUsername != nil && *msg.SenderUsername != "" {
		return
	}

	username, err := p.users.GetUsername(ctx, account.AccessToken, msg.SenderID)
	if err != nil {
		p.logger.WarnWithError(ctx, "failed to resolve instagram username", err)
		return
	}
	if username == "" {
		return
	}

	if err := p.store.UpdateInstagramMessageUsername(ctx, msg.ID, username); err != nil {
		p.logger.WarnWithError(ctx, "failed to store instagram username", err)
		return
	}
	msg.SenderUsername = &username
}

func (p *Processor) handle(ctx context.Context, msg store.InstagramMessage, drop store.DropDetails) (ProcessResult, error) {
	templates := drop.Messages

	r := recipient.Extract(msg.Text)
	if r.None() {
		p.reply(ctx, drop, msg.SenderID, responder.Render(templates.InvalidFormatMessage, ""))
		return ProcessResult{Outcome: OutcomeInvalidFormat}, nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "recipient_type", Value: string(r.Type)},
	)

	if !recipient.Accepts(drop.Drop.AcceptedFormats, r.Type) {
		p.reply(ctx, drop, msg.SenderID, responder.Render(templates.InvalidFormatMessage, r.Value))
		return ProcessResult{Outcome: OutcomeFormatRejected}, nil
	}

	owns, err := p.ownership.HasPOAP(ctx, r.Value, drop.Drop.PoapEventID)
	if err != nil {
		// Fail open: an unavailable ownership check never blocks a claim
		p.logger.WarnWithError(ctx, "ownership check failed, continuing", err)
	}
	if owns {
		p.reply(ctx, drop, msg.SenderID, responder.Render(templates.AlreadyClaimedMessage, r.Value))
		return ProcessResult{Outcome: OutcomeAlreadyOwnsPoap}, nil
	}

	existing, err := p.ledger.FindExisting(ctx, drop.Drop.ID, r.Type, r.Value)
	if err != nil {
		return ProcessResult{}, err
	}
	if existing != nil {
		p.reply(ctx, drop, msg.SenderID, responder.Render(templates.AlreadyClaimedMessage, r.Value))
		return ProcessResult{Outcome: OutcomeAlreadyClaimedValue}, nil
	}

	prior, err := p.ledger.FindExistingForSender(ctx, drop.Drop.ID, msg.SenderID)
	if err != nil {
		return ProcessResult{}, err
	}
	if prior != nil {
		p.reply(ctx, drop, msg.SenderID, responder.Render(templates.AlreadyClaimedMessage, prior.RecipientValue))
		return ProcessResult{Outcome: OutcomeAlreadyClaimedBySender}, nil
	}

	return p.deliver(ctx, msg, drop, r)
}

func (p *Processor) deliver(ctx context.Context, msg store.InstagramMessage, drop store.DropDetails, r recipient.Recipient) (ProcessResult, error) {
	delivery, err := p.ledger.Create(ctx, ledger.CreateParams{
		DropID:    drop.Drop.ID,
		MessageID: msg.ID,
		SenderID:  msg.SenderID,
		Recipient: r,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrAlreadyClaimed) {
			p.reply(ctx, drop, msg.SenderID, responder.Render(drop.Messages.AlreadyClaimedMessage, r.Value))
			return ProcessResult{Outcome: OutcomeAlreadyClaimedValue}, nil
		}
		return ProcessResult{}, err
	}

	claim := p.claims.DeliverPOAP(ctx, drop.Drop.PoapEventID, drop.Drop.PoapSecretCode, r, drop.Drop.SendPoapEmail)
	if !claim.Success {
		return p.recordFailure(ctx, drop, msg, delivery, claim)
	}

	link := poapLink(r, claim.Data)
	delivered, err := p.ledger.MarkDelivered(ctx, delivery.ID, link)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("claimed poap but failed to record delivery: %w", err)
	}

	text := responder.Render(drop.Messages.SuccessMessage, r.Value)
	if r.Type != recipient.TypeEmail {
		text = text + "\n\n" + link
	}
	p.reply(ctx, drop, msg.SenderID, text)

	p.events.EmitDropUpdate(ctx, drop.Drop.ID, events.UpdateTypeCollector)
	p.events.PublishDeliveryEvent(ctx, events.EventDeliveryDelivered, delivered)

	return ProcessResult{Outcome: OutcomeDelivered, PoapLink: link}, nil
}

func (p *Processor) recordFailure(ctx context.Context, drop store.DropDetails, msg store.InstagramMessage, delivery store.InstagramDelivery, claim poap.DeliveryResult) (ProcessResult, error) {
	p.logger.Warn(observability.WithFields(ctx,
		observability.Field{Key: "claim_error", Value: claim.Error},
	), "poap claim failed")

	failed, err := p.ledger.MarkFailed(ctx, delivery.ID, claim.Error)
	if err != nil {
		return ProcessResult{}, err
	}

	p.reply(ctx, drop, msg.SenderID, responder.GenericFailureMessage)

	p.events.EmitDropUpdate(ctx, drop.Drop.ID, events.UpdateTypeDeliveryFailed)
	p.events.PublishDeliveryEvent(ctx, events.EventDeliveryFailed, failed)

	if errors.Is(claim.Err, poap.ErrNoPoapsAvailable) {
		p.alerts.NotifyPoapsExhausted(ctx, drop.Drop)
	}

	return ProcessResult{Outcome: OutcomeFailed}, nil
}

func (p *Processor) reply(ctx context.Context, drop store.DropDetails, recipientID, text string) {
	p.replier.Send(ctx, drop.Account.AccessToken, recipientID, text)
}

// poapLink is the reference stored with a delivery: the email itself for email
// recipients, a claim link otherwise.
func poapLink(r recipient.Recipient, data poap.ClaimData) string {
	if r.Type == recipient.TypeEmail {
		return r.Value
	}
	if data.ClaimURL != "" {
		return data.ClaimURL
	}
	return claimLinkBase + data.QRHash
}
