package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"legalform/models"

	"go.uber.org/zap"
)

// ErrNoRecipients means the recipient configuration resolved to an empty
// set; the dispatch aborts before any network call is made.
var ErrNoRecipients = errors.New("notification: no recipients configured")

// Outcome records whether delivery to a single recipient succeeded.
type Outcome struct {
	Recipient string
	Succeeded bool
}

// Report summarizes one dispatch: per-recipient outcomes in delivery
// order, plus how many of the attempts succeeded.
type Report struct {
	Outcomes []Outcome
	Sent     int
	Total    int
}

// Succeeded reports whether the dispatch as a whole worked. At least one
// delivered recipient is enough; it is not all-or-nothing.
func (r Report) Succeeded() bool {
	return r.Sent > 0
}

// Dispatcher fans a formatted consultation notification out to every
// configured recipient. It holds no state across dispatches and makes no
// retries: each recipient gets exactly one attempt per call.
type Dispatcher struct {
	Sender     Sender
	Recipients []string
	Timeout    time.Duration
	Logger     *zap.Logger
}

// DefaultSendTimeout bounds each per-recipient provider call.
const DefaultSendTimeout = 10 * time.Second

func NewDispatcher(sender Sender, recipients []string, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		Sender:     sender,
		Recipients: recipients,
		Timeout:    DefaultSendTimeout,
		Logger:     logger,
	}
}

// ResolveRecipients normalizes recipient configuration into an ordered
// set. Every entry may itself be a comma-delimited list (the usual shape
// when the whole set comes from a single env var); entries are trimmed
// and empty ones dropped.
func ResolveRecipients(entries []string) []string {
	var recipients []string
	for _, entry := range entries {
		for _, part := range strings.Split(entry, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				recipients = append(recipients, part)
			}
		}
	}
	return recipients
}

// Dispatch formats req into a text message and delivers it to every
// configured recipient in order. Individual delivery failures are logged
// and recorded in the report; they never abort the remaining recipients
// and never escape as an error. The only error returns are an empty
// recipient set and a recovered panic.
func (d *Dispatcher) Dispatch(req *models.ConsultationRequest) (report Report, err error) {
	logger := d.logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Dispatch panicked",
				zap.String("consultationID", req.ID),
				zap.Any("panic", r),
			)
			report = Report{}
			err = fmt.Errorf("notification: dispatch panicked: %v", r)
		}
	}()

	recipients := ResolveRecipients(d.Recipients)
	if len(recipients) == 0 {
		logger.Warn("Dispatch aborted: no recipients configured",
			zap.String("consultationID", req.ID))
		return Report{}, ErrNoRecipients
	}

	text := FormatConsultationMessage(req)
	report.Total = len(recipients)

	for _, recipient := range recipients {
		ok := d.sendOne(recipient, text)
		if ok {
			report.Sent++
		}
		report.Outcomes = append(report.Outcomes, Outcome{Recipient: recipient, Succeeded: ok})
	}

	logger.Info("Dispatch finished",
		zap.String("consultationID", req.ID),
		zap.Int("sent", report.Sent),
		zap.Int("total", report.Total),
	)
	return report, nil
}

// sendOne performs a single bounded delivery attempt. Transport errors
// and provider-level rejections both count as failure for the recipient.
func (d *Dispatcher) sendOne(recipient, text string) bool {
	logger := d.logger()

	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultSendTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	res, err := d.Sender.Send(ctx, recipient, text)
	if err != nil {
		logger.Error("Notification delivery failed",
			zap.String("recipient", recipient),
			zap.Error(err),
		)
		return false
	}
	if !res.Ok {
		logger.Error("Notification rejected by provider",
			zap.String("recipient", recipient),
			zap.String("messageID", res.MessageID),
		)
		return false
	}

	logger.Info("Notification delivered",
		zap.String("recipient", recipient),
		zap.String("messageID", res.MessageID),
	)
	return true
}

func (d *Dispatcher) logger() *zap.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return zap.L()
}
