// Package widget models the per-card coupon interaction flow: revealing a
// code opens the merchant tracking link and shows a modal, copying is
// best-effort with a transient confirmation, and voting is a fire-and-forget
// counter bump latched to one vote per rendered card.
package widget

import (
	"context"
	"sync"
	"time"

	"github.com/Haris-56/coupon/pkg/models"
)

type State int

const (
	StateIdle State = iota
	StateModalShown
	StateCopied
)

// Voter is the slice of the mutation surface the widget talks to.
type Voter interface {
	Vote(ctx context.Context, couponID string, direction models.VoteDirection) error
}

// Card is the interaction state for one rendered coupon. The copy
// confirmation reverts on a timer, so state is guarded by a mutex even
// though user events arrive one at a time.
type Card struct {
	mu     sync.Mutex
	coupon models.Coupon
	state  State
	voted  bool

	voter       Voter
	openLink    func(url string)
	copyText    func(text string) error
	revertDelay time.Duration
}

type Option func(*Card)

// WithRevertDelay overrides how long the copied confirmation is shown.
func WithRevertDelay(d time.Duration) Option {
	return func(c *Card) { c.revertDelay = d }
}

// WithLinkOpener overrides how the tracking link is opened.
func WithLinkOpener(open func(url string)) Option {
	return func(c *Card) { c.openLink = open }
}

// WithClipboard overrides the copy-to-clipboard hook.
func WithClipboard(copyText func(text string) error) Option {
	return func(c *Card) { c.copyText = copyText }
}

func NewCard(coupon models.Coupon, voter Voter, opts ...Option) *Card {
	c := &Card{
		coupon:      coupon,
		state:       StateIdle,
		voter:       voter,
		openLink:    func(string) {},
		copyText:    func(string) error { return nil },
		revertDelay: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Card) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Activate handles the primary click: the tracking link opens in a new
// browsing context and the modal appears with either the code to copy or the
// go-to-deal affordance.
func (c *Card) Activate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateIdle {
		return
	}
	c.openLink(c.coupon.TrackingLink)
	c.state = StateModalShown
}

// RevealedCode returns the code shown in the modal; empty for deals.
func (c *Card) RevealedCode() string {
	if c.coupon.CouponType == models.CouponTypeDeal {
		return ""
	}
	return c.coupon.Code
}

// Copy puts the code on the clipboard, best-effort: a clipboard failure is
// not surfaced. The confirmation reverts to the modal after the delay.
func (c *Card) Copy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateModalShown {
		return
	}
	_ = c.copyText(c.coupon.Code)
	c.state = StateCopied

	time.AfterFunc(c.revertDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.state == StateCopied {
			c.state = StateModalShown
		}
	})
}

// Vote records one vote for this rendered card and disables further votes.
// The call is fire-and-forget: a server failure neither retries nor rolls
// back the disabled controls.
func (c *Card) Vote(ctx context.Context, direction models.VoteDirection) {
	c.mu.Lock()
	if c.voted || c.state == StateIdle {
		c.mu.Unlock()
		return
	}
	c.voted = true
	c.mu.Unlock()

	_ = c.voter.Vote(ctx, c.coupon.ID.Hex(), direction)
}

// HasVoted reports whether the vote controls are disabled.
func (c *Card) HasVoted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.voted
}

// Close dismisses the modal. The one-vote latch survives until the card is
// rendered again.
func (c *Card) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateModalShown || c.state == StateCopied {
		c.state = StateIdle
	}
}
