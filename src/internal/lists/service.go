package lists

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/holectl/holectl/src/internal/errors"
	"github.com/holectl/holectl/src/internal/log"
	"github.com/holectl/holectl/src/internal/metrics"
)

// RecompileRegexCommand is the control channel command that makes the
// resolver recompile the regex list.
const RecompileRegexCommand = "recompile-regex"

// Service applies list changes and keeps the resolver in sync with them.
type Service struct {
	repo     Repository
	reloader Reloader
	channel  ControlChannel

	// mu serializes mutations so the existence check and the insert
	// of one call are not interleaved with another call.
	mu sync.Mutex
}

// NewService creates a list service.
func NewService(repo Repository, reloader Reloader, channel ControlChannel) *Service {
	return &Service{
		repo:     repo,
		reloader: reloader,
		channel:  channel,
	}
}

// Add validates domain, inserts it into list, removes it from the opposite
// list (whitelist and blacklist only) and notifies the resolver.
//
// If removing the domain from the opposite list fails for a reason other
// than the domain being absent, the error is returned and the insert is kept.
func (s *Service) Add(ctx context.Context, list List, domain string) (err error) {
	defer func() { metrics.ObserveListMutation(list.String(), "add", err) }()

	p, err := policyFor(list)
	if err != nil {
		return err
	}
	if !p.accepts(domain) {
		return errors.NewInvalidDomainError(domain)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.repo.Contains(ctx, list, domain)
	if err != nil {
		return err
	}
	if exists {
		return errors.NewAlreadyExistsError(list.String(), domain)
	}

	if err := s.repo.Add(ctx, list, domain); err != nil {
		return err
	}
	log.Debugf("Added %q to %s", domain, list)

	if p.opposite != 0 {
		err := s.repo.Remove(ctx, p.opposite, domain)
		switch {
		case err == nil:
			log.Infof("Removed %q from %s", domain, p.opposite)
		case stderrors.Is(err, errors.ErrNotFound):
		default:
			return err
		}
	}

	return s.react(ctx, list, p)
}

// Remove validates domain, deletes it from list and notifies the resolver.
func (s *Service) Remove(ctx context.Context, list List, domain string) (err error) {
	defer func() { metrics.ObserveListMutation(list.String(), "remove", err) }()

	p, err := policyFor(list)
	if err != nil {
		return err
	}
	if !p.accepts(domain) {
		return errors.NewInvalidDomainError(domain)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.repo.Contains(ctx, list, domain)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFoundError(list.String(), domain)
	}

	if err := s.repo.Remove(ctx, list, domain); err != nil {
		return err
	}
	log.Debugf("Removed %q from %s", domain, list)

	return s.react(ctx, list, p)
}

// Get returns the entries of list as stored by the repository.
func (s *Service) Get(ctx context.Context, list List) ([]string, error) {
	if _, err := policyFor(list); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, list)
}

// react runs the resolver notification detached from ctx cancellation: the
// list is already committed, so only the reloader and channel timeouts apply.
func (s *Service) react(ctx context.Context, list List, p policy) (err error) {
	ctx = context.WithoutCancel(ctx)
	start := time.Now()

	switch p.reaction {
	case reactGravityReload:
		defer func() { metrics.ObserveReaction("gravity-reload", start, err) }()
		err = s.reloader.Reload(ctx, list)
	case reactRecompileRegex:
		defer func() { metrics.ObserveReaction(RecompileRegexCommand, start, err) }()
		err = s.channel.Send(ctx, RecompileRegexCommand)
	default:
		return errors.NewUnknownError("no reaction for "+list.String(), nil)
	}

	if err != nil {
		log.Errorf("Resolver did not pick up the %s change: %v", list, err)
		return err
	}
	log.Debugf("Resolver updated for %s in %s", list, time.Since(start).Round(time.Millisecond))
	return nil
}
