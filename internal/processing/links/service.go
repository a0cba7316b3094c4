package links

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// maxGenerateAttempts bounds the generate+insert loop. Generation does no
// existence pre-check; the store's unique index is the collision detector.
const maxGenerateAttempts = 5

type Service struct {
	repo       LinkRepository
	generator  CodeGenerator
	codeLength int
	now        func() time.Time
}

func NewService(repo LinkRepository, generator CodeGenerator, codeLength int) *Service {
	if codeLength < 6 || codeLength > 8 {
		codeLength = 6
	}

	return &Service{
		repo:       repo,
		generator:  generator,
		codeLength: codeLength,
		now:        time.Now,
	}
}

func (s *Service) CreateLink(ctx context.Context, in CreateLinkInput) (*Link, error) {
	target, err := validateURL(in.URL)
	if err != nil {
		return nil, ErrInvalidURL
	}

	link := &Link{
		URL:       target,
		CreatedAt: s.now().UTC(),
	}

	if custom := strings.TrimSpace(in.CustomCode); custom != "" {
		if !ValidCodeFormat(custom) {
			return nil, ErrInvalidCode
		}
		link.Code = NormalizeCode(custom)

		// Custom codes are a deliberate user choice: a collision is
		// terminal, not retryable.
		if err := s.repo.Insert(ctx, link); err != nil {
			if err == ErrCodeTaken {
				return nil, ErrCodeInUse
			}
			return nil, err
		}
		return link, nil
	}

	for range maxGenerateAttempts {
		code, err := s.generator.Generate(s.codeLength)
		if err != nil {
			return nil, err
		}
		link.Code = NormalizeCode(code)

		if err := s.repo.Insert(ctx, link); err != nil {
			if err == ErrCodeTaken {
				continue
			}
			return nil, err
		}
		return link, nil
	}

	return nil, ErrCodeExhausted
}

func (s *Service) ListLinks(ctx context.Context) ([]*Link, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetLink(ctx context.Context, code string) (*Link, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, ErrNotFound
	}

	return s.repo.FindByCode(ctx, code)
}

func (s *Service) DeleteLink(ctx context.Context, code string) error {
	code = NormalizeCode(code)
	if code == "" {
		return ErrNotFound
	}

	removed, err := s.repo.DeleteByCode(ctx, code)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

// Resolve records a click and returns the redirect target. The click
// increment and lastClicked update happen as one atomic store operation;
// callers must only redirect after Resolve succeeds.
func (s *Service) Resolve(ctx context.Context, code string) (*Redirect, error) {
	code = NormalizeCode(code)
	if code == "" || IsReservedCode(code) {
		return nil, ErrNotFound
	}

	link, err := s.repo.IncrementClick(ctx, code, s.now().UTC())
	if err != nil {
		return nil, err
	}

	return &Redirect{
		Link:   link,
		Target: completeScheme(link.URL),
	}, nil
}

var schemePrefix = regexp.MustCompile(`(?i)^https?://`)

// completeScheme prepends http:// to targets stored without a scheme.
// Normalization happens at read time to keep legacy records redirectable.
func completeScheme(target string) string {
	if schemePrefix.MatchString(target) {
		return target
	}
	return "http://" + target
}

func validateURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", ErrInvalidURL
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", ErrInvalidURL
	}
	if strings.TrimSpace(u.Host) == "" {
		return "", ErrInvalidURL
	}

	return raw, nil
}
