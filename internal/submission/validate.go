package submission

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/whynotact/backend/internal/lens"
)

// Shape rules. The email rule is deliberately loose: local part, "@", domain,
// ".", tld, no internal whitespace.
var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	zipcodeRe = regexp.MustCompile(`^\d{5}$`)
)

const (
	storyMinLen = 50
	storyMaxLen = 2000

	// AnonymousName is the display name stored when a story omits one.
	AnonymousName = "Anonymous"

	// unknownMeta is stored when transport metadata is unavailable.
	unknownMeta = "unknown"
)

// ValidatePetition checks a petition payload rule by rule (presence, email
// shape, zipcode shape) and returns either a normalized signature ready for
// persistence or the first violation. Optional fields receive their documented
// defaults and transport metadata is attached best-effort.
func ValidatePetition(req PetitionRequest, meta RequestMeta) (*PetitionSignature, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, missing("name")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, missing("email")
	}
	if strings.TrimSpace(req.Zipcode) == "" {
		return nil, missing("zipcode")
	}
	if !req.Consent {
		return nil, missing("consent")
	}
	if !emailRe.MatchString(req.Email) {
		return nil, invalid("email", "email address is not valid")
	}
	if !zipcodeRe.MatchString(req.Zipcode) {
		return nil, invalid("zipcode", "zipcode must be exactly 5 digits")
	}
	theme, err := lens.ParseTheme(req.Theme)
	if err != nil {
		return nil, invalid("theme", fmt.Sprintf("theme %q is not recognized", req.Theme))
	}
	return &PetitionSignature{
		Name:      strings.TrimSpace(req.Name),
		Email:     req.Email,
		Zipcode:   req.Zipcode,
		Consent:   true,
		Phone:     req.Phone,
		Reason:    req.Reason,
		Theme:     theme,
		IPAddress: orUnknown(meta.IPAddress),
		UserAgent: orUnknown(meta.UserAgent),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// ValidateStory checks a story payload (presence, email shape, content length
// bounds) and returns a normalized story in pending status, or the first
// violation. Length violations use distinct codes so the caller can surface
// the two messages separately.
func ValidateStory(req StoryRequest, meta RequestMeta) (*Story, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, missing("email")
	}
	if strings.TrimSpace(req.Story) == "" {
		return nil, missing("story")
	}
	if !emailRe.MatchString(req.Email) {
		return nil, invalid("email", "email address is not valid")
	}
	if n := len([]rune(req.Story)); n < storyMinLen {
		return nil, &ValidationError{
			Code:    TooShort,
			Field:   "story",
			Message: fmt.Sprintf("story must be at least %d characters, got %d", storyMinLen, n),
		}
	} else if n > storyMaxLen {
		return nil, &ValidationError{
			Code:    TooLong,
			Field:   "story",
			Message: fmt.Sprintf("story must be at most %d characters, got %d", storyMaxLen, n),
		}
	}
	theme, err := lens.ParseTheme(req.Theme)
	if err != nil {
		return nil, invalid("theme", fmt.Sprintf("theme %q is not recognized", req.Theme))
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = AnonymousName
	}
	return &Story{
		Name:         name,
		Email:        req.Email,
		Story:        req.Story,
		AllowPublish: req.AllowPublish,
		AllowContact: req.AllowContact,
		Theme:        theme,
		Status:       StatusPending,
		IPAddress:    orUnknown(meta.IPAddress),
		UserAgent:    orUnknown(meta.UserAgent),
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func orUnknown(s string) string {
	if s == "" {
		return unknownMeta
	}
	return s
}
