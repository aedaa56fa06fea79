package submission

import "time"

// Story status values. Stories are created pending; moderation to published
// happens CMS-side, never through this service.
const (
	StatusPending   = "pending"
	StatusPublished = "published"
)

// PetitionSignature is a persisted petition signature. Created exactly once on
// successful validation, never mutated afterwards.
type PetitionSignature struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Zipcode   string    `json:"zipcode" bson:"zipcode"`
	Consent   bool      `json:"consent" bson:"consent"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Reason    string    `json:"reason,omitempty" bson:"reason,omitempty"`
	Theme     string    `json:"theme" bson:"theme"`
	IPAddress string    `json:"ipAddress" bson:"ipAddress"`
	UserAgent string    `json:"userAgent" bson:"userAgent"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Story is a persisted visitor story.
type Story struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Story        string    `json:"story" bson:"story"`
	AllowPublish bool      `json:"allowPublish" bson:"allowPublish"`
	AllowContact bool      `json:"allowContact" bson:"allowContact"`
	Theme        string    `json:"theme" bson:"theme"`
	Status       string    `json:"status" bson:"status"`
	IPAddress    string    `json:"ipAddress" bson:"ipAddress"`
	UserAgent    string    `json:"userAgent" bson:"userAgent"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// StoryView is the public read-path projection of a published story. Email,
// consent flags and network metadata are never part of this projection.
type StoryView struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Story     string    `json:"story" bson:"story"`
	Theme     string    `json:"theme" bson:"theme"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// PetitionRequest is the inbound petition payload before validation.
type PetitionRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Zipcode string `json:"zipcode"`
	Consent bool   `json:"consent"`
	Phone   string `json:"phone"`
	Reason  string `json:"reason"`
	Theme   string `json:"theme"`
}

// StoryRequest is the inbound story payload before validation.
type StoryRequest struct {
	Email        string `json:"email"`
	Story        string `json:"story"`
	Name         string `json:"name"`
	AllowPublish bool   `json:"allowPublish"`
	AllowContact bool   `json:"allowContact"`
	Theme        string `json:"theme"`
}

// RequestMeta carries best-effort transport metadata attached to submissions.
// Values are informational only and never validated.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// ListOptions carries filter and pagination parameters for the story read path.
type ListOptions struct {
	// Theme filters by theme tag; empty returns all themes.
	Theme  string
	Limit  int
	Offset int
}
