package content

import "github.com/whynotact/backend/internal/lens"

// Variant is the lens-specific rendering of a content item.
type Variant struct {
	Headline string `json:"headline,omitempty" bson:"headline,omitempty"`
	Body     string `json:"body" bson:"body"`
	Framing  string `json:"framing,omitempty" bson:"framing,omitempty"`
}

// Question is one survey question. Questions are grouped into layers and
// ordered within a layer; the question text itself lives in the per-lens
// variants (Variant.Body).
type Question struct {
	ID       string                `json:"id" bson:"_id,omitempty"`
	Layer    string                `json:"layer" bson:"layer"`
	Order    int                   `json:"order" bson:"order"`
	Category string                `json:"category,omitempty" bson:"category,omitempty"`
	Variants map[lens.Lens]Variant `json:"variants" bson:"variants"`
}

// ImpactPoint is a lens-tailored policy impact statement.
type ImpactPoint struct {
	ID       string                `json:"id" bson:"_id,omitempty"`
	Order    int                   `json:"order" bson:"order"`
	Topic    string                `json:"topic,omitempty" bson:"topic,omitempty"`
	Variants map[lens.Lens]Variant `json:"variants" bson:"variants"`
}

// DataPoint is a lens-tailored statistic with its source attribution.
type DataPoint struct {
	ID       string                `json:"id" bson:"_id,omitempty"`
	Order    int                   `json:"order" bson:"order"`
	Source   string                `json:"source,omitempty" bson:"source,omitempty"`
	Variants map[lens.Lens]Variant `json:"variants" bson:"variants"`
}

// ResolvedImpactPoint is an impact point projected to a single lens for the
// read path.
type ResolvedImpactPoint struct {
	ID       string `json:"id"`
	Order    int    `json:"order"`
	Topic    string `json:"topic,omitempty"`
	Headline string `json:"headline,omitempty"`
	Body     string `json:"body"`
	Framing  string `json:"framing,omitempty"`
}

// ResolvedDataPoint is a data point projected to a single lens.
type ResolvedDataPoint struct {
	ID       string `json:"id"`
	Order    int    `json:"order"`
	Source   string `json:"source,omitempty"`
	Headline string `json:"headline,omitempty"`
	Body     string `json:"body"`
	Framing  string `json:"framing,omitempty"`
}
