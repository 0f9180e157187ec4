package activityfeed

import (
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/volunteerhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/volunteerhub/internal/app/system/lifecycle"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	// ErrMissingTitle is returned for records whose title is blank in both locales.
	ErrMissingTitle = errors.New("activityfeed: record has no title")
	// ErrMissingID is returned for records that were never assigned an ObjectID.
	ErrMissingID = errors.New("activityfeed: record has no id")
)

// ActivityID returns the feed ID for a stored record: "<kind>:<hex>".
func ActivityID(kind Kind, id primitive.ObjectID) string {
	return string(kind) + ":" + id.Hex()
}

// SplitID reverses ActivityID.
func SplitID(s string) (Kind, primitive.ObjectID, bool) {
	prefix, hex, ok := strings.Cut(s, ":")
	if !ok {
		return "", primitive.NilObjectID, false
	}
	kind, ok := ParseKind(prefix)
	if !ok || string(kind) != prefix {
		return "", primitive.NilObjectID, false
	}
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return "", primitive.NilObjectID, false
	}
	return kind, oid, true
}

type common struct {
	id          primitive.ObjectID
	title       models.BilingualString
	description models.BilingualString
	location    string
	city        string
	department  string
	org         string
	imageURL    string
}

func (c common) activity(kind Kind) (Activity, error) {
	if c.id.IsZero() {
		return Activity{}, ErrMissingID
	}
	if c.title.IsEmpty() {
		return Activity{}, ErrMissingTitle
	}
	return Activity{
		ID:   ActivityID(kind, c.id),
		Kind: kind,
		Title: models.BilingualString{
			MN: strings.TrimSpace(c.title.MN),
			EN: strings.TrimSpace(c.title.EN),
		},
		Description: models.BilingualString{
			MN: htmlsanitize.PrepareForDisplay(c.description.MN),
			EN: htmlsanitize.PrepareForDisplay(c.description.EN),
		},
		Location:     orDefault(c.location, DefaultLocation),
		City:         strings.TrimSpace(c.city),
		Department:   strings.TrimSpace(c.department),
		Organization: orDefault(c.org, DefaultOrganization),
		ImageURL:     orDefault(c.imageURL, DefaultImageURL),
	}, nil
}

// FromEvent normalizes an event. StartDate is the start date and Deadline
// closes registration.
func FromEvent(e models.Event, now time.Time) (Activity, error) {
	a, err := common{
		id: e.ID, title: e.Title, description: e.Description,
		location: e.Location, city: e.City, department: e.Department,
		org: e.Organization, imageURL: e.ImageURL,
	}.activity(KindEvent)
	if err != nil {
		return Activity{}, err
	}
	a.StartOrOpenDate = e.StartDate
	a.Deadline = deref(e.Deadline)
	a.Capacity = e.Capacity
	a.RegisteredCount = e.RegisteredCount
	a.Status = lifecycle.Derive(now, a.Deadline, a.StartOrOpenDate, a.Capacity, a.RegisteredCount)
	return a, nil
}

// FromOpportunity normalizes an opportunity. The registration window maps
// onto the start date and deadline.
func FromOpportunity(o models.Opportunity, now time.Time) (Activity, error) {
	a, err := common{
		id: o.ID, title: o.Title, description: o.Description,
		location: o.Location, city: o.City, department: o.Department,
		org: o.Organization, imageURL: o.ImageURL,
	}.activity(KindOpportunity)
	if err != nil {
		return Activity{}, err
	}
	a.StartOrOpenDate = o.RegistrationStart
	a.Deadline = deref(o.RegistrationEnd)
	a.Capacity = o.Capacity
	a.RegisteredCount = o.RegisteredCount
	a.Status = lifecycle.Derive(now, a.Deadline, a.StartOrOpenDate, a.Capacity, a.RegisteredCount)
	return a, nil
}

// FromProgram normalizes a program. Programs have no capacity and are Open
// unless their stored status says otherwise.
func FromProgram(p models.Program) (Activity, error) {
	a, err := common{
		id: p.ID, title: p.Title, description: p.Description,
		location: p.Location, city: p.City, department: p.Department,
		org: p.Organization, imageURL: p.ImageURL,
	}.activity(KindProgram)
	if err != nil {
		return Activity{}, err
	}
	a.StartOrOpenDate = p.StartDate
	a.Status = lifecycle.Open
	if st, ok := lifecycle.Parse(p.Status); ok {
		a.Status = st
	}
	return a, nil
}

// Sources groups the raw records a feed is built from.
type Sources struct {
	Events        []models.Event
	Opportunities []models.Opportunity
	Programs      []models.Program
}

// Dropped describes a record Build skipped.
type Dropped struct {
	Kind Kind
	ID   string
	Err  error
}

// Build normalizes every record in src. Records that fail normalization are
// logged and skipped; they are returned so callers can count them. A nil
// logger disables logging.
func Build(now time.Time, src Sources, log *zap.Logger) ([]Activity, []Dropped) {
	if log == nil {
		log = zap.NewNop()
	}
	feed := make([]Activity, 0, len(src.Events)+len(src.Opportunities)+len(src.Programs))
	var dropped []Dropped

	keep := func(kind Kind, id primitive.ObjectID, a Activity, err error) {
		if err != nil {
			log.Warn("dropping malformed record",
				zap.String("kind", string(kind)),
				zap.String("id", id.Hex()),
				zap.Error(err))
			dropped = append(dropped, Dropped{Kind: kind, ID: id.Hex(), Err: err})
			return
		}
		feed = append(feed, a)
	}

	for _, e := range src.Events {
		a, err := FromEvent(e, now)
		keep(KindEvent, e.ID, a, err)
	}
	for _, o := range src.Opportunities {
		a, err := FromOpportunity(o, now)
		keep(KindOpportunity, o.ID, a, err)
	}
	for _, p := range src.Programs {
		a, err := FromProgram(p)
		keep(KindProgram, p.ID, a, err)
	}
	return feed, dropped
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
