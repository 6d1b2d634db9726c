package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/SscSPs/field_ops_app/internal/apperrors"
	"github.com/SscSPs/field_ops_app/internal/core/domain"
	portsrepo "github.com/SscSPs/field_ops_app/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// idPrefixes marks minted ids by kind for readability only; nothing parses them.
var idPrefixes = map[domain.LogKind]string{
	domain.KindTime:      "tc-",
	domain.KindEquipment: "eq-",
	domain.KindMaterial:  "ma-",
}

// location points at one record inside one of the three collections.
type location struct {
	kind domain.LogKind
	pos  int
}

type subscription struct {
	id int
	fn portsrepo.LogObserver
}

// LogRepository is the single owner of the time, equipment and material
// collections. It is memory resident and not safe for concurrent use.
type LogRepository struct {
	timeEntries      []domain.TimeEntry
	equipmentEntries []domain.EquipmentEntry
	materialEntries  []domain.MaterialEntry

	// index maps an id to every record holding it; kept in step with the
	// collections on create so status changes never scan.
	index map[string][]location

	observers  []subscription
	nextSubID  int
	generateID func(kind domain.LogKind) string
}

// Option configures a LogRepository.
type Option func(*LogRepository)

// WithIDGenerator replaces the default UUID based id minting.
func WithIDGenerator(fn func(kind domain.LogKind) string) Option {
	return func(r *LogRepository) {
		r.generateID = fn
	}
}

// NewLogRepository creates an empty in-memory log store.
func NewLogRepository(options ...Option) *LogRepository {
	r := &LogRepository{
		index:      make(map[string][]location),
		generateID: defaultID,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Ensure LogRepository implements the repository facade
var _ portsrepo.LogRepositoryFacade = (*LogRepository)(nil)

func defaultID(kind domain.LogKind) string {
	return idPrefixes[kind] + uuid.NewString()
}

// maxIDAttempts bounds how often mintID asks the generator for a fresh id.
const maxIDAttempts = 16

// mintID returns an id that no record has ever held.
func (r *LogRepository) mintID(kind domain.LogKind) (string, error) {
	for range maxIDAttempts {
		id := r.generateID(kind)
		if _, taken := r.index[id]; !taken && id != "" {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to mint a unique %s id after %d attempts", kind, maxIDAttempts)
}

// CreateLog appends log to the collection for its kind under a fresh id with status Pending.
func (r *LogRepository) CreateLog(ctx context.Context, log domain.Log) (domain.Log, error) {
	if log.IsZero() {
		return domain.Log{}, fmt.Errorf("%w: log has no kind", apperrors.ErrValidation)
	}

	id, err := r.mintID(log.Kind())
	if err != nil {
		return domain.Log{}, err
	}
	env := log.Envelope()
	env.ID = id
	env.Status = domain.Pending
	created := log.WithEnvelope(env)

	var loc location
	switch created.Kind() {
	case domain.KindTime:
		e, _ := created.TimeEntry()
		loc = location{kind: domain.KindTime, pos: len(r.timeEntries)}
		r.timeEntries = append(r.timeEntries, e)
	case domain.KindEquipment:
		e, _ := created.EquipmentEntry()
		loc = location{kind: domain.KindEquipment, pos: len(r.equipmentEntries)}
		r.equipmentEntries = append(r.equipmentEntries, e)
	case domain.KindMaterial:
		e, _ := created.MaterialEntry()
		loc = location{kind: domain.KindMaterial, pos: len(r.materialEntries)}
		r.materialEntries = append(r.materialEntries, e)
	}
	r.index[env.ID] = append(r.index[env.ID], loc)

	r.notify(domain.ChangeEvent{Type: domain.Created, Kind: created.Kind(), ID: env.ID})
	return created, nil
}

// UpdateLog replaces the stored record that has log's id inside the collection
// for log's kind. The stored id and status are kept, so an edit never moves a
// record between collections or changes its approval.
func (r *LogRepository) UpdateLog(ctx context.Context, log domain.Log) error {
	id := log.ID()
	targets := make([]location, 0, 1)
	for _, loc := range r.index[id] {
		if loc.kind == log.Kind() {
			targets = append(targets, loc)
		}
	}
	if len(targets) == 0 {
		return apperrors.ErrNotFound
	}

	for _, loc := range targets {
		current := r.envelopeAt(loc)
		env := log.Envelope()
		env.ID = current.ID
		env.Status = current.Status
		r.replaceAt(loc, log.WithEnvelope(env))
	}

	r.notify(domain.ChangeEvent{Type: domain.Updated, Kind: log.Kind(), ID: id})
	return nil
}

// SetLogStatus sets status on every record carrying id, whatever its kind.
// Approved is terminal: asking for Pending on an approved record fails and
// nothing is changed.
func (r *LogRepository) SetLogStatus(ctx context.Context, id string, status domain.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, status)
	}
	targets := r.index[id]
	if len(targets) == 0 {
		return apperrors.ErrNotFound
	}

	for _, loc := range targets {
		if r.envelopeAt(loc).Status == domain.Approved && status != domain.Approved {
			return fmt.Errorf("%w: log %s is already %s", apperrors.ErrInvalidTransition, id, domain.Approved)
		}
	}

	changed := false
	for _, loc := range targets {
		env := r.envelopeAt(loc)
		if env.Status == status {
			continue
		}
		env.Status = status
		r.setEnvelopeAt(loc, env)
		changed = true
	}

	if changed {
		r.notify(domain.ChangeEvent{Type: domain.StatusChanged, Kind: targets[0].kind, ID: id})
	}
	return nil
}

// FindLogByID returns the record holding id.
func (r *LogRepository) FindLogByID(ctx context.Context, id string) (*domain.Log, error) {
	targets := r.index[id]
	if len(targets) == 0 {
		return nil, apperrors.ErrNotFound
	}
	log := r.logAt(targets[0])
	return &log, nil
}

func (r *LogRepository) ListTimeEntries(ctx context.Context) ([]domain.TimeEntry, error) {
	return slices.Clone(r.timeEntries), nil
}

func (r *LogRepository) ListEquipmentEntries(ctx context.Context) ([]domain.EquipmentEntry, error) {
	return slices.Clone(r.equipmentEntries), nil
}

func (r *LogRepository) ListMaterialEntries(ctx context.Context) ([]domain.MaterialEntry, error) {
	return slices.Clone(r.materialEntries), nil
}

// Subscribe registers fn to be called after every successful mutation.
func (r *LogRepository) Subscribe(fn portsrepo.LogObserver) func() {
	r.nextSubID++
	id := r.nextSubID
	r.observers = append(r.observers, subscription{id: id, fn: fn})
	return func() {
		r.observers = slices.DeleteFunc(r.observers, func(s subscription) bool {
			return s.id == id
		})
	}
}

func (r *LogRepository) notify(event domain.ChangeEvent) {
	// Copy so an observer may unsubscribe while being notified.
	for _, s := range slices.Clone(r.observers) {
		s.fn(event)
	}
}

func (r *LogRepository) logAt(loc location) domain.Log {
	switch loc.kind {
	case domain.KindTime:
		return domain.NewTimeLog(r.timeEntries[loc.pos])
	case domain.KindEquipment:
		return domain.NewEquipmentLog(r.equipmentEntries[loc.pos])
	default:
		return domain.NewMaterialLog(r.materialEntries[loc.pos])
	}
}

func (r *LogRepository) envelopeAt(loc location) domain.Envelope {
	return r.logAt(loc).Envelope()
}

func (r *LogRepository) setEnvelopeAt(loc location, env domain.Envelope) {
	switch loc.kind {
	case domain.KindTime:
		r.timeEntries[loc.pos].Envelope = env
	case domain.KindEquipment:
		r.equipmentEntries[loc.pos].Envelope = env
	case domain.KindMaterial:
		r.materialEntries[loc.pos].Envelope = env
	}
}

func (r *LogRepository) replaceAt(loc location, log domain.Log) {
	switch loc.kind {
	case domain.KindTime:
		e, _ := log.TimeEntry()
		r.timeEntries[loc.pos] = e
	case domain.KindEquipment:
		e, _ := log.EquipmentEntry()
		r.equipmentEntries[loc.pos] = e
	case domain.KindMaterial:
		e, _ := log.MaterialEntry()
		r.materialEntries[loc.pos] = e
	}
}
