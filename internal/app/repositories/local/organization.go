package local

import (
	"context"
	"sync"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
	"github.com/osahenru/uniportal/internal/storage/kv"
)

// OrganizationRepository persists Exco sections in a single slot. Heads and
// members are nested inside their section, so deleting a section drops its
// members with it.
type OrganizationRepository struct {
	store *kv.Store
	mu    sync.Mutex
}

// NewOrganizationRepository creates a new slot-backed OrganizationRepository
func NewOrganizationRepository(store *kv.Store) *OrganizationRepository {
	return &OrganizationRepository{store: store}
}

// LoadSections returns all sections of both organization types
func (r *OrganizationRepository) LoadSections(ctx context.Context) ([]*models.ExcoSection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return readSlot[models.ExcoSection](r.store, slotSections)
}

// InsertSection assigns an id, appends the section and rewrites the slot
func (r *OrganizationRepository) InsertSection(ctx context.Context, section *models.ExcoSection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sections, err := readSlot[models.ExcoSection](r.store, slotSections)
	if err != nil {
		return err
	}

	section.ID = newID()
	if section.Members == nil {
		section.Members = []*models.ExcoMember{}
	}

	sections = append(sections, section)
	return writeSlot(r.store, slotSections, sections)
}

// UpdateSection replaces the stored section's own fields and rewrites the slot
func (r *OrganizationRepository) UpdateSection(ctx context.Context, section *models.ExcoSection, patch *models.SectionPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sections, err := readSlot[models.ExcoSection](r.store, slotSections)
	if err != nil {
		return err
	}

	for _, existing := range sections {
		if existing.ID == section.ID {
			patch.Apply(existing)
			return writeSlot(r.store, slotSections, sections)
		}
	}

	return apperrors.ErrSectionNotFound
}

// DeleteSection removes a section and everything nested under it
func (r *OrganizationRepository) DeleteSection(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sections, err := readSlot[models.ExcoSection](r.store, slotSections)
	if err != nil {
		return err
	}

	for i, existing := range sections {
		if existing.ID == id {
			sections = append(sections[:i], sections[i+1:]...)
			return writeSlot(r.store, slotSections, sections)
		}
	}

	return apperrors.ErrSectionNotFound
}

// InsertMember assigns an id and attaches the member to its section. A head
// member takes the section's head slot, everyone else joins the member list.
func (r *OrganizationRepository) InsertMember(ctx context.Context, sectionID string, member *models.ExcoMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sections, err := readSlot[models.ExcoSection](r.store, slotSections)
	if err != nil {
		return err
	}

	for _, section := range sections {
		if section.ID != sectionID {
			continue
		}
		member.ID = newID()
		if member.IsHead {
			section.Head = member
		} else {
			section.Members = append(section.Members, member)
		}
		return writeSlot(r.store, slotSections, sections)
	}

	return apperrors.ErrSectionNotFound
}

// UpdateMember replaces the stored member, wherever it sits, and rewrites the slot
func (r *OrganizationRepository) UpdateMember(ctx context.Context, member *models.ExcoMember, patch *models.MemberPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sections, err := readSlot[models.ExcoSection](r.store, slotSections)
	if err != nil {
		return err
	}

	for _, section := range sections {
		if section.Head != nil && section.Head.ID == member.ID {
			clone := *member
			section.Head = &clone
			return writeSlot(r.store, slotSections, sections)
		}
		for i, existing := range section.Members {
			if existing.ID == member.ID {
				clone := *member
				section.Members[i] = &clone
				return writeSlot(r.store, slotSections, sections)
			}
		}
	}

	return apperrors.ErrMemberNotFound
}

// DeleteMember removes a member by id, searching head slots and member lists
func (r *OrganizationRepository) DeleteMember(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sections, err := readSlot[models.ExcoSection](r.store, slotSections)
	if err != nil {
		return err
	}

	for _, section := range sections {
		if section.Head != nil && section.Head.ID == id {
			section.Head = nil
			return writeSlot(r.store, slotSections, sections)
		}
		for i, existing := range section.Members {
			if existing.ID == id {
				section.Members = append(section.Members[:i], section.Members[i+1:]...)
				return writeSlot(r.store, slotSections, sections)
			}
		}
	}

	return apperrors.ErrMemberNotFound
}
