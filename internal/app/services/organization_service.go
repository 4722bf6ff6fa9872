package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/app/models/dto"
	"github.com/osahenru/uniportal/internal/app/repositories"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
	"github.com/osahenru/uniportal/internal/pkg/imageurl"
)

// OrganizationService defines the interface for the two organizational
// charts. Every operation is scoped to one chart type: the dean's office
// and the ITC directorate are fully independent trees.
type OrganizationService interface {
	Load(ctx context.Context)
	GetChart(orgType models.OrganizationType) ([]*models.ExcoSection, error)
	AddSection(ctx context.Context, orgType models.OrganizationType, req *dto.CreateSectionRequest) (*models.ExcoSection, error)
	UpdateSection(ctx context.Context, orgType models.OrganizationType, id string, patch *models.SectionPatch) (*models.ExcoSection, error)
	DeleteSection(ctx context.Context, orgType models.OrganizationType, id string) error
	AddMember(ctx context.Context, orgType models.OrganizationType, sectionID string, req *dto.CreateMemberRequest) (*models.ExcoMember, error)
	UpdateMember(ctx context.Context, orgType models.OrganizationType, sectionID, memberID string, patch *models.MemberPatch) (*models.ExcoMember, error)
	DeleteMember(ctx context.Context, orgType models.OrganizationType, sectionID, memberID string) error
}

// organizationServiceImpl implements OrganizationService with an in-memory
// forest backed by a repository. Writes persist first, memory mutates second.
type organizationServiceImpl struct {
	mu       sync.RWMutex
	sections []*models.ExcoSection
	repo     repositories.OrganizationRepository
	logger   zerolog.Logger
}

// NewOrganizationService creates a new OrganizationService
func NewOrganizationService(repo repositories.OrganizationRepository, logger zerolog.Logger) OrganizationService {
	return &organizationServiceImpl{
		sections: []*models.ExcoSection{},
		repo:     repo,
		logger:   logger,
	}
}

// Load fetches both charts, falling back to empty on failure
func (s *organizationServiceImpl) Load(ctx context.Context) {
	sections, err := s.repo.LoadSections(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load exco sections, starting with empty charts")
		sections = []*models.ExcoSection{}
	}

	s.mu.Lock()
	s.sections = sections
	s.mu.Unlock()

	s.logger.Info().Int("count", len(sections)).Msg("Exco sections loaded")
}

// GetChart returns the sections of one chart type in stored order. Sections
// are cloned so callers can encode them after the lock is released while
// writers keep mutating the live tree.
func (s *organizationServiceImpl) GetChart(orgType models.OrganizationType) ([]*models.ExcoSection, error) {
	if !orgType.IsValid() {
		return nil, apperrors.ErrInvalidOrganizationType
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	chart := []*models.ExcoSection{}
	for _, section := range s.sections {
		if section.OrganizationType == orgType {
			chart = append(chart, cloneSection(section))
		}
	}
	return chart, nil
}

// cloneSection copies a section together with its head and member structs.
func cloneSection(s *models.ExcoSection) *models.ExcoSection {
	out := *s
	if s.Head != nil {
		head := *s.Head
		out.Head = &head
	}
	out.Members = make([]*models.ExcoMember, len(s.Members))
	for i, m := range s.Members {
		member := *m
		out.Members[i] = &member
	}
	return &out
}

// AddSection persists a new empty section under one chart
func (s *organizationServiceImpl) AddSection(ctx context.Context, orgType models.OrganizationType, req *dto.CreateSectionRequest) (*models.ExcoSection, error) {
	if !orgType.IsValid() {
		return nil, apperrors.ErrInvalidOrganizationType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	section := &models.ExcoSection{
		Category:         req.Category,
		OrganizationType: orgType,
		Members:          []*models.ExcoMember{},
	}

	if err := s.repo.InsertSection(ctx, section); err != nil {
		return nil, fmt.Errorf("failed to create exco section: %w", err)
	}

	s.sections = append(s.sections, section)

	s.logger.Info().Str("sectionID", section.ID).Str("orgType", string(orgType)).Msg("Exco section created")
	return cloneSection(section), nil
}

// UpdateSection applies a partial update to a section. A category rename
// relabels the section's head and members so their labels stay in step.
func (s *organizationServiceImpl) UpdateSection(ctx context.Context, orgType models.OrganizationType, id string, patch *models.SectionPatch) (*models.ExcoSection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	section, err := s.findSection(orgType, id)
	if err != nil {
		return nil, err
	}

	updated := *section
	patch.Apply(&updated)

	if err := s.repo.UpdateSection(ctx, &updated, patch); err != nil {
		return nil, fmt.Errorf("failed to update exco section: %w", err)
	}

	if patch.Category != nil {
		head, members, err := s.relabelMembers(ctx, section, *patch.Category)
		if err != nil {
			return nil, err
		}
		section.Head = head
		section.Members = members
	}

	section.Category = updated.Category
	return cloneSection(section), nil
}

// relabelMembers persists the new category label for a section's head and
// members and returns the relabelled clones. The live tree stays untouched
// until every row has been written. Callers hold the lock.
func (s *organizationServiceImpl) relabelMembers(ctx context.Context, section *models.ExcoSection, category string) (*models.ExcoMember, []*models.ExcoMember, error) {
	relabel := func(m *models.ExcoMember) (*models.ExcoMember, error) {
		updated := *m
		updated.Category = category
		patch := &models.MemberPatch{Category: &category}
		if err := s.repo.UpdateMember(ctx, &updated, patch); err != nil {
			return nil, fmt.Errorf("failed to relabel exco member %s: %w", m.ID, err)
		}
		return &updated, nil
	}

	var head *models.ExcoMember
	if section.Head != nil {
		relabelled, err := relabel(section.Head)
		if err != nil {
			return nil, nil, err
		}
		head = relabelled
	}

	members := make([]*models.ExcoMember, len(section.Members))
	for i, m := range section.Members {
		relabelled, err := relabel(m)
		if err != nil {
			return nil, nil, err
		}
		members[i] = relabelled
	}
	return head, members, nil
}

// DeleteSection removes a section and everything under it. The head and
// member rows are cascade-deleted by the repository.
func (s *organizationServiceImpl) DeleteSection(ctx context.Context, orgType models.OrganizationType, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.findSection(orgType, id); err != nil {
		return err
	}

	if err := s.repo.DeleteSection(ctx, id); err != nil {
		return fmt.Errorf("failed to delete exco section: %w", err)
	}

	for i, section := range s.sections {
		if section.ID == id {
			s.sections = append(s.sections[:i], s.sections[i+1:]...)
			break
		}
	}

	s.logger.Info().Str("sectionID", id).Str("orgType", string(orgType)).Msg("Exco section deleted")
	return nil
}

// AddMember attaches a new member to a section. A head member takes the
// section's head slot; a previous head is deleted from storage first so no
// orphaned rows remain.
func (s *organizationServiceImpl) AddMember(ctx context.Context, orgType models.OrganizationType, sectionID string, req *dto.CreateMemberRequest) (*models.ExcoMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	section, err := s.findSection(orgType, sectionID)
	if err != nil {
		return nil, err
	}

	member := &models.ExcoMember{
		Name:     req.Name,
		Position: req.Position,
		Category: section.Category,
		IsHead:   req.IsHead,
		Order:    req.Order,
	}
	if req.Image != nil {
		normalized := imageurl.Normalize(*req.Image)
		member.Image = &normalized
	}

	if req.IsHead && section.Head != nil {
		if err := s.repo.DeleteMember(ctx, section.Head.ID); err != nil {
			return nil, fmt.Errorf("failed to replace section head: %w", err)
		}
		section.Head = nil
	}

	if err := s.repo.InsertMember(ctx, sectionID, member); err != nil {
		return nil, fmt.Errorf("failed to create exco member: %w", err)
	}

	if member.IsHead {
		section.Head = member
	} else {
		section.Members = append(section.Members, member)
	}

	s.logger.Info().
		Str("memberID", member.ID).
		Str("sectionID", sectionID).
		Bool("isHead", member.IsHead).
		Msg("Exco member added")

	out := *member
	return &out, nil
}

// UpdateMember applies a partial update to a member, head slot included
func (s *organizationServiceImpl) UpdateMember(ctx context.Context, orgType models.OrganizationType, sectionID, memberID string, patch *models.MemberPatch) (*models.ExcoMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	section, err := s.findSection(orgType, sectionID)
	if err != nil {
		return nil, err
	}

	member := findMember(section, memberID)
	if member == nil {
		return nil, apperrors.ErrMemberNotFound
	}

	if patch.Image != nil {
		normalized := imageurl.Normalize(*patch.Image)
		patch.Image = &normalized
	}

	updated := *member
	patch.Apply(&updated)

	if err := s.repo.UpdateMember(ctx, &updated, patch); err != nil {
		return nil, fmt.Errorf("failed to update exco member: %w", err)
	}

	// Replace the pointer rather than writing through it: previously
	// returned charts may still be encoding the old struct.
	if section.Head != nil && section.Head.ID == memberID {
		section.Head = &updated
	} else {
		for i, m := range section.Members {
			if m.ID == memberID {
				section.Members[i] = &updated
				break
			}
		}
	}
	return &updated, nil
}

// DeleteMember removes a member from a section, head slot included
func (s *organizationServiceImpl) DeleteMember(ctx context.Context, orgType models.OrganizationType, sectionID, memberID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	section, err := s.findSection(orgType, sectionID)
	if err != nil {
		return err
	}

	if findMember(section, memberID) == nil {
		return apperrors.ErrMemberNotFound
	}

	if err := s.repo.DeleteMember(ctx, memberID); err != nil {
		return fmt.Errorf("failed to delete exco member: %w", err)
	}

	if section.Head != nil && section.Head.ID == memberID {
		section.Head = nil
	} else {
		for i, m := range section.Members {
			if m.ID == memberID {
				section.Members = append(section.Members[:i], section.Members[i+1:]...)
				break
			}
		}
	}

	s.logger.Info().Str("memberID", memberID).Str("sectionID", sectionID).Msg("Exco member deleted")
	return nil
}

// findSection locates a section by id within one chart type. Callers hold
// the lock.
func (s *organizationServiceImpl) findSection(orgType models.OrganizationType, id string) (*models.ExcoSection, error) {
	if !orgType.IsValid() {
		return nil, apperrors.ErrInvalidOrganizationType
	}
	for _, section := range s.sections {
		if section.ID == id && section.OrganizationType == orgType {
			return section, nil
		}
	}
	return nil, apperrors.ErrSectionNotFound
}

// findMember checks the head slot and the member list for a matching id
func findMember(section *models.ExcoSection, memberID string) *models.ExcoMember {
	if section.Head != nil && section.Head.ID == memberID {
		return section.Head
	}
	for _, m := range section.Members {
		if m.ID == memberID {
			return m
		}
	}
	return nil
}
