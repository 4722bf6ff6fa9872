package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
	"github.com/osahenru/uniportal/internal/pkg/logger"
)

// OrganizationRepository handles exco section and member database operations
type OrganizationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *pgxpool.Pool) *OrganizationRepository {
	return &OrganizationRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// LoadSections retrieves every section of both chart types with heads and
// members attached. Members come back in display order.
func (r *OrganizationRepository) LoadSections(ctx context.Context) ([]*models.ExcoSection, error) {
	sectionSQL, sectionArgs, err := r.sb.Select("id", "category", "organization_type").
		From("exco_sections").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sections query: %w", err)
	}

	rows, err := r.db.Query(ctx, sectionSQL, sectionArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying exco sections")
		return nil, fmt.Errorf("error querying exco sections: %w", err)
	}
	defer rows.Close()

	sections := []*models.ExcoSection{}
	byID := map[string]*models.ExcoSection{}
	for rows.Next() {
		s := &models.ExcoSection{Members: []*models.ExcoMember{}}
		if err := rows.Scan(&s.ID, &s.Category, &s.OrganizationType); err != nil {
			return nil, fmt.Errorf("error scanning section row: %w", err)
		}
		sections = append(sections, s)
		byID[s.ID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating section rows: %w", err)
	}

	memberSQL, memberArgs, err := r.sb.Select("id", "section_id", "name", "position", "image", "category", "is_head", "member_order").
		From("exco_members").
		OrderBy("member_order ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build members query: %w", err)
	}

	memberRows, err := r.db.Query(ctx, memberSQL, memberArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying exco members")
		return nil, fmt.Errorf("error querying exco members: %w", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		m := &models.ExcoMember{}
		var sectionID string
		if err := memberRows.Scan(&m.ID, &sectionID, &m.Name, &m.Position, &m.Image, &m.Category, &m.IsHead, &m.Order); err != nil {
			return nil, fmt.Errorf("error scanning member row: %w", err)
		}
		section, ok := byID[sectionID]
		if !ok {
			continue
		}
		if m.IsHead {
			section.Head = m
		} else {
			section.Members = append(section.Members, m)
		}
	}
	if err := memberRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}

	return sections, nil
}

// InsertSection persists a new section, writing back the assigned id
func (r *OrganizationRepository) InsertSection(ctx context.Context, section *models.ExcoSection) error {
	sql, args, err := r.sb.Insert("exco_sections").
		Columns("category", "organization_type").
		Values(section.Category, section.OrganizationType).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert section query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&section.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing insert section query")
		return fmt.Errorf("error creating exco section: %w", err)
	}

	return nil
}

// UpdateSection writes the patched columns of a section
func (r *OrganizationRepository) UpdateSection(ctx context.Context, section *models.ExcoSection, patch *models.SectionPatch) error {
	set := map[string]interface{}{}
	if patch.Category != nil {
		set["category"] = section.Category
	}
	if len(set) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("exco_sections").
		SetMap(set).
		Where(squirrel.Eq{"id": section.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update section query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("sectionID", section.ID).Msg("Error executing update section query")
		return fmt.Errorf("error updating exco section: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSectionNotFound
	}

	return nil
}

// DeleteSection removes a section. Its members go with it through the
// section_id foreign key cascade.
func (r *OrganizationRepository) DeleteSection(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("exco_sections").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete section query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("sectionID", id).Msg("Error executing delete section query")
		return fmt.Errorf("error deleting exco section: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSectionNotFound
	}

	return nil
}

// InsertMember persists a new member under a section, writing back the assigned id
func (r *OrganizationRepository) InsertMember(ctx context.Context, sectionID string, member *models.ExcoMember) error {
	sql, args, err := r.sb.Insert("exco_members").
		Columns("section_id", "name", "position", "image", "category", "is_head", "member_order").
		Values(sectionID, member.Name, member.Position, member.Image, member.Category, member.IsHead, member.Order).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert member query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&member.ID)
	if err != nil {
		logger.Error().Err(err).Str("sectionID", sectionID).Msg("Error executing insert member query")
		return fmt.Errorf("error creating exco member: %w", err)
	}

	return nil
}

// UpdateMember writes the patched columns of a member
func (r *OrganizationRepository) UpdateMember(ctx context.Context, member *models.ExcoMember, patch *models.MemberPatch) error {
	set := map[string]interface{}{}
	if patch.Name != nil {
		set["name"] = member.Name
	}
	if patch.Position != nil {
		set["position"] = member.Position
	}
	if patch.Image != nil {
		set["image"] = member.Image
	}
	if patch.Category != nil {
		set["category"] = member.Category
	}
	if patch.Order != nil {
		set["member_order"] = member.Order
	}
	if len(set) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("exco_members").
		SetMap(set).
		Where(squirrel.Eq{"id": member.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("memberID", member.ID).Msg("Error executing update member query")
		return fmt.Errorf("error updating exco member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMemberNotFound
	}

	return nil
}

// DeleteMember removes a member by id
func (r *OrganizationRepository) DeleteMember(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("exco_members").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("memberID", id).Msg("Error executing delete member query")
		return fmt.Errorf("error deleting exco member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMemberNotFound
	}

	return nil
}
