package models

// OrganizationType partitions Exco sections into two independent trees
type OrganizationType string

const (
	OrganizationDean OrganizationType = "dean"
	OrganizationITC  OrganizationType = "itc"
)

// IsValid reports whether the organization type is one of the known values
func (t OrganizationType) IsValid() bool {
	return t == OrganizationDean || t == OrganizationITC
}

// ExcoMember defines an executive committee member based on the
// 'exco_members' table
type ExcoMember struct {
	ID       string  `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Position string  `json:"position" db:"position"`
	Image    *string `json:"image,omitempty" db:"image"`
	Category string  `json:"category" db:"category"` // matches the enclosing section's label
	IsHead   bool    `json:"isHead" db:"is_head"`
	Order    int     `json:"order" db:"member_order"`
}

// ExcoSection groups committee members under a labelled section. A member
// with IsHead set always lives in the Head slot, never in Members.
type ExcoSection struct {
	ID               string           `json:"id" db:"id"`
	Category         string           `json:"category" db:"category"`
	OrganizationType OrganizationType `json:"organizationType" db:"organization_type"`
	Head             *ExcoMember      `json:"head,omitempty"`
	Members          []*ExcoMember    `json:"members"`
}

// SectionPatch is a partial update to a section's own fields.
type SectionPatch struct {
	Category *string `json:"category,omitempty"`
}

// Apply merges the patch into the section.
func (p *SectionPatch) Apply(s *ExcoSection) {
	if p.Category != nil {
		s.Category = *p.Category
	}
}

// MemberPatch is a partial update to a committee member. Nil fields are left
// untouched. IsHead is managed through the section's head slot and cannot be
// patched here.
type MemberPatch struct {
	Name     *string `json:"name,omitempty"`
	Position *string `json:"position,omitempty"`
	Image    *string `json:"image,omitempty"`
	Category *string `json:"category,omitempty"`
	Order    *int    `json:"order,omitempty"`
}

// Apply merges the patch into the member, field by field.
func (p *MemberPatch) Apply(m *ExcoMember) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Position != nil {
		m.Position = *p.Position
	}
	if p.Image != nil {
		m.Image = p.Image
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Order != nil {
		m.Order = *p.Order
	}
}
