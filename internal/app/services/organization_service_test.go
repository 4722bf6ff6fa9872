package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/app/models/dto"
	"github.com/osahenru/uniportal/internal/app/repositories"
	"github.com/osahenru/uniportal/internal/app/services"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
)

func newTestOrgService(t *testing.T) (services.OrganizationService, *repositories.Repositories) {
	t.Helper()

	repos := newTestRepos(t)
	svc := services.NewOrganizationService(repos.Organization, zerolog.Nop())
	svc.Load(context.Background())

	return svc, repos
}

func TestOrganizationChartsAreIndependent(t *testing.T) {
	svc, _ := newTestOrgService(t)
	ctx := context.Background()

	deanSection, err := svc.AddSection(ctx, models.OrganizationDean, &dto.CreateSectionRequest{Category: "Welfare"})
	require.NoError(t, err)

	_, err = svc.AddSection(ctx, models.OrganizationITC, &dto.CreateSectionRequest{Category: "Networks"})
	require.NoError(t, err)

	dean, err := svc.GetChart(models.OrganizationDean)
	require.NoError(t, err)
	require.Len(t, dean, 1)
	require.Equal(t, "Welfare", dean[0].Category)

	itc, err := svc.GetChart(models.OrganizationITC)
	require.NoError(t, err)
	require.Len(t, itc, 1)
	require.Equal(t, "Networks", itc[0].Category)

	// A section is invisible through the other chart type.
	_, err = svc.AddMember(ctx, models.OrganizationITC, deanSection.ID, &dto.CreateMemberRequest{
		Name:     "Stray",
		Position: "Officer",
	})
	require.ErrorIs(t, err, apperrors.ErrSectionNotFound)
}

func TestOrganizationRejectsUnknownChartType(t *testing.T) {
	svc, _ := newTestOrgService(t)

	_, err := svc.GetChart(models.OrganizationType("hr"))
	require.ErrorIs(t, err, apperrors.ErrInvalidOrganizationType)

	_, err = svc.AddSection(context.Background(), models.OrganizationType("hr"), &dto.CreateSectionRequest{Category: "X"})
	require.ErrorIs(t, err, apperrors.ErrInvalidOrganizationType)
}

func TestOrganizationHeadInstallReplacesPrevious(t *testing.T) {
	svc, repos := newTestOrgService(t)
	ctx := context.Background()

	section, err := svc.AddSection(ctx, models.OrganizationDean, &dto.CreateSectionRequest{Category: "Sports"})
	require.NoError(t, err)

	oldHead, err := svc.AddMember(ctx, models.OrganizationDean, section.ID, &dto.CreateMemberRequest{
		Name:     "First Head",
		Position: "Director",
		IsHead:   true,
	})
	require.NoError(t, err)
	require.Equal(t, "Sports", oldHead.Category)

	regular, err := svc.AddMember(ctx, models.OrganizationDean, section.ID, &dto.CreateMemberRequest{
		Name:     "Member One",
		Position: "Officer",
		Order:    1,
	})
	require.NoError(t, err)

	newHead, err := svc.AddMember(ctx, models.OrganizationDean, section.ID, &dto.CreateMemberRequest{
		Name:     "Second Head",
		Position: "Director",
		IsHead:   true,
	})
	require.NoError(t, err)

	chart, err := svc.GetChart(models.OrganizationDean)
	require.NoError(t, err)
	require.Len(t, chart, 1)
	require.NotNil(t, chart[0].Head)
	require.Equal(t, newHead.ID, chart[0].Head.ID)
	require.Len(t, chart[0].Members, 1)
	require.Equal(t, regular.ID, chart[0].Members[0].ID)

	// The replaced head is gone from storage, not just from memory.
	sections, err := repos.Organization.LoadSections(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	require.NotNil(t, sections[0].Head)
	require.Equal(t, newHead.ID, sections[0].Head.ID)
	for _, m := range sections[0].Members {
		require.NotEqual(t, oldHead.ID, m.ID)
	}
}

func TestOrganizationCategoryRenameRelabelsMembers(t *testing.T) {
	svc, repos := newTestOrgService(t)
	ctx := context.Background()

	section, err := svc.AddSection(ctx, models.OrganizationITC, &dto.CreateSectionRequest{Category: "Infrastructure"})
	require.NoError(t, err)

	_, err = svc.AddMember(ctx, models.OrganizationITC, section.ID, &dto.CreateMemberRequest{
		Name:     "Head",
		Position: "Lead",
		IsHead:   true,
	})
	require.NoError(t, err)

	_, err = svc.AddMember(ctx, models.OrganizationITC, section.ID, &dto.CreateMemberRequest{
		Name:     "Member",
		Position: "Engineer",
	})
	require.NoError(t, err)

	renamed := "Core Infrastructure"
	updated, err := svc.UpdateSection(ctx, models.OrganizationITC, section.ID, &models.SectionPatch{Category: &renamed})
	require.NoError(t, err)
	require.Equal(t, renamed, updated.Category)
	require.Equal(t, renamed, updated.Head.Category)
	require.Equal(t, renamed, updated.Members[0].Category)

	// The relabel is persisted, not just an in-memory fixup.
	sections, err := repos.Organization.LoadSections(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	require.Equal(t, renamed, sections[0].Category)
	require.Equal(t, renamed, sections[0].Head.Category)
	require.Equal(t, renamed, sections[0].Members[0].Category)
}

func TestOrganizationDeleteSectionCascades(t *testing.T) {
	svc, repos := newTestOrgService(t)
	ctx := context.Background()

	section, err := svc.AddSection(ctx, models.OrganizationDean, &dto.CreateSectionRequest{Category: "Academics"})
	require.NoError(t, err)

	_, err = svc.AddMember(ctx, models.OrganizationDean, section.ID, &dto.CreateMemberRequest{
		Name:     "Member",
		Position: "Officer",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSection(ctx, models.OrganizationDean, section.ID))

	chart, err := svc.GetChart(models.OrganizationDean)
	require.NoError(t, err)
	require.Empty(t, chart)

	sections, err := repos.Organization.LoadSections(ctx)
	require.NoError(t, err)
	require.Empty(t, sections)

	require.ErrorIs(t, svc.DeleteSection(ctx, models.OrganizationDean, section.ID), apperrors.ErrSectionNotFound)
}

func TestOrganizationMemberUpdateAndDelete(t *testing.T) {
	svc, _ := newTestOrgService(t)
	ctx := context.Background()

	section, err := svc.AddSection(ctx, models.OrganizationDean, &dto.CreateSectionRequest{Category: "Media"})
	require.NoError(t, err)

	member, err := svc.AddMember(ctx, models.OrganizationDean, section.ID, &dto.CreateMemberRequest{
		Name:     "Editor",
		Position: "Editor",
		Order:    2,
	})
	require.NoError(t, err)

	newName := "Chief Editor"
	newOrder := 1
	updated, err := svc.UpdateMember(ctx, models.OrganizationDean, section.ID, member.ID, &models.MemberPatch{
		Name:  &newName,
		Order: &newOrder,
	})
	require.NoError(t, err)
	require.Equal(t, "Chief Editor", updated.Name)
	require.Equal(t, 1, updated.Order)
	require.Equal(t, "Editor", updated.Position)

	require.NoError(t, svc.DeleteMember(ctx, models.OrganizationDean, section.ID, member.ID))

	_, err = svc.UpdateMember(ctx, models.OrganizationDean, section.ID, member.ID, &models.MemberPatch{})
	require.ErrorIs(t, err, apperrors.ErrMemberNotFound)
}

func TestOrganizationChartSnapshotIsIsolatedFromLaterWrites(t *testing.T) {
	svc, _ := newTestOrgService(t)
	ctx := context.Background()

	section, err := svc.AddSection(ctx, models.OrganizationDean, &dto.CreateSectionRequest{Category: "Welfare"})
	require.NoError(t, err)

	member, err := svc.AddMember(ctx, models.OrganizationDean, section.ID, &dto.CreateMemberRequest{
		Name:     "Original Name",
		Position: "Officer",
	})
	require.NoError(t, err)

	snapshot, err := svc.GetChart(models.OrganizationDean)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	newName := "Renamed"
	_, err = svc.UpdateMember(ctx, models.OrganizationDean, section.ID, member.ID, &models.MemberPatch{Name: &newName})
	require.NoError(t, err)

	renamedCategory := "Student Welfare"
	_, err = svc.UpdateSection(ctx, models.OrganizationDean, section.ID, &models.SectionPatch{Category: &renamedCategory})
	require.NoError(t, err)

	_, err = svc.AddMember(ctx, models.OrganizationDean, section.ID, &dto.CreateMemberRequest{
		Name:     "Late Arrival",
		Position: "Officer",
	})
	require.NoError(t, err)

	// The earlier chart keeps what it saw at read time.
	require.Equal(t, "Welfare", snapshot[0].Category)
	require.Len(t, snapshot[0].Members, 1)
	require.Equal(t, "Original Name", snapshot[0].Members[0].Name)

	current, err := svc.GetChart(models.OrganizationDean)
	require.NoError(t, err)
	require.Equal(t, "Student Welfare", current[0].Category)
	require.Len(t, current[0].Members, 2)
	require.Equal(t, "Renamed", current[0].Members[0].Name)
}

func TestOrganizationConcurrentReadsAndMemberUpdates(t *testing.T) {
	svc, _ := newTestOrgService(t)
	ctx := context.Background()

	section, err := svc.AddSection(ctx, models.OrganizationDean, &dto.CreateSectionRequest{Category: "Sports"})
	require.NoError(t, err)

	member, err := svc.AddMember(ctx, models.OrganizationDean, section.ID, &dto.CreateMemberRequest{
		Name:     "Runner",
		Position: "Captain",
		IsHead:   true,
	})
	require.NoError(t, err)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			chart, err := svc.GetChart(models.OrganizationDean)
			if err != nil || len(chart) != 1 {
				return
			}
			// Walk the returned structs the way a JSON encoder would.
			for _, s := range chart {
				if s.Head != nil {
					_ = s.Head.Name
				}
				for _, m := range s.Members {
					_ = m.Name
				}
			}
		}
	}()

	for i := 0; i < 50; i++ {
		name := fmt.Sprintf("Runner %d", i)
		_, err := svc.UpdateMember(ctx, models.OrganizationDean, section.ID, member.ID, &models.MemberPatch{Name: &name})
		require.NoError(t, err)
	}
	close(done)
	wg.Wait()

	chart, err := svc.GetChart(models.OrganizationDean)
	require.NoError(t, err)
	require.Equal(t, "Runner 49", chart[0].Head.Name)
}
