package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/club_manager_app/internal/apperrors"
	"github.com/SscSPs/club_manager_app/internal/core/domain"
	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/dto"
	"github.com/google/uuid"
)

type memberService struct {
	BaseService
	state *StateContainer
	newID func() string
}

// MemberServiceOption is a function that configures a memberService.
type MemberServiceOption func(*memberService)

// WithMemberIDGenerator overrides how new member ids are minted.
func WithMemberIDGenerator(gen func() string) MemberServiceOption {
	return func(s *memberService) {
		s.newID = gen
	}
}

// NewMemberService creates the roster service.
func NewMemberService(state *StateContainer, opts ...MemberServiceOption) portssvc.MemberSvcFacade {
	s := &memberService{state: state, newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

func (s *memberService) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	member, ok := domain.FindMember(s.state.Snapshot().Members, memberID)
	if !ok {
		return nil, fmt.Errorf("member %s: %w", memberID, apperrors.ErrNotFound)
	}
	return &member, nil
}

// ListMembers returns the roster in insertion order.
func (s *memberService) ListMembers(ctx context.Context, params dto.ListMembersParams) ([]domain.Member, error) {
	out := make([]domain.Member, 0)
	for _, m := range s.state.Snapshot().Members {
		if params.Status != "" && string(m.Status) != params.Status {
			continue
		}
		if params.Type != "" && string(m.Type) != params.Type {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *memberService) AddMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validationf("member name is required")
	}
	if req.SupportLevel.IsNegative() {
		return nil, apperrors.Validationf("supportLevel must not be negative")
	}

	member := domain.Member{
		ID:             s.newID(),
		Name:           name,
		Position:       strings.TrimSpace(req.Position),
		Department:     strings.TrimSpace(req.Department),
		SupportLevel:   req.SupportLevel,
		PhoneNumber:    strings.TrimSpace(req.PhoneNumber),
		Status:         req.Status,
		Type:           req.Type,
		MonthlyFeePaid: req.MonthlyFeePaid,
		Notes:          req.Notes,
	}
	if member.Status == "" {
		member.Status = domain.MemberActive
	}
	if member.Type == "" {
		member.Type = domain.MemberInternal
	}

	_, err := s.state.Update(ctx, func(st domain.AppState) ([]domain.Action, error) {
		if _, exists := domain.FindMember(st.Members, member.ID); exists {
			return nil, fmt.Errorf("member %s: %w", member.ID, apperrors.ErrDuplicate)
		}
		return []domain.Action{domain.AddMember{Member: member}}, nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Member added", slog.String("member_id", member.ID))
	return &member, nil
}

func (s *memberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error) {
	return s.mutate(ctx, memberID, func(m *domain.Member) error {
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return apperrors.Validationf("member name is required")
			}
			m.Name = name
		}
		if req.Position != nil {
			m.Position = strings.TrimSpace(*req.Position)
		}
		if req.Department != nil {
			m.Department = strings.TrimSpace(*req.Department)
		}
		if req.SupportLevel != nil {
			if req.SupportLevel.IsNegative() {
				return apperrors.Validationf("supportLevel must not be negative")
			}
			m.SupportLevel = *req.SupportLevel
		}
		if req.PhoneNumber != nil {
			m.PhoneNumber = strings.TrimSpace(*req.PhoneNumber)
		}
		if req.Status != nil {
			m.Status = *req.Status
		}
		if req.Type != nil {
			m.Type = *req.Type
		}
		if req.MonthlyFeePaid != nil {
			m.MonthlyFeePaid = *req.MonthlyFeePaid
		}
		if req.Notes != nil {
			m.Notes = req.Notes
		}
		return nil
	})
}

func (s *memberService) DeleteMember(ctx context.Context, memberID string) error {
	_, err := s.state.Update(ctx, func(st domain.AppState) ([]domain.Action, error) {
		if _, ok := domain.FindMember(st.Members, memberID); !ok {
			return nil, fmt.Errorf("member %s: %w", memberID, apperrors.ErrNotFound)
		}
		return []domain.Action{domain.DeleteMember{ID: memberID}}, nil
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Member deleted", slog.String("member_id", memberID))
	return nil
}

func (s *memberService) ToggleFeePaid(ctx context.Context, memberID string) (*domain.Member, error) {
	return s.mutate(ctx, memberID, func(m *domain.Member) error {
		m.MonthlyFeePaid = !m.MonthlyFeePaid
		return nil
	})
}

func (s *memberService) ToggleActive(ctx context.Context, memberID string) (*domain.Member, error) {
	return s.mutate(ctx, memberID, func(m *domain.Member) error {
		if m.IsActive() {
			m.Status = domain.MemberInactive
		} else {
			m.Status = domain.MemberActive
		}
		return nil
	})
}

// mutate applies change to a copy of the member and stores it.
func (s *memberService) mutate(ctx context.Context, memberID string, change func(*domain.Member) error) (*domain.Member, error) {
	var updated domain.Member
	_, err := s.state.Update(ctx, func(st domain.AppState) ([]domain.Action, error) {
		existing, ok := domain.FindMember(st.Members, memberID)
		if !ok {
			return nil, fmt.Errorf("member %s: %w", memberID, apperrors.ErrNotFound)
		}
		updated = existing
		if err := change(&updated); err != nil {
			return nil, err
		}
		return []domain.Action{domain.UpdateMember{Member: updated}}, nil
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Member updated", slog.String("member_id", memberID))
	return &updated, nil
}
