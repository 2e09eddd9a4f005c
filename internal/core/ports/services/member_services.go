package services

import (
	"context"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/SscSPs/club_manager_app/internal/dto"
)

// MemberReaderSvc defines read operations over the roster.
type MemberReaderSvc interface {
	GetMember(ctx context.Context, memberID string) (*domain.Member, error)
	ListMembers(ctx context.Context, params dto.ListMembersParams) ([]domain.Member, error)
}

// MemberWriterSvc defines write operations over the roster.
type MemberWriterSvc interface {
	AddMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error)
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error)
	// DeleteMember leaves transactions, matches and reports that reference the member untouched.
	DeleteMember(ctx context.Context, memberID string) error
	ToggleFeePaid(ctx context.Context, memberID string) (*domain.Member, error)
	ToggleActive(ctx context.Context, memberID string) (*domain.Member, error)
}

// MemberSvcFacade combines all member service interfaces.
type MemberSvcFacade interface {
	MemberReaderSvc
	MemberWriterSvc
}
