package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/contractors/internal/app/models"
	"github.com/yigit/contractors/internal/app/models/dto"
	"github.com/yigit/contractors/internal/app/repositories"
	"github.com/yigit/contractors/internal/pkg/apperrors"
	"github.com/yigit/contractors/internal/pkg/helpers"
)

// ContractorService defines the contractor read operations
type ContractorService interface {
	ListContractors(ctx context.Context, query dto.ContractorListQuery) (*dto.ContractorListResponse, error)
	GetContractorDetail(ctx context.Context, id int64) (*dto.ContractorDetailResponse, error)
	ListDepartments(ctx context.Context) ([]string, error)
}

type contractorService struct {
	store ContractorStore
	opts  Options
}

// NewContractorService creates a new ContractorService
func NewContractorService(store ContractorStore, opts Options) ContractorService {
	return &contractorService{
		store: store,
		opts:  opts,
	}
}

// ListContractors returns one filtered page of contractors
func (s *contractorService) ListContractors(ctx context.Context, query dto.ContractorListQuery) (*dto.ContractorListResponse, error) {
	if query.Page < 1 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("page must be at least 1, got %d", query.Page))
	}
	if query.PageSize < 0 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("page_size must not be negative, got %d", query.PageSize))
	}

	filter := repositories.ContractorFilter{
		Keyword:         query.Keyword,
		Department:      query.Department,
		Status:          query.Status,
		CaseInsensitive: s.opts.CaseInsensitiveSearch,
	}
	offset, err := helpers.CalculateOffset(query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}
	page := repositories.Page{
		Limit:  uint64(query.PageSize),
		Offset: offset,
	}

	ctx, cancel := withTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	list, total, err := s.store.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("error listing contractors: %w", err)
	}
	if list == nil {
		list = []models.ContractorSummary{}
	}

	return &dto.ContractorListResponse{
		List:     list,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}

// GetContractorDetail returns a contractor with all related records
func (s *contractorService) GetContractorDetail(ctx context.Context, id int64) (*dto.ContractorDetailResponse, error) {
	ctx, cancel := withTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	detail, err := s.store.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrContractorNotFound
		}
		return nil, fmt.Errorf("error retrieving contractor detail: %w", err)
	}

	response := dto.FromContractorDetail(detail)
	return &response, nil
}

// ListDepartments returns every distinct department
func (s *contractorService) ListDepartments(ctx context.Context) ([]string, error) {
	ctx, cancel := withTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	departments, err := s.store.Departments(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	if departments == nil {
		departments = []string{}
	}
	return departments, nil
}
