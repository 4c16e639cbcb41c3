package service

import (
	"context"
	"strconv"

	"abc-retail-backend/internal/dto"
	"abc-retail-backend/internal/model"
	"abc-retail-backend/internal/repository"
)

type CustomerService interface {
	// List projects relational Customer-role users into the legacy
	// customer shape for the admin surface; the row key is the numeric
	// user id.
	List(ctx context.Context) ([]*model.CustomerEntity, error)
	ListLegacy(ctx context.Context) ([]*model.CustomerEntity, error)
	Get(ctx context.Context, customerID string) (*model.CustomerEntity, error)
	Create(ctx context.Context, req dto.CustomerRequest) (*model.CustomerEntity, error)
	Update(ctx context.Context, customerID string, req dto.CustomerRequest) (*model.CustomerEntity, error)
	Delete(ctx context.Context, customerID string) error
}

type customerServiceImpl struct {
	userRepo  repository.UserRepository
	customers CustomerStore
}

func NewCustomerService(userRepo repository.UserRepository, customers CustomerStore) CustomerService {
	return &customerServiceImpl{userRepo: userRepo, customers: customers}
}

func (s *customerServiceImpl) List(ctx context.Context) ([]*model.CustomerEntity, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	customers := make([]*model.CustomerEntity, 0, len(users))
	for _, u := range users {
		if u.Role != model.RoleCustomer {
			continue
		}
		address := "No address provided"
		if u.ShippingAddress != nil && *u.ShippingAddress != "" {
			address = *u.ShippingAddress
		}
		customers = append(customers, &model.CustomerEntity{
			TableEntity: model.TableEntity{
				PartitionKey: model.PartitionCustomer,
				RowKey:       strconv.FormatUint(uint64(u.UserID), 10),
			},
			Name:            u.FirstName,
			Surname:         u.LastName,
			Username:        u.Username,
			Email:           u.Email,
			ShippingAddress: address,
		})
	}
	return customers, nil
}

func (s *customerServiceImpl) ListLegacy(ctx context.Context) ([]*model.CustomerEntity, error) {
	return s.customers.List(ctx)
}

func (s *customerServiceImpl) Get(ctx context.Context, customerID string) (*model.CustomerEntity, error) {
	return s.customers.Get(ctx, customerID)
}

func (s *customerServiceImpl) Create(ctx context.Context, req dto.CustomerRequest) (*model.CustomerEntity, error) {
	customer := &model.CustomerEntity{
		Name:            req.Name,
		Surname:         req.Surname,
		Username:        req.Username,
		Email:           req.Email,
		ShippingAddress: req.ShippingAddress,
	}
	if err := s.customers.Insert(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerServiceImpl) Update(ctx context.Context, customerID string, req dto.CustomerRequest) (*model.CustomerEntity, error) {
	customer, err := s.customers.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	customer.Name = req.Name
	customer.Surname = req.Surname
	customer.Username = req.Username
	customer.Email = req.Email
	customer.ShippingAddress = req.ShippingAddress
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerServiceImpl) Delete(ctx context.Context, customerID string) error {
	return s.customers.Delete(ctx, customerID)
}
